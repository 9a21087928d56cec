package admission

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/teamwear/jersey-orders/internal/app/entity"
	err_storage "github.com/teamwear/jersey-orders/internal/app/storage/api/errors"
)

type OrderAdmitter interface {
	CreateOrder(ctx context.Context, draft entity.OrderDraft) (entity.Order, error)
	FindOrderByJerseyNumber(ctx context.Context, number int) (entity.Order, error)
	OrderNameExists(ctx context.Context, name string) (bool, error)
}

// ConflictError reports a jersey number already held by another order.
type ConflictError struct {
	JerseyNumber int
	HolderName   string
}

func (e *ConflictError) Error() string {
	if len(e.HolderName) == 0 {
		return fmt.Sprintf("jersey number %d is already taken", e.JerseyNumber)
	}

	return fmt.Sprintf("jersey number %d is already taken by %s", e.JerseyNumber, e.HolderName)
}

// AdmitOrder persists a validated draft. The jersey number is pre-checked to
// produce a conflict naming the current holder; the storage unique constraint
// stays the final arbiter, so a constraint rejection after a passing
// pre-check is translated into the same ConflictError.
func AdmitOrder(ctx context.Context, draft entity.OrderDraft, admitter OrderAdmitter) (entity.Order, error) {
	holder, err := admitter.FindOrderByJerseyNumber(ctx, draft.JerseyNumber)
	if err == nil {
		return entity.Order{}, &ConflictError{
			JerseyNumber: draft.JerseyNumber,
			HolderName:   holder.Name,
		}
	}
	if !errors.Is(err, err_storage.ErrOrderNotFound) {
		return entity.Order{}, fmt.Errorf("error while pre-checking jersey number: %w", err)
	}

	order, err := admitter.CreateOrder(ctx, draft)
	if err != nil {
		if errors.Is(err, err_storage.ErrJerseyNumberExists) {
			return entity.Order{}, &ConflictError{
				JerseyNumber: draft.JerseyNumber,
				HolderName:   lookupHolderName(ctx, draft.JerseyNumber, admitter),
			}
		}

		return entity.Order{}, fmt.Errorf("error while creating order: %w", err)
	}

	return order, nil
}

// lookupHolderName resolves the holder for a conflict admitted by a
// concurrent submission. Best effort: the conflict is reported either way.
func lookupHolderName(ctx context.Context, number int, admitter OrderAdmitter) string {
	holder, err := admitter.FindOrderByJerseyNumber(ctx, number)
	if err != nil {
		zap.L().Info("couldn't resolve holder for conflicting jersey number",
			zap.Int("jersey_number", number), zap.Error(err))
		return ""
	}

	return holder.Name
}

// CheckJerseyNumber reports whether a jersey number is still free and, when
// taken, who holds it.
func CheckJerseyNumber(ctx context.Context, number int, admitter OrderAdmitter) (bool, string, error) {
	holder, err := admitter.FindOrderByJerseyNumber(ctx, number)
	if err != nil {
		if errors.Is(err, err_storage.ErrOrderNotFound) {
			return true, "", nil
		}

		return false, "", fmt.Errorf("error while checking jersey number: %w", err)
	}

	return false, holder.Name, nil
}

// CheckName reports whether an order with the same name (case-insensitive)
// already exists. Advisory only: it never blocks admission.
func CheckName(ctx context.Context, name string, admitter OrderAdmitter) (bool, error) {
	exists, err := admitter.OrderNameExists(ctx, name)
	if err != nil {
		return false, fmt.Errorf("error while checking order name: %w", err)
	}

	return exists, nil
}
