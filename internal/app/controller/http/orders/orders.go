package orders

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	httputils "github.com/teamwear/jersey-orders/internal/app/controller/http/utils"
	"github.com/teamwear/jersey-orders/internal/app/converter"
	"github.com/teamwear/jersey-orders/internal/app/entity"
	"github.com/teamwear/jersey-orders/internal/app/model"
	"github.com/teamwear/jersey-orders/internal/app/usecase/admission"
	"github.com/teamwear/jersey-orders/internal/app/validator"
)

const (
	ErrMalformedBody = "malformed request body"
)

type OrderStorage interface {
	Ping(ctx context.Context) error
	CreateOrder(ctx context.Context, draft entity.OrderDraft) (entity.Order, error)
	FindOrderByJerseyNumber(ctx context.Context, number int) (entity.Order, error)
	OrderNameExists(ctx context.Context, name string) (bool, error)
}

type Notifier interface {
	OrderCreated(order entity.Order)
}

type Order struct {
	storage  OrderStorage
	notifier Notifier
	limits   validator.Limits
}

func New(storage OrderStorage, notifier Notifier, limits validator.Limits) Order {
	return Order{
		storage:  storage,
		notifier: notifier,
		limits:   limits,
	}
}

func (p *Order) SubmitOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request model.SubmitOrderRequest
		err := json.NewDecoder(r.Body).Decode(&request)
		if err != nil {
			zap.L().Error("error while decoding order submission", zap.Error(err))
			httputils.WriteJSON(w, http.StatusBadRequest, model.ValidationErrorResponse{
				Message: ErrMalformedBody,
			})
			return
		}
		defer r.Body.Close()

		draft, invalidFields := validator.ValidateSubmission(request, p.limits)
		if len(invalidFields) != 0 {
			zap.L().Info("order submission failed validation", zap.Strings("fields", invalidFields))
			httputils.WriteJSON(w, http.StatusBadRequest, model.ValidationErrorResponse{
				Message: "missing or invalid fields",
				Fields:  invalidFields,
			})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		order, err := admission.AdmitOrder(ctx, draft, p.storage)
		if err != nil {
			var conflict *admission.ConflictError
			if errors.As(err, &conflict) {
				zap.L().Info("order submission rejected on jersey number conflict",
					zap.Int("jersey_number", conflict.JerseyNumber),
					zap.String("holder", conflict.HolderName))
				httputils.WriteJSON(w, http.StatusConflict, model.ConflictResponse{
					Message:      conflict.Error(),
					JerseyNumber: conflict.JerseyNumber,
					HolderName:   conflict.HolderName,
				})
				return
			}

			zap.L().Error("error while admitting order", zap.Error(err))
			http.Error(w, httputils.MsgInternalError, http.StatusInternalServerError)
			return
		}

		p.notifier.OrderCreated(order)

		httputils.WriteJSON(w, http.StatusCreated, model.SubmitOrderResponse{
			OrderID: converter.FormatPublicOrderID(order.ID),
			Status:  string(order.Status),
		})
	}
}

func (p *Order) CheckJerseyNumber() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		number, err := strconv.Atoi(r.URL.Query().Get("number"))
		if err != nil {
			zap.L().Info("invalid jersey number in availability check", zap.Error(err))
			httputils.WriteJSON(w, http.StatusBadRequest, model.ValidationErrorResponse{
				Message: "jersey number must be an integer",
				Fields:  []string{"number"},
			})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		available, holder, err := admission.CheckJerseyNumber(ctx, number, p.storage)
		if err != nil {
			zap.L().Error("error while checking jersey number availability", zap.Error(err))
			http.Error(w, httputils.MsgInternalError, http.StatusInternalServerError)
			return
		}

		message := fmt.Sprintf("jersey number %d is available", number)
		if !available {
			message = fmt.Sprintf("jersey number %d is already taken by %s", number, holder)
		}

		httputils.WriteJSON(w, http.StatusOK, model.JerseyCheckResponse{
			Available: available,
			Message:   message,
		})
	}
}

func (p *Order) CheckName() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.URL.Query().Get("name")
		if len(name) == 0 {
			httputils.WriteJSON(w, http.StatusBadRequest, model.ValidationErrorResponse{
				Message: "name must not be empty",
				Fields:  []string{"name"},
			})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		exists, err := admission.CheckName(ctx, name, p.storage)
		if err != nil {
			zap.L().Error("error while checking order name", zap.Error(err))
			http.Error(w, httputils.MsgInternalError, http.StatusInternalServerError)
			return
		}

		message := fmt.Sprintf("no order under the name %q", name)
		if exists {
			message = fmt.Sprintf("an order under the name %q already exists", name)
		}

		httputils.WriteJSON(w, http.StatusOK, model.NameCheckResponse{
			Exists:  exists,
			Message: message,
		})
	}
}

func (p *Order) Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		err := p.storage.Ping(ctx)
		if err != nil {
			zap.L().Error("storage ping failed in health check", zap.Error(err))
			httputils.WriteJSON(w, http.StatusServiceUnavailable, model.HealthResponse{
				Status:   "degraded",
				Database: "down",
			})
			return
		}

		httputils.WriteJSON(w, http.StatusOK, model.HealthResponse{
			Status:   "ok",
			Database: "up",
		})
	}
}
