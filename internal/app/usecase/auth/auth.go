package auth

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/teamwear/jersey-orders/internal/app/entity"
	err_storage "github.com/teamwear/jersey-orders/internal/app/storage/api/errors"
	"github.com/teamwear/jersey-orders/internal/app/usecase/crypto"
)

// ErrBadCredentials covers both an unknown username and a wrong password so
// callers can't probe which admin accounts exist.
var ErrBadCredentials = errors.New("invalid admin credentials")

type AdminProvider interface {
	GetAdmin(ctx context.Context, username entity.AdminName) (entity.AdminUser, error)
}

func AuthenticateAdmin(ctx context.Context, username entity.AdminName, password string, provider AdminProvider) (entity.AdminUser, error) {
	admin, err := provider.GetAdmin(ctx, username)
	if err != nil {
		if errors.Is(err, err_storage.ErrAdminNotFound) {
			zap.L().Info("unknown admin username while authenticating", zap.String("username", username.String()))
			return entity.AdminUser{}, ErrBadCredentials
		}

		return entity.AdminUser{}, fmt.Errorf("error while getting admin while authenticating: %w", err)
	}

	err = crypto.CheckPasswordHash(password, admin.PasswordHash)
	if err != nil {
		if errors.Is(err, crypto.ErrWrongPassword) {
			zap.L().Info("wrong admin password while authenticating", zap.String("username", username.String()))
			return entity.AdminUser{}, ErrBadCredentials
		}

		return entity.AdminUser{}, fmt.Errorf("error while checking admin password: %w", err)
	}

	return admin, nil
}
