package provision

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/teamwear/jersey-orders/internal/app/config"
	"github.com/teamwear/jersey-orders/internal/app/entity"
	"github.com/teamwear/jersey-orders/internal/app/usecase/crypto"
)

type AdminCreator interface {
	CreateAdmin(ctx context.Context, admin entity.AdminUser) error
}

// EnsureAdmin seeds the configured admin account once at startup. The write
// is idempotent, so repeated boots against the same storage are harmless.
// An unset username skips provisioning entirely.
func EnsureAdmin(ctx context.Context, config config.Config, creator AdminCreator) error {
	if len(config.AdminUsername) == 0 {
		zap.L().Info("admin provisioning skipped: no bootstrap username configured")
		return nil
	}

	if len(config.AdminPassword) == 0 {
		return fmt.Errorf("admin provisioning requires a password for username %q", config.AdminUsername)
	}

	hashedPassword, err := crypto.HashPassword(config.AdminPassword)
	if err != nil {
		return fmt.Errorf("error while hashing bootstrap admin password: %w", err)
	}

	admin := entity.AdminUser{
		Username:     entity.AdminName(config.AdminUsername),
		PasswordHash: hashedPassword,
	}

	err = creator.CreateAdmin(ctx, admin)
	if err != nil {
		return fmt.Errorf("error while provisioning bootstrap admin: %w", err)
	}

	zap.L().Info("bootstrap admin provisioned", zap.String("username", config.AdminUsername))

	return nil
}
