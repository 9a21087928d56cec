package auth

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/teamwear/jersey-orders/internal/app/entity"
	"github.com/teamwear/jersey-orders/internal/app/usecase/token"
)

// AdminMiddleware verifies the bearer token on admin routes and stores the
// resolved identity in the request context. The handler decides the final
// response from the attached status code.
func AdminMiddleware(issuer token.Issuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header[token.AuthHeader]
			adminCtx := processAuthHeader(authHeader, issuer)

			ctx := context.WithValue(r.Context(), entity.AdminCtxKey{}, adminCtx)
			r = r.WithContext(ctx)

			next.ServeHTTP(w, r)
		})
	}
}

func processAuthHeader(authHeader []string, issuer token.Issuer) entity.AdminCtx {
	if len(authHeader) == 0 {
		zap.L().Info("authorization header is empty")

		return entity.CreateAdminCtx("", http.StatusUnauthorized)
	}

	username, err := issuer.GetAdminNameFromAuthHeader(authHeader[0])
	if err != nil {
		if errors.Is(err, token.ErrTokenExpired) {
			zap.L().Info("expired admin token", zap.String("header", authHeader[0]))
		} else {
			zap.L().Error("error while parsing auth header", zap.Error(err), zap.String("header", authHeader[0]))
		}

		return entity.CreateAdminCtx("", http.StatusUnauthorized)
	}

	if !username.Valid() {
		zap.L().Error("empty admin name in authorization header")

		return entity.CreateAdminCtx("", http.StatusForbidden)
	}

	return entity.CreateAdminCtx(username, http.StatusOK)
}
