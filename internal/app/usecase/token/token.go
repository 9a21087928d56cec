package token

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/teamwear/jersey-orders/internal/app/entity"
)

const (
	bearerHeader = "Bearer"

	AuthHeader = "Authorization"
)

var (
	ErrTokenNotValid = errors.New("token is not valid")
	ErrTokenExpired  = errors.New("token is expired")
)

type adminClaims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

// Issuer builds and verifies admin session tokens with a shared HMAC secret.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

func NewIssuer(secret string, ttl time.Duration) Issuer {
	return Issuer{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func (i Issuer) BuildJWTString(username entity.AdminName) (string, error) {
	claims := adminClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(i.ttl)),
		},
		Username: username.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("error while signing admin token: %w", err)
	}

	return signed, nil
}

func (i Issuer) GetAdminName(tokenString string) (entity.AdminName, error) {
	claims := adminClaims{}
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}

		return i.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return entity.AdminName(""), ErrTokenExpired
		}

		return entity.AdminName(""), fmt.Errorf("error while parsing admin token: %w", err)
	}

	if !token.Valid {
		return entity.AdminName(""), ErrTokenNotValid
	}

	return entity.AdminName(claims.Username), nil
}

// GetAdminNameFromAuthHeader extracts and verifies the bearer token from a
// raw Authorization header value.
func (i Issuer) GetAdminNameFromAuthHeader(header string) (entity.AdminName, error) {
	headerParts := strings.Split(header, " ")
	if len(headerParts) != 2 {
		return entity.AdminName(""), fmt.Errorf("auth header doesn't contain two parts")
	}

	if headerParts[0] != bearerHeader {
		return entity.AdminName(""), fmt.Errorf("first auth header part is invalid")
	}

	username, err := i.GetAdminName(headerParts[1])
	if err != nil {
		return entity.AdminName(""), fmt.Errorf("error while getting admin name from token: %w", err)
	}

	return username, nil
}

func (i Issuer) SetAdminNameToAuthHeaderFormat(username entity.AdminName) (string, error) {
	token, err := i.BuildJWTString(username)
	if err != nil {
		return "", fmt.Errorf("error while creating jwt token: %w", err)
	}

	return fmt.Sprintf("%s %s", bearerHeader, token), nil
}
