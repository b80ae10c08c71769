package jwt

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/ridelink/tripsync/internal/pkg/models"
)

// Token issuance lives in the accounts service; this package only verifies.

var (
	// ErrInvalidToken is returned for malformed, expired or mis-signed tokens
	ErrInvalidToken = errors.New("invalid token")
	// ErrInactiveAccount is returned when the token references a non-active account
	ErrInactiveAccount = errors.New("account is not active")
)

// VerifyToken validates a bearer token and returns the embedded claims.
// Tokens referencing a suspended or deleted account are rejected.
func VerifyToken(tokenString string, cfg models.JWTConfig) (*models.WebSocketClaims, error) {
	claims := &models.WebSocketClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(cfg.Secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.UserID == "" {
		return nil, ErrInvalidToken
	}
	if cfg.Issuer != "" && claims.Issuer != cfg.Issuer {
		return nil, ErrInvalidToken
	}
	if claims.AccountStatus != "" && claims.AccountStatus != "active" {
		return nil, ErrInactiveAccount
	}
	return claims, nil
}
