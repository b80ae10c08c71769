package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridelink/tripsync/internal/pkg/models"
)

func signToken(t *testing.T, secret string, claims *models.WebSocketClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func validClaims() *models.WebSocketClaims {
	return &models.WebSocketClaims{
		UserID:        "user-1",
		Role:          models.RoleRider,
		AccountStatus: "active",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "ridelink",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func TestVerifyToken_Success(t *testing.T) {
	cfg := models.JWTConfig{Secret: "test-secret", Issuer: "ridelink"}
	tokenString := signToken(t, cfg.Secret, validClaims())

	claims, err := VerifyToken(tokenString, cfg)

	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, models.RoleRider, claims.Role)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	cfg := models.JWTConfig{Secret: "test-secret", Issuer: "ridelink"}
	tokenString := signToken(t, "other-secret", validClaims())

	_, err := VerifyToken(tokenString, cfg)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyToken_Expired(t *testing.T) {
	cfg := models.JWTConfig{Secret: "test-secret", Issuer: "ridelink"}
	claims := validClaims()
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
	tokenString := signToken(t, cfg.Secret, claims)

	_, err := VerifyToken(tokenString, cfg)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyToken_WrongIssuer(t *testing.T) {
	cfg := models.JWTConfig{Secret: "test-secret", Issuer: "ridelink"}
	claims := validClaims()
	claims.Issuer = "someone-else"
	tokenString := signToken(t, cfg.Secret, claims)

	_, err := VerifyToken(tokenString, cfg)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyToken_SuspendedAccount(t *testing.T) {
	cfg := models.JWTConfig{Secret: "test-secret", Issuer: "ridelink"}
	claims := validClaims()
	claims.AccountStatus = "suspended"
	tokenString := signToken(t, cfg.Secret, claims)

	_, err := VerifyToken(tokenString, cfg)

	assert.ErrorIs(t, err, ErrInactiveAccount)
}

func TestVerifyToken_MissingUserID(t *testing.T) {
	cfg := models.JWTConfig{Secret: "test-secret", Issuer: "ridelink"}
	claims := validClaims()
	claims.UserID = ""
	tokenString := signToken(t, cfg.Secret, claims)

	_, err := VerifyToken(tokenString, cfg)

	assert.ErrorIs(t, err, ErrInvalidToken)
}
