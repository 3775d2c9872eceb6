package services_test

import (
	"testing"
	"time"

	"github.com/denonce-tg/signalement-api/internal/config"
	"github.com/denonce-tg/signalement-api/internal/models"
	"github.com/denonce-tg/signalement-api/internal/services"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-not-for-production"

func testAuthService() *services.AuthService {
	cfg := &config.Config{
		JWTSecret: testSecret,
		JWTExpiry: 24 * time.Hour,
	}
	return services.NewAuthService(nil, cfg)
}

// TestGenerateToken_Claims verifies that an issued token carries the
// administrator's id, email and role, and a 24-hour validity window.
func TestGenerateToken_Claims(t *testing.T) {
	// Arrange
	svc := testAuthService()
	admin := &models.Administrateur{
		ID:    uuid.New(),
		Email: "admin@denonce.tg",
		Nom:   "Super Administrateur",
		Role:  models.RoleSuperAdmin,
		Actif: true,
	}

	// Act
	tokenString, err := svc.GenerateToken(admin)
	require.NoError(t, err)

	// Assert - parse back with the same secret
	token, err := jwt.Parse(tokenString, func(tk *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, admin.ID.String(), claims["admin_id"])
	assert.Equal(t, "admin@denonce.tg", claims["email"])
	assert.Equal(t, models.RoleSuperAdmin, claims["role"])

	exp, ok := claims["exp"].(float64)
	require.True(t, ok)
	expected := time.Now().Add(24 * time.Hour).Unix()
	assert.InDelta(t, expected, int64(exp), 60, "expiry should be ~24h out")
}

// TestGenerateToken_WrongSecretRejected verifies the signature actually
// binds the token to the configured secret.
func TestGenerateToken_WrongSecretRejected(t *testing.T) {
	// Arrange
	svc := testAuthService()
	admin := &models.Administrateur{ID: uuid.New(), Email: "a@b.tg", Role: models.RoleAdmin}

	tokenString, err := svc.GenerateToken(admin)
	require.NoError(t, err)

	// Act
	token, err := jwt.Parse(tokenString, func(tk *jwt.Token) (interface{}, error) {
		return []byte("a-different-secret"), nil
	})

	// Assert
	assert.Error(t, err)
	if token != nil {
		assert.False(t, token.Valid)
	}
}
