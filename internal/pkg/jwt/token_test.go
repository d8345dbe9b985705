package jwt

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrilink/agrilink/internal/pkg/models"
)

func testJWTConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60,
			Issuer:     "agrilink-test",
		},
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	cfg := testJWTConfig()
	userID := uuid.New()

	tokenString, expiresAt, err := GenerateToken(userID, "vehicle-1", "transporter", cfg)
	require.NoError(t, err)
	assert.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, int64(0))

	claims, err := ValidateToken(tokenString, cfg.JWT.Secret)
	require.NoError(t, err)

	assert.Equal(t, userID.String(), (*claims)["user_id"])
	assert.Equal(t, "vehicle-1", (*claims)["vehicle_id"])
	assert.Equal(t, "transporter", (*claims)["role"])
	assert.Equal(t, "agrilink-test", (*claims)["iss"])
}

func TestValidateToken_WrongSecret(t *testing.T) {
	cfg := testJWTConfig()

	tokenString, _, err := GenerateToken(uuid.New(), "vehicle-1", "transporter", cfg)
	require.NoError(t, err)

	_, err = ValidateToken(tokenString, "a-different-secret")
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := ValidateToken("not.a.token", "test-secret")
	assert.Error(t, err)
}
