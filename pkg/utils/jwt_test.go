package utils_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"konkanbliss/pkg/utils"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "late-bound-secret")

	accountID := uuid.New()
	token, err := utils.CreateToken(accountID, "user")
	require.NoError(t, err)

	claims, err := utils.ValidateToken(token)
	require.NoError(t, err)
	require.NotNil(t, claims)
	assert.Equal(t, accountID.String(), claims.AccountID)
	assert.Equal(t, "user", claims.Role)
}

// A secret set after process start (the .env path) must be picked up, and
// tokens signed with the empty key must stop verifying once it is.
func TestSecretIsReadPerCall(t *testing.T) {
	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, &utils.Claims{
		AccountID: uuid.NewString(),
		Role:      "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	forgedString, err := forged.SignedString([]byte(""))
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "late-bound-secret")

	_, err = utils.ValidateToken(forgedString)
	assert.Error(t, err)
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	t.Setenv("JWT_SECRET", "late-bound-secret")

	token, err := utils.CreateToken(uuid.New(), "user")
	require.NoError(t, err)

	_, err = utils.ValidateToken(token + "x")
	assert.Error(t, err)
}
