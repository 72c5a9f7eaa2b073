package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadhub-crm/admin-console/internal/lib/jwt"
)

func TestMaker_RoundTrip(t *testing.T) {
	maker := jwt.NewJWTMaker("secret", time.Hour)

	token, err := maker.GenerateToken("user-42", "webmaster")
	require.NoError(t, err)

	claims, err := maker.ParseToken(token)
	require.NoError(t, err)

	assert.Equal(t, "user-42", claims.UserID)
	assert.Equal(t, "webmaster", claims.Role)
}

func TestMaker_ExpiredToken(t *testing.T) {
	maker := jwt.NewJWTMaker("secret", -time.Minute)

	token, err := maker.GenerateToken("user-42", "admin")
	require.NoError(t, err)

	_, err = maker.ParseToken(token)
	assert.Error(t, err)
}

func TestMaker_WrongSecret(t *testing.T) {
	maker := jwt.NewJWTMaker("secret", time.Hour)
	other := jwt.NewJWTMaker("another-secret", time.Hour)

	token, err := maker.GenerateToken("user-42", "admin")
	require.NoError(t, err)

	_, err = other.ParseToken(token)
	assert.Error(t, err)
}
