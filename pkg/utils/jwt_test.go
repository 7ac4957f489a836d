package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)

	token, err := m.GenerateToken("R. Iyer", "POS-01")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "R. Iyer", claims.Cashier)
	assert.Equal(t, "POS-01", claims.Terminal)
	assert.Equal(t, "POS-01", claims.Subject)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	token, err := NewJWTManager("secret-a", time.Hour).GenerateToken("R. Iyer", "POS-01")
	require.NoError(t, err)

	_, err = NewJWTManager("secret-b", time.Hour).ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	token, err := NewJWTManager("test-secret", -time.Minute).GenerateToken("R. Iyer", "POS-01")
	require.NoError(t, err)

	_, err = NewJWTManager("test-secret", time.Hour).ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := NewJWTManager("test-secret", time.Hour).ValidateToken("not-a-token")
	assert.Error(t, err)
}
