package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "clave-de-prueba"

func TestGenerateParse_RoundTrip(t *testing.T) {
	tok, err := Generate(testSecret, "user-1", "Ana Pérez", "cashier", "pos-retail", 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, name, role, err := Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "Ana Pérez", name)
	assert.Equal(t, "cashier", role)
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := Generate(testSecret, "user-1", "Ana", "admin", "pos-retail", 60)
	require.NoError(t, err)

	_, _, _, err = Parse("otra-clave", tok)
	assert.Error(t, err)
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := Generate(testSecret, "user-1", "Ana", "admin", "pos-retail", -1)
	require.NoError(t, err)

	_, _, _, err = Parse(testSecret, tok)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := Generate("", "user-1", "Ana", "admin", "pos-retail", 60)
	assert.Error(t, err)
}
