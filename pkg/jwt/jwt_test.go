package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-planchas/pkg/jwt"
)

func TestGenerateParse_IdaYVuelta(t *testing.T) {
	tok, err := jwt.Generate("secreto", "sess-1", "user-1", "Admon", "inventario-test", 5)
	require.NoError(t, err)

	sessionID, userID, role, err := jwt.Parse("secreto", tok)
	require.NoError(t, err)
	assert.Equal(t, "sess-1", sessionID)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "Admon", role)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	tok, err := jwt.Generate("secreto", "sess-1", "user-1", "Lector", "inventario-test", 5)
	require.NoError(t, err)

	_, _, _, err = jwt.Parse("otro-secreto", tok)
	assert.Error(t, err)
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := jwt.Generate("secreto", "sess-1", "user-1", "Lector", "inventario-test", -1)
	require.NoError(t, err)

	_, _, _, err = jwt.Parse("secreto", tok)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := jwt.Generate("", "sess-1", "user-1", "Lector", "inventario-test", 5)
	assert.Error(t, err)
}
