package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-planchas/internal/application/auth"
	"github.com/jhoicas/inventario-planchas/internal/application/dto"
	"github.com/jhoicas/inventario-planchas/internal/domain"
	"github.com/jhoicas/inventario-planchas/internal/domain/entity"
	"github.com/jhoicas/inventario-planchas/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const testSecret = "secreto-de-pruebas"

func newAuth(t *testing.T, plaintext bool) (*auth.AuthUseCase, *memory.SessionStore) {
	t.Helper()
	users := memory.NewUserRepository(memory.NewStore())
	passwords := auth.NewPasswords(plaintext)
	hash, err := passwords.Hash("clave-segura")
	require.NoError(t, err)
	require.NoError(t, users.Create(context.Background(), &entity.User{
		ID: "u-1", Name: "Ana", Email: "ana@planchas.gt", Password: hash, Role: entity.RoleEmpleado,
		CreatedAt: time.Now(),
	}))
	sessions := memory.NewSessionStore()
	uc := auth.NewAuthUseCase(users, sessions, passwords, auth.JWTConfig{
		Secret: testSecret, ExpMinutes: 60, Issuer: "inventario-test",
	}, zerolog.Nop())
	return uc, sessions
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Passwords
// ──────────────────────────────────────────────────────────────────────────────

func TestPasswords_BcryptPorDefecto(t *testing.T) {
	p := auth.NewPasswords(false)
	hash, err := p.Hash("clave-segura")
	require.NoError(t, err)

	assert.NotEqual(t, "clave-segura", hash)
	assert.True(t, p.Matches(hash, "clave-segura"))
	assert.False(t, p.Matches(hash, "otra"))
	assert.False(t, p.Plaintext())
}

func TestPasswords_TextoPlanoExplicito(t *testing.T) {
	p := auth.NewPasswords(true)
	hash, err := p.Hash("clave")
	require.NoError(t, err)

	assert.Equal(t, "clave", hash)
	assert.True(t, p.Matches("clave", "clave"))
	assert.False(t, p.Matches("clave", "Clave"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Login / Authenticate / Logout
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CreaSesionYToken(t *testing.T) {
	uc, _ := newAuth(t, false)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "  ANA@planchas.gt ", Password: "clave-segura"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "u-1", out.User.ID)
	assert.Equal(t, entity.RoleEmpleado, out.User.Role)

	session, err := uc.Authenticate(context.Background(), out.Token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", session.Principal.UserID)
	assert.Equal(t, entity.RoleEmpleado, session.Principal.Role)
}

func TestLogin_MismoErrorParaEmailYClave(t *testing.T) {
	uc, _ := newAuth(t, false)

	_, errClave := uc.Login(context.Background(), dto.LoginRequest{Email: "ana@planchas.gt", Password: "mala"})
	_, errEmail := uc.Login(context.Background(), dto.LoginRequest{Email: "nadie@planchas.gt", Password: "clave-segura"})

	assert.ErrorIs(t, errClave, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, errEmail, domain.ErrInvalidCredentials)
	assert.Equal(t, errClave.Error(), errEmail.Error())
}

func TestLogin_ModoTextoPlano(t *testing.T) {
	uc, _ := newAuth(t, true)
	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ana@planchas.gt", Password: "clave-segura"})
	assert.NoError(t, err)
}

func TestAuthenticate_TokenInvalido(t *testing.T) {
	uc, _ := newAuth(t, false)
	_, err := uc.Authenticate(context.Background(), "no.es.jwt")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogout_InvalidaElToken(t *testing.T) {
	uc, _ := newAuth(t, false)
	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ana@planchas.gt", Password: "clave-segura"})
	require.NoError(t, err)
	session, err := uc.Authenticate(context.Background(), out.Token)
	require.NoError(t, err)

	require.NoError(t, uc.Logout(context.Background(), session.ID))

	_, err = uc.Authenticate(context.Background(), out.Token)
	assert.ErrorIs(t, err, domain.ErrSessionExpired, "un token firmado sin sesión guardada no autentica")
}

func TestMe_CapacidadesPorRol(t *testing.T) {
	me := auth.Me(entity.Principal{UserID: "u-1", Role: entity.RoleAdmon})
	assert.True(t, me.CanWrite)
	assert.True(t, me.CanViewFinancials)
	assert.True(t, me.CanManageUsers)

	me = auth.Me(entity.Principal{UserID: "u-2", Role: entity.RoleEmpleado})
	assert.True(t, me.CanWrite)
	assert.False(t, me.CanViewFinancials)
	assert.False(t, me.CanManageUsers)

	me = auth.Me(entity.Principal{UserID: "u-3", Role: entity.RoleLector})
	assert.False(t, me.CanWrite)
}
