package usecase_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-planchas/internal/application/auth"
	"github.com/jhoicas/inventario-planchas/internal/application/dto"
	"github.com/jhoicas/inventario-planchas/internal/application/usecase"
	"github.com/jhoicas/inventario-planchas/internal/domain"
	"github.com/jhoicas/inventario-planchas/internal/domain/entity"
	"github.com/jhoicas/inventario-planchas/internal/infrastructure/memory"
)

func newUsers(t *testing.T) (*usecase.UserUseCase, *memory.UserRepo) {
	t.Helper()
	repo := memory.NewUserRepository(memory.NewStore())
	return usecase.NewUserUseCase(repo, auth.NewPasswords(false), zerolog.Nop()), repo
}

func TestUsers_CreateNormalizaEmailYHashea(t *testing.T) {
	uc, repo := newUsers(t)

	out, err := uc.Create(context.Background(), admon, dto.CreateUserRequest{
		Email: " Beto@Planchas.GT", Password: "secreta1", Name: "Beto", Role: entity.RoleLector,
	})
	require.NoError(t, err)
	assert.Equal(t, "beto@planchas.gt", out.Email)

	stored, err := repo.GetByID(context.Background(), out.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "secreta1", stored.Password)
}

func TestUsers_EmailDuplicado(t *testing.T) {
	uc, _ := newUsers(t)
	in := dto.CreateUserRequest{Email: "beto@planchas.gt", Password: "secreta1", Name: "Beto", Role: entity.RoleLector}

	_, err := uc.Create(context.Background(), admon, in)
	require.NoError(t, err)
	in.Email = "BETO@planchas.gt"
	_, err = uc.Create(context.Background(), admon, in)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestUsers_SoloAdmon(t *testing.T) {
	uc, _ := newUsers(t)

	_, err := uc.List(context.Background(), empleado, dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, err = uc.Create(context.Background(), lector, dto.CreateUserRequest{})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.ErrorIs(t, uc.Delete(context.Background(), empleado, "u-1"), domain.ErrForbidden)
}

func TestUsers_UpdateConservaClaveSiVieneVacia(t *testing.T) {
	uc, repo := newUsers(t)
	out, err := uc.Create(context.Background(), admon, dto.CreateUserRequest{
		Email: "beto@planchas.gt", Password: "secreta1", Name: "Beto", Role: entity.RoleLector,
	})
	require.NoError(t, err)
	before, err := repo.GetByID(context.Background(), out.ID)
	require.NoError(t, err)

	role := entity.RoleEmpleado
	updated, err := uc.Update(context.Background(), admon, out.ID, dto.UpdateUserRequest{Role: &role})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleEmpleado, updated.Role)

	after, err := repo.GetByID(context.Background(), out.ID)
	require.NoError(t, err)
	assert.Equal(t, before.Password, after.Password)
}

func TestUsers_ListPaginado(t *testing.T) {
	uc, _ := newUsers(t)
	for _, email := range []string{"a@planchas.gt", "b@planchas.gt", "c@planchas.gt"} {
		_, err := uc.Create(context.Background(), admon, dto.CreateUserRequest{
			Email: email, Password: "secreta1", Name: "U", Role: entity.RoleLector,
		})
		require.NoError(t, err)
	}

	out, err := uc.List(context.Background(), admon, dto.PageRequest{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, out.Items, 2)
	assert.Equal(t, 2, out.Page.Limit)

	out, err = uc.List(context.Background(), admon, dto.PageRequest{Limit: 2, Offset: 2})
	require.NoError(t, err)
	assert.Len(t, out.Items, 1)
}

func TestUsers_DeleteInexistente(t *testing.T) {
	uc, _ := newUsers(t)
	assert.ErrorIs(t, uc.Delete(context.Background(), admon, "no-existe"), domain.ErrNotFound)
}

// ── administrador inicial ───────────────────────────────────────────

func TestUsers_EnsureAdminCreaUnaVez(t *testing.T) {
	uc, repo := newUsers(t)
	ctx := context.Background()

	first, created, err := uc.EnsureAdmin(ctx, "Admin@Planchas.GT", "secreta1", "")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, entity.RoleAdmon, first.Role)
	assert.Equal(t, "admin@planchas.gt", first.Email)

	stored, err := repo.GetByEmail(ctx, "admin@planchas.gt")
	require.NoError(t, err)
	assert.True(t, auth.NewPasswords(false).Matches(stored.Password, "secreta1"))

	again, created, err := uc.EnsureAdmin(ctx, "admin@planchas.gt", "otra-clave", "Otro")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, again.ID)

	stored, err = repo.GetByEmail(ctx, "admin@planchas.gt")
	require.NoError(t, err)
	assert.True(t, auth.NewPasswords(false).Matches(stored.Password, "secreta1"))
}

func TestUsers_EnsureAdminSinCredenciales(t *testing.T) {
	uc, _ := newUsers(t)

	_, _, err := uc.EnsureAdmin(context.Background(), "", "secreta1", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, _, err = uc.EnsureAdmin(context.Background(), "admin@planchas.gt", "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
