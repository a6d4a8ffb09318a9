package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/inventario-planchas/internal/application/auth"
	"github.com/jhoicas/inventario-planchas/internal/application/dto"
	"github.com/jhoicas/inventario-planchas/internal/domain"
	"github.com/jhoicas/inventario-planchas/internal/domain/entity"
	"github.com/jhoicas/inventario-planchas/internal/domain/repository"
)

// UserUseCase administra usuarios. Todas las operaciones exigen un principal Admon.
type UserUseCase struct {
	repo      repository.UserRepository
	passwords *auth.Passwords
	log       zerolog.Logger
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository, passwords *auth.Passwords, log zerolog.Logger) *UserUseCase {
	return &UserUseCase{repo: repo, passwords: passwords, log: log.With().Str("component", "users").Logger()}
}

// List lista usuarios con paginación.
func (uc *UserUseCase) List(ctx context.Context, principal entity.Principal, page dto.PageRequest) (*dto.UserListResponse, error) {
	if !principal.CanManageUsers() {
		return nil, domain.ErrForbidden
	}
	page.DefaultPage()
	list, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *entityToUserResponse(u))
	}
	return &dto.UserListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// GetByID obtiene un usuario por ID. (nil, nil) si no existe.
func (uc *UserUseCase) GetByID(ctx context.Context, principal entity.Principal, id string) (*dto.UserResponse, error) {
	if !principal.CanManageUsers() {
		return nil, domain.ErrForbidden
	}
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return entityToUserResponse(user), nil
}

// Create crea un usuario; la contraseña se guarda según la política vigente (bcrypt por defecto).
func (uc *UserUseCase) Create(ctx context.Context, principal entity.Principal, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if !principal.CanManageUsers() {
		return nil, domain.ErrForbidden
	}
	email := normalizeEmail(in.Email)
	existing, err := uc.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, uc.fail("create", email, err)
	}
	if existing != nil {
		return nil, uc.fail("create", email, domain.ErrEmailAlreadyExists)
	}
	hash, err := uc.passwords.Hash(in.Password)
	if err != nil {
		return nil, uc.fail("create", email, err)
	}
	user := &entity.User{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     email,
		Password:  hash,
		Role:      in.Role,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, uc.fail("create", email, err)
	}
	return entityToUserResponse(user), nil
}

// EnsureAdmin crea el administrador inicial si su email aún no existe. created=false indica que
// ya estaba registrado y no se modificó.
func (uc *UserUseCase) EnsureAdmin(ctx context.Context, email, password, name string) (user *dto.UserResponse, created bool, err error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, false, fmt.Errorf("%w: email y contraseña del administrador", domain.ErrInvalidInput)
	}
	if name == "" {
		name = "Administrador"
	}
	system := entity.Principal{Name: "sistema", Role: entity.RoleAdmon}
	user, err = uc.Create(ctx, system, dto.CreateUserRequest{
		Email:    email,
		Password: password,
		Name:     name,
		Role:     entity.RoleAdmon,
	})
	if errors.Is(err, domain.ErrEmailAlreadyExists) {
		existing, gerr := uc.repo.GetByEmail(ctx, normalizeEmail(email))
		if gerr != nil {
			return nil, false, gerr
		}
		return entityToUserResponse(existing), false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return user, true, nil
}

// Update actualiza los campos presentes; la contraseña solo cambia cuando viene informada.
func (uc *UserUseCase) Update(ctx context.Context, principal entity.Principal, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if !principal.CanManageUsers() {
		return nil, domain.ErrForbidden
	}
	patch := entity.UserPatch{Name: in.Name, Role: in.Role}
	if in.Email != nil {
		email := normalizeEmail(*in.Email)
		other, err := uc.repo.GetByEmail(ctx, email)
		if err != nil {
			return nil, uc.fail("update", id, err)
		}
		if other != nil && other.ID != id {
			return nil, uc.fail("update", id, domain.ErrEmailAlreadyExists)
		}
		patch.Email = &email
	}
	if in.Password != "" {
		hash, err := uc.passwords.Hash(in.Password)
		if err != nil {
			return nil, uc.fail("update", id, err)
		}
		patch.Password = &hash
	}
	if err := uc.repo.Update(ctx, id, patch); err != nil {
		return nil, uc.fail("update", id, err)
	}
	return uc.GetByID(ctx, principal, id)
}

// Delete elimina un usuario por ID.
func (uc *UserUseCase) Delete(ctx context.Context, principal entity.Principal, id string) error {
	if !principal.CanManageUsers() {
		return domain.ErrForbidden
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return uc.fail("delete", id, err)
	}
	return nil
}

func (uc *UserUseCase) fail(op, ref string, err error) error {
	uc.log.Error().Err(err).Str("op", op).Str("ref", ref).Msg("operación de usuario fallida")
	return err
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func entityToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
