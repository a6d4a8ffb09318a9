package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jhoicas/inventario-planchas/internal/domain"
	"github.com/jhoicas/inventario-planchas/internal/domain/entity"
	"github.com/jhoicas/inventario-planchas/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

var userColumns = []string{"id", "name", "email", "password", "role", "created_at"}

type userRow struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Password  string    `db:"password"`
	Role      string    `db:"role"`
	CreatedAt time.Time `db:"created_at"`
}

func (r userRow) toEntity() *entity.User {
	return &entity.User{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		Password:  r.Password,
		Role:      r.Role,
		CreatedAt: r.CreatedAt,
	}
}

// UserRepo implementación del puerto UserRepository sobre PostgreSQL (tabla app_users).
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	sql, args, err := psql.Insert("app_users").
		Columns(userColumns...).
		Values(user.ID, user.Name, user.Email, user.Password, user.Role, user.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert user: %w", err)
	}
	if _, err := r.q.Exec(ctx, sql, args...); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID. (nil, nil) si no existe.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil
	}
	return r.findOne(ctx, "id = ?", id)
}

// GetByEmail obtiene un usuario por email, sin distinguir mayúsculas.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, "lower(email) = lower(?)", email)
}

func (r *UserRepo) findOne(ctx context.Context, pred string, arg any) (*entity.User, error) {
	sql, args, err := psql.Select(userColumns...).From("app_users").Where(pred, arg).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get user: %w", err)
	}
	var row userRow
	if err := pgxscan.Get(ctx, r.q, &row, sql, args...); err != nil {
		if pgxscan.NotFound(err) || isInvalidText(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return row.toEntity(), nil
}

// Update aplica el parche. Password ya viene hasheado desde el caso de uso.
func (r *UserRepo) Update(ctx context.Context, id string, patch entity.UserPatch) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrNotFound
	}
	set := map[string]any{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Email != nil {
		set["email"] = *patch.Email
	}
	if patch.Role != nil {
		set["role"] = *patch.Role
	}
	if patch.Password != nil {
		set["password"] = *patch.Password
	}
	if len(set) == 0 {
		u, err := r.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if u == nil {
			return domain.ErrNotFound
		}
		return nil
	}
	sql, args, err := psql.Update("app_users").SetMap(set).Where("id = ?", id).ToSql()
	if err != nil {
		return fmt.Errorf("build update user: %w", err)
	}
	tag, err := r.q.Exec(ctx, sql, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista usuarios por fecha de creación.
func (r *UserRepo) List(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	q := psql.Select(userColumns...).From("app_users").OrderBy("created_at ASC", "email ASC")
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}
	if offset > 0 {
		q = q.Offset(uint64(offset))
	}
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list users: %w", err)
	}
	var rows []userRow
	if err := pgxscan.Select(ctx, r.q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	out := make([]*entity.User, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toEntity())
	}
	return out, nil
}

// Delete elimina un usuario.
func (r *UserRepo) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrNotFound
	}
	sql, args, err := psql.Delete("app_users").Where("id = ?", id).ToSql()
	if err != nil {
		return fmt.Errorf("build delete user: %w", err)
	}
	tag, err := r.q.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
