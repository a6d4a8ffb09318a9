package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/inventario-planchas/internal/domain"
	"github.com/jhoicas/inventario-planchas/internal/domain/entity"
	"github.com/jhoicas/inventario-planchas/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementa repository.UserRepository en memoria.
type UserRepo struct {
	store *Store
}

// NewUserRepository construye el repositorio.
func NewUserRepository(store *Store) *UserRepo {
	return &UserRepo{store: store}
}

// Create persiste el usuario; el email es único.
func (r *UserRepo) Create(_ context.Context, u *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, existing := range r.store.users {
		if existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *u
	if cp.CreatedAt.IsZero() {
		cp.CreatedAt = r.store.now()
	}
	r.store.users[u.ID] = &cp
	return nil
}

// GetByID devuelve (nil, nil) si no existe.
func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	u, ok := r.store.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

// GetByEmail devuelve (nil, nil) si no existe.
func (r *UserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, u := range r.store.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

// Update aplica los campos presentes.
func (r *UserRepo) Update(_ context.Context, id string, patch entity.UserPatch) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	u, ok := r.store.users[id]
	if !ok {
		return domain.ErrNotFound
	}
	if patch.Email != nil {
		for otherID, other := range r.store.users {
			if otherID != id && other.Email == *patch.Email {
				return domain.ErrEmailAlreadyExists
			}
		}
		u.Email = *patch.Email
	}
	if patch.Name != nil {
		u.Name = *patch.Name
	}
	if patch.Role != nil {
		u.Role = *patch.Role
	}
	if patch.Password != nil {
		u.Password = *patch.Password
	}
	return nil
}

// List lista usuarios por fecha de creación.
func (r *UserRepo) List(_ context.Context, limit, offset int) ([]*entity.User, error) {
	r.store.mu.RLock()
	all := make([]*entity.User, 0, len(r.store.users))
	for _, u := range r.store.users {
		cp := *u
		all = append(all, &cp)
	}
	r.store.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.Before(all[j].CreatedAt)
		}
		return all[i].Email < all[j].Email
	})
	if offset >= len(all) {
		return []*entity.User{}, nil
	}
	end := len(all)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return all[offset:end], nil
}

// Delete elimina un usuario.
func (r *UserRepo) Delete(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.users[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.store.users, id)
	return nil
}
