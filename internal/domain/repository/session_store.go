package repository

import (
	"context"

	"github.com/jhoicas/inventario-planchas/internal/domain/entity"
)

// SessionStore guarda las sesiones fuera del proceso para que sobrevivan reinicios.
// Load devuelve (nil, nil) cuando la sesión no existe o ya venció.
type SessionStore interface {
	Save(ctx context.Context, session *entity.Session) error
	Load(ctx context.Context, id string) (*entity.Session, error)
	Delete(ctx context.Context, id string) error
}
