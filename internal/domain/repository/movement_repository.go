package repository

import (
	"context"

	"github.com/jhoicas/inventario-planchas/internal/domain/entity"
)

// MovementRepository define el puerto de persistencia del libro de movimientos.
type MovementRepository interface {
	// Create asigna la fecha del movimiento (hora del almacén) y la deja en movement.Date.
	Create(ctx context.Context, movement *entity.Movement) error
	GetByID(ctx context.Context, id string) (*entity.Movement, error)
	Update(ctx context.Context, id string, patch entity.MovementPatch) error
	Delete(ctx context.Context, id string) error
	DeleteByProduct(ctx context.Context, productID string) (int64, error)
	// ListAll devuelve el libro completo, más reciente primero; los empates se rompen por orden de inserción.
	ListAll(ctx context.Context) ([]*entity.Movement, error)
}
