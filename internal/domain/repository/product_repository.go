package repository

import (
	"context"

	"github.com/jhoicas/inventario-planchas/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID devuelve (nil, nil) cuando no existe.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	Update(ctx context.Context, id string, patch entity.ProductPatch) error
	UpdateCost(ctx context.Context, id string, cost decimal.Decimal) error
	ListAll(ctx context.Context) ([]*entity.Product, error)
	// Delete devuelve domain.ErrProductReferenced si el producto tiene movimientos.
	Delete(ctx context.Context, id string) error
}
