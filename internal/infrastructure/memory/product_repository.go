package memory

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-planchas/internal/domain"
	"github.com/jhoicas/inventario-planchas/internal/domain/entity"
	"github.com/jhoicas/inventario-planchas/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementa repository.ProductRepository en memoria.
type ProductRepo struct {
	store *Store
	inTx  bool // el TxRunner ya tiene el candado
}

// NewProductRepository construye el repositorio.
func NewProductRepository(store *Store) *ProductRepo {
	return &ProductRepo{store: store}
}

// Create persiste el producto; la cantidad guardada siempre es 0.
func (r *ProductRepo) Create(_ context.Context, p *entity.Product) error {
	defer r.lock()()
	if _, ok := r.store.products[p.ID]; ok {
		return domain.ErrDuplicate
	}
	rec := &productRecord{product: *p, seq: r.store.nextSeq()}
	rec.product.Quantity = 0
	if rec.product.CreatedAt.IsZero() {
		rec.product.CreatedAt = r.store.now()
	}
	r.store.products[p.ID] = rec
	return nil
}

// GetByID devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	defer r.rlock()()
	rec, ok := r.store.products[id]
	if !ok {
		return nil, nil
	}
	p := rec.product
	return &p, nil
}

// Update aplica el parche sobre el producto guardado.
func (r *ProductRepo) Update(_ context.Context, id string, patch entity.ProductPatch) error {
	defer r.lock()()
	rec, ok := r.store.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	patch.Apply(&rec.product)
	return nil
}

// UpdateCost sobrescribe el costo de referencia.
func (r *ProductRepo) UpdateCost(_ context.Context, id string, cost decimal.Decimal) error {
	defer r.lock()()
	rec, ok := r.store.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	rec.product.Cost = cost
	return nil
}

// ListAll devuelve el catálogo, más reciente primero.
func (r *ProductRepo) ListAll(_ context.Context) ([]*entity.Product, error) {
	unlock := r.rlock()
	recs := make([]*productRecord, 0, len(r.store.products))
	for _, rec := range r.store.products {
		recs = append(recs, rec)
	}
	sort.Slice(recs, func(i, j int) bool {
		a, b := recs[i], recs[j]
		if !a.product.CreatedAt.Equal(b.product.CreatedAt) {
			return a.product.CreatedAt.After(b.product.CreatedAt)
		}
		return a.seq > b.seq
	})
	out := make([]*entity.Product, 0, len(recs))
	for _, rec := range recs {
		p := rec.product
		out = append(out, &p)
	}
	unlock()
	return out, nil
}

// Delete rechaza con domain.ErrProductReferenced si algún movimiento apunta al producto.
func (r *ProductRepo) Delete(_ context.Context, id string) error {
	defer r.lock()()
	if _, ok := r.store.products[id]; !ok {
		return domain.ErrNotFound
	}
	for _, rec := range r.store.movements {
		if rec.movement.ProductID == id {
			return domain.ErrProductReferenced
		}
	}
	delete(r.store.products, id)
	return nil
}

func (r *ProductRepo) lock() func() {
	if r.inTx {
		return func() {}
	}
	r.store.mu.Lock()
	return r.store.mu.Unlock
}

func (r *ProductRepo) rlock() func() {
	if r.inTx {
		return func() {}
	}
	r.store.mu.RLock()
	return r.store.mu.RUnlock
}
