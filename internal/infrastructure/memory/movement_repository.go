package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/inventario-planchas/internal/domain"
	"github.com/jhoicas/inventario-planchas/internal/domain/entity"
	"github.com/jhoicas/inventario-planchas/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementa repository.MovementRepository en memoria.
type MovementRepo struct {
	store *Store
	inTx  bool // el TxRunner ya tiene el candado
}

// NewMovementRepository construye el repositorio.
func NewMovementRepository(store *Store) *MovementRepo {
	return &MovementRepo{store: store}
}

// Create asigna la fecha con el reloj del almacén. El producto referenciado debe existir.
func (r *MovementRepo) Create(_ context.Context, m *entity.Movement) error {
	defer r.lock()()
	if _, ok := r.store.products[m.ProductID]; !ok {
		return domain.ErrNotFound
	}
	if _, ok := r.store.movements[m.ID]; ok {
		return domain.ErrDuplicate
	}
	m.Date = r.store.now()
	r.store.movements[m.ID] = &movementRecord{movement: *m, seq: r.store.nextSeq()}
	return nil
}

// GetByID devuelve (nil, nil) si no existe.
func (r *MovementRepo) GetByID(_ context.Context, id string) (*entity.Movement, error) {
	defer r.rlock()()
	rec, ok := r.store.movements[id]
	if !ok {
		return nil, nil
	}
	m := rec.movement
	return &m, nil
}

// Update aplica la corrección parcial.
func (r *MovementRepo) Update(_ context.Context, id string, patch entity.MovementPatch) error {
	defer r.lock()()
	rec, ok := r.store.movements[id]
	if !ok {
		return domain.ErrNotFound
	}
	patch.Apply(&rec.movement)
	return nil
}

// Delete elimina el movimiento.
func (r *MovementRepo) Delete(_ context.Context, id string) error {
	defer r.lock()()
	if _, ok := r.store.movements[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.store.movements, id)
	return nil
}

// DeleteByProduct elimina todos los movimientos del producto y devuelve cuántos eran.
func (r *MovementRepo) DeleteByProduct(_ context.Context, productID string) (int64, error) {
	defer r.lock()()
	var n int64
	for id, rec := range r.store.movements {
		if rec.movement.ProductID == productID {
			delete(r.store.movements, id)
			n++
		}
	}
	return n, nil
}

// ListAll devuelve el libro, más reciente primero; a igual fecha, el último insertado primero.
func (r *MovementRepo) ListAll(_ context.Context) ([]*entity.Movement, error) {
	unlock := r.rlock()
	recs := make([]*movementRecord, 0, len(r.store.movements))
	for _, rec := range r.store.movements {
		recs = append(recs, rec)
	}
	sort.Slice(recs, func(i, j int) bool {
		a, b := recs[i], recs[j]
		if !a.movement.Date.Equal(b.movement.Date) {
			return a.movement.Date.After(b.movement.Date)
		}
		return a.seq > b.seq
	})
	out := make([]*entity.Movement, 0, len(recs))
	for _, rec := range recs {
		m := rec.movement
		out = append(out, &m)
	}
	unlock()
	return out, nil
}

func (r *MovementRepo) lock() func() {
	if r.inTx {
		return func() {}
	}
	r.store.mu.Lock()
	return r.store.mu.Unlock
}

func (r *MovementRepo) rlock() func() {
	if r.inTx {
		return func() {}
	}
	r.store.mu.RLock()
	return r.store.mu.RUnlock
}
