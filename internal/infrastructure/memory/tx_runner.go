package memory

import (
	"context"

	"github.com/jhoicas/inventario-planchas/internal/application/inventory"
	"github.com/jhoicas/inventario-planchas/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner retiene el candado del almacén durante toda la transacción, así ninguna
// escritura ajena queda entre la copia y la restauración.
type TxRunner struct {
	store *Store
}

// NewTxRunner construye el runner sobre el almacén.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// Run ejecuta fn con repositorios del mismo almacén; si fn devuelve error se deshacen sus cambios.
func (r *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	saved := r.store.save()
	movRepo := &MovementRepo{store: r.store, inTx: true}
	productRepo := &ProductRepo{store: r.store, inTx: true}
	if err := fn(movRepo, productRepo); err != nil {
		r.store.restore(saved)
		return err
	}
	return nil
}
