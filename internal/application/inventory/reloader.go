package inventory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/inventario-planchas/internal/domain"
	"github.com/jhoicas/inventario-planchas/internal/domain/entity"
	"github.com/jhoicas/inventario-planchas/internal/domain/inventory"
	"github.com/jhoicas/inventario-planchas/internal/domain/repository"
)

// Snapshot es el catálogo y el libro leídos en una misma recarga, con el stock ya proyectado.
// Es de solo lectura: quien lo reciba no debe modificar sus elementos.
type Snapshot struct {
	Seq       uint64
	Products  []*entity.Product  // Quantity ya contiene la proyección
	Movements []*entity.Movement // más reciente primero
	Stock     map[string]int
	LoadedAt  time.Time
}

// Product busca un producto del snapshot por id.
func (s *Snapshot) Product(id string) *entity.Product {
	for _, p := range s.Products {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Reloader mantiene la vista vigente del inventario. Cada mutación llama a InvalidateAndReload:
// se vuelve a leer todo y se reproyecta sin deltas. Cada recarga lleva un número de secuencia y
// una respuesta más vieja que la vista aplicada se descarta.
type Reloader struct {
	products  repository.ProductRepository
	movements repository.MovementRepository
	metrics   Metrics
	log       zerolog.Logger

	mu      sync.RWMutex
	current *Snapshot

	seq     atomic.Uint64
	reloads atomic.Int64
}

// NewReloader construye el recargador. metrics puede ser nil.
func NewReloader(products repository.ProductRepository, movements repository.MovementRepository, metrics Metrics, log zerolog.Logger) *Reloader {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &Reloader{
		products:  products,
		movements: movements,
		metrics:   metrics,
		log:       log.With().Str("component", "reloader").Logger(),
	}
}

// InvalidateAndReload relee catálogo y libro completos y reproyecta el stock.
// Devuelve la vista vigente al terminar, que puede ser más nueva que la leída aquí
// si otra recarga posterior terminó antes.
func (r *Reloader) InvalidateAndReload(ctx context.Context) (*Snapshot, error) {
	seq := r.seq.Add(1)
	r.reloads.Add(1)
	start := time.Now()

	products, err := r.products.ListAll(ctx)
	if err != nil {
		r.fail(seq, start)
		return nil, fmt.Errorf("recargar productos: %w", err)
	}
	movements, err := r.movements.ListAll(ctx)
	if err != nil {
		r.fail(seq, start)
		return nil, fmt.Errorf("recargar movimientos: %w", err)
	}

	stock := inventory.Project(movements, products)
	inventory.ApplyProjection(products, stock)
	snap := &Snapshot{
		Seq:       seq,
		Products:  products,
		Movements: movements,
		Stock:     stock,
		LoadedAt:  time.Now(),
	}

	r.mu.Lock()
	if r.current != nil && r.current.Seq > seq {
		latest := r.current
		r.mu.Unlock()
		r.metrics.ObserveReload(ReloadStale, time.Since(start))
		r.log.Warn().Uint64("seq", seq).Uint64("applied_seq", latest.Seq).Msg("respuesta de recarga obsoleta descartada")
		return latest, nil
	}
	r.current = snap
	r.mu.Unlock()

	r.metrics.ObserveReload(ReloadApplied, time.Since(start))
	r.log.Debug().Uint64("seq", seq).Int("products", len(products)).Int("movements", len(movements)).Msg("inventario recargado")
	return snap, nil
}

// fail invalida la vista si la recarga fallida es la más reciente, para que la próxima lectura recargue.
func (r *Reloader) fail(seq uint64, start time.Time) {
	r.metrics.ObserveReload(ReloadError, time.Since(start))
	r.mu.Lock()
	if r.current != nil && r.current.Seq < seq {
		r.current = nil
	}
	r.mu.Unlock()
}

// Current devuelve la vista vigente; si no hay ninguna (arranque o recarga fallida) recarga.
func (r *Reloader) Current(ctx context.Context) (*Snapshot, error) {
	r.mu.RLock()
	snap := r.current
	r.mu.RUnlock()
	if snap != nil {
		return snap, nil
	}
	return r.InvalidateAndReload(ctx)
}

// Reloads cuenta las recargas iniciadas desde el arranque.
func (r *Reloader) Reloads() int64 {
	return r.reloads.Load()
}

// Settle cierra una mutación: registra métrica y log del resultado y recarga exactamente una vez,
// haya fallado o no. La recarga no se cancela con el contexto del llamador. Devuelve el error
// de la mutación; un fallo de la recarga se registra pero no cambia el resultado.
func (r *Reloader) Settle(ctx context.Context, entityName, op, id string, err error) error {
	r.metrics.ObserveMutation(entityName, op, err)
	switch {
	case errors.Is(err, domain.ErrProductReferenced):
		r.log.Info().Str("entity", entityName).Str("op", op).Str("id", id).Msg("eliminación pendiente de confirmar en cascada")
	case err != nil:
		r.log.Error().Err(err).Str("entity", entityName).Str("op", op).Str("id", id).Msg("mutación fallida")
	}
	if _, rerr := r.InvalidateAndReload(context.WithoutCancel(ctx)); rerr != nil {
		r.log.Error().Err(rerr).Str("entity", entityName).Str("op", op).Msg("recarga tras mutación fallida")
	}
	return err
}
