package usecase

import (
	"context"

	"github.com/jhoicas/inventario-planchas/internal/application/dto"
	appinventory "github.com/jhoicas/inventario-planchas/internal/application/inventory"
	"github.com/jhoicas/inventario-planchas/internal/domain/entity"
)

// WarehouseUseCase expone las etiquetas de almacén. Son informativas: no particionan el stock.
type WarehouseUseCase struct {
	reloader *appinventory.Reloader
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(reloader *appinventory.Reloader) *WarehouseUseCase {
	return &WarehouseUseCase{reloader: reloader}
}

// List devuelve las etiquetas predefinidas seguidas de las que solo aparecen en el libro,
// en orden de primera aparición (más reciente primero).
func (uc *WarehouseUseCase) List(ctx context.Context) (*dto.WarehouseListResponse, error) {
	snap, err := uc.reloader.Current(ctx)
	if err != nil {
		return nil, err
	}
	known := entity.KnownWarehouses()
	isKnown := make(map[string]bool, len(known))
	for _, w := range known {
		isKnown[w] = true
	}

	counts := make(map[string]int)
	var extra []string
	for _, m := range snap.Movements {
		if m.Warehouse == "" {
			continue
		}
		if _, seen := counts[m.Warehouse]; !seen && !isKnown[m.Warehouse] {
			extra = append(extra, m.Warehouse)
		}
		counts[m.Warehouse]++
	}

	items := make([]dto.WarehouseResponse, 0, len(known)+len(extra))
	for _, w := range known {
		items = append(items, dto.WarehouseResponse{Name: w, Known: true, Movements: counts[w]})
	}
	for _, w := range extra {
		items = append(items, dto.WarehouseResponse{Name: w, Movements: counts[w]})
	}
	return &dto.WarehouseListResponse{Items: items}, nil
}
