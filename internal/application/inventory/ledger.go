package inventory

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-planchas/internal/application/dto"
	"github.com/jhoicas/inventario-planchas/internal/domain"
	"github.com/jhoicas/inventario-planchas/internal/domain/entity"
	"github.com/jhoicas/inventario-planchas/internal/domain/inventory"
	"github.com/jhoicas/inventario-planchas/internal/domain/repository"
	"github.com/jhoicas/inventario-planchas/pkg/format"
)

// Entidades que reportan mutaciones al recargador.
const (
	EntityMovement = "movement"
	EntityProduct  = "product"
)

// LedgerUseCase es el libro de movimientos: registrar, corregir, eliminar y leer.
// Cada mutación termina con una recarga completa antes de devolver el control.
type LedgerUseCase struct {
	txRunner  TxRunner
	movements repository.MovementRepository
	products  repository.ProductRepository
	reloader  *Reloader
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(
	txRunner TxRunner,
	movements repository.MovementRepository,
	products repository.ProductRepository,
	reloader *Reloader,
) *LedgerUseCase {
	return &LedgerUseCase{
		txRunner:  txRunner,
		movements: movements,
		products:  products,
		reloader:  reloader,
	}
}

// Append registra un movimiento. El almacén asigna la fecha. Si es un Ingreso con costo positivo,
// en la misma transacción se sobrescribe el costo del producto (último costo gana).
func (uc *LedgerUseCase) Append(ctx context.Context, principal entity.Principal, in dto.CreateMovementRequest) (*dto.MovementResponse, error) {
	if !principal.CanWrite() {
		return nil, domain.ErrForbidden
	}
	m, err := uc.append(ctx, in)
	id := in.ProductID
	if m != nil {
		id = m.ID
	}
	if err := uc.reloader.Settle(ctx, EntityMovement, "append", id, err); err != nil {
		return nil, err
	}
	out := ToMovementResponse(m, principal)
	return &out, nil
}

func (uc *LedgerUseCase) append(ctx context.Context, in dto.CreateMovementRequest) (*entity.Movement, error) {
	product, err := uc.products.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	m := &entity.Movement{
		ID:          uuid.New().String(),
		Type:        in.Type,
		ProductID:   product.ID,
		ProductName: product.Name,
		Quantity:    in.Quantity,
		Height:      in.Height,
		Width:       in.Width,
		Warehouse:   strings.TrimSpace(in.Warehouse),
		Notes:       in.Notes,
	}
	// el costo solo aplica a ingresos
	if in.Cost != nil && in.Type == entity.MovementTypeIngreso {
		m.Cost = decimal.NewNullDecimal(*in.Cost)
	}

	err = uc.txRunner.Run(ctx, func(movRepo repository.MovementRepository, productRepo repository.ProductRepository) error {
		if err := movRepo.Create(ctx, m); err != nil {
			return err
		}
		if cost, ok := inventory.CostUpdate(m); ok {
			return productRepo.UpdateCost(ctx, m.ProductID, cost)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Amend corrige un movimiento con los campos presentes. Tipo, producto y fecha no cambian.
func (uc *LedgerUseCase) Amend(ctx context.Context, principal entity.Principal, id string, in dto.AmendMovementRequest) (*dto.MovementResponse, error) {
	if !principal.CanWrite() {
		return nil, domain.ErrForbidden
	}
	patch := entity.MovementPatch{
		Quantity:  in.Quantity,
		Height:    in.Height,
		Width:     in.Width,
		Warehouse: in.Warehouse,
		Notes:     in.Notes,
		Cost:      in.Cost,
	}
	var updated *entity.Movement
	err := uc.movements.Update(ctx, id, patch)
	if err == nil {
		updated, err = uc.movements.GetByID(ctx, id)
		if err == nil && updated == nil {
			err = domain.ErrNotFound
		}
	}
	if err := uc.reloader.Settle(ctx, EntityMovement, "amend", id, err); err != nil {
		return nil, err
	}
	out := ToMovementResponse(updated, principal)
	return &out, nil
}

// Remove elimina el movimiento sin dejar rastro.
func (uc *LedgerUseCase) Remove(ctx context.Context, principal entity.Principal, id string) error {
	if !principal.CanWrite() {
		return domain.ErrForbidden
	}
	err := uc.movements.Delete(ctx, id)
	return uc.reloader.Settle(ctx, EntityMovement, "remove", id, err)
}

// All devuelve el libro completo, más reciente primero.
func (uc *LedgerUseCase) All(ctx context.Context, principal entity.Principal) (*dto.MovementListResponse, error) {
	return uc.Search(ctx, principal, dto.MovementFilter{})
}

// Search filtra el historial por tipo (Todos, Ingreso, Salida) y por texto en el nombre del
// producto o el almacén, sin distinguir mayúsculas.
func (uc *LedgerUseCase) Search(ctx context.Context, principal entity.Principal, filter dto.MovementFilter) (*dto.MovementListResponse, error) {
	snap, err := uc.reloader.Current(ctx)
	if err != nil {
		return nil, err
	}
	q := format.Fold(strings.TrimSpace(filter.Q))
	matches := make([]*entity.Movement, 0, len(snap.Movements))
	for _, m := range snap.Movements {
		if filter.Type != "" && filter.Type != "Todos" && m.Type != filter.Type {
			continue
		}
		if q != "" && !strings.Contains(format.Fold(m.ProductName), q) && !strings.Contains(format.Fold(m.Warehouse), q) {
			continue
		}
		matches = append(matches, m)
	}
	return &dto.MovementListResponse{
		Items: ToMovementResponses(matches, principal),
		Total: len(matches),
	}, nil
}
