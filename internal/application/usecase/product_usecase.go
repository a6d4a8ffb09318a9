package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-planchas/internal/application/dto"
	appinventory "github.com/jhoicas/inventario-planchas/internal/application/inventory"
	"github.com/jhoicas/inventario-planchas/internal/domain"
	"github.com/jhoicas/inventario-planchas/internal/domain/entity"
	"github.com/jhoicas/inventario-planchas/internal/domain/repository"
)

// ProductUseCase mantiene el catálogo. Quantity nunca se guarda: se proyecta desde el libro,
// y el costo lo actualizan los ingresos.
type ProductUseCase struct {
	repo     repository.ProductRepository
	txRunner appinventory.TxRunner
	reloader *appinventory.Reloader
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, txRunner appinventory.TxRunner, reloader *appinventory.Reloader) *ProductUseCase {
	return &ProductUseCase{repo: repo, txRunner: txRunner, reloader: reloader}
}

// Create crea un producto con cantidad 0 sin importar lo que envíe el llamador.
// Los umbrales ausentes toman 5/100 y una Plancha sin área la calcula de alto × ancho.
func (uc *ProductUseCase) Create(ctx context.Context, principal entity.Principal, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if !principal.CanWrite() {
		return nil, domain.ErrForbidden
	}
	product := &entity.Product{
		ID:          uuid.New().String(),
		Code:        in.Code,
		Name:        in.Name,
		Type:        in.Type,
		Quantity:    0,
		MinQuantity: orDefault(in.MinQuantity, entity.DefaultMinQuantity),
		MaxQuantity: orDefault(in.MaxQuantity, entity.DefaultMaxQuantity),
		Height:      in.Height,
		Width:       in.Width,
		Area:        in.Area,
		Cost:        decimal.Zero,
		CreatedAt:   time.Now(),
	}
	if product.Area == nil && product.IsPlancha() && product.Height != nil && product.Width != nil {
		area := *product.Height * *product.Width
		product.Area = &area
	}
	if in.Cost != nil && principal.CanViewFinancials() {
		product.Cost = *in.Cost
	}

	err := uc.repo.Create(ctx, product)
	if err := uc.reloader.Settle(ctx, appinventory.EntityProduct, "create", product.ID, err); err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, principal, product.ID)
}

// GetByID obtiene un producto de la vista vigente, con su cantidad proyectada. (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, principal entity.Principal, id string) (*dto.ProductResponse, error) {
	snap, err := uc.reloader.Current(ctx)
	if err != nil {
		return nil, err
	}
	product := snap.Product(id)
	if product == nil {
		return nil, nil
	}
	out := appinventory.ToProductResponse(product, principal)
	return &out, nil
}

// Update actualiza en sitio los campos presentes. No permite modificar Cost ni Quantity.
func (uc *ProductUseCase) Update(ctx context.Context, principal entity.Principal, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if !principal.CanWrite() {
		return nil, domain.ErrForbidden
	}
	patch := entity.ProductPatch{
		Code:        in.Code,
		Name:        in.Name,
		Type:        in.Type,
		MinQuantity: in.MinQuantity,
		MaxQuantity: in.MaxQuantity,
		Height:      in.Height,
		Width:       in.Width,
		Area:        in.Area,
	}
	if patch.MinQuantity != nil && *patch.MinQuantity <= 0 {
		patch.MinQuantity = intPtr(entity.DefaultMinQuantity)
	}
	if patch.MaxQuantity != nil && *patch.MaxQuantity <= 0 {
		patch.MaxQuantity = intPtr(entity.DefaultMaxQuantity)
	}
	if patch.Area == nil && (patch.Height != nil || patch.Width != nil || patch.Type != nil) {
		if err := uc.deriveArea(ctx, id, &patch); err != nil {
			return nil, err
		}
	}

	err := uc.repo.Update(ctx, id, patch)
	if err := uc.reloader.Settle(ctx, appinventory.EntityProduct, "update", id, err); err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, principal, id)
}

// deriveArea recalcula el área de una Plancha cuando el parche cambia sus medidas sin traer área.
func (uc *ProductUseCase) deriveArea(ctx context.Context, id string, patch *entity.ProductPatch) error {
	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if current == nil {
		return domain.ErrNotFound
	}
	next := *current
	patch.Apply(&next)
	if next.IsPlancha() && next.Height != nil && next.Width != nil {
		area := *next.Height * *next.Width
		patch.Area = &area
	}
	return nil
}

// List devuelve el catálogo completo con cantidades proyectadas, más reciente primero.
func (uc *ProductUseCase) List(ctx context.Context, principal entity.Principal) (*dto.ProductListResponse, error) {
	snap, err := uc.reloader.Current(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(snap.Products))
	for _, p := range snap.Products {
		items = append(items, appinventory.ToProductResponse(p, principal))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

// Stock devuelve la proyección productId → cantidad de la vista vigente.
func (uc *ProductUseCase) Stock(ctx context.Context) (*dto.StockResponse, error) {
	snap, err := uc.reloader.Current(ctx)
	if err != nil {
		return nil, err
	}
	stock := make(map[string]int, len(snap.Stock))
	for id, qty := range snap.Stock {
		stock[id] = qty
	}
	return &dto.StockResponse{Stock: stock, Seq: snap.Seq}, nil
}

// Delete elimina el producto. Si tiene movimientos y cascade es false devuelve
// domain.ErrProductReferenced sin tocar nada; con cascade elimina producto y movimientos juntos.
func (uc *ProductUseCase) Delete(ctx context.Context, principal entity.Principal, id string, cascade bool) error {
	if !principal.CanWrite() {
		return domain.ErrForbidden
	}
	err := uc.repo.Delete(ctx, id)
	if errors.Is(err, domain.ErrProductReferenced) && cascade {
		err = uc.txRunner.Run(ctx, func(movRepo repository.MovementRepository, productRepo repository.ProductRepository) error {
			if _, err := movRepo.DeleteByProduct(ctx, id); err != nil {
				return err
			}
			return productRepo.Delete(ctx, id)
		})
	}
	return uc.reloader.Settle(ctx, appinventory.EntityProduct, "delete", id, err)
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

func intPtr(v int) *int { return &v }
