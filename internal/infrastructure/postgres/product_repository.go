package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jhoicas/inventario-planchas/internal/domain"
	"github.com/jhoicas/inventario-planchas/internal/domain/entity"
	"github.com/jhoicas/inventario-planchas/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

var productColumns = []string{
	"id", "code", "name", "type", "quantity", "min_quantity", "max_quantity",
	"height", "width", "area", "cost", "created_at",
}

type productRow struct {
	ID          string          `db:"id"`
	Code        string          `db:"code"`
	Name        string          `db:"name"`
	Type        string          `db:"type"`
	Quantity    int             `db:"quantity"`
	MinQuantity int             `db:"min_quantity"`
	MaxQuantity int             `db:"max_quantity"`
	Height      *float64        `db:"height"`
	Width       *float64        `db:"width"`
	Area        *float64        `db:"area"`
	Cost        decimal.Decimal `db:"cost"`
	CreatedAt   time.Time       `db:"created_at"`
}

func (r productRow) toEntity() *entity.Product {
	return &entity.Product{
		ID:          r.ID,
		Code:        r.Code,
		Name:        r.Name,
		Type:        r.Type,
		Quantity:    r.Quantity,
		MinQuantity: r.MinQuantity,
		MaxQuantity: r.MaxQuantity,
		Height:      r.Height,
		Width:       r.Width,
		Area:        r.Area,
		Cost:        r.Cost,
		CreatedAt:   r.CreatedAt,
	}
}

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	sql, args, err := psql.Insert("products").SetMap(map[string]any{
		"id":           p.ID,
		"code":         p.Code,
		"name":         p.Name,
		"type":         p.Type,
		"quantity":     p.Quantity,
		"min_quantity": p.MinQuantity,
		"max_quantity": p.MaxQuantity,
		"height":       p.Height,
		"width":        p.Width,
		"area":         p.Area,
		"cost":         p.Cost,
		"created_at":   p.CreatedAt,
	}).ToSql()
	if err != nil {
		return fmt.Errorf("build insert product: %w", err)
	}
	if _, err := r.q.Exec(ctx, sql, args...); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil
	}
	sql, args, err := psql.Select(productColumns...).From("products").Where("id = ?", id).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get product: %w", err)
	}
	var row productRow
	if err := pgxscan.Get(ctx, r.q, &row, sql, args...); err != nil {
		if pgxscan.NotFound(err) || isInvalidText(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return row.toEntity(), nil
}

// Update aplica el parche; solo se escriben las columnas presentes.
func (r *ProductRepo) Update(ctx context.Context, id string, patch entity.ProductPatch) error {
	set := map[string]any{}
	if patch.Code != nil {
		set["code"] = *patch.Code
	}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Type != nil {
		set["type"] = *patch.Type
	}
	if patch.MinQuantity != nil {
		set["min_quantity"] = *patch.MinQuantity
	}
	if patch.MaxQuantity != nil {
		set["max_quantity"] = *patch.MaxQuantity
	}
	if patch.Height != nil {
		set["height"] = *patch.Height
	}
	if patch.Width != nil {
		set["width"] = *patch.Width
	}
	if patch.Area != nil {
		set["area"] = *patch.Area
	}
	if len(set) == 0 {
		return r.mustExist(ctx, id)
	}
	return r.update(ctx, id, set)
}

// UpdateCost sobrescribe el último costo unitario observado.
func (r *ProductRepo) UpdateCost(ctx context.Context, id string, cost decimal.Decimal) error {
	return r.update(ctx, id, map[string]any{"cost": cost})
}

func (r *ProductRepo) update(ctx context.Context, id string, set map[string]any) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrNotFound
	}
	sql, args, err := psql.Update("products").SetMap(set).Where("id = ?", id).ToSql()
	if err != nil {
		return fmt.Errorf("build update product: %w", err)
	}
	tag, err := r.q.Exec(ctx, sql, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProductRepo) mustExist(ctx context.Context, id string) error {
	p, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return nil
}

// ListAll devuelve el catálogo, más reciente primero.
func (r *ProductRepo) ListAll(ctx context.Context) ([]*entity.Product, error) {
	sql, args, err := psql.Select(productColumns...).From("products").OrderBy("created_at DESC", "id DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list products: %w", err)
	}
	var rows []productRow
	if err := pgxscan.Select(ctx, r.q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	out := make([]*entity.Product, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toEntity())
	}
	return out, nil
}

// Delete elimina el producto. Si tiene movimientos la llave foránea lo impide y se devuelve
// domain.ErrProductReferenced para que el llamador pida confirmación de borrado en cascada.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrNotFound
	}
	sql, args, err := psql.Delete("products").Where("id = ?", id).ToSql()
	if err != nil {
		return fmt.Errorf("build delete product: %w", err)
	}
	tag, err := r.q.Exec(ctx, sql, args...)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrProductReferenced
		}
		return fmt.Errorf("delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
