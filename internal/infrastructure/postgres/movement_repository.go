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

var _ repository.MovementRepository = (*MovementRepo)(nil)

var movementColumns = []string{
	"id", "created_at", "type", "product_id", "product_name", "quantity",
	"height", "width", "warehouse", "notes", "cost",
}

type movementRow struct {
	ID          string              `db:"id"`
	CreatedAt   time.Time           `db:"created_at"`
	Type        string              `db:"type"`
	ProductID   string              `db:"product_id"`
	ProductName string              `db:"product_name"`
	Quantity    int                 `db:"quantity"`
	Height      *float64            `db:"height"`
	Width       *float64            `db:"width"`
	Warehouse   string              `db:"warehouse"`
	Notes       string              `db:"notes"`
	Cost        decimal.NullDecimal `db:"cost"`
}

func (r movementRow) toEntity() *entity.Movement {
	return &entity.Movement{
		ID:          r.ID,
		Date:        r.CreatedAt,
		Type:        r.Type,
		ProductID:   r.ProductID,
		ProductName: r.ProductName,
		Quantity:    r.Quantity,
		Height:      r.Height,
		Width:       r.Width,
		Warehouse:   r.Warehouse,
		Notes:       r.Notes,
		Cost:        r.Cost,
	}
}

// MovementRepo implementación del libro de movimientos sobre PostgreSQL (usable con pool o tx).
// La fecha la asigna la base (created_at DEFAULT now()); seq rompe empates de orden.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create inserta el movimiento y deja en m.Date la fecha asignada por la base.
func (r *MovementRepo) Create(ctx context.Context, m *entity.Movement) error {
	if _, err := uuid.Parse(m.ProductID); err != nil {
		return domain.ErrNotFound
	}
	sql, args, err := psql.Insert("movements").SetMap(map[string]any{
		"id":           m.ID,
		"type":         m.Type,
		"product_id":   m.ProductID,
		"product_name": m.ProductName,
		"quantity":     m.Quantity,
		"height":       m.Height,
		"width":        m.Width,
		"warehouse":    m.Warehouse,
		"notes":        m.Notes,
		"cost":         m.Cost,
	}).Suffix("RETURNING created_at").ToSql()
	if err != nil {
		return fmt.Errorf("build insert movement: %w", err)
	}
	if err := r.q.QueryRow(ctx, sql, args...).Scan(&m.Date); err != nil {
		switch {
		case isForeignKeyViolation(err):
			return domain.ErrNotFound
		case isUniqueViolation(err):
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento. (nil, nil) si no existe.
func (r *MovementRepo) GetByID(ctx context.Context, id string) (*entity.Movement, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil
	}
	sql, args, err := psql.Select(movementColumns...).From("movements").Where("id = ?", id).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get movement: %w", err)
	}
	var row movementRow
	if err := pgxscan.Get(ctx, r.q, &row, sql, args...); err != nil {
		if pgxscan.NotFound(err) || isInvalidText(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return row.toEntity(), nil
}

// Update aplica la corrección. Tipo, producto y fecha no se tocan.
func (r *MovementRepo) Update(ctx context.Context, id string, patch entity.MovementPatch) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrNotFound
	}
	set := map[string]any{}
	if patch.Quantity != nil {
		set["quantity"] = *patch.Quantity
	}
	if patch.Height != nil {
		set["height"] = *patch.Height
	}
	if patch.Width != nil {
		set["width"] = *patch.Width
	}
	if patch.Warehouse != nil {
		set["warehouse"] = *patch.Warehouse
	}
	if patch.Notes != nil {
		set["notes"] = *patch.Notes
	}
	if patch.Cost != nil {
		set["cost"] = *patch.Cost
	}
	if len(set) == 0 {
		m, err := r.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if m == nil {
			return domain.ErrNotFound
		}
		return nil
	}
	sql, args, err := psql.Update("movements").SetMap(set).Where("id = ?", id).ToSql()
	if err != nil {
		return fmt.Errorf("build update movement: %w", err)
	}
	tag, err := r.q.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update movement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un movimiento.
func (r *MovementRepo) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrNotFound
	}
	sql, args, err := psql.Delete("movements").Where("id = ?", id).ToSql()
	if err != nil {
		return fmt.Errorf("build delete movement: %w", err)
	}
	tag, err := r.q.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("delete movement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteByProduct elimina el historial completo de un producto (borrado en cascada confirmado).
func (r *MovementRepo) DeleteByProduct(ctx context.Context, productID string) (int64, error) {
	if _, err := uuid.Parse(productID); err != nil {
		return 0, nil
	}
	sql, args, err := psql.Delete("movements").Where("product_id = ?", productID).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete movements by product: %w", err)
	}
	tag, err := r.q.Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("delete movements by product: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ListAll devuelve el libro completo, más reciente primero.
func (r *MovementRepo) ListAll(ctx context.Context) ([]*entity.Movement, error) {
	sql, args, err := psql.Select(movementColumns...).From("movements").OrderBy("created_at DESC", "seq DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list movements: %w", err)
	}
	var rows []movementRow
	if err := pgxscan.Select(ctx, r.q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	out := make([]*entity.Movement, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toEntity())
	}
	return out, nil
}
