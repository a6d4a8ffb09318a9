package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-planchas/internal/application/dto"
	"github.com/jhoicas/inventario-planchas/internal/domain/entity"
	"github.com/jhoicas/inventario-planchas/internal/domain/inventory"
)

// Las cifras financieras se recortan aquí, al armar la respuesta: un principal sin visibilidad
// financiera nunca recibe costos.

// ToProductResponse arma la respuesta de un producto con su estado de stock.
func ToProductResponse(p *entity.Product, principal entity.Principal) dto.ProductResponse {
	out := dto.ProductResponse{
		ID:          p.ID,
		Code:        p.Code,
		Name:        p.Name,
		Type:        p.Type,
		Quantity:    p.Quantity,
		MinQuantity: p.MinQuantity,
		MaxQuantity: p.MaxQuantity,
		Height:      p.Height,
		Width:       p.Width,
		Area:        p.Area,
		Status:      inventory.StockStatus(p),
		CreatedAt:   p.CreatedAt,
	}
	if principal.CanViewFinancials() {
		cost := p.Cost
		out.Cost = &cost
	}
	return out
}

// ToMovementResponse arma la respuesta de un movimiento.
func ToMovementResponse(m *entity.Movement, principal entity.Principal) dto.MovementResponse {
	out := dto.MovementResponse{
		ID:          m.ID,
		Date:        m.Date,
		Type:        m.Type,
		ProductID:   m.ProductID,
		ProductName: m.ProductName,
		Quantity:    m.Quantity,
		Height:      m.Height,
		Width:       m.Width,
		Warehouse:   m.Warehouse,
		Notes:       m.Notes,
	}
	if principal.CanViewFinancials() && m.Cost.Valid {
		cost := m.Cost.Decimal
		out.Cost = &cost
	}
	return out
}

// ToMovementResponses arma una lista de respuestas conservando el orden.
func ToMovementResponses(movements []*entity.Movement, principal entity.Principal) []dto.MovementResponse {
	out := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, ToMovementResponse(m, principal))
	}
	return out
}

// MovementTotal es costo × cantidad, solo cuando el movimiento trae costo positivo.
func MovementTotal(m *entity.Movement) (decimal.Decimal, bool) {
	if !m.Cost.Valid || !m.Cost.Decimal.IsPositive() {
		return decimal.Zero, false
	}
	return m.Cost.Decimal.Mul(decimal.NewFromInt(int64(m.Quantity))), true
}
