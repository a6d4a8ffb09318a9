package inventory

import (
	"github.com/jhoicas/inventario-planchas/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// CostUpdate devuelve el nuevo costo de referencia del producto cuando el movimiento es un Ingreso
// con costo positivo. El costo es el último observado: no hay promedio ponderado ni lotes.
func CostUpdate(m *entity.Movement) (decimal.Decimal, bool) {
	if m.Type != entity.MovementTypeIngreso || !m.Cost.Valid {
		return decimal.Zero, false
	}
	if !m.Cost.Decimal.GreaterThan(decimal.Zero) {
		return decimal.Zero, false
	}
	return m.Cost.Decimal, true
}
