package inventory

import "github.com/jhoicas/inventario-planchas/internal/domain/entity"

// AreaContribution decide el área (m2) que aporta un movimiento. Gana la primera regla que aplica:
//
//  1. El movimiento trae alto y ancho positivos: alto × ancho × cantidad, y si la cantidad es 0
//     se toma como una sola pieza medida.
//  2. El producto es Plancha: alto × ancho del catálogo × cantidad, sin forzar el 1
//     (cantidad 0 da área 0).
//  3. En otro caso el aporte es 0.
//
// product puede ser nil cuando el movimiento apunta a un producto eliminado.
func AreaContribution(m *entity.Movement, product *entity.Product) float64 {
	if m.HasMeasures() {
		multiplier := m.Quantity
		if multiplier == 0 {
			multiplier = 1
		}
		return *m.Height * *m.Width * float64(multiplier)
	}
	if product.IsPlancha() {
		return deref(product.Height) * deref(product.Width) * float64(m.Quantity)
	}
	return 0
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
