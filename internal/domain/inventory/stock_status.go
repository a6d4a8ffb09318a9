package inventory

import "github.com/jhoicas/inventario-planchas/internal/domain/entity"

// Estados de stock según los umbrales de reorden.
const (
	StatusBajo  = "Bajo"
	StatusMedio = "Medio"
	StatusAlto  = "Alto"
)

// StockStatus clasifica la cantidad proyectada del producto frente a sus umbrales.
func StockStatus(p *entity.Product) string {
	switch {
	case p.Quantity <= p.MinQuantity:
		return StatusBajo
	case p.Quantity >= p.MaxQuantity:
		return StatusAlto
	default:
		return StatusMedio
	}
}
