package inventory

import "github.com/jhoicas/inventario-planchas/internal/domain/entity"

// Project reproduce el libro completo y devuelve la cantidad actual por producto.
// Ingreso suma, Salida resta y cualquier otro tipo se ignora. No hay acotamiento: el stock negativo
// se conserva porque señala un problema en los datos. Los movimientos cuyo producto ya no existe
// no aportan nada.
func Project(movements []*entity.Movement, products []*entity.Product) map[string]int {
	stock := make(map[string]int, len(products))
	for _, p := range products {
		stock[p.ID] = 0
	}
	for _, m := range movements {
		current, ok := stock[m.ProductID]
		if !ok {
			continue
		}
		switch m.Type {
		case entity.MovementTypeIngreso:
			stock[m.ProductID] = current + m.Quantity
		case entity.MovementTypeSalida:
			stock[m.ProductID] = current - m.Quantity
		}
	}
	return stock
}

// ApplyProjection sobrescribe Quantity en cada producto con el valor proyectado.
func ApplyProjection(products []*entity.Product, stock map[string]int) {
	for _, p := range products {
		p.Quantity = stock[p.ID]
	}
}
