package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento del libro.
const (
	MovementTypeIngreso = "Ingreso" // entrada de stock
	MovementTypeSalida  = "Salida"  // salida de stock
	// MovementTypeEdicion existe en datos históricos; ningún flujo actual lo produce.
	MovementTypeEdicion = "Edición"
)

// Movement es una entrada del libro de movimientos. Date la asigna el almacén al insertar y no cambia.
type Movement struct {
	ID          string
	Date        time.Time
	Type        string // Ingreso, Salida, Edición
	ProductID   string
	ProductName string // copia al momento de registrar; no sigue renombres del producto
	Quantity    int    // conteo de piezas, no negativo
	Height      *float64
	Width       *float64
	Warehouse   string // etiqueta informativa, no participa en el stock
	Notes       string
	Cost        decimal.NullDecimal // solo significativo en Ingreso
}

// HasMeasures indica si el movimiento trae alto y ancho positivos.
func (m *Movement) HasMeasures() bool {
	return m.Height != nil && m.Width != nil && *m.Height > 0 && *m.Width > 0
}

// MovementPatch es una corrección parcial. Type, ProductID y Date son inmutables y no aparecen aquí.
type MovementPatch struct {
	Quantity  *int
	Height    *float64
	Width     *float64
	Warehouse *string
	Notes     *string
	Cost      *decimal.Decimal
}

// Empty indica si la corrección no trae ningún campo.
func (p MovementPatch) Empty() bool {
	return p.Quantity == nil && p.Height == nil && p.Width == nil &&
		p.Warehouse == nil && p.Notes == nil && p.Cost == nil
}

// Apply sobrescribe en el movimiento los campos presentes en la corrección.
func (p MovementPatch) Apply(m *Movement) {
	if p.Quantity != nil {
		m.Quantity = *p.Quantity
	}
	if p.Height != nil {
		m.Height = p.Height
	}
	if p.Width != nil {
		m.Width = p.Width
	}
	if p.Warehouse != nil {
		m.Warehouse = *p.Warehouse
	}
	if p.Notes != nil {
		m.Notes = *p.Notes
	}
	if p.Cost != nil {
		m.Cost = decimal.NewNullDecimal(*p.Cost)
	}
}

// ValidMovementType indica si t pertenece al dominio de tipos (incluye el histórico Edición).
func ValidMovementType(t string) bool {
	return t == MovementTypeIngreso || t == MovementTypeSalida || t == MovementTypeEdicion
}
