package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de producto.
const (
	ProductTypePlancha = "Plancha" // lámina o losa, se mide por área
	ProductTypeUnidad  = "Unidad"  // unidad discreta, el área siempre es 0
)

// Umbrales de reorden por defecto.
const (
	DefaultMinQuantity = 5
	DefaultMaxQuantity = 100
)

// Product representa una entrada del catálogo.
// Quantity nunca es almacenamiento autoritativo: se recalcula siempre desde el historial de movimientos.
type Product struct {
	ID          string
	Code        string // definido por el usuario, no se garantiza único
	Name        string
	Type        string // Plancha, Unidad
	Quantity    int    // proyección; se persiste 0 al crear
	MinQuantity int
	MaxQuantity int
	Height      *float64 // metros, solo significativo para Plancha
	Width       *float64
	Area        *float64
	Cost        decimal.Decimal // último costo unitario observado
	CreatedAt   time.Time
}

// IsPlancha indica si el producto se controla por área.
func (p *Product) IsPlancha() bool {
	return p != nil && p.Type == ProductTypePlancha
}

// ProductPatch es una actualización parcial del catálogo; solo se aplican los campos no nulos.
// El costo no se actualiza por aquí: lo mantiene el registro de ingresos.
type ProductPatch struct {
	Code        *string
	Name        *string
	Type        *string
	MinQuantity *int
	MaxQuantity *int
	Height      *float64
	Width       *float64
	Area        *float64
}

// Empty indica si el parche no trae ningún campo.
func (p ProductPatch) Empty() bool {
	return p.Code == nil && p.Name == nil && p.Type == nil && p.MinQuantity == nil &&
		p.MaxQuantity == nil && p.Height == nil && p.Width == nil && p.Area == nil
}

// Apply sobrescribe en el producto los campos presentes en el parche.
func (p ProductPatch) Apply(product *Product) {
	if p.Code != nil {
		product.Code = *p.Code
	}
	if p.Name != nil {
		product.Name = *p.Name
	}
	if p.Type != nil {
		product.Type = *p.Type
	}
	if p.MinQuantity != nil {
		product.MinQuantity = *p.MinQuantity
	}
	if p.MaxQuantity != nil {
		product.MaxQuantity = *p.MaxQuantity
	}
	if p.Height != nil {
		product.Height = p.Height
	}
	if p.Width != nil {
		product.Width = p.Width
	}
	if p.Area != nil {
		product.Area = p.Area
	}
}

// ValidProductType indica si t pertenece al dominio de tipos de producto.
func ValidProductType(t string) bool {
	return t == ProductTypePlancha || t == ProductTypeUnidad
}
