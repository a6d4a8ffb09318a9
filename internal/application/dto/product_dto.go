package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. Quantity se ignora: todo producto nace en 0.
type CreateProductRequest struct {
	Code        string           `json:"code" validate:"required,min=1,max=100"`
	Name        string           `json:"name" validate:"required,min=1,max=200"`
	Type        string           `json:"type" validate:"required,oneof=Plancha Unidad"`
	Quantity    *int             `json:"quantity,omitempty"`
	MinQuantity int              `json:"min_quantity" validate:"min=0"`
	MaxQuantity int              `json:"max_quantity" validate:"min=0"`
	Height      *float64         `json:"height,omitempty" validate:"omitempty,gte=0"`
	Width       *float64         `json:"width,omitempty" validate:"omitempty,gte=0"`
	Area        *float64         `json:"area,omitempty" validate:"omitempty,gte=0"`
	Cost        *decimal.Decimal `json:"cost,omitempty"`
}

// UpdateProductRequest entrada para actualizar un producto (sin Cost ni Quantity).
type UpdateProductRequest struct {
	Code        *string  `json:"code" validate:"omitempty,min=1,max=100"`
	Name        *string  `json:"name" validate:"omitempty,min=1,max=200"`
	Type        *string  `json:"type" validate:"omitempty,oneof=Plancha Unidad"`
	MinQuantity *int     `json:"min_quantity" validate:"omitempty,min=0"`
	MaxQuantity *int     `json:"max_quantity" validate:"omitempty,min=0"`
	Height      *float64 `json:"height" validate:"omitempty,gte=0"`
	Width       *float64 `json:"width" validate:"omitempty,gte=0"`
	Area        *float64 `json:"area" validate:"omitempty,gte=0"`
}

// ProductResponse salida de un producto con la cantidad proyectada.
// Cost solo viaja para principales con visibilidad financiera.
type ProductResponse struct {
	ID          string           `json:"id"`
	Code        string           `json:"code"`
	Name        string           `json:"name"`
	Type        string           `json:"type"`
	Quantity    int              `json:"quantity"`
	MinQuantity int              `json:"min_quantity"`
	MaxQuantity int              `json:"max_quantity"`
	Height      *float64         `json:"height,omitempty"`
	Width       *float64         `json:"width,omitempty"`
	Area        *float64         `json:"area,omitempty"`
	Cost        *decimal.Decimal `json:"cost,omitempty"`
	Status      string           `json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
}

// ProductListResponse catálogo completo.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}

// DeleteProductRequest parámetros de DELETE /api/products/:id.
type DeleteProductRequest struct {
	Cascade bool `query:"cascade"`
}

// StockResponse proyección productId → cantidad, con la secuencia de la recarga que la produjo.
type StockResponse struct {
	Stock map[string]int `json:"stock"`
	Seq   uint64         `json:"seq"`
}
