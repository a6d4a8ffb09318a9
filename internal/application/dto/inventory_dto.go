package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMovementRequest body para POST /api/movements.
// La validación es orientativa: el libro acepta lo que pase estas reglas de formulario.
type CreateMovementRequest struct {
	Type      string           `json:"type" validate:"required,oneof=Ingreso Salida"`
	ProductID string           `json:"product_id" validate:"required"`
	Quantity  int              `json:"quantity" validate:"min=0"`
	Height    *float64         `json:"height,omitempty" validate:"omitempty,gte=0"`
	Width     *float64         `json:"width,omitempty" validate:"omitempty,gte=0"`
	Warehouse string           `json:"warehouse" validate:"required,max=100"`
	Notes     string           `json:"notes" validate:"max=500"`
	Cost      *decimal.Decimal `json:"cost,omitempty"`
}

// AmendMovementRequest body para PATCH /api/movements/:id. Solo se sobrescriben los campos presentes.
type AmendMovementRequest struct {
	Quantity  *int             `json:"quantity" validate:"omitempty,min=0"`
	Height    *float64         `json:"height" validate:"omitempty,gte=0"`
	Width     *float64         `json:"width" validate:"omitempty,gte=0"`
	Warehouse *string          `json:"warehouse" validate:"omitempty,min=1,max=100"`
	Notes     *string          `json:"notes" validate:"omitempty,max=500"`
	Cost      *decimal.Decimal `json:"cost"`
}

// MovementResponse salida de un movimiento del libro.
type MovementResponse struct {
	ID          string           `json:"id"`
	Date        time.Time        `json:"date"`
	Type        string           `json:"type"`
	ProductID   string           `json:"product_id"`
	ProductName string           `json:"product_name"`
	Quantity    int              `json:"quantity"`
	Height      *float64         `json:"height,omitempty"`
	Width       *float64         `json:"width,omitempty"`
	Warehouse   string           `json:"warehouse"`
	Notes       string           `json:"notes,omitempty"`
	Cost        *decimal.Decimal `json:"cost,omitempty"`
}

// MovementListResponse libro (o su búsqueda), más reciente primero.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Total int                `json:"total"`
}

// MovementFilter búsqueda en el historial: tipo y texto libre sobre producto o almacén.
type MovementFilter struct {
	Type string `query:"type" validate:"omitempty,oneof=Todos Ingreso Salida"`
	Q    string `query:"q" validate:"max=200"`
}
