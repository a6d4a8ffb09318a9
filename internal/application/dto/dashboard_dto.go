package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
type DashboardSummaryDTO struct {
	ProductCount int `json:"product_count"`
	IngresoCount int `json:"ingreso_count"`
	SalidaCount  int `json:"salida_count"`

	// Valor total Σ(cantidad × costo); solo para Admon.
	InventoryValue *decimal.Decimal `json:"inventory_value,omitempty"`

	LowStock []ProductStatDTO  `json:"low_stock"`
	Products []ProductStatDTO  `json:"products"`
	Recent   []MovementResponse `json:"recent"`

	DateLabel string `json:"date_label"` // ej: "Febrero 2026"
}

// ProductStatDTO estadística por producto para el tablero.
type ProductStatDTO struct {
	ProductID    string     `json:"product_id"`
	Code         string     `json:"code"`
	Name         string     `json:"name"`
	Quantity     int        `json:"quantity"`
	Status       string     `json:"status"`
	IngresoCount int        `json:"ingreso_count"`
	SalidaCount  int        `json:"salida_count"`
	LastMovement *time.Time `json:"last_movement,omitempty"`
}
