package dto

import "github.com/shopspring/decimal"

// ReportRequest parámetros de GET /api/reports y /api/reports/export.
// Start y End son fechas YYYY-MM-DD; con All=true se ignoran.
type ReportRequest struct {
	Type   string `query:"type" validate:"required,oneof=Ingreso Salida Diferencia"`
	Start  string `query:"start" validate:"omitempty,datetime=2006-01-02"`
	End    string `query:"end" validate:"omitempty,datetime=2006-01-02"`
	All    bool   `query:"all"`
	Format string `query:"format" validate:"omitempty,oneof=pdf xlsx"`
}

// DifferenceRowDTO fila del reporte de diferencias.
type DifferenceRowDTO struct {
	ProductID   string  `json:"product_id"`
	Code        string  `json:"code"`
	ProductName string  `json:"product_name"`
	QtyIn       int     `json:"qty_in"`
	QtyOut      int     `json:"qty_out"`
	NetQty      int     `json:"net_qty"`
	AreaIn      float64 `json:"area_in"`
	AreaOut     float64 `json:"area_out"`
	NetArea     float64 `json:"net_area"`
}

// ReportMovementDTO fila de los reportes de Ingreso/Salida.
type ReportMovementDTO struct {
	MovementResponse
	Total *decimal.Decimal `json:"total,omitempty"` // costo × cantidad
}

// ReportResponse respuesta de GET /api/reports. Generated=false cuando falta algún límite del rango.
type ReportResponse struct {
	Type        string              `json:"type"`
	Generated   bool                `json:"generated"`
	RangeLabel  string              `json:"range_label,omitempty"`
	Movements   []ReportMovementDTO `json:"movements,omitempty"`
	Differences []DifferenceRowDTO  `json:"differences,omitempty"`
}

// ExportFile archivo generado para descarga.
type ExportFile struct {
	FileName    string
	ContentType string
	Content     []byte
}
