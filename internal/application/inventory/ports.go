package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/inventario-planchas/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Registrar un ingreso y actualizar el costo del producto ocurren juntos o no ocurren.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// RGB color de relleno de la cabecera de tabla.
type RGB struct {
	R, G, B int
}

// TableDocument tabla ya formateada para el generador de documentos paginados.
type TableDocument struct {
	Title       string
	Lines       []string // líneas bajo el título (rango, fecha de generación)
	Header      []string
	Rows        [][]string
	HeaderColor RGB
}

// DocumentGenerator produce un documento imprimible (PDF) a partir de una tabla.
type DocumentGenerator interface {
	GenerateTable(doc TableDocument) ([]byte, error)
}

// Sheet hoja de cálculo: una fila es un mapeo columna → valor; Columns fija el orden.
type Sheet struct {
	Name    string
	Columns []string
	Rows    []map[string]any
}

// SpreadsheetGenerator produce un libro descargable (XLSX) a partir de una hoja.
type SpreadsheetGenerator interface {
	GenerateSheet(sheet Sheet) ([]byte, error)
}

// Metrics recibe las observaciones del libro y los reportes.
type Metrics interface {
	ObserveMutation(entity, op string, err error)
	ObserveReload(result string, elapsed time.Duration)
	ObserveReport(reportType, format string)
}

// Resultados de una recarga.
const (
	ReloadApplied = "applied"
	ReloadStale   = "stale"
	ReloadError   = "error"
)

type nopMetrics struct{}

func (nopMetrics) ObserveMutation(string, string, error) {}
func (nopMetrics) ObserveReload(string, time.Duration) {}
func (nopMetrics) ObserveReport(string, string) {}
