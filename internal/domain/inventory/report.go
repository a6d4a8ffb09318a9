package inventory

import (
	"time"

	"github.com/jhoicas/inventario-planchas/internal/domain/entity"
)

// ReportType es la pestaña de reporte: lista de ingresos, lista de salidas o diferencia por producto.
type ReportType string

const (
	ReportIngreso    ReportType = "Ingreso"
	ReportSalida     ReportType = "Salida"
	ReportDiferencia ReportType = "Diferencia"
)

// Valid indica si t es un tipo de reporte conocido.
func (t ReportType) Valid() bool {
	return t == ReportIngreso || t == ReportSalida || t == ReportDiferencia
}

// Filter selecciona el rango y el tipo de reporte.
// Con AllTime se usa el libro completo; si no, Start y End son días calendario y un valor cero
// significa que el límite no se ha indicado.
type Filter struct {
	AllTime bool
	Start   time.Time
	End     time.Time
	Type    ReportType
}

// Ready indica si el filtro alcanza para generar un reporte.
func (f Filter) Ready() bool {
	return f.AllTime || (!f.Start.IsZero() && !f.End.IsZero())
}

// Contains indica si el instante t cae dentro de los días completos de Start a End.
// El rango va desde el inicio del día Start hasta antes del inicio del día siguiente a End.
func (f Filter) Contains(t time.Time) bool {
	if f.AllTime {
		return true
	}
	from := startOfDay(f.Start)
	to := startOfDay(f.End).AddDate(0, 0, 1)
	return !t.Before(from) && t.Before(to)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DifferenceRow acumula entradas y salidas de un producto en las dos medidas (unidades y área).
type DifferenceRow struct {
	ProductID   string
	Code        string // vacío cuando el producto ya no existe
	ProductName string
	QtyIn       int
	QtyOut      int
	AreaIn      float64
	AreaOut     float64
}

// NetQty es la diferencia de unidades; se calcula al presentar, no se almacena.
func (r DifferenceRow) NetQty() int { return r.QtyIn - r.QtyOut }

// NetArea es la diferencia de área en m2.
func (r DifferenceRow) NetArea() float64 { return r.AreaIn - r.AreaOut }

// Report es la vista de solo lectura que produce Aggregate.
type Report struct {
	Filter      Filter
	Generated   bool
	Movements   []*entity.Movement // Ingreso/Salida: subconjunto filtrado, más reciente primero
	Differences []DifferenceRow    // Diferencia: una fila por producto
}

// Aggregate reduce el libro a un reporte según el filtro. movements debe venir ordenado
// más reciente primero, como lo entrega el libro; ese orden se conserva en las listas.
// Un rango con algún límite vacío no es error: devuelve un reporte vacío sin generar.
func Aggregate(movements []*entity.Movement, products []*entity.Product, f Filter) Report {
	report := Report{Filter: f}
	if !f.Ready() {
		return report
	}
	report.Generated = true

	inRange := make([]*entity.Movement, 0, len(movements))
	for _, m := range movements {
		if f.Contains(m.Date) {
			inRange = append(inRange, m)
		}
	}

	switch f.Type {
	case ReportIngreso, ReportSalida:
		report.Movements = make([]*entity.Movement, 0, len(inRange))
		for _, m := range inRange {
			if m.Type == string(f.Type) {
				report.Movements = append(report.Movements, m)
			}
		}
	case ReportDiferencia:
		report.Differences = differences(inRange, products)
	}
	return report
}

// differences agrupa por producto en el orden en que aparece cada uno por primera vez.
// Los tipos no reconocidos crean su fila pero no suman en ningún total.
func differences(movements []*entity.Movement, products []*entity.Product) []DifferenceRow {
	byID := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	index := make(map[string]int)
	rows := make([]DifferenceRow, 0)
	for _, m := range movements {
		product := byID[m.ProductID]
		i, ok := index[m.ProductID]
		if !ok {
			row := DifferenceRow{ProductID: m.ProductID, ProductName: m.ProductName}
			if product != nil {
				row.Code = product.Code
			}
			rows = append(rows, row)
			i = len(rows) - 1
			index[m.ProductID] = i
		}

		area := AreaContribution(m, product)
		switch m.Type {
		case entity.MovementTypeIngreso:
			rows[i].QtyIn += m.Quantity
			rows[i].AreaIn += area
		case entity.MovementTypeSalida:
			rows[i].QtyOut += m.Quantity
			rows[i].AreaOut += area
		}
	}
	return rows
}
