package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/inventario-planchas/internal/application/dto"
	"github.com/jhoicas/inventario-planchas/internal/domain"
	"github.com/jhoicas/inventario-planchas/internal/domain/entity"
	"github.com/jhoicas/inventario-planchas/internal/domain/inventory"
	"github.com/jhoicas/inventario-planchas/pkg/format"
)

// Formatos de exportación.
const (
	FormatPDF  = "pdf"
	FormatXLSX = "xlsx"
)

const dateLayout = "2006-01-02"

// Color de cabecera por pestaña.
var headerColors = map[inventory.ReportType]RGB{
	inventory.ReportIngreso:    {R: 22, G: 163, B: 74},
	inventory.ReportSalida:     {R: 220, G: 38, B: 38},
	inventory.ReportDiferencia: {R: 79, G: 70, B: 229},
}

// ReportUseCase arma los reportes sobre la vista vigente y los exporta. Los generadores reciben
// filas ya formateadas: no aplican reglas de negocio.
type ReportUseCase struct {
	reloader  *Reloader
	documents DocumentGenerator
	sheets    SpreadsheetGenerator
	metrics   Metrics
	loc       *time.Location
	now       func() time.Time
}

// NewReportUseCase construye el caso de uso. loc define los días calendario de los rangos.
func NewReportUseCase(reloader *Reloader, documents DocumentGenerator, sheets SpreadsheetGenerator, metrics Metrics, loc *time.Location) *ReportUseCase {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	if loc == nil {
		loc = time.Local
	}
	return &ReportUseCase{
		reloader:  reloader,
		documents: documents,
		sheets:    sheets,
		metrics:   metrics,
		loc:       loc,
		now:       time.Now,
	}
}

// Build devuelve el reporte para mostrar. Un rango incompleto no es error: Generated=false.
func (uc *ReportUseCase) Build(ctx context.Context, principal entity.Principal, req dto.ReportRequest) (*dto.ReportResponse, error) {
	report, err := uc.aggregate(ctx, req)
	if err != nil {
		return nil, err
	}
	resp := &dto.ReportResponse{
		Type:      req.Type,
		Generated: report.Generated,
	}
	if !report.Generated {
		return resp, nil
	}
	resp.RangeLabel = rangeLabel(req)
	if report.Filter.Type == inventory.ReportDiferencia {
		resp.Differences = make([]dto.DifferenceRowDTO, 0, len(report.Differences))
		for _, d := range report.Differences {
			resp.Differences = append(resp.Differences, dto.DifferenceRowDTO{
				ProductID:   d.ProductID,
				Code:        codeOrDash(d.Code),
				ProductName: d.ProductName,
				QtyIn:       d.QtyIn,
				QtyOut:      d.QtyOut,
				NetQty:      d.NetQty(),
				AreaIn:      d.AreaIn,
				AreaOut:     d.AreaOut,
				NetArea:     d.NetArea(),
			})
		}
		return resp, nil
	}
	resp.Movements = make([]dto.ReportMovementDTO, 0, len(report.Movements))
	for _, m := range report.Movements {
		row := dto.ReportMovementDTO{MovementResponse: ToMovementResponse(m, principal)}
		if total, ok := MovementTotal(m); ok && principal.CanViewFinancials() {
			row.Total = &total
		}
		resp.Movements = append(resp.Movements, row)
	}
	return resp, nil
}

// Export genera el archivo del reporte en req.Format (pdf por defecto).
func (uc *ReportUseCase) Export(ctx context.Context, principal entity.Principal, req dto.ReportRequest) (*dto.ExportFile, error) {
	report, err := uc.aggregate(ctx, req)
	if err != nil {
		return nil, err
	}
	if !report.Generated {
		return nil, fmt.Errorf("%w: indique fecha inicial y final o el histórico completo", domain.ErrInvalidInput)
	}
	outFormat := req.Format
	if outFormat == "" {
		outFormat = FormatPDF
	}

	header, rows, records := uc.table(report, principal)
	var file dto.ExportFile
	switch outFormat {
	case FormatPDF:
		content, err := uc.documents.GenerateTable(TableDocument{
			Title:       "Reporte de " + req.Type,
			Lines:       []string{rangeLabel(req), "Generado el: " + format.DateTime(uc.now(), uc.loc)},
			Header:      header,
			Rows:        rows,
			HeaderColor: headerColors[report.Filter.Type],
		})
		if err != nil {
			return nil, fmt.Errorf("generar pdf: %w", err)
		}
		file = dto.ExportFile{ContentType: "application/pdf", Content: content}
	case FormatXLSX:
		content, err := uc.sheets.GenerateSheet(Sheet{
			Name:    req.Type,
			Columns: sheetColumns(report.Filter.Type, principal),
			Rows:    records,
		})
		if err != nil {
			return nil, fmt.Errorf("generar xlsx: %w", err)
		}
		file = dto.ExportFile{ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", Content: content}
	default:
		return nil, fmt.Errorf("%w: formato %q", domain.ErrInvalidInput, outFormat)
	}
	file.FileName = exportFileName(req, outFormat)
	uc.metrics.ObserveReport(req.Type, outFormat)
	return &file, nil
}

func (uc *ReportUseCase) aggregate(ctx context.Context, req dto.ReportRequest) (inventory.Report, error) {
	f, err := uc.filter(req)
	if err != nil {
		return inventory.Report{}, err
	}
	snap, err := uc.reloader.Current(ctx)
	if err != nil {
		return inventory.Report{}, err
	}
	return inventory.Aggregate(snap.Movements, snap.Products, f), nil
}

func (uc *ReportUseCase) filter(req dto.ReportRequest) (inventory.Filter, error) {
	f := inventory.Filter{Type: inventory.ReportType(req.Type), AllTime: req.All}
	if !f.Type.Valid() {
		return f, fmt.Errorf("%w: tipo de reporte %q", domain.ErrInvalidInput, req.Type)
	}
	if req.All {
		return f, nil
	}
	var err error
	if req.Start != "" {
		if f.Start, err = time.ParseInLocation(dateLayout, req.Start, uc.loc); err != nil {
			return f, fmt.Errorf("%w: fecha inicial", domain.ErrInvalidInput)
		}
	}
	if req.End != "" {
		if f.End, err = time.ParseInLocation(dateLayout, req.End, uc.loc); err != nil {
			return f, fmt.Errorf("%w: fecha final", domain.ErrInvalidInput)
		}
	}
	return f, nil
}

// table devuelve cabecera y filas como texto (documento) y las mismas filas como mapeo (hoja).
func (uc *ReportUseCase) table(report inventory.Report, principal entity.Principal) ([]string, [][]string, []map[string]any) {
	if report.Filter.Type == inventory.ReportDiferencia {
		header := []string{"Código", "Producto", "Cant. Entrada", "Cant. Salida", "Diferencia", "Area Ent. (m2)", "Area Sal. (m2)", "Dif. Area (m2)"}
		rows := make([][]string, 0, len(report.Differences))
		records := make([]map[string]any, 0, len(report.Differences))
		for _, d := range report.Differences {
			code := codeOrDash(d.Code)
			rows = append(rows, []string{
				code,
				d.ProductName,
				format.Number(float64(d.QtyIn), 0),
				format.Number(float64(d.QtyOut), 0),
				format.Number(float64(d.NetQty()), 0),
				format.Number(d.AreaIn, 2),
				format.Number(d.AreaOut, 2),
				format.Number(d.NetArea(), 2),
			})
			records = append(records, map[string]any{
				"Codigo":              code,
				"Producto":            d.ProductName,
				"Entradas_Unidades":   d.QtyIn,
				"Salidas_Unidades":    d.QtyOut,
				"Diferencia_Unidades": d.NetQty(),
				"Entradas_Area_m2":    d.AreaIn,
				"Salidas_Area_m2":     d.AreaOut,
				"Diferencia_Area_m2":  d.NetArea(),
			})
		}
		return header, rows, records
	}

	withCost := report.Filter.Type == inventory.ReportIngreso && principal.CanViewFinancials()
	header := []string{"Fecha", "Producto", "Medidas", "Cantidad"}
	if withCost {
		header = append(header, "Costo Unit.", "Total")
	}
	header = append(header, "Almacén", "Notas")

	rows := make([][]string, 0, len(report.Movements))
	records := make([]map[string]any, 0, len(report.Movements))
	for _, m := range report.Movements {
		date := format.DateTime(m.Date, uc.loc)
		measures := format.Measures(m.Height, m.Width)
		row := []string{date, m.ProductName, measures, format.Number(float64(m.Quantity), 0)}
		record := map[string]any{
			"Fecha":    date,
			"Producto": m.ProductName,
			"Medidas":  measures,
			"Cantidad": m.Quantity,
			"Almacen":  m.Warehouse,
			"Notas":    m.Notes,
		}
		if withCost {
			unit, total := "-", "-"
			if t, ok := MovementTotal(m); ok {
				unit, total = format.Quetzales(m.Cost.Decimal), format.Quetzales(t)
			}
			row = append(row, unit, total)
			record["Costo Unit."] = unit
			record["Total"] = total
		}
		row = append(row, m.Warehouse, m.Notes)
		rows = append(rows, row)
		records = append(records, record)
	}
	return header, rows, records
}

func sheetColumns(t inventory.ReportType, principal entity.Principal) []string {
	if t == inventory.ReportDiferencia {
		return []string{"Codigo", "Producto", "Entradas_Unidades", "Salidas_Unidades", "Diferencia_Unidades",
			"Entradas_Area_m2", "Salidas_Area_m2", "Diferencia_Area_m2"}
	}
	cols := []string{"Fecha", "Producto", "Medidas", "Cantidad"}
	if t == inventory.ReportIngreso && principal.CanViewFinancials() {
		cols = append(cols, "Costo Unit.", "Total")
	}
	return append(cols, "Almacen", "Notas")
}

func rangeLabel(req dto.ReportRequest) string {
	if req.All {
		return "Histórico Completo"
	}
	return fmt.Sprintf("Del %s al %s", req.Start, req.End)
}

func exportFileName(req dto.ReportRequest, ext string) string {
	suffix := req.Start
	if req.All {
		suffix = "todos"
	}
	return fmt.Sprintf("reporte-%s-%s.%s", strings.ToLower(req.Type), suffix, ext)
}

func codeOrDash(code string) string {
	if code == "" {
		return "-"
	}
	return code
}
