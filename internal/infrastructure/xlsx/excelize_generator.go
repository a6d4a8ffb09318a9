// Package xlsx genera las hojas de cálculo descargables de los reportes con excelize.
package xlsx

import (
	"fmt"

	"github.com/jhoicas/inventario-planchas/internal/application/inventory"
	"github.com/xuri/excelize/v2"
)

const defaultSheet = "Sheet1"

var _ inventory.SpreadsheetGenerator = (*ExcelizeGenerator)(nil)

// ExcelizeGenerator implementa inventory.SpreadsheetGenerator.
type ExcelizeGenerator struct{}

// NewExcelizeGenerator construye el generador.
func NewExcelizeGenerator() *ExcelizeGenerator { return &ExcelizeGenerator{} }

// GenerateSheet escribe un libro de una sola hoja: la primera fila son las columnas y cada fila
// siguiente toma de su mapeo los valores en ese orden. Una clave ausente deja la celda vacía.
func (g *ExcelizeGenerator) GenerateSheet(sheet inventory.Sheet) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	name := sheet.Name
	if name == "" {
		name = defaultSheet
	}
	if name != defaultSheet {
		if err := f.SetSheetName(defaultSheet, name); err != nil {
			return nil, fmt.Errorf("xlsx: nombre de hoja: %w", err)
		}
	}

	header := make([]any, len(sheet.Columns))
	for i, c := range sheet.Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(name, "A1", &header); err != nil {
		return nil, fmt.Errorf("xlsx: cabecera: %w", err)
	}

	for i, r := range sheet.Rows {
		values := make([]any, len(sheet.Columns))
		for j, c := range sheet.Columns {
			values[j] = r[c]
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("xlsx: celda: %w", err)
		}
		if err := f.SetSheetRow(name, cell, &values); err != nil {
			return nil, fmt.Errorf("xlsx: fila %d: %w", i+1, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}
