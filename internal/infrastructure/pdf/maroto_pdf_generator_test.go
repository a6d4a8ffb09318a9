package pdf

import (
	"bytes"
	"testing"

	"github.com/jhoicas/inventario-planchas/internal/application/inventory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTable_DevuelvePDF(t *testing.T) {
	g := NewMarotoPDFGenerator()
	out, err := g.GenerateTable(inventory.TableDocument{
		Title:       "Reporte de Diferencia",
		Lines:       []string{"Histórico Completo", "Generado: 01/03/2025 10:00"},
		Header:      []string{"Código", "Producto", "Cant. Entrada", "Cant. Salida"},
		Rows:        [][]string{{"P-1", "Granito", "10", "3"}, {"P-2", "Mármol", "4", "0"}},
		HeaderColor: inventory.RGB{R: 79, G: 70, B: 229},
	})
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateTable_SinFilas(t *testing.T) {
	out, err := NewMarotoPDFGenerator().GenerateTable(inventory.TableDocument{
		Title:  "Reporte de Ingreso",
		Header: []string{"Fecha", "Producto"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestGenerateTable_SinColumnas(t *testing.T) {
	_, err := NewMarotoPDFGenerator().GenerateTable(inventory.TableDocument{Title: "x"})
	assert.Error(t, err)
}
