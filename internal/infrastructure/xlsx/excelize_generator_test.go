package xlsx

import (
	"bytes"
	"testing"

	"github.com/jhoicas/inventario-planchas/internal/application/inventory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestGenerateSheet_EscribeCabeceraYFilas(t *testing.T) {
	out, err := NewExcelizeGenerator().GenerateSheet(inventory.Sheet{
		Name:    "Diferencia",
		Columns: []string{"Codigo", "Producto", "Entradas_Unidades"},
		Rows: []map[string]any{
			{"Codigo": "P-1", "Producto": "Granito", "Entradas_Unidades": 10},
			{"Codigo": "P-2", "Producto": "Mármol"},
		},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Diferencia"}, f.GetSheetList())
	rows, err := f.GetRows("Diferencia")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Codigo", "Producto", "Entradas_Unidades"}, rows[0])
	assert.Equal(t, []string{"P-1", "Granito", "10"}, rows[1])
	assert.Equal(t, []string{"P-2", "Mármol"}, rows[2])
}

func TestGenerateSheet_SinNombreUsaHojaPorDefecto(t *testing.T) {
	out, err := NewExcelizeGenerator().GenerateSheet(inventory.Sheet{Columns: []string{"A"}})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{defaultSheet}, f.GetSheetList())
}
