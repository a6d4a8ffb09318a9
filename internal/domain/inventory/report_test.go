package inventory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-planchas/internal/domain/entity"
	"github.com/jhoicas/inventario-planchas/internal/domain/inventory"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func movAt(id, productID, typ string, qty int, at time.Time) *entity.Movement {
	m := mov(productID, typ, qty)
	m.ID = id
	m.Date = at
	return m
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Filter
// ──────────────────────────────────────────────────────────────────────────────

func TestFilter_RangoIncluyeDiaCompleto(t *testing.T) {
	f := inventory.Filter{Start: day(2024, 3, 1), End: day(2024, 3, 31), Type: inventory.ReportIngreso}

	assert.True(t, f.Contains(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, f.Contains(time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC)))
	assert.False(t, f.Contains(time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)), "un segundo después del fin queda fuera")
	assert.False(t, f.Contains(time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC)))
}

func TestFilter_RespetaZonaHoraria(t *testing.T) {
	loc := time.FixedZone("GT", -6*3600)
	f := inventory.Filter{Start: time.Date(2024, 3, 5, 0, 0, 0, 0, loc), End: time.Date(2024, 3, 5, 0, 0, 0, 0, loc)}

	// 05:59 UTC del día 6 son las 23:59 del día 5 en Guatemala.
	assert.True(t, f.Contains(time.Date(2024, 3, 6, 5, 59, 0, 0, time.UTC)))
	assert.False(t, f.Contains(time.Date(2024, 3, 6, 6, 0, 0, 0, time.UTC)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Aggregate
// ──────────────────────────────────────────────────────────────────────────────

func TestAggregate_RangoIncompletoDevuelveReporteVacio(t *testing.T) {
	movements := []*entity.Movement{mov("p1", entity.MovementTypeIngreso, 1)}

	for _, f := range []inventory.Filter{
		{Type: inventory.ReportIngreso},
		{Start: day(2024, 3, 1), Type: inventory.ReportDiferencia},
		{End: day(2024, 3, 1), Type: inventory.ReportSalida},
	} {
		r := inventory.Aggregate(movements, nil, f)
		assert.False(t, r.Generated)
		assert.Empty(t, r.Movements)
		assert.Empty(t, r.Differences)
	}
}

func TestAggregate_ListaDeIngresosConservaOrden(t *testing.T) {
	movements := []*entity.Movement{
		movAt("m4", "p1", entity.MovementTypeIngreso, 1, time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC)),
		movAt("m3", "p1", entity.MovementTypeSalida, 1, time.Date(2024, 3, 20, 10, 0, 0, 0, time.UTC)),
		movAt("m2", "p1", entity.MovementTypeIngreso, 1, time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)),
		movAt("m1", "p1", entity.MovementTypeIngreso, 1, time.Date(2024, 2, 15, 10, 0, 0, 0, time.UTC)),
	}
	r := inventory.Aggregate(movements, nil, inventory.Filter{Start: day(2024, 3, 1), End: day(2024, 3, 31), Type: inventory.ReportIngreso})

	require.True(t, r.Generated)
	require.Len(t, r.Movements, 2)
	assert.Equal(t, "m4", r.Movements[0].ID)
	assert.Equal(t, "m2", r.Movements[1].ID)
}

func TestAggregate_HistoricoCompleto(t *testing.T) {
	movements := []*entity.Movement{
		movAt("m2", "p1", entity.MovementTypeSalida, 1, time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)),
		movAt("m1", "p1", entity.MovementTypeSalida, 1, time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)),
	}
	r := inventory.Aggregate(movements, nil, inventory.Filter{AllTime: true, Type: inventory.ReportSalida})
	assert.True(t, r.Generated)
	assert.Len(t, r.Movements, 2)
}

func TestAggregate_DiferenciaPorProducto(t *testing.T) {
	plancha := prod("p1", entity.ProductTypePlancha)
	plancha.Height, plancha.Width = f64(2), f64(1)
	unidad := prod("p2", entity.ProductTypeUnidad)

	medida := movAt("m3", "p1", entity.MovementTypeSalida, 0, baseDate)
	medida.Height, medida.Width = f64(1), f64(1.5)

	movements := []*entity.Movement{
		movAt("m5", "p2", entity.MovementTypeIngreso, 10, baseDate),
		movAt("m4", "p1", entity.MovementTypeEdicion, 50, baseDate),
		medida,
		movAt("m2", "p1", entity.MovementTypeIngreso, 3, baseDate),
		movAt("m1", "borrado", entity.MovementTypeSalida, 4, baseDate),
	}
	r := inventory.Aggregate(movements, []*entity.Product{plancha, unidad}, inventory.Filter{AllTime: true, Type: inventory.ReportDiferencia})

	require.Len(t, r.Differences, 3)

	p2 := r.Differences[0]
	assert.Equal(t, "p2", p2.ProductID)
	assert.Equal(t, 10, p2.QtyIn)
	assert.Zero(t, p2.AreaIn)

	p1 := r.Differences[1]
	assert.Equal(t, "C-p1", p1.Code)
	assert.Equal(t, 3, p1.QtyIn)
	assert.Equal(t, 0, p1.QtyOut)
	assert.InDelta(t, 6.0, p1.AreaIn, 1e-9)
	assert.InDelta(t, 1.5, p1.AreaOut, 1e-9)
	assert.Equal(t, 3, p1.NetQty())
	assert.InDelta(t, 4.5, p1.NetArea(), 1e-9)

	orphan := r.Differences[2]
	assert.Empty(t, orphan.Code, "el producto eliminado no tiene código")
	assert.Equal(t, "Producto borrado", orphan.ProductName)
	assert.Equal(t, 4, orphan.QtyOut)
	assert.Equal(t, -4, orphan.NetQty())
}

func TestAggregate_DiferenciaFiltraPorRango(t *testing.T) {
	products := []*entity.Product{prod("p1", entity.ProductTypeUnidad)}
	movements := []*entity.Movement{
		movAt("m2", "p1", entity.MovementTypeIngreso, 5, time.Date(2024, 3, 2, 8, 0, 0, 0, time.UTC)),
		movAt("m1", "p1", entity.MovementTypeIngreso, 7, time.Date(2024, 2, 2, 8, 0, 0, 0, time.UTC)),
	}
	r := inventory.Aggregate(movements, products, inventory.Filter{Start: day(2024, 3, 1), End: day(2024, 3, 3), Type: inventory.ReportDiferencia})

	require.Len(t, r.Differences, 1)
	assert.Equal(t, 5, r.Differences[0].QtyIn)
}
