package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/inventario-planchas/internal/domain/entity"
	"github.com/jhoicas/inventario-planchas/internal/domain/inventory"
)

func TestCostUpdate_IngresoConCostoPositivo(t *testing.T) {
	m := mov("p1", entity.MovementTypeIngreso, 2)
	m.Cost = decimal.NewNullDecimal(decimal.RequireFromString("12.50"))

	cost, ok := inventory.CostUpdate(m)
	assert.True(t, ok)
	assert.True(t, decimal.RequireFromString("12.50").Equal(cost))
}

func TestCostUpdate_CasosQueNoActualizan(t *testing.T) {
	salida := mov("p1", entity.MovementTypeSalida, 2)
	salida.Cost = decimal.NewNullDecimal(decimal.NewFromInt(10))

	cero := mov("p1", entity.MovementTypeIngreso, 2)
	cero.Cost = decimal.NewNullDecimal(decimal.Zero)

	negativo := mov("p1", entity.MovementTypeIngreso, 2)
	negativo.Cost = decimal.NewNullDecimal(decimal.NewFromInt(-3))

	sinCosto := mov("p1", entity.MovementTypeIngreso, 2)

	for name, m := range map[string]*entity.Movement{
		"salida": salida, "cero": cero, "negativo": negativo, "sin costo": sinCosto,
	} {
		_, ok := inventory.CostUpdate(m)
		assert.False(t, ok, name)
	}
}

func TestStockStatus_Umbrales(t *testing.T) {
	p := prod("p1", entity.ProductTypeUnidad)
	cases := map[int]string{-2: inventory.StatusBajo, 5: inventory.StatusBajo, 6: inventory.StatusMedio, 99: inventory.StatusMedio, 100: inventory.StatusAlto, 140: inventory.StatusAlto}
	for qty, want := range cases {
		p.Quantity = qty
		assert.Equal(t, want, inventory.StockStatus(p), "cantidad %d", qty)
	}
}
