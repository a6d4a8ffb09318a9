package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/inventario-planchas/internal/domain/entity"
	"github.com/jhoicas/inventario-planchas/internal/domain/inventory"
)

func TestAreaContribution_PiezaMedidaConCantidadCero(t *testing.T) {
	m := mov("p1", entity.MovementTypeIngreso, 0)
	m.Height, m.Width = f64(2), f64(1.5)

	assert.InDelta(t, 3.0, inventory.AreaContribution(m, prod("p1", entity.ProductTypePlancha)), 1e-9)
}

func TestAreaContribution_PiezaMedidaConCantidad(t *testing.T) {
	m := mov("p1", entity.MovementTypeIngreso, 4)
	m.Height, m.Width = f64(2), f64(1.5)

	assert.InDelta(t, 12.0, inventory.AreaContribution(m, prod("p1", entity.ProductTypePlancha)), 1e-9)
}

func TestAreaContribution_MedidasMandanSobreUnidad(t *testing.T) {
	m := mov("p1", entity.MovementTypeSalida, 0)
	m.Height, m.Width = f64(1), f64(0.5)

	assert.InDelta(t, 0.5, inventory.AreaContribution(m, prod("p1", entity.ProductTypeUnidad)), 1e-9)
	assert.InDelta(t, 0.5, inventory.AreaContribution(m, nil), 1e-9, "el producto eliminado no impide usar las medidas propias")
}

func TestAreaContribution_RespaldoDelCatalogo(t *testing.T) {
	p := prod("p1", entity.ProductTypePlancha)
	p.Height, p.Width = f64(1), f64(1)

	assert.InDelta(t, 3.0, inventory.AreaContribution(mov("p1", entity.MovementTypeIngreso, 3), p), 1e-9)
	assert.InDelta(t, 0.0, inventory.AreaContribution(mov("p1", entity.MovementTypeIngreso, 0), p), 1e-9,
		"en el respaldo del catálogo la cantidad 0 no se fuerza a 1")
}

func TestAreaContribution_MedidaParcialUsaCatalogo(t *testing.T) {
	p := prod("p1", entity.ProductTypePlancha)
	p.Height, p.Width = f64(2), f64(3)
	m := mov("p1", entity.MovementTypeIngreso, 2)
	m.Height = f64(5)

	assert.InDelta(t, 12.0, inventory.AreaContribution(m, p), 1e-9)
}

func TestAreaContribution_UnidadSinMedidasEsCero(t *testing.T) {
	for _, qty := range []int{0, 1, 25} {
		assert.Zero(t, inventory.AreaContribution(mov("p1", entity.MovementTypeIngreso, qty), prod("p1", entity.ProductTypeUnidad)))
	}
}

func TestAreaContribution_PlanchaSinDimensionesEsCero(t *testing.T) {
	assert.Zero(t, inventory.AreaContribution(mov("p1", entity.MovementTypeIngreso, 8), prod("p1", entity.ProductTypePlancha)))
	assert.Zero(t, inventory.AreaContribution(mov("p1", entity.MovementTypeIngreso, 8), nil))
}
