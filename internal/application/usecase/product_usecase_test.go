package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-planchas/internal/application/dto"
	appinventory "github.com/jhoicas/inventario-planchas/internal/application/inventory"
	"github.com/jhoicas/inventario-planchas/internal/application/usecase"
	"github.com/jhoicas/inventario-planchas/internal/domain"
	"github.com/jhoicas/inventario-planchas/internal/domain/entity"
	"github.com/jhoicas/inventario-planchas/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var (
	admon    = entity.Principal{UserID: "u-admon", Role: entity.RoleAdmon}
	empleado = entity.Principal{UserID: "u-emp", Role: entity.RoleEmpleado}
	lector   = entity.Principal{UserID: "u-lector", Role: entity.RoleLector}
)

type catalog struct {
	store      *memory.Store
	reloader   *appinventory.Reloader
	products   *usecase.ProductUseCase
	ledger     *appinventory.LedgerUseCase
	warehouses *usecase.WarehouseUseCase
}

func newCatalog(t *testing.T) *catalog {
	t.Helper()
	store := memory.NewStore()
	clock := time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC)
	store.SetClock(func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	})
	productRepo := memory.NewProductRepository(store)
	movementRepo := memory.NewMovementRepository(store)
	txRunner := memory.NewTxRunner(store)
	reloader := appinventory.NewReloader(productRepo, movementRepo, nil, zerolog.Nop())
	return &catalog{
		store:      store,
		reloader:   reloader,
		products:   usecase.NewProductUseCase(productRepo, txRunner, reloader),
		ledger:     appinventory.NewLedgerUseCase(txRunner, movementRepo, productRepo, reloader),
		warehouses: usecase.NewWarehouseUseCase(reloader),
	}
}

func (c *catalog) create(t *testing.T, in dto.CreateProductRequest) *dto.ProductResponse {
	t.Helper()
	out, err := c.products.Create(context.Background(), admon, in)
	require.NoError(t, err)
	require.NotNil(t, out)
	return out
}

func (c *catalog) ingreso(t *testing.T, productID string, qty int, warehouse string) {
	t.Helper()
	_, err := c.ledger.Append(context.Background(), admon, dto.CreateMovementRequest{
		Type: entity.MovementTypeIngreso, ProductID: productID, Quantity: qty, Warehouse: warehouse,
	})
	require.NoError(t, err)
}

func f64(v float64) *float64 { return &v }

// ──────────────────────────────────────────────────────────────────────────────
// Tests ProductUseCase
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_IgnoraCantidadYAplicaDefaults(t *testing.T) {
	c := newCatalog(t)
	qty := 50
	out := c.create(t, dto.CreateProductRequest{
		Code: "MDF-18", Name: "MDF 18mm", Type: entity.ProductTypePlancha,
		Quantity: &qty, Height: f64(2.44), Width: f64(1.22),
	})

	assert.Equal(t, 0, out.Quantity, "todo producto nace con cantidad 0")
	assert.Equal(t, entity.DefaultMinQuantity, out.MinQuantity)
	assert.Equal(t, entity.DefaultMaxQuantity, out.MaxQuantity)
	require.NotNil(t, out.Area)
	assert.InDelta(t, 2.9768, *out.Area, 1e-9)
	assert.Equal(t, "Bajo", out.Status)
}

func TestCreate_CostoInicialSoloDeAdmon(t *testing.T) {
	c := newCatalog(t)
	cost := decimal.RequireFromString("25.00")

	out, err := c.products.Create(context.Background(), empleado, dto.CreateProductRequest{
		Code: "B-1", Name: "Bisagra", Type: entity.ProductTypeUnidad, Cost: &cost,
	})
	require.NoError(t, err)
	assert.Nil(t, out.Cost)

	stored, err := c.products.GetByID(context.Background(), admon, out.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.Cost)
	assert.True(t, stored.Cost.IsZero(), "el costo de un principal sin visibilidad financiera se descarta")
}

func TestCreate_LectorRechazado(t *testing.T) {
	c := newCatalog(t)
	_, err := c.products.Create(context.Background(), lector, dto.CreateProductRequest{
		Code: "B-1", Name: "Bisagra", Type: entity.ProductTypeUnidad,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUpdate_CamposPresentesYUmbralesInvalidos(t *testing.T) {
	c := newCatalog(t)
	p := c.create(t, dto.CreateProductRequest{Code: "B-1", Name: "Bisagra", Type: entity.ProductTypeUnidad, MinQuantity: 2})
	name := "Bisagra cierre suave"
	zero := 0

	out, err := c.products.Update(context.Background(), empleado, p.ID, dto.UpdateProductRequest{Name: &name, MinQuantity: &zero})
	require.NoError(t, err)
	assert.Equal(t, name, out.Name)
	assert.Equal(t, "B-1", out.Code)
	assert.Equal(t, entity.DefaultMinQuantity, out.MinQuantity)
}

func TestUpdate_Inexistente(t *testing.T) {
	c := newCatalog(t)
	name := "x"
	_, err := c.products.Update(context.Background(), admon, "no-existe", dto.UpdateProductRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = c.products.Update(context.Background(), admon, "no-existe", dto.UpdateProductRequest{Height: f64(2)})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdate_RecalculaAreaDePlancha(t *testing.T) {
	c := newCatalog(t)
	p := c.create(t, dto.CreateProductRequest{
		Code: "MDF-15", Name: "MDF 15mm", Type: entity.ProductTypePlancha, Height: f64(1), Width: f64(1),
	})
	require.NotNil(t, p.Area)
	assert.InDelta(t, 1.0, *p.Area, 1e-9)

	out, err := c.products.Update(context.Background(), empleado, p.ID, dto.UpdateProductRequest{Height: f64(2), Width: f64(3)})
	require.NoError(t, err)
	require.NotNil(t, out.Area)
	assert.InDelta(t, 6.0, *out.Area, 1e-9)

	out, err = c.products.Update(context.Background(), empleado, p.ID, dto.UpdateProductRequest{Width: f64(4)})
	require.NoError(t, err)
	assert.InDelta(t, 8.0, *out.Area, 1e-9, "usa la altura vigente")

	out, err = c.products.Update(context.Background(), empleado, p.ID, dto.UpdateProductRequest{Height: f64(5), Area: f64(7.5)})
	require.NoError(t, err)
	assert.InDelta(t, 7.5, *out.Area, 1e-9, "un área explícita se respeta")
}

func TestUpdate_UnidadNoDerivaArea(t *testing.T) {
	c := newCatalog(t)
	p := c.create(t, dto.CreateProductRequest{Code: "B-2", Name: "Bisagra", Type: entity.ProductTypeUnidad})

	out, err := c.products.Update(context.Background(), empleado, p.ID, dto.UpdateProductRequest{Height: f64(2), Width: f64(3)})
	require.NoError(t, err)
	assert.Nil(t, out.Area)
}

func TestDelete_SinCascadaRechazaYNoToca(t *testing.T) {
	c := newCatalog(t)
	p := c.create(t, dto.CreateProductRequest{Code: "B-1", Name: "Bisagra", Type: entity.ProductTypeUnidad})
	c.ingreso(t, p.ID, 3, entity.WarehousePrincipal)

	before := c.reloader.Reloads()
	err := c.products.Delete(context.Background(), admon, p.ID, false)
	assert.ErrorIs(t, err, domain.ErrProductReferenced)
	assert.Equal(t, before+1, c.reloader.Reloads(), "la cascada rechazada también recarga una vez")

	got, err := c.products.GetByID(context.Background(), admon, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 3, got.Quantity)
}

func TestDelete_ConCascadaEliminaProductoYMovimientos(t *testing.T) {
	c := newCatalog(t)
	p := c.create(t, dto.CreateProductRequest{Code: "B-1", Name: "Bisagra", Type: entity.ProductTypeUnidad})
	c.ingreso(t, p.ID, 3, entity.WarehousePrincipal)

	require.NoError(t, c.products.Delete(context.Background(), admon, p.ID, true))

	got, err := c.products.GetByID(context.Background(), admon, p.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
	all, err := c.ledger.All(context.Background(), admon)
	require.NoError(t, err)
	assert.Equal(t, 0, all.Total)
}

func TestDelete_SinMovimientos(t *testing.T) {
	c := newCatalog(t)
	p := c.create(t, dto.CreateProductRequest{Code: "B-1", Name: "Bisagra", Type: entity.ProductTypeUnidad})
	require.NoError(t, c.products.Delete(context.Background(), admon, p.ID, false))

	list, err := c.products.List(context.Background(), admon)
	require.NoError(t, err)
	assert.Equal(t, 0, list.Total)
}

func TestStock_ProyeccionConSecuencia(t *testing.T) {
	c := newCatalog(t)
	p := c.create(t, dto.CreateProductRequest{Code: "B-1", Name: "Bisagra", Type: entity.ProductTypeUnidad})
	c.ingreso(t, p.ID, 7, entity.WarehousePrincipal)

	out, err := c.products.Stock(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, out.Stock[p.ID])
	assert.Equal(t, uint64(c.reloader.Reloads()), out.Seq)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests WarehouseUseCase
// ──────────────────────────────────────────────────────────────────────────────

func TestWarehouses_ConocidosPrimeroLuegoDelLibro(t *testing.T) {
	c := newCatalog(t)
	p := c.create(t, dto.CreateProductRequest{Code: "B-1", Name: "Bisagra", Type: entity.ProductTypeUnidad})
	c.ingreso(t, p.ID, 1, "Bodega Norte")
	c.ingreso(t, p.ID, 1, entity.WarehousePrincipal)
	c.ingreso(t, p.ID, 1, "Bodega Norte")

	out, err := c.warehouses.List(context.Background())
	require.NoError(t, err)
	known := entity.KnownWarehouses()
	require.Len(t, out.Items, len(known)+1)
	assert.Equal(t, entity.WarehousePrincipal, out.Items[0].Name)
	assert.True(t, out.Items[0].Known)
	assert.Equal(t, 1, out.Items[0].Movements)

	extra := out.Items[len(known)]
	assert.Equal(t, "Bodega Norte", extra.Name)
	assert.False(t, extra.Known)
	assert.Equal(t, 2, extra.Movements)
}
