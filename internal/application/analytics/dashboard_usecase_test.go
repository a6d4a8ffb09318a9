package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-planchas/internal/application/analytics"
	"github.com/jhoicas/inventario-planchas/internal/application/dto"
	appinventory "github.com/jhoicas/inventario-planchas/internal/application/inventory"
	"github.com/jhoicas/inventario-planchas/internal/domain/entity"
	"github.com/jhoicas/inventario-planchas/internal/infrastructure/memory"
)

func TestGetSummary_ConteosEstadosYValor(t *testing.T) {
	store := memory.NewStore()
	products := memory.NewProductRepository(store)
	movements := memory.NewMovementRepository(store)
	reloader := appinventory.NewReloader(products, movements, nil, zerolog.Nop())
	ledger := appinventory.NewLedgerUseCase(memory.NewTxRunner(store), movements, products, reloader)
	uc := analytics.NewDashboardUseCase(reloader, time.UTC)

	ctx := context.Background()
	now := time.Now()
	require.NoError(t, products.Create(ctx, &entity.Product{ID: "p1", Code: "A", Name: "MDF", Type: entity.ProductTypePlancha,
		MinQuantity: 5, MaxQuantity: 100, CreatedAt: now}))
	require.NoError(t, products.Create(ctx, &entity.Product{ID: "p2", Code: "B", Name: "Bisagra", Type: entity.ProductTypeUnidad,
		MinQuantity: 5, MaxQuantity: 100, CreatedAt: now}))

	cost := decimal.RequireFromString("12.50")
	admon := entity.Principal{Role: entity.RoleAdmon}
	for _, in := range []dto.CreateMovementRequest{
		{Type: entity.MovementTypeIngreso, ProductID: "p1", Quantity: 10, Warehouse: entity.WarehousePrincipal, Cost: &cost},
		{Type: entity.MovementTypeSalida, ProductID: "p1", Quantity: 2, Warehouse: entity.WarehousePrincipal},
		{Type: entity.MovementTypeIngreso, ProductID: "p2", Quantity: 1, Warehouse: entity.WarehousePrincipal},
	} {
		_, err := ledger.Append(ctx, admon, in)
		require.NoError(t, err)
	}

	out, err := uc.GetSummary(ctx, admon)
	require.NoError(t, err)
	assert.Equal(t, 2, out.ProductCount)
	assert.Equal(t, 2, out.IngresoCount)
	assert.Equal(t, 1, out.SalidaCount)
	require.NotNil(t, out.InventoryValue)
	assert.Equal(t, "100", out.InventoryValue.String(), "8 × 12.50")
	require.Len(t, out.LowStock, 1)
	assert.Equal(t, "p2", out.LowStock[0].ProductID)
	assert.Len(t, out.Recent, 3)
	assert.NotEmpty(t, out.DateLabel)

	out, err = uc.GetSummary(ctx, entity.Principal{Role: entity.RoleLector})
	require.NoError(t, err)
	assert.Nil(t, out.InventoryValue, "el valor solo se muestra con visibilidad financiera")
	for _, m := range out.Recent {
		assert.Nil(t, m.Cost)
	}
}
