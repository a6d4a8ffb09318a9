// Package analytics contiene el resumen del tablero calculado sobre la vista vigente del inventario.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-planchas/internal/application/dto"
	appinventory "github.com/jhoicas/inventario-planchas/internal/application/inventory"
	"github.com/jhoicas/inventario-planchas/internal/domain/entity"
	"github.com/jhoicas/inventario-planchas/internal/domain/inventory"
)

const dashboardRecent = 5 // movimientos recientes en el widget del tablero

// DashboardUseCase genera el resumen del tablero.
//
// Fuente de datos: la vista vigente del Reloader (catálogo + libro ya proyectados).
// No consulta el almacén por su cuenta.
type DashboardUseCase struct {
	reloader *appinventory.Reloader
	loc      *time.Location
}

// NewDashboardUseCase construye el caso de uso. loc es la zona para la etiqueta del mes.
func NewDashboardUseCase(reloader *appinventory.Reloader, loc *time.Location) *DashboardUseCase {
	if loc == nil {
		loc = time.Local
	}
	return &DashboardUseCase{reloader: reloader, loc: loc}
}

// GetSummary construye el DashboardSummaryDTO.
//
//  1. Conteos globales: productos, ingresos y salidas.
//  2. Por producto: ingresos, salidas, último movimiento y estado de stock.
//  3. Valor del inventario Σ(cantidad × costo), solo para quien ve cifras financieras.
func (uc *DashboardUseCase) GetSummary(ctx context.Context, principal entity.Principal) (*dto.DashboardSummaryDTO, error) {
	snap, err := uc.reloader.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: vista de inventario: %w", err)
	}

	// ── Conteos por producto ───────────────────────────────────────────────────
	type counts struct {
		in, out int
		last    *time.Time
	}
	byProduct := make(map[string]*counts, len(snap.Products))
	summary := &dto.DashboardSummaryDTO{ProductCount: len(snap.Products), DateLabel: monthLabel(time.Now().In(uc.loc))}

	// El libro viene más reciente primero: el primer movimiento visto es el último registrado.
	for _, m := range snap.Movements {
		c := byProduct[m.ProductID]
		if c == nil {
			date := m.Date
			c = &counts{last: &date}
			byProduct[m.ProductID] = c
		}
		switch m.Type {
		case entity.MovementTypeIngreso:
			c.in++
			summary.IngresoCount++
		case entity.MovementTypeSalida:
			c.out++
			summary.SalidaCount++
		}
	}

	// ── Estadísticas y stock bajo ──────────────────────────────────────────────
	value := decimal.Zero
	summary.Products = make([]dto.ProductStatDTO, 0, len(snap.Products))
	summary.LowStock = make([]dto.ProductStatDTO, 0)
	for _, p := range snap.Products {
		stat := dto.ProductStatDTO{
			ProductID: p.ID,
			Code:      p.Code,
			Name:      p.Name,
			Quantity:  p.Quantity,
			Status:    inventory.StockStatus(p),
		}
		if c := byProduct[p.ID]; c != nil {
			stat.IngresoCount, stat.SalidaCount, stat.LastMovement = c.in, c.out, c.last
		}
		summary.Products = append(summary.Products, stat)
		if stat.Status == inventory.StatusBajo {
			summary.LowStock = append(summary.LowStock, stat)
		}
		value = value.Add(p.Cost.Mul(decimal.NewFromInt(int64(p.Quantity))))
	}

	// ── Capacidad financiera ───────────────────────────────────────────────────
	if principal.CanViewFinancials() {
		v := value.Round(2)
		summary.InventoryValue = &v
	}

	recent := snap.Movements
	if len(recent) > dashboardRecent {
		recent = recent[:dashboardRecent]
	}
	summary.Recent = appinventory.ToMovementResponses(recent, principal)
	return summary, nil
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Febrero 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
