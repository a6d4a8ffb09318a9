package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	appanalytics "github.com/jhoicas/inventario-planchas/internal/application/analytics"
	"github.com/jhoicas/inventario-planchas/internal/application/auth"
	"github.com/jhoicas/inventario-planchas/internal/application/inventory"
	"github.com/jhoicas/inventario-planchas/internal/application/usecase"
	"github.com/jhoicas/inventario-planchas/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ProductUC   *usecase.ProductUseCase
	UserUC      *usecase.UserUseCase
	WarehouseUC *usecase.WarehouseUseCase
	Ledger      *inventory.LedgerUseCase
	Reports     *inventory.ReportUseCase
	DashboardUC *appanalytics.DashboardUseCase
	// Gatherer expone /metrics; nil usa el registro por defecto de Prometheus.
	Gatherer    prometheus.Gatherer
	ServiceName string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.ServiceName})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	api := app.Group("/api")
	writers := RequireRole(entity.RoleAdmon, entity.RoleEmpleado)
	admins := RequireRole(entity.RoleAdmon)

	// Auth: login es público, el resto requiere sesión
	authHandler := NewAuthHandler(deps.AuthUC)
	requireSession := AuthMiddleware(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)
	api.Post("/auth/logout", requireSession, authHandler.Logout)
	api.Get("/auth/me", requireSession, authHandler.Me)

	// Rutas protegidas (requieren Bearer Token con sesión vigente)
	productHandler := NewProductHandler(deps.ProductUC)
	products := api.Group("/products", requireSession)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", writers, productHandler.Create)
	products.Put("/:id", writers, productHandler.Update)
	products.Delete("/:id", writers, productHandler.Delete)
	api.Get("/stock", requireSession, productHandler.Stock)

	inventoryHandler := NewInventoryHandler(deps.Ledger)
	movements := api.Group("/movements", requireSession)
	movements.Get("/", inventoryHandler.List)
	movements.Post("/", writers, inventoryHandler.Append)
	movements.Patch("/:id", writers, inventoryHandler.Amend)
	movements.Delete("/:id", writers, inventoryHandler.Remove)

	reportHandler := NewReportHandler(deps.Reports)
	reports := api.Group("/reports", requireSession)
	reports.Get("/", reportHandler.Build)
	reports.Get("/export", reportHandler.Export)

	api.Get("/dashboard/summary", requireSession, NewDashboardHandler(deps.DashboardUC).GetSummary)
	api.Get("/warehouses", requireSession, NewWarehouseHandler(deps.WarehouseUC).List)

	userHandler := NewUserHandler(deps.UserUC)
	users := api.Group("/users", requireSession, admins)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Post("/", userHandler.Create)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)
}
