package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	_ "github.com/jhoicas/inventario-planchas/docs"
	appanalytics "github.com/jhoicas/inventario-planchas/internal/application/analytics"
	"github.com/jhoicas/inventario-planchas/internal/application/auth"
	"github.com/jhoicas/inventario-planchas/internal/application/inventory"
	"github.com/jhoicas/inventario-planchas/internal/application/usecase"
	"github.com/jhoicas/inventario-planchas/internal/domain/repository"
	"github.com/jhoicas/inventario-planchas/internal/infrastructure/memory"
	"github.com/jhoicas/inventario-planchas/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/inventario-planchas/internal/infrastructure/pdf"
	"github.com/jhoicas/inventario-planchas/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/inventario-planchas/internal/infrastructure/redis"
	infraxlsx "github.com/jhoicas/inventario-planchas/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/inventario-planchas/internal/interfaces/http"
	"github.com/jhoicas/inventario-planchas/migrations"
	"github.com/jhoicas/inventario-planchas/pkg/config"
	"github.com/jhoicas/inventario-planchas/pkg/logger"
)

// stores puertos de persistencia elegidos por STORAGE_DRIVER.
type stores struct {
	products  repository.ProductRepository
	movements repository.MovementRepository
	users     repository.UserRepository
	txRunner  inventory.TxRunner
	close     func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es requerido")
	}
	loc, err := cfg.App.Location()
	if err != nil {
		log.Fatal().Err(err).Msg("zona horaria")
	}

	ctx := context.Background()
	st, err := openStores(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento")
	}
	defer st.close()

	sessions, closeSessions, err := openSessions(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("almacén de sesiones")
	}
	defer closeSessions()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.New(registry)

	reloader := inventory.NewReloader(st.products, st.movements, appMetrics, log.Zerolog())
	if _, err := reloader.InvalidateAndReload(ctx); err != nil {
		log.Fatal().Err(err).Msg("carga inicial del inventario")
	}

	passwords := auth.NewPasswords(cfg.Auth.PlaintextPasswords)
	if passwords.Plaintext() {
		log.Warn().Msg("AUTH_PLAINTEXT_PASSWORDS activo: las contraseñas se comparan en texto plano")
	}
	authUC := auth.NewAuthUseCase(st.users, sessions, passwords, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, log.Zerolog())

	ledger := inventory.NewLedgerUseCase(st.txRunner, st.movements, st.products, reloader)
	reports := inventory.NewReportUseCase(reloader,
		infrapdf.NewMarotoPDFGenerator(),
		infraxlsx.NewExcelizeGenerator(),
		appMetrics, loc,
	)
	productUC := usecase.NewProductUseCase(st.products, st.txRunner, reloader)
	userUC := usecase.NewUserUseCase(st.users, passwords, log.Zerolog())
	if err := seedAdmin(ctx, cfg, userUC, log); err != nil {
		log.Fatal().Err(err).Msg("administrador inicial")
	}
	warehouseUC := usecase.NewWarehouseUseCase(reloader)
	dashboardUC := appanalytics.NewDashboardUseCase(reloader, loc)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventario Planchas API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ProductUC:   productUC,
		UserUC:      userUC,
		WarehouseUC: warehouseUC,
		Ledger:      ledger,
		Reports:     reports,
		DashboardUC: dashboardUC,
		Gatherer:    registry,
		ServiceName: cfg.App.Name,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// openStores abre PostgreSQL (aplicando migraciones) o el almacén en memoria.
func openStores(ctx context.Context, cfg *config.Config, log *logger.Logger) (*stores, error) {
	if cfg.Storage.Driver == config.StorageMemory {
		log.Warn().Msg("STORAGE_DRIVER=memory: los datos se pierden al reiniciar")
		store := memory.NewStore()
		return &stores{
			products:  memory.NewProductRepository(store),
			movements: memory.NewMovementRepository(store),
			users:     memory.NewUserRepository(store),
			txRunner:  memory.NewTxRunner(store),
			close:     func() {},
		}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	if err := postgres.Migrate(ctx, pool, migrations.Files, log.Component("migrate")); err != nil {
		pool.Close()
		return nil, err
	}
	return &stores{
		products:  postgres.NewProductRepository(pool),
		movements: postgres.NewMovementRepository(pool),
		users:     postgres.NewUserRepository(pool),
		txRunner:  postgres.NewTxRunner(pool),
		close:     pool.Close,
	}, nil
}

// seedAdmin crea el Admon de SEED_ADMIN_* en modo memoria; sin él nadie podría iniciar sesión.
// Con PostgreSQL el administrador lo crea cmd/seed.
func seedAdmin(ctx context.Context, cfg *config.Config, users *usecase.UserUseCase, log *logger.Logger) error {
	if cfg.Storage.Driver != config.StorageMemory {
		return nil
	}
	if cfg.Seed.AdminEmail == "" || cfg.Seed.AdminPassword == "" {
		log.Warn().Msg("STORAGE_DRIVER=memory sin SEED_ADMIN_EMAIL/SEED_ADMIN_PASSWORD: no hay usuarios para iniciar sesión")
		return nil
	}
	admin, created, err := users.EnsureAdmin(ctx, cfg.Seed.AdminEmail, cfg.Seed.AdminPassword, cfg.Seed.AdminName)
	if err != nil {
		return err
	}
	log.Info().Str("email", admin.Email).Bool("created", created).Msg("administrador inicial")
	return nil
}

// openSessions usa Redis si hay REDIS_ADDR; si no, sesiones en memoria.
func openSessions(ctx context.Context, cfg *config.Config, log *logger.Logger) (repository.SessionStore, func(), error) {
	if cfg.Redis.Addr == "" {
		log.Info().Msg("REDIS_ADDR vacío: sesiones en memoria")
		return memory.NewSessionStore(), func() {}, nil
	}
	client, err := infraredis.Connect(ctx, infraredis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		return nil, nil, err
	}
	return infraredis.NewSessionStore(client), func() { _ = client.Close() }, nil
}
