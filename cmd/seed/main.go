// seed aplica el esquema de migrations/ en PostgreSQL y crea el usuario Admon inicial.
//
// Uso: go run ./cmd/seed
// Requiere SEED_ADMIN_EMAIL y SEED_ADMIN_PASSWORD; SEED_ADMIN_NAME es opcional.
// Si el usuario ya existe no se modifica.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/inventario-planchas/internal/application/auth"
	"github.com/jhoicas/inventario-planchas/internal/application/usecase"
	"github.com/jhoicas/inventario-planchas/internal/infrastructure/postgres"
	"github.com/jhoicas/inventario-planchas/migrations"
	"github.com/jhoicas/inventario-planchas/pkg/config"
	"github.com/jhoicas/inventario-planchas/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "seed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cargar configuración: %w", err)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	if cfg.Seed.AdminEmail == "" || cfg.Seed.AdminPassword == "" {
		return errors.New("SEED_ADMIN_EMAIL y SEED_ADMIN_PASSWORD son requeridos")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool, migrations.Files, log.Component("migrate")); err != nil {
		return err
	}

	users := usecase.NewUserUseCase(
		postgres.NewUserRepository(pool),
		auth.NewPasswords(cfg.Auth.PlaintextPasswords),
		log.Zerolog(),
	)
	admin, created, err := users.EnsureAdmin(ctx, cfg.Seed.AdminEmail, cfg.Seed.AdminPassword, cfg.Seed.AdminName)
	if err != nil {
		return fmt.Errorf("crear administrador: %w", err)
	}
	if !created {
		log.Info().Str("email", admin.Email).Msg("el administrador ya existe")
		return nil
	}
	log.Info().Str("id", admin.ID).Str("email", admin.Email).Msg("administrador creado")
	return nil
}
