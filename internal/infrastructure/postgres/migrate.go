package postgres

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// migrationLockKey identifica el advisory lock que serializa migradores concurrentes.
const migrationLockKey = 7462839

// Migrate aplica en orden los archivos NNN_*.sql de files que aún no estén en schema_migrations.
// Un archivo ya aplicado cuyo checksum cambió es un error: las migraciones no se reescriben.
func Migrate(ctx context.Context, pool *pgxpool.Pool, files fs.FS, log zerolog.Logger) error {
	conn, err := pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire conn: %w", err)
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "SELECT pg_advisory_lock($1)", migrationLockKey); err != nil {
		return fmt.Errorf("advisory lock: %w", err)
	}
	defer func() { _, _ = conn.Exec(context.WithoutCancel(ctx), "SELECT pg_advisory_unlock($1)", migrationLockKey) }()

	if _, err := conn.Exec(ctx, `
CREATE TABLE IF NOT EXISTS schema_migrations (
	version    TEXT PRIMARY KEY,
	filename   TEXT NOT NULL,
	checksum   TEXT NOT NULL,
	applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	names, err := fs.Glob(files, "*.sql")
	if err != nil {
		return fmt.Errorf("discover migrations: %w", err)
	}
	sort.Strings(names)

	seen := make(map[string]bool, len(names))
	for _, name := range names {
		version, _, ok := strings.Cut(name, "_")
		if !ok {
			return fmt.Errorf("migración %s: se espera NNN_descripcion.sql", name)
		}
		if seen[version] {
			return fmt.Errorf("migración %s: versión %s duplicada", name, version)
		}
		seen[version] = true

		body, err := fs.ReadFile(files, name)
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}
		sum := sha256.Sum256(body)
		checksum := hex.EncodeToString(sum[:])

		var applied string
		err = conn.QueryRow(ctx, "SELECT checksum FROM schema_migrations WHERE version = $1", version).Scan(&applied)
		switch {
		case err == nil && applied == checksum:
			log.Debug().Str("migration", name).Msg("ya aplicada")
			continue
		case err == nil:
			return fmt.Errorf("migración %s: checksum distinto al aplicado", name)
		case !errors.Is(err, pgx.ErrNoRows):
			return fmt.Errorf("query schema_migrations: %w", err)
		}

		if err := applyMigration(ctx, conn.Conn(), version, name, checksum, string(body)); err != nil {
			return err
		}
		log.Info().Str("migration", name).Msg("migración aplicada")
	}
	return nil
}

func applyMigration(ctx context.Context, conn *pgx.Conn, version, name, checksum, body string) error {
	tx, err := conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin %s: %w", name, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, body); err != nil {
		return fmt.Errorf("exec %s: %w", name, err)
	}
	if _, err := tx.Exec(ctx,
		"INSERT INTO schema_migrations (version, filename, checksum) VALUES ($1, $2, $3)",
		version, name, checksum,
	); err != nil {
		return fmt.Errorf("record %s: %w", name, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit %s: %w", name, err)
	}
	return nil
}
