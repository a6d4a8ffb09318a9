package postgres

import (
	"context"
	"fmt"
	"net"
	"net/url"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/inventario-planchas/pkg/config"
)

// NewPool crea el pool de conexiones con los límites de la configuración.
// Si hay DATABASE_URL se usa tal cual, salvo el host, que se resuelve a IPv4 cuando es posible
// (los contenedores sin IPv6 no alcanzan hosts que solo publican AAAA).
func NewPool(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(preferIPv4(cfg.ConnectionString()))
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}

	poolConfig.MaxConns = cfg.MaxConns
	poolConfig.MinConns = cfg.MinConns
	poolConfig.MaxConnLifetime = cfg.MaxConnLifetime
	poolConfig.MaxConnIdleTime = cfg.MaxConnIdleTime

	// NUMERIC <-> shopspring/decimal para costos.
	poolConfig.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	return pool, nil
}

// preferIPv4 reemplaza el host de la URL por su primera IPv4. Si algo falla deja la URL intacta.
func preferIPv4(dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil || u.Hostname() == "" {
		return dsn
	}
	if ip := net.ParseIP(u.Hostname()); ip != nil {
		return dsn
	}
	ips, err := net.LookupIP(u.Hostname())
	if err != nil {
		return dsn
	}
	port := u.Port()
	if port == "" {
		port = "5432"
	}
	for _, ip := range ips {
		if v4 := ip.To4(); v4 != nil {
			u.Host = net.JoinHostPort(v4.String(), port)
			return u.String()
		}
	}
	return dsn
}
