package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"datosempleado/internal/config"
)

// NewPool construye y devuelve un pool de conexiones configurado.
func NewPool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	// Configuración razonable para ambientes iniciales.
	poolCfg.MaxConns = 10
	poolCfg.MinConns = 1
	poolCfg.MaxConnLifetime = 30 * time.Minute
	poolCfg.MaxConnIdleTime = 5 * time.Minute
	poolCfg.HealthCheckPeriod = 30 * time.Second
	poolCfg.ConnConfig.ConnectTimeout = 5 * time.Second

	return pgxpool.NewWithConfig(ctx, poolCfg)
}

// Ping verifica conectividad con la base de datos.
func Ping(ctx context.Context, pool *pgxpool.Pool) error {
	return pool.Ping(ctx)
}

// EnsureSchema crea la tabla de empleados si todavía no existe. No es un
// sistema de migraciones: la tabla es una sola y el esquema no versiona.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	const ddl = `
		CREATE TABLE IF NOT EXISTS employees (
			id             SERIAL PRIMARY KEY,
			first_name     TEXT NOT NULL,
			last_name      TEXT NOT NULL,
			address        TEXT NOT NULL DEFAULT '',
			age            INT  NOT NULL,
			profession     TEXT NOT NULL DEFAULT '',
			marital_status TEXT NOT NULL DEFAULT ''
		)
	`
	_, err := pool.Exec(ctx, ddl)
	return err
}
