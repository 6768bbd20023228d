// Package db provides a pgxpool-based connection pool with prepared statement
// registration, health checking, and a process-wide shared handle.
package db

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/amalbasheer/Game-analytics/internal/config"
)

// Pool wraps pgxpool.Pool with application-specific helpers.
type Pool struct {
	*pgxpool.Pool
}

// New creates and validates a new connection pool.
func New(ctx context.Context, cfg *config.Config) (*Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	poolCfg.MinConns = int32(cfg.DBPoolMinConns)
	poolCfg.MaxConns = int32(cfg.DBPoolMaxConns)
	poolCfg.MaxConnLifetime = cfg.DBPoolMaxLife
	poolCfg.MaxConnIdleTime = 5 * time.Minute

	// Register prepared statements on every new connection.
	poolCfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		return registerPreparedStatements(ctx, conn)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	// Verify connectivity
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Pool{Pool: pool}, nil
}

var (
	sharedOnce sync.Once
	sharedPool *Pool
)

// Shared returns the process-wide connection pool, creating it on first use.
// When the database is unreachable or the liveness probe fails it logs the
// cause and returns nil; callers degrade to empty results plus a warning
// instead of failing. The pool lives until process exit.
func Shared(ctx context.Context, cfg *config.Config) *Pool {
	sharedOnce.Do(func() {
		pool, err := New(ctx, cfg)
		if err != nil {
			slog.Warn("Database connection not established", "error", err)
			return
		}
		sharedPool = pool
	})
	return sharedPool
}

// HealthCheck runs a trivial query to verify the database is reachable.
func (p *Pool) HealthCheck(ctx context.Context) error {
	var n int
	return p.QueryRow(ctx, "health_check").Scan(&n)
}

// registerPreparedStatements registers the fixed dashboard queries. The
// filter-driven queries are built at request time and go through the
// extended-protocol path instead.
func registerPreparedStatements(ctx context.Context, conn *pgx.Conn) error {
	stmts := map[string]string{
		// Health
		"health_check": "SELECT 1",

		// Dropdown option lookups
		"distinct_categories":          "SELECT DISTINCT category_name FROM categories ORDER BY category_name",
		"distinct_competition_types":   "SELECT DISTINCT type FROM competitions ORDER BY type",
		"distinct_competition_genders": "SELECT DISTINCT gender FROM competitions ORDER BY gender",
		"distinct_competition_levels":  "SELECT DISTINCT level FROM competitions WHERE level IS NOT NULL ORDER BY level",
		"distinct_venue_countries":     "SELECT DISTINCT country_name FROM venues ORDER BY country_name",
		"distinct_competitor_countries": "SELECT DISTINCT country FROM competitors ORDER BY country",
	}

	for name, sql := range stmts {
		if _, err := conn.Prepare(ctx, name, sql); err != nil {
			return fmt.Errorf("prepare %q: %w", name, err)
		}
	}
	return nil
}
