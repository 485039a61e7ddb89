package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// A batch run holds one long COPY stream plus a few short bookkeeping
// statements, so the pool stays small.
const maxPoolConns = 4

// NewPool opens a pgxpool whose sessions are tuned for COPY-loading
// extraction batches: no statement timeout, and a fixed application_name
// so batch sessions are identifiable in pg_stat_activity.
func NewPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	cfg.MaxConns = maxPoolConns
	cfg.ConnConfig.RuntimeParams["application_name"] = "timesift"
	// A COPY of a large parquet file can outlive any sane statement timeout.
	cfg.ConnConfig.RuntimeParams["statement_timeout"] = "0"

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}
