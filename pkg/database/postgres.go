package database

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// PoolOptions tunes the pgx pool; zero values keep the defaults below
type PoolOptions struct {
	MaxConns int32
	MinConns int32
	// SimpleProtocol is needed behind PgBouncer in transaction mode
	SimpleProtocol bool
}

func NewPostgresConnection(ctx context.Context, connString string, opts PoolOptions, log *zap.Logger) (*pgxpool.Pool, error) {
	if connString == "" {
		return nil, errors.New("database: DATABASE_URL not configured")
	}
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, err
	}

	if opts.SimpleProtocol {
		// Prevents "prepared statement already exists" errors
		config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	}

	config.MaxConns = 25
	config.MinConns = 2
	if opts.MaxConns > 0 {
		config.MaxConns = opts.MaxConns
	}
	if opts.MinConns > 0 {
		config.MinConns = opts.MinConns
	}
	config.MaxConnLifetime = time.Hour
	config.MaxConnIdleTime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	if log != nil {
		log.Info("Database connection established", zap.Int32("max_conns", config.MaxConns))
	}
	return pool, nil
}
