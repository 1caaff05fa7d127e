package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"ticket_checkout/internal/infrastructure/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

const connectAttempts = 5

// NewPostgresPool creates and validates a pgxpool connection pool.
// It retries a few times to accommodate containers starting up.
func NewPostgresPool(ctx context.Context, pg config.PostgresConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(pg.DSN())
	if err != nil {
		return nil, fmt.Errorf("parse db config: %w", err)
	}

	poolCfg.MaxConns = 20
	poolCfg.MinConns = 2
	poolCfg.MaxConnLifetime = 30 * time.Minute
	poolCfg.MaxConnIdleTime = 5 * time.Minute

	var pool *pgxpool.Pool
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		pool, err = pgxpool.NewWithConfig(ctx, poolCfg)
		if err == nil {
			if err = pool.Ping(ctx); err == nil {
				return pool, nil
			}
			pool.Close()
		}
		log.Printf("[database] postgres connect attempt=%d/%d err=%v", attempt, connectAttempts, err)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(2 * time.Second):
		}
	}
	return nil, fmt.Errorf("connect to postgres: %w", err)
}
