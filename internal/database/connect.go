package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"jobtrack/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DSN builds the postgres connection string for the pool and the
// migration runner.
func DSN(cfg config.DBConfig) string {
	// Adjust sslmode based on your environment (e.g., require, verify-full)
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)
}

// NewConnectionPool creates a new PostgreSQL connection pool using pgx.
func NewConnectionPool(cfg config.DBConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to parse pgx config: %w", err)
	}

	poolConfig.MaxConns = 10
	poolConfig.MinConns = 2
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	// Health check interval ensures unhealthy connections are pruned
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	log.Println("Attempting to connect to database...")
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	// Ping the database to verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		pool.Close() // Close the pool if ping fails
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("Database connection pool established successfully")
	return pool, nil
}
