package database

import (
	"context"
	"fmt"

	"github.com/yourusername/keiba-backtest/internal/config"
)

const createSimulationResultsTable = `
CREATE TABLE IF NOT EXISTS simulation_results (
	id UUID PRIMARY KEY,
	strategy_name TEXT NOT NULL,
	fund_manager_name TEXT NOT NULL,
	run_at TIMESTAMPTZ NOT NULL,
	initial_fund BIGINT NOT NULL,
	final_fund BIGINT NOT NULL,
	total_bets INT NOT NULL,
	hit_rate DOUBLE PRECISION NOT NULL,
	roi DOUBLE PRECISION NOT NULL,
	max_drawdown DOUBLE PRECISION NOT NULL,
	sharpe_ratio DOUBLE PRECISION NOT NULL,
	is_go BOOLEAN NOT NULL,
	full_result JSONB NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_simulation_results_strategy
	ON simulation_results (strategy_name, run_at DESC);
`

// Initialize creates a database connection pool and ensures the results
// schema exists.
func Initialize(ctx context.Context, cfg *config.Config) (*DB, error) {
	db, err := NewDB(ctx, &cfg.Database)
	if err != nil {
		return nil, err
	}

	if _, err := db.pool.Exec(ctx, createSimulationResultsTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure results schema: %w", err)
	}

	return db, nil
}
