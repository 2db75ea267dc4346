package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/yourusername/keiba-backtest/internal/database"
	"github.com/yourusername/keiba-backtest/internal/models"
)

const errScanSimulationResult = "failed to scan simulation result: %w"

const simulationResultColumns = `
	id, strategy_name, fund_manager_name, run_at, initial_fund, final_fund,
	total_bets, hit_rate, roi, max_drawdown, sharpe_ratio, is_go, full_result
`

// PostgresSimulationResultRepository implements SimulationResultRepository
// for PostgreSQL
type PostgresSimulationResultRepository struct {
	db *database.DB
}

// NewPostgresSimulationResultRepository creates a new simulation result repository
func NewPostgresSimulationResultRepository(db *database.DB) SimulationResultRepository {
	return &PostgresSimulationResultRepository{db: db}
}

// Save inserts a simulation result record
func (r *PostgresSimulationResultRepository) Save(ctx context.Context, record *models.SimulationRecord) error {
	query := `
		INSERT INTO simulation_results (` + simulationResultColumns + `)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
	`

	_, err := r.db.Exec(ctx, query,
		record.ID, record.StrategyName, record.FundManagerName, record.RunAt,
		record.InitialFund, record.FinalFund, record.TotalBets, record.HitRate,
		record.ROI, record.MaxDrawdown, record.SharpeRatio, record.IsGo,
		record.FullResult,
	)
	if err != nil {
		return fmt.Errorf("failed to save simulation result: %w", err)
	}
	return nil
}

// GetByID retrieves a single simulation result
func (r *PostgresSimulationResultRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.SimulationRecord, error) {
	query := `SELECT ` + simulationResultColumns + ` FROM simulation_results WHERE id = $1`

	record := &models.SimulationRecord{}
	err := scanRecord(r.db.QueryRow(ctx, query, id), record)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf(errScanSimulationResult, err)
	}
	return record, nil
}

// GetByStrategy retrieves simulation results for a strategy, newest first
func (r *PostgresSimulationResultRepository) GetByStrategy(ctx context.Context, strategyName string) ([]*models.SimulationRecord, error) {
	query := `
		SELECT ` + simulationResultColumns + `
		FROM simulation_results WHERE strategy_name = $1 ORDER BY run_at DESC
	`
	return r.queryRecords(ctx, query, strategyName)
}

// GetLatest retrieves the most recent simulation results
func (r *PostgresSimulationResultRepository) GetLatest(ctx context.Context, limit int) ([]*models.SimulationRecord, error) {
	query := `
		SELECT ` + simulationResultColumns + `
		FROM simulation_results ORDER BY run_at DESC LIMIT $1
	`
	return r.queryRecords(ctx, query, limit)
}

// GetGoVerdicts retrieves results that passed the deployment criteria
func (r *PostgresSimulationResultRepository) GetGoVerdicts(ctx context.Context) ([]*models.SimulationRecord, error) {
	query := `
		SELECT ` + simulationResultColumns + `
		FROM simulation_results WHERE is_go ORDER BY roi DESC
	`
	return r.queryRecords(ctx, query)
}

// Delete removes a simulation result
func (r *PostgresSimulationResultRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM simulation_results WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete simulation result: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *PostgresSimulationResultRepository) queryRecords(ctx context.Context, query string, args ...any) ([]*models.SimulationRecord, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query simulation results: %w", err)
	}
	defer rows.Close()

	var records []*models.SimulationRecord
	for rows.Next() {
		record := &models.SimulationRecord{}
		if err := scanRecord(rows, record); err != nil {
			return nil, fmt.Errorf(errScanSimulationResult, err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func scanRecord(row pgx.Row, record *models.SimulationRecord) error {
	return row.Scan(
		&record.ID, &record.StrategyName, &record.FundManagerName, &record.RunAt,
		&record.InitialFund, &record.FinalFund, &record.TotalBets, &record.HitRate,
		&record.ROI, &record.MaxDrawdown, &record.SharpeRatio, &record.IsGo,
		&record.FullResult,
	)
}
