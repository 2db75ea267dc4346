package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/yourusername/keiba-backtest/internal/models"
)

// SimulationResultRepository defines the interface for persisted run access
type SimulationResultRepository interface {
	Save(ctx context.Context, record *models.SimulationRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.SimulationRecord, error)
	GetByStrategy(ctx context.Context, strategyName string) ([]*models.SimulationRecord, error)
	GetLatest(ctx context.Context, limit int) ([]*models.SimulationRecord, error)
	GetGoVerdicts(ctx context.Context) ([]*models.SimulationRecord, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
