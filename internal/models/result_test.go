package models

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulationResultProfitAndROI(t *testing.T) {
	result := &SimulationResult{InitialFund: 1_000_000, FinalFund: 1_250_000}
	assert.Equal(t, 250_000, result.Profit())
	assert.InDelta(t, 125.0, result.ROI(), 1e-9)

	empty := &SimulationResult{}
	assert.Equal(t, 0.0, empty.ROI())
}

func TestNewSimulationRecord(t *testing.T) {
	result := &SimulationResult{
		InitialFund: 1_000_000,
		FinalFund:   1_100_000,
		FundHistory: []int{1_000_000, 1_100_000},
		Metrics: &SimulationMetrics{
			TotalBets:   10,
			HitRate:     30.0,
			ROI:         110.0,
			MaxDrawdown: 5.0,
			SharpeRatio: 0.4,
			IsGo:        true,
		},
	}

	record, err := NewSimulationRecord("favorite_win", "kelly", result)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, record.ID)
	assert.Equal(t, "favorite_win", record.StrategyName)
	assert.Equal(t, "kelly", record.FundManagerName)
	assert.Equal(t, 1_000_000, record.InitialFund)
	assert.Equal(t, 1_100_000, record.FinalFund)
	assert.Equal(t, 10, record.TotalBets)
	assert.True(t, record.IsGo)
	assert.False(t, record.RunAt.IsZero())

	var decoded SimulationResult
	require.NoError(t, json.Unmarshal(record.FullResult, &decoded))
	assert.Equal(t, result.FundHistory, decoded.FundHistory)
}

func TestNewSimulationRecordWithoutMetrics(t *testing.T) {
	record, err := NewSimulationRecord("value_win", "fixed", &SimulationResult{InitialFund: 500_000, FinalFund: 400_000})
	require.NoError(t, err)

	assert.Equal(t, 0, record.TotalBets)
	assert.False(t, record.IsGo)
}
