package simulation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yourusername/keiba-backtest/internal/models"
)

func bet(raceID string, amount, payout int) models.BetRecord {
	return models.BetRecord{
		RaceID: raceID,
		Ticket: models.PricedTicket{
			Ticket: models.Ticket{Type: models.TicketWin, Numbers: []int{1}},
			Amount: amount,
		},
		IsHit:  payout > 0,
		Payout: payout,
	}
}

func TestCalculateMetricsEmptyRun(t *testing.T) {
	m := CalculateMetrics(&models.SimulationResult{})
	assert.Equal(t, 0, m.TotalBets)
	assert.Equal(t, 0.0, m.ROI)
	assert.False(t, m.IsGo)

	assert.NotNil(t, CalculateMetrics(nil))
}

func TestCalculateMetricsAggregation(t *testing.T) {
	result := &models.SimulationResult{
		InitialFund: 10_000,
		FinalFund:   11_000,
		BetHistory: []models.BetRecord{
			bet("r1", 1000, 3000),
			bet("r1", 1000, 0),
			bet("r2", 1000, 0),
		},
		FundHistory: []int{10_000, 12_000, 11_000, 10_000},
	}

	m := CalculateMetrics(result)

	assert.Equal(t, 2, m.TotalRaces)
	assert.Equal(t, 3, m.TotalBets)
	assert.Equal(t, 1, m.TotalHits)
	assert.Equal(t, 3000, m.TotalInvested)
	assert.Equal(t, 3000, m.TotalPayout)
	assert.InDelta(t, 100.0/3, m.HitRate, 1e-9)
	assert.InDelta(t, 100.0, m.ROI, 1e-9)
	assert.Equal(t, 0, m.Profit)
}

func TestGoVerdict(t *testing.T) {
	tests := []struct {
		name    string
		invest  int
		payout  int
		history []int
		wantGo  bool
	}{
		{"all thresholds met", 1000, 1500, []int{10_000, 10_500, 11_000}, true},
		{"roi just below", 10_000, 9_900, []int{10_000, 9_900}, false},
		{"roi at threshold", 1000, 1000, []int{10_000, 10_000}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := &models.SimulationResult{
				BetHistory:  []models.BetRecord{bet("r1", tt.invest, tt.payout)},
				FundHistory: tt.history,
			}
			m := CalculateMetrics(result)
			assert.Equal(t, tt.wantGo, m.IsGo)
		})
	}
}

func TestGoVerdictFailsOnDrawdown(t *testing.T) {
	result := &models.SimulationResult{
		BetHistory: []models.BetRecord{
			bet("r1", 1000, 1500),
			bet("r2", 1000, 1500),
		},
		// 40% collapse from the 10k peak before recovering.
		FundHistory: []int{10_000, 6_000, 12_000},
	}
	m := CalculateMetrics(result)

	assert.GreaterOrEqual(t, m.ROI, 100.0)
	assert.Greater(t, m.MaxDrawdown, 30.0)
	assert.False(t, m.IsGo)
}

func TestMaxDrawdown(t *testing.T) {
	dd, period := maxDrawdown([]int{10_000, 12_000, 9_000, 9_600, 13_000, 11_000})
	assert.InDelta(t, 25.0, dd, 1e-9)
	assert.Equal(t, 1, period)
}

func TestMaxDrawdownMonotonicIncrease(t *testing.T) {
	dd, period := maxDrawdown([]int{100, 200, 300, 400})
	assert.Equal(t, 0.0, dd)
	assert.Equal(t, 0, period)
}

func TestMaxDrawdownPeriodCountsBarsUnderWater(t *testing.T) {
	// Three consecutive non-peak steps into the low.
	dd, period := maxDrawdown([]int{10_000, 9_500, 9_000, 5_000, 11_000})
	assert.InDelta(t, 50.0, dd, 1e-9)
	assert.Equal(t, 3, period)
}

func TestMaxDrawdownEmpty(t *testing.T) {
	dd, period := maxDrawdown(nil)
	assert.Equal(t, 0.0, dd)
	assert.Equal(t, 0, period)
}

func TestStreaks(t *testing.T) {
	history := []models.BetRecord{
		bet("r1", 100, 200),
		bet("r1", 100, 150),
		bet("r2", 100, 0),
		bet("r3", 100, 120),
		bet("r4", 100, 0),
		bet("r5", 100, 0),
		bet("r6", 100, 0),
	}

	wins, losses := streaks(history)
	assert.Equal(t, 2, wins)
	assert.Equal(t, 3, losses)
}

func TestSharpeRatio(t *testing.T) {
	// Returns 1.0 and 0.0: mean 0.5, sample std sqrt(0.5).
	history := []models.BetRecord{
		bet("r1", 100, 200),
		bet("r2", 100, 100),
	}
	assert.InDelta(t, 0.5/math.Sqrt(0.5), sharpeRatio(history), 1e-9)
}

func TestSharpeRatioDegenerateCases(t *testing.T) {
	// Single bet.
	assert.Equal(t, 0.0, sharpeRatio([]models.BetRecord{bet("r1", 100, 200)}))

	// Identical returns, zero deviation.
	flat := []models.BetRecord{
		bet("r1", 100, 150),
		bet("r2", 100, 150),
	}
	assert.Equal(t, 0.0, sharpeRatio(flat))

	// Zero-stake bets are excluded.
	zeroStake := []models.BetRecord{
		bet("r1", 0, 0),
		bet("r2", 0, 0),
		bet("r3", 0, 0),
	}
	assert.Equal(t, 0.0, sharpeRatio(zeroStake))
}
