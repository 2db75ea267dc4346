package simulation

import (
	"math"

	"github.com/yourusername/keiba-backtest/internal/models"
)

// Go/No-Go thresholds, fixed by business rule.
const (
	goMinROI        = 100.0
	goMaxDrawdown   = 30.0
	goMinHitRate    = 10.0
	bankruptcyShare = 0.1 // Monte Carlo: final fund below this share of the initial fund counts as bankrupt
)

// CalculateMetrics derives the full metric set from a finished run. Pure
// aggregation; degenerate inputs (no bets, zero denominators) yield zeros.
func CalculateMetrics(result *models.SimulationResult) *models.SimulationMetrics {
	m := &models.SimulationMetrics{}
	if result == nil || len(result.BetHistory) == 0 {
		return m
	}

	raceIDs := make(map[string]bool)
	for _, bet := range result.BetHistory {
		m.TotalBets++
		if bet.IsHit {
			m.TotalHits++
		}
		m.TotalInvested += bet.Ticket.Amount
		m.TotalPayout += bet.Payout
		raceIDs[bet.RaceID] = true
	}
	m.TotalRaces = len(raceIDs)

	if m.TotalBets > 0 {
		m.HitRate = float64(m.TotalHits) / float64(m.TotalBets) * 100
	}
	if m.TotalInvested > 0 {
		m.ROI = float64(m.TotalPayout) / float64(m.TotalInvested) * 100
	}
	m.Profit = m.TotalPayout - m.TotalInvested

	m.MaxDrawdown, m.MaxDrawdownPeriod = maxDrawdown(result.FundHistory)
	m.MaxConsecutiveWins, m.MaxConsecutiveLosses = streaks(result.BetHistory)
	m.SharpeRatio = sharpeRatio(result.BetHistory)

	m.IsGo = m.ROI >= goMinROI && m.MaxDrawdown <= goMaxDrawdown && m.HitRate >= goMinHitRate

	return m
}

// maxDrawdown walks the fund history tracking the running peak. It returns
// the worst percentage decline from peak and the number of consecutive
// non-new-peak steps leading into that low.
func maxDrawdown(fundHistory []int) (float64, int) {
	if len(fundHistory) == 0 {
		return 0, 0
	}

	peak := fundHistory[0]
	maxDD := 0.0
	maxPeriod := 0
	currentPeriod := 0

	for _, fundValue := range fundHistory {
		if fundValue > peak {
			peak = fundValue
			currentPeriod = 0
			continue
		}
		currentPeriod++
		if peak <= 0 {
			continue
		}
		drawdown := float64(peak-fundValue) / float64(peak) * 100
		if drawdown > maxDD {
			maxDD = drawdown
			maxPeriod = currentPeriod
		}
	}
	return maxDD, maxPeriod
}

func streaks(betHistory []models.BetRecord) (int, int) {
	maxWins, maxLosses := 0, 0
	wins, losses := 0, 0

	for _, bet := range betHistory {
		if bet.IsHit {
			wins++
			losses = 0
			if wins > maxWins {
				maxWins = wins
			}
		} else {
			losses++
			wins = 0
			if losses > maxLosses {
				maxLosses = losses
			}
		}
	}
	return maxWins, maxLosses
}

// sharpeRatio is the sample mean over the sample standard deviation
// (ddof=1) of per-bet fractional returns, restricted to bets with a
// positive stake. Fewer than two such bets, or zero deviation, yields 0.
func sharpeRatio(betHistory []models.BetRecord) float64 {
	var returns []float64
	for _, bet := range betHistory {
		if bet.Ticket.Amount > 0 {
			returns = append(returns, bet.Return())
		}
	}
	if len(returns) < 2 {
		return 0
	}

	mean := 0.0
	for _, r := range returns {
		mean += r
	}
	mean /= float64(len(returns))

	variance := 0.0
	for _, r := range returns {
		diff := r - mean
		variance += diff * diff
	}
	variance /= float64(len(returns) - 1)

	std := math.Sqrt(variance)
	if std == 0 {
		return 0
	}
	return mean / std
}
