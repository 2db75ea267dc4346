// Package simulation orchestrates betting simulation runs: a sequential
// single pass over a race sequence, Monte Carlo resampling of the race
// order, walk-forward windows and side-by-side strategy comparison.
package simulation

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/keiba-backtest/internal/evaluator"
	"github.com/yourusername/keiba-backtest/internal/fund"
	"github.com/yourusername/keiba-backtest/internal/metrics"
	"github.com/yourusername/keiba-backtest/internal/models"
	"github.com/yourusername/keiba-backtest/internal/strategy"
)

// Engine runs simulations for one (strategy, fund manager) pair. The
// engine itself is stateless between runs; every fund value lives on the
// call stack, so a single engine is safe for concurrent trials.
type Engine struct {
	strategy    strategy.Strategy
	fundManager *fund.Manager
	logger      *logrus.Logger
	cache       *TicketCache
}

// NewEngine creates a simulation engine.
func NewEngine(strat strategy.Strategy, manager *fund.Manager, logger *logrus.Logger) (*Engine, error) {
	if strat == nil {
		return nil, fmt.Errorf("strategy is required")
	}
	if manager == nil {
		return nil, fmt.Errorf("fund manager is required")
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &Engine{
		strategy:    strat,
		fundManager: manager,
		logger:      logger,
	}, nil
}

// EnableTicketCache memoises per-race ticket generation. Unpriced tickets
// are immutable, so cached tickets are safe to share across Monte Carlo
// trials that revisit the same races in different orders.
func (e *Engine) EnableTicketCache() {
	e.cache = NewTicketCache()
}

// RunSimple executes one sequential pass over the races. Race order fully
// determines the trajectory. The run halts as soon as the fund drops below
// the minimum bet — bankruptcy is a normal terminal state, not an error —
// and the recorded fund history never contains a negative value.
func (e *Engine) RunSimple(races []*models.Race, initialFund int) *models.SimulationResult {
	currentFund := initialFund
	fundHistory := []int{initialFund}
	var betHistory []models.BetRecord

	minBet := e.fundManager.Constraints().MinBet

	for _, race := range races {
		tickets, err := e.generateTickets(race)
		if err != nil {
			e.logger.WithFields(logrus.Fields{"race": race.ID(), "error": err}).
				Warn("Ticket generation failed, skipping race")
			continue
		}
		if len(tickets) == 0 {
			continue
		}

		priced := e.fundManager.PriceTickets(tickets, currentFund)

		for _, ticket := range priced {
			if ticket.Amount <= 0 {
				continue
			}
			// Earlier tickets in the same race may have drained the fund
			// below this ticket's priced stake; skip rather than let the
			// fund go negative.
			if ticket.Amount > currentFund {
				continue
			}

			fundBefore := currentFund
			currentFund -= ticket.Amount

			hit, payout := evaluator.Evaluate(ticket, race)
			currentFund += payout

			betHistory = append(betHistory, models.BetRecord{
				Race:       race,
				RaceID:     race.ID(),
				Ticket:     ticket,
				IsHit:      hit,
				Payout:     payout,
				FundBefore: fundBefore,
				FundAfter:  currentFund,
			})
			fundHistory = append(fundHistory, currentFund)

			if currentFund < minBet {
				break
			}
		}

		if currentFund < minBet {
			e.logger.WithFields(logrus.Fields{
				"race": race.ID(),
				"fund": currentFund,
			}).Info("Fund below minimum bet, stopping run")
			break
		}
	}

	result := &models.SimulationResult{
		InitialFund: initialFund,
		FinalFund:   currentFund,
		BetHistory:  betHistory,
		FundHistory: fundHistory,
	}
	result.Metrics = CalculateMetrics(result)

	metrics.RecordSimulationRun(metrics.MethodSimple, metrics.StatusSuccess)
	metrics.RecordBetsSimulated(len(betHistory))
	metrics.ObserveROI(result.Metrics.ROI)

	return result
}

func (e *Engine) generateTickets(race *models.Race) ([]models.Ticket, error) {
	if e.cache != nil {
		if tickets, ok := e.cache.Get(race.ID()); ok {
			return tickets, nil
		}
	}
	tickets, err := e.strategy.GenerateTickets(race)
	if err != nil {
		return nil, err
	}
	for _, ticket := range tickets {
		if err := ticket.Validate(); err != nil {
			return nil, fmt.Errorf("strategy %s: %w", e.strategy.Name(), err)
		}
	}
	if e.cache != nil {
		e.cache.Set(race.ID(), tickets)
	}
	return tickets, nil
}
