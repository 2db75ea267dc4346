// Package logger provides simulation-specific logging.
package logger

import (
	"github.com/sirupsen/logrus"
)

// SimulationLogger provides dedicated logging for simulation runs.
type SimulationLogger struct {
	*logrus.Entry
}

// NewSimulationLogger creates a new simulation logger.
func NewSimulationLogger(baseLogger *logrus.Logger) *SimulationLogger {
	return &SimulationLogger{
		Entry: baseLogger.WithField("component", "simulation"),
	}
}

// LogRunStart logs the start of a simulation run.
func (sl *SimulationLogger) LogRunStart(strategyName, fundManagerName string, numRaces, initialFund int) {
	sl.WithFields(logrus.Fields{
		"strategy":     strategyName,
		"fund_manager": fundManagerName,
		"num_races":    numRaces,
		"initial_fund": initialFund,
	}).Info("Simulation run started")
}

// LogRunComplete logs a finished simulation run with its headline metrics.
func (sl *SimulationLogger) LogRunComplete(strategyName string, finalFund, totalBets int, roi, hitRate, maxDrawdown float64, isGo bool) {
	sl.WithFields(logrus.Fields{
		"strategy":     strategyName,
		"final_fund":   finalFund,
		"total_bets":   totalBets,
		"roi":          roi,
		"hit_rate":     hitRate,
		"max_drawdown": maxDrawdown,
		"is_go":        isGo,
	}).Info("Simulation run completed")
}

// LogBetSettled logs a settled bet.
func (sl *SimulationLogger) LogBetSettled(raceID, ticket string, amount, payout, fundAfter int, isHit bool) {
	sl.WithFields(logrus.Fields{
		"race_id":    raceID,
		"ticket":     ticket,
		"amount":     amount,
		"payout":     payout,
		"fund_after": fundAfter,
		"is_hit":     isHit,
	}).Debug("Bet settled")
}

// LogBankruptcy logs an early halt because the fund fell below the minimum bet.
func (sl *SimulationLogger) LogBankruptcy(strategyName, raceID string, fund, minBet int, betsPlaced int) {
	sl.WithFields(logrus.Fields{
		"strategy":    strategyName,
		"race_id":     raceID,
		"fund":        fund,
		"min_bet":     minBet,
		"bets_placed": betsPlaced,
	}).Warn("Fund below minimum bet, halting simulation")
}

// LogDrawdown logs a drawdown event crossing the review threshold.
func (sl *SimulationLogger) LogDrawdown(strategyName string, drawdownPercent float64, peakFund, currentFund int) {
	sl.WithFields(logrus.Fields{
		"strategy":         strategyName,
		"drawdown_percent": drawdownPercent,
		"peak_fund":        peakFund,
		"current_fund":     currentFund,
	}).Warn("Drawdown threshold exceeded")
}
