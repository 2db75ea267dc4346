package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// SimulationMetrics aggregates the risk and performance statistics of one
// finished simulation run.
type SimulationMetrics struct {
	TotalRaces    int `json:"total_races"`
	TotalBets     int `json:"total_bets"`
	TotalHits     int `json:"total_hits"`
	TotalInvested int `json:"total_invested"`
	TotalPayout   int `json:"total_payout"`

	HitRate              float64 `json:"hit_rate"`
	ROI                  float64 `json:"roi"`
	Profit               int     `json:"profit"`
	MaxDrawdown          float64 `json:"max_drawdown"`
	MaxDrawdownPeriod    int     `json:"max_drawdown_period"`
	SharpeRatio          float64 `json:"sharpe_ratio"`
	MaxConsecutiveWins   int     `json:"max_consecutive_wins"`
	MaxConsecutiveLosses int     `json:"max_consecutive_losses"`

	IsGo bool `json:"is_go"`
}

// SimulationResult is the full outcome of a single simulation pass.
// FundHistory holds the initial fund followed by one entry per settled bet;
// the engine never records a negative fund value.
type SimulationResult struct {
	InitialFund int                `json:"initial_fund"`
	FinalFund   int                `json:"final_fund"`
	BetHistory  []BetRecord        `json:"bet_history"`
	FundHistory []int              `json:"fund_history"`
	Metrics     *SimulationMetrics `json:"metrics,omitempty"`
}

// Profit is the net fund movement over the run.
func (r *SimulationResult) Profit() int {
	return r.FinalFund - r.InitialFund
}

// ROI is final over initial fund in percent.
func (r *SimulationResult) ROI() float64 {
	if r.InitialFund == 0 {
		return 0
	}
	return float64(r.FinalFund) / float64(r.InitialFund) * 100
}

// MonteCarloResult summarises the final-fund distribution of shuffled-order
// trials. Rates are percentages of trials.
type MonteCarloResult struct {
	NumTrials  int   `json:"num_trials"`
	FinalFunds []int `json:"final_funds"`

	MeanFinalFund   float64 `json:"mean_final_fund"`
	MedianFinalFund float64 `json:"median_final_fund"`
	StdFinalFund    float64 `json:"std_final_fund"`
	MinFinalFund    int     `json:"min_final_fund"`
	MaxFinalFund    int     `json:"max_final_fund"`

	Percentile5  float64 `json:"percentile_5"`
	Percentile25 float64 `json:"percentile_25"`
	Percentile75 float64 `json:"percentile_75"`
	Percentile95 float64 `json:"percentile_95"`

	BankruptcyRate float64 `json:"bankruptcy_rate"`
	ProfitRate     float64 `json:"profit_rate"`
}

// SimulationRecord is the persistence row for a finished run: flattened key
// metrics plus the full result as JSON.
type SimulationRecord struct {
	ID              uuid.UUID `db:"id" json:"id"`
	StrategyName    string    `db:"strategy_name" json:"strategy_name"`
	FundManagerName string    `db:"fund_manager_name" json:"fund_manager_name"`
	RunAt           time.Time `db:"run_at" json:"run_at"`
	InitialFund     int       `db:"initial_fund" json:"initial_fund"`
	FinalFund       int       `db:"final_fund" json:"final_fund"`
	TotalBets       int       `db:"total_bets" json:"total_bets"`
	HitRate         float64   `db:"hit_rate" json:"hit_rate"`
	ROI             float64   `db:"roi" json:"roi"`
	MaxDrawdown     float64   `db:"max_drawdown" json:"max_drawdown"`
	SharpeRatio     float64   `db:"sharpe_ratio" json:"sharpe_ratio"`
	IsGo            bool      `db:"is_go" json:"is_go"`
	FullResult      []byte    `db:"full_result" json:"full_result"`
}

// NewSimulationRecord flattens a finished result for persistence. The full
// result is embedded as JSON so consumers can rebuild charts without
// re-running the simulation.
func NewSimulationRecord(strategyName, fundManagerName string, result *SimulationResult) (*SimulationRecord, error) {
	payload, err := json.Marshal(result)
	if err != nil {
		return nil, err
	}

	record := &SimulationRecord{
		ID:              uuid.New(),
		StrategyName:    strategyName,
		FundManagerName: fundManagerName,
		RunAt:           time.Now().UTC(),
		InitialFund:     result.InitialFund,
		FinalFund:       result.FinalFund,
		FullResult:      payload,
	}
	if result.Metrics != nil {
		record.TotalBets = result.Metrics.TotalBets
		record.HitRate = result.Metrics.HitRate
		record.ROI = result.Metrics.ROI
		record.MaxDrawdown = result.Metrics.MaxDrawdown
		record.SharpeRatio = result.Metrics.SharpeRatio
		record.IsGo = result.Metrics.IsGo
	}
	return record, nil
}
