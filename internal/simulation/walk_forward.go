package simulation

import (
	"fmt"

	"github.com/yourusername/keiba-backtest/internal/metrics"
	"github.com/yourusername/keiba-backtest/internal/models"
)

// WalkForwardConfig configures sliding-window runs over the chronological
// race sequence. Whether a trailing undersized window is included is an
// explicit choice, not a guess.
type WalkForwardConfig struct {
	WindowSize         int  `mapstructure:"window_size" json:"window_size" validate:"gt=0"`
	StepSize           int  `mapstructure:"step_size" json:"step_size" validate:"gt=0"`
	IncludePartialTail bool `mapstructure:"include_partial_tail" json:"include_partial_tail"`
}

// WalkForwardWindow is one window's independent run: races[Start:End].
type WalkForwardWindow struct {
	Index   int                      `json:"index"`
	Start   int                      `json:"start"`
	End     int                      `json:"end"`
	Partial bool                     `json:"partial"`
	Result  *models.SimulationResult `json:"result"`
}

// WalkForwardResult collects all window runs.
type WalkForwardResult struct {
	Windows []WalkForwardWindow `json:"windows"`
}

// RunWalkForward slides a fixed-size window across the races in their
// original chronological order, advancing by the step size and running an
// independent simple pass per window. Full windows number
// floor((N-W)/S)+1 for N >= W.
func (e *Engine) RunWalkForward(races []*models.Race, initialFund int, cfg WalkForwardConfig) (*WalkForwardResult, error) {
	if cfg.WindowSize <= 0 {
		return nil, fmt.Errorf("window size must be positive, got %d", cfg.WindowSize)
	}
	if cfg.StepSize <= 0 {
		return nil, fmt.Errorf("step size must be positive, got %d", cfg.StepSize)
	}

	result := &WalkForwardResult{}
	start := 0

	for ; start+cfg.WindowSize <= len(races); start += cfg.StepSize {
		window := WalkForwardWindow{
			Index: len(result.Windows),
			Start: start,
			End:   start + cfg.WindowSize,
		}
		window.Result = e.RunSimple(races[window.Start:window.End], initialFund)
		result.Windows = append(result.Windows, window)
	}

	if cfg.IncludePartialTail && start < len(races) {
		window := WalkForwardWindow{
			Index:   len(result.Windows),
			Start:   start,
			End:     len(races),
			Partial: true,
		}
		window.Result = e.RunSimple(races[window.Start:window.End], initialFund)
		result.Windows = append(result.Windows, window)
	}

	metrics.RecordSimulationRun(metrics.MethodWalkForward, metrics.StatusSuccess)
	return result, nil
}

// Consistency returns the fraction of windows that ended profitable.
func (r *WalkForwardResult) Consistency() float64 {
	if len(r.Windows) == 0 {
		return 0
	}
	profitable := 0
	for _, w := range r.Windows {
		if w.Result != nil && w.Result.Profit() > 0 {
			profitable++
		}
	}
	return float64(profitable) / float64(len(r.Windows))
}

// MeanROI averages the per-window ROI.
func (r *WalkForwardResult) MeanROI() float64 {
	if len(r.Windows) == 0 {
		return 0
	}
	total := 0.0
	for _, w := range r.Windows {
		if w.Result != nil && w.Result.Metrics != nil {
			total += w.Result.Metrics.ROI
		}
	}
	return total / float64(len(r.Windows))
}
