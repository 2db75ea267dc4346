package models

import "fmt"

// Horse represents a single runner within a race. Instances are built once
// per race and treated as immutable afterwards.
type Horse struct {
	Number         int     `json:"number" validate:"required,gte=1"`
	Name           string  `json:"name"`
	Odds           float64 `json:"odds" validate:"gte=1"`
	Popularity     int     `json:"popularity"`
	ActualRank     int     `json:"actual_rank"`
	PredictedRank  int     `json:"predicted_rank"`
	PredictedScore float64 `json:"predicted_score"`

	// Long-shot signal supplied by an external model.
	HoleProbability float64 `json:"hole_probability,omitempty"`
	IsHoleCandidate bool    `json:"is_hole_candidate,omitempty"`
	IsActualHole    bool    `json:"is_actual_hole,omitempty"`
}

// Validate checks the construction invariants of a horse entry.
func (h Horse) Validate() error {
	if h.Number < 1 {
		return fmt.Errorf("%w: horse number %d", ErrInvalidHorse, h.Number)
	}
	if h.Odds < 1.0 {
		return fmt.Errorf("%w: odds %.2f for horse %d", ErrInvalidHorse, h.Odds, h.Number)
	}
	return nil
}

// ExpectedValue is the product of the model score and the win odds, the
// value measure shared by the value-based strategies and Kelly sizing.
func (h Horse) ExpectedValue() float64 {
	return h.PredictedScore * h.Odds
}
