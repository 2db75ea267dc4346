// Package fund implements stake sizing for generated tickets: pluggable
// sizing rules behind a fixed constraint pipeline. Pricing is stateless —
// the current fund is always an explicit call parameter — so one manager
// can be shared across concurrently running simulation trials.
package fund

import "fmt"

// Constraints bound how much capital a single ticket or race may consume.
type Constraints struct {
	MinBet          int     `mapstructure:"min_bet" json:"min_bet" validate:"gte=0"`
	MaxBetPerTicket int     `mapstructure:"max_bet_per_ticket" json:"max_bet_per_ticket" validate:"gte=0"`
	MaxBetPerRace   int     `mapstructure:"max_bet_per_race" json:"max_bet_per_race" validate:"gte=0"`
	MaxBetRatio     float64 `mapstructure:"max_bet_ratio" json:"max_bet_ratio" validate:"gte=0,lte=1"`
	BetUnit         int     `mapstructure:"bet_unit" json:"bet_unit" validate:"gt=0"`
}

// DefaultConstraints returns the JRA-flavoured defaults: 100-yen units,
// 100k per ticket, 500k per race, a tenth of the fund per ticket.
func DefaultConstraints() Constraints {
	return Constraints{
		MinBet:          100,
		MaxBetPerTicket: 100000,
		MaxBetPerRace:   500000,
		MaxBetRatio:     0.1,
		BetUnit:         100,
	}
}

// Validate checks internal consistency of the constraint set.
func (c Constraints) Validate() error {
	if c.BetUnit <= 0 {
		return fmt.Errorf("bet_unit must be positive, got %d", c.BetUnit)
	}
	if c.MinBet < 0 {
		return fmt.Errorf("min_bet cannot be negative, got %d", c.MinBet)
	}
	if c.MaxBetRatio < 0 || c.MaxBetRatio > 1 {
		return fmt.Errorf("max_bet_ratio must be within [0,1], got %g", c.MaxBetRatio)
	}
	return nil
}
