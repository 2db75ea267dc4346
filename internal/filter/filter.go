// Package filter narrows a race set down to the slice of the calendar a
// strategy is meant to be tested on.
package filter

import (
	"github.com/yourusername/keiba-backtest/internal/models"
)

// Criteria selects races by venue, course and field shape. Zero-valued
// fields match everything, so the empty Criteria passes every race.
type Criteria struct {
	Tracks       []string `mapstructure:"tracks" json:"tracks,omitempty"`
	Surfaces     []string `mapstructure:"surfaces" json:"surfaces,omitempty" validate:"dive,oneof=turf dirt"`
	MinDistance  int      `mapstructure:"min_distance" json:"min_distance,omitempty" validate:"gte=0"`
	MaxDistance  int      `mapstructure:"max_distance" json:"max_distance,omitempty" validate:"gte=0"`
	Years        []int    `mapstructure:"years" json:"years,omitempty"`
	RaceNumbers  []int    `mapstructure:"race_numbers" json:"race_numbers,omitempty" validate:"dive,min=1,max=12"`
	MinFieldSize int      `mapstructure:"min_field_size" json:"min_field_size,omitempty" validate:"gte=0"`
	MaxFieldSize int      `mapstructure:"max_field_size" json:"max_field_size,omitempty" validate:"gte=0"`
}

// Matches reports whether a single race passes every configured criterion.
func (c Criteria) Matches(race *models.Race) bool {
	if race == nil {
		return false
	}
	if len(c.Tracks) > 0 && !containsString(c.Tracks, race.Track) {
		return false
	}
	if len(c.Surfaces) > 0 && !containsString(c.Surfaces, string(race.Surface)) {
		return false
	}
	if c.MinDistance > 0 && race.Distance < c.MinDistance {
		return false
	}
	if c.MaxDistance > 0 && race.Distance > c.MaxDistance {
		return false
	}
	if len(c.Years) > 0 && !containsInt(c.Years, race.Year) {
		return false
	}
	if len(c.RaceNumbers) > 0 && !containsInt(c.RaceNumbers, race.RaceNumber) {
		return false
	}
	if c.MinFieldSize > 0 && len(race.Horses) < c.MinFieldSize {
		return false
	}
	if c.MaxFieldSize > 0 && len(race.Horses) > c.MaxFieldSize {
		return false
	}
	return true
}

// Apply returns the races passing the criteria, preserving order.
func (c Criteria) Apply(races []*models.Race) []*models.Race {
	filtered := make([]*models.Race, 0, len(races))
	for _, race := range races {
		if c.Matches(race) {
			filtered = append(filtered, race)
		}
	}
	return filtered
}

// TurfOnly selects turf races.
func TurfOnly() Criteria {
	return Criteria{Surfaces: []string{string(models.SurfaceTurf)}}
}

// DirtOnly selects dirt races.
func DirtOnly() Criteria {
	return Criteria{Surfaces: []string{string(models.SurfaceDirt)}}
}

// Sprint selects races up to 1400m.
func Sprint() Criteria {
	return Criteria{MaxDistance: 1400}
}

// MiddleDistance selects races between 1600m and 2200m.
func MiddleDistance() Criteria {
	return Criteria{MinDistance: 1600, MaxDistance: 2200}
}

// Staying selects races of 2400m and beyond.
func Staying() Criteria {
	return Criteria{MinDistance: 2400}
}

// MainRaces selects the feature races at the end of the card.
func MainRaces() Criteria {
	return Criteria{RaceNumbers: []int{10, 11, 12}}
}

func containsString(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}

func containsInt(values []int, want int) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
