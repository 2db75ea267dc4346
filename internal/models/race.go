package models

import (
	"fmt"
	"sort"
)

// Surface represents the course type of a race.
type Surface string

const (
	SurfaceTurf Surface = "turf"
	SurfaceDirt Surface = "dirt"
)

// ParseSurface converts the raw JRA course labels into a Surface.
func ParseSurface(value string) (Surface, error) {
	switch value {
	case "芝", "turf":
		return SurfaceTurf, nil
	case "ダート", "ダ", "dirt":
		return SurfaceDirt, nil
	default:
		return "", fmt.Errorf("unknown surface: %q", value)
	}
}

// Race represents one historical race including its settled payouts.
// A Race is shared read-only across simulation trials and must never be
// mutated once constructed.
type Race struct {
	Track      string       `json:"track"`
	Year       int          `json:"year"`
	KaisaiDate int          `json:"kaisai_date"` // MMDD
	RaceNumber int          `json:"race_number"`
	Surface    Surface      `json:"surface"`
	Distance   int          `json:"distance"`
	Horses     []Horse      `json:"horses"`
	Payouts    *RacePayouts `json:"payouts,omitempty"`
}

// ID returns the identity key of the race: track, year, date and number.
func (r *Race) ID() string {
	return fmt.Sprintf("%s_%d_%04d_%02d", r.Track, r.Year, r.KaisaiDate, r.RaceNumber)
}

// NumHorses returns the field size.
func (r *Race) NumHorses() int {
	return len(r.Horses)
}

// HorseByNumber looks up a horse by its number, or nil when absent.
func (r *Race) HorseByNumber(number int) *Horse {
	for i := range r.Horses {
		if r.Horses[i].Number == number {
			return &r.Horses[i]
		}
	}
	return nil
}

// TopPredicted returns the n best horses by predicted rank. When the
// predicted ranking contains duplicate rank values the ordering is
// ambiguous and ErrAmbiguousRanking is returned; callers are expected to
// decline betting on such a race rather than pick an arbitrary tie order.
func (r *Race) TopPredicted(n int) ([]Horse, error) {
	seen := make(map[int]bool, len(r.Horses))
	for _, h := range r.Horses {
		if seen[h.PredictedRank] {
			return nil, fmt.Errorf("%w: race %s duplicates predicted rank %d",
				ErrAmbiguousRanking, r.ID(), h.PredictedRank)
		}
		seen[h.PredictedRank] = true
	}
	return r.topBy(n, func(a, b Horse) bool { return a.PredictedRank < b.PredictedRank }), nil
}

// TopByPopularity returns the n most popular horses.
func (r *Race) TopByPopularity(n int) []Horse {
	return r.topBy(n, func(a, b Horse) bool { return a.Popularity < b.Popularity })
}

// TopByOdds returns the n shortest-priced horses.
func (r *Race) TopByOdds(n int) []Horse {
	return r.topBy(n, func(a, b Horse) bool { return a.Odds < b.Odds })
}

// ActualTop returns the n best finishers by recorded result.
func (r *Race) ActualTop(n int) []Horse {
	return r.topBy(n, func(a, b Horse) bool { return a.ActualRank < b.ActualRank })
}

func (r *Race) topBy(n int, less func(a, b Horse) bool) []Horse {
	sorted := make([]Horse, len(r.Horses))
	copy(sorted, r.Horses)
	sort.SliceStable(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })
	if n > len(sorted) {
		n = len(sorted)
	}
	if n < 0 {
		n = 0
	}
	return sorted[:n]
}
