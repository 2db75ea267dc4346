package strategy

import (
	"errors"

	"github.com/yourusername/keiba-backtest/internal/models"
)

// topPredicted returns the n best horses by predicted rank, or nil when the
// ranking is ambiguous. An ambiguous ranking means the strategy declines to
// bet on the race; it is a per-race condition, never a run-level error.
func topPredicted(race *models.Race, n int) []models.Horse {
	horses, err := race.TopPredicted(n)
	if err != nil {
		if errors.Is(err, models.ErrAmbiguousRanking) {
			return nil
		}
		return nil
	}
	return horses
}

// withinOdds applies the min/max odds window common to the single-horse
// strategies.
func withinOdds(h models.Horse, minOdds, maxOdds float64) bool {
	return h.Odds >= minOdds && h.Odds <= maxOdds
}

// pairCombinations yields every unordered pair among the given horses.
func pairCombinations(horses []models.Horse) [][2]models.Horse {
	var out [][2]models.Horse
	for i := 0; i < len(horses); i++ {
		for j := i + 1; j < len(horses); j++ {
			out = append(out, [2]models.Horse{horses[i], horses[j]})
		}
	}
	return out
}

// tripleCombinations yields every unordered triple among the given horses.
func tripleCombinations(horses []models.Horse) [][3]models.Horse {
	var out [][3]models.Horse
	for i := 0; i < len(horses); i++ {
		for j := i + 1; j < len(horses); j++ {
			for k := j + 1; k < len(horses); k++ {
				out = append(out, [3]models.Horse{horses[i], horses[j], horses[k]})
			}
		}
	}
	return out
}
