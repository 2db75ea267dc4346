package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/keiba-backtest/internal/models"
)

func holeRace() *models.Race {
	race := rankedRace()
	race.Horses[3].IsHoleCandidate = true // #4, odds 18.0
	race.Horses[3].HoleProbability = 0.22
	race.Horses[4].IsHoleCandidate = true // #5, odds 9.9
	race.Horses[4].HoleProbability = 0.31
	race.Horses[5].IsHoleCandidate = true // #6, odds 55.0
	race.Horses[5].HoleProbability = 0.12
	return race
}

func TestLongshotWinOrdersBySignal(t *testing.T) {
	strat, err := New("longshot_win", Params{"min_hole_probability": 0.1, "max_tickets": 3, "min_odds": 1.0})
	require.NoError(t, err)

	tickets, err := strat.GenerateTickets(holeRace())
	require.NoError(t, err)

	require.Len(t, tickets, 3)
	assert.Equal(t, []int{5}, tickets[0].Numbers)
	assert.Equal(t, []int{4}, tickets[1].Numbers)
	assert.Equal(t, []int{6}, tickets[2].Numbers)
	assert.InDelta(t, 0.31*9.9, tickets[0].ExpectedValue, 1e-9)
}

func TestLongshotWinMinOddsFilter(t *testing.T) {
	strat, err := New("longshot_win", Params{"min_odds": 10.0, "max_tickets": 5})
	require.NoError(t, err)

	tickets, err := strat.GenerateTickets(holeRace())
	require.NoError(t, err)

	// Horse 5 at 9.9 misses the cut.
	require.Len(t, tickets, 2)
	assert.Equal(t, []int{4}, tickets[0].Numbers)
	assert.Equal(t, []int{6}, tickets[1].Numbers)
}

func TestLongshotWinThreshold(t *testing.T) {
	strat, err := New("longshot_win", Params{"min_hole_probability": 0.3, "min_odds": 1.0})
	require.NoError(t, err)

	tickets, err := strat.GenerateTickets(holeRace())
	require.NoError(t, err)

	require.Len(t, tickets, 1)
	assert.Equal(t, []int{5}, tickets[0].Numbers)
}

func TestLongshotWidePairsWithFavorite(t *testing.T) {
	strat, err := New("longshot_wide", Params{"max_tickets": 2})
	require.NoError(t, err)

	tickets, err := strat.GenerateTickets(holeRace())
	require.NoError(t, err)

	require.Len(t, tickets, 2)
	for _, ticket := range tickets {
		assert.Equal(t, models.TicketWide, ticket.Type)
		assert.Contains(t, ticket.Numbers, 1)
	}
	assert.Equal(t, "1-5", tickets[0].Key())
	assert.Equal(t, "1-4", tickets[1].Key())
}

func TestLongshotWideSkipsFavoriteCandidate(t *testing.T) {
	race := holeRace()
	race.Horses[0].IsHoleCandidate = true
	race.Horses[0].HoleProbability = 0.9 // favorite also flagged

	strat, err := New("longshot_wide", Params{"max_tickets": 5})
	require.NoError(t, err)

	tickets, err := strat.GenerateTickets(race)
	require.NoError(t, err)

	require.Len(t, tickets, 3)
	for _, ticket := range tickets {
		assert.NotEqual(t, "1-1", ticket.Key())
	}
}

func TestLongshotWinNoCandidates(t *testing.T) {
	strat, err := New("longshot_win", nil)
	require.NoError(t, err)

	tickets, err := strat.GenerateTickets(rankedRace())
	require.NoError(t, err)
	assert.Empty(t, tickets)
}
