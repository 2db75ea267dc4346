package strategy

import (
	"sort"

	"github.com/yourusername/keiba-backtest/internal/models"
)

// FavoriteWin buys win tickets on the top-N horses by predicted rank,
// subject to an odds window.
//
// Params: top_n (default 1), min_odds (1.0), max_odds (999).
type FavoriteWin struct {
	params Params
}

func (s *FavoriteWin) Name() string { return "favorite_win" }

func (s *FavoriteWin) GenerateTickets(race *models.Race) ([]models.Ticket, error) {
	topN := s.params.Int("top_n", 1)
	minOdds := s.params.Float("min_odds", 1.0)
	maxOdds := s.params.Float("max_odds", 999.0)

	var tickets []models.Ticket
	for _, horse := range topPredicted(race, topN) {
		if !withinOdds(horse, minOdds, maxOdds) {
			continue
		}
		tickets = append(tickets, models.Ticket{
			Type:          models.TicketWin,
			Numbers:       []int{horse.Number},
			Odds:          horse.Odds,
			ExpectedValue: horse.ExpectedValue(),
		})
	}
	return tickets, nil
}

// PopularityWin buys win tickets on the top-N horses by public popularity.
//
// Params: top_n (default 1), min_odds (1.0), max_odds (999).
type PopularityWin struct {
	params Params
}

func (s *PopularityWin) Name() string { return "popularity_win" }

func (s *PopularityWin) GenerateTickets(race *models.Race) ([]models.Ticket, error) {
	topN := s.params.Int("top_n", 1)
	minOdds := s.params.Float("min_odds", 1.0)
	maxOdds := s.params.Float("max_odds", 999.0)

	var tickets []models.Ticket
	for _, horse := range race.TopByPopularity(topN) {
		if !withinOdds(horse, minOdds, maxOdds) {
			continue
		}
		tickets = append(tickets, models.Ticket{
			Type:          models.TicketWin,
			Numbers:       []int{horse.Number},
			Odds:          horse.Odds,
			ExpectedValue: horse.ExpectedValue(),
		})
	}
	return tickets, nil
}

// ValueWin buys win tickets on horses whose expected value (predicted score
// times odds) clears a threshold, best value first, capped at max_tickets.
//
// Params: min_expected_value (default 1.0), max_tickets (3).
type ValueWin struct {
	params Params
}

func (s *ValueWin) Name() string { return "value_win" }

func (s *ValueWin) GenerateTickets(race *models.Race) ([]models.Ticket, error) {
	minEV := s.params.Float("min_expected_value", 1.0)
	maxTickets := s.params.Int("max_tickets", 3)

	ranked := make([]models.Horse, len(race.Horses))
	copy(ranked, race.Horses)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].ExpectedValue() > ranked[j].ExpectedValue()
	})

	var tickets []models.Ticket
	for _, horse := range ranked {
		if len(tickets) >= maxTickets {
			break
		}
		ev := horse.ExpectedValue()
		if ev < minEV {
			continue
		}
		tickets = append(tickets, models.Ticket{
			Type:          models.TicketWin,
			Numbers:       []int{horse.Number},
			Odds:          horse.Odds,
			ExpectedValue: ev,
		})
	}
	return tickets, nil
}
