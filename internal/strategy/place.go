package strategy

import (
	"math"

	"github.com/yourusername/keiba-backtest/internal/models"
)

// FavoritePlace buys place tickets on the top-N horses by predicted rank.
// Place odds are not published pre-race; the reference odds are estimated
// as a third of the win odds, floored at 1.1. Settlement uses the recorded
// slot multipliers, so the estimate only feeds stake sizing.
//
// Params: top_n (default 1).
type FavoritePlace struct {
	params Params
}

func (s *FavoritePlace) Name() string { return "favorite_place" }

func (s *FavoritePlace) GenerateTickets(race *models.Race) ([]models.Ticket, error) {
	topN := s.params.Int("top_n", 1)

	var tickets []models.Ticket
	for _, horse := range topPredicted(race, topN) {
		estimatedOdds := math.Max(1.1, horse.Odds/3)
		tickets = append(tickets, models.Ticket{
			Type:    models.TicketPlace,
			Numbers: []int{horse.Number},
			Odds:    estimatedOdds,
			// Predicted score approximates win probability; place covers
			// three finishing slots.
			ExpectedValue: horse.PredictedScore * estimatedOdds * 3,
		})
	}
	return tickets, nil
}
