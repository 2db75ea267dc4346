package strategy

import (
	"github.com/yourusername/keiba-backtest/internal/models"
)

// LongshotWin buys win tickets on horses flagged by the external long-shot
// model, filtered by hole probability instead of predicted rank.
//
// Params: min_hole_probability (default 0.1), max_tickets (2),
// min_odds (10).
type LongshotWin struct {
	params Params
}

func (s *LongshotWin) Name() string { return "longshot_win" }

func (s *LongshotWin) GenerateTickets(race *models.Race) ([]models.Ticket, error) {
	minProb := s.params.Float("min_hole_probability", 0.1)
	maxTickets := s.params.Int("max_tickets", 2)
	minOdds := s.params.Float("min_odds", 10.0)

	var tickets []models.Ticket
	for _, horse := range holeCandidates(race, minProb) {
		if len(tickets) >= maxTickets {
			break
		}
		if horse.Odds < minOdds {
			continue
		}
		tickets = append(tickets, models.Ticket{
			Type:          models.TicketWin,
			Numbers:       []int{horse.Number},
			Odds:          horse.Odds,
			ExpectedValue: horse.HoleProbability * horse.Odds,
		})
	}
	return tickets, nil
}

// LongshotWide pairs each flagged long-shot with the predicted favorite on
// the wide market, banking on the favorite placing alongside an upset.
//
// Params: min_hole_probability (default 0.1), max_tickets (3).
type LongshotWide struct {
	params Params
}

func (s *LongshotWide) Name() string { return "longshot_wide" }

func (s *LongshotWide) GenerateTickets(race *models.Race) ([]models.Ticket, error) {
	minProb := s.params.Float("min_hole_probability", 0.1)
	maxTickets := s.params.Int("max_tickets", 3)

	favorites := topPredicted(race, 1)
	if len(favorites) == 0 {
		return nil, nil
	}
	favorite := favorites[0]

	var tickets []models.Ticket
	for _, horse := range holeCandidates(race, minProb) {
		if len(tickets) >= maxTickets {
			break
		}
		if horse.Number == favorite.Number {
			continue
		}
		tickets = append(tickets, models.Ticket{
			Type:    models.TicketWide,
			Numbers: []int{favorite.Number, horse.Number},
		})
	}
	return tickets, nil
}

// holeCandidates returns flagged horses whose hole probability clears the
// threshold, strongest signal first, preserving race order on ties.
func holeCandidates(race *models.Race, minProb float64) []models.Horse {
	var candidates []models.Horse
	for _, horse := range race.Horses {
		if horse.IsHoleCandidate && horse.HoleProbability >= minProb {
			candidates = append(candidates, horse)
		}
	}
	for i := 1; i < len(candidates); i++ {
		for j := i; j > 0 && candidates[j].HoleProbability > candidates[j-1].HoleProbability; j-- {
			candidates[j], candidates[j-1] = candidates[j-1], candidates[j]
		}
	}
	return candidates
}
