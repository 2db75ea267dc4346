package strategy

import (
	"github.com/yourusername/keiba-backtest/internal/models"
)

// BoxQuinella buys every quinella pair among the top-N predicted horses.
//
// Params: box_size (default 4).
type BoxQuinella struct {
	params Params
}

func (s *BoxQuinella) Name() string { return "box_quinella" }

func (s *BoxQuinella) GenerateTickets(race *models.Race) ([]models.Ticket, error) {
	return boxPairs(race, s.params.Int("box_size", 4), models.TicketQuinella), nil
}

// BoxWide buys every wide pair among the top-N predicted horses.
//
// Params: box_size (default 4).
type BoxWide struct {
	params Params
}

func (s *BoxWide) Name() string { return "box_wide" }

func (s *BoxWide) GenerateTickets(race *models.Race) ([]models.Ticket, error) {
	return boxPairs(race, s.params.Int("box_size", 4), models.TicketWide), nil
}

func boxPairs(race *models.Race, boxSize int, ticketType models.TicketType) []models.Ticket {
	top := topPredicted(race, boxSize)
	if len(top) < 2 {
		return nil
	}
	var tickets []models.Ticket
	for _, pair := range pairCombinations(top) {
		tickets = append(tickets, models.Ticket{
			Type:    ticketType,
			Numbers: []int{pair[0].Number, pair[1].Number},
		})
	}
	return tickets
}

// FlowQuinella wheels axis horses against a partner pool: every
// axis-partner quinella pair.
//
// Params: num_axis (default 1), num_partners (5).
type FlowQuinella struct {
	params Params
}

func (s *FlowQuinella) Name() string { return "flow_quinella" }

func (s *FlowQuinella) GenerateTickets(race *models.Race) ([]models.Ticket, error) {
	numAxis := s.params.Int("num_axis", 1)
	numPartners := s.params.Int("num_partners", 5)

	top := topPredicted(race, numAxis+numPartners)
	if len(top) < 2 || len(top) <= numAxis {
		return nil, nil
	}

	axis := top[:numAxis]
	partners := top[numAxis:]

	var tickets []models.Ticket
	for _, a := range axis {
		for _, p := range partners {
			tickets = append(tickets, models.Ticket{
				Type:    models.TicketQuinella,
				Numbers: []int{a.Number, p.Number},
			})
		}
	}
	return tickets, nil
}

// BoxTrio buys every trio triple among the top-N predicted horses.
//
// Params: box_size (default 5).
type BoxTrio struct {
	params Params
}

func (s *BoxTrio) Name() string { return "box_trio" }

func (s *BoxTrio) GenerateTickets(race *models.Race) ([]models.Ticket, error) {
	top := topPredicted(race, s.params.Int("box_size", 5))
	if len(top) < 3 {
		return nil, nil
	}
	var tickets []models.Ticket
	for _, triple := range tripleCombinations(top) {
		tickets = append(tickets, models.Ticket{
			Type:    models.TicketTrio,
			Numbers: []int{triple[0].Number, triple[1].Number, triple[2].Number},
		})
	}
	return tickets, nil
}

// FlowTrio wheels the single best predicted horse against partner pairs:
// axis plus every C(partners, 2) combination.
//
// Params: num_partners (default 6).
type FlowTrio struct {
	params Params
}

func (s *FlowTrio) Name() string { return "flow_trio" }

func (s *FlowTrio) GenerateTickets(race *models.Race) ([]models.Ticket, error) {
	numPartners := s.params.Int("num_partners", 6)

	top := topPredicted(race, 1+numPartners)
	if len(top) < 3 {
		return nil, nil
	}

	axis := top[0]
	partners := top[1:]

	var tickets []models.Ticket
	for _, pair := range pairCombinations(partners) {
		tickets = append(tickets, models.Ticket{
			Type:    models.TicketTrio,
			Numbers: []int{axis.Number, pair[0].Number, pair[1].Number},
		})
	}
	return tickets, nil
}

// FormationTrio draws one horse from a distinct predicted-rank pool per
// finishing position. Trio settlement is unordered, so combinations are
// deduplicated by their unordered horse set and no horse repeats within a
// ticket.
//
// Params: first_pool (default 1), second_pool (3), third_pool (6) — pool N
// is the top-N predicted horses.
type FormationTrio struct {
	params Params
}

func (s *FormationTrio) Name() string { return "formation_trio" }

func (s *FormationTrio) GenerateTickets(race *models.Race) ([]models.Ticket, error) {
	firstPool := topPredicted(race, s.params.Int("first_pool", 1))
	secondPool := topPredicted(race, s.params.Int("second_pool", 3))
	thirdPool := topPredicted(race, s.params.Int("third_pool", 6))
	if len(firstPool) == 0 || len(secondPool) == 0 || len(thirdPool) == 0 {
		return nil, nil
	}

	seen := make(map[string]bool)
	var tickets []models.Ticket
	for _, first := range firstPool {
		for _, second := range secondPool {
			if second.Number == first.Number {
				continue
			}
			for _, third := range thirdPool {
				if third.Number == first.Number || third.Number == second.Number {
					continue
				}
				ticket := models.Ticket{
					Type:    models.TicketTrio,
					Numbers: []int{first.Number, second.Number, third.Number},
				}
				key := ticket.Key()
				if seen[key] {
					continue
				}
				seen[key] = true
				tickets = append(tickets, ticket)
			}
		}
	}
	return tickets, nil
}
