// Package evaluator settles priced tickets against recorded race payouts.
// Settlement is a pure function: no state, no I/O.
package evaluator

import (
	"github.com/shopspring/decimal"

	"github.com/yourusername/keiba-backtest/internal/models"
)

// Evaluate returns whether the ticket hit and the payout in whole yen.
// A race without recorded payouts settles every ticket as a miss.
func Evaluate(ticket models.PricedTicket, race *models.Race) (bool, int) {
	if race == nil || race.Payouts == nil {
		return false, 0
	}

	switch ticket.Type {
	case models.TicketWin:
		return evaluateWin(ticket, race)
	case models.TicketPlace:
		return evaluatePlace(ticket, race)
	case models.TicketQuinella:
		return evaluateQuinella(ticket, race)
	case models.TicketWide:
		return evaluateWide(ticket, race)
	case models.TicketExacta:
		return evaluateExacta(ticket, race)
	case models.TicketTrio:
		return evaluateTrio(ticket, race)
	default:
		return false, 0
	}
}

func evaluateWin(ticket models.PricedTicket, race *models.Race) (bool, int) {
	if len(ticket.Numbers) != 1 {
		return false, 0
	}
	number := ticket.Numbers[0]
	if number != race.Payouts.WinHorse {
		return false, 0
	}
	// Win pays the horse's own decimal odds.
	horse := race.HorseByNumber(number)
	if horse == nil {
		return false, 0
	}
	return true, payout(ticket.Amount, horse.Odds)
}

func evaluatePlace(ticket models.PricedTicket, race *models.Race) (bool, int) {
	if len(ticket.Numbers) != 1 {
		return false, 0
	}
	multiplier, placed := race.Payouts.PlacePayoutFor(ticket.Numbers[0])
	if !placed {
		return false, 0
	}
	return true, payout(ticket.Amount, multiplier)
}

func evaluateQuinella(ticket models.PricedTicket, race *models.Race) (bool, int) {
	pair := race.Payouts.QuinellaHorses
	if !ticket.CoversSet(pair[0], pair[1]) {
		return false, 0
	}
	return true, payout(ticket.Amount, race.Payouts.QuinellaPayout)
}

func evaluateWide(ticket models.PricedTicket, race *models.Race) (bool, int) {
	for i, pair := range race.Payouts.WidePairs {
		if !ticket.CoversSet(pair[0], pair[1]) {
			continue
		}
		if i >= len(race.Payouts.WidePayouts) {
			return false, 0
		}
		return true, payout(ticket.Amount, race.Payouts.WidePayouts[i])
	}
	return false, 0
}

func evaluateExacta(ticket models.PricedTicket, race *models.Race) (bool, int) {
	pair := race.Payouts.ExactaHorses
	if !ticket.CoversSet(pair[0], pair[1]) {
		return false, 0
	}
	return true, payout(ticket.Amount, race.Payouts.ExactaPayout)
}

func evaluateTrio(ticket models.PricedTicket, race *models.Race) (bool, int) {
	triple := race.Payouts.TrioHorses
	if !ticket.CoversSet(triple[0], triple[1], triple[2]) {
		return false, 0
	}
	return true, payout(ticket.Amount, race.Payouts.TrioPayout)
}

// payout computes stake times multiplier truncated to whole yen. Decimal
// arithmetic avoids binary-float drift on dividends like 1.1.
func payout(stake int, multiplier float64) int {
	if stake <= 0 || multiplier <= 0 {
		return 0
	}
	amount := decimal.NewFromInt(int64(stake)).Mul(decimal.NewFromFloat(multiplier))
	return int(amount.IntPart())
}
