package fund

import "github.com/yourusername/keiba-backtest/internal/models"

// Sizer produces the raw, unconstrained stake for a ticket given the fund
// available at pricing time.
type Sizer interface {
	RawAmount(ticket models.Ticket, fund int) int
}

// FixedSizer stakes a constant amount on every ticket.
type FixedSizer struct {
	Amount int
}

func (s FixedSizer) RawAmount(_ models.Ticket, _ int) int {
	return s.Amount
}

// PercentageSizer stakes a fixed fraction of the current fund.
type PercentageSizer struct {
	Percentage float64
}

func (s PercentageSizer) RawAmount(_ models.Ticket, fund int) int {
	return int(float64(fund) * s.Percentage)
}

// KellySizer stakes a configured fraction of the full Kelly-optimal bet.
// The implied win probability is recovered from the ticket's expected
// value: EV = p * odds, so p = EV / odds.
type KellySizer struct {
	Fraction float64 // e.g. 0.25 for quarter-Kelly
}

func (s KellySizer) RawAmount(ticket models.Ticket, fund int) int {
	if ticket.Odds <= 0 {
		return 0
	}
	p := ticket.ExpectedValue / ticket.Odds
	if p <= 0 || p >= 1 {
		return 0
	}

	// f* = (b*p - q) / b with b the net odds and q the loss probability.
	b := ticket.Odds - 1
	if b <= 0 {
		return 0
	}
	q := 1 - p
	kelly := (b*p - q) / b
	if kelly <= 0 {
		return 0
	}

	return int(float64(fund) * kelly * s.Fraction)
}
