package models

// BetRecord captures one settled ticket together with the fund trajectory
// around it.
type BetRecord struct {
	Race       *Race        `json:"-"`
	RaceID     string       `json:"race_id"`
	Ticket     PricedTicket `json:"ticket"`
	IsHit      bool         `json:"is_hit"`
	Payout     int          `json:"payout"`
	FundBefore int          `json:"fund_before"`
	FundAfter  int          `json:"fund_after"`
}

// Profit is the net result of the bet.
func (b BetRecord) Profit() int {
	return b.Payout - b.Ticket.Amount
}

// ROI is the per-bet return on investment in percent.
func (b BetRecord) ROI() float64 {
	if b.Ticket.Amount == 0 {
		return 0
	}
	return float64(b.Payout) / float64(b.Ticket.Amount) * 100
}

// Return is the fractional per-bet return used by the Sharpe calculation.
func (b BetRecord) Return() float64 {
	if b.Ticket.Amount == 0 {
		return 0
	}
	return float64(b.Payout-b.Ticket.Amount) / float64(b.Ticket.Amount)
}
