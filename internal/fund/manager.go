package fund

import (
	"fmt"
	"sort"

	"github.com/yourusername/keiba-backtest/internal/models"
	"github.com/yourusername/keiba-backtest/internal/strategy"
)

// Manager applies a sizing rule and the constraint pipeline to price
// tickets. It holds no mutable fund state.
type Manager struct {
	name        string
	sizer       Sizer
	constraints Constraints
}

// Builder constructs a sizer from its configured parameters.
type Builder func(params strategy.Params) Sizer

// Static registration table, resolved at configuration-load time.
var builders = map[string]Builder{
	"fixed": func(p strategy.Params) Sizer {
		return FixedSizer{Amount: p.Int("bet_amount", 1000)}
	},
	"percentage": func(p strategy.Params) Sizer {
		return PercentageSizer{Percentage: p.Float("bet_percentage", 0.02)}
	},
	"kelly": func(p strategy.Params) Sizer {
		return KellySizer{Fraction: p.Float("kelly_fraction", 0.25)}
	},
}

// New resolves a fund manager by sizing-rule name.
func New(name string, params strategy.Params, constraints Constraints) (*Manager, error) {
	builder, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", models.ErrUnknownFundManager, name, Names())
	}
	if err := constraints.Validate(); err != nil {
		return nil, fmt.Errorf("invalid fund constraints: %w", err)
	}
	if params == nil {
		params = strategy.Params{}
	}
	return &Manager{name: name, sizer: builder(params), constraints: constraints}, nil
}

// Names lists the registered sizing-rule names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Name returns the sizing-rule name the manager was built from.
func (m *Manager) Name() string { return m.name }

// Constraints returns the active constraint set.
func (m *Manager) Constraints() Constraints { return m.constraints }

// BetAmount prices a single ticket against the given fund: the raw sizing
// amount run through the constraint pipeline in its fixed order.
func (m *Manager) BetAmount(ticket models.Ticket, fund int) int {
	raw := m.sizer.RawAmount(ticket, fund)
	return m.applyConstraints(raw, fund)
}

// applyConstraints caps and rounds a raw amount. Order matters: fund cap,
// ratio cap, per-ticket cap, unit rounding, minimum-bet floor.
func (m *Manager) applyConstraints(amount, fund int) int {
	c := m.constraints

	if amount > fund {
		amount = fund
	}

	maxByRatio := int(float64(fund) * c.MaxBetRatio)
	if amount > maxByRatio {
		amount = maxByRatio
	}

	if amount > c.MaxBetPerTicket {
		amount = c.MaxBetPerTicket
	}

	amount = (amount / c.BetUnit) * c.BetUnit

	if amount < c.MinBet {
		return 0
	}
	return amount
}

// PriceTickets prices tickets in list order against the fund available when
// the race's pricing pass starts. A running total enforces the per-race
// cap: a ticket that would cross it is clipped to the rounded-down headroom
// and later tickets see zero headroom.
func (m *Manager) PriceTickets(tickets []models.Ticket, fund int) []models.PricedTicket {
	priced := make([]models.PricedTicket, 0, len(tickets))
	total := 0

	for _, ticket := range tickets {
		amount := m.BetAmount(ticket, fund)

		if total+amount > m.constraints.MaxBetPerRace {
			amount = m.constraints.MaxBetPerRace - total
			if amount < 0 {
				amount = 0
			}
			amount = (amount / m.constraints.BetUnit) * m.constraints.BetUnit
		}

		priced = append(priced, models.PricedTicket{Ticket: ticket, Amount: amount})
		total += amount
	}
	return priced
}
