// Package strategy defines ticket-generation strategies for the betting
// simulation. A strategy is a pure function from a race to a list of
// unpriced ticket candidates; stake sizing happens later in the fund
// package.
package strategy

import (
	"fmt"
	"sort"

	"github.com/yourusername/keiba-backtest/internal/models"
)

// Strategy generates unpriced ticket candidates for a race.
type Strategy interface {
	Name() string
	GenerateTickets(race *models.Race) ([]models.Ticket, error)
}

// Params carries strategy parameters from configuration. Values arrive via
// YAML decoding, so numeric entries may be int, int64 or float64.
type Params map[string]any

// Int returns an integer parameter or the default.
func (p Params) Int(key string, def int) int {
	switch v := p[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return def
	}
}

// Float returns a float parameter or the default.
func (p Params) Float(key string, def float64) float64 {
	switch v := p[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return def
	}
}

// Builder constructs a strategy from its configured parameters.
type Builder func(params Params) Strategy

// Static registration table. Strategy names are resolved here once, at
// configuration-load time; there is no string dispatch during a run.
var builders = map[string]Builder{
	"favorite_win":   func(p Params) Strategy { return &FavoriteWin{params: p} },
	"popularity_win": func(p Params) Strategy { return &PopularityWin{params: p} },
	"value_win":      func(p Params) Strategy { return &ValueWin{params: p} },
	"favorite_place": func(p Params) Strategy { return &FavoritePlace{params: p} },
	"box_quinella":   func(p Params) Strategy { return &BoxQuinella{params: p} },
	"flow_quinella":  func(p Params) Strategy { return &FlowQuinella{params: p} },
	"box_wide":       func(p Params) Strategy { return &BoxWide{params: p} },
	"box_trio":       func(p Params) Strategy { return &BoxTrio{params: p} },
	"flow_trio":      func(p Params) Strategy { return &FlowTrio{params: p} },
	"formation_trio": func(p Params) Strategy { return &FormationTrio{params: p} },
	"longshot_win":   func(p Params) Strategy { return &LongshotWin{params: p} },
	"longshot_wide":  func(p Params) Strategy { return &LongshotWide{params: p} },
}

// New resolves a strategy by name.
func New(name string, params Params) (Strategy, error) {
	builder, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", models.ErrUnknownStrategy, name, Names())
	}
	if params == nil {
		params = Params{}
	}
	return builder(params), nil
}

// Names lists the registered strategy names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
