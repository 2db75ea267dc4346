package models

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// TicketType identifies the betting market a ticket belongs to.
type TicketType string

const (
	TicketWin      TicketType = "win"
	TicketPlace    TicketType = "place"
	TicketQuinella TicketType = "quinella"
	TicketWide     TicketType = "wide"
	TicketExacta   TicketType = "exacta"
	TicketTrio     TicketType = "trio"
)

// RequiredHorses returns how many horse numbers a ticket of this market
// covers.
func (t TicketType) RequiredHorses() int {
	switch t {
	case TicketWin, TicketPlace:
		return 1
	case TicketQuinella, TicketWide, TicketExacta:
		return 2
	case TicketTrio:
		return 3
	default:
		return 0
	}
}

// Valid reports whether the market type is known.
func (t TicketType) Valid() bool {
	return t.RequiredHorses() > 0
}

// Ticket is an unpriced wager candidate emitted by a strategy. Tickets are
// immutable; pricing produces PricedTicket values instead of writing a
// stake back into the ticket, so the same ticket may be shared across
// Monte Carlo trials.
type Ticket struct {
	Type          TicketType `json:"type"`
	Numbers       []int      `json:"numbers"`
	Odds          float64    `json:"odds,omitempty"`
	ExpectedValue float64    `json:"expected_value,omitempty"`
}

// Validate checks that the ticket covers the right number of distinct,
// positive horse numbers for its market.
func (t Ticket) Validate() error {
	if !t.Type.Valid() {
		return fmt.Errorf("%w: unknown market %q", ErrInvalidTicket, string(t.Type))
	}
	if len(t.Numbers) != t.Type.RequiredHorses() {
		return fmt.Errorf("%w: %s covers %d horses, got %d",
			ErrInvalidTicket, t.Type, t.Type.RequiredHorses(), len(t.Numbers))
	}
	seen := make(map[int]bool, len(t.Numbers))
	for _, n := range t.Numbers {
		if n <= 0 {
			return fmt.Errorf("%w: horse number %d", ErrInvalidTicket, n)
		}
		if seen[n] {
			return fmt.Errorf("%w: duplicate horse number %d", ErrInvalidTicket, n)
		}
		seen[n] = true
	}
	return nil
}

// Key returns the canonical sorted horse-number key, e.g. "3-7-12".
func (t Ticket) Key() string {
	numbers := make([]int, len(t.Numbers))
	copy(numbers, t.Numbers)
	sort.Ints(numbers)
	parts := make([]string, len(numbers))
	for i, n := range numbers {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, "-")
}

// CoversSet reports whether the ticket covers exactly the given unordered
// set of horse numbers.
func (t Ticket) CoversSet(numbers ...int) bool {
	if len(numbers) != len(t.Numbers) {
		return false
	}
	covered := make(map[int]bool, len(t.Numbers))
	for _, n := range t.Numbers {
		covered[n] = true
	}
	for _, n := range numbers {
		if !covered[n] {
			return false
		}
	}
	return true
}

func (t Ticket) String() string {
	return fmt.Sprintf("%s[%s]", t.Type, t.Key())
}

// PricedTicket pairs a ticket with the stake committed to it.
type PricedTicket struct {
	Ticket
	Amount int `json:"amount"`
}

func (p PricedTicket) String() string {
	return fmt.Sprintf("%s[%s] %d yen", p.Type, p.Key(), p.Amount)
}
