package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTicketTypeRequiredHorses(t *testing.T) {
	tests := []struct {
		ticketType TicketType
		want       int
	}{
		{TicketWin, 1},
		{TicketPlace, 1},
		{TicketQuinella, 2},
		{TicketWide, 2},
		{TicketExacta, 2},
		{TicketTrio, 3},
		{TicketType("tierce"), 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.ticketType.RequiredHorses(), "type %s", tt.ticketType)
		assert.Equal(t, tt.want > 0, tt.ticketType.Valid(), "type %s", tt.ticketType)
	}
}

func TestTicketValidate(t *testing.T) {
	tests := []struct {
		name   string
		ticket Ticket
		ok     bool
	}{
		{"win", Ticket{Type: TicketWin, Numbers: []int{4}}, true},
		{"trio", Ticket{Type: TicketTrio, Numbers: []int{4, 7, 12}}, true},
		{"unknown market", Ticket{Type: TicketType("tierce"), Numbers: []int{1, 2, 3}}, false},
		{"too few horses", Ticket{Type: TicketQuinella, Numbers: []int{4}}, false},
		{"too many horses", Ticket{Type: TicketWin, Numbers: []int{4, 7}}, false},
		{"duplicate horse", Ticket{Type: TicketWide, Numbers: []int{4, 4}}, false},
		{"non-positive horse", Ticket{Type: TicketExacta, Numbers: []int{0, 3}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ticket.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.Is(err, ErrInvalidTicket))
			}
		})
	}
}

func TestTicketKeySortsNumbers(t *testing.T) {
	ticket := Ticket{Type: TicketTrio, Numbers: []int{12, 3, 7}}
	assert.Equal(t, "3-7-12", ticket.Key())
	// Key must not mutate the ticket.
	assert.Equal(t, []int{12, 3, 7}, ticket.Numbers)
}

func TestTicketCoversSet(t *testing.T) {
	ticket := Ticket{Type: TicketQuinella, Numbers: []int{7, 3}}

	assert.True(t, ticket.CoversSet(3, 7))
	assert.True(t, ticket.CoversSet(7, 3))
	assert.False(t, ticket.CoversSet(3, 8))
	assert.False(t, ticket.CoversSet(3))
	assert.False(t, ticket.CoversSet(3, 7, 9))
}

func TestTicketString(t *testing.T) {
	ticket := Ticket{Type: TicketWide, Numbers: []int{9, 2}}
	assert.Equal(t, "wide[2-9]", ticket.String())

	priced := PricedTicket{Ticket: ticket, Amount: 300}
	assert.Equal(t, "wide[2-9] 300 yen", priced.String())
}

func TestPlacePayoutFor(t *testing.T) {
	payouts := &RacePayouts{
		PlaceHorses:  []int{5, 1, 9},
		PlacePayouts: []float64{1.3, 1.1, 2.4},
	}

	multiplier, placed := payouts.PlacePayoutFor(9)
	assert.True(t, placed)
	assert.Equal(t, 2.4, multiplier)

	_, placed = payouts.PlacePayoutFor(4)
	assert.False(t, placed)
}

func TestBetRecordArithmetic(t *testing.T) {
	bet := BetRecord{
		Ticket: PricedTicket{Ticket: Ticket{Type: TicketWin, Numbers: []int{1}}, Amount: 1000},
		IsHit:  true,
		Payout: 2500,
	}

	assert.Equal(t, 1500, bet.Profit())
	assert.InDelta(t, 250.0, bet.ROI(), 1e-9)
	assert.InDelta(t, 1.5, bet.Return(), 1e-9)

	zero := BetRecord{}
	assert.Equal(t, 0.0, zero.ROI())
	assert.Equal(t, 0.0, zero.Return())
}
