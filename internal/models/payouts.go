package models

// RacePayouts holds the settled dividends of a race. Multipliers are decimal
// payout factors applied to the full stake: payout = stake * multiplier.
type RacePayouts struct {
	// Win
	WinHorse  int     `json:"win_horse"`
	WinPayout float64 `json:"win_payout"`

	// Place, position-ordered, up to three slots.
	PlaceHorses       []int     `json:"place_horses,omitempty"`
	PlacePayouts      []float64 `json:"place_payouts,omitempty"`
	PlacePopularities []int     `json:"place_popularities,omitempty"`

	// Quinella (unordered winning pair).
	QuinellaHorses [2]int  `json:"quinella_horses"`
	QuinellaPayout float64 `json:"quinella_payout"`

	// Wide, up to three winning unordered pairs.
	WidePairs   [][2]int  `json:"wide_pairs,omitempty"`
	WidePayouts []float64 `json:"wide_payouts,omitempty"`

	// Exacta (ordered pair, stored as recorded).
	ExactaHorses [2]int  `json:"exacta_horses"`
	ExactaPayout float64 `json:"exacta_payout"`

	// Trio (unordered triple).
	TrioHorses [3]int  `json:"trio_horses"`
	TrioPayout float64 `json:"trio_payout"`
}

// PlacePayoutFor returns the slot multiplier for a placed horse and whether
// the horse placed at all.
func (p *RacePayouts) PlacePayoutFor(number int) (float64, bool) {
	for i, placed := range p.PlaceHorses {
		if placed == number && i < len(p.PlacePayouts) {
			return p.PlacePayouts[i], true
		}
	}
	return 0, false
}
