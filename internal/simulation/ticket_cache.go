package simulation

import (
	cache "github.com/patrickmn/go-cache"

	"github.com/yourusername/keiba-backtest/internal/models"
)

// TicketCache memoises ticket generation per race. Strategies are pure and
// tickets immutable, so entries stay valid for the life of a Monte Carlo
// run where every trial revisits the same races. go-cache is safe for
// concurrent trial workers.
type TicketCache struct {
	cache *cache.Cache
}

// NewTicketCache creates a cache whose entries never expire; the cache's
// lifetime is bound to its engine.
func NewTicketCache() *TicketCache {
	return &TicketCache{cache: cache.New(cache.NoExpiration, cache.NoExpiration)}
}

// Get returns the cached tickets for a race ID. The second result
// distinguishes a cached empty list from a miss.
func (t *TicketCache) Get(raceID string) ([]models.Ticket, bool) {
	entry, found := t.cache.Get(raceID)
	if !found {
		return nil, false
	}
	tickets, ok := entry.([]models.Ticket)
	if !ok {
		return nil, false
	}
	return tickets, true
}

// Set stores the generated tickets for a race ID.
func (t *TicketCache) Set(raceID string, tickets []models.Ticket) {
	t.cache.Set(raceID, tickets, cache.NoExpiration)
}

// Flush clears all cached entries.
func (t *TicketCache) Flush() {
	t.cache.Flush()
}
