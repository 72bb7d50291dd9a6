package rates

import (
	"context"
	"sync"
)

// Fetcher caches the latest rate table per base currency and guards against
// the stale-response race: when a newer Refresh has started for a different
// (or the same) base, an older in-flight result is discarded on arrival
// instead of overwriting the newer one.
type Fetcher struct {
	client Client

	mu    sync.Mutex
	seq   uint64
	base  string
	rates map[string]float64
}

// NewFetcher wraps a Client with supersede-safe caching.
func NewFetcher(client Client) *Fetcher {
	return &Fetcher{client: client}
}

// Refresh fetches the rate table for base. A Refresh that was superseded by a
// later call returns nil without touching the cache. A failed current Refresh
// clears the cache so callers degrade to primary-currency-only display.
func (f *Fetcher) Refresh(ctx context.Context, base string) error {
	f.mu.Lock()
	f.seq++
	seq := f.seq
	f.mu.Unlock()

	table, err := f.client.Latest(ctx, base)

	f.mu.Lock()
	defer f.mu.Unlock()
	if seq != f.seq {
		// A newer request started while this one was in flight.
		return nil
	}
	if err != nil {
		f.base = ""
		f.rates = nil
		return err
	}
	f.base = base
	f.rates = table
	return nil
}

// Rate returns the cached multiplier from base into code, if the cache holds
// a table for base. A miss simply disables secondary display.
func (f *Fetcher) Rate(base, code string) (float64, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.base != base || f.rates == nil {
		return 0, false
	}
	r, ok := f.rates[code]
	if !ok || r <= 0 {
		return 0, false
	}
	return r, true
}
