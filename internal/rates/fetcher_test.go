package rates

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blockingClient serves scripted responses and can hold a call open until the
// test releases it, to simulate an in-flight request being superseded.
type blockingClient struct {
	mu      sync.Mutex
	started chan string
	release map[string]chan struct{}
	tables  map[string]map[string]float64
	errs    map[string]error
}

func newBlockingClient() *blockingClient {
	return &blockingClient{
		started: make(chan string, 8),
		release: make(map[string]chan struct{}),
		tables:  make(map[string]map[string]float64),
		errs:    make(map[string]error),
	}
}

func (c *blockingClient) hold(base string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.release[base] = make(chan struct{})
}

func (c *blockingClient) unhold(base string) {
	c.mu.Lock()
	ch := c.release[base]
	c.mu.Unlock()
	if ch != nil {
		close(ch)
	}
}

func (c *blockingClient) Latest(ctx context.Context, base string) (map[string]float64, error) {
	c.started <- base
	c.mu.Lock()
	ch := c.release[base]
	table := c.tables[base]
	err := c.errs[base]
	c.mu.Unlock()
	if ch != nil {
		<-ch
	}
	if err != nil {
		return nil, err
	}
	return table, nil
}

func TestFetcher_RefreshAndRate(t *testing.T) {
	client := newBlockingClient()
	client.tables["EUR"] = map[string]float64{"USD": 1.1}

	f := NewFetcher(client)
	require.NoError(t, f.Refresh(context.Background(), "EUR"))

	rate, ok := f.Rate("EUR", "USD")
	assert.True(t, ok)
	assert.InDelta(t, 1.1, rate, 1e-9)
}

func TestFetcher_Rate_Misses(t *testing.T) {
	client := newBlockingClient()
	client.tables["EUR"] = map[string]float64{"USD": 1.1, "XAG": 0}

	f := NewFetcher(client)

	// Nothing cached yet.
	_, ok := f.Rate("EUR", "USD")
	assert.False(t, ok)

	require.NoError(t, f.Refresh(context.Background(), "EUR"))

	// Wrong base, unknown code, and non-positive rate all miss.
	_, ok = f.Rate("USD", "EUR")
	assert.False(t, ok)
	_, ok = f.Rate("EUR", "CHF")
	assert.False(t, ok)
	_, ok = f.Rate("EUR", "XAG")
	assert.False(t, ok)
}

func TestFetcher_SupersededRefreshIsDiscarded(t *testing.T) {
	client := newBlockingClient()
	client.tables["EUR"] = map[string]float64{"USD": 1.0}
	client.tables["GBP"] = map[string]float64{"USD": 1.3}
	client.hold("EUR")

	f := NewFetcher(client)

	done := make(chan error, 1)
	go func() { done <- f.Refresh(context.Background(), "EUR") }()
	<-client.started // the EUR request is now in flight

	// A newer refresh for GBP completes while EUR is still pending.
	require.NoError(t, f.Refresh(context.Background(), "GBP"))
	<-client.started

	// Release the stale EUR response; it must not clobber the GBP table.
	client.unhold("EUR")
	require.NoError(t, <-done)

	rate, ok := f.Rate("GBP", "USD")
	assert.True(t, ok)
	assert.InDelta(t, 1.3, rate, 1e-9)

	_, ok = f.Rate("EUR", "USD")
	assert.False(t, ok)
}

func TestFetcher_FailedRefreshClearsCache(t *testing.T) {
	client := newBlockingClient()
	client.tables["EUR"] = map[string]float64{"USD": 1.1}

	f := NewFetcher(client)
	require.NoError(t, f.Refresh(context.Background(), "EUR"))

	client.errs["EUR"] = errors.New("provider down")
	assert.Error(t, f.Refresh(context.Background(), "EUR"))

	_, ok := f.Rate("EUR", "USD")
	assert.False(t, ok)
}
