package rates

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// Client provides currency rate lookups keyed by a base currency code.
type Client interface {
	// Latest returns the current rate table for the base currency: a mapping
	// of currency code to the multiplier converting base into that currency.
	Latest(ctx context.Context, base string) (map[string]float64, error)
}

type httpClient struct {
	cfg  Config
	http *http.Client
}

// NewHTTPClient creates a Client against an open.er-api.com-style provider.
func NewHTTPClient(cfg Config) Client {
	return &httpClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
	}
}

// latestResponse is the JSON body of GET {endpoint}/{base}.
type latestResponse struct {
	Result string             `json:"result"`
	Rates  map[string]float64 `json:"rates"`
}

func (c *httpClient) Latest(ctx context.Context, base string) (map[string]float64, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	url := fmt.Sprintf("%s/%s", c.cfg.Endpoint, base)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ErrTimeout
		}
		var netErr *net.OpError
		if errors.As(err, &netErr) {
			return nil, ErrUnavailable
		}
		return nil, fmt.Errorf("fetching rates: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrBadResponse, resp.StatusCode)
	}

	var parsed latestResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	if len(parsed.Rates) == 0 {
		return nil, fmt.Errorf("%w: empty rate table", ErrBadResponse)
	}
	return parsed.Rates, nil
}
