package rates

import (
	"os"
	"strconv"
)

// Config holds rate-lookup settings.
type Config struct {
	Endpoint  string
	TimeoutMs int
}

// DefaultConfig returns the stock open.er-api.com endpoint with a short
// timeout; a slow rate fetch must never hold up a budget command.
func DefaultConfig() Config {
	return Config{
		Endpoint:  "https://open.er-api.com/v6/latest",
		TimeoutMs: 5000,
	}
}

// LoadConfig reads rate configuration from environment variables, falling
// back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()
	if v := os.Getenv("PRODUCEOTRON_RATES_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("PRODUCEOTRON_RATES_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	return cfg
}
