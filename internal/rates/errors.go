package rates

import "errors"

var (
	// ErrUnavailable indicates the rate provider could not be reached.
	ErrUnavailable = errors.New("rate provider unavailable")

	// ErrTimeout indicates the rate request exceeded the configured timeout.
	ErrTimeout = errors.New("rate request timed out")

	// ErrBadResponse indicates the provider answered with something other
	// than a rate table.
	ErrBadResponse = errors.New("invalid rate provider response")
)
