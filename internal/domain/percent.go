package domain

import "fmt"

// Percent is a validated percentage in [0, 100]. Constructing one through
// NewPercent makes out-of-range input a typed, testable condition instead of
// a silent clamp.
type Percent float64

// NewPercent validates v and returns it as a Percent.
func NewPercent(v float64) (Percent, error) {
	if v < 0 || v > 100 {
		return 0, fmt.Errorf("percentage %.2f must be between 0 and 100", v)
	}
	return Percent(v), nil
}

// Fraction returns the percentage as a 0..1 fraction.
func (p Percent) Fraction() float64 {
	return float64(p) / 100
}

// Multiplier returns 1 + p/100, the factor a percentage markup applies.
func (p Percent) Multiplier() float64 {
	return 1 + float64(p)/100
}
