package domain

import (
	"fmt"
	"time"
)

const monthLayout = "2006-01"

// MonthKey is the canonical "YYYY-MM" identifier for a calendar month.
// Allocation maps are indexed by MonthKey.
type MonthKey string

// MonthKeyOf returns the MonthKey for the calendar month containing t.
func MonthKeyOf(t time.Time) MonthKey {
	return MonthKey(t.Format(monthLayout))
}

// ParseMonthKey validates and normalizes a "YYYY-MM" string.
func ParseMonthKey(s string) (MonthKey, error) {
	t, err := time.Parse(monthLayout, s)
	if err != nil {
		return "", fmt.Errorf("month key %q must be in YYYY-MM format", s)
	}
	return MonthKeyOf(t), nil
}

// Time returns the first day of the month, UTC midnight.
func (k MonthKey) Time() time.Time {
	t, err := time.Parse(monthLayout, string(k))
	if err != nil {
		return time.Time{}
	}
	return t
}

// Add returns the MonthKey delta calendar months away. Negative deltas move
// backward.
func (k MonthKey) Add(delta int) MonthKey {
	return MonthKeyOf(k.Time().AddDate(0, delta, 0))
}

// MonthsBetween returns the signed calendar-month distance from a to b,
// ignoring the day of month.
func MonthsBetween(a, b time.Time) int {
	return (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
}

// MonthWindow returns the sequence of n consecutive MonthKeys beginning with
// the month containing start.
func MonthWindow(start time.Time, n int) []MonthKey {
	if n < 1 {
		n = 1
	}
	keys := make([]MonthKey, n)
	first := MonthKeyOf(start)
	for i := range keys {
		keys[i] = first.Add(i)
	}
	return keys
}
