package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthKeyOf(t *testing.T) {
	assert.Equal(t, MonthKey("2026-03"), MonthKeyOf(time.Date(2026, 3, 17, 12, 0, 0, 0, time.UTC)))
	assert.Equal(t, MonthKey("2025-12"), MonthKeyOf(time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)))
}

func TestParseMonthKey(t *testing.T) {
	key, err := ParseMonthKey("2026-07")
	require.NoError(t, err)
	assert.Equal(t, MonthKey("2026-07"), key)

	for _, bad := range []string{"", "2026", "2026-13", "07-2026", "2026-7", "garbage"} {
		_, err := ParseMonthKey(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestMonthKeyAdd_CrossesYearBoundaries(t *testing.T) {
	assert.Equal(t, MonthKey("2027-02"), MonthKey("2026-11").Add(3))
	assert.Equal(t, MonthKey("2025-10"), MonthKey("2026-01").Add(-3))
	assert.Equal(t, MonthKey("2026-06"), MonthKey("2026-06").Add(0))
}

func TestMonthsBetween(t *testing.T) {
	jan := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	apr := time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 3, MonthsBetween(jan, apr))
	assert.Equal(t, -3, MonthsBetween(apr, jan))
	assert.Equal(t, 0, MonthsBetween(jan, jan))
	// Day of month is ignored.
	assert.Equal(t, 13, MonthsBetween(jan, time.Date(2027, 2, 1, 0, 0, 0, 0, time.UTC)))
}

func TestMonthWindow(t *testing.T) {
	start := time.Date(2026, 11, 20, 0, 0, 0, 0, time.UTC)
	window := MonthWindow(start, 4)
	assert.Equal(t, []MonthKey{"2026-11", "2026-12", "2027-01", "2027-02"}, window)
}

func TestMonthWindow_FloorsAtOne(t *testing.T) {
	start := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, []MonthKey{"2026-05"}, MonthWindow(start, 0))
	assert.Equal(t, []MonthKey{"2026-05"}, MonthWindow(start, -2))
}
