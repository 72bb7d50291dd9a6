package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"produceotron/internal/domain"
)

func pct(t *testing.T, v float64) domain.Percent {
	t.Helper()
	p, err := domain.NewPercent(v)
	require.NoError(t, err)
	return p
}

func TestComputeForecast_DaysWithInefficiency(t *testing.T) {
	// 15 days at 20 days/month is 0.75 months; a 50% buffer makes 1.125.
	fc := ComputeForecast(15, domain.UnitDays, pct(t, 50), 1)

	assert.InDelta(t, 0.75, fc.TotalEffortMonths, 1e-9)
	assert.InDelta(t, 1.125, fc.AdjustedEffortMonths, 1e-9)
	assert.Equal(t, 1, fc.DurationMonths)
	assert.Equal(t, 2, fc.Headcount)
}

func TestComputeForecast_BacklogScenario(t *testing.T) {
	items := []domain.BacklogItem{
		{Task: "Design level 1", Effort: 10},
		{Task: "Fix bug", Effort: 5},
	}

	fc := ComputeForecast(domain.TotalEffort(items), domain.UnitDays, pct(t, 50), 1)
	assert.InDelta(t, 0.75, fc.TotalEffortMonths, 1e-9)
	assert.InDelta(t, 1.125, fc.AdjustedEffortMonths, 1e-9)
	assert.Equal(t, 2, fc.Headcount)

	tallies := Tally(items, KeywordClassifier)
	assert.Equal(t, 1, tallies[domain.CategoryDesign])
	assert.Equal(t, 1, tallies[domain.CategoryEngineering])
}

func TestComputeForecast_UnitConversions(t *testing.T) {
	tests := []struct {
		name   string
		raw    float64
		unit   domain.EffortUnit
		months float64
	}{
		{"months pass through", 3, domain.UnitMonths, 3},
		{"days divide by 20", 40, domain.UnitDays, 2},
		{"hours divide by 160", 320, domain.UnitHours, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fc := ComputeForecast(tt.raw, tt.unit, pct(t, 0), 4)
			assert.InDelta(t, tt.months, fc.TotalEffortMonths, 1e-9)
			assert.InDelta(t, tt.months, fc.AdjustedEffortMonths, 1e-9)
		})
	}
}

func TestComputeForecast_DurationFloorsAtOne(t *testing.T) {
	fc := ComputeForecast(10, domain.UnitDays, pct(t, 0), 0)
	assert.Equal(t, 1, fc.DurationMonths)
	assert.Equal(t, 1, fc.Headcount)
}

func TestComputeForecast_HeadcountRoundsUp(t *testing.T) {
	// 2.1 adjusted months over 2 months needs 2 people, not 1.05.
	fc := ComputeForecast(2.1, domain.UnitMonths, pct(t, 0), 2)
	assert.Equal(t, 2, fc.Headcount)
}

func TestRoleFor_SlotRotation(t *testing.T) {
	tallies := map[domain.Category]int{
		domain.CategoryInterface:   3,
		domain.CategoryEngineering: 5,
		domain.CategoryDesign:      2,
		domain.CategoryQuality:     1,
	}

	// Engineering leads interface, so plain slots go to engineering; slot 3
	// (1-based) is design and slot 4 is quality.
	assert.Equal(t, domain.CategoryEngineering, RoleFor(0, tallies))
	assert.Equal(t, domain.CategoryEngineering, RoleFor(1, tallies))
	assert.Equal(t, domain.CategoryDesign, RoleFor(2, tallies))
	assert.Equal(t, domain.CategoryQuality, RoleFor(3, tallies))
}

func TestRoleFor_InterfaceWinsTies(t *testing.T) {
	tallies := map[domain.Category]int{
		domain.CategoryInterface:   2,
		domain.CategoryEngineering: 2,
	}
	assert.Equal(t, domain.CategoryInterface, RoleFor(0, tallies))
}

func TestRoleFor_FallsBackThroughArtToNone(t *testing.T) {
	assert.Equal(t, domain.CategoryArt, RoleFor(0, map[domain.Category]int{domain.CategoryArt: 4}))
	assert.Equal(t, domain.CategoryNone, RoleFor(0, map[domain.Category]int{}))
}

func TestBuildTeam_NamesRolesSequentially(t *testing.T) {
	tallies := map[domain.Category]int{domain.CategoryEngineering: 3}
	window := domain.MonthWindow(mustMonth(t, "2026-01").Time(), 2)

	team := BuildTeam(2, tallies, 9000, window)
	require.Len(t, team, 2)

	assert.Equal(t, "Backend Dev 1", team[0].Name)
	assert.Equal(t, "Backend Dev 2", team[1].Name)
	for _, r := range team {
		assert.Equal(t, "Backend Dev", r.Role)
		assert.Equal(t, 9000.0, r.MonthlyCost)
		for _, key := range window {
			assert.Equal(t, 1.0, r.Allocation(key))
		}
	}
}

func TestBuildTeam_EmptyTalliesUsesGeneralist(t *testing.T) {
	team := BuildTeam(1, map[domain.Category]int{}, 8000, nil)
	require.Len(t, team, 1)
	assert.Equal(t, "DevOps 1", team[0].Name)
}

func mustMonth(t *testing.T, s string) domain.MonthKey {
	t.Helper()
	key, err := domain.ParseMonthKey(s)
	require.NoError(t, err)
	return key
}
