package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func validPlan() *Plan {
	return &Plan{
		Name:            "Launch",
		StartDate:       date(2026, 1, 1),
		Deadline:        date(2026, 6, 30),
		Unit:            UnitDays,
		PrimaryCurrency: "EUR",
	}
}

func TestPlan_Validate(t *testing.T) {
	require.NoError(t, validPlan().Validate())

	tests := []struct {
		name   string
		mutate func(*Plan)
	}{
		{"missing name", func(p *Plan) { p.Name = "" }},
		{"missing start", func(p *Plan) { p.StartDate = time.Time{} }},
		{"missing deadline", func(p *Plan) { p.Deadline = time.Time{} }},
		{"bad unit", func(p *Plan) { p.Unit = "weeks" }},
		{"negative cost", func(p *Plan) { p.DefaultMonthlyCost = -1 }},
		{"bad primary currency", func(p *Plan) { p.PrimaryCurrency = "XXX" }},
		{"bad secondary currency", func(p *Plan) { p.SecondaryCurrency = "XXX" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPlan()
			tt.mutate(p)
			assert.Error(t, p.Validate())
		})
	}
}

func TestPlan_DurationMonths(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		deadline time.Time
		want     int
	}{
		{"exact month boundary", date(2026, 1, 1), date(2026, 4, 1), 3},
		{"partial month rounds up", date(2026, 1, 1), date(2026, 4, 15), 4},
		{"same day floors at one", date(2026, 1, 10), date(2026, 1, 10), 1},
		{"deadline before start floors at one", date(2026, 5, 1), date(2026, 1, 1), 1},
		{"across year end", date(2025, 11, 1), date(2026, 2, 1), 3},
		{"six calendar months", date(2026, 1, 1), date(2026, 6, 30), 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Plan{StartDate: tt.start, Deadline: tt.deadline}
			assert.Equal(t, tt.want, p.DurationMonths())
		})
	}
}

func TestPlan_Window(t *testing.T) {
	p := &Plan{StartDate: date(2026, 1, 1), Deadline: date(2026, 4, 1)}
	assert.Equal(t, []MonthKey{"2026-01", "2026-02", "2026-03"}, p.Window())
}

func TestPlan_EffortTotals(t *testing.T) {
	p := validPlan()
	p.Backlog = []BacklogItem{{Task: "a", Effort: 10}, {Task: "b", Effort: 30}}

	assert.InDelta(t, 40, p.TotalEffortRaw(), 1e-9)
	assert.InDelta(t, 2, p.TotalEffortMonths(), 1e-9) // 40 days / 20
}

func TestPlan_ResourceLookupAndRemoval(t *testing.T) {
	p := validPlan()
	r := NewResource("Kim", "QA Engineer", 7000)
	p.Resources = []*Resource{r}

	assert.Equal(t, r, p.Resource(r.ID))
	assert.Nil(t, p.Resource("missing"))

	assert.True(t, p.RemoveResource(r.ID))
	assert.False(t, p.RemoveResource(r.ID))
	assert.Empty(t, p.Resources)
}

func TestPlan_ShiftStart_MovesAllocationsNotDeadline(t *testing.T) {
	p := validPlan()
	r := NewResource("Kim", "Backend Dev", 8000)
	require.NoError(t, r.SetAllocation("2026-01", 1.0))
	require.NoError(t, r.SetAllocation("2026-02", 0.5))
	p.Resources = []*Resource{r}

	deadline := p.Deadline
	p.ShiftStart(date(2026, 3, 1))

	assert.Equal(t, date(2026, 3, 1), p.StartDate)
	assert.Equal(t, deadline, p.Deadline)
	assert.Equal(t, 1.0, r.Allocation("2026-03"))
	assert.Equal(t, 0.5, r.Allocation("2026-04"))
	assert.Zero(t, r.Allocation("2026-01"))
}

func TestPlan_ShiftStart_RoundTripRestoresAllocations(t *testing.T) {
	p := validPlan()
	r := NewResource("Kim", "Backend Dev", 8000)
	require.NoError(t, r.SetAllocation("2026-02", 0.75))
	p.Resources = []*Resource{r}

	p.ShiftStart(date(2026, 4, 1))
	p.ShiftStart(date(2026, 1, 1))

	assert.Equal(t, map[MonthKey]float64{"2026-02": 0.75}, r.Allocations)
}

func TestPlan_ShiftStart_ZeroDeltaKeepsKeys(t *testing.T) {
	p := validPlan()
	r := NewResource("Kim", "Backend Dev", 8000)
	require.NoError(t, r.SetAllocation("2026-01", 1.0))
	p.Resources = []*Resource{r}

	// Same month, different day: no key movement.
	p.ShiftStart(date(2026, 1, 20))
	assert.Equal(t, 1.0, r.Allocation("2026-01"))
}
