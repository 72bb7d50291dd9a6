package scheduler

import (
	"fmt"
	"math"

	"produceotron/internal/domain"
)

// Forecast holds the staffing suggestion derived from a backlog.
type Forecast struct {
	TotalEffortMonths    float64
	AdjustedEffortMonths float64
	DurationMonths       int
	Headcount            int
}

// ComputeForecast converts raw backlog effort into a suggested headcount.
// adjusted = raw × unitRatio × (1 + inefficiency/100);
// headcount = ceil(adjusted / duration). Duration floors at 1 month.
func ComputeForecast(totalRaw float64, unit domain.EffortUnit, inefficiency domain.Percent, durationMonths int) Forecast {
	if durationMonths < 1 {
		durationMonths = 1
	}
	totalMonths := totalRaw * unit.RatioToMonth()
	adjusted := totalMonths * inefficiency.Multiplier()
	return Forecast{
		TotalEffortMonths:    totalMonths,
		AdjustedEffortMonths: adjusted,
		DurationMonths:       durationMonths,
		Headcount:            int(math.Ceil(adjusted / float64(durationMonths))),
	}
}

// RoleFor picks the category for the i-th synthesized resource (0-based).
// Every 4th slot goes to quality, every 3rd to design; the rest compare the
// interface and engineering tallies, interface winning ties. With no tallies
// at all the slot falls through to the generalist fallback.
func RoleFor(i int, tallies map[domain.Category]int) domain.Category {
	switch {
	case (i+1)%4 == 0 && tallies[domain.CategoryQuality] > 0:
		return domain.CategoryQuality
	case (i+1)%3 == 0 && tallies[domain.CategoryDesign] > 0:
		return domain.CategoryDesign
	case tallies[domain.CategoryInterface] >= tallies[domain.CategoryEngineering] && tallies[domain.CategoryInterface] > 0:
		return domain.CategoryInterface
	case tallies[domain.CategoryEngineering] > 0:
		return domain.CategoryEngineering
	case tallies[domain.CategoryArt] > 0:
		return domain.CategoryArt
	default:
		return domain.CategoryNone
	}
}

// BuildTeam synthesizes headcount resources with roles chosen from the
// tallies. Every resource starts fully allocated on every window month; this
// is a seed the user is expected to edit, not a validated outcome.
func BuildTeam(headcount int, tallies map[domain.Category]int, monthlyCost float64, window []domain.MonthKey) []*domain.Resource {
	resources := make([]*domain.Resource, 0, headcount)
	instances := make(map[string]int)
	for i := 0; i < headcount; i++ {
		role := domain.CategoryRole[RoleFor(i, tallies)]
		instances[role]++
		name := fmt.Sprintf("%s %d", role, instances[role])
		r := domain.NewResource(name, role, monthlyCost)
		for _, key := range window {
			r.Allocations[key] = 1.0
		}
		resources = append(resources, r)
	}
	return resources
}
