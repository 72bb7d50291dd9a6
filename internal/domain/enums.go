package domain

import "fmt"

// Fixed effort-unit conversion ratios: 1 month = 20 days = 160 hours.
const (
	DaysPerMonth  = 20
	HoursPerDay   = 8
	HoursPerMonth = DaysPerMonth * HoursPerDay
)

type EffortUnit string

const (
	UnitMonths EffortUnit = "months"
	UnitDays   EffortUnit = "days"
	UnitHours  EffortUnit = "hours"
)

// ValidEffortUnits is the canonical set of accepted effort unit strings.
var ValidEffortUnits = map[string]bool{
	"months": true, "days": true, "hours": true,
}

// ParseEffortUnit converts a user-supplied unit string into an EffortUnit.
func ParseEffortUnit(s string) (EffortUnit, error) {
	if !ValidEffortUnits[s] {
		return "", fmt.Errorf("effort unit %q must be one of months, days, hours", s)
	}
	return EffortUnit(s), nil
}

// RatioToMonth returns the factor converting one unit of effort into months.
func (u EffortUnit) RatioToMonth() float64 {
	switch u {
	case UnitDays:
		return 1.0 / DaysPerMonth
	case UnitHours:
		return 1.0 / HoursPerMonth
	default:
		return 1
	}
}

// Category classifies a backlog task for role-mix forecasting.
type Category string

const (
	CategoryInterface   Category = "interface"
	CategoryEngineering Category = "engineering"
	CategoryArt         Category = "art"
	CategoryDesign      Category = "design"
	CategoryQuality     Category = "quality"
	CategoryNone        Category = ""
)

// AllocationLevels is the fixed discrete set of per-month allocation fractions.
var AllocationLevels = []float64{0, 0.25, 0.5, 0.75, 1.0}

// ValidAllocation reports whether frac is one of the allowed discrete levels.
func ValidAllocation(frac float64) bool {
	for _, lvl := range AllocationLevels {
		if frac == lvl {
			return true
		}
	}
	return false
}
