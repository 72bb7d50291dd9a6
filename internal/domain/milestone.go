package domain

// Milestone annotates exported spreadsheet columns for visual grouping.
// The sequence is static and carries no computed meaning.
type Milestone struct {
	Name   string
	Months int
	Color  string // RGB hex for the export strip fill
}

// DefaultMilestones is the fixed phase strip written above the month header
// row of exported reports.
var DefaultMilestones = []Milestone{
	{Name: "Discovery", Months: 1, Color: "FACC15"},
	{Name: "Design", Months: 1, Color: "60A5FA"},
	{Name: "Build", Months: 2, Color: "22C55E"},
	{Name: "Test", Months: 1, Color: "F87171"},
	{Name: "Deploy", Months: 1, Color: "C084FC"},
}
