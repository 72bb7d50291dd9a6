package domain

// Role maps a role identifier to a display label and a default monthly cost.
type Role struct {
	ID          string
	Name        string
	DefaultCost float64
}

// DefaultRoles is the static role registry. Edit this file to add, remove, or
// reprice roles.
var DefaultRoles = []Role{
	{ID: "gp", Name: "Gameplay Programmer", DefaultCost: 6500},
	{ID: "ui", Name: "UI/UX Artist", DefaultCost: 5500},
	{ID: "ta", Name: "Technical Artist", DefaultCost: 7000},
	{ID: "ld", Name: "Level Designer", DefaultCost: 5000},
	{ID: "pm", Name: "Producer / PM", DefaultCost: 6000},
	{ID: "qa", Name: "QA Analyst", DefaultCost: 4000},
	{ID: "gd", Name: "Game Designer", DefaultCost: 5500},
	{ID: "ad", Name: "Art Director", DefaultCost: 8500},
	{ID: "se", Name: "Sound Engineer", DefaultCost: 5200},
	{ID: "vo", Name: "Voice Coordinator", DefaultCost: 4800},
}

// RoleByID looks a role up in the registry.
func RoleByID(id string) (Role, bool) {
	for _, r := range DefaultRoles {
		if r.ID == id {
			return r, true
		}
	}
	return Role{}, false
}

// CategoryRole names the role a forecast category synthesizes.
var CategoryRole = map[Category]string{
	CategoryInterface:   "Frontend Dev",
	CategoryEngineering: "Backend Dev",
	CategoryArt:         "Technical Artist",
	CategoryDesign:      "UI Designer",
	CategoryQuality:     "QA Engineer",
	CategoryNone:        "DevOps",
}
