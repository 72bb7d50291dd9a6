package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"produceotron/internal/cli/formatter"
	"produceotron/internal/domain"
)

// gridKeyMap defines the grid editor's key bindings.
type gridKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Raise key.Binding
	Lower key.Binding
	Save  key.Binding
	Quit  key.Binding
}

var gridKeys = gridKeyMap{
	Up:    key.NewBinding(key.WithKeys("up", "k")),
	Down:  key.NewBinding(key.WithKeys("down", "j")),
	Left:  key.NewBinding(key.WithKeys("left", "h")),
	Right: key.NewBinding(key.WithKeys("right", "l")),
	Raise: key.NewBinding(key.WithKeys("+", "=", " ")),
	Lower: key.NewBinding(key.WithKeys("-", "_")),
	Save:  key.NewBinding(key.WithKeys("enter", "ctrl+s")),
	Quit:  key.NewBinding(key.WithKeys("esc", "ctrl+c", "q")),
}

// gridModel edits a copy of the plan's allocation grid. Changes only reach
// the caller when the user saves.
type gridModel struct {
	resources []*domain.Resource
	window    []domain.MonthKey
	row, col  int
	saved     bool
	done      bool
}

func newGridModel(p *domain.Plan) gridModel {
	copies := make([]*domain.Resource, len(p.Resources))
	for i, r := range p.Resources {
		c := *r
		c.Allocations = make(map[domain.MonthKey]float64, len(r.Allocations))
		for k, v := range r.Allocations {
			c.Allocations[k] = v
		}
		copies[i] = &c
	}
	return gridModel{resources: copies, window: p.Window()}
}

func (m gridModel) Init() tea.Cmd { return nil }

func (m gridModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, gridKeys.Quit):
		m.done = true
		return m, tea.Quit
	case key.Matches(keyMsg, gridKeys.Save):
		m.saved = true
		m.done = true
		return m, tea.Quit
	case key.Matches(keyMsg, gridKeys.Up):
		if m.row > 0 {
			m.row--
		}
	case key.Matches(keyMsg, gridKeys.Down):
		if m.row < len(m.resources)-1 {
			m.row++
		}
	case key.Matches(keyMsg, gridKeys.Left):
		if m.col > 0 {
			m.col--
		}
	case key.Matches(keyMsg, gridKeys.Right):
		if m.col < len(m.window)-1 {
			m.col++
		}
	case key.Matches(keyMsg, gridKeys.Raise):
		m.step(1)
	case key.Matches(keyMsg, gridKeys.Lower):
		m.step(-1)
	}
	return m, nil
}

// step moves the cursor cell one discrete allocation level up or down,
// clamping at the ends of the scale.
func (m *gridModel) step(dir int) {
	if len(m.resources) == 0 || len(m.window) == 0 {
		return
	}
	r := m.resources[m.row]
	kk := m.window[m.col]
	cur := r.Allocation(kk)

	idx := 0
	for i, lvl := range domain.AllocationLevels {
		if lvl == cur {
			idx = i
			break
		}
	}
	idx += dir
	if idx < 0 {
		idx = 0
	}
	if idx > len(domain.AllocationLevels)-1 {
		idx = len(domain.AllocationLevels) - 1
	}
	// Levels come from the discrete scale, so this cannot fail.
	_ = r.SetAllocation(kk, domain.AllocationLevels[idx])
}

func (m gridModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(formatter.Header("ALLOCATION GRID"))
	b.WriteString("\n\n")

	const nameWidth = 22
	b.WriteString(strings.Repeat(" ", nameWidth))
	for _, kk := range m.window {
		b.WriteString(fmt.Sprintf("%9s", string(kk)))
	}
	b.WriteString("\n")

	for i, r := range m.resources {
		name := r.Name
		if len(name) > nameWidth-2 {
			name = name[:nameWidth-2]
		}
		b.WriteString(fmt.Sprintf("%-*s", nameWidth, name))
		for j, kk := range m.window {
			cell := fmt.Sprintf("%4.0f%%", r.Allocation(kk)*100)
			if i == m.row && j == m.col {
				cell = formatter.StyleBold.Render("[" + cell + "]")
			} else {
				cell = " " + formatter.AllocationStyle(r.Allocation(kk)).Render(cell) + " "
			}
			b.WriteString(fmt.Sprintf("%9s", cell))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(formatter.Dim("arrows move · +/- adjust · enter save · esc cancel"))
	b.WriteString("\n")
	return b.String()
}

// runAllocationGrid opens the interactive grid editor. It returns the edited
// resources on save, or nil when the user cancels.
func runAllocationGrid(p *domain.Plan) ([]*domain.Resource, error) {
	if len(p.Resources) == 0 {
		return nil, fmt.Errorf("plan %q has no resources to allocate", p.Name)
	}
	final, err := tea.NewProgram(newGridModel(p)).Run()
	if err != nil {
		return nil, fmt.Errorf("running grid editor: %w", err)
	}
	m, ok := final.(gridModel)
	if !ok || !m.saved {
		return nil, nil
	}
	return m.resources, nil
}
