package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"produceotron/internal/cli/formatter"
)

// notesModel is the full-screen scratchpad editor.
type notesModel struct {
	area  textarea.Model
	saved bool
	done  bool
}

func newNotesModel(initial string) notesModel {
	area := textarea.New()
	area.Placeholder = "Jot something down..."
	area.SetValue(initial)
	area.SetWidth(78)
	area.SetHeight(16)
	area.CharLimit = 0
	area.Focus()
	return notesModel{area: area}
}

func (m notesModel) Init() tea.Cmd { return textarea.Blink }

func (m notesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+s":
			m.saved = true
			m.done = true
			return m, tea.Quit
		case "esc", "ctrl+c":
			m.done = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.area, cmd = m.area.Update(msg)
	return m, cmd
}

func (m notesModel) View() string {
	if m.done {
		return ""
	}
	var b strings.Builder
	b.WriteString(formatter.Header("QUICK NOTES"))
	b.WriteString("\n\n")
	b.WriteString(m.area.View())
	b.WriteString("\n\n")
	b.WriteString(formatter.Dim("ctrl+s save · esc cancel"))
	b.WriteString("\n")
	return b.String()
}

// runNotesEditor opens the scratchpad editor seeded with initial text. It
// returns the edited text and whether the user chose to save.
func runNotesEditor(initial string) (string, bool, error) {
	final, err := tea.NewProgram(newNotesModel(initial)).Run()
	if err != nil {
		return "", false, fmt.Errorf("running notes editor: %w", err)
	}
	m, ok := final.(notesModel)
	if !ok || !m.saved {
		return "", false, nil
	}
	return m.area.Value(), true, nil
}
