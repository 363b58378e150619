package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// RenameSessionModal is a modal for entering a new session name.
type RenameSessionModal struct {
	index int
	input textinput.Model
}

// Ensure RenameSessionModal implements View.
var _ View = (*RenameSessionModal)(nil)

// NewRenameSessionModal creates a rename modal pre-filled with the current name.
func NewRenameSessionModal(index int, current string) *RenameSessionModal {
	ti := textinput.New()
	ti.Placeholder = "session name"
	ti.Width = 40
	ti.SetValue(current)
	ti.CursorEnd()
	ti.Focus()
	return &RenameSessionModal{index: index, input: ti}
}

// Init implements View.
func (m *RenameSessionModal) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (m *RenameSessionModal) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return DismissModalMsg{} }
		case "enter":
			name := strings.TrimSpace(m.input.Value())
			if name != "" {
				index := m.index
				return m, func() tea.Msg { return RenameSessionMsg{Index: index, Name: name} }
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements View.
func (m *RenameSessionModal) View() string {
	content := Styles.Title.Render("Rename session") + "\n\n"
	content += m.input.View() + "\n\n"
	content += Styles.Hint.Render("Enter: rename  Esc: cancel")
	return Styles.Box.Render(content)
}
