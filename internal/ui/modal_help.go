package ui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

// HelpModal shows the full key binding reference.
type HelpModal struct {
	help help.Model
	keys KeyMap
}

// Ensure HelpModal implements View.
var _ View = (*HelpModal)(nil)

// NewHelpModal creates the shortcuts overlay.
func NewHelpModal(keys KeyMap) *HelpModal {
	h := help.New()
	h.ShowAll = true
	return &HelpModal{help: h, keys: keys}
}

// Init implements View.
func (m *HelpModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *HelpModal) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q", "?", "f1", "enter":
			return m, func() tea.Msg { return DismissModalMsg{} }
		}
	}
	return m, nil
}

// View implements View.
func (m *HelpModal) View() string {
	content := Styles.Title.Render("Keyboard shortcuts") + "\n\n"
	content += m.help.View(m.keys) + "\n\n"
	content += Styles.Hint.Render("Esc: close")
	return Styles.Box.Render(content)
}

// AboutModal is a static informational overlay.
type AboutModal struct{}

// Ensure AboutModal implements View.
var _ View = (*AboutModal)(nil)

// NewAboutModal creates the about overlay.
func NewAboutModal() *AboutModal {
	return &AboutModal{}
}

// Init implements View.
func (m *AboutModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *AboutModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "q", "enter":
			return m, func() tea.Msg { return DismissModalMsg{} }
		}
	}
	return m, nil
}

// View implements View.
func (m *AboutModal) View() string {
	content := Styles.Title.Render("serimux") + "\n\n"
	content += Styles.Label.Render("A multi-session serial port monitor.") + "\n"
	content += Styles.Muted.Render("Sessions, split panes, hex and text views.") + "\n\n"
	content += Styles.Hint.Render("Esc: close")
	return Styles.Box.Render(content)
}
