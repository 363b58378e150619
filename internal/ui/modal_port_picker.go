package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// PortPickerModal is a modal for selecting a serial port, with fuzzy
// filtering over the detected port list.
type PortPickerModal struct {
	input    textinput.Model
	ports    []string
	filtered []string
	cursor   int
}

// Ensure PortPickerModal implements View.
var _ View = (*PortPickerModal)(nil)

// NewPortPickerModal creates a port picker over the given port names.
func NewPortPickerModal(ports []string) *PortPickerModal {
	ti := textinput.New()
	ti.Placeholder = "filter ports"
	ti.Width = 40
	ti.Focus()
	return &PortPickerModal{
		input:    ti,
		ports:    ports,
		filtered: filterPorts(ports, ""),
	}
}

// filterPorts returns the ports matching the query, keeping discovery
// order. An empty query matches everything.
func filterPorts(ports []string, query string) []string {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return append([]string(nil), ports...)
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, ports)
	matches := make(map[int]struct{}, len(ranks))
	for _, rank := range ranks {
		matches[rank.OriginalIndex] = struct{}{}
	}
	filtered := make([]string, 0, len(matches))
	for idx, p := range ports {
		if _, ok := matches[idx]; ok {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// Init implements View.
func (m *PortPickerModal) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (m *PortPickerModal) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return DismissModalMsg{} }
		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "ctrl+n":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
			return m, nil
		case "enter":
			if m.cursor < len(m.filtered) {
				port := m.filtered[m.cursor]
				return m, func() tea.Msg { return SelectPortMsg{Port: port} }
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.filtered = filterPorts(m.ports, m.input.Value())
	if m.cursor >= len(m.filtered) {
		m.cursor = 0
	}
	return m, cmd
}

// View implements View.
func (m *PortPickerModal) View() string {
	content := Styles.Title.Render("Select port") + "\n\n"
	content += m.input.View() + "\n\n"
	if len(m.ports) == 0 {
		content += Styles.Muted.Render("No serial ports detected") + "\n"
	} else if len(m.filtered) == 0 {
		content += Styles.Muted.Render("No ports match") + "\n"
	}
	for i, p := range m.filtered {
		if i == m.cursor {
			content += Styles.DropdownSel.Render("> "+p) + "\n"
		} else {
			content += Styles.DropdownItem.Render("  "+p) + "\n"
		}
	}
	content += "\n" + Styles.Hint.Render(fmt.Sprintf("%d port(s)  Enter: select  Esc: cancel", len(m.filtered)))
	return Styles.Box.Render(content)
}
