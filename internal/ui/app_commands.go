package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// defaultPollInterval is used when prefs carry a non-positive interval.
const defaultPollInterval = 100 * time.Millisecond

// tickCmd schedules the next poll tick. The tick drains connected ports and
// expires notifications.
func (a *App) tickCmd() tea.Cmd {
	every := a.pollEvery
	if every <= 0 {
		every = defaultPollInterval
	}
	return tea.Tick(every, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// listPortsCmd returns a command that scans for serial ports off the
// program loop.
func (a *App) listPortsCmd() tea.Cmd {
	transport := a.Transport
	return func() tea.Msg {
		if transport == nil {
			return portsLoadedMsg{}
		}
		ports, err := transport.ListPorts()
		return portsLoadedMsg{ports: ports, err: err}
	}
}
