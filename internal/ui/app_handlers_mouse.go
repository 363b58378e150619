package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"serimux/internal/session"
)

// handleMouse resolves clicks and wheel movement against the same areas the
// renderer draws into.
func (a *App) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if a.Overlays.Len() > 0 {
		return nil
	}

	ar := a.computeAreas()

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if pane, ok := ar.PaneAt(msg.X, msg.Y); ok {
			if s := a.sessionForPane(pane); s != nil {
				s.ScrollUp(3)
			}
		}
		return nil
	case tea.MouseButtonWheelDown:
		if pane, ok := ar.PaneAt(msg.X, msg.Y); ok {
			if s := a.sessionForPane(pane); s != nil {
				s.ScrollDown(3)
			}
		}
		return nil
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}

	// Dropdown items win over everything under them.
	if item, ok := ar.DropdownItemAt(msg.X, msg.Y); ok {
		return a.clickDropdownItem(item)
	}

	if idx, ok := ar.MenuTitleAt(msg.X, msg.Y); ok {
		a.Menu.OpenMenu(idx)
		return nil
	}

	// A click anywhere else closes an open menu.
	if a.Menu.IsOpen() {
		a.Menu.Close()
		return nil
	}

	if idx, ok := ar.TabAt(msg.X, msg.Y); ok {
		a.clickTab(idx, msg.X, ar)
		return nil
	}

	if pane, ok := ar.PaneAt(msg.X, msg.Y); ok {
		a.Controller.Panes().FocusPane(pane)
		return nil
	}

	return nil
}

// clickDropdownItem moves the dropdown cursor to the clicked row and
// activates it. Separator rows fall through harmlessly.
func (a *App) clickDropdownItem(item int) tea.Cmd {
	m, ok := a.Menu.CurrentMenu()
	if !ok || item >= len(m.Items) {
		return nil
	}
	for range m.Items {
		if a.Menu.ItemIndex() == item {
			break
		}
		a.Menu.Down()
	}
	if action, ok := a.Menu.Activate(); ok {
		return a.dispatchMenuAction(action)
	}
	return nil
}

// clickTab switches to the clicked session. A click on the active tab's
// close affordance closes it instead.
func (a *App) clickTab(idx, x int, ar Areas) {
	active := a.Controller.Sessions().ActiveIndex()
	if idx == active && idx < len(ar.Tabs) {
		// The close hint is the last 4 columns of the padded label ("[×] ").
		r := ar.Tabs[idx]
		if x >= r.X+r.W-4 {
			a.openCloseModal()
			return
		}
	}
	a.Controller.SwitchTo(idx)
}

// sessionForPane resolves a pane index to its session.
func (a *App) sessionForPane(pane int) *session.Session {
	idx, ok := a.Controller.Panes().SessionForPane(pane)
	if !ok {
		return nil
	}
	s, ok := a.Controller.Sessions().Get(idx)
	if !ok {
		return nil
	}
	return s
}
