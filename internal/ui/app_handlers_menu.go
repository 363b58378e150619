package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"serimux/internal/layout"
	"serimux/internal/menu"
	"serimux/internal/session"
)

// handleMenuKey drives the menu bar and dropdown while the menu is open.
func (a *App) handleMenuKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		a.Menu.Back()
	case "left":
		a.Menu.Left()
	case "right":
		a.Menu.Right()
	case "up":
		a.Menu.Up()
	case "down":
		a.Menu.Down()
	case "enter":
		if action, ok := a.Menu.Activate(); ok {
			return a.dispatchMenuAction(action)
		}
	case "f10", "q":
		a.Menu.Close()
	}
	return nil
}

// dispatchMenuAction runs one activated menu item.
func (a *App) dispatchMenuAction(action menu.Action) tea.Cmd {
	switch action {
	case menu.ActionSaveConfig:
		a.saveConfig()
	case menu.ActionLoadConfig:
		a.loadConfig()
	case menu.ActionExit:
		return tea.Quit
	case menu.ActionNewSession:
		a.newSession()
	case menu.ActionDuplicateSession:
		a.duplicateSession()
	case menu.ActionRenameSession:
		a.openRenameModal()
	case menu.ActionCloseSession:
		a.openCloseModal()
	case menu.ActionLayoutSingle:
		a.setLayout(layout.Single)
	case menu.ActionLayoutSplitHorizontal:
		a.setLayout(layout.SplitHorizontal)
	case menu.ActionLayoutSplitVertical:
		a.setLayout(layout.SplitVertical)
	case menu.ActionLayoutGrid2x2:
		a.setLayout(layout.Grid2x2)
	case menu.ActionNextPane:
		a.Controller.Panes().FocusNextPane()
	case menu.ActionPrevPane:
		a.Controller.Panes().FocusPrevPane()
	case menu.ActionToggleTimestamps:
		a.toggleTimestamps()
	case menu.ActionShortcuts:
		a.Overlays.Push(Overlay{View: NewHelpModal(a.Keys), Dismiss: "esc"})
	case menu.ActionAbout:
		a.Overlays.Push(Overlay{View: NewAboutModal(), Dismiss: "esc"})
	}
	return nil
}

// saveConfig persists the active session's device config. Menu actions
// are tab-scoped, like rename and close.
func (a *App) saveConfig() {
	s := a.Controller.ActiveSession()
	if a.Store == nil {
		s.AddError("No config directory")
		return
	}
	if err := a.Store.SaveConfig(s.Config); err != nil {
		s.AddError("Save failed: " + err.Error())
		return
	}
	s.AddSuccess("Config saved")
}

// loadConfig applies the saved device config to the active session.
func (a *App) loadConfig() {
	s := a.Controller.ActiveSession()
	if a.Store == nil {
		s.AddError("No config directory")
		return
	}
	cfg, ok := a.Store.LoadConfig()
	if !ok {
		s.AddWarning("No saved config")
		return
	}
	if !s.CanModifyConfig() {
		s.AddWarning("Disconnect before loading a config")
		return
	}
	s.Config = cfg
	s.AddSuccess("Config loaded")
}

// toggleTimestamps flips log timestamps and persists the choice.
func (a *App) toggleTimestamps() {
	a.showTimestamps = !a.showTimestamps
	a.prefs = a.prefs.WithTimestamps(a.showTimestamps)
	if a.Store != nil {
		if err := a.Store.SavePrefs(a.prefs); err != nil {
			a.Controller.FocusedPaneSession().AddWarning("Prefs not saved: " + err.Error())
		}
	}
}

// newSession appends a session. The active tab stays where it is.
func (a *App) newSession() {
	idx := a.Controller.AddSession("")
	if s, ok := a.Controller.Sessions().Get(idx); ok {
		s.AddInfo("Session created")
	}
}

// duplicateSession clones the active session's configuration into a new tab.
func (a *App) duplicateSession() {
	idx := a.Controller.DuplicateActive()
	if s, ok := a.Controller.Sessions().Get(idx); ok {
		s.AddInfo("Duplicated from " + a.Controller.ActiveSession().Name)
	}
}

// openRenameModal targets the active session.
func (a *App) openRenameModal() {
	idx := a.Controller.Sessions().ActiveIndex()
	s := a.Controller.ActiveSession()
	a.Overlays.Push(Overlay{View: NewRenameSessionModal(idx, s.Name), Dismiss: "esc"})
}

// openCloseModal asks before closing the active session.
func (a *App) openCloseModal() {
	if a.Controller.Sessions().Len() <= 1 {
		a.Controller.ActiveSession().AddWarning("Cannot close the last session")
		return
	}
	idx := a.Controller.Sessions().ActiveIndex()
	s := a.Controller.ActiveSession()
	a.Overlays.Push(Overlay{View: NewCloseSessionConfirmModal(idx, s.Name, s.Connected), Dismiss: "esc"})
}

// closeSession removes a session, closing its port first.
func (a *App) closeSession(index int) {
	target, ok := a.Controller.Sessions().Get(index)
	if !ok {
		return
	}
	a.disconnect(target)
	removed, ok := a.Controller.RemoveSession(index)
	if !ok {
		a.Controller.ActiveSession().AddWarning("Cannot close the last session")
		return
	}
	a.Controller.ActiveSession().AddInfo("Closed " + removed.Name)
}

// openPortPicker shows the fuzzy port list for the given session.
func (a *App) openPortPicker(s *session.Session) {
	if !s.CanModifyConfig() {
		s.AddWarning("Disconnect before changing the port")
		return
	}
	a.Overlays.Push(Overlay{View: NewPortPickerModal(a.ports), Dismiss: "esc"})
}

// setLayout jumps straight to a layout mode from the menu.
func (a *App) setLayout(m layout.Mode) {
	a.Controller.SetLayoutMode(m)
	a.changeLayout(m)
}

// changeLayout records a layout switch.
func (a *App) changeLayout(m layout.Mode) {
	a.Recorder.LayoutChange(m.String(), a.Controller.Panes().PaneCount())
}
