package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"serimux/internal/session"
)

// handleKey routes key input by precedence: the top overlay first, then the
// quit chord, then the menu while it is open, then the main screen.
func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	if top, ok := a.Overlays.Peek(); ok {
		if top.IsDismissKey(msg.String()) {
			a.Overlays.Pop()
			return nil
		}
		cmd, _ := a.Overlays.UpdateTop(msg)
		return cmd
	}

	if msg.String() == "ctrl+c" {
		return tea.Quit
	}

	if a.Menu.IsOpen() {
		return a.handleMenuKey(msg)
	}

	return a.handleMainKey(msg)
}

// handleMainKey covers the main screen. Function keys and chords work from
// any focus; everything else depends on whether the focused pane's session
// is in text entry.
func (a *App) handleMainKey(msg tea.KeyMsg) tea.Cmd {
	s := a.Controller.FocusedPaneSession()

	switch {
	case key.Matches(msg, a.Keys.Menu):
		a.Menu.Open()
		return nil
	case key.Matches(msg, a.Keys.NextField):
		s.FocusNext()
		return nil
	case key.Matches(msg, a.Keys.PrevField):
		s.FocusPrev()
		return nil
	case key.Matches(msg, a.Keys.NewSession):
		a.newSession()
		return nil
	case key.Matches(msg, a.Keys.DuplicateSession):
		a.duplicateSession()
		return nil
	case key.Matches(msg, a.Keys.RenameSession):
		a.openRenameModal()
		return nil
	case key.Matches(msg, a.Keys.CloseSession):
		a.openCloseModal()
		return nil
	case key.Matches(msg, a.Keys.NextLayout):
		a.changeLayout(a.Controller.NextLayout())
		return nil
	case key.Matches(msg, a.Keys.PrevLayout):
		a.changeLayout(a.Controller.PrevLayout())
		return nil
	case key.Matches(msg, a.Keys.NextPane):
		a.Controller.Panes().FocusNextPane()
		return nil
	}

	if s.FocusedField == session.FieldTxInput {
		return a.handleTxKey(msg, s)
	}
	return a.handleGlobalKey(msg, s)
}

// handleGlobalKey covers the main screen outside text entry.
func (a *App) handleGlobalKey(msg tea.KeyMsg, s *session.Session) tea.Cmd {
	switch {
	case key.Matches(msg, a.Keys.Quit), msg.String() == "esc":
		return tea.Quit
	case key.Matches(msg, a.Keys.Help):
		a.Overlays.Push(Overlay{View: NewHelpModal(a.Keys), Dismiss: "esc"})
		return nil
	case key.Matches(msg, a.Keys.Connect):
		a.toggleConnection(s)
		return nil
	case key.Matches(msg, a.Keys.RefreshPorts):
		s.AddInfo("Scanning ports")
		return a.listPortsCmd()
	case key.Matches(msg, a.Keys.PickPort):
		a.openPortPicker(s)
		return nil
	case key.Matches(msg, a.Keys.ToggleDisplay):
		s.ToggleDisplayMode()
		s.AddInfo("Display: " + s.DisplayMode.String())
		return nil
	case key.Matches(msg, a.Keys.ToggleTxMode):
		s.ToggleTxMode()
		s.AddInfo("TX mode: " + s.TxMode.String())
		return nil
	case key.Matches(msg, a.Keys.CycleAppend):
		s.NextAppendMode()
		s.AddInfo("Line ending: " + s.TxAppend.String())
		return nil
	case key.Matches(msg, a.Keys.AutoScroll):
		s.ToggleAutoScroll()
		if s.AutoScroll {
			s.AddInfo("Auto-scroll on")
		} else {
			s.AddInfo("Auto-scroll off")
		}
		return nil
	case key.Matches(msg, a.Keys.ClearLog):
		s.Log.Clear()
		s.ScrollOffset = 0
		s.AddInfo("Log cleared")
		return nil
	case key.Matches(msg, a.Keys.NextSession):
		a.Controller.NextSession()
		return nil
	case key.Matches(msg, a.Keys.PrevSession):
		a.Controller.PrevSession()
		return nil
	case key.Matches(msg, a.Keys.CyclePaneSession):
		a.Controller.CycleFocusedPaneSession()
		return nil
	case key.Matches(msg, a.Keys.CyclePanePrev):
		a.Controller.CycleFocusedPaneSessionPrev()
		return nil
	case key.Matches(msg, a.Keys.Up):
		a.fieldUp(s)
		return nil
	case key.Matches(msg, a.Keys.Down):
		a.fieldDown(s)
		return nil
	case key.Matches(msg, a.Keys.PageUp):
		if s.FocusedField == session.FieldLogArea {
			s.ScrollUp(10)
		}
		return nil
	case key.Matches(msg, a.Keys.PageDown):
		if s.FocusedField == session.FieldLogArea {
			s.ScrollDown(10)
		}
		return nil
	case msg.String() == "home":
		if s.FocusedField == session.FieldLogArea {
			s.ScrollUp(s.Log.Len())
		}
		return nil
	case msg.String() == "end":
		if s.FocusedField == session.FieldLogArea {
			s.ScrollDown(s.Log.Len())
		}
		return nil
	case key.Matches(msg, a.Keys.Send):
		// Enter opens the picker on the port field; anywhere else it
		// jumps focus to the input line.
		if s.FocusedField == session.FieldPort {
			a.openPortPicker(s)
			return nil
		}
		s.FocusedField = session.FieldTxInput
		return nil
	}
	return nil
}

// handleTxKey edits the focused session's input line.
func (a *App) handleTxKey(msg tea.KeyMsg, s *session.Session) tea.Cmd {
	switch msg.String() {
	case "enter":
		a.sendInput(s)
		return nil
	case "esc":
		s.TxClear()
		return nil
	case "backspace":
		s.TxBackspace()
		return nil
	case "delete":
		s.TxDelete()
		return nil
	case "left":
		s.TxLeft()
		return nil
	case "right":
		s.TxRight()
		return nil
	case "home":
		s.TxHome()
		return nil
	case "end":
		s.TxEnd()
		return nil
	}
	switch msg.Type {
	case tea.KeyRunes:
		s.TxInsert(string(msg.Runes))
	case tea.KeySpace:
		s.TxInsert(" ")
	}
	return nil
}

// fieldUp is Up/k outside text entry: previous option on a config field,
// scroll on the log area.
func (a *App) fieldUp(s *session.Session) {
	switch {
	case s.FocusedField == session.FieldLogArea:
		s.ScrollUp(1)
	case s.FocusedField.IsConfig():
		if !s.PrevFieldValue(a.ports) && !s.CanModifyConfig() {
			s.AddWarning("Config locked while connected")
		}
	}
}

// fieldDown is Down/j outside text entry.
func (a *App) fieldDown(s *session.Session) {
	switch {
	case s.FocusedField == session.FieldLogArea:
		s.ScrollDown(1)
	case s.FocusedField.IsConfig():
		if !s.NextFieldValue(a.ports) && !s.CanModifyConfig() {
			s.AddWarning("Config locked while connected")
		}
	}
}
