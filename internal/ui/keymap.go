package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the monitor.
type KeyMap struct {
	// Focus ring and value editing (context-sensitive: the focused config
	// field cycles values, the log area scrolls).
	NextField key.Binding
	PrevField key.Binding
	Up        key.Binding
	Down      key.Binding
	PageUp    key.Binding
	PageDown  key.Binding

	// Connection.
	Connect      key.Binding // Toggle connect/disconnect on the focused pane.
	RefreshPorts key.Binding
	PickPort     key.Binding // Open the fuzzy port picker.

	// Display and transmit toggles.
	ToggleDisplay key.Binding
	ToggleTxMode  key.Binding
	CycleAppend   key.Binding
	AutoScroll    key.Binding
	ClearLog      key.Binding
	Send          key.Binding

	// Session lifecycle.
	NewSession       key.Binding
	DuplicateSession key.Binding
	RenameSession    key.Binding
	CloseSession     key.Binding
	NextSession      key.Binding
	PrevSession      key.Binding

	// Panes and layout.
	NextLayout       key.Binding
	PrevLayout       key.Binding
	NextPane         key.Binding
	CyclePaneSession key.Binding
	CyclePanePrev    key.Binding

	// Menu and app.
	Menu key.Binding
	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap is the built-in key binding set.
var DefaultKeyMap = KeyMap{
	NextField: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next field"),
	),
	PrevField: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "prev field"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("k/↑", "value up / scroll"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("j/↓", "value down / scroll"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("pgup", "scroll page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("pgdn", "scroll page down"),
	),
	Connect: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "connect/disconnect"),
	),
	RefreshPorts: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh ports"),
	),
	PickPort: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "pick port"),
	),
	ToggleDisplay: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "hex/text display"),
	),
	ToggleTxMode: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "hex/ascii tx"),
	),
	CycleAppend: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "line ending"),
	),
	AutoScroll: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "auto-scroll"),
	),
	ClearLog: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "clear log"),
	),
	Send: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "send"),
	),
	NewSession: key.NewBinding(
		key.WithKeys("ctrl+t", "f2"),
		key.WithHelp("ctrl+t", "new session"),
	),
	DuplicateSession: key.NewBinding(
		key.WithKeys("f3"),
		key.WithHelp("F3", "duplicate session"),
	),
	RenameSession: key.NewBinding(
		key.WithKeys("f4"),
		key.WithHelp("F4", "rename session"),
	),
	CloseSession: key.NewBinding(
		key.WithKeys("ctrl+w"),
		key.WithHelp("ctrl+w", "close session"),
	),
	NextSession: key.NewBinding(
		key.WithKeys("]"),
		key.WithHelp("]", "next session"),
	),
	PrevSession: key.NewBinding(
		key.WithKeys("["),
		key.WithHelp("[", "prev session"),
	),
	NextLayout: key.NewBinding(
		key.WithKeys("ctrl+l", "f5"),
		key.WithHelp("ctrl+l", "next layout"),
	),
	PrevLayout: key.NewBinding(
		key.WithKeys("ctrl+k"),
		key.WithHelp("ctrl+k", "prev layout"),
	),
	NextPane: key.NewBinding(
		key.WithKeys("ctrl+p", "f6"),
		key.WithHelp("ctrl+p", "focus next pane"),
	),
	CyclePaneSession: key.NewBinding(
		key.WithKeys("ctrl+n", "}"),
		key.WithHelp("ctrl+n", "next session in pane"),
	),
	CyclePanePrev: key.NewBinding(
		key.WithKeys("{"),
		key.WithHelp("{", "prev session in pane"),
	),
	Menu: key.NewBinding(
		key.WithKeys("f10"),
		key.WithHelp("F10", "menu"),
	),
	Help: key.NewBinding(
		key.WithKeys("f1", "?"),
		key.WithHelp("F1/?", "shortcuts"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp returns keybindings to be shown in the mini help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextField, k.Connect, k.Send, k.Menu, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextField, k.PrevField, k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Connect, k.PickPort, k.RefreshPorts, k.Send, k.ClearLog, k.AutoScroll},
		{k.ToggleDisplay, k.ToggleTxMode, k.CycleAppend},
		{k.NewSession, k.DuplicateSession, k.RenameSession, k.CloseSession, k.NextSession, k.PrevSession},
		{k.NextLayout, k.PrevLayout, k.NextPane, k.CyclePaneSession, k.CyclePanePrev},
		{k.Menu, k.Help, k.Quit},
	}
}
