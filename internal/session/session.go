// Package session holds the per-connection monitoring context and the
// ordered store that owns every session in the application.
package session

import (
	"serimux/internal/config"
	"serimux/internal/msglog"
	"serimux/internal/notify"
)

// Session is one serial-port monitoring context: its config, traffic log,
// connection state, input line, and focus. Sessions are owned by the Store;
// panes refer to them by index only.
type Session struct {
	ID   int
	Name string

	Config config.Config
	Log    *msglog.Log

	DisplayMode  DisplayMode
	Connected    bool
	ConfigLocked bool

	ScrollOffset int // entries scrolled up from the newest
	AutoScroll   bool

	TxInput  string
	TxCursor int // codepoint index into TxInput, not a byte offset
	TxMode   TxMode
	TxAppend AppendMode

	FocusedField Field

	Notifications notify.Queue

	// ReadErrors counts genuine (non-timeout) read failures since connect.
	// Read errors never force a disconnect; the counter is the user's signal.
	ReadErrors int
}

// New creates a session with default config, an empty log, and focus on the
// port field. logCapacity <= 0 selects the default ring size.
func New(id int, name string, logCapacity int) *Session {
	return &Session{
		ID:           id,
		Name:         name,
		Config:       config.Default(),
		Log:          msglog.New(logCapacity),
		DisplayMode:  DisplayHex,
		AutoScroll:   true,
		TxMode:       TxAscii,
		TxAppend:     AppendNone,
		FocusedField: FieldPort,
	}
}

// duplicateOf clones src under a new id, then resets the runtime-only
// fields: fresh log, disconnected, unlocked. Everything the user configured
// (serial parameters, display/tx settings, input line) carries over.
func duplicateOf(src *Session, id int) *Session {
	d := *src
	d.ID = id
	d.Name = src.Name + " (Copy)"
	d.Log = msglog.New(src.Log.Capacity())
	d.Connected = false
	d.ConfigLocked = false
	d.ReadErrors = 0
	d.Notifications = src.Notifications.Clone()
	return &d
}

// Lock freezes the serial parameters (called on connect).
func (s *Session) Lock() {
	s.ConfigLocked = true
}

// Unlock releases the serial parameters (called on disconnect).
func (s *Session) Unlock() {
	s.ConfigLocked = false
}

// CanModifyConfig reports whether serial parameters may change.
func (s *Session) CanModifyConfig() bool {
	return !s.ConfigLocked
}

// FocusNext moves keyboard focus to the next field in the ring.
func (s *Session) FocusNext() {
	s.FocusedField = s.FocusedField.Next()
}

// FocusPrev moves keyboard focus to the previous field in the ring.
func (s *Session) FocusPrev() {
	s.FocusedField = s.FocusedField.Prev()
}

// NextFieldValue advances the focused config field through its option
// catalogue. Returns false when the field has no catalogue (log/input
// areas), when the config is locked, or when there is no port to select.
func (s *Session) NextFieldValue(ports []string) bool {
	return s.cycleFieldValue(true, ports)
}

// PrevFieldValue steps the focused config field backwards.
func (s *Session) PrevFieldValue(ports []string) bool {
	return s.cycleFieldValue(false, ports)
}

func (s *Session) cycleFieldValue(forward bool, ports []string) bool {
	if !s.FocusedField.IsConfig() {
		return false
	}
	if !s.CanModifyConfig() {
		return false
	}
	switch s.FocusedField {
	case FieldPort:
		if len(ports) == 0 {
			return false
		}
		if forward {
			s.Config.Port = config.NextOption(ports, s.Config.Port)
		} else {
			s.Config.Port = config.PrevOption(ports, s.Config.Port)
		}
	case FieldBaudRate:
		if forward {
			s.Config.BaudRate = config.NextOption(config.BaudRates, s.Config.BaudRate)
		} else {
			s.Config.BaudRate = config.PrevOption(config.BaudRates, s.Config.BaudRate)
		}
	case FieldDataBits:
		if forward {
			s.Config.DataBits = config.NextOption(config.DataBitsOptions, s.Config.DataBits)
		} else {
			s.Config.DataBits = config.PrevOption(config.DataBitsOptions, s.Config.DataBits)
		}
	case FieldParity:
		if forward {
			s.Config.Parity = config.NextOption(config.Parities, s.Config.Parity)
		} else {
			s.Config.Parity = config.PrevOption(config.Parities, s.Config.Parity)
		}
	case FieldStopBits:
		if forward {
			s.Config.StopBits = config.NextOption(config.StopBitsOptions, s.Config.StopBits)
		} else {
			s.Config.StopBits = config.PrevOption(config.StopBitsOptions, s.Config.StopBits)
		}
	case FieldFlowControl:
		if forward {
			s.Config.FlowControl = config.NextOption(config.FlowControls, s.Config.FlowControl)
		} else {
			s.Config.FlowControl = config.PrevOption(config.FlowControls, s.Config.FlowControl)
		}
	}
	return true
}

// SelectPort sets the port directly (from the picker). Rejected while locked.
func (s *Session) SelectPort(port string) bool {
	if !s.CanModifyConfig() {
		return false
	}
	s.Config.Port = port
	return true
}

// ToggleDisplayMode flips between hex and text log rendering.
func (s *Session) ToggleDisplayMode() {
	s.DisplayMode = s.DisplayMode.Toggle()
}

// ToggleTxMode flips between ASCII and hex transmit interpretation.
func (s *Session) ToggleTxMode() {
	s.TxMode = s.TxMode.Toggle()
}

// NextAppendMode cycles the send suffix forwards.
func (s *Session) NextAppendMode() {
	s.TxAppend = s.TxAppend.Next()
}

// PrevAppendMode cycles the send suffix backwards.
func (s *Session) PrevAppendMode() {
	s.TxAppend = s.TxAppend.Prev()
}

// ToggleAutoScroll flips auto-scroll; enabling it snaps back to the tail.
func (s *Session) ToggleAutoScroll() {
	s.AutoScroll = !s.AutoScroll
	if s.AutoScroll {
		s.ScrollOffset = 0
	}
}

// ScrollUp scrolls the log view towards older entries and leaves
// auto-scroll mode.
func (s *Session) ScrollUp(n int) {
	s.AutoScroll = false
	s.ScrollOffset += n
	if s.ScrollOffset > s.Log.Len() {
		s.ScrollOffset = s.Log.Len()
	}
}

// ScrollDown scrolls the log view towards newer entries.
func (s *Session) ScrollDown(n int) {
	s.ScrollOffset -= n
	if s.ScrollOffset < 0 {
		s.ScrollOffset = 0
	}
}

// TxInsert inserts text at the cursor (codepoint position).
func (s *Session) TxInsert(text string) {
	rs := []rune(s.TxInput)
	if s.TxCursor > len(rs) {
		s.TxCursor = len(rs)
	}
	ins := []rune(text)
	out := make([]rune, 0, len(rs)+len(ins))
	out = append(out, rs[:s.TxCursor]...)
	out = append(out, ins...)
	out = append(out, rs[s.TxCursor:]...)
	s.TxInput = string(out)
	s.TxCursor += len(ins)
}

// TxBackspace deletes the codepoint before the cursor.
func (s *Session) TxBackspace() {
	if s.TxCursor == 0 {
		return
	}
	rs := []rune(s.TxInput)
	s.TxInput = string(append(rs[:s.TxCursor-1:s.TxCursor-1], rs[s.TxCursor:]...))
	s.TxCursor--
}

// TxDelete deletes the codepoint under the cursor.
func (s *Session) TxDelete() {
	rs := []rune(s.TxInput)
	if s.TxCursor >= len(rs) {
		return
	}
	s.TxInput = string(append(rs[:s.TxCursor:s.TxCursor], rs[s.TxCursor+1:]...))
}

// TxLeft moves the cursor one codepoint left.
func (s *Session) TxLeft() {
	if s.TxCursor > 0 {
		s.TxCursor--
	}
}

// TxRight moves the cursor one codepoint right.
func (s *Session) TxRight() {
	if s.TxCursor < len([]rune(s.TxInput)) {
		s.TxCursor++
	}
}

// TxHome moves the cursor to the start of the input.
func (s *Session) TxHome() {
	s.TxCursor = 0
}

// TxEnd moves the cursor past the last codepoint.
func (s *Session) TxEnd() {
	s.TxCursor = len([]rune(s.TxInput))
}

// TxClear empties the input line.
func (s *Session) TxClear() {
	s.TxInput = ""
	s.TxCursor = 0
}

// AddInfo queues an info notification on this session.
func (s *Session) AddInfo(msg string) {
	s.Notifications.Push(notify.Info(msg))
}

// AddWarning queues a warning notification on this session.
func (s *Session) AddWarning(msg string) {
	s.Notifications.Push(notify.Warning(msg))
}

// AddError queues an error notification on this session.
func (s *Session) AddError(msg string) {
	s.Notifications.Push(notify.Error(msg))
}

// AddSuccess queues a success notification on this session.
func (s *Session) AddSuccess(msg string) {
	s.Notifications.Push(notify.Success(msg))
}
