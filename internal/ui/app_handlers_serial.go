package ui

import (
	"serimux/internal/serial"
	"serimux/internal/session"
)

// toggleConnection opens or closes the session's port.
func (a *App) toggleConnection(s *session.Session) {
	if s.Connected {
		a.disconnect(s)
		s.AddInfo("Disconnected")
		return
	}
	a.connect(s)
}

// connect validates the config, opens the port, and locks the config for
// the life of the connection.
func (a *App) connect(s *session.Session) {
	if err := s.Config.Validate(); err != nil {
		s.AddError("Cannot connect: " + err.Error())
		return
	}
	if a.Transport == nil {
		s.AddError("No serial transport")
		return
	}
	port, err := a.Transport.Open(s.Config)
	if err != nil {
		s.AddError("Connect failed: " + err.Error())
		a.Recorder.ConnectFailed(s.Config.Port, err.Error())
		return
	}
	a.handles[s.ID] = port
	s.Connected = true
	s.ReadErrors = 0
	s.Lock()
	s.AddSuccess("Connected: " + s.Config.Port)
	a.Recorder.Connect(s.Config.Port, s.Config.BaudRate)
}

// disconnect closes the session's port if open and unlocks the config.
// Safe to call on a session that was never connected.
func (a *App) disconnect(s *session.Session) {
	if handle, ok := a.handles[s.ID]; ok {
		_ = handle.Close()
		delete(a.handles, s.ID)
	}
	if s.Connected {
		a.Recorder.Disconnect(s.Config.Port, s.Log.RxCount(), s.Log.TxCount())
	}
	s.Connected = false
	s.Unlock()
}

// CloseAllPorts closes every open handle. Called on shutdown.
func (a *App) CloseAllPorts() {
	for _, s := range a.Controller.Sessions().Sessions() {
		a.disconnect(s)
	}
}

// pollSessions drains one read from every connected port. Timeouts surface
// as empty reads; genuine errors only bump the session's error counter, the
// connection stays up until the user closes it.
func (a *App) pollSessions() {
	for _, s := range a.Controller.Sessions().Sessions() {
		if !s.Connected {
			continue
		}
		handle, ok := a.handles[s.ID]
		if !ok {
			continue
		}
		buf := make([]byte, serial.ReadBufferSize)
		n, err := handle.Read(buf)
		if n > 0 {
			s.Log.PushRx(buf[:n])
			if s.AutoScroll {
				s.ScrollOffset = 0
			}
		}
		if err != nil {
			s.ReadErrors++
		}
	}
}

// sendInput transmits the session's input line. A hex parse failure keeps
// the input intact so the user can fix it.
func (a *App) sendInput(s *session.Session) {
	if s.TxInput == "" {
		s.AddWarning("Nothing to send")
		return
	}
	if !s.Connected {
		s.AddError("Not connected")
		return
	}
	var data []byte
	if s.TxMode == session.TxHex {
		b, err := serial.HexToBytes(s.TxInput)
		if err != nil {
			s.AddError("Invalid hex: " + err.Error())
			return
		}
		data = b
	} else {
		data = []byte(s.TxInput)
	}
	data = append(data, s.TxAppend.Bytes()...)

	handle, ok := a.handles[s.ID]
	if !ok {
		s.AddError("Not connected")
		return
	}
	if _, err := handle.Write(data); err != nil {
		s.AddError("Send failed: " + err.Error())
		return
	}
	s.Log.PushTx(data)
	s.TxClear()
	if s.AutoScroll {
		s.ScrollOffset = 0
	}
	s.AddSuccess("Sent")
	a.Recorder.Send(s.Config.Port, len(data))
}
