package ui

import "time"

// PortsChangedMsg is sent from outside the program loop when a serial device
// appears or disappears. The app reacts by re-listing ports.
type PortsChangedMsg struct{}

// RenameSessionMsg is sent when user confirms a new session name (from modal).
type RenameSessionMsg struct {
	Index int
	Name  string
}

// CloseSessionMsg is sent when user confirms closing a session (from modal).
type CloseSessionMsg struct {
	Index int
}

// SelectPortMsg is sent when user picks a port from the port picker.
type SelectPortMsg struct {
	Port string
}

// DismissModalMsg is sent when user cancels a modal (Esc).
type DismissModalMsg struct{}

// portsLoadedMsg carries the result of an async port listing.
type portsLoadedMsg struct {
	ports []string
	err   error
}

// tickMsg drives the serial poll and notification expiry.
type tickMsg time.Time
