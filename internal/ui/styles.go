package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, highlights
	ColorHighlight = "205" // Magenta - for selected items, borders
	ColorDanger    = "196" // Red - for errors, the close hint
	ColorMuted     = "241" // Gray - for dimmed text, hints
	ColorText      = "252" // Light gray - for normal text
	ColorDim       = "243" // Darker gray - for very dim text
	ColorWarning   = "208" // Orange - for warnings
	ColorSuccess   = "78"  // Green - for connected markers
	ColorSelected  = "227" // Yellow - for the active tab and menu selection
	ColorBarBg     = "236" // Dark gray - menu/tab/status bar background
)

// Styles contains shared style definitions used across the screen and modals.
var Styles = struct {
	// Title styles
	Title        lipgloss.Style // Bold accent color - for modal titles
	TitleWarning lipgloss.Style // Bold danger color - for confirm titles

	// Box styles
	Box       lipgloss.Style // Standard modal box (highlight border)
	BoxDanger lipgloss.Style // Confirm/warning box (danger border)

	// Bar styles
	Bar          lipgloss.Style // Menu, tab, and status bar background
	BarItem      lipgloss.Style // Unselected menu title / tab label
	BarSelected  lipgloss.Style // Selected menu title / active tab
	DropdownItem lipgloss.Style // Unselected dropdown entry
	DropdownSel  lipgloss.Style // Selected dropdown entry
	Separator    lipgloss.Style // Dropdown separator rule

	// Session content styles
	FieldLabel   lipgloss.Style // Config field name
	FieldValue   lipgloss.Style // Config field value
	FieldFocused lipgloss.Style // Config field holding focus
	FieldLocked  lipgloss.Style // Config field frozen by a live connection
	LogRx        lipgloss.Style // Received data lines
	LogTx        lipgloss.Style // Transmitted data lines
	LogTime      lipgloss.Style // Timestamp prefix on log lines
	Connected    lipgloss.Style // Connected marker (tab dot, status text)
	Disconnected lipgloss.Style // Disconnected marker
	CloseHint    lipgloss.Style // The [x] affordance on the active tab

	// Text styles
	Muted   lipgloss.Style // Dimmed text (muted color)
	Normal  lipgloss.Style // Normal text (text color)
	Hint    lipgloss.Style // Help/hint text (muted color)
	Label   lipgloss.Style // Modal label/content (default)
	Details lipgloss.Style // Warning details (warning color)
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	TitleWarning: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorDanger)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2),
	BoxDanger: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDanger)).
		Padding(1, 2),
	Bar: lipgloss.NewStyle().
		Background(lipgloss.Color(ColorBarBg)).
		Foreground(lipgloss.Color(ColorText)),
	BarItem: lipgloss.NewStyle().
		Background(lipgloss.Color(ColorBarBg)).
		Foreground(lipgloss.Color(ColorText)).
		Padding(0, 1),
	BarSelected: lipgloss.NewStyle().
		Background(lipgloss.Color(ColorBarBg)).
		Foreground(lipgloss.Color(ColorSelected)).
		Bold(true).
		Padding(0, 1),
	DropdownItem: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Padding(0, 1),
	DropdownSel: lipgloss.NewStyle().
		Background(lipgloss.Color(ColorHighlight)).
		Foreground(lipgloss.Color("230")).
		Bold(true).
		Padding(0, 1),
	Separator: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim)),
	FieldLabel: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	FieldValue: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	FieldFocused: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSelected)).
		Bold(true),
	FieldLocked: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim)),
	LogRx: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	LogTx: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWarning)),
	LogTime: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim)),
	Connected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSuccess)),
	Disconnected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim)),
	CloseHint: lipgloss.NewStyle().
		Background(lipgloss.Color(ColorBarBg)).
		Foreground(lipgloss.Color(ColorDanger)),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Label:   lipgloss.NewStyle(),
	Details: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWarning)),
}

// NotifyStyle returns the style for a notification level string as produced
// by notify.Level.String.
func NotifyStyle(level string) lipgloss.Style {
	switch level {
	case "error":
		return Styles.TitleWarning
	case "warning":
		return Styles.Details
	case "success":
		return Styles.Connected
	default:
		return Styles.Normal
	}
}

// paneBorder returns the border style for a pane, brightened when the pane
// holds focus and tinted by connection state otherwise.
func paneBorder(focused, connected bool) lipgloss.Style {
	s := lipgloss.NewStyle().Border(lipgloss.RoundedBorder())
	switch {
	case focused:
		return s.BorderForeground(lipgloss.Color(ColorSelected))
	case connected:
		return s.BorderForeground(lipgloss.Color(ColorSuccess))
	default:
		return s.BorderForeground(lipgloss.Color(ColorDim))
	}
}
