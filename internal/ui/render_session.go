package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"serimux/internal/msglog"
	"serimux/internal/serial"
	"serimux/internal/session"
)

// renderPane draws one session inside a bordered box of exactly w x h
// cells: header, config fields, log window, input line. Rows drop from the
// bottom up when the pane is too short for all of them.
func (a *App) renderPane(s *session.Session, w, h int, focused bool) string {
	innerW, innerH := w-2, h-2

	lines := make([]string, 0, innerH)
	lines = append(lines, paneLine(a.renderPaneHeader(s, innerW), innerW))
	if innerH >= 2 {
		lines = append(lines, paneLine(renderFieldsRow(s), innerW))
	}
	txRow := innerH >= 4
	logH := innerH - len(lines)
	if txRow {
		logH--
	}
	if logH > 0 {
		lines = append(lines, a.renderLogWindow(s, innerW, logH)...)
	}
	if txRow {
		lines = append(lines, paneLine(renderTxLine(s, focused), innerW))
	}
	for len(lines) < innerH {
		lines = append(lines, strings.Repeat(" ", innerW))
	}
	content := strings.Join(lines[:innerH], "\n")
	return paneBorder(focused, s.Connected).Render(content)
}

// paneLine fits styled content to exactly w columns.
func paneLine(s string, w int) string {
	if lipgloss.Width(s) > w {
		s = ansi.Truncate(s, w, truncateEllipsis)
	}
	return padRightStyled(s, w)
}

// renderPaneHeader shows the session name with its connection dot on the
// left and traffic counters on the right.
func (a *App) renderPaneHeader(s *session.Session, w int) string {
	dot := Styles.Disconnected.Render("○")
	if s.Connected {
		dot = Styles.Connected.Render("●")
	}
	left := dot + " " + Styles.Normal.Render(truncate(s.Name, maxTabNameWidth))
	right := Styles.Muted.Render(fmt.Sprintf("RX %d TX %d", s.Log.RxCount(), s.Log.TxCount()))
	gap := w - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + right
}

// renderFieldsRow lays the six config fields out on one line. The focused
// field is highlighted; all of them dim while the config is locked.
func renderFieldsRow(s *session.Session) string {
	parts := make([]string, 0, len(session.ConfigFields))
	for _, f := range session.ConfigFields {
		seg := f.String() + ":" + fieldValue(s, f)
		style := Styles.FieldValue
		switch {
		case s.FocusedField == f:
			style = Styles.FieldFocused
		case s.ConfigLocked:
			style = Styles.FieldLocked
		}
		parts = append(parts, style.Render(seg))
	}
	return strings.Join(parts, " ")
}

// fieldValue formats one config field's current value.
func fieldValue(s *session.Session, f session.Field) string {
	switch f {
	case session.FieldPort:
		if s.Config.Port == "" {
			return "(none)"
		}
		return s.Config.Port
	case session.FieldBaudRate:
		return fmt.Sprintf("%d", s.Config.BaudRate)
	case session.FieldDataBits:
		return fmt.Sprintf("%d", s.Config.DataBits)
	case session.FieldParity:
		return s.Config.Parity.String()
	case session.FieldStopBits:
		return fmt.Sprintf("%d", s.Config.StopBits)
	case session.FieldFlowControl:
		return s.Config.FlowControl.String()
	default:
		return ""
	}
}

// renderLogWindow shows logH entries ending ScrollOffset entries back from
// the newest, bottom-anchored the way a terminal scrolls.
func (a *App) renderLogWindow(s *session.Session, w, logH int) []string {
	total := s.Log.Len()
	end := total - s.ScrollOffset
	if end > total {
		end = total
	}
	if end < 0 {
		end = 0
	}
	start := end - logH
	if start < 0 {
		start = 0
	}

	lines := make([]string, 0, logH)
	for len(lines) < logH-(end-start) {
		lines = append(lines, strings.Repeat(" ", w))
	}
	for i := start; i < end; i++ {
		lines = append(lines, paneLine(a.renderLogEntry(s, s.Log.At(i)), w))
	}
	if total == 0 && logH > 0 {
		lines[len(lines)-1] = paneLine(Styles.Muted.Render("(no data)"), w)
	}
	return lines
}

// renderLogEntry formats one traffic chunk per the session's display mode.
func (a *App) renderLogEntry(s *session.Session, e msglog.Entry) string {
	var b strings.Builder
	if a.showTimestamps {
		b.WriteString(Styles.LogTime.Render(e.Time.Format("15:04:05.000") + " "))
	}
	dirStyle := Styles.LogRx
	if e.Direction == msglog.Tx {
		dirStyle = Styles.LogTx
	}
	b.WriteString(dirStyle.Render(e.Direction.String()))
	b.WriteString(" ")
	if s.DisplayMode == session.DisplayHex {
		b.WriteString(Styles.Normal.Render(serial.BytesToHex(e.Data)))
	} else {
		b.WriteString(Styles.Normal.Render(serial.BytesToDisplay(e.Data)))
	}
	return b.String()
}

// renderTxLine draws the input prompt with the tx mode and line ending in
// the label. The cursor only shows in the focused pane.
func renderTxLine(s *session.Session, focused bool) string {
	labelStyle := Styles.FieldLabel
	if s.FocusedField == session.FieldTxInput {
		labelStyle = Styles.FieldFocused
	}
	tag := s.TxMode.String()
	if s.TxAppend.Bytes() != nil {
		tag += "+" + s.TxAppend.String()
	}
	prompt := labelStyle.Render("TX[" + tag + "]> ")
	if s.FocusedField == session.FieldTxInput && focused {
		return prompt + renderInputWithCursor(s.TxInput, s.TxCursor)
	}
	return prompt + Styles.Normal.Render(s.TxInput)
}

// renderInputWithCursor paints the codepoint under the cursor in reverse
// video, or a reversed space when the cursor sits past the end.
func renderInputWithCursor(input string, cursor int) string {
	rs := []rune(input)
	if cursor > len(rs) {
		cursor = len(rs)
	}
	cursorStyle := lipgloss.NewStyle().Reverse(true)
	if cursor == len(rs) {
		return Styles.Normal.Render(string(rs)) + cursorStyle.Render(" ")
	}
	return Styles.Normal.Render(string(rs[:cursor])) +
		cursorStyle.Render(string(rs[cursor])) +
		Styles.Normal.Render(string(rs[cursor+1:]))
}
