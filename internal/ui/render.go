package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// render draws the whole screen: menu bar, tab bar, panes, status bar, then
// the dropdown and any modal spliced on top.
func (a *App) render() string {
	if a.width <= 0 || a.height <= 0 {
		return "Loading..."
	}
	ar := a.computeAreas()

	rows := make([]string, 0, a.height)
	rows = append(rows, a.renderMenuBar())
	if ar.TabBar.H > 0 {
		rows = append(rows, a.renderTabBar())
	}
	rows = append(rows, a.renderPanes(ar)...)
	rows = append(rows, a.renderStatusBar())
	base := strings.Join(rows, "\n")

	if ar.Dropdown.W > 0 {
		base = spliceOverlay(base, a.renderDropdown(ar), ar.Dropdown.X, ar.Dropdown.Y)
	}
	if top, ok := a.Overlays.Peek(); ok {
		modal := top.View.View()
		mw, mh := lipgloss.Width(modal), lipgloss.Height(modal)
		x := (a.width - mw) / 2
		y := (a.height - mh) / 2
		if x < 0 {
			x = 0
		}
		if y < 0 {
			y = 0
		}
		base = spliceOverlay(base, strings.Split(modal, "\n"), x, y)
	}
	return base
}

// renderMenuBar draws the menu titles, highlighting the selection while the
// menu is open.
func (a *App) renderMenuBar() string {
	var b strings.Builder
	for i, m := range a.Menu.Menus() {
		style := Styles.BarItem
		if a.Menu.IsOpen() && i == a.Menu.MenuIndex() {
			style = Styles.BarSelected
		}
		b.WriteString(style.Render(m.Title))
	}
	return padBar(b.String(), a.width)
}

// renderTabBar draws one tab per session. The connection dot is filled for
// connected sessions; the active tab carries the close affordance.
func (a *App) renderTabBar() string {
	sessions := a.Controller.Sessions().Sessions()
	active := a.Controller.Sessions().ActiveIndex()
	parts := make([]string, 0, len(sessions)*2)
	for i, s := range sessions {
		if i > 0 {
			parts = append(parts, Styles.Bar.Render("|"))
		}
		label := tabLabel(s, i == active)
		if i == active {
			// Close affordance styled separately; same columns the tab
			// click handler treats as the close region.
			base := strings.TrimSuffix(label, " [×]")
			parts = append(parts, Styles.BarSelected.Render(base)+Styles.CloseHint.Render("[×] "))
			continue
		}
		parts = append(parts, Styles.BarItem.Render(label))
	}
	return padBar(strings.Join(parts, ""), a.width)
}

// renderPanes draws every pane box into a blank canvas covering the pane
// region, one line per screen row.
func (a *App) renderPanes(ar Areas) []string {
	if len(ar.Panes) == 0 {
		return nil
	}
	top := ar.Panes[0].Y
	h := ar.StatusBar.Y - top
	if h <= 0 {
		return nil
	}
	blank := strings.Repeat(" ", a.width)
	canvas := make([]string, h)
	for i := range canvas {
		canvas[i] = blank
	}
	base := strings.Join(canvas, "\n")

	focused := a.Controller.Panes().FocusedPane()
	for i, r := range ar.Panes {
		if r.W < 4 || r.H < 3 {
			continue
		}
		s := a.sessionForPane(i)
		if s == nil {
			continue
		}
		box := a.renderPane(s, r.W, r.H, i == focused)
		base = spliceOverlay(base, strings.Split(box, "\n"), r.X, r.Y-top)
	}
	return strings.Split(base, "\n")
}

// renderStatusBar summarizes the focused pane's session: connection state,
// device config, traffic counters, modes, layout, and focused field. The
// right-hand side shows the latest live notification, or the short key
// hints when nothing needs attention.
func (a *App) renderStatusBar() string {
	s := a.Controller.FocusedPaneSession()

	dot := Styles.Disconnected.Render("○")
	if s.Connected {
		dot = Styles.Connected.Render("●")
	}
	left := " " + dot + " " + s.Config.Display()
	left += fmt.Sprintf("  RX %d TX %d", s.Log.RxCount(), s.Log.TxCount())
	if s.ReadErrors > 0 {
		left += "  " + Styles.TitleWarning.Render(fmt.Sprintf("ERR %d", s.ReadErrors))
	}
	left += fmt.Sprintf("  %s/%s", s.DisplayMode, s.TxMode)
	if s.TxAppend.Bytes() != nil {
		left += "+" + s.TxAppend.String()
	}
	left += "  " + a.Controller.Panes().Mode().Title()
	left += "  [" + s.FocusedField.String() + "]"

	line := Styles.Bar.Render(left)
	var right string
	if n, ok := s.Notifications.Latest(); ok {
		right = NotifyStyle(n.Level.String()).Render(n.Message + " ")
	} else {
		right = a.HelpView.ShortHelpView(a.Keys.ShortHelp()) + " "
	}
	gap := a.width - lipgloss.Width(line) - lipgloss.Width(right)
	if gap > 0 {
		line += Styles.Bar.Render(strings.Repeat(" ", gap))
	}
	line += right
	return padBar(line, a.width)
}

// renderDropdown draws the open menu's items in a bordered box sized by
// dropdownRect.
func (a *App) renderDropdown(ar Areas) []string {
	m, ok := a.Menu.CurrentMenu()
	if !ok {
		return nil
	}
	innerW := ar.Dropdown.W - 2
	rows := make([]string, 0, len(m.Items))
	for i, it := range m.Items {
		if it.Separator {
			rows = append(rows, Styles.Separator.Render(strings.Repeat("─", innerW)))
			continue
		}
		style := Styles.DropdownItem
		if i == a.Menu.ItemIndex() {
			style = Styles.DropdownSel
		}
		rows = append(rows, style.Width(innerW).Render(truncate(it.Label, innerW-2)))
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Render(strings.Join(rows, "\n"))
	return strings.Split(box, "\n")
}

// padBar fills a bar line to the full screen width with the bar background,
// truncating when the content is already too wide.
func padBar(line string, width int) string {
	w := lipgloss.Width(line)
	if w > width {
		return ansi.Truncate(line, width, "")
	}
	if w < width {
		line += Styles.Bar.Render(strings.Repeat(" ", width-w))
	}
	return line
}
