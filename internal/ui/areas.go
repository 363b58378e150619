package ui

import (
	"serimux/internal/layout"
	"serimux/internal/menu"
	"serimux/internal/session"
)

// Areas are the screen regions for one frame, computed fresh from the current
// terminal size and model state. Rendering and mouse hit-testing share the
// same computation so they can never disagree.
type Areas struct {
	MenuBar    layout.Rect
	MenuTitles []layout.Rect // one per menu, inside MenuBar
	TabBar     layout.Rect   // zero-height while the tab bar is hidden
	Tabs       []layout.Rect // one per session, inside TabBar
	Panes      []layout.Rect
	Dropdown   layout.Rect // zero while no dropdown is open
	StatusBar  layout.Rect
}

// maxTabNameWidth bounds a session name inside its tab.
const maxTabNameWidth = 20

// tabLabel builds the tab bar text for one session. The active tab carries
// a close affordance the mouse handler recognizes.
func tabLabel(s *session.Session, active bool) string {
	indicator := "○"
	if s.Connected {
		indicator = "●"
	}
	label := indicator + " " + truncate(s.Name, maxTabNameWidth)
	if active {
		label += " [×]"
	}
	return label
}

// computeAreas lays out the screen for the current size and state.
func (a *App) computeAreas() Areas {
	var ar Areas
	w, h := a.width, a.height
	if w <= 0 || h <= 0 {
		return ar
	}

	y := 0
	ar.MenuBar = layout.Rect{X: 0, Y: y, W: w, H: 1}
	x := 0
	for _, m := range a.Menu.Menus() {
		tw := visualWidth(m.Title) + 2
		ar.MenuTitles = append(ar.MenuTitles, layout.Rect{X: x, Y: y, W: tw, H: 1})
		x += tw
	}
	y++

	sessions := a.Controller.Sessions().Sessions()
	if len(sessions) > 1 {
		ar.TabBar = layout.Rect{X: 0, Y: y, W: w, H: 1}
		x = 0
		active := a.Controller.Sessions().ActiveIndex()
		for i, s := range sessions {
			tw := visualWidth(tabLabel(s, i == active)) + 2
			ar.Tabs = append(ar.Tabs, layout.Rect{X: x, Y: y, W: tw, H: 1})
			x += tw + 1 // divider column
		}
		y++
	}

	statusY := h - 1
	paneH := statusY - y
	if paneH < 0 {
		paneH = 0
	}
	ar.Panes = a.Controller.Panes().Mode().Areas(layout.Rect{X: 0, Y: y, W: w, H: paneH})
	ar.StatusBar = layout.Rect{X: 0, Y: statusY, W: w, H: 1}

	if a.Menu.Phase() == menu.PhaseDropdown {
		ar.Dropdown = a.dropdownRect(ar)
	}
	return ar
}

// dropdownRect sizes the open dropdown under its menu title, nudged left
// when it would run off the screen edge.
func (a *App) dropdownRect(ar Areas) layout.Rect {
	idx := a.Menu.MenuIndex()
	if idx < 0 || idx >= len(ar.MenuTitles) {
		return layout.Rect{}
	}
	m, ok := a.Menu.CurrentMenu()
	if !ok {
		return layout.Rect{}
	}
	widest := 0
	for _, it := range m.Items {
		if lw := visualWidth(it.Label); lw > widest {
			widest = lw
		}
	}
	w := widest + 4 // item padding plus border
	h := len(m.Items) + 2
	x := ar.MenuTitles[idx].X
	if x+w > a.width {
		x = a.width - w
	}
	if x < 0 {
		x = 0
	}
	return layout.Rect{X: x, Y: 1, W: w, H: h}
}

// MenuTitleAt returns the menu index under the given cell.
func (ar Areas) MenuTitleAt(x, y int) (int, bool) {
	for i, r := range ar.MenuTitles {
		if r.Contains(x, y) {
			return i, true
		}
	}
	return 0, false
}

// TabAt returns the session index of the tab under the given cell.
func (ar Areas) TabAt(x, y int) (int, bool) {
	for i, r := range ar.Tabs {
		if r.Contains(x, y) {
			return i, true
		}
	}
	return 0, false
}

// PaneAt returns the pane index under the given cell.
func (ar Areas) PaneAt(x, y int) (int, bool) {
	for i, r := range ar.Panes {
		if r.Contains(x, y) {
			return i, true
		}
	}
	return 0, false
}

// DropdownItemAt returns the dropdown item row under the given cell,
// accounting for the box border.
func (ar Areas) DropdownItemAt(x, y int) (int, bool) {
	r := ar.Dropdown
	if r.W == 0 || r.H == 0 || !r.Contains(x, y) {
		return 0, false
	}
	item := y - r.Y - 1
	if item < 0 || item >= r.H-2 {
		return 0, false
	}
	if x <= r.X || x >= r.X+r.W-1 {
		return 0, false
	}
	return item, true
}
