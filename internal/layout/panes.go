package layout

// Registry owns the current layout mode, the pane-to-session mapping, and
// which pane holds focus. It knows session indexes only as integers; making
// sure every index refers to a live session is the owning controller's job,
// because growing a layout can mint slots before their sessions exist.
type Registry struct {
	mode    Mode
	panes   []int // pane slot -> session index
	focused int
}

// NewRegistry starts in Single with pane 0 showing session 0.
func NewRegistry() *Registry {
	return &Registry{mode: Single, panes: []int{0}}
}

// Mode returns the current layout mode.
func (r *Registry) Mode() Mode {
	return r.mode
}

// PaneCount returns the number of pane slots in the current layout.
func (r *Registry) PaneCount() int {
	return len(r.panes)
}

// FocusedPane returns the focused pane slot.
func (r *Registry) FocusedPane() int {
	return r.focused
}

// FocusedSession returns the session index shown in the focused pane.
func (r *Registry) FocusedSession() int {
	return r.panes[r.focused]
}

// SetMode switches to mode and resizes the pane mapping to fit.
func (r *Registry) SetMode(m Mode) {
	r.mode = m
	r.adjustPanes()
}

// NextLayout advances to the next catalogue mode and returns it.
func (r *Registry) NextLayout() Mode {
	r.mode = r.mode.Next()
	r.adjustPanes()
	return r.mode
}

// PrevLayout retreats to the previous catalogue mode and returns it.
func (r *Registry) PrevLayout() Mode {
	r.mode = r.mode.Prev()
	r.adjustPanes()
	return r.mode
}

// adjustPanes resizes the mapping to the mode's pane count. New slots map
// to the session index matching their own position; shrinking truncates
// from the end. Focus is clamped into range.
func (r *Registry) adjustPanes() {
	target := r.mode.MaxPanes()
	for len(r.panes) < target {
		r.panes = append(r.panes, len(r.panes))
	}
	if len(r.panes) > target {
		r.panes = r.panes[:target]
	}
	if r.focused >= len(r.panes) {
		r.focused = len(r.panes) - 1
	}
}

// FocusNextPane moves focus to the next pane slot, cyclically.
func (r *Registry) FocusNextPane() {
	r.focused = (r.focused + 1) % len(r.panes)
}

// FocusPrevPane moves focus to the previous pane slot, cyclically.
func (r *Registry) FocusPrevPane() {
	r.focused = (r.focused + len(r.panes) - 1) % len(r.panes)
}

// FocusPane focuses the given pane slot, refusing out-of-range values.
func (r *Registry) FocusPane(index int) bool {
	if index < 0 || index >= len(r.panes) {
		return false
	}
	r.focused = index
	return true
}

// SessionForPane returns the session index mapped to a pane slot.
func (r *Registry) SessionForPane(index int) (int, bool) {
	if index < 0 || index >= len(r.panes) {
		return 0, false
	}
	return r.panes[index], true
}

// SetPaneSession points a pane slot at a session index.
func (r *Registry) SetPaneSession(index, session int) bool {
	if index < 0 || index >= len(r.panes) {
		return false
	}
	r.panes[index] = session
	return true
}

// CycleFocusedSession steps the focused pane to the next session index
// modulo total. No-op when total is zero.
func (r *Registry) CycleFocusedSession(total int) {
	if total <= 0 {
		return
	}
	r.panes[r.focused] = (r.panes[r.focused] + 1) % total
}

// CycleFocusedSessionPrev steps the focused pane to the previous session
// index modulo total. No-op when total is zero.
func (r *Registry) CycleFocusedSessionPrev(total int) {
	if total <= 0 {
		return
	}
	r.panes[r.focused] = (r.panes[r.focused] + total - 1) % total
}

// ResetMappings sets every pane slot back to the identity mapping.
func (r *Registry) ResetMappings() {
	for i := range r.panes {
		r.panes[i] = i
	}
}

// ClampSessions rewrites any mapping at or past total to the last valid
// session index. Called after session removal to restore the mapping
// invariant.
func (r *Registry) ClampSessions(total int) {
	if total <= 0 {
		return
	}
	for i, s := range r.panes {
		if s >= total {
			r.panes[i] = total - 1
		}
	}
}

// PaneSessions returns a copy of the pane-to-session mapping.
func (r *Registry) PaneSessions() []int {
	out := make([]int, len(r.panes))
	copy(out, r.panes)
	return out
}
