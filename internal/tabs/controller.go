// Package tabs composes the session store and the pane registry. It is the
// only code allowed to mutate both, which is what lets it keep the
// cross-collection invariant: every pane maps to a session that exists.
package tabs

import (
	"time"

	"serimux/internal/layout"
	"serimux/internal/session"
)

// Controller is the mutation facade over sessions and panes. Renderers and
// input handlers go through it instead of touching the stores directly, so
// no caller can observe a pane pointing past the session list.
type Controller struct {
	sessions *session.Store
	panes    *layout.Registry
}

// NewController creates a controller with one default session in a Single
// layout. logCapacity <= 0 selects the default log ring size.
func NewController(logCapacity int) *Controller {
	return &Controller{
		sessions: session.NewStore(logCapacity),
		panes:    layout.NewRegistry(),
	}
}

// Sessions exposes the session store for read access.
func (c *Controller) Sessions() *session.Store {
	return c.sessions
}

// Panes exposes the pane registry for read access.
func (c *Controller) Panes() *layout.Registry {
	return c.panes
}

// AddSession appends a new session and returns its index.
func (c *Controller) AddSession(name string) int {
	return c.sessions.Add(name)
}

// AddSessionWithPort appends a session pre-configured for port.
func (c *Controller) AddSessionWithPort(port, name string) int {
	return c.sessions.AddWithPort(port, name)
}

// RemoveSession removes the session at index, then sweeps the pane mapping
// so no pane points past the shrunk session list. Refused when the store
// would be left empty or index is out of range.
func (c *Controller) RemoveSession(index int) (*session.Session, bool) {
	removed, ok := c.sessions.Remove(index)
	if !ok {
		return nil, false
	}
	c.panes.ClampSessions(c.sessions.Len())
	return removed, true
}

// NextLayout advances the layout and backfills sessions so every new pane
// slot has a session to show. The gap the registry leaves open is closed
// before this returns.
func (c *Controller) NextLayout() layout.Mode {
	m := c.panes.NextLayout()
	c.backfillSessions()
	return m
}

// PrevLayout retreats the layout, backfilling sessions the same way.
func (c *Controller) PrevLayout() layout.Mode {
	m := c.panes.PrevLayout()
	c.backfillSessions()
	return m
}

// SetLayoutMode switches directly to mode, backfilling sessions.
func (c *Controller) SetLayoutMode(m layout.Mode) {
	c.panes.SetMode(m)
	c.backfillSessions()
}

// backfillSessions adds default-named sessions until every pane slot's
// mapping resolves. New slots map to their own position, so covering
// indexes up to the pane count is enough.
func (c *Controller) backfillSessions() {
	for c.sessions.Len() < c.panes.PaneCount() {
		c.sessions.Add("")
	}
}

// FocusedPaneSession returns the session shown in the focused pane. The
// controller keeps the mapping invariant, so the lookup cannot fail.
func (c *Controller) FocusedPaneSession() *session.Session {
	s, _ := c.sessions.Get(c.panes.FocusedSession())
	return s
}

// CycleFocusedPaneSession points the focused pane at the next session.
func (c *Controller) CycleFocusedPaneSession() {
	c.panes.CycleFocusedSession(c.sessions.Len())
}

// CycleFocusedPaneSessionPrev points the focused pane at the previous
// session.
func (c *Controller) CycleFocusedPaneSessionPrev() {
	c.panes.CycleFocusedSessionPrev(c.sessions.Len())
}

// ActiveSession returns the store's active session.
func (c *Controller) ActiveSession() *session.Session {
	return c.sessions.Active()
}

// SwitchTo makes index the active session.
func (c *Controller) SwitchTo(index int) bool {
	return c.sessions.SwitchTo(index)
}

// NextSession cycles the active session forwards.
func (c *Controller) NextSession() {
	c.sessions.Next()
}

// PrevSession cycles the active session backwards.
func (c *Controller) PrevSession() {
	c.sessions.Prev()
}

// RenameSession renames the session at index.
func (c *Controller) RenameSession(index int, name string) bool {
	return c.sessions.Rename(index, name)
}

// DuplicateActive clones the active session and returns the clone's index.
func (c *Controller) DuplicateActive() int {
	return c.sessions.DuplicateActive()
}

// UpdateNotifications drops expired notifications on every session.
func (c *Controller) UpdateNotifications(now time.Time) {
	for _, s := range c.sessions.Sessions() {
		s.Notifications.DropExpired(now)
	}
}
