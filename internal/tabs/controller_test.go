package tabs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"serimux/internal/layout"
	"serimux/internal/notify"
)

// checkMappingInvariant asserts the pane mapping matches the layout's pane
// count and that every entry resolves to a live session.
func checkMappingInvariant(t *testing.T, c *Controller) {
	t.Helper()
	require.Equal(t, c.Panes().Mode().MaxPanes(), c.Panes().PaneCount())
	for _, s := range c.Panes().PaneSessions() {
		require.Less(t, s, c.Sessions().Len())
		require.GreaterOrEqual(t, s, 0)
	}
}

func TestNewController(t *testing.T) {
	c := NewController(0)

	require.Equal(t, 1, c.Sessions().Len())
	require.Equal(t, layout.Single, c.Panes().Mode())
	require.Equal(t, "Session 1", c.ActiveSession().Name)
	checkMappingInvariant(t, c)
}

func TestController_NextLayout_BackfillsSessions(t *testing.T) {
	c := NewController(0)

	m := c.NextLayout()
	require.Equal(t, layout.SplitHorizontal, m)
	require.Equal(t, 2, c.Sessions().Len())
	require.Equal(t, []int{0, 1}, c.Panes().PaneSessions())

	backfilled, _ := c.Sessions().Get(1)
	require.Equal(t, "Session 2", backfilled.Name)
	checkMappingInvariant(t, c)
}

func TestController_PrevLayout_BackfillsSessions(t *testing.T) {
	c := NewController(0)

	m := c.PrevLayout()
	require.Equal(t, layout.Grid2x1, m)
	require.Equal(t, 3, c.Sessions().Len())
	require.Equal(t, []int{0, 1, 2}, c.Panes().PaneSessions())
	checkMappingInvariant(t, c)
}

func TestController_SetLayoutMode_BackfillsSessions(t *testing.T) {
	c := NewController(0)

	c.SetLayoutMode(layout.Grid2x2)
	require.Equal(t, 4, c.Sessions().Len())
	require.Equal(t, []int{0, 1, 2, 3}, c.Panes().PaneSessions())
	checkMappingInvariant(t, c)
}

// Cycling the whole catalogue in both directions must never expose a pane
// that points past the session list.
func TestController_LayoutChangesKeepInvariant(t *testing.T) {
	c := NewController(0)
	for i := 0; i < 8; i++ {
		c.NextLayout()
		checkMappingInvariant(t, c)
	}
	for i := 0; i < 8; i++ {
		c.PrevLayout()
		checkMappingInvariant(t, c)
	}
	for m := layout.Single; m <= layout.Grid2x1; m++ {
		c.SetLayoutMode(m)
		checkMappingInvariant(t, c)
	}
}

func TestController_RemoveSession_SweepsPanes(t *testing.T) {
	c := NewController(0)
	c.SetLayoutMode(layout.Grid2x2) // 4 sessions, panes [0 1 2 3]

	_, ok := c.RemoveSession(3)
	require.True(t, ok)
	require.Equal(t, 3, c.Sessions().Len())
	require.Equal(t, []int{0, 1, 2, 2}, c.Panes().PaneSessions())
	checkMappingInvariant(t, c)

	_, ok = c.RemoveSession(0)
	require.True(t, ok)
	checkMappingInvariant(t, c)
}

func TestController_RemoveSession_RefusesLast(t *testing.T) {
	c := NewController(0)

	_, ok := c.RemoveSession(0)
	require.False(t, ok)
	require.Equal(t, 1, c.Sessions().Len())
}

func TestController_CycleFocusedPaneSession(t *testing.T) {
	c := NewController(0)
	c.AddSession("")
	c.AddSession("")

	c.CycleFocusedPaneSession()
	require.Equal(t, 1, c.Panes().FocusedSession())
	require.Equal(t, 1, c.FocusedPaneSession().ID)

	c.CycleFocusedPaneSession()
	c.CycleFocusedPaneSession()
	require.Equal(t, 0, c.Panes().FocusedSession())

	c.CycleFocusedPaneSessionPrev()
	require.Equal(t, 2, c.Panes().FocusedSession())
}

func TestController_FocusedPaneSession_TracksPaneFocus(t *testing.T) {
	c := NewController(0)
	c.SetLayoutMode(layout.SplitVertical)

	require.Equal(t, 0, c.FocusedPaneSession().ID)
	c.Panes().FocusNextPane()
	require.Equal(t, 1, c.FocusedPaneSession().ID)
}

func TestController_SessionPassthroughs(t *testing.T) {
	c := NewController(0)
	c.AddSessionWithPort("/dev/ttyUSB0", "")

	require.True(t, c.SwitchTo(1))
	require.Equal(t, "Session 2 - /dev/ttyUSB0", c.ActiveSession().Name)

	require.True(t, c.RenameSession(1, "PSU"))
	require.Equal(t, "PSU", c.ActiveSession().Name)

	idx := c.DuplicateActive()
	dup, _ := c.Sessions().Get(idx)
	require.Equal(t, "PSU (Copy)", dup.Name)

	c.NextSession()
	require.Equal(t, idx, c.Sessions().ActiveIndex())
	c.PrevSession()
	c.PrevSession()
	require.Equal(t, 0, c.Sessions().ActiveIndex())
}

func TestController_UpdateNotifications(t *testing.T) {
	c := NewController(0)
	s := c.ActiveSession()

	old := notify.Info("stale")
	old.CreatedAt = time.Now().Add(-10 * time.Second)
	s.Notifications.Push(old)
	s.AddSuccess("fresh")

	c.UpdateNotifications(time.Now())
	require.Equal(t, 1, s.Notifications.Len())
	latest, ok := s.Notifications.Latest()
	require.True(t, ok)
	require.Equal(t, "fresh", latest.Message)
}
