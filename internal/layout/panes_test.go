package layout

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()

	require.Equal(t, Single, r.Mode())
	require.Equal(t, 1, r.PaneCount())
	require.Equal(t, 0, r.FocusedPane())
	require.Equal(t, 0, r.FocusedSession())
}

func TestRegistry_SetMode_Grow(t *testing.T) {
	r := NewRegistry()

	r.SetMode(Grid2x2)
	require.Equal(t, 4, r.PaneCount())
	require.Equal(t, []int{0, 1, 2, 3}, r.PaneSessions())
}

func TestRegistry_SetMode_GrowPreservesMappings(t *testing.T) {
	r := NewRegistry()
	r.SetMode(SplitHorizontal)
	r.SetPaneSession(0, 5)

	r.SetMode(Grid2x2)
	require.Equal(t, []int{5, 1, 2, 3}, r.PaneSessions())
}

func TestRegistry_SetMode_ShrinkTruncatesAndClampsFocus(t *testing.T) {
	r := NewRegistry()
	r.SetMode(Grid2x2)
	r.SetPaneSession(0, 3)
	r.FocusPane(3)

	r.SetMode(SplitVertical)
	require.Equal(t, []int{3, 1}, r.PaneSessions())
	require.Equal(t, 1, r.FocusedPane())

	r.SetMode(Single)
	require.Equal(t, []int{3}, r.PaneSessions())
	require.Equal(t, 0, r.FocusedPane())
}

func TestRegistry_NextPrevLayout(t *testing.T) {
	r := NewRegistry()

	require.Equal(t, SplitHorizontal, r.NextLayout())
	require.Equal(t, 2, r.PaneCount())

	require.Equal(t, Single, r.PrevLayout())
	require.Equal(t, 1, r.PaneCount())

	require.Equal(t, Grid2x1, r.PrevLayout())
	require.Equal(t, 3, r.PaneCount())
	require.Equal(t, []int{0, 1, 2}, r.PaneSessions())
}

func TestRegistry_FocusCycle(t *testing.T) {
	r := NewRegistry()
	r.SetMode(Grid1x2)

	r.FocusNextPane()
	r.FocusNextPane()
	require.Equal(t, 2, r.FocusedPane())
	r.FocusNextPane()
	require.Equal(t, 0, r.FocusedPane())

	r.FocusPrevPane()
	require.Equal(t, 2, r.FocusedPane())
}

func TestRegistry_FocusPane(t *testing.T) {
	r := NewRegistry()
	r.SetMode(SplitHorizontal)

	require.True(t, r.FocusPane(1))
	require.Equal(t, 1, r.FocusedPane())

	require.False(t, r.FocusPane(2))
	require.False(t, r.FocusPane(-1))
	require.Equal(t, 1, r.FocusedPane())
}

func TestRegistry_SessionForPane(t *testing.T) {
	r := NewRegistry()
	r.SetMode(SplitVertical)

	s, ok := r.SessionForPane(1)
	require.True(t, ok)
	require.Equal(t, 1, s)

	_, ok = r.SessionForPane(5)
	require.False(t, ok)

	require.True(t, r.SetPaneSession(1, 7))
	s, _ = r.SessionForPane(1)
	require.Equal(t, 7, s)

	require.False(t, r.SetPaneSession(5, 0))
}

func TestRegistry_CycleFocusedSession(t *testing.T) {
	r := NewRegistry()
	r.SetMode(SplitHorizontal)
	r.FocusPane(1)

	r.CycleFocusedSession(3)
	require.Equal(t, 2, r.FocusedSession())
	r.CycleFocusedSession(3)
	require.Equal(t, 0, r.FocusedSession())

	r.CycleFocusedSessionPrev(3)
	require.Equal(t, 2, r.FocusedSession())

	r.CycleFocusedSession(0)
	require.Equal(t, 2, r.FocusedSession(), "zero sessions must be a no-op")
}

func TestRegistry_ResetMappings(t *testing.T) {
	r := NewRegistry()
	r.SetMode(Grid2x2)
	r.SetPaneSession(0, 3)
	r.SetPaneSession(2, 1)

	r.ResetMappings()
	require.Equal(t, []int{0, 1, 2, 3}, r.PaneSessions())
}

func TestRegistry_ClampSessions(t *testing.T) {
	r := NewRegistry()
	r.SetMode(Grid2x2)
	r.SetPaneSession(1, 9)

	r.ClampSessions(3)
	require.Equal(t, []int{0, 1, 2, 2}, r.PaneSessions())

	r.ClampSessions(0) // no sessions: leave mapping alone
	require.Equal(t, []int{0, 1, 2, 2}, r.PaneSessions())
}

func TestRegistry_PaneSessionsIsACopy(t *testing.T) {
	r := NewRegistry()
	r.SetMode(SplitHorizontal)

	snap := r.PaneSessions()
	snap[0] = 42
	got, _ := r.SessionForPane(0)
	require.Equal(t, 0, got)
}
