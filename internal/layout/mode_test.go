package layout

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMode_MaxPanes(t *testing.T) {
	tests := []struct {
		mode Mode
		want int
	}{
		{Single, 1},
		{SplitHorizontal, 2},
		{SplitVertical, 2},
		{Grid2x2, 4},
		{Grid1x2, 3},
		{Grid2x1, 3},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, tt.mode.MaxPanes(), "%v", tt.mode)
	}
}

func TestMode_Cycle(t *testing.T) {
	m := Single
	seen := []Mode{}
	for i := 0; i < modeCount; i++ {
		m = m.Next()
		seen = append(seen, m)
	}
	require.Equal(t, []Mode{
		SplitHorizontal, SplitVertical, Grid2x2, Grid1x2, Grid2x1, Single,
	}, seen)

	require.Equal(t, Grid2x1, Single.Prev())
	require.Equal(t, Single, SplitHorizontal.Prev())
}

func TestParseMode(t *testing.T) {
	for m := Single; m < modeCount; m++ {
		got, ok := ParseMode(m.String())
		require.True(t, ok, "%v", m)
		require.Equal(t, m, got)
	}

	_, ok := ParseMode("Grid3x3")
	require.False(t, ok)
}

func TestMode_Areas_SplitHorizontal(t *testing.T) {
	areas := SplitHorizontal.Areas(Rect{X: 0, Y: 0, W: 80, H: 24})
	require.Equal(t, []Rect{
		{X: 0, Y: 0, W: 80, H: 12},
		{X: 0, Y: 12, W: 80, H: 12},
	}, areas)
}

func TestMode_Areas_SplitVertical_OddWidth(t *testing.T) {
	areas := SplitVertical.Areas(Rect{X: 0, Y: 0, W: 81, H: 24})
	require.Equal(t, []Rect{
		{X: 0, Y: 0, W: 40, H: 24},
		{X: 40, Y: 0, W: 41, H: 24},
	}, areas)
}

func TestMode_Areas_Grid2x2(t *testing.T) {
	areas := Grid2x2.Areas(Rect{X: 2, Y: 1, W: 80, H: 24})
	require.Equal(t, []Rect{
		{X: 2, Y: 1, W: 40, H: 12},
		{X: 42, Y: 1, W: 40, H: 12},
		{X: 2, Y: 13, W: 40, H: 12},
		{X: 42, Y: 13, W: 40, H: 12},
	}, areas)
}

func TestMode_Areas_Grid1x2(t *testing.T) {
	areas := Grid1x2.Areas(Rect{X: 0, Y: 0, W: 80, H: 24})
	require.Equal(t, []Rect{
		{X: 0, Y: 0, W: 80, H: 12},
		{X: 0, Y: 12, W: 40, H: 12},
		{X: 40, Y: 12, W: 40, H: 12},
	}, areas)
}

func TestMode_Areas_Grid2x1(t *testing.T) {
	areas := Grid2x1.Areas(Rect{X: 0, Y: 0, W: 80, H: 24})
	require.Equal(t, []Rect{
		{X: 0, Y: 0, W: 40, H: 24},
		{X: 40, Y: 0, W: 40, H: 12},
		{X: 40, Y: 12, W: 40, H: 12},
	}, areas)
}

// Every mode must tile its bounds exactly: pane areas sum to the bounds
// area, and the count matches MaxPanes, for any rectangle.
func TestMode_Areas_TileBounds(t *testing.T) {
	bounds := []Rect{
		{W: 80, H: 24},
		{X: 3, Y: 5, W: 79, H: 23},
		{W: 1, H: 1},
		{W: 0, H: 0},
		{W: 2, H: 3},
	}
	for m := Single; m < modeCount; m++ {
		for _, b := range bounds {
			areas := m.Areas(b)
			require.Len(t, areas, m.MaxPanes(), "%v %+v", m, b)

			total := 0
			for _, a := range areas {
				require.GreaterOrEqual(t, a.W, 0, "%v %+v", m, b)
				require.GreaterOrEqual(t, a.H, 0, "%v %+v", m, b)
				total += a.W * a.H
			}
			require.Equal(t, b.W*b.H, total, "%v %+v", m, b)
		}
	}
}

func TestMode_Areas_NegativeBounds(t *testing.T) {
	areas := Grid2x2.Areas(Rect{W: -5, H: -5})
	require.Len(t, areas, 4)
	for _, a := range areas {
		require.GreaterOrEqual(t, a.W, 0)
		require.GreaterOrEqual(t, a.H, 0)
	}
}

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 10, Y: 5, W: 20, H: 10}

	require.True(t, r.Contains(10, 5))
	require.True(t, r.Contains(29, 14))
	require.False(t, r.Contains(30, 5))
	require.False(t, r.Contains(10, 15))
	require.False(t, r.Contains(9, 5))
}
