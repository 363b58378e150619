// Package layout computes pane geometry and tracks which session each
// pane shows. Mode is the pure geometry half; Registry owns the mutable
// pane state on top of it.
package layout

// Mode is one entry in the fixed layout catalogue. The declaration order
// is the cycling order.
type Mode int

const (
	Single Mode = iota
	SplitHorizontal
	SplitVertical
	Grid2x2
	Grid1x2
	Grid2x1
)

const modeCount = 6

// MaxPanes returns how many panes this layout shows.
func (m Mode) MaxPanes() int {
	switch m {
	case SplitHorizontal, SplitVertical:
		return 2
	case Grid2x2:
		return 4
	case Grid1x2, Grid2x1:
		return 3
	default:
		return 1
	}
}

// Next returns the cyclic successor in the catalogue.
func (m Mode) Next() Mode {
	return (m + 1) % modeCount
}

// Prev returns the cyclic predecessor in the catalogue.
func (m Mode) Prev() Mode {
	return (m + modeCount - 1) % modeCount
}

func (m Mode) String() string {
	switch m {
	case SplitHorizontal:
		return "SplitHorizontal"
	case SplitVertical:
		return "SplitVertical"
	case Grid2x2:
		return "Grid2x2"
	case Grid1x2:
		return "Grid1x2"
	case Grid2x1:
		return "Grid2x1"
	default:
		return "Single"
	}
}

// Title returns the human-readable name shown in menus and the status bar.
func (m Mode) Title() string {
	switch m {
	case SplitHorizontal:
		return "Split Horizontal"
	case SplitVertical:
		return "Split Vertical"
	case Grid2x2:
		return "Grid 2x2"
	case Grid1x2:
		return "Grid 1x2"
	case Grid2x1:
		return "Grid 2x1"
	default:
		return "Single"
	}
}

// ParseMode resolves a mode token as produced by String. Unknown tokens
// report false.
func ParseMode(s string) (Mode, bool) {
	for m := Single; m < modeCount; m++ {
		if m.String() == s {
			return m, true
		}
	}
	return Single, false
}

// Rect is a screen region in terminal cells.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) falls inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Areas partitions bounds into this mode's panes by repeated 50/50
// bisection. The result always has MaxPanes entries in a stable order
// (reading order: left before right, top before bottom); tiny bounds
// yield degenerate but well-formed rectangles.
func (m Mode) Areas(bounds Rect) []Rect {
	if bounds.W < 0 {
		bounds.W = 0
	}
	if bounds.H < 0 {
		bounds.H = 0
	}

	switch m {
	case SplitHorizontal:
		top, bottom := splitRows(bounds)
		return []Rect{top, bottom}
	case SplitVertical:
		left, right := splitCols(bounds)
		return []Rect{left, right}
	case Grid2x2:
		top, bottom := splitRows(bounds)
		tl, tr := splitCols(top)
		bl, br := splitCols(bottom)
		return []Rect{tl, tr, bl, br}
	case Grid1x2:
		top, bottom := splitRows(bounds)
		bl, br := splitCols(bottom)
		return []Rect{top, bl, br}
	case Grid2x1:
		left, right := splitCols(bounds)
		rt, rb := splitRows(right)
		return []Rect{left, rt, rb}
	default:
		return []Rect{bounds}
	}
}

func splitRows(r Rect) (top, bottom Rect) {
	h := r.H / 2
	top = Rect{X: r.X, Y: r.Y, W: r.W, H: h}
	bottom = Rect{X: r.X, Y: r.Y + h, W: r.W, H: r.H - h}
	return top, bottom
}

func splitCols(r Rect) (left, right Rect) {
	w := r.W / 2
	left = Rect{X: r.X, Y: r.Y, W: w, H: r.H}
	right = Rect{X: r.X + w, Y: r.Y, W: r.W - w, H: r.H}
	return left, right
}
