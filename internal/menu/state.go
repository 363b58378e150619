package menu

// Phase is where menu focus currently sits.
type Phase int

const (
	PhaseClosed Phase = iota
	PhaseBar
	PhaseDropdown
)

// State walks menu focus through its three phases: closed, a title on the
// bar, or an item inside an open dropdown. All index arithmetic is modulo
// the catalogue, so cycling never runs off the end.
type State struct {
	menus []Menu
	phase Phase
	menu  int
	item  int
}

// New creates a closed menu state over the given catalogue.
func New(menus []Menu) *State {
	return &State{menus: menus}
}

// Phase returns the current focus phase.
func (s *State) Phase() Phase {
	return s.phase
}

// IsOpen reports whether the bar or a dropdown has focus.
func (s *State) IsOpen() bool {
	return s.phase != PhaseClosed
}

// MenuIndex returns the focused menu title's index.
func (s *State) MenuIndex() int {
	return s.menu
}

// ItemIndex returns the focused dropdown item's index.
func (s *State) ItemIndex() int {
	return s.item
}

// Menus returns the catalogue this state walks.
func (s *State) Menus() []Menu {
	return s.menus
}

// CurrentMenu returns the focused menu while the state is open.
func (s *State) CurrentMenu() (Menu, bool) {
	if s.phase == PhaseClosed {
		return Menu{}, false
	}
	return s.menus[s.menu], true
}

// CurrentItem returns the focused item while a dropdown is open.
func (s *State) CurrentItem() (Item, bool) {
	if s.phase != PhaseDropdown {
		return Item{}, false
	}
	return s.menus[s.menu].Items[s.item], true
}

// Open focuses the first bar title. No-op if the menu is already open.
func (s *State) Open() {
	if s.phase == PhaseClosed {
		s.phase = PhaseBar
		s.menu = 0
		s.item = 0
	}
}

// Toggle opens the bar from closed, or closes the menu entirely.
func (s *State) Toggle() {
	if s.phase == PhaseClosed {
		s.Open()
	} else {
		s.Close()
	}
}

// Close resets to the closed phase.
func (s *State) Close() {
	s.phase = PhaseClosed
	s.menu = 0
	s.item = 0
}

// OpenMenu jumps straight to the given menu's dropdown at item 0, as a
// mouse click on a bar title does.
func (s *State) OpenMenu(index int) bool {
	if index < 0 || index >= len(s.menus) {
		return false
	}
	s.phase = PhaseDropdown
	s.menu = index
	s.item = 0
	return true
}

// Left moves to the previous menu title. In a dropdown it switches to the
// adjacent menu's dropdown at item 0.
func (s *State) Left() {
	switch s.phase {
	case PhaseBar:
		s.menu = (s.menu + len(s.menus) - 1) % len(s.menus)
	case PhaseDropdown:
		s.menu = (s.menu + len(s.menus) - 1) % len(s.menus)
		s.item = 0
	}
}

// Right moves to the next menu title, or the adjacent dropdown.
func (s *State) Right() {
	switch s.phase {
	case PhaseBar:
		s.menu = (s.menu + 1) % len(s.menus)
	case PhaseDropdown:
		s.menu = (s.menu + 1) % len(s.menus)
		s.item = 0
	}
}

// Down opens the dropdown from the bar, or cycles to the next item.
func (s *State) Down() {
	switch s.phase {
	case PhaseBar:
		s.phase = PhaseDropdown
		s.item = 0
	case PhaseDropdown:
		s.item = (s.item + 1) % len(s.menus[s.menu].Items)
	}
}

// Up cycles to the previous dropdown item.
func (s *State) Up() {
	if s.phase == PhaseDropdown {
		n := len(s.menus[s.menu].Items)
		s.item = (s.item + n - 1) % n
	}
}

// Activate runs Enter. On the bar it opens the dropdown; on a dropdown
// item it closes the menu and returns the item's action. Separators
// refuse activation and leave the state unchanged.
func (s *State) Activate() (Action, bool) {
	switch s.phase {
	case PhaseBar:
		s.phase = PhaseDropdown
		s.item = 0
		return ActionNone, false
	case PhaseDropdown:
		it := s.menus[s.menu].Items[s.item]
		if it.Separator {
			return ActionNone, false
		}
		s.Close()
		return it.Action, true
	default:
		return ActionNone, false
	}
}

// Back runs Escape: a dropdown collapses to the bar, the bar closes.
func (s *State) Back() {
	switch s.phase {
	case PhaseDropdown:
		s.phase = PhaseBar
		s.item = 0
	case PhaseBar:
		s.Close()
	}
}
