package menu

import "testing"

func TestDefault_Shape(t *testing.T) {
	menus := Default()

	wantTitles := []string{"File", "Session", "View", "Settings", "Help"}
	wantCounts := []int{4, 5, 7, 1, 3}

	if len(menus) != len(wantTitles) {
		t.Fatalf("menu count = %d, want %d", len(menus), len(wantTitles))
	}
	for i, m := range menus {
		if m.Title != wantTitles[i] {
			t.Errorf("menu %d title = %q, want %q", i, m.Title, wantTitles[i])
		}
		if len(m.Items) != wantCounts[i] {
			t.Errorf("%s has %d items, want %d", m.Title, len(m.Items), wantCounts[i])
		}
	}

	// Separator positions.
	for _, sep := range []struct{ menu, item int }{{0, 2}, {1, 3}, {2, 4}, {4, 1}} {
		if !menus[sep.menu].Items[sep.item].Separator {
			t.Errorf("menu %d item %d is not a separator", sep.menu, sep.item)
		}
	}
}

func TestState_OpenToggleClose(t *testing.T) {
	s := New(Default())

	if s.IsOpen() {
		t.Fatal("new state is open")
	}
	s.Toggle()
	if s.Phase() != PhaseBar || s.MenuIndex() != 0 {
		t.Fatalf("after toggle: phase=%v menu=%d, want bar/0", s.Phase(), s.MenuIndex())
	}
	s.Toggle()
	if s.IsOpen() {
		t.Fatal("second toggle did not close")
	}

	s.Open()
	s.Open() // idempotent
	if s.Phase() != PhaseBar {
		t.Fatalf("phase = %v, want PhaseBar", s.Phase())
	}
	s.Close()
	if s.IsOpen() {
		t.Fatal("Close left the menu open")
	}
}

func TestState_BarCycling(t *testing.T) {
	s := New(Default())
	s.Open()

	s.Left()
	if s.MenuIndex() != 4 {
		t.Errorf("Left from 0 = %d, want 4", s.MenuIndex())
	}
	s.Right()
	if s.MenuIndex() != 0 {
		t.Errorf("Right back = %d, want 0", s.MenuIndex())
	}
	for i := 0; i < 5; i++ {
		s.Right()
	}
	if s.MenuIndex() != 0 {
		t.Errorf("full Right cycle = %d, want 0", s.MenuIndex())
	}
}

func TestState_DownOpensDropdown(t *testing.T) {
	s := New(Default())
	s.Open()
	s.Right()

	s.Down()
	if s.Phase() != PhaseDropdown {
		t.Fatalf("phase = %v, want PhaseDropdown", s.Phase())
	}
	if s.MenuIndex() != 1 || s.ItemIndex() != 0 {
		t.Errorf("dropdown at menu=%d item=%d, want 1/0", s.MenuIndex(), s.ItemIndex())
	}
}

func TestState_ActivateOnBarOpensDropdown(t *testing.T) {
	s := New(Default())
	s.Open()

	act, ok := s.Activate()
	if ok || act != ActionNone {
		t.Errorf("Activate on bar returned (%v, %v), want (ActionNone, false)", act, ok)
	}
	if s.Phase() != PhaseDropdown || s.ItemIndex() != 0 {
		t.Errorf("phase=%v item=%d, want dropdown/0", s.Phase(), s.ItemIndex())
	}
}

func TestState_DropdownItemCycling(t *testing.T) {
	s := New(Default())
	s.OpenMenu(0) // File: 4 items

	s.Down()
	s.Down()
	if s.ItemIndex() != 2 {
		t.Fatalf("item = %d, want 2 (separators are not skipped)", s.ItemIndex())
	}
	s.Down()
	s.Down()
	if s.ItemIndex() != 0 {
		t.Errorf("item after wrap = %d, want 0", s.ItemIndex())
	}
	s.Up()
	if s.ItemIndex() != 3 {
		t.Errorf("Up from 0 = %d, want 3", s.ItemIndex())
	}
}

func TestState_DropdownLeftRight(t *testing.T) {
	s := New(Default())
	s.OpenMenu(0)
	s.Down() // item 1

	s.Right()
	if s.Phase() != PhaseDropdown || s.MenuIndex() != 1 || s.ItemIndex() != 0 {
		t.Errorf("after Right: phase=%v menu=%d item=%d, want dropdown/1/0",
			s.Phase(), s.MenuIndex(), s.ItemIndex())
	}
	s.Left()
	s.Left()
	if s.MenuIndex() != 4 || s.ItemIndex() != 0 {
		t.Errorf("after double Left: menu=%d item=%d, want 4/0", s.MenuIndex(), s.ItemIndex())
	}
}

func TestState_Activate_Separator(t *testing.T) {
	s := New(Default())
	s.OpenMenu(0)
	s.Down()
	s.Down() // separator at File[2]

	act, ok := s.Activate()
	if ok || act != ActionNone {
		t.Errorf("separator activation returned (%v, %v)", act, ok)
	}
	if s.Phase() != PhaseDropdown || s.ItemIndex() != 2 {
		t.Errorf("separator activation moved state: phase=%v item=%d", s.Phase(), s.ItemIndex())
	}
}

func TestState_Activate_Item(t *testing.T) {
	s := New(Default())
	s.OpenMenu(0)
	s.Up() // wraps to Exit at File[3]

	act, ok := s.Activate()
	if !ok || act != ActionExit {
		t.Fatalf("Activate = (%v, %v), want (ActionExit, true)", act, ok)
	}
	if s.IsOpen() {
		t.Error("menu still open after activation")
	}
}

func TestState_Back(t *testing.T) {
	s := New(Default())
	s.OpenMenu(2)

	s.Back()
	if s.Phase() != PhaseBar || s.MenuIndex() != 2 {
		t.Errorf("after Back: phase=%v menu=%d, want bar/2", s.Phase(), s.MenuIndex())
	}
	s.Back()
	if s.IsOpen() {
		t.Error("second Back did not close")
	}
}

func TestState_OpenMenu_Bounds(t *testing.T) {
	s := New(Default())

	if s.OpenMenu(5) || s.OpenMenu(-1) {
		t.Error("OpenMenu accepted an out-of-range index")
	}
	if s.IsOpen() {
		t.Error("refused OpenMenu changed state")
	}
	if !s.OpenMenu(4) {
		t.Error("OpenMenu(4) refused")
	}
}
