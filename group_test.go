package sorrel

import "testing"

func TestGroupAddAndBackLink(t *testing.T) {
	g := NewGroup()
	a := NewObj(nil)
	b := NewObj(nil)
	g.Add(a)
	g.Add(b)

	if g.Len() != 2 {
		t.Errorf("Len = %d, want 2", g.Len())
	}
	if g.Focused() != a {
		t.Error("the first member added must receive focus")
	}
	if a.Group() != Group(g) || b.Group() != Group(g) {
		t.Error("members must be back-linked to the group")
	}
}

func TestGroupAddNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Add(nil) should panic")
		}
	}()
	NewGroup().Add(nil)
}

func TestGroupNavigationWraps(t *testing.T) {
	g := NewGroup()
	a := NewObj(nil)
	b := NewObj(nil)
	c := NewObj(nil)
	g.Add(a)
	g.Add(b)
	g.Add(c)

	g.FocusNext()
	g.FocusNext()
	if g.Focused() != c {
		t.Fatalf("focus = %v, want c", g.Focused())
	}
	g.FocusNext()
	if g.Focused() != a {
		t.Error("FocusNext must wrap to the first member")
	}
	g.FocusPrev()
	if g.Focused() != c {
		t.Error("FocusPrev must wrap to the last member")
	}
}

func TestGroupFocusCb(t *testing.T) {
	g := NewGroup()
	a := NewObj(nil)
	b := NewObj(nil)
	g.Add(a)
	g.Add(b)

	calls := 0
	g.FocusCb = func(got *BasicGroup) {
		calls++
		if got != g {
			t.Error("FocusCb must receive its own group")
		}
	}

	g.FocusNext()
	g.Focus(a)
	if calls != 2 {
		t.Errorf("FocusCb calls = %d, want 2", calls)
	}
}

func TestGroupFocusNonMember(t *testing.T) {
	g := NewGroup()
	a := NewObj(nil)
	g.Add(a)

	g.Focus(NewObj(nil))
	if g.Focused() != a {
		t.Error("focusing a non-member must not move focus")
	}
}

func TestGroupRemove(t *testing.T) {
	g := NewGroup()
	a := NewObj(nil)
	b := NewObj(nil)
	c := NewObj(nil)
	g.Add(a)
	g.Add(b)
	g.Add(c)
	g.Focus(b)

	// Removing the focused member passes focus to its successor's slot.
	g.Remove(b)
	if g.Len() != 2 || g.Focused() != c {
		t.Errorf("focus after removing focused = %v, want c", g.Focused())
	}
	if b.Group() != nil {
		t.Error("removal must clear the member's back-link")
	}

	// Removing a member before the focused one keeps focus where it was.
	g.Focus(c)
	g.Remove(a)
	if g.Focused() != c {
		t.Errorf("focus after removing earlier member = %v, want c", g.Focused())
	}

	// Removing the last member leaves an empty group.
	g.Remove(c)
	if g.Focused() != nil || g.Len() != 0 {
		t.Error("empty group must report no focus")
	}

	// Removing a non-member is a no-op.
	g.Remove(b)
}

func TestGroupEmptyNavigation(t *testing.T) {
	g := NewGroup()
	g.FocusNext()
	g.FocusPrev()
	g.SendKey(KeyEnter)
	if g.Focused() != nil {
		t.Error("empty group must report no focus")
	}
}

func TestGroupSendKey(t *testing.T) {
	g := NewGroup()
	a := NewObj(nil)
	var got []Key
	a.OnKey = func(k Key) { got = append(got, k) }
	g.Add(a)

	g.SendKey(KeyUp)
	g.SendKey(KeyEsc)
	if len(got) != 2 || got[0] != KeyUp || got[1] != KeyEsc {
		t.Errorf("forwarded keys = %v, want [KeyUp KeyEsc]", got)
	}
}

func TestGroupClickFocusFlag(t *testing.T) {
	g := NewGroup()
	if !g.ClickFocus() {
		t.Error("click focus must default to enabled")
	}
	g.SetClickFocus(false)
	if g.ClickFocus() {
		t.Error("SetClickFocus(false) not honored")
	}
}

func TestGroupEditing(t *testing.T) {
	g := NewGroup()
	if g.Editing() {
		t.Error("a new group must not be editing")
	}
	g.SetEditing(true)
	if !g.Editing() {
		t.Error("SetEditing(true) not honored")
	}
}
