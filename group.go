package sorrel

// KeyHandler is implemented by widgets that accept raw keys forwarded from a
// focus group.
type KeyHandler interface {
	HandleKey(k Key)
}

// BasicGroup is a reference implementation of [Group]: an ordered member
// list with a focus index, wraparound navigation, and an edit-mode flag.
type BasicGroup struct {
	// FocusCb, when set, runs after every focus change.
	FocusCb func(g *BasicGroup)

	members    []Widget
	focus      int
	editing    bool
	clickFocus bool
}

// NewGroup creates an empty group with click-focus enabled.
func NewGroup() *BasicGroup {
	return &BasicGroup{clickFocus: true}
}

// Add appends w to the member order. The first member added receives focus.
// Widgets exposing SetGroup (such as *Obj) are back-linked to the group.
func (g *BasicGroup) Add(w Widget) {
	if w == nil {
		panic("sorrel: cannot add nil widget to group")
	}
	g.members = append(g.members, w)
	if s, ok := w.(interface{ SetGroup(Group) }); ok {
		s.SetGroup(g)
	}
}

// Remove detaches w from the group, moving focus to the next member if w was
// focused.
func (g *BasicGroup) Remove(w Widget) {
	for i, m := range g.members {
		if m != w {
			continue
		}
		copy(g.members[i:], g.members[i+1:])
		g.members[len(g.members)-1] = nil
		g.members = g.members[:len(g.members)-1]
		if g.focus > i || g.focus >= len(g.members) {
			if g.focus > 0 {
				g.focus--
			}
		}
		if s, ok := w.(interface{ SetGroup(Group) }); ok {
			s.SetGroup(nil)
		}
		return
	}
}

// Focused returns the focused member, or nil for an empty group.
func (g *BasicGroup) Focused() Widget {
	if len(g.members) == 0 {
		return nil
	}
	return g.members[g.focus]
}

// Focus moves focus to w if it is a member.
func (g *BasicGroup) Focus(w Widget) {
	for i, m := range g.members {
		if m == w {
			g.setFocus(i)
			return
		}
	}
}

// FocusNext moves focus forward, wrapping at the end of the member order.
func (g *BasicGroup) FocusNext() {
	if len(g.members) == 0 {
		return
	}
	g.setFocus((g.focus + 1) % len(g.members))
}

// FocusPrev moves focus backward, wrapping at the start.
func (g *BasicGroup) FocusPrev() {
	if len(g.members) == 0 {
		return
	}
	g.setFocus((g.focus + len(g.members) - 1) % len(g.members))
}

func (g *BasicGroup) setFocus(i int) {
	g.focus = i
	if g.FocusCb != nil {
		g.FocusCb(g)
	}
}

// Editing reports whether the group is in edit mode.
func (g *BasicGroup) Editing() bool { return g.editing }

// SetEditing enters or leaves edit mode.
func (g *BasicGroup) SetEditing(editing bool) { g.editing = editing }

// ClickFocus reports whether pointer clicks may focus members of this group.
func (g *BasicGroup) ClickFocus() bool { return g.clickFocus }

// SetClickFocus enables or disables focus-on-click for this group.
func (g *BasicGroup) SetClickFocus(enabled bool) { g.clickFocus = enabled }

// SendKey forwards k to the focused member if it accepts raw keys.
func (g *BasicGroup) SendKey(k Key) {
	if f := g.Focused(); f != nil {
		if kh, ok := f.(KeyHandler); ok {
			kh.HandleKey(k)
		}
	}
}

// Len returns the number of members.
func (g *BasicGroup) Len() int { return len(g.members) }
