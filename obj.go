package sorrel

// HitShape is an optional custom hit region for an Obj, tested in local
// coordinates relative to the Obj's top-left corner.
type HitShape interface {
	Contains(p Point) bool
}

// Obj is a minimal reference implementation of [Widget]: a flat node struct
// with an attribute bitmask and per-node callback fields. Real applications
// are expected to adapt their own scene graph to the Widget interface; Obj
// exists so the engine is usable (and testable) out of the box.
//
// An Obj that is about to be destroyed while an engine may still reference
// it must be announced with [Engine.Reset] before or during Dispose.
type Obj struct {
	// Attr is the attribute bitmask reported to the engine. New objects
	// start as AttrClickable.
	Attr Attr

	// Shape overrides the bounds rectangle for hit testing when set.
	Shape HitShape

	// Constrain, when set, filters every SetPosition target. Use it to
	// clamp an object to a track or freeze an axis.
	Constrain func(p Point) Point

	// CanEdit is reported through the Editable interface; encoder long
	// presses toggle edit mode only on editable widgets.
	CanEdit bool

	// Per-node callbacks (nil by default; zero cost when unused).
	OnSignal func(sig Signal, ev Event)
	OnKey    func(k Key)

	bounds   Rect
	parent   *Obj
	children []*Obj // front-to-back: children[0] occludes children[1]
	childW   []Widget
	childOK  bool
	screen   *Screen
	group    Group
	disposed bool
}

// NewObj creates an object under parent (which may be nil for a detached
// object) at the front of the parent's child order.
func NewObj(parent *Obj) *Obj {
	o := &Obj{Attr: AttrClickable}
	if parent != nil {
		parent.AddChild(o)
	}
	return o
}

// --- Widget interface ---

// Hit reports whether p falls inside the object's hit region.
func (o *Obj) Hit(p Point) bool {
	if o.Shape != nil {
		return o.Shape.Contains(p.Sub(o.bounds.Pos()))
	}
	return o.bounds.Contains(p)
}

// Bounds returns the object's screen-space rectangle.
func (o *Obj) Bounds() Rect { return o.bounds }

// SetPosition moves the object (and its whole subtree) so its top-left
// corner lands on p, after applying Constrain. The previous and new areas
// are pushed as pending redraw regions even when the constrained position
// ends up unchanged; the engine's drag rollback relies on that.
func (o *Obj) SetPosition(p Point) {
	if o.Constrain != nil {
		p = o.Constrain(p)
	}
	if o.screen != nil {
		o.screen.Invalidate(o.bounds)
	}
	o.shift(p.X-o.bounds.X, p.Y-o.bounds.Y)
	if o.screen != nil {
		o.screen.Invalidate(o.bounds)
	}
}

func (o *Obj) shift(dx, dy int) {
	o.bounds.X += dx
	o.bounds.Y += dy
	for _, c := range o.children {
		c.shift(dx, dy)
	}
}

// Parent returns the parent widget, or nil at a root.
func (o *Obj) Parent() Widget {
	if o.parent == nil {
		return nil
	}
	return o.parent
}

// Children returns the children front-to-back. The returned slice must not
// be mutated; it is reused across calls.
func (o *Obj) Children() []Widget {
	if !o.childOK {
		o.childW = o.childW[:0]
		for _, c := range o.children {
			o.childW = append(o.childW, c)
		}
		o.childOK = true
	}
	return o.childW
}

// Attrs returns the attribute bitmask.
func (o *Obj) Attrs() Attr { return o.Attr }

// MoveToFront moves the object to the front of its parent's child order and
// queues it for redraw.
func (o *Obj) MoveToFront() {
	p := o.parent
	if p == nil {
		return
	}
	for i, c := range p.children {
		if c == o {
			copy(p.children[1:i+1], p.children[:i])
			p.children[0] = o
			p.childOK = false
			break
		}
	}
	if o.screen != nil {
		o.screen.Invalidate(o.bounds)
	}
}

// Group returns the focus group this object belongs to, or nil.
func (o *Obj) Group() Group { return o.group }

// SetGroup records group membership. Normally called by the group itself.
func (o *Obj) SetGroup(g Group) { o.group = g }

// HandleSignal invokes the OnSignal callback, if any.
func (o *Obj) HandleSignal(sig Signal, ev Event) {
	if o.OnSignal != nil {
		o.OnSignal(sig, ev)
	}
}

// Editable reports CanEdit, satisfying the optional [Editable] interface.
func (o *Obj) Editable() bool { return o.CanEdit }

// HandleKey invokes the OnKey callback, satisfying [KeyHandler].
func (o *Obj) HandleKey(k Key) {
	if o.OnKey != nil {
		o.OnKey(k)
	}
}

// --- Geometry ---

// Resize sets the object's width and height in place.
func (o *Obj) Resize(w, h int) {
	if o.screen != nil {
		o.screen.Invalidate(o.bounds)
	}
	o.bounds.W = w
	o.bounds.H = h
	if o.screen != nil {
		o.screen.Invalidate(o.bounds)
	}
}

// SetBounds places the object without moving its children.
func (o *Obj) SetBounds(r Rect) {
	if o.screen != nil {
		o.screen.Invalidate(o.bounds)
	}
	o.bounds = r
	if o.screen != nil {
		o.screen.Invalidate(o.bounds)
	}
}

// --- Tree manipulation ---

// AddChild inserts child at the front of this object's child order (new
// objects sit on top). If child already has a parent it is detached first.
// Panics on nil or on a cycle.
func (o *Obj) AddChild(child *Obj) {
	if child == nil {
		panic("sorrel: cannot add nil child")
	}
	for p := o; p != nil; p = p.parent {
		if p == child {
			panic("sorrel: adding child would create a cycle")
		}
	}
	if child.parent != nil {
		child.parent.removeChildByPtr(child)
	}
	child.parent = o
	o.children = append(o.children, nil)
	copy(o.children[1:], o.children)
	o.children[0] = child
	o.childOK = false
	child.setScreen(o.screen)
}

// RemoveChild detaches child. Panics if child's parent is not this object.
func (o *Obj) RemoveChild(child *Obj) {
	if child.parent != o {
		panic("sorrel: child's parent is not this object")
	}
	o.removeChildByPtr(child)
	child.parent = nil
	child.setScreen(nil)
}

// NumChildren returns the number of children.
func (o *Obj) NumChildren() int { return len(o.children) }

// ChildAt returns the child at the given front-to-back index.
func (o *Obj) ChildAt(i int) *Obj { return o.children[i] }

// Dispose detaches the object and recursively clears the subtree's
// references and callbacks. Engines that may still hold a reference must be
// told with Engine.Reset before the next tick.
func (o *Obj) Dispose() {
	if o.disposed {
		return
	}
	if o.parent != nil {
		o.parent.RemoveChild(o)
	}
	o.dispose()
}

func (o *Obj) dispose() {
	o.disposed = true
	for _, c := range o.children {
		c.parent = nil
		c.dispose()
	}
	o.children = nil
	o.childW = nil
	o.parent = nil
	o.screen = nil
	o.group = nil
	o.Shape = nil
	o.Constrain = nil
	o.OnSignal = nil
	o.OnKey = nil
}

// IsDisposed reports whether Dispose has been called.
func (o *Obj) IsDisposed() bool { return o.disposed }

func (o *Obj) removeChildByPtr(child *Obj) {
	for i, c := range o.children {
		if c == child {
			copy(o.children[i:], o.children[i+1:])
			o.children[len(o.children)-1] = nil
			o.children = o.children[:len(o.children)-1]
			o.childOK = false
			return
		}
	}
}

func (o *Obj) setScreen(s *Screen) {
	o.screen = s
	for _, c := range o.children {
		c.setScreen(s)
	}
}
