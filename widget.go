package sorrel

import "time"

// Widget is the engine's view of a scene-graph element. The scene graph owns
// every widget; the engine holds non-owning references only and always
// re-checks the per-device reset flag after calling out through this
// interface, because any HandleSignal call may mutate or destroy arbitrary
// widgets.
//
// Implementations must report children front-to-back: Children()[0] occludes
// Children()[1] during hit testing.
type Widget interface {
	// Hit reports whether p lies within the widget's bounds (or custom hit
	// shape).
	Hit(p Point) bool
	// Bounds returns the widget's current screen-space rectangle.
	Bounds() Rect
	// SetPosition moves the widget's top-left corner to p. Implementations
	// may constrain the final position; the engine detects that by reading
	// Bounds afterwards.
	SetPosition(p Point)
	// Parent returns the parent widget, or nil at a root.
	Parent() Widget
	// Children returns the child list in front-to-back order. The engine
	// does not mutate the returned slice.
	Children() []Widget
	// Attrs returns the widget's attribute bitmask.
	Attrs() Attr
	// MoveToFront moves the widget to the front of its parent's child order
	// and marks it for redraw.
	MoveToFront()
	// Group returns the focus group the widget belongs to, or nil.
	Group() Group
	// HandleSignal delivers an engine event. It is invoked synchronously;
	// the handler may call back into the engine, including Engine.Reset.
	HandleSignal(sig Signal, ev Event)
}

// Editable is implemented by widgets that support an in-place edit mode.
// Encoder devices toggle their group's edit mode only on editable widgets;
// everything else receives a plain long press.
type Editable interface {
	Editable() bool
}

// Group is a logical focus group navigated by keypad and encoder devices.
type Group interface {
	// Focused returns the currently focused member, or nil for an empty
	// group.
	Focused() Widget
	// Focus moves focus to w if it is a member.
	Focus(w Widget)
	// FocusNext and FocusPrev step focus through the member order.
	FocusNext()
	FocusPrev()
	// Editing reports whether the group is in edit mode.
	Editing() bool
	// SetEditing enters or leaves edit mode.
	SetEditing(editing bool)
	// ClickFocus reports whether pointer clicks may move focus into this
	// group.
	ClickFocus() bool
	// SendKey forwards a raw key to the focused member.
	SendKey(k Key)
	// Len returns the number of members.
	Len() int
}

// Display is the engine's view of one output surface: the three hit-test
// roots, in search priority order, plus the pending-redraw bookkeeping the
// drag engine uses to roll back no-op moves.
type Display interface {
	// SystemLayer is the topmost root (cursors, system overlays).
	SystemLayer() Widget
	// TopLayer sits above the active screen but below the system layer.
	TopLayer() Widget
	// ActiveScreen is the normal widget root.
	ActiveScreen() Widget
	// InvalidCount returns the number of currently pending redraw regions.
	InvalidCount() int
	// PopInvalid discards the n most recently pushed redraw regions.
	PopInvalid(n int)
}

// Clock supplies the engine's notion of time. The default implementation
// reads the system clock; tests substitute a manual one.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }
