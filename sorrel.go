package sorrel

// Point is an integer screen coordinate. It doubles as a displacement vector
// for drag and throw arithmetic.
type Point struct {
	X, Y int
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns the displacement from q to p.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// IsZero reports whether both components are zero.
func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// Rect is an axis-aligned rectangle in screen coordinates. The origin is the
// top-left corner, with Y increasing downward.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether p lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W &&
		p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Pos returns the top-left corner.
func (r Rect) Pos() Point {
	return Point{r.X, r.Y}
}

// PressState is the reported contact state of a device sample.
type PressState uint8

const (
	StateReleased PressState = iota
	StatePressed
)

// Key is a logical key value forwarded to focus groups. The named constants
// below are the navigation vocabulary; any other value is passed through to
// the focused widget unchanged.
type Key uint32

const (
	KeyNone  Key = 0
	KeyNext  Key = 9  // focus the next group member
	KeyEnter Key = 10 // confirm / activate
	KeyPrev  Key = 11 // focus the previous group member
	KeyUp    Key = 17
	KeyDown  Key = 18
	KeyRight Key = 19
	KeyLeft  Key = 20
	KeyEsc   Key = 27
)

// Signal identifies an event delivered to a widget through
// [Widget.HandleSignal].
type Signal uint8

const (
	// SignalPressed fires once when a widget becomes the engaged target of a
	// press.
	SignalPressed Signal = iota
	// SignalPressing fires every tick while the widget remains pressed.
	SignalPressing
	// SignalPressLost fires when the press moves to a different widget (or
	// off every widget) without a release on the engaged one.
	SignalPressLost
	// SignalReleased fires when the press ends on the engaged widget.
	SignalReleased
	// SignalClicked follows SignalReleased when neither a long press nor a
	// drag occurred during the press cycle.
	SignalClicked
	// SignalLongPress fires once per press cycle after the long-press
	// threshold elapses without a drag.
	SignalLongPress
	// SignalLongPressRepeat fires periodically after SignalLongPress while
	// the press is held and no drag is active.
	SignalLongPressRepeat
	// SignalDragBegin fires on the first real displacement of a drag.
	SignalDragBegin
	// SignalDragEnd fires when a drag (including its inertial throw) comes
	// to rest or cannot continue.
	SignalDragEnd
)

var signalNames = [...]string{
	SignalPressed:         "Pressed",
	SignalPressing:        "Pressing",
	SignalPressLost:       "PressLost",
	SignalReleased:        "Released",
	SignalClicked:         "Clicked",
	SignalLongPress:       "LongPress",
	SignalLongPressRepeat: "LongPressRepeat",
	SignalDragBegin:       "DragBegin",
	SignalDragEnd:         "DragEnd",
}

func (s Signal) String() string {
	if int(s) < len(signalNames) {
		return signalNames[s]
	}
	return "Unknown"
}

// Attr is a widget attribute bitmask queried by the engine through
// [Widget.Attrs].
type Attr uint16

const (
	// AttrClickable marks a widget as a valid hit-test target.
	AttrClickable Attr = 1 << iota
	// AttrHidden excludes a widget and its subtree from hit testing.
	AttrHidden
	// AttrDraggable lets the widget be repositioned by drag gestures.
	AttrDraggable
	// AttrDragParent delegates drag gestures to the widget's parent.
	AttrDragParent
	// AttrThrowable continues a drag inertially after release.
	AttrThrowable
	// AttrRaiseOnPress moves the widget to the front of its parent's child
	// order when pressed.
	AttrRaiseOnPress
	// AttrProtectPressLost keeps the widget engaged even when the pointer
	// leaves its bounds while pressed.
	AttrProtectPressLost
	// AttrProtectClickFocus excludes the widget from focus-on-click and
	// blocks the ancestor search through it.
	AttrProtectClickFocus
)

// Has reports whether all bits in want are set.
func (a Attr) Has(want Attr) bool {
	return a&want == want
}

// Event is the context attached to every signal emission. It identifies the
// device that is driving the widget right now, so callbacks never need a
// process-wide "active device" lookup.
type Event struct {
	// Device is the input device whose sample produced this signal.
	Device *Device
	// Point is the device's current contact point. Meaningful for pointer
	// and button devices only.
	Point Point
	// Key is the logical key involved, for keypad devices.
	Key Key
}
