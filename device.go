package sorrel

import "time"

// DeviceKind selects which state machine processes a device's samples.
type DeviceKind uint8

const (
	KindNone DeviceKind = iota
	// KindPointer is a touchpad, touchscreen, or mouse reporting absolute
	// coordinates plus a press state.
	KindPointer
	// KindKeypad is a keyboard or keypad bound to a focus group.
	KindKeypad
	// KindEncoder is a rotary encoder with an integrated button, bound to a
	// focus group.
	KindEncoder
	// KindButton is a set of discrete hardware buttons, each mapped to a
	// fixed screen point.
	KindButton
)

var kindNames = [...]string{
	KindNone:    "None",
	KindPointer: "Pointer",
	KindKeypad:  "Keypad",
	KindEncoder: "Encoder",
	KindButton:  "Button",
}

func (k DeviceKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Sample is one logical reading from a device driver. Only the fields
// matching the device's kind are consulted.
type Sample struct {
	// Point is the contact position (pointer devices).
	Point Point
	// Key is the reported key (keypad devices).
	Key Key
	// Button is the index into the device's button point table (button
	// devices).
	Button int
	// Rotation is the number of detents turned since the previous read,
	// negative for counter-clockwise (encoder devices).
	Rotation int
	// State is the press/contact state.
	State PressState
}

// ReadFunc produces one sample per call. The boolean result reports whether
// the driver has more buffered samples; the dispatch loop keeps reading the
// same device within the current tick until it returns false, so a driver can
// replay a whole touch trace without losing ordering.
//
// A ReadFunc may call back into the engine (including Engine.Reset); the
// dispatch loop re-checks the reset flag immediately after every read.
type ReadFunc func(d *Device) (Sample, bool)

// FeedbackFunc is invoked after every signal emission made on behalf of a
// device, e.g. to click a piezo buzzer.
type FeedbackFunc func(d *Device, sig Signal)

// pointerData is the per-device state used by pointer and button devices.
type pointerData struct {
	actPoint  Point // current contact point
	lastPoint Point // contact point of the previous tick
	vect      Point // per-tick displacement
	dragSum   Point // cumulative displacement since the last fresh press
	throwVect Point // low-pass-filtered velocity estimate

	dragLimitOut bool // drag threshold crossed; latched until a fresh press
	dragInProg   bool // target has really moved this press cycle

	actObj  Widget // engaged widget; non-owning
	lastObj Widget // retained across release for throw continuation

	waitUntilRelease bool
}

// keyData is the per-device state used by keypad and encoder devices.
type keyData struct {
	lastState PressState
	lastKey   Key
}

// procState is the processing state common to every device kind. Exactly one
// of pointer/keys is non-nil, matching the device kind; the engine never
// touches the variant that does not belong to the kind.
type procState struct {
	state      PressState
	resetQuery bool

	prTime        time.Time // first press of the current cycle
	longPrRepTime time.Time // last long-press (repeat) emission
	longPrSent    bool

	pointer *pointerData
	keys    *keyData
}

// Device is one registered input source. Create it with one of the New*
// constructors and hand it to [Engine.Register]; the engine polls it every
// tick. A Device is never destroyed by the engine.
type Device struct {
	kind DeviceKind
	read ReadFunc
	disp Display

	group     Group    // keypad/encoder destination
	btnPoints []Point  // button-index -> screen point table
	cursor    Widget   // optional pointer cursor widget
	feedback  FeedbackFunc

	disabled     bool
	lastActivity time.Time

	proc procState
}

func newDevice(kind DeviceKind, read ReadFunc) *Device {
	if read == nil {
		panic("sorrel: nil read function")
	}
	d := &Device{kind: kind, read: read}
	switch kind {
	case KindPointer, KindButton:
		d.proc.pointer = &pointerData{}
	case KindKeypad, KindEncoder:
		d.proc.keys = &keyData{}
	default:
		panic("sorrel: unknown device kind")
	}
	return d
}

// NewPointer creates a pointer device whose samples are hit-tested against
// the given display's layer roots.
func NewPointer(read ReadFunc, disp Display) *Device {
	d := newDevice(KindPointer, read)
	d.disp = disp
	return d
}

// NewButton creates a discrete-button device. Each sample's Button index is
// translated to a screen point through the points table and then processed
// like a pointer press at that point.
func NewButton(read ReadFunc, disp Display, points []Point) *Device {
	d := newDevice(KindButton, read)
	d.disp = disp
	d.btnPoints = points
	return d
}

// NewKeypad creates a keypad device driving the given focus group.
func NewKeypad(read ReadFunc, group Group) *Device {
	d := newDevice(KindKeypad, read)
	d.group = group
	return d
}

// NewEncoder creates a rotary-encoder device driving the given focus group.
func NewEncoder(read ReadFunc, group Group) *Device {
	d := newDevice(KindEncoder, read)
	d.group = group
	return d
}

// Kind returns the device kind.
func (d *Device) Kind() DeviceKind { return d.kind }

// SetGroup binds a focus group. Only meaningful for keypad and encoder
// devices; ignored otherwise.
func (d *Device) SetGroup(g Group) {
	if d.kind == KindKeypad || d.kind == KindEncoder {
		d.group = g
	}
}

// SetButtonPoints replaces the button-to-point table of a button device.
func (d *Device) SetButtonPoints(points []Point) {
	if d.kind == KindButton {
		d.btnPoints = points
	}
}

// SetCursor binds a cursor widget to a pointer device. The engine moves the
// cursor to the contact point whenever it changes. The application is
// responsible for parenting the cursor into an overlay layer.
func (d *Device) SetCursor(w Widget) {
	if d.kind != KindPointer {
		return
	}
	d.cursor = w
	if w != nil {
		w.SetPosition(d.proc.pointer.actPoint)
	}
}

// SetFeedback registers a feedback callback invoked after every signal
// emission for this device. Pass nil to remove it.
func (d *Device) SetFeedback(fn FeedbackFunc) { d.feedback = fn }

// Feedback returns the registered feedback callback, or nil.
func (d *Device) Feedback() FeedbackFunc { return d.feedback }

// SetEnabled enables or disables processing of this device's samples.
func (d *Device) SetEnabled(enabled bool) { d.disabled = !enabled }

// Enabled reports whether the device is processed by the dispatch loop.
func (d *Device) Enabled() bool { return !d.disabled }

// Point returns the device's current contact point. For non-pointer kinds it
// returns (-1, -1).
func (d *Device) Point() Point {
	if d.proc.pointer == nil {
		return Point{-1, -1}
	}
	return d.proc.pointer.actPoint
}

// Key returns the last key held by a keypad device, KeyNone otherwise.
func (d *Device) Key() Key {
	if d.kind != KindKeypad {
		return KeyNone
	}
	return d.proc.keys.lastKey
}

// Vector returns the per-tick displacement of a pointer or button device.
func (d *Device) Vector() Point {
	if d.proc.pointer == nil {
		return Point{}
	}
	return d.proc.pointer.vect
}

// Dragging reports whether a drag (or its throw continuation) is in progress
// on a pointer or button device.
func (d *Device) Dragging() bool {
	return d.proc.pointer != nil && d.proc.pointer.dragInProg
}

// Engaged returns the widget currently under press, or nil.
func (d *Device) Engaged() Widget {
	if d.proc.pointer == nil {
		return nil
	}
	return d.proc.pointer.actObj
}

// WaitRelease makes a pointer or button device ignore everything until the
// next release. The release that ends the wait emits no events.
func (d *Device) WaitRelease() {
	if d.proc.pointer != nil {
		d.proc.pointer.waitUntilRelease = true
	}
}

// handleReset normalizes all transient state if a reset was queried, then
// clears the flag. Called at every guard point of the dispatch loop; any
// in-flight operation has already been abandoned by the time this runs.
func (d *Device) handleReset() {
	if !d.proc.resetQuery {
		return
	}
	d.proc.longPrSent = false
	d.proc.prTime = time.Time{}
	d.proc.longPrRepTime = time.Time{}
	if st := d.proc.pointer; st != nil {
		st.actObj = nil
		st.lastObj = nil
		st.dragLimitOut = false
		st.dragInProg = false
		st.dragSum = Point{}
		st.throwVect = Point{}
	}
	if ks := d.proc.keys; ks != nil {
		ks.lastState = StateReleased
		ks.lastKey = KeyNone
	}
	d.proc.resetQuery = false
}
