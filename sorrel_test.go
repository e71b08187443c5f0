package sorrel

import (
	"testing"
	"time"
)

// --- Shared test fixture ---

// testClock is a manually advanced Clock.
type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// fakeDriver replays scripted samples. When the queue is empty the last
// sample repeats, like a real polled driver holding its state. With batch
// set, queued samples report "more pending" so they drain in one tick.
type fakeDriver struct {
	queue []Sample
	last  Sample
	batch bool
	reads int
}

func (f *fakeDriver) read(*Device) (Sample, bool) {
	f.reads++
	if len(f.queue) == 0 {
		return f.last, false
	}
	s := f.queue[0]
	f.queue = f.queue[1:]
	f.last = s
	return s, f.batch && len(f.queue) > 0
}

func (f *fakeDriver) push(samples ...Sample) {
	f.queue = append(f.queue, samples...)
}

func pr(x, y int) Sample {
	return Sample{Point: Point{x, y}, State: StatePressed}
}

func rel(x, y int) Sample {
	return Sample{Point: Point{x, y}, State: StateReleased}
}

// fixture wires an engine, a screen, and one pointer device to a scripted
// driver, and records every signal emission as "name:Signal".
type fixture struct {
	clock  *testClock
	engine *Engine
	screen *Screen
	drv    *fakeDriver
	dev    *Device
	log    []string
}

func newFixture() *fixture {
	f := &fixture{
		clock:  &testClock{now: time.Unix(1000, 0)},
		screen: NewScreen(320, 240),
		drv:    &fakeDriver{},
	}
	f.engine = New(Config{Clock: f.clock})
	f.dev = NewPointer(f.drv.read, f.screen)
	f.engine.Register(f.dev)
	return f
}

// obj creates a logged widget under parent (defaulting to the screen root).
func (f *fixture) obj(parent *Obj, name string, r Rect) *Obj {
	if parent == nil {
		parent = f.screen.Root()
	}
	o := NewObj(parent)
	o.SetBounds(r)
	o.OnSignal = func(sig Signal, ev Event) {
		f.log = append(f.log, name+":"+sig.String())
	}
	return o
}

func (f *fixture) poll(samples ...Sample) {
	f.drv.push(samples...)
	for range samples {
		f.engine.Poll()
	}
	if len(samples) == 0 {
		f.engine.Poll()
	}
}

func (f *fixture) wantLog(t *testing.T, want ...string) {
	t.Helper()
	if len(f.log) != len(want) {
		t.Fatalf("signal log = %v, want %v", f.log, want)
	}
	for i := range want {
		if f.log[i] != want[i] {
			t.Fatalf("signal log = %v, want %v", f.log, want)
		}
	}
}

// --- Core value types ---

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 100, H: 50}

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"inside", Point{50, 40}, true},
		{"top-left corner", Point{10, 20}, true},
		{"bottom-right corner", Point{110, 70}, true},
		{"outside left", Point{5, 40}, false},
		{"outside right", Point{115, 40}, false},
		{"outside top", Point{50, 15}, false},
		{"outside bottom", Point{50, 75}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.want {
				t.Errorf("Rect.Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestPointArithmetic(t *testing.T) {
	a := Point{10, -4}
	b := Point{3, 5}
	if got := a.Add(b); got != (Point{13, 1}) {
		t.Errorf("Add = %v, want {13 1}", got)
	}
	if got := a.Sub(b); got != (Point{7, -9}) {
		t.Errorf("Sub = %v, want {7 -9}", got)
	}
	if !(Point{}).IsZero() || (Point{0, 1}).IsZero() {
		t.Error("IsZero misreported")
	}
}

func TestAttrHas(t *testing.T) {
	a := AttrClickable | AttrDraggable
	if !a.Has(AttrClickable) || !a.Has(AttrDraggable) {
		t.Error("Has should report set bits")
	}
	if a.Has(AttrHidden) {
		t.Error("Has should not report unset bits")
	}
	if a.Has(AttrClickable | AttrHidden) {
		t.Error("Has requires all bits of the mask")
	}
}

func TestSignalString(t *testing.T) {
	tests := []struct {
		sig  Signal
		want string
	}{
		{SignalPressed, "Pressed"},
		{SignalClicked, "Clicked"},
		{SignalLongPressRepeat, "LongPressRepeat"},
		{SignalDragEnd, "DragEnd"},
		{Signal(200), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.sig.String(); got != tt.want {
			t.Errorf("Signal(%d).String() = %q, want %q", tt.sig, got, tt.want)
		}
	}
}

func TestDeviceKindString(t *testing.T) {
	if KindEncoder.String() != "Encoder" || DeviceKind(99).String() != "Unknown" {
		t.Error("DeviceKind.String misreported")
	}
}
