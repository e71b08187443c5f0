package sorrel

import (
	"fmt"
	"testing"
	"time"
)

// keyFixture wires an engine, a screen, a focus group, and one keypad or
// encoder device to a scripted driver.
type keyFixture struct {
	clock  *testClock
	engine *Engine
	screen *Screen
	g      *BasicGroup
	drv    *fakeDriver
	dev    *Device
	log    []string
}

func newKeyFixture(kind DeviceKind) *keyFixture {
	f := &keyFixture{
		clock:  &testClock{now: time.Unix(1000, 0)},
		screen: NewScreen(320, 240),
		g:      NewGroup(),
		drv:    &fakeDriver{},
	}
	f.engine = New(Config{Clock: f.clock})
	switch kind {
	case KindKeypad:
		f.dev = NewKeypad(f.drv.read, f.g)
	case KindEncoder:
		f.dev = NewEncoder(f.drv.read, f.g)
	}
	f.engine.Register(f.dev)
	return f
}

// member adds a logged group member. Signals log as "name:Signal", raw keys
// as "name:key=<n>".
func (f *keyFixture) member(name string) *Obj {
	o := NewObj(f.screen.Root())
	o.SetBounds(Rect{0, 0, 10, 10})
	o.OnSignal = func(sig Signal, ev Event) {
		f.log = append(f.log, name+":"+sig.String())
	}
	o.OnKey = func(k Key) {
		f.log = append(f.log, fmt.Sprintf("%s:key=%d", name, k))
	}
	f.g.Add(o)
	return o
}

func (f *keyFixture) poll(samples ...Sample) {
	f.drv.push(samples...)
	for range samples {
		f.engine.Poll()
	}
	if len(samples) == 0 {
		f.engine.Poll()
	}
}

func (f *keyFixture) wantLog(t *testing.T, want ...string) {
	t.Helper()
	if len(f.log) != len(want) {
		t.Fatalf("log = %v, want %v", f.log, want)
	}
	for i := range want {
		if f.log[i] != want[i] {
			t.Fatalf("log = %v, want %v", f.log, want)
		}
	}
}

func kpr(k Key) Sample { return Sample{Key: k, State: StatePressed} }

func krel() Sample { return Sample{State: StateReleased} }

func TestKeypadNextMovesFocus(t *testing.T) {
	f := newKeyFixture(KindKeypad)
	a := f.member("a")
	b := f.member("b")
	f.member("c")
	f.g.SetEditing(true)

	f.poll(kpr(KeyNext), krel())

	if f.g.Focused() != b {
		t.Errorf("focus = %v, want the second member", f.g.Focused())
	}
	if f.g.Editing() {
		t.Error("focus navigation must force edit mode off")
	}
	f.wantLog(t)
	_ = a
}

func TestKeypadPrevWrapsAround(t *testing.T) {
	f := newKeyFixture(KindKeypad)
	f.member("a")
	f.member("b")
	c := f.member("c")

	f.poll(kpr(KeyPrev), krel())

	if f.g.Focused() != c {
		t.Errorf("focus = %v, want the last member", f.g.Focused())
	}
}

func TestKeypadEnterClickLifecycle(t *testing.T) {
	f := newKeyFixture(KindKeypad)
	a := f.member("a")
	var keys []Key
	base := a.OnSignal
	a.OnSignal = func(sig Signal, ev Event) {
		keys = append(keys, ev.Key)
		base(sig, ev)
	}

	f.poll(kpr(KeyEnter), krel())

	f.wantLog(t, "a:Pressed", "a:Released", "a:Clicked")
	for _, k := range keys {
		if k != KeyEnter {
			t.Fatalf("event keys = %v, want KeyEnter throughout", keys)
		}
	}
}

func TestKeypadEnterLongPress(t *testing.T) {
	f := newKeyFixture(KindKeypad)
	f.member("a")

	f.poll(kpr(KeyEnter))
	f.clock.Advance(DefaultLongPressTime + time.Millisecond)
	f.poll()
	f.wantLog(t, "a:Pressed", "a:LongPress")

	// The release that ends a long press confirms nothing.
	f.log = nil
	f.poll(krel())
	f.wantLog(t)
}

// A callback may rewrite the key reported with the release sample; the
// release applies to the key that was actually held.
func TestKeypadReleaseUsesHeldKey(t *testing.T) {
	f := newKeyFixture(KindKeypad)
	f.member("a")
	b := f.member("b")

	f.poll(kpr(KeyNext), Sample{Key: KeyEnter, State: StateReleased})

	if f.g.Focused() != b {
		t.Errorf("focus = %v, want the next member (held key wins)", f.g.Focused())
	}
	f.wantLog(t)
}

func TestKeypadRawKeyForwarded(t *testing.T) {
	f := newKeyFixture(KindKeypad)
	f.member("a")

	f.poll(kpr(KeyDown), krel())

	f.wantLog(t, fmt.Sprintf("a:key=%d", KeyDown))
}

func TestKeypadWithoutGroup(t *testing.T) {
	f := newKeyFixture(KindKeypad)
	f.dev.SetGroup(nil)

	// Must not panic or emit anything.
	f.poll(kpr(KeyEnter), krel())
	f.wantLog(t)
}

func TestKeypadResetDuringRelease(t *testing.T) {
	f := newKeyFixture(KindKeypad)
	f.member("a")
	f.member("b")
	f.g.FocusCb = func(g *BasicGroup) {
		f.engine.Reset(f.dev)
	}

	f.poll(kpr(KeyNext), krel())

	// The reset was honored at the tick boundary: key state is back to
	// defaults and the next cycle starts clean.
	if f.dev.Key() != KeyNone {
		t.Errorf("Key() = %d, want KeyNone after reset", f.dev.Key())
	}
	f.g.FocusCb = nil
	f.log = nil
	f.poll(kpr(KeyEnter), krel())
	f.wantLog(t, "b:Pressed", "b:Released", "b:Clicked")
}
