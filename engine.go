package sorrel

import (
	"context"
	"time"
)

// Default timing and threshold values, applied by New for zero Config fields.
const (
	DefaultLongPressTime       = 400 * time.Millisecond
	DefaultLongPressRepeatTime = 100 * time.Millisecond
	DefaultDragLimit           = 10
	DefaultThrowDecay          = 20
)

// Config holds the engine's tunable thresholds. The zero value of any field
// selects its default.
type Config struct {
	// LongPressTime is how long a press must be held, without dragging,
	// before SignalLongPress fires.
	LongPressTime time.Duration
	// LongPressRepeatTime is the interval between SignalLongPressRepeat
	// emissions after a long press.
	LongPressRepeatTime time.Duration
	// DragLimit is the cumulative displacement, in pixels on either axis,
	// required before a drag engages.
	DragLimit int
	// ThrowDecay is the percentage (0, 100) by which the throw velocity
	// shrinks each tick after release. Higher values stop sooner.
	ThrowDecay int
	// Clock overrides the time source. Nil selects the system clock.
	Clock Clock
}

// zeroTime is the cleared-timestamp sentinel.
var zeroTime time.Time

// Engine turns raw device samples into widget signals. It is strictly
// single-threaded: Poll must only ever be invoked from one goroutine (or via
// Run), and every widget callback runs to completion inside the invoking
// tick. Callbacks may destroy widgets the engine currently references; they
// must announce that through [Engine.Reset], which the engine honors before
// the next dereference.
type Engine struct {
	cfg     Config
	clock   Clock
	devices []*Device
	active  *Device
}

// New creates an engine, filling in defaults for zero Config fields.
func New(cfg Config) *Engine {
	if cfg.LongPressTime == 0 {
		cfg.LongPressTime = DefaultLongPressTime
	}
	if cfg.LongPressRepeatTime == 0 {
		cfg.LongPressRepeatTime = DefaultLongPressRepeatTime
	}
	if cfg.DragLimit == 0 {
		cfg.DragLimit = DefaultDragLimit
	}
	if cfg.ThrowDecay <= 0 || cfg.ThrowDecay >= 100 {
		cfg.ThrowDecay = DefaultThrowDecay
	}
	clock := cfg.Clock
	if clock == nil {
		clock = systemClock{}
	}
	return &Engine{cfg: cfg, clock: clock}
}

// Register adds a device to the dispatch loop. Devices are polled in
// registration order.
func (e *Engine) Register(d *Device) {
	if d == nil {
		panic("sorrel: cannot register nil device")
	}
	d.lastActivity = e.clock.Now()
	e.devices = append(e.devices, d)
}

// Devices returns the registered devices in poll order. The returned slice
// must not be mutated.
func (e *Engine) Devices() []*Device { return e.devices }

// Active returns the device currently being processed, or nil outside a
// Poll. Signal handlers can also read the device from their Event instead.
func (e *Engine) Active() *Device { return e.active }

// Reset queries a state reset for d, or for every device when d is nil. The
// reset is honored at the next guard point: all widget references and drag
// state of the affected devices are dropped before they are touched again.
// Widget destructors call this to keep the engine from dereferencing a
// dangling reference.
func (e *Engine) Reset(d *Device) {
	if d != nil {
		d.proc.resetQuery = true
		return
	}
	for _, dev := range e.devices {
		dev.proc.resetQuery = true
	}
}

// ResetLongPress restarts d's long-press timing as if the press had just
// begun, allowing a fresh SignalLongPress on the current cycle.
func (e *Engine) ResetLongPress(d *Device) {
	now := e.clock.Now()
	d.proc.longPrSent = false
	d.proc.longPrRepTime = now
	d.proc.prTime = now
}

// Enable enables or disables every registered device of the given kind.
func (e *Engine) Enable(kind DeviceKind, enabled bool) {
	for _, d := range e.devices {
		if d.kind == kind {
			d.disabled = !enabled
		}
	}
}

// IdleTime returns the time elapsed since d last reported a press. With a
// nil device it returns the smallest idle time across all registered
// devices (zero if none are registered).
func (e *Engine) IdleTime(d *Device) time.Duration {
	now := e.clock.Now()
	if d != nil {
		return now.Sub(d.lastActivity)
	}
	var min time.Duration
	for i, dev := range e.devices {
		if t := now.Sub(dev.lastActivity); i == 0 || t < min {
			min = t
		}
	}
	return min
}

// Poll runs one dispatch tick: every enabled device is read at least once,
// its sample routed to the state machine matching its kind, and the reset
// guard applied around every step. A device reporting "more pending" is
// drained completely before the loop advances, so batched samples keep their
// ordering within one tick.
func (e *Engine) Poll() {
	for _, d := range e.devices {
		e.active = d

		// A reset may have been queried between ticks.
		d.handleReset()

		if d.disabled {
			continue
		}
		for {
			sample, more := d.read(d)
			// The engaged widget may have been destroyed inside the
			// read callback itself.
			d.handleReset()

			d.proc.state = sample.State
			if d.proc.state == StatePressed {
				d.lastActivity = e.clock.Now()
			}

			switch d.kind {
			case KindPointer:
				e.pointerProc(d, sample)
			case KindKeypad:
				e.keypadProc(d, sample)
			case KindEncoder:
				e.encoderProc(d, sample)
			case KindButton:
				e.buttonProc(d, sample)
			}
			d.handleReset()

			if !more {
				break
			}
		}
	}
	e.active = nil
}

// Run polls the engine at the given period until ctx is cancelled. It is the
// periodic-scheduler collaborator: a period <= 0 disables periodic dispatch
// and returns immediately, leaving the application to call Poll itself. Run
// must be the engine's only driver while it is active.
func (e *Engine) Run(ctx context.Context, period time.Duration) {
	if period <= 0 {
		return
	}
	ticker := time.NewTicker(period)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			e.Poll()
		}
	}
}

// elapsed returns the time since t, or zero for the zero time.
func (e *Engine) elapsed(t time.Time) time.Duration {
	if t.IsZero() {
		return 0
	}
	return e.clock.Now().Sub(t)
}

// send delivers one signal to w on behalf of d and runs the device's
// feedback callback. It returns true if the handler queried a reset, in
// which case the caller must abandon the rest of its operation without
// touching any widget reference.
func (e *Engine) send(d *Device, w Widget, sig Signal) bool {
	ev := Event{Device: d}
	if st := d.proc.pointer; st != nil {
		ev.Point = st.actPoint
	}
	return e.deliver(d, w, sig, ev)
}

// sendKey is the keypad/encoder variant of send, carrying the key that is
// being processed (which may differ from the stored last key mid-release).
func (e *Engine) sendKey(d *Device, w Widget, sig Signal, key Key) bool {
	return e.deliver(d, w, sig, Event{Device: d, Key: key})
}

func (e *Engine) deliver(d *Device, w Widget, sig Signal, ev Event) bool {
	w.HandleSignal(sig, ev)
	if d.feedback != nil {
		d.feedback(d, sig)
	}
	return d.proc.resetQuery
}
