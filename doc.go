// Package sorrel is a polled input-device engine for scene-graph UIs.
//
// Sorrel turns raw samples from pointers, keypads, rotary encoders, and
// discrete buttons into semantic widget events: press, release, click, long
// press (with repeat), drag begin/end, and press-lost. It hit-tests presses
// against a scene graph, moves focus across logical groups, and continues
// drags inertially after release.
//
// # Quick start
//
// Create an engine, a display, and a device, then poll once per frame:
//
//	screen := sorrel.NewScreen(320, 240)
//	engine := sorrel.New(sorrel.Config{})
//
//	button := sorrel.NewObj(screen.Root())
//	button.SetBounds(sorrel.Rect{X: 40, Y: 40, W: 120, H: 32})
//	button.OnSignal = func(sig sorrel.Signal, ev sorrel.Event) {
//		if sig == sorrel.SignalClicked {
//			// ...
//		}
//	}
//
//	engine.Register(sorrel.NewPointer(sorrel.EbitenPointer(), screen))
//
//	// each tick:
//	engine.Poll()
//
// Any type implementing [Widget] can stand in for [Obj]; [Display] and
// [Group] are likewise interfaces with reference implementations ([Screen],
// [BasicGroup]) in this package. [Engine.Run] drives Poll from a
// time.Ticker for applications without a frame loop.
//
// # Re-entrancy
//
// The engine is single-threaded and re-entrant rather than concurrent:
// every signal is delivered synchronously inside [Engine.Poll], and the
// handler may mutate or destroy any widget, including the one being
// delivered to. A handler (or destructor) that invalidates a widget the
// engine may reference must call [Engine.Reset]; the engine then abandons
// the in-flight operation without touching the reference again and resets
// that device's transient state. One device's reset never affects another
// device.
//
// # Devices
//
// A [Device] is a sample-read callback plus per-kind state. Pointer devices
// report absolute coordinates and a press state. Button devices report a
// button index translated through a point table and are processed as
// synthetic pointer presses. Keypad and encoder devices drive a focus
// [Group] instead of the hit tester. Driver adapters for [Ebitengine] are
// included ([EbitenPointer], [EbitenKeypad], [EbitenEncoder]); any polled
// source works, from evdev to memory-mapped registers.
//
// [Ebitengine]: https://ebitengine.org
package sorrel
