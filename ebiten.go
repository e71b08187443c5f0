package sorrel

import "github.com/hajimehoshi/ebiten/v2"

// EbitenPointer returns a ReadFunc that samples the [Ebitengine] mouse
// cursor and primary button. An active touch takes priority over the mouse,
// so the same device works on desktop and touch screens.
//
// [Ebitengine]: https://ebitengine.org
func EbitenPointer() ReadFunc {
	var touchIDs []ebiten.TouchID
	return func(*Device) (Sample, bool) {
		touchIDs = ebiten.AppendTouchIDs(touchIDs[:0])
		if len(touchIDs) > 0 {
			x, y := ebiten.TouchPosition(touchIDs[0])
			return Sample{Point: Point{x, y}, State: StatePressed}, false
		}
		x, y := ebiten.CursorPosition()
		s := Sample{Point: Point{x, y}}
		if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			s.State = StatePressed
		}
		return s, false
	}
}

// ebitenKeyMap translates held ebiten keys to the group navigation
// vocabulary, in priority order.
var ebitenKeyMap = []struct {
	src ebiten.Key
	dst Key
}{
	{ebiten.KeyEnter, KeyEnter},
	{ebiten.KeyTab, KeyNext},
	{ebiten.KeyPageDown, KeyNext},
	{ebiten.KeyPageUp, KeyPrev},
	{ebiten.KeyArrowUp, KeyUp},
	{ebiten.KeyArrowDown, KeyDown},
	{ebiten.KeyArrowLeft, KeyLeft},
	{ebiten.KeyArrowRight, KeyRight},
	{ebiten.KeyEscape, KeyEsc},
}

// EbitenKeypad returns a ReadFunc that maps the ebiten keyboard to group
// navigation keys: Tab / Shift+Tab (and PageDown / PageUp) move focus, Enter
// confirms, arrows and Escape pass through.
func EbitenKeypad() ReadFunc {
	var held Key
	return func(*Device) (Sample, bool) {
		for _, m := range ebitenKeyMap {
			if !ebiten.IsKeyPressed(m.src) {
				continue
			}
			key := m.dst
			if key == KeyNext && shiftDown() {
				key = KeyPrev
			}
			held = key
			return Sample{Key: key, State: StatePressed}, false
		}
		return Sample{Key: held, State: StateReleased}, false
	}
}

func shiftDown() bool {
	return ebiten.IsKeyPressed(ebiten.KeyShift) ||
		ebiten.IsKeyPressed(ebiten.KeyShiftLeft) ||
		ebiten.IsKeyPressed(ebiten.KeyShiftRight)
}

// EbitenEncoder returns a ReadFunc that treats the mouse wheel as encoder
// rotation (one detent per wheel unit, fractional deltas accumulated) and
// the given key as the encoder button.
func EbitenEncoder(button ebiten.Key) ReadFunc {
	var acc float64
	return func(*Device) (Sample, bool) {
		_, wy := ebiten.Wheel()
		acc += wy
		steps := int(acc)
		acc -= float64(steps)
		s := Sample{Rotation: steps}
		if ebiten.IsKeyPressed(button) {
			s.State = StatePressed
		}
		return s, false
	}
}
