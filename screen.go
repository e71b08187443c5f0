package sorrel

// Screen is a reference implementation of [Display]: three full-size layer
// roots and a pending-redraw region stack. The system and top layers are not
// clickable themselves, so a miss on their children falls through to the
// next root; the active screen is clickable, so a press on empty space still
// engages the screen object.
type Screen struct {
	sys     *Obj
	top     *Obj
	act     *Obj
	invalid []Rect
}

// NewScreen creates a screen of the given pixel size with empty layers.
func NewScreen(w, h int) *Screen {
	s := &Screen{}
	s.sys = s.newLayer(w, h, 0)
	s.top = s.newLayer(w, h, 0)
	s.act = s.newLayer(w, h, AttrClickable)
	return s
}

func (s *Screen) newLayer(w, h int, attr Attr) *Obj {
	o := &Obj{Attr: attr, screen: s}
	o.bounds = Rect{0, 0, w, h}
	return o
}

// System returns the system layer root (cursors, system overlays).
func (s *Screen) System() *Obj { return s.sys }

// Overlay returns the top layer root (popups, toasts).
func (s *Screen) Overlay() *Obj { return s.top }

// Root returns the active screen root.
func (s *Screen) Root() *Obj { return s.act }

// --- Display interface ---

func (s *Screen) SystemLayer() Widget  { return s.sys }
func (s *Screen) TopLayer() Widget     { return s.top }
func (s *Screen) ActiveScreen() Widget { return s.act }

// InvalidCount returns the number of pending redraw regions.
func (s *Screen) InvalidCount() int { return len(s.invalid) }

// PopInvalid discards the n most recently pushed redraw regions.
func (s *Screen) PopInvalid(n int) {
	if n <= 0 {
		return
	}
	if n > len(s.invalid) {
		n = len(s.invalid)
	}
	s.invalid = s.invalid[:len(s.invalid)-n]
}

// Invalidate queues a region for redraw.
func (s *Screen) Invalidate(r Rect) {
	s.invalid = append(s.invalid, r)
}

// Pending returns the queued redraw regions, oldest first. The slice must
// not be mutated.
func (s *Screen) Pending() []Rect { return s.invalid }

// ClearPending empties the redraw queue; renderers call this after a flush.
func (s *Screen) ClearPending() { s.invalid = s.invalid[:0] }
