package sorrel

// editable reports whether w supports in-place editing, via the optional
// [Editable] interface.
func editable(w Widget) bool {
	if w == nil {
		return false
	}
	if ed, ok := w.(Editable); ok {
		return ed.Editable()
	}
	return false
}

// encoderProc decouples rotation from the button. Rotation steps are only
// valid while the button is released: in edit mode each detent becomes a
// directional key for the focused widget, in navigation mode it moves focus.
// The button mirrors the keypad lifecycle, with long press toggling edit
// mode on editable widgets.
func (e *Engine) encoderProc(d *Device, s Sample) {
	g := d.group
	if g == nil {
		return
	}
	ks := d.proc.keys

	if s.State == StateReleased {
		if g.Editing() {
			for i := 0; i < -s.Rotation; i++ {
				g.SendKey(KeyLeft)
			}
			for i := 0; i < s.Rotation; i++ {
				g.SendKey(KeyRight)
			}
		} else {
			for i := 0; i < -s.Rotation; i++ {
				g.FocusPrev()
			}
			for i := 0; i < s.Rotation; i++ {
				g.FocusNext()
			}
		}
	}

	switch {
	// Released -> FirstPress.
	case s.State == StatePressed && ks.lastState == StateReleased:
		d.proc.prTime = e.clock.Now()

	// FirstPress/Held -> Held.
	case s.State == StatePressed && ks.lastState == StatePressed:
		if !d.proc.longPrSent && e.elapsed(d.proc.prTime) > e.cfg.LongPressTime {
			f := g.Focused()
			if editable(f) {
				// Toggling edit mode is meaningless with a single
				// member; fall back to a plain long press.
				if g.Len() > 1 {
					g.SetEditing(!g.Editing())
				} else if f != nil {
					if e.sendKey(d, f, SignalLongPress, KeyEnter) {
						return
					}
				}
			} else if f != nil {
				if e.sendKey(d, f, SignalLongPress, KeyEnter) {
					return
				}
			}
			d.proc.longPrSent = true
		}

	// Held -> Released.
	case s.State == StateReleased && ks.lastState == StatePressed:
		f := g.Focused()
		switch {
		case !editable(f):
			// Non-editable focused widget: a button release is a
			// plain confirm.
			g.SendKey(KeyEnter)
		case g.Editing():
			// Confirm while editing, unless this release belongs to
			// the long press that just toggled edit mode.
			if !d.proc.longPrSent || g.Len() == 1 {
				g.SendKey(KeyEnter)
			}
		case !d.proc.longPrSent:
			// Editable, navigating, short press: enter edit mode.
			g.SetEditing(true)
		}

		if d.proc.resetQuery {
			return
		}
		d.proc.prTime = zeroTime
		d.proc.longPrSent = false
	}

	ks.lastState = s.State
	ks.lastKey = s.Key
}
