package sorrel

// keypadProc drives a group-attached keypad through its three states:
// released, first press, held. Navigation keys act on release; KeyEnter maps
// to the pressed/long-press/released/clicked lifecycle of the focused
// widget; any other key is forwarded raw into the group.
func (e *Engine) keypadProc(d *Device, s Sample) {
	g := d.group
	if g == nil {
		return
	}
	ks := d.proc.keys
	key := s.Key

	switch {
	// Released -> FirstPress.
	case s.State == StatePressed && ks.lastState == StateReleased:
		d.proc.prTime = e.clock.Now()
		if key == KeyEnter {
			if f := g.Focused(); f != nil {
				if e.sendKey(d, f, SignalPressed, key) {
					return
				}
			}
		}

	// FirstPress/Held -> Held.
	case s.State == StatePressed && ks.lastState == StatePressed:
		if key == KeyEnter && !d.proc.longPrSent &&
			e.elapsed(d.proc.prTime) > e.cfg.LongPressTime {
			if f := g.Focused(); f != nil {
				if e.sendKey(d, f, SignalLongPress, key) {
					return
				}
				d.proc.longPrSent = true
			}
		}

	// Held -> Released.
	case s.State == StateReleased && ks.lastState == StatePressed:
		// A callback may have rewritten the reported key; the release
		// always applies to the key that was actually held.
		key = ks.lastKey

		// Edit mode is an encoder notion; leave it before moving focus.
		if key == KeyNext || key == KeyPrev {
			g.SetEditing(false)
		}

		switch key {
		case KeyNext:
			g.FocusNext()
		case KeyPrev:
			g.FocusPrev()
		case KeyEnter:
			if !d.proc.longPrSent {
				if f := g.Focused(); f != nil {
					if e.sendKey(d, f, SignalReleased, key) {
						return
					}
					if e.sendKey(d, f, SignalClicked, key) {
						return
					}
				}
			}
		default:
			g.SendKey(key)
		}

		// The focus or key callbacks may have destroyed the widget.
		if d.proc.resetQuery {
			return
		}
		d.proc.prTime = zeroTime
		d.proc.longPrSent = false
	}

	ks.lastState = s.State
	ks.lastKey = key
}
