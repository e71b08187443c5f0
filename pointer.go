package sorrel

// pointerProc routes one pointer sample: move the bound cursor, record the
// contact point, then drive the press or release path.
func (e *Engine) pointerProc(d *Device, s Sample) {
	st := d.proc.pointer

	if d.cursor != nil && st.lastPoint != s.Point {
		d.cursor.SetPosition(s.Point)
	}

	st.actPoint = s.Point

	if d.proc.state == StatePressed {
		e.processPress(d)
	} else {
		e.processRelease(d)
	}

	st.lastPoint = st.actPoint
}

// buttonProc synthesizes a pointer sample from a discrete button id through
// the device's point table. The same point still pressed is a continued
// press; any change (new id, or released) goes through the release path.
func (e *Engine) buttonProc(d *Device, s Sample) {
	if s.Button < 0 || s.Button >= len(d.btnPoints) {
		return
	}
	st := d.proc.pointer
	st.actPoint = d.btnPoints[s.Button]

	if st.lastPoint == st.actPoint && s.State == StatePressed {
		e.processPress(d)
	} else {
		e.processRelease(d)
	}

	st.lastPoint = st.actPoint
}

// processPress drives the pressed half of the pointer state machine: resolve
// the engaged widget, update the throw velocity filter, run the drag engine,
// and evaluate long-press timing. Every emission is followed by a reset
// check; a queried reset abandons the rest of the step.
func (e *Engine) processPress(d *Device) {
	st := d.proc.pointer

	if st.waitUntilRelease {
		return
	}

	// Keep a dragged or press-lost-protected widget engaged; otherwise
	// re-resolve the target under the current point.
	target := st.actObj
	if st.actObj == nil ||
		(!st.dragInProg && !st.actObj.Attrs().Has(AttrProtectPressLost)) {
		target = e.search(d, st.actPoint)
	}

	if target != st.actObj {
		st.lastPoint = st.actPoint

		// The previous widget lost the press.
		if st.actObj != nil {
			if e.send(d, st.actObj, SignalPressLost) {
				return
			}
		}

		st.actObj = target
		st.lastObj = target

		if target != nil {
			d.proc.prTime = e.clock.Now()
			d.proc.longPrSent = false
			st.dragLimitOut = false
			st.dragInProg = false
			st.dragSum = Point{}
			st.vect = Point{}

			// Raise the outermost raise-on-press ancestor.
			var top Widget
			for i := target; i != nil; i = i.Parent() {
				if i.Attrs().Has(AttrRaiseOnPress) {
					top = i
				}
			}
			if top != nil {
				top.MoveToFront()
			}

			if e.send(d, target, SignalPressed) {
				return
			}
		}
	}

	st.vect = st.actPoint.Sub(st.lastPoint)

	// One-pole low-pass velocity estimate for the throw: keep 5/8 of the
	// previous value (nudged one step toward zero so it always reaches
	// exactly zero) and blend in 4/8 of the fresh displacement.
	st.throwVect.X = (st.throwVect.X * 5) >> 3
	st.throwVect.Y = (st.throwVect.Y * 5) >> 3
	if st.throwVect.X < 0 {
		st.throwVect.X++
	} else if st.throwVect.X > 0 {
		st.throwVect.X--
	}
	if st.throwVect.Y < 0 {
		st.throwVect.Y++
	} else if st.throwVect.Y > 0 {
		st.throwVect.Y--
	}
	st.throwVect.X += (st.vect.X * 4) >> 3
	st.throwVect.Y += (st.vect.Y * 4) >> 3

	if st.actObj == nil {
		return
	}

	if e.send(d, st.actObj, SignalPressing) {
		return
	}

	e.drag(d)
	if d.proc.resetQuery {
		return
	}

	// Long press fires once, only while no drag is active.
	if !st.dragInProg && !d.proc.longPrSent {
		if e.elapsed(d.proc.prTime) > e.cfg.LongPressTime {
			if e.send(d, st.actObj, SignalLongPress) {
				return
			}
			d.proc.longPrSent = true
			d.proc.longPrRepTime = e.clock.Now()
		}
	}
	if !st.dragInProg && d.proc.longPrSent {
		if e.elapsed(d.proc.longPrRepTime) > e.cfg.LongPressRepeatTime {
			if e.send(d, st.actObj, SignalLongPressRepeat) {
				return
			}
			d.proc.longPrRepTime = e.clock.Now()
		}
	}
}

// processRelease drives the released half: released/clicked emission,
// focus-on-click re-targeting, and the hand-off to the throw engine.
func (e *Engine) processRelease(d *Device) {
	st := d.proc.pointer

	// This release is the one a WaitRelease call was waiting for; swallow
	// it entirely.
	if st.waitUntilRelease {
		st.actObj = nil
		st.lastObj = nil
		d.proc.prTime = zeroTime
		d.proc.longPrRepTime = zeroTime
		st.waitUntilRelease = false
	}

	if st.actObj != nil {
		if st.actObj.Attrs().Has(AttrProtectPressLost) {
			// The widget stayed engaged without re-hit-testing, so
			// check now whether the release actually happened on it.
			on := searchWidget(st.actPoint, st.actObj)
			if on == st.actObj {
				if e.releasedAndClicked(d) {
					return
				}
			} else {
				if e.send(d, st.actObj, SignalPressLost) {
					return
				}
			}
		} else {
			if e.releasedAndClicked(d) {
				return
			}
		}

		e.clickFocus(d, st.actObj)
		if d.proc.resetQuery {
			return
		}

		st.actObj = nil
		d.proc.prTime = zeroTime
		d.proc.longPrRepTime = zeroTime
	}

	if st.lastObj != nil && !d.proc.resetQuery {
		e.dragThrow(d)
	}
}

// releasedAndClicked emits SignalReleased, then SignalClicked when neither a
// long press nor a drag occurred this cycle. Reports whether a reset was
// queried.
func (e *Engine) releasedAndClicked(d *Device) bool {
	st := d.proc.pointer
	if e.send(d, st.actObj, SignalReleased) {
		return true
	}
	if !d.proc.longPrSent && !st.dragInProg {
		if e.send(d, st.actObj, SignalClicked) {
			return true
		}
	}
	return false
}

// clickFocus leaves edit mode on the released widget's group and moves focus
// to the nearest group-associated ancestor, honoring click-focus protection
// on the widget itself and on every ancestor crossed by the walk.
func (e *Engine) clickFocus(d *Device, w Widget) {
	// Edit mode is a keypad/encoder notion; a pointer release always ends it.
	if g := w.Group(); g != nil && g.Editing() {
		g.SetEditing(false)
	}

	if w.Attrs().Has(AttrProtectClickFocus) {
		return
	}
	g := w.Group()
	target := w
	for g == nil {
		target = target.Parent()
		if target == nil {
			break
		}
		if target.Attrs().Has(AttrProtectClickFocus) {
			target = nil
			break
		}
		g = target.Group()
	}
	if g != nil && target != nil && g.ClickFocus() {
		g.Focus(target)
	}
}
