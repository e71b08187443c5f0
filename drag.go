package sorrel

// dragTarget resolves the widget a drag actually applies to by following
// drag-parent delegation up the ancestor chain.
func dragTarget(w Widget) Widget {
	for w != nil && w.Attrs().Has(AttrDragParent) {
		w = w.Parent()
	}
	return w
}

// drag accumulates per-tick displacement against the engaged widget and,
// once the drag limit is out, repositions the drag target. The limit is
// latched: a single crossing keeps the drag engaged until the next fresh
// press. A reposition that does not actually move the target rolls back the
// redraw regions it pushed, so constrained drags cost no redraw work.
func (e *Engine) drag(d *Device) {
	st := d.proc.pointer

	target := dragTarget(st.actObj)
	if target == nil || !target.Attrs().Has(AttrDraggable) {
		return
	}

	st.dragSum.X += st.vect.X
	st.dragSum.Y += st.vect.Y

	if !st.dragLimitOut {
		if abs(st.dragSum.X) >= e.cfg.DragLimit || abs(st.dragSum.Y) >= e.cfg.DragLimit {
			st.dragLimitOut = true
		}
	}
	if !st.dragLimitOut || st.vect.IsZero() {
		return
	}

	prev := target.Bounds().Pos()
	parent := target.Parent()
	var prevParentW, prevParentH int
	if parent != nil {
		pb := parent.Bounds()
		prevParentW, prevParentH = pb.W, pb.H
	}
	invBefore := 0
	if d.disp != nil {
		invBefore = d.disp.InvalidCount()
	}

	target.SetPosition(prev.Add(st.vect))

	if target.Bounds().Pos() != prev {
		// First real displacement: the drag has begun.
		if !st.dragInProg {
			if e.send(d, target, SignalDragBegin) {
				return
			}
		}
		st.dragInProg = true
		return
	}

	// The target did not move. If the parent was resized by the attempt
	// (e.g. a fitting container shrinking around it) the redraw is real;
	// otherwise drop the regions the no-op reposition queued.
	if parent != nil {
		pb := parent.Bounds()
		if pb.W != prevParentW || pb.H != prevParentH {
			return
		}
	}
	if d.disp != nil {
		d.disp.PopInvalid(d.disp.InvalidCount() - invBefore)
	}
}

// dragThrow continues a drag inertially after release, decaying the filtered
// velocity by ThrowDecay percent per tick. It runs once per tick until the
// vector reaches zero on both axes or the target stops moving, then emits
// SignalDragEnd and clears the drag state.
func (e *Engine) dragThrow(d *Device) {
	st := d.proc.pointer

	if !st.dragInProg {
		return
	}

	target := dragTarget(st.lastObj)
	if target == nil {
		return
	}
	if !target.Attrs().Has(AttrThrowable) {
		st.dragInProg = false
		e.send(d, target, SignalDragEnd)
		return
	}

	st.throwVect.X = st.throwVect.X * (100 - e.cfg.ThrowDecay) / 100
	st.throwVect.Y = st.throwVect.Y * (100 - e.cfg.ThrowDecay) / 100

	if st.throwVect.IsZero() {
		e.endThrow(d, target)
		return
	}

	prev := target.Bounds().Pos()
	target.SetPosition(prev.Add(st.throwVect))
	now := target.Bounds().Pos()

	// Stop when neither axis can advance any further: the axis vector is
	// zero or the position refused to change (constrained target).
	if (now.X == prev.X || st.throwVect.X == 0) &&
		(now.Y == prev.Y || st.throwVect.Y == 0) {
		e.endThrow(d, target)
	}
}

// endThrow terminates the inertial motion: drag state and throw accumulators
// are cleared and the target receives SignalDragEnd.
func (e *Engine) endThrow(d *Device, target Widget) {
	st := d.proc.pointer
	st.dragInProg = false
	st.vect = Point{}
	st.throwVect = Point{}
	e.send(d, target, SignalDragEnd)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
