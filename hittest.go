package sorrel

// searchWidget finds the frontmost widget under p in the tree rooted at w.
// Children are tried front-to-back before the widget itself, so closer
// siblings occlude farther ones. A widget only qualifies on its own if it is
// clickable and neither it nor any ancestor is hidden. Returns nil on a miss.
func searchWidget(p Point, w Widget) Widget {
	if w == nil || !w.Hit(p) {
		return nil
	}
	for _, child := range w.Children() {
		if found := searchWidget(p, child); found != nil {
			return found
		}
	}
	if !w.Attrs().Has(AttrClickable) {
		return nil
	}
	for i := w; i != nil; i = i.Parent() {
		if i.Attrs().Has(AttrHidden) {
			return nil
		}
	}
	return w
}

// search resolves the widget under the device's contact point, trying the
// display's roots in priority order: system layer, then top layer, then the
// active screen. Overlay layers therefore pre-empt normal widgets.
func (e *Engine) search(d *Device, p Point) Widget {
	if d.disp == nil {
		return nil
	}
	if w := searchWidget(p, d.disp.SystemLayer()); w != nil {
		return w
	}
	if w := searchWidget(p, d.disp.TopLayer()); w != nil {
		return w
	}
	return searchWidget(p, d.disp.ActiveScreen())
}
