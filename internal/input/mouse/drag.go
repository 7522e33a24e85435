package mouse

// Drag tracks an in-progress drag-selection. A drag begins on a
// single-click press, extends on motion, and ends on release; double
// and triple clicks never start a drag.
type Drag struct {
	active bool
	origin int
}

// Begin starts a drag from the given byte offset.
func (d *Drag) Begin(origin int) {
	d.active = true
	d.origin = origin
}

// End finishes the drag.
func (d *Drag) End() {
	d.active = false
}

// Active returns true while a drag is in progress.
func (d *Drag) Active() bool {
	return d.active
}

// Origin returns the byte offset where the drag started.
func (d *Drag) Origin() int {
	return d.origin
}
