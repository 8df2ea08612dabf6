package main

// anchorMargin keeps edge endpoints just outside a task's rendered border
// instead of exactly on it.
const anchorMargin = 8.0

// DependencyPath computes the visible segment for a dependency: the straight
// line between the two box centers, clipped to each box expanded by
// anchorMargin. A degenerate configuration hides the edge rather than
// reporting an error.
func DependencyPath(d *Dependency) (Segment, bool) {
	fromBox := d.From.Box().Expand(anchorMargin)
	toBox := d.To.Box().Expand(anchorMargin)
	a := fromBox.Center()
	b := toBox.Center()

	start, ok := IntersectLineBox(a, b, fromBox)
	if !ok {
		return Segment{}, false
	}
	end, ok := IntersectLineBox(b, a, toBox)
	if !ok {
		return Segment{}, false
	}
	return Segment{From: start, To: end}, true
}

// LinkPath computes the segment for a link gesture in progress: anchored at
// the source box, ending at the raw pointer position instead of a committed
// successor.
func LinkPath(from *Task, dest Point) (Segment, bool) {
	fromBox := from.Box().Expand(anchorMargin)
	start, ok := IntersectLineBox(fromBox.Center(), dest, fromBox)
	if !ok {
		return Segment{}, false
	}
	return Segment{From: start, To: dest}, true
}
