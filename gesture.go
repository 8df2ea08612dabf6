package main

// The gesture state machine turns a raw stream of pointer events into
// selection clicks, task drags, link creation, and canvas pans. The hosting
// event loop translates its input (a terminal mouse, in this binary) into
// PointerEvents and feeds them in arrival order; each event is fully
// resolved before the next one is handled.

// PointerEvent is one low-level pointer sample in screen coordinates.
type PointerEvent struct {
	ID    int // pointer device id; terminal mice are always 0
	Pos   Point
	Shift bool
	Link  bool // held link modifier
}

type gestureState int

const (
	gestureIdle gestureState = iota
	gesturePanning
	gestureDragging
	gestureLinking
)

// gesture is the in-flight pointer interaction. It begins on pointer down
// and is fully resolved on up/cancel; model references are never kept past
// the gesture that produced them.
type gesture struct {
	state      gestureState
	pointerID  int
	start      Point // screen position at press
	last       Point // latest screen position
	moved      bool  // crossed the drag threshold at some point
	shift      bool
	task       *Task
	grabOffset Point // world offset from the task's corner to the press point
	linkDest   Point // world position of the provisional edge's free end
}

// PointerDown opens a gesture. Presses on empty canvas start a pan and reset
// the selection immediately; presses on a task start a link gesture when
// link mode is active (held modifier or the persistent toggle), otherwise a
// drag.
func (e *Editor) PointerDown(ev PointerEvent) {
	if e.gesture.state != gestureIdle {
		return // one gesture at a time; extra pointers are ignored
	}
	world := e.viewport.ScreenToWorld(ev.Pos)
	target := e.graph.TaskAt(world)

	g := gesture{
		pointerID: ev.ID,
		start:     ev.Pos,
		last:      ev.Pos,
		shift:     ev.Shift,
		task:      target,
	}
	switch {
	case target == nil:
		g.state = gesturePanning
		e.clearSelection()
	case ev.Link || e.linkMode:
		g.state = gestureLinking
		g.linkDest = world
	default:
		g.state = gestureDragging
		g.grabOffset = world.Sub(target.Pos)
	}
	e.gesture = g
}

func (e *Editor) PointerMove(ev PointerEvent) {
	g := &e.gesture
	if g.state == gestureIdle || g.pointerID != ev.ID {
		return
	}
	if !g.moved && SquaredDistance(ev.Pos, g.start) > dragThresholdSq {
		g.moved = true
	}

	switch g.state {
	case gesturePanning:
		e.viewport.ApplyPanDelta(ev.Pos.X-g.last.X, ev.Pos.Y-g.last.Y)
	case gestureDragging:
		if g.moved {
			// Keep the grabbed point under the cursor.
			world := e.viewport.ScreenToWorld(ev.Pos)
			g.task.Pos = world.Sub(g.grabOffset)
		}
	case gestureLinking:
		g.linkDest = e.viewport.ScreenToWorld(ev.Pos)
	}
	g.last = ev.Pos
}

// PointerUp closes the gesture. A drag that crossed the threshold commits a
// taskmoved event; a link released over a different task commits a new
// dependency; anything that never crossed the threshold resolves to a plain
// selection click, no matter which branch it started in.
func (e *Editor) PointerUp(ev PointerEvent) {
	g := e.gesture
	if g.state == gestureIdle || g.pointerID != ev.ID {
		return
	}
	e.gesture = gesture{}

	switch g.state {
	case gesturePanning:
		// Pan deltas were already applied; nothing to commit.
	case gestureDragging:
		if g.moved {
			e.listeners.emitTaskMoved(g.task)
		} else {
			e.clickTask(g.task, g.shift)
		}
	case gestureLinking:
		if !g.moved {
			e.clickTask(g.task, g.shift)
			return
		}
		world := e.viewport.ScreenToWorld(ev.Pos)
		drop := e.graph.TaskAt(world)
		if drop == nil || drop == g.task {
			return // no usable drop target; discard the provisional edge
		}
		if e.graph.FindDependency(g.task, drop) != nil {
			return // already linked; duplicates are deduplicated
		}
		if _, err := e.graph.AddDependency(g.task, drop); err != nil {
			e.logger.Warn("link rejected", "from", g.task.Name, "to", drop.Name, "err", err)
			return
		}
		e.listeners.emitNewDependency()
	}
}

// PointerCancel resolves the active gesture exactly like a pointer up that
// never crossed the movement threshold: nothing is committed.
func (e *Editor) PointerCancel(ev PointerEvent) {
	if e.gesture.state == gestureIdle || e.gesture.pointerID != ev.ID {
		return
	}
	e.gesture.moved = false
	e.PointerUp(ev)
}

// LinkClick creates dependencies without a pointer drag: the first call
// marks the task under the point as the pending source, the second call
// commits an edge from the source to the task under the point. A click on
// empty canvas drops the pending source; a repeat click on the source keeps
// it pending.
func (e *Editor) LinkClick(screen Point) {
	world := e.viewport.ScreenToWorld(screen)
	target := e.graph.TaskAt(world)
	if target == nil {
		e.linkSource = nil
		return
	}
	if e.linkSource == nil || e.linkSource == target {
		e.linkSource = target
		return
	}

	from := e.linkSource
	e.linkSource = nil
	if e.graph.FindDependency(from, target) != nil {
		return
	}
	if _, err := e.graph.AddDependency(from, target); err != nil {
		e.logger.Warn("link rejected", "from", from.Name, "to", target.Name, "err", err)
		return
	}
	e.listeners.emitNewDependency()
}

// PendingLinkSource is the task marked by an unfinished LinkClick pair, for
// status display. Nil when no link is pending.
func (e *Editor) PendingLinkSource() *Task { return e.linkSource }

// clickTask applies the click selection semantics shared by every gesture
// branch: plain click replaces the selection, shift-click toggles membership.
func (e *Editor) clickTask(t *Task, shift bool) {
	if shift {
		e.selection.Toggle(t)
	} else {
		e.selection.Replace(t)
	}
	e.emitSelection()
}

// LinkPreview reports the provisional edge segment while a link gesture is
// in progress past the threshold.
func (e *Editor) LinkPreview() (Segment, bool) {
	g := e.gesture
	if g.state != gestureLinking || !g.moved {
		return Segment{}, false
	}
	return LinkPath(g.task, g.linkDest)
}

// ActiveTask is the task held by the current drag or link gesture, for
// render highlighting. Nil when no such gesture is active.
func (e *Editor) ActiveTask() *Task {
	if e.gesture.state == gestureDragging || e.gesture.state == gestureLinking {
		return e.gesture.task
	}
	return nil
}
