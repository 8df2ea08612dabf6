package main

import "log/slog"

// TaskSpec describes a task to create. A nil Pos centers the new task's box
// on the current view center.
type TaskSpec struct {
	Name   string
	Pos    *Point
	Status Status
}

// Editor owns all the mutable state of one open graph: the task graph, the
// pan/zoom transform, the selection, the listener registry, and the
// in-flight pointer gesture. Nothing here lives in package globals so the
// host can open as many editors as it has buffers.
type Editor struct {
	graph      *Graph
	viewport   *Viewport
	selection  *Selection
	listeners  listenerRegistry
	gesture    gesture
	linkMode   bool
	linkSource *Task
	logger     *slog.Logger
}

func NewEditor(logger *slog.Logger) *Editor {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Editor{
		graph:     NewGraph(),
		viewport:  NewViewport(),
		selection: NewSelection(),
		logger:    logger,
	}
}

func (e *Editor) Graph() *Graph       { return e.graph }
func (e *Editor) Viewport() *Viewport { return e.viewport }

// SetLinkMode toggles the persistent link mode, where a plain press on a
// task starts a link gesture without holding the modifier.
func (e *Editor) SetLinkMode(on bool) { e.linkMode = on }
func (e *Editor) LinkMode() bool      { return e.linkMode }

// SelectedTasks returns the current selection in render order.
func (e *Editor) SelectedTasks() []*Task {
	return e.selection.Ordered(e.graph.Tasks())
}

func (e *Editor) IsSelected(t *Task) bool { return e.selection.Contains(t) }

// AddTask creates a task from spec and appends it to the graph, so it renders
// on top of everything already present.
func (e *Editor) AddTask(spec TaskSpec) *Task {
	pos := Point{}
	if spec.Pos != nil {
		pos = *spec.Pos
	}
	t := e.graph.AddTask(spec.Name, pos, spec.Status)
	if spec.Pos == nil {
		center := e.viewport.ViewCenterWorld()
		size := t.Box().Size
		t.Pos = Point{center.X - size.X/2, center.Y - size.Y/2}
	}
	return t
}

// DeleteSelected removes every selected task and all edges touching it, then
// empties the selection.
func (e *Editor) DeleteSelected() {
	victims := e.SelectedTasks()
	if len(victims) == 0 {
		return
	}
	for _, t := range victims {
		// Abort any interaction holding a reference to the victim.
		if e.gesture.task == t {
			e.gesture = gesture{}
		}
		if e.linkSource == t {
			e.linkSource = nil
		}
		e.graph.DeleteTask(t)
		e.selection.Remove(t)
	}
	e.emitSelection()
}

// CompleteSelected marks every selected task completed. Already-completed
// tasks stay completed.
func (e *Editor) CompleteSelected() {
	for _, t := range e.SelectedTasks() {
		t.Status = StatusCompleted
	}
}

func (e *Editor) SelectAll() {
	for _, t := range e.graph.Tasks() {
		e.selection.Add(t)
	}
	e.emitSelection()
}

// ClearGraph drops every task and edge, aborts any in-flight gesture, and
// empties the selection.
func (e *Editor) ClearGraph() {
	e.gesture = gesture{}
	e.linkSource = nil
	e.graph.Clear()
	e.clearSelection()
}

// clearSelection empties the selection, notifying listeners only when there
// was something to clear.
func (e *Editor) clearSelection() {
	if e.selection.Len() == 0 {
		return
	}
	e.selection.Clear()
	e.emitSelection()
}

func (e *Editor) emitSelection() {
	e.listeners.emitSelectionChanged(e.SelectedTasks())
}
