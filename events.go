package main

// Observable editor events. External collaborators subscribe with the On*
// methods on Editor and may drop their registration through the returned
// handle.

type eventType int

const (
	eventSelectionChanged eventType = iota
	eventTaskMoved
	eventNewDependency
)

type selectionListener struct {
	id uint32
	fn func([]*Task)
}

type taskListener struct {
	id uint32
	fn func(*Task)
}

type dependencyListener struct {
	id uint32
	fn func()
}

type listenerRegistry struct {
	selectionChanged []selectionListener
	taskMoved        []taskListener
	newDependency    []dependencyListener
	nextID           uint32
}

// ListenerHandle allows removing a registered callback.
type ListenerHandle struct {
	id    uint32
	reg   *listenerRegistry
	event eventType
}

// Remove unregisters the callback so it no longer fires.
func (h ListenerHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case eventSelectionChanged:
		h.reg.selectionChanged = removeSelectionListener(h.reg.selectionChanged, h.id)
	case eventTaskMoved:
		h.reg.taskMoved = removeTaskListener(h.reg.taskMoved, h.id)
	case eventNewDependency:
		h.reg.newDependency = removeDependencyListener(h.reg.newDependency, h.id)
	}
}

func removeSelectionListener(s []selectionListener, id uint32) []selectionListener {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = selectionListener{}
			return s[:len(s)-1]
		}
	}
	return s
}

func removeTaskListener(s []taskListener, id uint32) []taskListener {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = taskListener{}
			return s[:len(s)-1]
		}
	}
	return s
}

func removeDependencyListener(s []dependencyListener, id uint32) []dependencyListener {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = dependencyListener{}
			return s[:len(s)-1]
		}
	}
	return s
}

func (r *listenerRegistry) emitSelectionChanged(tasks []*Task) {
	for _, l := range r.selectionChanged {
		l.fn(tasks)
	}
}

func (r *listenerRegistry) emitTaskMoved(t *Task) {
	for _, l := range r.taskMoved {
		l.fn(t)
	}
}

func (r *listenerRegistry) emitNewDependency() {
	for _, l := range r.newDependency {
		l.fn()
	}
}

// OnSelectionChanged registers a callback fired after every selection
// mutation with the selected tasks in render order.
func (e *Editor) OnSelectionChanged(fn func([]*Task)) ListenerHandle {
	r := &e.listeners
	r.nextID++
	r.selectionChanged = append(r.selectionChanged, selectionListener{id: r.nextID, fn: fn})
	return ListenerHandle{id: r.nextID, reg: r, event: eventSelectionChanged}
}

// OnTaskMoved registers a callback fired when a drag gesture commits, with
// the moved task.
func (e *Editor) OnTaskMoved(fn func(*Task)) ListenerHandle {
	r := &e.listeners
	r.nextID++
	r.taskMoved = append(r.taskMoved, taskListener{id: r.nextID, fn: fn})
	return ListenerHandle{id: r.nextID, reg: r, event: eventTaskMoved}
}

// OnNewDependency registers a callback fired when a link gesture commits.
// It carries no payload; consumers re-read the graph.
func (e *Editor) OnNewDependency(fn func()) ListenerHandle {
	r := &e.listeners
	r.nextID++
	r.newDependency = append(r.newDependency, dependencyListener{id: r.nextID, fn: fn})
	return ListenerHandle{id: r.nextID, reg: r, event: eventNewDependency}
}
