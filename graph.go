package main

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

type Status string

const (
	StatusTodo      Status = "todo"
	StatusCompleted Status = "completed"
)

var (
	ErrEndpointNotFound = errors.New("endpoint not found")
	ErrAmbiguousName    = errors.New("ambiguous task name")
	ErrSelfLoop         = errors.New("dependency endpoints are the same task")
)

// Task is a named node on the canvas. ID is the stable identity; Name is a
// display attribute and may collide with other tasks in the live model.
type Task struct {
	ID       uuid.UUID
	Name     string
	Pos      Point // world space, top-left of the box
	Status   Status
	Outgoing []*Dependency
	Incoming []*Dependency
}

// Label is the text rendered inside the task's box.
func (t *Task) Label() string {
	if t.Status == StatusCompleted {
		return "✓ " + t.Name
	}
	return t.Name
}

// Box is the task's bounds in world space. Width tracks the label so the
// name always fits inside the border.
func (t *Task) Box() Box {
	w := float64(len([]rune(t.Label())) + 2)
	if w < minBoxWidth {
		w = minBoxWidth
	}
	return Box{Pos: t.Pos, Size: Point{w, boxHeight}}
}

// Dependency is a directed edge from a predecessor task to a successor task.
// It carries no payload beyond its two endpoints.
type Dependency struct {
	From *Task
	To   *Task
}

// Graph owns every task and dependency. Tasks are kept in render order;
// dependencies live only in the adjacency lists of their endpoints, always
// in exactly one Outgoing and one Incoming list.
type Graph struct {
	tasks []*Task
}

func NewGraph() *Graph {
	return &Graph{}
}

// Tasks returns the live tasks in render order. Later tasks draw on top.
func (g *Graph) Tasks() []*Task { return g.tasks }

func (g *Graph) Len() int { return len(g.tasks) }

func (g *Graph) AddTask(name string, pos Point, status Status) *Task {
	if status != StatusCompleted {
		status = StatusTodo
	}
	t := &Task{ID: uuid.New(), Name: name, Pos: pos, Status: status}
	g.tasks = append(g.tasks, t)
	return t
}

// ResolveName maps a display name to its unique live task. Zero matches is
// ErrEndpointNotFound, more than one is ErrAmbiguousName; the first match is
// never silently picked.
func (g *Graph) ResolveName(name string) (*Task, error) {
	var found *Task
	for _, t := range g.tasks {
		if t.Name != name {
			continue
		}
		if found != nil {
			return nil, fmt.Errorf("%w: %q", ErrAmbiguousName, name)
		}
		found = t
	}
	if found == nil {
		return nil, fmt.Errorf("%w: %q", ErrEndpointNotFound, name)
	}
	return found, nil
}

// FindDependency returns the edge for the ordered pair, or nil.
func (g *Graph) FindDependency(from, to *Task) *Dependency {
	if from == nil {
		return nil
	}
	for _, d := range from.Outgoing {
		if d.To == to {
			return d
		}
	}
	return nil
}

// AddDependency links predecessor from to successor to. Self-loops are
// rejected; an existing edge for the same ordered pair is returned as is
// instead of duplicated.
func (g *Graph) AddDependency(from, to *Task) (*Dependency, error) {
	if from == nil || to == nil {
		return nil, ErrEndpointNotFound
	}
	if from == to {
		return nil, fmt.Errorf("%w: %q", ErrSelfLoop, from.Name)
	}
	if d := g.FindDependency(from, to); d != nil {
		return d, nil
	}
	d := &Dependency{From: from, To: to}
	from.Outgoing = append(from.Outgoing, d)
	to.Incoming = append(to.Incoming, d)
	return d, nil
}

// DeleteDependency removes d from both endpoints' adjacency lists.
func (g *Graph) DeleteDependency(d *Dependency) {
	d.From.Outgoing = removeDependency(d.From.Outgoing, d)
	d.To.Incoming = removeDependency(d.To.Incoming, d)
}

func removeDependency(s []*Dependency, d *Dependency) []*Dependency {
	for i := range s {
		if s[i] == d {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = nil
			return s[:len(s)-1]
		}
	}
	return s
}

// DeleteTask severs every incident dependency first, then removes the task,
// so no dependency ever references a destroyed endpoint.
func (g *Graph) DeleteTask(t *Task) {
	for len(t.Outgoing) > 0 {
		g.DeleteDependency(t.Outgoing[0])
	}
	for len(t.Incoming) > 0 {
		g.DeleteDependency(t.Incoming[0])
	}
	for i := range g.tasks {
		if g.tasks[i] == t {
			copy(g.tasks[i:], g.tasks[i+1:])
			g.tasks[len(g.tasks)-1] = nil
			g.tasks = g.tasks[:len(g.tasks)-1]
			return
		}
	}
}

// TaskAt returns the topmost task whose box contains the world point, or nil.
func (g *Graph) TaskAt(p Point) *Task {
	for i := len(g.tasks) - 1; i >= 0; i-- {
		if g.tasks[i].Box().Contains(p) {
			return g.tasks[i]
		}
	}
	return nil
}

// Dependencies collects every edge, ordered by its predecessor's render
// position.
func (g *Graph) Dependencies() []*Dependency {
	var deps []*Dependency
	for _, t := range g.tasks {
		deps = append(deps, t.Outgoing...)
	}
	return deps
}

func (g *Graph) Clear() {
	g.tasks = nil
}
