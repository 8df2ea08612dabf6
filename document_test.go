package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentRoundTrip(t *testing.T) {
	e := newTestEditor()
	posA, posB := Point{1, 2}, Point{40, 0}
	a := e.AddTask(TaskSpec{Name: "A", Pos: &posA, Status: StatusCompleted})
	b := e.AddTask(TaskSpec{Name: "B", Pos: &posB})
	_, err := e.Graph().AddDependency(a, b)
	require.NoError(t, err)

	doc := e.GetGraph()
	require.Len(t, doc.Tasks, 2)
	assert.Equal(t, TaskRecord{Name: "A", Pos: Point{1, 2}, Status: StatusCompleted}, doc.Tasks[0])
	require.Len(t, doc.Dependencies, 1)
	assert.Equal(t, DependencyRecord{Predecessor: "A", Successor: "B"}, doc.Dependencies[0])

	loaded := newTestEditor()
	loaded.LoadGraph(doc)

	tasks := loaded.Graph().Tasks()
	require.Len(t, tasks, 2)
	assert.Equal(t, "A", tasks[0].Name, "document order preserves render stacking")
	assert.Equal(t, Point{1, 2}, tasks[0].Pos)
	assert.Equal(t, StatusCompleted, tasks[0].Status)
	assert.NotEqual(t, a.ID, tasks[0].ID, "identity is regenerated on load")

	deps := loaded.Graph().Dependencies()
	require.Len(t, deps, 1)
	assert.Equal(t, "A", deps[0].From.Name)
	assert.Equal(t, "B", deps[0].To.Name)
}

func TestLoadGraphReplacesContents(t *testing.T) {
	e := newTestEditor()
	pos := Point{5, 5}
	e.AddTask(TaskSpec{Name: "stale", Pos: &pos})
	e.SelectAll()

	e.LoadGraph(Document{Tasks: []TaskRecord{{Name: "fresh", Pos: Point{0, 0}}}})

	require.Equal(t, 1, e.Graph().Len())
	assert.Equal(t, "fresh", e.Graph().Tasks()[0].Name)
	assert.Empty(t, e.SelectedTasks())
}

func TestLoadGraphSkipsUnresolvableDependencies(t *testing.T) {
	e := newTestEditor()
	e.LoadGraph(Document{
		Tasks: []TaskRecord{
			{Name: "X", Pos: Point{0, 0}},
			{Name: "X", Pos: Point{20, 0}},
			{Name: "Y", Pos: Point{40, 0}},
		},
		Dependencies: []DependencyRecord{
			{Predecessor: "X", Successor: "Y"},  // ambiguous predecessor
			{Predecessor: "Y", Successor: "Z"},  // missing successor
			{Predecessor: "Y", Successor: "Y"},  // self-loop
		},
	})

	assert.Equal(t, 3, e.Graph().Len(), "all tasks still load")
	assert.Empty(t, e.Graph().Dependencies(), "bad records are skipped, not fatal")
}

func TestLoadGraphPartialDependencies(t *testing.T) {
	e := newTestEditor()
	e.LoadGraph(Document{
		Tasks: []TaskRecord{
			{Name: "A", Pos: Point{0, 0}},
			{Name: "B", Pos: Point{20, 0}},
		},
		Dependencies: []DependencyRecord{
			{Predecessor: "A", Successor: "missing"},
			{Predecessor: "A", Successor: "B"},
		},
	})

	deps := e.Graph().Dependencies()
	require.Len(t, deps, 1, "good records survive bad neighbors")
	assert.Equal(t, "B", deps[0].To.Name)
}

func TestSaveAndOpenDocument(t *testing.T) {
	e := newTestEditor()
	posA, posB := Point{1.5, 2.5}, Point{40, 0}
	a := e.AddTask(TaskSpec{Name: "build", Pos: &posA})
	b := e.AddTask(TaskSpec{Name: "ship", Pos: &posB, Status: StatusCompleted})
	_, err := e.Graph().AddDependency(a, b)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "graph.json")
	require.NoError(t, saveDocument(e.GetGraph(), path))

	doc, err := openDocument(path)
	require.NoError(t, err)
	assert.Equal(t, e.GetGraph(), doc)
}

func TestOpenDocumentErrors(t *testing.T) {
	_, err := openDocument(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}
