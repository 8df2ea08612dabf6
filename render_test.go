package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCanvasDrawsBox(t *testing.T) {
	e := newTestEditor()
	pos := Point{0, 0}
	e.AddTask(TaskSpec{Name: "A", Pos: &pos})

	lines := renderCanvas(e, 20, 6)
	require.Len(t, lines, 6)

	top := []rune(lines[0])
	assert.Equal(t, '+', top[0])
	assert.Equal(t, '-', top[3])
	assert.Equal(t, '+', top[7])

	mid := []rune(lines[1])
	assert.Equal(t, '|', mid[0])
	assert.Equal(t, 'A', mid[3], "label centered inside the border")
	assert.Equal(t, '|', mid[7])

	bottom := []rune(lines[2])
	assert.Equal(t, '+', bottom[0])
	assert.Equal(t, '+', bottom[7])
}

func TestRenderCanvasHighlightsSelection(t *testing.T) {
	e := newTestEditor()
	pos := Point{0, 0}
	e.AddTask(TaskSpec{Name: "A", Pos: &pos})
	e.SelectAll()

	lines := renderCanvas(e, 20, 6)
	assert.Equal(t, '#', []rune(lines[0])[0], "selected boxes use # borders")
	assert.Equal(t, '#', []rune(lines[1])[0])
}

func TestRenderCanvasDrawsEdgeWithArrow(t *testing.T) {
	e := newTestEditor()
	posA, posB := Point{0, 0}, Point{40, 0}
	a := e.AddTask(TaskSpec{Name: "A", Pos: &posA})
	b := e.AddTask(TaskSpec{Name: "B", Pos: &posB})
	_, err := e.Graph().AddDependency(a, b)
	require.NoError(t, err)

	lines := renderCanvas(e, 60, 6)
	row := []rune(lines[1])
	assert.Equal(t, '─', row[20], "edge body between the anchors")
	assert.Equal(t, '▶', row[32], "arrowhead points at the successor")
	assert.Equal(t, ' ', row[10], "anchor margin keeps the edge off the source box")
}

func TestRenderCanvasClipsOffscreen(t *testing.T) {
	e := newTestEditor()
	pos := Point{-100, -100}
	e.AddTask(TaskSpec{Name: "A", Pos: &pos})

	lines := renderCanvas(e, 20, 6)
	for _, line := range lines {
		assert.Equal(t, 20, len([]rune(line)))
		for _, ch := range line {
			assert.Equal(t, ' ', ch, "offscreen geometry draws nothing")
		}
	}
}

func TestSegmentRunes(t *testing.T) {
	assert.Equal(t, '─', segmentRune(10, 0))
	assert.Equal(t, '│', segmentRune(0, 10))
	assert.Equal(t, '\\', segmentRune(5, 5))
	assert.Equal(t, '/', segmentRune(5, -5))

	assert.Equal(t, '▶', arrowRune(10, 0))
	assert.Equal(t, '◀', arrowRune(-10, 2))
	assert.Equal(t, '▼', arrowRune(1, 10))
	assert.Equal(t, '▲', arrowRune(1, -10))
}
