package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntersectLineBox(t *testing.T) {
	box := Box{Pos: Point{-18, -18}, Size: Point{36, 36}}

	hit, ok := IntersectLineBox(Point{0, 0}, Point{100, 0}, box)
	require.True(t, ok)
	assert.Equal(t, Point{18, 0}, hit)

	hit, ok = IntersectLineBox(Point{0, 0}, Point{-100, 0}, box)
	require.True(t, ok)
	assert.Equal(t, Point{-18, 0}, hit)

	hit, ok = IntersectLineBox(Point{0, 0}, Point{0, 50}, box)
	require.True(t, ok)
	assert.Equal(t, Point{0, 18}, hit)
}

func TestIntersectLineBoxDegenerate(t *testing.T) {
	box := Box{Pos: Point{0, 0}, Size: Point{10, 10}}

	_, ok := IntersectLineBox(Point{5, 5}, Point{5, 5}, box)
	assert.False(t, ok, "coincident endpoints have no crossing")

	_, ok = IntersectLineBox(Point{0, 0}, Point{10, 0}, Box{Pos: Point{0, 0}})
	assert.False(t, ok, "zero-extent box has no boundary")

	_, ok = IntersectLineBox(Point{100, 100}, Point{101, 100}, box)
	assert.False(t, ok, "segment that never reaches the box")
}

func TestBoxContainsHalfOpen(t *testing.T) {
	box := Box{Pos: Point{2, 3}, Size: Point{8, 3}}

	assert.True(t, box.Contains(Point{2, 3}), "min corner is inside")
	assert.True(t, box.Contains(Point{9.9, 5.9}))
	assert.False(t, box.Contains(Point{10, 3}), "max edge is outside")
	assert.False(t, box.Contains(Point{2, 6}))
	assert.False(t, box.Contains(Point{1.9, 4}))
}

func TestBoxExpandAndCenter(t *testing.T) {
	box := Box{Pos: Point{0, 0}, Size: Point{8, 3}}

	expanded := box.Expand(8)
	assert.Equal(t, Point{-8, -8}, expanded.Pos)
	assert.Equal(t, Point{24, 19}, expanded.Size)

	assert.Equal(t, Point{4, 1.5}, box.Center())
	assert.Equal(t, box.Center(), expanded.Center(), "expansion is symmetric")
}

func TestSquaredDistance(t *testing.T) {
	assert.Equal(t, 25.0, SquaredDistance(Point{0, 0}, Point{3, 4}))
	assert.Equal(t, 0.0, SquaredDistance(Point{7, 7}, Point{7, 7}))
}

func TestDependencyPathAnchors(t *testing.T) {
	g := NewGraph()
	a := g.AddTask("A", Point{0, 0}, StatusTodo)
	b := g.AddTask("B", Point{40, 0}, StatusTodo)
	d, err := g.AddDependency(a, b)
	require.NoError(t, err)

	seg, ok := DependencyPath(d)
	require.True(t, ok)
	assert.Equal(t, Point{16, 1.5}, seg.From, "anchored on A's expanded border")
	assert.Equal(t, Point{32, 1.5}, seg.To, "anchored on B's expanded border")
}

func TestDependencyPathOverlappingBoxes(t *testing.T) {
	g := NewGraph()
	a := g.AddTask("A", Point{0, 0}, StatusTodo)
	b := g.AddTask("B", Point{0, 0}, StatusTodo)
	d, err := g.AddDependency(a, b)
	require.NoError(t, err)

	_, ok := DependencyPath(d)
	assert.False(t, ok, "coincident centers hide the edge")
}

func TestLinkPath(t *testing.T) {
	g := NewGraph()
	a := g.AddTask("A", Point{0, 0}, StatusTodo)

	seg, ok := LinkPath(a, Point{100, 1.5})
	require.True(t, ok)
	assert.Equal(t, Point{16, 1.5}, seg.From)
	assert.Equal(t, Point{100, 1.5}, seg.To, "free end follows the pointer")

	_, ok = LinkPath(a, a.Box().Center())
	assert.False(t, ok, "destination at the anchor center has no crossing")
}
