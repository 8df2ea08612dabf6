package main

import "math"

// Point is a position in world or screen space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// SquaredDistance is the sum of squared coordinate differences. Callers only
// compare it against squared thresholds, so the square root is skipped.
func SquaredDistance(p, q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

// Box is an axis-aligned rectangle: top-left corner plus extents.
type Box struct {
	Pos  Point
	Size Point
}

func (b Box) Center() Point {
	return Point{b.Pos.X + b.Size.X/2, b.Pos.Y + b.Size.Y/2}
}

// Expand grows the box by margin on all four sides.
func (b Box) Expand(margin float64) Box {
	return Box{
		Pos:  Point{b.Pos.X - margin, b.Pos.Y - margin},
		Size: Point{b.Size.X + 2*margin, b.Size.Y + 2*margin},
	}
}

func (b Box) Contains(p Point) bool {
	return p.X >= b.Pos.X && p.X < b.Pos.X+b.Size.X &&
		p.Y >= b.Pos.Y && p.Y < b.Pos.Y+b.Size.Y
}

// Segment is a directed straight line between two points.
type Segment struct {
	From Point
	To   Point
}

// IntersectLineBox finds where the directed segment from a to b crosses the
// boundary of box. Each of the four edges' supporting lines is tested; the
// crossing with the smallest positive parametric distance from a that also
// lies within that edge's finite span wins. Degenerate input (coincident
// endpoints, a box with no extent) reports no crossing.
func IntersectLineBox(a, b Point, box Box) (Point, bool) {
	if box.Size.X <= 0 || box.Size.Y <= 0 {
		return Point{}, false
	}
	dx := b.X - a.X
	dy := b.Y - a.Y
	if dx == 0 && dy == 0 {
		return Point{}, false
	}

	left := box.Pos.X
	right := box.Pos.X + box.Size.X
	top := box.Pos.Y
	bottom := box.Pos.Y + box.Size.Y

	best := math.Inf(1)
	var hit Point

	if dx != 0 {
		for _, edgeX := range [2]float64{left, right} {
			t := (edgeX - a.X) / dx
			if t <= 0 || t > 1 || t >= best {
				continue
			}
			y := a.Y + t*dy
			if y >= top && y <= bottom {
				best = t
				hit = Point{edgeX, y}
			}
		}
	}
	if dy != 0 {
		for _, edgeY := range [2]float64{top, bottom} {
			t := (edgeY - a.Y) / dy
			if t <= 0 || t > 1 || t >= best {
				continue
			}
			x := a.X + t*dx
			if x >= left && x <= right {
				best = t
				hit = Point{x, edgeY}
			}
		}
	}

	if math.IsInf(best, 1) {
		return Point{}, false
	}
	return hit, true
}
