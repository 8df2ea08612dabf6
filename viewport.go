package main

import "math"

// Viewport is the pan/zoom transform for one canvas: a translation applied
// to the whole item layer followed by a uniform scale. Task coordinates stay
// in a stable world frame; only the transform changes.
type Viewport struct {
	Pan    Point
	Zoom   float64
	width  int
	height int
}

func NewViewport() *Viewport {
	return &Viewport{Zoom: 1.0}
}

// SetSize records the visible canvas extent, used for the view center.
func (v *Viewport) SetSize(width, height int) {
	v.width = width
	v.height = height
}

func (v *Viewport) ApplyPanDelta(dx, dy float64) {
	v.Pan.X += dx
	v.Pan.Y += dy
}

// ApplyZoomFactor scales the zoom, clamps it to the supported range, and
// snaps to exactly 1.0 inside the tolerance window so repeated small wheel
// steps cannot drift around the baseline.
func (v *Viewport) ApplyZoomFactor(factor float64) {
	if factor <= 0 {
		return
	}
	z := v.Zoom * factor
	if z < minZoom {
		z = minZoom
	}
	if z > maxZoom {
		z = maxZoom
	}
	if math.Abs(z-1.0) <= zoomSnapTolerance {
		z = 1.0
	}
	v.Zoom = z
}

func (v *Viewport) Reset() {
	v.Pan = Point{}
	v.Zoom = 1.0
}

func (v *Viewport) WorldToScreen(p Point) Point {
	return Point{v.Pan.X + p.X*v.Zoom, v.Pan.Y + p.Y*v.Zoom}
}

func (v *Viewport) ScreenToWorld(p Point) Point {
	return Point{(p.X - v.Pan.X) / v.Zoom, (p.Y - v.Pan.Y) / v.Zoom}
}

// ViewCenterWorld is the world point currently in the middle of the view.
func (v *Viewport) ViewCenterWorld() Point {
	return v.ScreenToWorld(Point{float64(v.width) / 2, float64(v.height) / 2})
}
