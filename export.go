package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

// exportPNG renders the whole graph to a PNG at 1:1 zoom, sized to the
// graph's world bounds rather than the terminal viewport so nothing is
// cropped by the current pan.
func exportPNG(e *Editor, filename string) error {
	tasks := e.Graph().Tasks()
	if len(tasks) == 0 {
		return fmt.Errorf("nothing to export")
	}

	charWidth := 8.0
	charHeight := 16.0

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	grow := func(b Box) {
		minX = math.Min(minX, b.Pos.X)
		minY = math.Min(minY, b.Pos.Y)
		maxX = math.Max(maxX, b.Pos.X+b.Size.X)
		maxY = math.Max(maxY, b.Pos.Y+b.Size.Y)
	}
	for _, t := range tasks {
		grow(t.Box().Expand(anchorMargin))
	}

	padding := 2.0
	minX -= padding
	minY -= padding
	maxX += padding
	maxY += padding

	toPixel := func(p Point) (float64, float64) {
		return (p.X - minX) * charWidth, (p.Y - minY) * charHeight
	}

	dc := gg.NewContext(int((maxX-minX)*charWidth), int((maxY-minY)*charHeight))
	dc.SetColor(color.White)
	dc.Clear()
	dc.SetColor(color.Black)

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %v", err)
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    12.0,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	dc.SetFontFace(face)

	// Edges behind boxes, same stacking as the terminal renderer.
	dc.SetLineWidth(1.0)
	for _, d := range e.Graph().Dependencies() {
		seg, ok := DependencyPath(d)
		if !ok {
			continue
		}
		x1, y1 := toPixel(seg.From)
		x2, y2 := toPixel(seg.To)
		dc.DrawLine(x1, y1, x2, y2)
		dc.Stroke()
		drawArrowPNG(dc, x1, y1, x2, y2)
	}

	for _, t := range tasks {
		box := t.Box()
		x, y := toPixel(box.Pos)
		dc.DrawRectangle(x, y, box.Size.X*charWidth, box.Size.Y*charHeight)
		dc.Stroke()
		dc.DrawStringAnchored(t.Label(), x+box.Size.X*charWidth/2, y+box.Size.Y*charHeight/2, 0.5, 0.5)
	}

	return dc.SavePNG(filename)
}

func drawArrowPNG(dc *gg.Context, fx, fy, tx, ty float64) {
	dx := tx - fx
	dy := ty - fy
	length := math.Sqrt(dx*dx + dy*dy)
	if length < 0.1 {
		return
	}
	dx /= length
	dy /= length

	arrowSize := 6.0
	arrowAngle := 0.5 // radians

	baseX1 := tx - arrowSize*dx + arrowSize*dy*arrowAngle
	baseY1 := ty - arrowSize*dy - arrowSize*dx*arrowAngle
	baseX2 := tx - arrowSize*dx - arrowSize*dy*arrowAngle
	baseY2 := ty - arrowSize*dy + arrowSize*dx*arrowAngle

	dc.MoveTo(tx, ty)
	dc.LineTo(baseX1, baseY1)
	dc.LineTo(baseX2, baseY2)
	dc.ClosePath()
	dc.Fill()
}
