package main

// Terminal rendering of one editor's canvas. Edges draw first, then the link
// preview, then the task boxes, so boxes always sit on top and later tasks in
// the graph cover earlier ones.

func renderCanvas(e *Editor, width, height int) []string {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = make([]rune, width)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	vp := e.Viewport()
	for _, d := range e.Graph().Dependencies() {
		seg, ok := DependencyPath(d)
		if !ok {
			continue
		}
		drawSegment(grid, vp.WorldToScreen(seg.From), vp.WorldToScreen(seg.To), true)
	}
	if seg, ok := e.LinkPreview(); ok {
		drawSegment(grid, vp.WorldToScreen(seg.From), vp.WorldToScreen(seg.To), false)
	}

	active := e.ActiveTask()
	for _, t := range e.Graph().Tasks() {
		drawTaskBox(grid, vp, t, e.IsSelected(t) || t == active)
	}

	lines := make([]string, height)
	for i, row := range grid {
		lines[i] = string(row)
	}
	return lines
}

// drawSegment rasterizes one straight edge with Bresenham's algorithm,
// choosing a line rune from the slope and optionally capping the end with an
// arrowhead pointing at the successor.
func drawSegment(grid [][]rune, from, to Point, arrow bool) {
	x0, y0 := int(from.X), int(from.Y)
	x1, y1 := int(to.X), int(to.Y)

	ch := segmentRune(x1-x0, y1-y0)

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	x, y := x0, y0
	for {
		putRune(grid, x, y, ch)
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}

	if arrow {
		putRune(grid, x1, y1, arrowRune(x1-x0, y1-y0))
	}
}

// segmentRune picks the body rune from the dominant direction of the line.
func segmentRune(dx, dy int) rune {
	switch {
	case dy == 0:
		return '─'
	case dx == 0:
		return '│'
	case abs(dx) >= 2*abs(dy):
		return '─'
	case abs(dy) >= 2*abs(dx):
		return '│'
	case (dx > 0) == (dy > 0):
		return '\\'
	default:
		return '/'
	}
}

func arrowRune(dx, dy int) rune {
	if abs(dx) >= abs(dy) {
		if dx >= 0 {
			return '▶'
		}
		return '◀'
	}
	if dy >= 0 {
		return '▼'
	}
	return '▲'
}

func putRune(grid [][]rune, x, y int, ch rune) {
	if y < 0 || y >= len(grid) || x < 0 || x >= len(grid[y]) {
		return
	}
	grid[y][x] = ch
}

// drawTaskBox draws one task's border and label. Selected and gesture-held
// boxes use '#' borders like flowchart editors mark their active box; the
// label is centered and truncated to whatever width survives the zoom.
func drawTaskBox(grid [][]rune, vp *Viewport, t *Task, highlighted bool) {
	box := t.Box()
	topLeft := vp.WorldToScreen(box.Pos)
	x0, y0 := int(topLeft.X), int(topLeft.Y)
	w := int(box.Size.X * vp.Zoom)
	h := int(box.Size.Y * vp.Zoom)
	if w < 3 {
		w = 3
	}
	if h < 3 {
		h = 3
	}

	corner, horizontal, vertical := '+', '-', '|'
	if highlighted {
		corner, horizontal, vertical = '#', '#', '#'
	}

	for x := x0; x < x0+w; x++ {
		putRune(grid, x, y0, horizontal)
		putRune(grid, x, y0+h-1, horizontal)
	}
	for y := y0; y < y0+h; y++ {
		putRune(grid, x0, y, vertical)
		putRune(grid, x0+w-1, y, vertical)
	}
	putRune(grid, x0, y0, corner)
	putRune(grid, x0+w-1, y0, corner)
	putRune(grid, x0, y0+h-1, corner)
	putRune(grid, x0+w-1, y0+h-1, corner)

	// Interior fill so edges never show through the box.
	for y := y0 + 1; y < y0+h-1; y++ {
		for x := x0 + 1; x < x0+w-1; x++ {
			putRune(grid, x, y, ' ')
		}
	}

	label := []rune(t.Label())
	maxLabel := w - 2
	if maxLabel < 0 {
		maxLabel = 0
	}
	if len(label) > maxLabel {
		label = label[:maxLabel]
	}
	labelX := x0 + (w-len(label))/2
	labelY := y0 + h/2
	for i, ch := range label {
		putRune(grid, labelX+i, labelY, ch)
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
