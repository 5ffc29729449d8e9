package viz

import (
	"strings"

	"github.com/parafovea/fovea-sub006/internal/track"
)

// dotBits maps a sub-pixel (row, col) inside one braille cell to its bit in
// the pattern. Braille characters start at U+2800 and encode a 2-wide,
// 4-tall dot grid, so each terminal cell holds 8 addressable sub-pixels.
var dotBits = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// blankCell is the braille character with no dots set.
const blankCell = 0x2800

// Canvas rasterizes into braille cells. Width and Height count terminal
// characters; drawing coordinates are sub-pixels, so the drawable area is
// (Width*2) x (Height*4).
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = blankCell
		}
	}
	return c
}

// Set lights the sub-pixel at (x, y). Coordinates outside the drawable area
// are ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(dotBits[y%4][x%2])
}

// Clear blanks every cell.
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blankCell
		}
	}
}

// DrawLine rasterizes a straight line between two sub-pixel coordinates
// with Bresenham stepping.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawRect draws an axis-aligned rectangle outline.
func (c *Canvas) DrawRect(x0, y0, x1, y1 int) {
	c.DrawLine(x0, y0, x1, y0)
	c.DrawLine(x1, y0, x1, y1)
	c.DrawLine(x1, y1, x0, y1)
	c.DrawLine(x0, y1, x0, y0)
}

// TrajectoryCanvas rasterizes the center path of a trajectory onto a fresh
// canvas, scaling world coordinates into the sub-pixel grid with a 10%
// margin. Consecutive frames are joined by lines; gaps left by hidden
// ranges break the path into separate strokes.
func TrajectoryCanvas(frames []track.BoundingBox, width, height int) *Canvas {
	c := NewCanvas(width, height)
	if len(frames) == 0 {
		return c
	}

	cx0, cy0 := frames[0].Center()
	minX, maxX := cx0, cx0
	minY, maxY := cy0, cy0
	for _, box := range frames[1:] {
		cx, cy := box.Center()
		minX = minF(minX, cx)
		maxX = maxF(maxX, cx)
		minY = minF(minY, cy)
		maxY = maxF(maxY, cy)
	}
	padX := (maxX - minX) * 0.1
	padY := (maxY - minY) * 0.1
	if padX == 0 {
		padX = 1
	}
	if padY == 0 {
		padY = 1
	}
	minX, maxX = minX-padX, maxX+padX
	minY, maxY = minY-padY, maxY+padY

	prev := -1
	var px, py int
	for _, box := range frames {
		cx, cy := box.Center()
		x := int((cx - minX) / (maxX - minX) * float64(width*2-1))
		y := int((cy - minY) / (maxY - minY) * float64(height*4-1))
		if prev >= 0 && box.FrameNumber == prev+1 {
			c.DrawLine(px, py, x, y)
		} else {
			c.Set(x, y)
		}
		px, py, prev = x, y, box.FrameNumber
	}
	return c
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
