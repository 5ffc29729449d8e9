// Package export renders interpolated tracks to SVG.
package export

import (
	"fmt"
	"strings"

	"github.com/parafovea/fovea-sub006/internal/track"
	"github.com/parafovea/fovea-sub006/internal/viz"
)

// CanvasToSVG converts a Braille canvas to SVG, one dot per lit sub-pixel.
func CanvasToSVG(canvas *viz.Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.Width) * scale * 2   // 2 sub-pixels per char
	height := float64(canvas.Height) * scale * 4 // 4 sub-pixels per char

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g fill="#00ff00">
`, width, height, width, height))

	// Braille dot-to-bit mapping
	pixelMap := [4][2]int{
		{0x01, 0x08},
		{0x02, 0x10},
		{0x04, 0x20},
		{0x40, 0x80},
	}

	dotRadius := scale * 0.4

	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			r := canvas.Grid[row][col]
			if r < 0x2800 {
				continue
			}
			pattern := int(r - 0x2800)

			baseX := float64(col) * scale * 2
			baseY := float64(row) * scale * 4

			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] != 0 {
						cx := baseX + float64(dx)*scale + scale/2
						cy := baseY + float64(dy)*scale + scale/2
						sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, cx, cy, dotRadius))
					}
				}
			}
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// TrajectoryToSVG draws the center path of an interpolated track as a
// polyline, with the box outline sampled every boxEvery frames. A boxEvery
// of zero disables outlines.
func TrajectoryToSVG(frames []track.BoundingBox, width, height int, strokeColor string, boxEvery int) string {
	if len(frames) < 2 {
		return ""
	}

	minX, maxX := frames[0].X, frames[0].X+frames[0].Width
	minY, maxY := frames[0].Y, frames[0].Y+frames[0].Height
	for _, box := range frames {
		if box.X < minX {
			minX = box.X
		}
		if box.X+box.Width > maxX {
			maxX = box.X + box.Width
		}
		if box.Y < minY {
			minY = box.Y
		}
		if box.Y+box.Height > maxY {
			maxY = box.Y + box.Height
		}
	}

	// Add padding
	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	projX := func(x float64) float64 { return (x - minX) / rangeX * float64(width) }
	projY := func(y float64) float64 { return (y - minY) / rangeY * float64(height) }

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	if boxEvery > 0 {
		sb.WriteString(fmt.Sprintf(`<g fill="none" stroke="%s" stroke-width="0.5" opacity="0.4">
`, strokeColor))
		for i, box := range frames {
			if i%boxEvery != 0 && !box.IsKeyframe {
				continue
			}
			sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f"/>
`, projX(box.X), projY(box.Y), box.Width/rangeX*float64(width), box.Height/rangeY*float64(height)))
		}
		sb.WriteString("</g>\n")
	}

	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, strokeColor))

	for i, box := range frames {
		cx, cy := box.Center()
		x := projX(cx)
		y := projY(cy)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
