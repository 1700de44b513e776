package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/grapher/internal/plot"
)

// FramebufferToSVG renders every pixel of fb that differs from bg as a
// square of side scale.
func FramebufferToSVG(fb *plot.Framebuffer, bg plot.RGB, scale float64) string {
	if fb == nil {
		return ""
	}

	width := float64(fb.Width) * scale
	height := float64(fb.Height) * scale

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, bg.Hex()))

	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			c := fb.RGBAt(x, y)
			if c == bg {
				continue
			}
			sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>
`, float64(x)*scale, float64(y)*scale, scale, scale, c.Hex()))
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// CurveToSVG draws points as one polyline scaled to fit width x height.
// Non-finite points break the line.
func CurveToSVG(points []plot.Point, width, height int, strokeColor string) string {
	finite := make([]plot.Point, 0, len(points))
	for _, p := range points {
		if p.IsFinite() {
			finite = append(finite, p)
		}
	}
	if len(finite) < 2 {
		return ""
	}

	// Find bounds
	minX, maxX := finite[0].X, finite[0].X
	minY, maxY := finite[0].Y, finite[0].Y
	for _, p := range finite {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
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
	minY -= rangeY * 0.1
	rangeX *= 1.2
	rangeY *= 1.2

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#ffffff"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="`,
		width, height, width, height, strokeColor))

	move := true
	for _, p := range points {
		if !p.IsFinite() {
			move = true
			continue
		}
		x := (p.X - minX) / rangeX * float64(width)
		y := float64(height) - (p.Y-minY)/rangeY*float64(height)
		if move {
			sb.WriteString(fmt.Sprintf("M%.1f,%.1f", x, y))
			move = false
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
