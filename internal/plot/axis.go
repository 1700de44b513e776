package plot

// DefaultTickSpacing is the distance in pixels between axis ticks.
const DefaultTickSpacing = 5

// DrawAxes draws a crosshair through the pixel of the function-space
// origin, with ticks every tick pixels counted from the origin. Ticks sit
// one pixel either side of the axis line. Each line is skipped on its own
// when its offset is too large to represent; tick < 1 draws the lines only.
func DrawAxes(c Canvas, v Viewport, tick int, col RGB) {
	dx, okx := v.axisOffset(-v.Center.X)
	dy, oky := v.axisOffset(-v.Center.Y)
	ox, oy := v.half()+dx, v.half()-dy

	if okx {
		for y := 0; y < v.Dim; y++ {
			if tick > 0 && oky && (y-oy)%tick == 0 {
				c.Set(ox-1, y, col)
				c.Set(ox+1, y, col)
			}
			c.Set(ox, y, col)
		}
	}
	if oky {
		for x := 0; x < v.Dim; x++ {
			if tick > 0 && okx && (x-ox)%tick == 0 {
				c.Set(x, oy-1, col)
				c.Set(x, oy+1, col)
			}
			c.Set(x, oy, col)
		}
	}
}
