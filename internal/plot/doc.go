// Package plot samples real and complex functions over a zoomable viewport
// and rasterizes them into a fixed-size RGB pixel grid.
//
// The package is organised around a few small pieces:
//
//   - [Point]: function-space coordinate pair
//   - [Viewport]: center, zoom and axis flag plus the function-to-pixel transform
//   - [Framebuffer]: square RGB grid with silent clipping
//   - [Drawer]: sampling strategy, either point mode ([NewRealDrawer]) or
//     line mode ([NewComplexDrawer])
//   - [Renderer]: one full redraw (clear, draw, axis overlay)
//
// # Example
//
//	v := plot.NewViewport(50)
//	r := plot.NewRenderer(plot.NewRealDrawer(func(x float64) float64 { return x * x }, 1000))
//	fb := r.Render(v)
//
// Nothing in this package is safe for concurrent use; a Renderer owns its
// framebuffer for the whole redraw cycle.
package plot
