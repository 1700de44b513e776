package plot

// Renderer performs full redraws. It owns its framebuffer; the buffer
// returned by Render is only valid until the next call.
type Renderer struct {
	Drawer      Drawer
	Background  RGB
	Foreground  RGB
	TickSpacing int

	fb *Framebuffer
}

// NewRenderer returns a renderer drawing black on white with the default
// tick spacing.
func NewRenderer(d Drawer) *Renderer {
	return &Renderer{
		Drawer:      d,
		Background:  White,
		Foreground:  Black,
		TickSpacing: DefaultTickSpacing,
	}
}

// Render clears the framebuffer, draws the function and, when enabled,
// the axis overlay on top.
func (r *Renderer) Render(v Viewport) *Framebuffer {
	if r.fb == nil || r.fb.Width != v.Dim || r.fb.Height != v.Dim {
		r.fb = NewFramebuffer(v.Dim, v.Dim)
	}
	r.fb.Fill(r.Background)
	r.Drawer.Draw(r.fb, v, r.Foreground)
	if v.AxisEnabled {
		DrawAxes(r.fb, v, r.TickSpacing, r.Foreground)
	}
	return r.fb
}
