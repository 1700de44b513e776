package plot

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
)

// RGB is a single 3-byte pixel.
type RGB struct {
	R, G, B uint8
}

var (
	White = RGB{255, 255, 255}
	Black = RGB{0, 0, 0}
)

// ParseRGB parses a "#rrggbb" hex color.
func ParseRGB(s string) (RGB, error) {
	var c RGB
	if len(s) != 7 || s[0] != '#' {
		return c, fmt.Errorf("invalid color %q: want #rrggbb", s)
	}
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return c, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return c, nil
}

func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Canvas is anything pixels can be plotted onto.
type Canvas interface {
	Set(x, y int, c RGB)
}

// Framebuffer is a fixed-size grid of RGB pixels stored row-major,
// three bytes per pixel.
//
// It implements image.Image so it can be handed straight to an encoder.
type Framebuffer struct {
	Width, Height int
	Pix           []uint8
}

// NewFramebuffer allocates a w x h buffer filled with white. Dimensions
// below 1 are clamped to 1.
func NewFramebuffer(w, h int) *Framebuffer {
	w, h = max(w, 1), max(h, 1)
	fb := &Framebuffer{
		Width:  w,
		Height: h,
		Pix:    make([]uint8, 3*w*h),
	}
	fb.Fill(White)
	return fb
}

// Fill sets every pixel to c.
func (fb *Framebuffer) Fill(c RGB) {
	for i := 0; i < len(fb.Pix); i += 3 {
		fb.Pix[i], fb.Pix[i+1], fb.Pix[i+2] = c.R, c.G, c.B
	}
}

func (fb *Framebuffer) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < fb.Width && y < fb.Height
}

// Set writes a pixel. Writes outside the grid are dropped.
func (fb *Framebuffer) Set(x, y int, c RGB) {
	if !fb.inside(x, y) {
		return
	}
	i := 3 * (y*fb.Width + x)
	fb.Pix[i], fb.Pix[i+1], fb.Pix[i+2] = c.R, c.G, c.B
}

// RGBAt returns the pixel at (x, y), or the zero color outside the grid.
func (fb *Framebuffer) RGBAt(x, y int) RGB {
	if !fb.inside(x, y) {
		return RGB{}
	}
	i := 3 * (y*fb.Width + x)
	return RGB{fb.Pix[i], fb.Pix[i+1], fb.Pix[i+2]}
}

// Bytes returns the flat row-major RGB buffer. The slice aliases the
// framebuffer.
func (fb *Framebuffer) Bytes() []byte {
	return fb.Pix
}

// Equal reports whether both buffers have the same size and contents.
func (fb *Framebuffer) Equal(o *Framebuffer) bool {
	return fb.Width == o.Width && fb.Height == o.Height && bytes.Equal(fb.Pix, o.Pix)
}

// Count returns how many pixels equal c.
func (fb *Framebuffer) Count(c RGB) int {
	n := 0
	for i := 0; i < len(fb.Pix); i += 3 {
		if fb.Pix[i] == c.R && fb.Pix[i+1] == c.G && fb.Pix[i+2] == c.B {
			n++
		}
	}
	return n
}

func (fb *Framebuffer) ColorModel() color.Model { return color.RGBAModel }

func (fb *Framebuffer) Bounds() image.Rectangle { return image.Rect(0, 0, fb.Width, fb.Height) }

func (fb *Framebuffer) At(x, y int) color.Color {
	c := fb.RGBAt(x, y)
	return color.RGBA{c.R, c.G, c.B, 255}
}

// RGBA copies the buffer into an *image.RGBA, which the PNG encoder
// handles without per-pixel interface calls.
func (fb *Framebuffer) RGBA() *image.RGBA {
	img := image.NewRGBA(fb.Bounds())
	for i, j := 0, 0; i < len(fb.Pix); i, j = i+3, j+4 {
		img.Pix[j], img.Pix[j+1], img.Pix[j+2], img.Pix[j+3] = fb.Pix[i], fb.Pix[i+1], fb.Pix[i+2], 255
	}
	return img
}
