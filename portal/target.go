package portal

import (
	"errors"
	"fmt"
	"image"
)

// ErrBufferSize is returned when a wrapped pixel buffer does not match its dimensions.
var ErrBufferSize = errors.New("portal: pixel buffer size mismatch")

// Target is a minimal pixel target for software rendering.
//
// Implementations must silently drop out-of-bounds writes.
type Target interface {
	Size() (w, h int)
	SetPixel(x, y int, c Color)
	Clear(c Color)
}

// Frame is a row-major RGBA8888 pixel buffer, top row first.
//
// The byte layout matches image.RGBA, so Image can share the buffer.
type Frame struct {
	Pix []byte
	W   int
	H   int
}

// NewFrame allocates a w×h frame.
func NewFrame(w, h int) *Frame {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Frame{Pix: make([]byte, w*h*4), W: w, H: h}
}

// WrapFrame borrows buf as a w×h frame. The frame never resizes buf.
func WrapFrame(buf []byte, w, h int) (*Frame, error) {
	if w <= 0 || h <= 0 || len(buf) != w*h*4 {
		return nil, fmt.Errorf("wrap %dx%d frame over %d bytes: %w", w, h, len(buf), ErrBufferSize)
	}
	return &Frame{Pix: buf, W: w, H: h}, nil
}

func (f *Frame) Size() (w, h int) { return f.W, f.H }

func (f *Frame) SetPixel(x, y int, c Color) {
	if f == nil || x < 0 || y < 0 || x >= f.W || y >= f.H {
		return
	}
	off := (y*f.W + x) * 4
	if off+3 >= len(f.Pix) {
		return
	}
	f.Pix[off] = c.R
	f.Pix[off+1] = c.G
	f.Pix[off+2] = c.B
	f.Pix[off+3] = 0xFF
}

func (f *Frame) Clear(c Color) {
	if f == nil {
		return
	}
	for off := 0; off+3 < len(f.Pix); off += 4 {
		f.Pix[off] = c.R
		f.Pix[off+1] = c.G
		f.Pix[off+2] = c.B
		f.Pix[off+3] = 0xFF
	}
}

// At returns the color at (x, y), or black outside the frame.
func (f *Frame) At(x, y int) Color {
	if f == nil || x < 0 || y < 0 || x >= f.W || y >= f.H {
		return Color{}
	}
	off := (y*f.W + x) * 4
	return Color{R: f.Pix[off], G: f.Pix[off+1], B: f.Pix[off+2]}
}

// Image returns an image.RGBA view sharing the frame's buffer.
func (f *Frame) Image() *image.RGBA {
	return &image.RGBA{Pix: f.Pix, Stride: f.W * 4, Rect: image.Rect(0, 0, f.W, f.H)}
}

// vline fills column x over rows [top, bottom).
func vline(t Target, x, top, bottom int, c Color) {
	for y := top; y < bottom; y++ {
		t.SetPixel(x, y, c)
	}
}

// line draws a Bresenham line including both end points.
func line(t Target, a, b image.Point, c Color) {
	x0, y0, x1, y1 := a.X, a.Y, b.X, b.Y
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		t.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
