package portal

import (
	"errors"
	"image"
	"testing"
)

func TestFrameBounds(t *testing.T) {
	f := NewFrame(4, 3)
	f.SetPixel(-1, 0, Red)
	f.SetPixel(0, -1, Red)
	f.SetPixel(4, 0, Red)
	f.SetPixel(0, 3, Red)
	for i, b := range f.Pix {
		if b != 0 {
			t.Fatalf("out-of-bounds write hit byte %d", i)
		}
	}
	f.SetPixel(3, 2, Orange)
	if got := f.At(3, 2); got != Orange {
		t.Fatalf("At = %v", got)
	}
	if got := f.At(9, 9); got != Black {
		t.Fatalf("At outside = %v", got)
	}
	var nilFrame *Frame
	nilFrame.SetPixel(0, 0, Red)
	nilFrame.Clear(Red)
}

func TestWrapFrame(t *testing.T) {
	buf := make([]byte, 2*2*4)
	f, err := WrapFrame(buf, 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	f.Clear(Silver)
	if buf[0] != 0xC0 || buf[3] != 0xFF || buf[len(buf)-1] != 0xFF {
		t.Fatalf("clear did not write through: %v", buf)
	}
	img := f.Image()
	if img.Bounds() != image.Rect(0, 0, 2, 2) {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	f.SetPixel(1, 1, Blue)
	if c := img.RGBAAt(1, 1); c != Blue.RGBA() {
		t.Fatalf("image does not share buffer: %v", c)
	}

	for _, tt := range []struct{ n, w, h int }{{15, 2, 2}, {16, 0, 4}, {16, 4, 2}} {
		if _, err := WrapFrame(make([]byte, tt.n), tt.w, tt.h); !errors.Is(err, ErrBufferSize) {
			t.Fatalf("WrapFrame(%d bytes, %dx%d) err = %v", tt.n, tt.w, tt.h, err)
		}
	}
}

func TestLine(t *testing.T) {
	f := NewFrame(8, 8)
	line(f, image.Pt(0, 0), image.Pt(7, 7), White)
	line(f, image.Pt(7, 0), image.Pt(2, 0), Red)
	for i := 0; i < 8; i++ {
		if f.At(i, i) != White {
			t.Fatalf("diagonal pixel %d missing", i)
		}
	}
	for x := 2; x <= 7; x++ {
		if f.At(x, 0) != Red {
			t.Fatalf("horizontal pixel %d missing", x)
		}
	}
	if f.At(1, 0) != Black {
		t.Fatal("line overran its end point")
	}
}
