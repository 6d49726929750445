package app

import (
	"strings"
	"sync"

	"sector/hal"
)

type fakeHAL struct {
	log   *fakeLogger
	fb    *fakeFramebuffer
	disp  *fakeDisplay
	kbd   *fakeKeyboard
	mouse *fakeMouse
	time  *fakeTime
}

func newFakeHAL(w, h int) *fakeHAL {
	fb := &fakeFramebuffer{w: w, h: h, format: hal.PixelFormatRGBA8888, buf: make([]byte, w*h*4)}
	return &fakeHAL{
		log:   &fakeLogger{},
		fb:    fb,
		disp:  &fakeDisplay{fb: fb},
		kbd:   &fakeKeyboard{ch: make(chan hal.KeyEvent, 16)},
		mouse: &fakeMouse{ch: make(chan hal.MouseEvent, 16)},
		time:  &fakeTime{ch: make(chan uint64, 16)},
	}
}

func (h *fakeHAL) Logger() hal.Logger   { return h.log }
func (h *fakeHAL) Display() hal.Display { return h.disp }
func (h *fakeHAL) Input() hal.Input     { return fakeInput{h} }
func (h *fakeHAL) Time() hal.Time       { return h.time }

func (h *fakeHAL) press(code hal.KeyCode)   { h.kbd.ch <- hal.KeyEvent{Code: code, Press: true} }
func (h *fakeHAL) release(code hal.KeyCode) { h.kbd.ch <- hal.KeyEvent{Code: code} }

// pixel returns the framebuffer's RGB at (x, y).
func (h *fakeHAL) pixel(x, y int) (r, g, b uint8) {
	off := (y*h.fb.w + x) * 4
	return h.fb.buf[off], h.fb.buf[off+1], h.fb.buf[off+2]
}

type fakeInput struct{ h *fakeHAL }

func (in fakeInput) Keyboard() hal.Keyboard { return in.h.kbd }
func (in fakeInput) Mouse() hal.Mouse       { return in.h.mouse }

type fakeLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *fakeLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, s)
}

func (l *fakeLogger) WriteLineBytes(b []byte) { l.WriteLineString(string(b)) }

func (l *fakeLogger) contains(sub string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, s := range l.lines {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

type fakeFramebuffer struct {
	w, h     int
	format   hal.PixelFormat
	buf      []byte
	presents int
	// panics makes the next Present panic.
	panics bool
}

func (f *fakeFramebuffer) Width() int              { return f.w }
func (f *fakeFramebuffer) Height() int             { return f.h }
func (f *fakeFramebuffer) Format() hal.PixelFormat { return f.format }
func (f *fakeFramebuffer) StrideBytes() int        { return f.w * 4 }
func (f *fakeFramebuffer) Buffer() []byte          { return f.buf }
func (f *fakeFramebuffer) Present() error {
	if f.panics {
		f.panics = false
		panic("present failed")
	}
	f.presents++
	return nil
}

func (f *fakeFramebuffer) ClearRGB(r, g, b uint8) {
	for i := 0; i+3 < len(f.buf); i += 4 {
		f.buf[i], f.buf[i+1], f.buf[i+2], f.buf[i+3] = r, g, b, 0xFF
	}
}

type fakeDisplay struct {
	fb    *fakeFramebuffer
	title string
}

func (d *fakeDisplay) Framebuffer() hal.Framebuffer { return d.fb }
func (d *fakeDisplay) SetTitle(title string)        { d.title = title }

type fakeKeyboard struct{ ch chan hal.KeyEvent }

func (k *fakeKeyboard) Events() <-chan hal.KeyEvent { return k.ch }

type fakeMouse struct {
	ch       chan hal.MouseEvent
	captured bool
}

func (m *fakeMouse) Events() <-chan hal.MouseEvent { return m.ch }
func (m *fakeMouse) SetCaptured(on bool)           { m.captured = on }
func (m *fakeMouse) Captured() bool                { return m.captured }

type fakeTime struct{ ch chan uint64 }

func (t *fakeTime) Ticks() <-chan uint64 { return t.ch }
