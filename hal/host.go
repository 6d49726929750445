package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
)

type hostHAL struct {
	logger *hostLogger
	fb     *hostFramebuffer
	title  *hostTitle
	kbd    *hostKeyboard
	mouse  *hostMouse
	t      *hostTime
}

// New returns a host HAL with a width×height framebuffer.
func New(width, height int) HAL {
	return newHost(width, height, os.Stdout)
}

func newHost(width, height int, w io.Writer) *hostHAL {
	return &hostHAL{
		logger: &hostLogger{w: w},
		fb:     newHostFramebuffer(width, height),
		title:  &hostTitle{},
		kbd:    newHostKeyboard(),
		mouse:  newHostMouse(),
		t:      newHostTime(),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb, title: h.title} }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd, mouse: h.mouse} }
func (h *hostHAL) Time() Time       { return h.t }

type hostDisplay struct {
	fb    *hostFramebuffer
	title *hostTitle
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }
func (d hostDisplay) SetTitle(title string)    { d.title.set(title) }

type hostInput struct {
	kbd   *hostKeyboard
	mouse *hostMouse
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }
func (in hostInput) Mouse() Mouse       { return in.mouse }

// hostTitle holds the requested window title until the window loop applies it.
type hostTitle struct {
	mu      sync.Mutex
	s       string
	changed bool
}

func (t *hostTitle) set(s string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if s == t.s {
		return
	}
	t.s = s
	t.changed = true
}

// take returns the title if it changed since the last call.
func (t *hostTitle) take() (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.changed {
		return "", false
	}
	t.changed = false
	return t.s, true
}

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
