package app

import (
	"errors"
	"fmt"
	"image/color"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"tinygo.org/x/tinyfont"

	"sector/portal"
)

// ErrPanic wraps a panic recovered from a session step.
var ErrPanic = errors.New("app: step panicked")

// guard runs step and turns a panic into an ErrPanic error, after logging the
// stack and painting it on screen.
func (s *session) guard(step func() error) func() error {
	return func() (err error) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			s.reportPanic(v, debug.Stack())
			err = fmt.Errorf("%w: %v", ErrPanic, v)
		}()
		return step()
	}
}

func (s *session) reportPanic(v any, stack []byte) {
	lines := []string{
		"sector panic:",
		fmt.Sprintf("panic: %v", v),
		fmt.Sprintf("camera: %v yaw %.3f sector %d", s.player.Camera.Position, s.player.Camera.Yaw, s.player.Camera.Sector),
	}
	if len(stack) > 0 {
		lines = append(lines, "stack:")
		for _, line := range strings.Split(string(stack), "\n") {
			if line == "" {
				continue
			}
			lines = append(lines, line)
		}
	} else {
		lines = append(lines, "stack: unavailable")
	}

	for _, line := range lines {
		s.logf("%s", line)
	}

	if s.frame == nil {
		return
	}
	s.frame.Clear(portal.White)

	font := newHUD()
	_, outboxWidth := tinyfont.LineWidth(font.font, "0")
	cols := 1
	if outboxWidth > 0 {
		cols = s.frame.W / int(outboxWidth)
	}
	fg := color.RGBA{A: 0xFF}

	y := 0
	for _, line := range lines {
		for len(line) > 0 {
			if y+int(font.fontHeight) > s.frame.H {
				_ = s.fb.Present()
				return
			}
			chunk, rest := takeRunes(line, cols)
			font.drawText(s.frame, 0, y, chunk, fg)
			y += int(font.fontHeight)
			line = strings.TrimLeft(rest, " \t")
		}
	}
	_ = s.fb.Present()
}

// takeRunes splits s after at most n runes.
func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if len(s) <= n {
		return s, ""
	}
	var i, count int
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		count++
	}
	return s[:i], s[i:]
}
