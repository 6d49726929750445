package hal

import "sync"

type hostMouse struct {
	ch chan MouseEvent

	mu       sync.Mutex
	captured bool
	// applied is the capture state the window last pushed to the OS cursor.
	applied bool

	lastX, lastY int
	havePos      bool
}

func newHostMouse() *hostMouse {
	return &hostMouse{ch: make(chan MouseEvent, 64)}
}

func (m *hostMouse) Events() <-chan MouseEvent { return m.ch }

func (m *hostMouse) SetCaptured(on bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.captured = on
}

func (m *hostMouse) Captured() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.captured
}

func (m *hostMouse) emit(ev MouseEvent) {
	select {
	case m.ch <- ev:
	default:
	}
}

// motion turns an absolute cursor position into a relative motion event.
func (m *hostMouse) motion(x, y int) {
	if !m.havePos {
		m.lastX, m.lastY, m.havePos = x, y, true
		return
	}
	dx, dy := x-m.lastX, y-m.lastY
	m.lastX, m.lastY = x, y
	if dx == 0 && dy == 0 {
		return
	}
	if m.Captured() {
		m.emit(MouseEvent{DX: float64(dx), DY: float64(dy)})
	}
}
