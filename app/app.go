package app

import (
	"errors"
	"fmt"
	"time"

	"sector/hal"
	"sector/internal/buildinfo"
	"sector/portal"
)

// The frame rate is measured over fpsIntervalTicks hal ticks.
const (
	fpsIntervalTicks = uint64(500 * time.Millisecond / hal.TickDuration)
	ticksPerSecond   = uint64(time.Second / hal.TickDuration)
)

// Config configures a render session.
type Config struct {
	Render  portal.Config
	Minimap portal.MinimapMode
	HUD     bool

	// SnapshotPath, when set, receives the frame numbered SnapshotFrame
	// (counting from 1) as a PNG scaled by SnapshotScale.
	SnapshotPath  string
	SnapshotFrame uint64
	SnapshotScale int

	// Speed is world units per tick, TurnSpeed radians per tick for the turn keys.
	Speed     float32
	TurnSpeed float32
	// MouseTurn is radians per unit of captured horizontal mouse motion.
	MouseTurn float32

	// Level builds the scene; nil means DefaultLevel.
	Level func() (*portal.Graph, error)
}

// DefaultConfig returns the stock session settings.
func DefaultConfig() Config {
	return Config{
		Render:        portal.DefaultConfig(),
		HUD:           true,
		SnapshotFrame: 1,
		SnapshotScale: 1,
		Speed:         0.05,
		TurnSpeed:     0.05,
		MouseTurn:     0.005,
	}
}

// New starts a session with the default config.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, DefaultConfig())
}

// NewWithConfig builds a session and returns its per-tick step. A setup
// failure is returned by the first step.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	s, err := newSession(h, cfg)
	if err != nil {
		return func() error { return err }
	}
	return s.guard(s.step)
}

type session struct {
	h   hal.HAL
	cfg Config
	log hal.Logger

	graph    *portal.Graph
	renderer *portal.Renderer
	player   Player
	controls Controls
	minimap  portal.MinimapMode
	hud      *hud

	fb    hal.Framebuffer
	frame *portal.Frame

	now       uint64
	frames    uint64
	fpsFrames uint64
	fpsSince  uint64
	fps       uint64
	stats     portal.Stats
}

func newSession(h hal.HAL, cfg Config) (*session, error) {
	if h == nil || h.Display() == nil || h.Display().Framebuffer() == nil {
		return nil, errors.New("app: no framebuffer")
	}
	fb := h.Display().Framebuffer()
	if fb.Format() != hal.PixelFormatRGBA8888 || fb.StrideBytes() != fb.Width()*4 {
		return nil, fmt.Errorf("app: unsupported framebuffer format %d stride %d", fb.Format(), fb.StrideBytes())
	}

	// The render size follows the framebuffer.
	cfg.Render.Width, cfg.Render.Height = fb.Width(), fb.Height()
	r, err := portal.NewRenderer(cfg.Render)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	frame, err := portal.WrapFrame(fb.Buffer(), fb.Width(), fb.Height())
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	level := cfg.Level
	if level == nil {
		level = DefaultLevel
	}
	g, err := level()
	if err != nil {
		return nil, fmt.Errorf("app: level: %w", err)
	}

	s := &session{
		h:        h,
		cfg:      cfg,
		log:      h.Logger(),
		graph:    g,
		renderer: r,
		player:   Player{Camera: StartCamera(g), Speed: cfg.Speed, TurnSpeed: cfg.TurnSpeed},
		minimap:  cfg.Minimap,
		fb:       fb,
		frame:    frame,
	}
	if cfg.HUD {
		s.hud = newHUD()
	}
	s.logf("%s: %dx%d, %d sectors, minimap %s", buildinfo.Title(""), fb.Width(), fb.Height(), g.Len(), s.minimap)
	return s, nil
}

func (s *session) logf(format string, args ...any) {
	if s.log == nil {
		return
	}
	s.log.WriteLineString(fmt.Sprintf(format, args...))
}

// step runs one tick: input, movement, render, present.
func (s *session) step() error {
	if err := s.handleInput(); err != nil {
		return err
	}
	s.drainTicks()

	s.player.Step(s.controls)
	if s.player.Relocate(s.graph) {
		s.logf("sector: %d", s.player.Camera.Sector)
	}

	s.render()
	if err := s.fb.Present(); err != nil {
		return err
	}
	s.frames++
	s.updateFPS()

	if s.cfg.SnapshotPath != "" && s.frames == s.cfg.SnapshotFrame {
		if err := WriteSnapshot(s.cfg.SnapshotPath, s.frame.Image(), s.cfg.SnapshotScale); err != nil {
			return err
		}
		s.logf("snapshot: wrote frame %d to %s", s.frames, s.cfg.SnapshotPath)
	}
	return nil
}

func (s *session) handleInput() error {
	in := s.h.Input()
	if in == nil {
		return nil
	}
	mouse := in.Mouse()
	if kbd := in.Keyboard(); kbd != nil {
		if err := s.handleKeys(kbd, mouse); err != nil {
			return err
		}
	}
	if mouse != nil {
		s.handleMouse(mouse)
	}
	return nil
}

func (s *session) handleKeys(kbd hal.Keyboard, mouse hal.Mouse) error {
	for {
		select {
		case ev := <-kbd.Events():
			s.controls.set(ev.Code, ev.Press)
			if !ev.Press {
				continue
			}
			switch ev.Code {
			case hal.KeyTab:
				s.minimap = s.minimap.Next()
			case hal.KeyEscape:
				// Escape releases a captured cursor first and exits only after that.
				if mouse != nil && mouse.Captured() {
					mouse.SetCaptured(false)
					continue
				}
				s.logf("exit")
				return hal.ErrExit
			}
		default:
			return nil
		}
	}
}

func (s *session) handleMouse(mouse hal.Mouse) {
	for {
		select {
		case ev := <-mouse.Events():
			switch ev.Button {
			case hal.MouseLeft:
				mouse.SetCaptured(true)
			case hal.MouseRight:
				mouse.SetCaptured(false)
			case hal.MouseNone:
				if mouse.Captured() {
					s.player.Turn(-s.cfg.MouseTurn * float32(ev.DX))
				}
			}
		default:
			return
		}
	}
}

// drainTicks keeps the newest hal tick as the session clock.
func (s *session) drainTicks() {
	t := s.h.Time()
	if t == nil || t.Ticks() == nil {
		return
	}
	for {
		select {
		case seq := <-t.Ticks():
			s.now = seq
		default:
			return
		}
	}
}

func (s *session) render() {
	bg := s.cfg.Render.Palette.Background
	s.fb.ClearRGB(bg.R, bg.G, bg.B)

	s.stats = s.renderer.Render(s.frame, s.graph, s.player.Camera)
	s.renderer.DrawMinimap(s.frame, s.graph, s.player.Camera, s.minimap)

	if s.hud != nil {
		status := fmt.Sprintf("%d fps  sector %d  %d/%d walls", s.fps, s.player.Camera.Sector, s.stats.Walls, s.stats.Walls+s.stats.Culled)
		hint := ""
		if s.minimap != portal.MinimapOff {
			hint = "map: " + s.minimap.String()
		}
		s.hud.draw(s.frame, status, hint)
	}
}

func (s *session) updateFPS() {
	s.fpsFrames++
	if s.fpsSince == 0 {
		s.fpsSince = s.now
		s.fpsFrames = 0
		return
	}
	elapsed := s.now - s.fpsSince
	if elapsed < fpsIntervalTicks {
		return
	}
	s.fps = s.fpsFrames * ticksPerSecond / elapsed
	s.fpsFrames = 0
	s.fpsSince = s.now
	s.h.Display().SetTitle(buildinfo.Title(fmt.Sprintf("%d fps", s.fps)))
}
