// Package game implements the main loop and the simulation context.
package game

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/orrery/internal/config"
	"github.com/Faultbox/orrery/internal/engine/audio"
	"github.com/Faultbox/orrery/internal/engine/debug"
	"github.com/Faultbox/orrery/internal/engine/input"
	"github.com/Faultbox/orrery/internal/engine/renderer"
	"github.com/Faultbox/orrery/internal/engine/window"
	"github.com/Faultbox/orrery/internal/logger"
	"github.com/Faultbox/orrery/internal/scene"
)

// Game is the running demo.
type Game struct {
	cfg *config.Config

	window *window.Window
	input  *input.Input
	scene  *scene.Scene
	state  *State
	audio  *audio.Manager
	shots  *debug.ScreenshotCapture
}

// Run creates the demo, runs it until the window closes, and cleans up.
func Run(cfg *config.Config) error {
	g, err := New(cfg)
	if err != nil {
		return err
	}
	defer g.Close()
	return g.Run()
}

// New opens the window and uploads the scene.
func New(cfg *config.Config) (*Game, error) {
	logger.Info("initializing orrery",
		zap.String("title", cfg.Graphics.Title),
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Int("bodies", len(cfg.Bodies)),
	)

	// Pure setup first so config errors surface before a window opens.
	system, err := NewSystem(cfg)
	if err != nil {
		return nil, fmt.Errorf("building system: %w", err)
	}
	sceneCfg, err := SceneConfig(cfg)
	if err != nil {
		return nil, err
	}
	bindings, err := Bindings(cfg)
	if err != nil {
		return nil, err
	}

	g := &Game{cfg: cfg}

	g.window, err = window.New(window.Config{
		Title:         cfg.Graphics.Title,
		Width:         cfg.Graphics.Width,
		Height:        cfg.Graphics.Height,
		Fullscreen:    cfg.Graphics.Fullscreen,
		VSync:         cfg.Graphics.VSync,
		RelativeMouse: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// OpenGL must be loaded AFTER the context exists.
	if _, err := renderer.Init(); err != nil {
		g.Close()
		return nil, err
	}

	g.scene, err = scene.New(sceneCfg, system)
	if err != nil {
		g.Close()
		return nil, fmt.Errorf("failed to create scene: %w", err)
	}
	g.scene.Resize(g.window.DrawableSize())

	g.state = NewState(system, StateOptions(cfg, g.window.Aspect()))
	g.input = input.New(bindings)
	g.shots = debug.NewScreenshotCapture(cfg.Screenshots.Dir, "orrery")
	g.startAudio()

	logger.Info("orrery initialized")
	return g, nil
}

// startAudio plays the ambient track when one is configured. Failures
// leave the demo silent.
func (g *Game) startAudio() {
	path := g.cfg.AssetPath(g.cfg.Audio.Ambient)
	if path == "" {
		return
	}
	log := logger.Category(logger.CategoryAudio)

	m := audio.New(float64(g.cfg.Audio.Volume), g.state.Muted)
	if err := m.Init(); err != nil {
		log.Warn("audio unavailable", zap.Error(err))
		return
	}
	m.SetPaused(g.state.Paused())
	if err := m.PlayAmbient(path); err != nil {
		log.Warn("failed to play ambient track", zap.String("path", path), zap.Error(err))
		m.Close()
		return
	}
	log.Info("ambient track playing", zap.String("path", path))
	g.audio = m
}

// Run runs the frame loop until quit.
func (g *Game) Run() error {
	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting main loop")

	for {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		// 1. Process input
		if g.input.Update() {
			break
		}
		for _, event := range g.input.Events() {
			if event.Type == input.EventWindowResize {
				g.resize()
			}
		}

		// 2. Update simulation
		wall := time.Duration(window.Elapsed()) * time.Millisecond
		res := g.state.Step(g.input.Snapshot(), wall, dt)
		if res.Quit {
			break
		}
		g.apply(res)

		if g.scene.ReloadShaders() {
			logger.Info("shaders reloaded")
		}

		// 3. Render
		cam := g.state.Camera
		g.scene.Render(g.scene.Frame(cam.View(), cam.Projection(), cam.Position), g.state.ShowOrbits)
		if res.Screenshot {
			g.screenshot()
		}

		// 4. Present
		g.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps",
				zap.Int("count", frameCount),
				zap.Float32("sim_time", g.state.Time),
				zap.Bool("paused", g.state.Paused()),
			)
			if errs := renderer.DrainErrors(); len(errs) > 0 {
				logger.Warn("OpenGL errors", zap.Strings("errors", errs))
			}
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	logger.Info("main loop finished")
	return nil
}

// apply forwards step side effects to the audio player.
func (g *Game) apply(res StepResult) {
	if res.PauseChanged {
		logger.Debug("pause toggled", zap.Bool("paused", g.state.Paused()))
	}
	if g.audio == nil {
		return
	}
	if res.MuteChanged {
		g.audio.SetMuted(g.state.Muted)
	}
	if res.PauseChanged {
		g.audio.SetPaused(g.state.Paused())
	}
}

func (g *Game) resize() {
	w, h := g.window.DrawableSize()
	if w <= 0 || h <= 0 {
		return
	}
	g.scene.Resize(w, h)
	g.state.Camera.SetAspect(g.window.Aspect())
}

func (g *Game) screenshot() {
	w, h := g.window.DrawableSize()
	path, err := g.shots.CaptureFramebuffer(w, h)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// Close releases every resource. Safe to call on a partially built Game.
func (g *Game) Close() {
	logger.Info("closing orrery")

	if g.audio != nil {
		g.audio.Close()
		g.audio = nil
	}
	if g.scene != nil {
		g.scene.Destroy()
		g.scene = nil
	}
	if g.window != nil {
		g.window.Close()
		g.window = nil
	}
}
