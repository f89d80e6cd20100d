package scene

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/orrery/internal/engine/renderer"
	"github.com/Faultbox/orrery/internal/engine/shader"
	"github.com/Faultbox/orrery/internal/engine/texture"
	"github.com/Faultbox/orrery/internal/logger"
	"github.com/Faultbox/orrery/internal/scene/shaders"
	"github.com/Faultbox/orrery/internal/sim"
)

// Config describes the scene's assets and lighting.
type Config struct {
	// ShaderDir overrides the embedded shaders when set.
	ShaderDir    string
	WatchShaders bool

	// Planets holds one entry per body, in system order.
	Planets []PlanetParams
	Skybox  texture.CubeFaces

	LightPos   mgl32.Vec3
	LightColor mgl32.Vec3
	ClearColor mgl32.Vec4
}

// Scene owns every GPU resource of the solar system.
type Scene struct {
	cfg     Config
	lib     *shader.Library
	watcher *shader.Watcher
	planets []*Planet
	skybox  *Skybox
}

// New compiles the shader programs and uploads every planet and the
// skybox. A GL context must be current.
func New(cfg Config, system *sim.System) (*Scene, error) {
	if len(cfg.Planets) != system.Len() {
		return nil, fmt.Errorf("scene: %d planet entries for %d bodies", len(cfg.Planets), system.Len())
	}

	s := &Scene{cfg: cfg}
	if err := s.loadShaders(); err != nil {
		return nil, err
	}

	for i, body := range system.Bodies() {
		p, err := NewPlanet(body, cfg.Planets[i], s.lib)
		if err != nil {
			s.Destroy()
			return nil, err
		}
		s.planets = append(s.planets, p)
	}

	sky, err := NewSkybox(cfg.Skybox, s.lib)
	if err != nil {
		s.Destroy()
		return nil, err
	}
	s.skybox = sky

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	logger.Info("scene ready",
		zap.Int("planets", len(s.planets)),
		zap.Strings("programs", s.lib.Names()),
	)
	return s, nil
}

// loadShaders compiles every program once. An on-disk directory that fails
// to build falls back to the embedded sources.
func (s *Scene) loadShaders() error {
	log := logger.Category(logger.CategoryShader)

	if s.cfg.ShaderDir != "" {
		lib, err := compileAll(os.DirFS(s.cfg.ShaderDir))
		if err == nil {
			s.lib = lib
			s.startWatcher()
			return nil
		}
		log.Error("shader directory failed, using embedded shaders",
			zap.String("dir", s.cfg.ShaderDir), zap.Error(err))
	}

	lib, err := compileAll(shaders.FS)
	if err != nil {
		return err
	}
	s.lib = lib
	return nil
}

func compileAll(fsys fs.FS) (*shader.Library, error) {
	lib := shader.NewLibrary(fsys)
	for _, def := range shaders.Definitions {
		if _, err := lib.Add(def); err != nil {
			lib.Delete()
			return nil, err
		}
	}
	return lib, nil
}

func (s *Scene) startWatcher() {
	if !s.cfg.WatchShaders {
		return
	}
	w, err := shader.NewWatcher(s.cfg.ShaderDir)
	if err != nil {
		logger.Category(logger.CategoryShader).Warn("shader hot reload disabled", zap.Error(err))
		return
	}
	s.watcher = w
	logger.Category(logger.CategoryShader).Info("watching shaders", zap.String("dir", s.cfg.ShaderDir))
}

// ReloadShaders recompiles programs if the watcher saw an edit. Programs
// that fail keep their previous version. Reports whether a reload ran.
func (s *Scene) ReloadShaders() bool {
	if s.watcher == nil || !s.watcher.Changed() {
		return false
	}
	log := logger.Category(logger.CategoryShader)
	if err := s.lib.Reload(); err != nil {
		log.Error("shader reload failed", zap.Error(err))
	} else {
		log.Info("shaders reloaded")
	}
	return true
}

// Frame builds the per-frame parameters from the camera matrices.
func (s *Scene) Frame(view, projection mgl32.Mat4, viewPos mgl32.Vec3) Frame {
	return Frame{
		View:       view,
		Projection: projection,
		ViewPos:    viewPos,
		LightPos:   s.cfg.LightPos,
		LightColor: s.cfg.LightColor,
	}
}

// Resize updates the viewport.
func (s *Scene) Resize(width, height int) {
	renderer.Viewport(width, height)
}

// Render clears the framebuffer and draws planets in system order, then
// the skybox.
func (s *Scene) Render(f Frame, showOrbits bool) {
	c := s.cfg.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	for _, p := range s.planets {
		p.Render(f, showOrbits)
	}
	if s.skybox != nil {
		s.skybox.Render(f)
	}
}

// Planets returns the planets in system order.
func (s *Scene) Planets() []*Planet {
	return s.planets
}

// Destroy releases every GPU resource. Later calls are no-ops.
func (s *Scene) Destroy() {
	for _, p := range s.planets {
		p.Destroy()
	}
	s.planets = nil
	if s.skybox != nil {
		s.skybox.Destroy()
		s.skybox = nil
	}
	if s.lib != nil {
		s.lib.Delete()
		s.lib = nil
	}
	if s.watcher != nil {
		s.watcher.Close()
		s.watcher = nil
	}
}
