package game

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/orrery/internal/config"
	"github.com/Faultbox/orrery/internal/engine/camera"
	"github.com/Faultbox/orrery/internal/engine/input"
	"github.com/Faultbox/orrery/internal/engine/texture"
	"github.com/Faultbox/orrery/internal/scene"
	"github.com/Faultbox/orrery/internal/sim"
)

// NewSystem builds the body tree from the configured catalogue.
func NewSystem(cfg *config.Config) (*sim.System, error) {
	specs, err := cfg.BodySpecs()
	if err != nil {
		return nil, err
	}
	return sim.NewSystem(specs)
}

// StateOptions maps the config onto State options for a window of the
// given aspect ratio.
func StateOptions(cfg *config.Config, aspect float32) Options {
	c := cfg.Camera
	return Options{
		Camera: camera.Config{
			Speed:              c.Speed,
			Zoom:               c.Zoom,
			Position:           mgl32.Vec3(c.Position),
			Front:              mgl32.Vec3(c.Front),
			Up:                 mgl32.Vec3(c.Up),
			FOV:                c.FOV,
			Near:               c.Near,
			Far:                c.Far,
			Aspect:             aspect,
			MinSpeedMultiplier: c.MinSpeedMultiplier,
			MaxSpeedMultiplier: c.MaxSpeedMultiplier,
		},
		MouseSensitivity: cfg.Controls.MouseSensitivity,
		ShowOrbits:       cfg.Simulation.ShowOrbits,
		StartPaused:      cfg.Simulation.StartPaused,
		Muted:            cfg.Audio.Muted,
	}
}

// SceneConfig resolves asset paths and lighting for scene.New.
func SceneConfig(cfg *config.Config) (scene.Config, error) {
	anchor, err := scene.ParseAnchor(cfg.Simulation.OrbitPathAnchor)
	if err != nil {
		return scene.Config{}, fmt.Errorf("simulation.orbit_path_anchor: %w", err)
	}

	planets := make([]scene.PlanetParams, len(cfg.Bodies))
	for i, b := range cfg.Bodies {
		planets[i] = scene.PlanetParams{
			Texture:      cfg.AssetPath(b.Texture),
			CloudTexture: cfg.AssetPath(b.CloudTexture),
			RingTexture:  cfg.AssetPath(b.RingTexture),
			RingCount:    b.RingCount,
			Anchor:       anchor,
		}
	}

	return scene.Config{
		ShaderDir:    cfg.AssetPath(cfg.Assets.ShaderDir),
		WatchShaders: cfg.Assets.WatchShaders,
		Planets:      planets,
		Skybox:       texture.CubeFaces(cfg.SkyboxFaces()),
		LightPos:     mgl32.Vec3(cfg.Lighting.Position),
		LightColor:   mgl32.Vec3(cfg.Lighting.Color),
		ClearColor:   mgl32.Vec4(cfg.Graphics.ClearColor),
	}, nil
}

// Bindings returns the default key bindings with config overrides applied.
func Bindings(cfg *config.Config) (input.Bindings, error) {
	b := input.DefaultBindings()
	if err := b.Override(cfg.Controls.Bindings); err != nil {
		return nil, fmt.Errorf("controls.bindings: %w", err)
	}
	return b, nil
}
