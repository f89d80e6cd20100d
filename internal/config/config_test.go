package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Faultbox/orrery/internal/sim"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 800 || cfg.Graphics.Height != 600 {
		t.Errorf("expected 800x600, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if cfg.Camera.Speed != 5 || cfg.Camera.Zoom != 7 {
		t.Errorf("camera speed/zoom = %f/%f, want 5/7", cfg.Camera.Speed, cfg.Camera.Zoom)
	}
	if cfg.Camera.Position != [3]float32{0, 7, 0} {
		t.Errorf("camera position = %v", cfg.Camera.Position)
	}
	if cfg.Lighting.Color != [3]float32{1, 1, 0.8} {
		t.Errorf("light color = %v", cfg.Lighting.Color)
	}
	if cfg.Simulation.OrbitPathAnchor != "body" || !cfg.Simulation.ShowOrbits {
		t.Error("orbit paths should be shown and anchored to the body by default")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestDefaultBodies(t *testing.T) {
	bodies := DefaultBodies()
	if len(bodies) != 11 {
		t.Fatalf("expected 11 bodies, got %d", len(bodies))
	}

	lights := 0
	for _, b := range bodies {
		if b.LightSource {
			lights++
			if b.Name != "sun" {
				t.Errorf("unexpected light source %s", b.Name)
			}
		}
		if b.Sectors != 36 || b.Stacks != 18 {
			t.Errorf("%s: tessellation %dx%d, want 36x18", b.Name, b.Sectors, b.Stacks)
		}
	}
	if lights != 1 {
		t.Errorf("expected one light source, got %d", lights)
	}

	for _, b := range bodies {
		switch b.Name {
		case "moon":
			if b.Parent != "earth" {
				t.Errorf("moon parent = %q, want earth", b.Parent)
			}
		case "saturn":
			if b.RingCount != 20 || b.RingTexture == "" {
				t.Errorf("saturn rings = %d %q", b.RingCount, b.RingTexture)
			}
		case "earth", "venus":
			if b.CloudTexture == "" {
				t.Errorf("%s should have clouds", b.Name)
			}
		}
	}
}

func TestBodySpecs(t *testing.T) {
	cfg := Default()
	specs, err := cfg.BodySpecs()
	if err != nil {
		t.Fatalf("BodySpecs: %v", err)
	}

	sys, err := sim.NewSystem(specs)
	if err != nil {
		t.Fatalf("NewSystem: %v", err)
	}

	moon, ok := sys.Find("moon")
	if !ok {
		t.Fatal("moon missing")
	}
	earth, _ := sys.Find("earth")
	if sys.Parent(moon) != sys.Body(earth) {
		t.Error("moon should orbit earth")
	}

	for i, s := range specs {
		if s.Name != "moon" && s.Parent != sim.NoParent {
			t.Errorf("%s: parent %d, want none", s.Name, specs[i].Parent)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero width", func(c *Config) { c.Graphics.Width = 0 }, "window size"},
		{"near beyond far", func(c *Config) { c.Camera.Near = 200 }, "near < far"},
		{"inverted speed bounds", func(c *Config) {
			c.Camera.MinSpeedMultiplier, c.Camera.MaxSpeedMultiplier = 5, 1
		}, "speed multiplier bounds"},
		{"bad anchor", func(c *Config) { c.Simulation.OrbitPathAnchor = "sun" }, "orbit_path_anchor"},
		{"loud", func(c *Config) { c.Audio.Volume = 2 }, "volume"},
		{"log level", func(c *Config) { c.Logging.Level = "trace" }, "unknown level"},
		{"no bodies", func(c *Config) { c.Bodies = nil }, "at least one body"},
		{"few sectors", func(c *Config) { c.Bodies[1].Sectors = 2 }, "sectors"},
		{"few stacks", func(c *Config) { c.Bodies[1].Stacks = 1 }, "stacks"},
		{"zero radius", func(c *Config) { c.Bodies[1].Radius = 0 }, "radius"},
		{"duplicate name", func(c *Config) { c.Bodies[2].Name = c.Bodies[1].Name }, "duplicate name"},
		{"unknown parent", func(c *Config) { c.Bodies[4].Parent = "vulcan" }, "unknown parent"},
		{"self parent", func(c *Config) { c.Bodies[1].Parent = c.Bodies[1].Name }, "orbits itself"},
		{"cycle", func(c *Config) {
			c.Bodies[1].Parent = c.Bodies[2].Name
			c.Bodies[2].Parent = c.Bodies[1].Name
		}, "cycle"},
		{"rings without texture", func(c *Config) { c.Bodies[1].RingCount = 3 }, "ring_texture"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false

camera:
  speed: 8

simulation:
  orbit_path_anchor: origin
  start_paused: true

audio:
  ambient: "Audio/space.ogg"
  volume: 0.25
  muted: true

controls:
  bindings:
    toggle_pause: [Pause]

logging:
  level: "debug"
  log_file: "orrery.log"
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 || cfg.Graphics.Height != 1080 {
		t.Errorf("size = %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if !cfg.Graphics.Fullscreen || cfg.Graphics.VSync {
		t.Error("fullscreen/vsync not loaded")
	}
	if cfg.Camera.Speed != 8 {
		t.Errorf("camera speed = %f, want 8", cfg.Camera.Speed)
	}
	// Unset fields keep their defaults.
	if cfg.Camera.Zoom != 7 {
		t.Errorf("camera zoom = %f, want default 7", cfg.Camera.Zoom)
	}
	if cfg.Simulation.OrbitPathAnchor != "origin" || !cfg.Simulation.StartPaused {
		t.Error("simulation section not loaded")
	}
	if cfg.Audio.Ambient != "Audio/space.ogg" || cfg.Audio.Volume != 0.25 || !cfg.Audio.Muted {
		t.Errorf("audio = %+v", cfg.Audio)
	}
	if got := cfg.Controls.Bindings["toggle_pause"]; len(got) != 1 || got[0] != "Pause" {
		t.Errorf("bindings = %v", cfg.Controls.Bindings)
	}
	if len(cfg.Bodies) != 11 {
		t.Errorf("bodies should keep the default catalogue, got %d", len(cfg.Bodies))
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.LogFile != "orrery.log" {
		t.Errorf("logging = %+v", cfg.Logging)
	}
}

func TestLoadFromFileReplacesBodies(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	yamlContent := `
bodies:
  - name: star
    radius: 2
    sectors: 12
    stacks: 6
    light_source: true
    texture: star.png
  - name: rock
    radius: 0.5
    sectors: 12
    stacks: 6
    distance: 5
    orbit_speed: 1
    texture: rock.png
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(cfg.Bodies) != 2 || cfg.Bodies[1].Name != "rock" {
		t.Errorf("bodies = %+v", cfg.Bodies)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"syntax", "graphics:\n  width: not a number\n  invalid syntax here\n"},
		{"unknown key", "graphics:\n  widht: 100\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "invalid.yaml")
			if err := os.WriteFile(configPath, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			if err := loadFromFile(Default(), configPath); err == nil {
				t.Error("expected error loading invalid YAML, got nil")
			}
		})
	}
}

func TestLoadFromFileEmpty(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(configPath, nil, 0644); err != nil {
		t.Fatal(err)
	}
	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Errorf("empty file should keep defaults: %v", err)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	if err := loadFromFile(Default(), "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestLoadFileRejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("camera:\n  fov: 0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(configPath); err == nil || !strings.Contains(err.Error(), "fov") {
		t.Errorf("LoadFile error = %v, want fov complaint", err)
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	if err := os.WriteFile(filepath.Join(tmpDir, "config.yaml"), []byte("graphics:\n  width: 640\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "windowed flag",
			setup: func() { *flagWindowed = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be false with windowed flag")
				}
			},
			teardown: func() { *flagWindowed = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Width != 2560 || cfg.Graphics.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name:  "assets flag",
			setup: func() { *flagAssets = "/srv/orrery" },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Assets.Dir != "/srv/orrery" {
					t.Errorf("assets dir = %s", cfg.Assets.Dir)
				}
			},
			teardown: func() { *flagAssets = "" },
		},
		{
			name:  "watch shaders flag",
			setup: func() { *flagWatchShaders = "dev/shaders" },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Assets.ShaderDir != "dev/shaders" || !cfg.Assets.WatchShaders {
					t.Errorf("assets = %+v", cfg.Assets)
				}
			},
			teardown: func() { *flagWatchShaders = "" },
		},
		{
			name:  "paused flag",
			setup: func() { *flagPaused = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Simulation.StartPaused {
					t.Error("expected start_paused with paused flag")
				}
			},
			teardown: func() { *flagPaused = false },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	yamlContent := `
graphics:
  width: 1600
  height: 900
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width from flag, height from file
	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Simulation.OrbitPathAnchor = "origin"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if loaded.Simulation.OrbitPathAnchor != "origin" || len(loaded.Bodies) != len(cfg.Bodies) {
		t.Errorf("round trip lost data: %+v", loaded.Simulation)
	}

	cfg.Graphics.Width = -1
	if err := cfg.SaveTo(path); err == nil {
		t.Error("SaveTo should refuse an invalid config")
	}
}

func TestAssetPath(t *testing.T) {
	cfg := Default()
	cfg.Assets.Dir = "assets"

	if got := cfg.AssetPath("Textures/Sun/sun.jpg"); got != filepath.Join("assets", "Textures/Sun/sun.jpg") {
		t.Errorf("relative path = %s", got)
	}
	if got := cfg.AssetPath("/abs/sun.jpg"); got != "/abs/sun.jpg" {
		t.Errorf("absolute path = %s", got)
	}
	if got := cfg.AssetPath(""); got != "" {
		t.Errorf("empty path = %q", got)
	}

	faces := cfg.SkyboxFaces()
	if faces[0] != filepath.Join("assets", "Textures/Skybox/right.jpg") ||
		faces[5] != filepath.Join("assets", "Textures/Skybox/back.jpg") {
		t.Errorf("faces = %v", faces)
	}
}
