// Package config handles configuration loading and management.
package config

// Config holds all settings.
type Config struct {
	Graphics    GraphicsConfig   `yaml:"graphics"`
	Camera      CameraConfig     `yaml:"camera"`
	Controls    ControlsConfig   `yaml:"controls"`
	Simulation  SimulationConfig `yaml:"simulation"`
	Lighting    LightingConfig   `yaml:"lighting"`
	Assets      AssetsConfig     `yaml:"assets"`
	Audio       AudioConfig      `yaml:"audio"`
	Bodies      []BodyConfig     `yaml:"bodies"`
	Logging     LoggingConfig    `yaml:"logging"`
	Screenshots ScreenshotConfig `yaml:"screenshots"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Title      string     `yaml:"title"`
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	Fullscreen bool       `yaml:"fullscreen"`
	VSync      bool       `yaml:"vsync"`
	ClearColor [4]float32 `yaml:"clear_color"`
}

// CameraConfig holds the starting camera.
type CameraConfig struct {
	Speed              float32    `yaml:"speed"`
	Zoom               float32    `yaml:"zoom"`
	Position           [3]float32 `yaml:"position"`
	Front              [3]float32 `yaml:"front"`
	Up                 [3]float32 `yaml:"up"`
	FOV                float32    `yaml:"fov"`
	Near               float32    `yaml:"near"`
	Far                float32    `yaml:"far"`
	MinSpeedMultiplier float32    `yaml:"min_speed_multiplier"`
	MaxSpeedMultiplier float32    `yaml:"max_speed_multiplier"`
}

// ControlsConfig holds mouse settings and key binding overrides.
type ControlsConfig struct {
	MouseSensitivity float32 `yaml:"mouse_sensitivity"`
	// Bindings maps action names to SDL key names, e.g. toggle_pause: [P].
	Bindings map[string][]string `yaml:"bindings,omitempty"`
}

// SimulationConfig holds clock and orbit options.
type SimulationConfig struct {
	StartPaused     bool   `yaml:"start_paused"`
	ShowOrbits      bool   `yaml:"show_orbits"`
	OrbitPathAnchor string `yaml:"orbit_path_anchor"` // body or origin
}

// LightingConfig holds the point light.
type LightingConfig struct {
	Position [3]float32 `yaml:"position"`
	Color    [3]float32 `yaml:"color"`
}

// AssetsConfig holds asset locations. Relative paths resolve against Dir.
type AssetsConfig struct {
	Dir          string       `yaml:"dir"`
	ShaderDir    string       `yaml:"shader_dir"` // empty uses embedded shaders
	WatchShaders bool         `yaml:"watch_shaders"`
	Skybox       SkyboxConfig `yaml:"skybox"`
}

// SkyboxConfig names the six cubemap faces.
type SkyboxConfig struct {
	Right  string `yaml:"right"`
	Left   string `yaml:"left"`
	Top    string `yaml:"top"`
	Bottom string `yaml:"bottom"`
	Front  string `yaml:"front"`
	Back   string `yaml:"back"`
}

// AudioConfig holds the ambient soundtrack.
type AudioConfig struct {
	Ambient string  `yaml:"ambient"` // empty disables audio
	Volume  float32 `yaml:"volume"`
	Muted   bool    `yaml:"muted"`
}

// BodyConfig describes one celestial body. A body list in a config file
// replaces the default catalogue entirely.
type BodyConfig struct {
	Name        string  `yaml:"name"`
	Radius      float32 `yaml:"radius"`
	Sectors     int     `yaml:"sectors"`
	Stacks      int     `yaml:"stacks"`
	Distance    float32 `yaml:"distance"`
	OrbitSpeed  float32 `yaml:"orbit_speed"`
	SelfSpeed   float32 `yaml:"self_speed"`
	LightSource bool    `yaml:"light_source,omitempty"`
	Parent      string  `yaml:"parent,omitempty"`

	SatelliteRadius float32 `yaml:"satellite_radius,omitempty"`
	SatelliteRate   float32 `yaml:"satellite_rate,omitempty"`

	Texture      string `yaml:"texture"`
	CloudTexture string `yaml:"cloud_texture,omitempty"`
	RingTexture  string `yaml:"ring_texture,omitempty"`
	RingCount    int    `yaml:"ring_count,omitempty"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// ScreenshotConfig holds screenshot output settings.
type ScreenshotConfig struct {
	Dir string `yaml:"dir"`
}

// Default returns the full solar system with its stock settings.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Title:      "Orrery",
			Width:      800,
			Height:     600,
			VSync:      true,
			ClearColor: [4]float32{1.0, 0.68, 0.79, 1.0},
		},
		Camera: CameraConfig{
			Speed:              5,
			Zoom:               7,
			Position:           [3]float32{0, 7, 0},
			Front:              [3]float32{0, 0, -1},
			Up:                 [3]float32{0, 1, 0},
			FOV:                45,
			Near:               0.1,
			Far:                100,
			MinSpeedMultiplier: 0.1,
			MaxSpeedMultiplier: 10,
		},
		Controls: ControlsConfig{
			MouseSensitivity: 0.1,
		},
		Simulation: SimulationConfig{
			ShowOrbits:      true,
			OrbitPathAnchor: "body",
		},
		Lighting: LightingConfig{
			Position: [3]float32{0, 0, 0},
			Color:    [3]float32{1, 1, 0.8},
		},
		Assets: AssetsConfig{
			Dir: ".",
			Skybox: SkyboxConfig{
				Right:  "Textures/Skybox/right.jpg",
				Left:   "Textures/Skybox/left.jpg",
				Top:    "Textures/Skybox/top.jpg",
				Bottom: "Textures/Skybox/bottom.jpg",
				Front:  "Textures/Skybox/front.jpg",
				Back:   "Textures/Skybox/back.jpg",
			},
		},
		Audio: AudioConfig{
			Volume: 0.6,
		},
		Bodies: DefaultBodies(),
		Logging: LoggingConfig{
			Level: "info",
		},
		Screenshots: ScreenshotConfig{
			Dir: "screenshots",
		},
	}
}

// sunSpin is 10 degrees per second.
const sunSpin = 0.17453292

// DefaultBodies returns the sun, nine orbiting bodies and the moon.
func DefaultBodies() []BodyConfig {
	body := func(name string, radius, distance, orbit, self float32, tex string) BodyConfig {
		return BodyConfig{
			Name:       name,
			Radius:     radius,
			Sectors:    36,
			Stacks:     18,
			Distance:   distance,
			OrbitSpeed: orbit,
			SelfSpeed:  self,
			Texture:    tex,
		}
	}

	sun := body("sun", 5, 0, 0, sunSpin, "Textures/Sun/sun.jpg")
	sun.LightSource = true

	venus := body("venus", 0.48, 9.5, 0.62, 0.00017, "Textures/Venus/venus_surface.jpg")
	venus.CloudTexture = "Textures/Venus/venus_atmosphere.jpg"

	earth := body("earth", 0.5, 12, 0.2, 0.04167, "Textures/Earth/earth_surface.jpg")
	earth.CloudTexture = "Textures/Earth/earth_clouds.jpg"

	moon := body("moon", 0.19, 12, 0.2, 0.00071, "Textures/Earth/moon.jpg")
	moon.Parent = "earth"

	saturn := body("saturn", 2.5, 27.5, 0.03, 0.20926, "Textures/Saturn/saturn.jpg")
	saturn.RingTexture = "Textures/Saturn/saturn_ring.png"
	saturn.RingCount = 20

	return []BodyConfig{
		sun,
		body("mercury", 0.19, 7.2, 1.05, 0.00071, "Textures/Mercury/mercury.jpg"),
		venus,
		earth,
		moon,
		body("mars", 0.27, 14.2, 0.43, 0.0406, "Textures/Mars/mars.jpg"),
		body("jupiter", 3, 19.5, 0.08, 0.1, "Textures/Jupiter/jupiter.jpg"),
		saturn,
		body("uranus", 1.5, 35, 0.1, 0.05818, "Textures/Uranus/uranus.jpg"),
		body("neptune", 1.4, 39, 0.006, 0.06192, "Textures/Neptune/neptune.jpg"),
		body("pluto", 0.1, 41.5, 0.004, 0.00063, "Textures/Pluto/pluto.jpg"),
	}
}
