package config

import (
	"errors"
	"fmt"
)

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Validate reports every problem found in the config.
func (c *Config) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		add("graphics: window size %dx%d must be positive", c.Graphics.Width, c.Graphics.Height)
	}

	cam := c.Camera
	if cam.Speed <= 0 {
		add("camera: speed must be positive")
	}
	if cam.Zoom <= 0 {
		add("camera: zoom must be positive")
	}
	if cam.FOV <= 0 || cam.FOV >= 180 {
		add("camera: fov %.1f out of range (0, 180)", cam.FOV)
	}
	if cam.Near <= 0 || cam.Far <= cam.Near {
		add("camera: need 0 < near < far, got near=%g far=%g", cam.Near, cam.Far)
	}
	if cam.MinSpeedMultiplier <= 0 || cam.MaxSpeedMultiplier < cam.MinSpeedMultiplier {
		add("camera: speed multiplier bounds [%g, %g] are invalid",
			cam.MinSpeedMultiplier, cam.MaxSpeedMultiplier)
	}
	if cam.Front == ([3]float32{}) || cam.Up == ([3]float32{}) {
		add("camera: front and up must be non-zero")
	}

	switch c.Simulation.OrbitPathAnchor {
	case "body", "origin":
	default:
		add("simulation: orbit_path_anchor %q must be body or origin", c.Simulation.OrbitPathAnchor)
	}

	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		add("audio: volume %.2f out of range [0, 1]", c.Audio.Volume)
	}

	if !logLevels[c.Logging.Level] {
		add("logging: unknown level %q", c.Logging.Level)
	}

	errs = append(errs, c.validateBodies()...)

	return errors.Join(errs...)
}

func (c *Config) validateBodies() []error {
	var errs []error
	if len(c.Bodies) == 0 {
		return []error{errors.New("bodies: at least one body is required")}
	}

	index := make(map[string]int, len(c.Bodies))
	for i, b := range c.Bodies {
		if b.Name == "" {
			errs = append(errs, fmt.Errorf("bodies[%d]: name is required", i))
			continue
		}
		if _, dup := index[b.Name]; dup {
			errs = append(errs, fmt.Errorf("bodies[%d]: duplicate name %q", i, b.Name))
			continue
		}
		index[b.Name] = i
	}

	for i, b := range c.Bodies {
		where := fmt.Sprintf("bodies[%d] (%s)", i, b.Name)
		if b.Radius <= 0 {
			errs = append(errs, fmt.Errorf("%s: radius must be positive", where))
		}
		if b.Sectors < 3 {
			errs = append(errs, fmt.Errorf("%s: sectors %d, need at least 3", where, b.Sectors))
		}
		if b.Stacks < 2 {
			errs = append(errs, fmt.Errorf("%s: stacks %d, need at least 2", where, b.Stacks))
		}
		if b.Distance < 0 {
			errs = append(errs, fmt.Errorf("%s: distance must not be negative", where))
		}
		if b.RingCount < 0 {
			errs = append(errs, fmt.Errorf("%s: ring_count must not be negative", where))
		}
		if b.RingCount > 0 && b.RingTexture == "" {
			errs = append(errs, fmt.Errorf("%s: ring_count set without ring_texture", where))
		}
		if b.Parent == "" {
			continue
		}
		if b.Parent == b.Name {
			errs = append(errs, fmt.Errorf("%s: orbits itself", where))
			continue
		}
		if _, ok := index[b.Parent]; !ok {
			errs = append(errs, fmt.Errorf("%s: unknown parent %q", where, b.Parent))
		}
	}

	if len(errs) == 0 {
		if err := checkParentCycles(c.Bodies, index); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// checkParentCycles follows every parent chain. Parents are assumed valid.
func checkParentCycles(bodies []BodyConfig, index map[string]int) error {
	for i := range bodies {
		seen := map[int]bool{}
		for cur := i; ; {
			if seen[cur] {
				return fmt.Errorf("bodies: parent chain of %q forms a cycle", bodies[i].Name)
			}
			seen[cur] = true
			p := bodies[cur].Parent
			if p == "" {
				break
			}
			cur = index[p]
		}
	}
	return nil
}
