package config

import (
	"fmt"
	"path/filepath"

	"github.com/Faultbox/orrery/internal/sim"
)

// BodySpecs converts the body list for sim.NewSystem, resolving parent
// names into indices.
func (c *Config) BodySpecs() ([]sim.BodySpec, error) {
	index := make(map[string]int, len(c.Bodies))
	for i, b := range c.Bodies {
		index[b.Name] = i
	}

	specs := make([]sim.BodySpec, len(c.Bodies))
	for i, b := range c.Bodies {
		parent := sim.NoParent
		if b.Parent != "" {
			p, ok := index[b.Parent]
			if !ok {
				return nil, fmt.Errorf("body %s: unknown parent %q", b.Name, b.Parent)
			}
			parent = p
		}
		specs[i] = sim.BodySpec{
			Name:            b.Name,
			Radius:          b.Radius,
			Sectors:         b.Sectors,
			Stacks:          b.Stacks,
			Distance:        b.Distance,
			OrbitSpeed:      b.OrbitSpeed,
			SelfSpeed:       b.SelfSpeed,
			LightSource:     b.LightSource,
			Parent:          parent,
			SatelliteRadius: b.SatelliteRadius,
			SatelliteRate:   b.SatelliteRate,
		}
	}
	return specs, nil
}

// AssetPath resolves an asset-relative path. Empty and absolute paths are
// returned unchanged.
func (c *Config) AssetPath(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Assets.Dir, p)
}

// SkyboxFaces returns the resolved face paths in +X, -X, +Y, -Y, +Z, -Z order.
func (c *Config) SkyboxFaces() [6]string {
	s := c.Assets.Skybox
	return [6]string{
		c.AssetPath(s.Right),
		c.AssetPath(s.Left),
		c.AssetPath(s.Top),
		c.AssetPath(s.Bottom),
		c.AssetPath(s.Front),
		c.AssetPath(s.Back),
	}
}
