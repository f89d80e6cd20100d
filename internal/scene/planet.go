package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/orrery/internal/engine/geometry"
	"github.com/Faultbox/orrery/internal/engine/mesh"
	"github.com/Faultbox/orrery/internal/engine/shader"
	"github.com/Faultbox/orrery/internal/engine/texture"
	"github.com/Faultbox/orrery/internal/logger"
	"github.com/Faultbox/orrery/internal/scene/shaders"
	"github.com/Faultbox/orrery/internal/sim"
)

// Frame carries the per-frame parameters shared by every draw call.
type Frame struct {
	View       mgl32.Mat4
	Projection mgl32.Mat4
	ViewPos    mgl32.Vec3
	LightPos   mgl32.Vec3
	LightColor mgl32.Vec3
}

// PlanetParams names a planet's assets.
type PlanetParams struct {
	Texture      string
	CloudTexture string // optional
	RingTexture  string // optional, enables rings
	RingCount    int
	Anchor       Anchor
}

// Texture units used by the planet program.
const (
	unitSurface = 0
	unitClouds  = 1
)

// Planet renders a sim.Body with its textures, rings and orbit path.
type Planet struct {
	body   *sim.Body
	params PlanetParams

	sphere     *mesh.GPU
	orbitPath  *mesh.GPU
	rings      []*mesh.GPU
	ringColors []mgl32.Vec4

	surface *texture.Texture
	clouds  *texture.Texture

	planetProg *shader.Program
	orbitProg  *shader.Program

	destroyed bool
}

// NewPlanet uploads the meshes and textures for body. Programs come from
// lib, which must already hold the planet and orbit programs. Texture
// failures are logged and leave a black placeholder.
func NewPlanet(body *sim.Body, params PlanetParams, lib *shader.Library) (*Planet, error) {
	planetProg, ok := lib.Get(shaders.Planet)
	if !ok {
		return nil, fmt.Errorf("planet %s: program %q not loaded", body.Name(), shaders.Planet)
	}
	orbitProg, ok := lib.Get(shaders.Orbit)
	if !ok {
		return nil, fmt.Errorf("planet %s: program %q not loaded", body.Name(), shaders.Orbit)
	}

	spec := body.Spec()
	sphere, err := geometry.Sphere(spec.Radius, spec.Sectors, spec.Stacks)
	if err != nil {
		return nil, fmt.Errorf("planet %s: %w", body.Name(), err)
	}

	p := &Planet{
		body:       body,
		params:     params,
		planetProg: planetProg,
		orbitProg:  orbitProg,
		sphere:     mesh.Upload(sphere),
	}

	if !body.IsLightSource() && spec.Distance > 0 {
		path, err := geometry.Torus(spec.Distance, OrbitPathThickness, OrbitPathSegments, OrbitPathSegments)
		if err != nil {
			p.Destroy()
			return nil, fmt.Errorf("planet %s orbit path: %w", body.Name(), err)
		}
		p.orbitPath = mesh.Upload(path)
	}

	texLog := logger.Category(logger.CategoryTexture).With(zap.String("planet", body.Name()))

	p.surface, err = texture.Load2D(params.Texture)
	if err != nil {
		texLog.Warn("surface texture failed to load", zap.String("path", params.Texture), zap.Error(err))
	}
	if params.CloudTexture != "" {
		p.clouds, err = texture.Load2D(params.CloudTexture)
		if err != nil {
			texLog.Warn("cloud texture failed to load", zap.String("path", params.CloudTexture), zap.Error(err))
		}
	}

	if params.RingTexture != "" && params.RingCount > 0 {
		if err := p.setupRings(spec.Radius, texLog); err != nil {
			p.Destroy()
			return nil, err
		}
	}

	return p, nil
}

func (p *Planet) setupRings(radius float32, log *zap.Logger) error {
	for _, outer := range RingRadii(radius, p.params.RingCount) {
		ring, err := geometry.Torus(outer, RingInnerRadius, RingSegments, RingSegments)
		if err != nil {
			return fmt.Errorf("planet %s ring: %w", p.body.Name(), err)
		}
		p.rings = append(p.rings, mesh.Upload(ring))
	}

	colors, err := texture.SampleStripFile(p.params.RingTexture, p.params.RingCount)
	if err != nil {
		log.Warn("ring texture failed to load, using white",
			zap.String("path", p.params.RingTexture), zap.Error(err))
	}
	p.ringColors = colors
	return nil
}

// Body returns the simulated body.
func (p *Planet) Body() *sim.Body {
	return p.body
}

// RingCount returns the number of uploaded rings.
func (p *Planet) RingCount() int {
	return len(p.rings)
}

// Render draws the body, then its rings, then its orbit path when
// showOrbitPath is set. Light sources never draw an orbit path.
func (p *Planet) Render(f Frame, showOrbitPath bool) {
	if p.destroyed {
		return
	}
	model := p.body.Model()

	prog := p.planetProg
	prog.Use()
	prog.SetMat4("model", model)
	prog.SetMat4("view", f.View)
	prog.SetMat4("projection", f.Projection)
	prog.SetVec3("lightPos", f.LightPos)
	prog.SetVec3("lightColor", f.LightColor)
	prog.SetVec3("viewPos", f.ViewPos)
	prog.SetBool("isLightSource", p.body.IsLightSource())
	prog.SetBool("hasClouds", p.clouds != nil)

	p.surface.Bind(unitSurface)
	prog.SetInt("textureToSet", unitSurface)
	if p.clouds != nil {
		p.clouds.Bind(unitClouds)
		prog.SetInt("cloudTexture", unitClouds)
	}
	p.sphere.Draw()

	if len(p.rings) == 0 && (!showOrbitPath || p.orbitPath == nil) {
		return
	}

	orbit := p.orbitProg
	orbit.Use()
	orbit.SetMat4("view", f.View)
	orbit.SetMat4("projection", f.Projection)
	orbit.SetVec3("lightPos", f.LightPos)
	orbit.SetVec3("lightColor", f.LightColor)
	orbit.SetVec3("viewPos", f.ViewPos)
	orbit.SetBool("ignoreLights", true)

	orbit.SetMat4("model", model)
	for i, ring := range p.rings {
		orbit.SetVec4("colorToSet", p.ringColors[i])
		ring.Draw()
	}

	if showOrbitPath && p.orbitPath != nil {
		orbit.SetMat4("model", OrbitPathModel(p.params.Anchor, model))
		orbit.SetVec4("colorToSet", mgl32.Vec4{1, 1, 1, 1})
		p.orbitPath.Draw()
	}
}

// Destroy releases meshes and textures. Later calls are no-ops.
// Programs belong to the library and are not released here.
func (p *Planet) Destroy() {
	if p.destroyed {
		return
	}
	p.destroyed = true

	p.sphere.Destroy()
	p.orbitPath.Destroy()
	for _, r := range p.rings {
		r.Destroy()
	}
	p.rings = nil
	p.surface.Delete()
	p.clouds.Delete()
}
