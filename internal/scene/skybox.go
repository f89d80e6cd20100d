package scene

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/orrery/internal/engine/geometry"
	"github.com/Faultbox/orrery/internal/engine/mesh"
	"github.com/Faultbox/orrery/internal/engine/shader"
	"github.com/Faultbox/orrery/internal/engine/texture"
	"github.com/Faultbox/orrery/internal/logger"
	"github.com/Faultbox/orrery/internal/scene/shaders"
)

// Skybox draws a cubemap behind everything else.
type Skybox struct {
	cube    *mesh.GPU
	cubemap *texture.Texture
	prog    *shader.Program

	destroyed bool
}

// NewSkybox uploads the cube and loads the six faces. Missing faces are
// logged and drawn black.
func NewSkybox(faces texture.CubeFaces, lib *shader.Library) (*Skybox, error) {
	prog, ok := lib.Get(shaders.Skybox)
	if !ok {
		return nil, fmt.Errorf("skybox: program %q not loaded", shaders.Skybox)
	}

	cubemap, err := texture.LoadCubemap(faces)
	if err != nil {
		logger.Category(logger.CategoryTexture).Warn("skybox faces failed to load", zap.Error(err))
	}

	return &Skybox{
		cube:    mesh.Upload(geometry.SkyboxCube()),
		cubemap: cubemap,
		prog:    prog,
	}, nil
}

// SkyView strips the translation from view so the cube follows the camera.
func SkyView(view mgl32.Mat4) mgl32.Mat4 {
	return view.Mat3().Mat4()
}

// Render draws the skybox. Call after all opaque geometry.
func (s *Skybox) Render(f Frame) {
	if s.destroyed {
		return
	}
	gl.DepthFunc(gl.LEQUAL)

	s.prog.Use()
	s.prog.SetMat4("view", SkyView(f.View))
	s.prog.SetMat4("projection", f.Projection)
	s.prog.SetInt("skybox", 0)
	s.cubemap.Bind(0)
	s.cube.Draw()

	gl.DepthFunc(gl.LESS)
}

// Destroy releases the cube and cubemap. Later calls are no-ops.
func (s *Skybox) Destroy() {
	if s.destroyed {
		return
	}
	s.destroyed = true
	s.cube.Destroy()
	s.cubemap.Delete()
}
