// Package shaders provides embedded GLSL shader sources.
package shaders

import (
	"embed"

	"github.com/Faultbox/orrery/internal/engine/shader"
)

// FS holds the default shader sources.
//
//go:embed *.vert *.frag
var FS embed.FS

// Program names.
const (
	Planet = "planet"
	Orbit  = "orbit"
	Skybox = "skybox"
)

// Definitions lists every program the scene compiles. Paths are relative to
// FS or to an on-disk shader directory with the same file names.
var Definitions = []shader.Definition{
	{Name: Planet, Vertex: "planet.vert", Fragment: "planet.frag"},
	{Name: Orbit, Vertex: "orbit.vert", Fragment: "orbit.frag"},
	{Name: Skybox, Vertex: "skybox.vert", Fragment: "skybox.frag"},
}
