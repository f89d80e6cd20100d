// Package renderer initializes OpenGL and reports driver state.
package renderer

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/orrery/internal/logger"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Info describes the OpenGL driver.
type Info struct {
	Version  string
	Renderer string
	Vendor   string
	GLSL     string
}

// Init loads the OpenGL function pointers and logs the driver.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func Init() (Info, error) {
	if err := gl.Init(); err != nil {
		return Info{}, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	info := Info{
		Version:  gl.GoStr(gl.GetString(gl.VERSION)),
		Renderer: gl.GoStr(gl.GetString(gl.RENDERER)),
		Vendor:   gl.GoStr(gl.GetString(gl.VENDOR)),
		GLSL:     gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)),
	}
	logger.Category(logger.CategoryInit).Info("OpenGL initialized",
		zap.String("version", info.Version),
		zap.String("renderer", info.Renderer),
		zap.String("vendor", info.Vendor),
		zap.String("glsl", info.GLSL),
	)
	return info, nil
}

// Viewport resizes the GL viewport.
func Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("viewport resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// maxDrain bounds the GetError loop; a lost context reports forever.
const maxDrain = 16

// DrainErrors returns and clears the pending GL error flags.
func DrainErrors() []string {
	var out []string
	for i := 0; i < maxDrain; i++ {
		code := gl.GetError()
		if code == gl.NO_ERROR {
			break
		}
		out = append(out, ErrorName(code))
	}
	return out
}

// ErrorName returns the enum name of a GL error code.
func ErrorName(code uint32) string {
	switch code {
	case gl.NO_ERROR:
		return "GL_NO_ERROR"
	case gl.INVALID_ENUM:
		return "GL_INVALID_ENUM"
	case gl.INVALID_VALUE:
		return "GL_INVALID_VALUE"
	case gl.INVALID_OPERATION:
		return "GL_INVALID_OPERATION"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	case gl.OUT_OF_MEMORY:
		return "GL_OUT_OF_MEMORY"
	default:
		return fmt.Sprintf("GL_ERROR_0x%04X", code)
	}
}
