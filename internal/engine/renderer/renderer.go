// Package renderer initializes OpenGL and reports context errors.
package renderer

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/stencilpick/internal/logger"
)

// Info describes the initialized context.
type Info struct {
	Version     string
	Renderer    string
	StencilBits int32
}

// Init loads the GL function pointers and sets the default depth state.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func Init() (Info, error) {
	if err := gl.Init(); err != nil {
		return Info{}, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	info := Info{
		Version:  gl.GoStr(gl.GetString(gl.VERSION)),
		Renderer: gl.GoStr(gl.GetString(gl.RENDERER)),
	}
	gl.GetFramebufferAttachmentParameteriv(gl.FRAMEBUFFER, gl.STENCIL, gl.FRAMEBUFFER_ATTACHMENT_STENCIL_SIZE, &info.StencilBits)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	logger.Info("OpenGL initialized",
		zap.String("version", info.Version),
		zap.String("renderer", info.Renderer),
		zap.Int32("stencil_bits", info.StencilBits),
	)
	if info.StencilBits < 8 {
		logger.Warn("default framebuffer has fewer than 8 stencil bits", zap.Int32("stencil_bits", info.StencilBits))
	}
	return info, nil
}

// CheckError drains the GL error queue and returns the errors as one error,
// or nil when the queue was empty.
func CheckError(where string) error {
	var names []string
	for code := gl.GetError(); code != gl.NO_ERROR; code = gl.GetError() {
		names = append(names, ErrorName(code))
		if len(names) > 16 {
			break
		}
	}
	if len(names) == 0 {
		return nil
	}
	return fmt.Errorf("%s: GL error %s", where, strings.Join(names, ", "))
}

// ErrorName returns the symbolic name of a GL error code.
func ErrorName(code uint32) string {
	switch code {
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
		return fmt.Sprintf("0x%x", code)
	}
}
