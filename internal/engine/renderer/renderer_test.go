package renderer

import "testing"

func TestErrorName(t *testing.T) {
	tests := []struct {
		code uint32
		want string
	}{
		{0x0500, "GL_INVALID_ENUM"},
		{0x0502, "GL_INVALID_OPERATION"},
		{0x0506, "GL_INVALID_FRAMEBUFFER_OPERATION"},
		{0x1234, "0x1234"},
	}
	for _, tt := range tests {
		if got := ErrorName(tt.code); got != tt.want {
			t.Errorf("ErrorName(0x%x) = %q, want %q", tt.code, got, tt.want)
		}
	}
}
