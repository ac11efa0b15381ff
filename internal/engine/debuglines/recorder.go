package debuglines

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/stencilpick/internal/engine/picking"
	"github.com/Faultbox/stencilpick/internal/logger"
)

// Recorder captures camera-forward rays into two buffers: segments that hit
// geometry within the far plane, and segments that did not.
type Recorder struct {
	Hits       *Buffer
	OutOfRange *Buffer

	log *zap.Logger
}

// NewRecorder creates a recorder whose buffers each hold limit floats.
func NewRecorder(limit int) *Recorder {
	return &Recorder{
		Hits:       NewBuffer(limit),
		OutOfRange: NewBuffer(limit),
		log:        logger.Named("debuglines"),
	}
}

// Capture records a segment from origin along forward whose length is the
// linearized depth under the screen centre. It reports whether the segment
// went to the in-range buffer. A cleared depth of 1 is always out of range,
// whatever the rounding of the linearized length.
func (r *Recorder) Capture(origin, forward mgl32.Vec3, depth, near, far float32) bool {
	length := picking.LinearizeDepth(depth, near, far)
	if length < 0 {
		length = -length
	}
	end := origin.Add(forward.Mul(length))

	inRange := depth < 1 && length < far
	if inRange {
		r.Hits.Append(origin, end)
	} else {
		r.OutOfRange.Append(origin, end)
	}

	r.log.Debug("captured line",
		zap.Float32("depth", depth),
		zap.Float32("length", length),
		zap.Bool("in_range", inRange),
		zap.Int("segments", r.Hits.Len()),
		zap.Int("out_of_range", r.OutOfRange.Len()))
	return inRange
}

// Clear empties both buffers.
func (r *Recorder) Clear() {
	r.Hits.Clear()
	r.OutOfRange.Clear()
	r.log.Debug("cleared lines")
}
