// Package debuglines records cast-ray segments for on-screen debugging.
package debuglines

import "github.com/go-gl/mathgl/mgl32"

// SegmentFloats is the number of floats one segment occupies: two xyz points.
const SegmentFloats = 6

// Buffer is a bounded list of line segments stored as flat vertex floats.
// When full, appending drops the oldest segment.
type Buffer struct {
	limit    int
	vertices []float32
	dirty    bool
}

// NewBuffer creates a buffer holding at most limit floats. The limit is
// rounded down to whole segments and is at least one segment.
func NewBuffer(limit int) *Buffer {
	limit -= limit % SegmentFloats
	if limit < SegmentFloats {
		limit = SegmentFloats
	}
	return &Buffer{
		limit:    limit,
		vertices: make([]float32, 0, limit),
	}
}

// Append adds the segment begin-end, evicting the oldest one if it would not fit.
func (b *Buffer) Append(begin, end mgl32.Vec3) {
	if len(b.vertices)+SegmentFloats > b.limit {
		b.vertices = append(b.vertices[:0], b.vertices[SegmentFloats:]...)
	}
	b.vertices = append(b.vertices,
		begin.X(), begin.Y(), begin.Z(),
		end.X(), end.Y(), end.Z(),
	)
	b.dirty = true
}

// Clear removes every segment.
func (b *Buffer) Clear() {
	if len(b.vertices) == 0 {
		return
	}
	b.vertices = b.vertices[:0]
	b.dirty = true
}

// Vertices returns the stored floats, oldest segment first. The slice is
// only valid until the next mutation.
func (b *Buffer) Vertices() []float32 {
	return b.vertices
}

// Len returns the number of stored segments.
func (b *Buffer) Len() int {
	return len(b.vertices) / SegmentFloats
}

// Limit returns the capacity in floats.
func (b *Buffer) Limit() int {
	return b.limit
}

// Segment returns the i-th stored segment, 0 being the oldest.
func (b *Buffer) Segment(i int) (begin, end mgl32.Vec3) {
	v := b.vertices[i*SegmentFloats : (i+1)*SegmentFloats]
	return mgl32.Vec3{v[0], v[1], v[2]}, mgl32.Vec3{v[3], v[4], v[5]}
}

// VertexCount returns the number of line vertices to draw.
func (b *Buffer) VertexCount() int32 {
	return int32(len(b.vertices) / 3)
}

// Dirty reports whether the contents changed since the last MarkClean.
func (b *Buffer) Dirty() bool {
	return b.dirty
}

// MarkClean is called after the contents were uploaded to the GPU.
func (b *Buffer) MarkClean() {
	b.dirty = false
}
