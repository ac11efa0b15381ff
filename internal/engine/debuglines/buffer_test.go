package debuglines

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// seg returns the i-th test segment, distinguishable by its coordinates.
func seg(i int) (mgl32.Vec3, mgl32.Vec3) {
	f := float32(i)
	return mgl32.Vec3{f, 0, 0}, mgl32.Vec3{f, f, -f}
}

func TestAppendEvictsOldest(t *testing.T) {
	b := NewBuffer(18)
	for i := 1; i <= 4; i++ {
		b.Append(seg(i))
	}

	if b.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", b.Len())
	}
	for i, want := range []int{2, 3, 4} {
		begin, end := b.Segment(i)
		wb, we := seg(want)
		if begin != wb || end != we {
			t.Errorf("segment %d = %v-%v, want segment %d", i, begin, end, want)
		}
	}
}

func TestAppendKeepsNewestWindow(t *testing.T) {
	tests := []struct {
		capacity int
		appends  int
	}{
		{6, 3},
		{18, 10},
		{120, 21},
		{120, 57},
		{30, 5},
	}

	for _, tt := range tests {
		b := NewBuffer(tt.capacity)
		for i := 1; i <= tt.appends; i++ {
			b.Append(seg(i))
		}

		keep := tt.capacity / SegmentFloats
		if tt.appends < keep {
			keep = tt.appends
		}
		if b.Len() != keep {
			t.Errorf("cap %d, %d appends: Len() = %d, want %d", tt.capacity, tt.appends, b.Len(), keep)
			continue
		}

		oldest, _ := b.Segment(0)
		want, _ := seg(tt.appends - keep + 1)
		if oldest != want {
			t.Errorf("cap %d, %d appends: oldest = %v, want %v", tt.capacity, tt.appends, oldest, want)
		}
		if len(b.Vertices()) > tt.capacity {
			t.Errorf("cap %d: %d floats stored", tt.capacity, len(b.Vertices()))
		}
	}
}

func TestNewBufferRoundsLimit(t *testing.T) {
	if got := NewBuffer(20).Limit(); got != 18 {
		t.Errorf("limit 20 rounded to %d, want 18", got)
	}
	if got := NewBuffer(2).Limit(); got != SegmentFloats {
		t.Errorf("limit 2 raised to %d, want %d", got, SegmentFloats)
	}
}

func TestVerticesLayout(t *testing.T) {
	b := NewBuffer(120)
	b.Append(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{4, 5, 6})

	want := []float32{1, 2, 3, 4, 5, 6}
	got := b.Vertices()
	if len(got) != len(want) {
		t.Fatalf("Vertices() length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Vertices()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if b.VertexCount() != 2 {
		t.Errorf("VertexCount() = %d, want 2", b.VertexCount())
	}
}

func TestClearAndDirty(t *testing.T) {
	b := NewBuffer(120)
	if b.Dirty() {
		t.Error("new buffer should be clean")
	}

	b.Append(seg(1))
	if !b.Dirty() {
		t.Error("append should mark dirty")
	}
	b.MarkClean()

	b.Clear()
	if b.Len() != 0 || !b.Dirty() {
		t.Errorf("after Clear: Len() = %d dirty = %v", b.Len(), b.Dirty())
	}
	b.MarkClean()

	b.Clear()
	if b.Dirty() {
		t.Error("clearing an empty buffer should not mark dirty")
	}
}
