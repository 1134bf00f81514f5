package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSegment(t *testing.T) {
	seg := NewSegment(0)

	assert.Equal(t, 0, seg.SegmentID)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, seg.Color)
	assert.Equal(t, []float64{1, 1, 1, 1, 1, 1}, seg.Transparency)
	assert.Equal(t, []int{10, 10, 10, 10, 10}, seg.Length)
	assert.Equal(t, 0, seg.RegionID)
	assert.NotNil(t, seg.DimmerTime)
}

func TestRepair(t *testing.T) {
	t.Run("pads missing transparency with default visibility", func(t *testing.T) {
		seg := &Segment{Color: []int{0, 1, 2}, Transparency: []float64{0.5}}
		seg.Repair()

		assert.Equal(t, []float64{0.5, 1.0, 1.0}, seg.Transparency)
	})

	t.Run("truncates extra transparency at the tail", func(t *testing.T) {
		seg := &Segment{Color: []int{0, 1}, Transparency: []float64{0.1, 0.2, 0.3, 0.4}}
		seg.Repair()

		assert.Equal(t, []float64{0.1, 0.2}, seg.Transparency)
	})

	t.Run("pads missing length with default span", func(t *testing.T) {
		seg := &Segment{Color: []int{0, 1, 2, 3}, Length: []int{5}}
		seg.Repair()

		assert.Equal(t, []int{5, 10, 10}, seg.Length)
	})

	t.Run("truncates extra length from the front", func(t *testing.T) {
		seg := &Segment{Color: []int{0, 1, 2}, Length: []int{1, 2, 3, 4}}
		seg.Repair()

		assert.Equal(t, []int{3, 4}, seg.Length)
	})

	t.Run("replaces non-positive spans", func(t *testing.T) {
		seg := &Segment{Color: []int{0, 1, 2, 3}, Length: []int{0, -5, 7}}
		seg.Repair()

		assert.Equal(t, []int{10, 10, 7}, seg.Length)
	})

	t.Run("empty color empties both arrays", func(t *testing.T) {
		seg := &Segment{Transparency: []float64{0.5}, Length: []int{3}}
		seg.Repair()

		assert.Empty(t, seg.Transparency)
		assert.Empty(t, seg.Length)
	})

	t.Run("single color keeps no spans", func(t *testing.T) {
		seg := &Segment{Color: []int{4}, Length: []int{3, 9}}
		seg.Repair()

		assert.Equal(t, []float64{1.0}, seg.Transparency)
		assert.Empty(t, seg.Length)
	})

	t.Run("is idempotent", func(t *testing.T) {
		seg := &Segment{Color: []int{0, 1, 2}, Transparency: []float64{0.5}, Length: []int{-1, 2, 3, 4}}
		seg.Repair()

		transparency := append([]float64{}, seg.Transparency...)
		length := append([]int{}, seg.Length...)

		seg.Repair()

		assert.Equal(t, transparency, seg.Transparency)
		assert.Equal(t, length, seg.Length)
	})
}

func TestSetColorSlot(t *testing.T) {
	t.Run("assigns within current length", func(t *testing.T) {
		seg := NewSegment(0)
		require.True(t, seg.SetColorSlot(2, 5))

		assert.Equal(t, 5, seg.Color[2])
		assert.Len(t, seg.Color, 6)
	})

	t.Run("growing cascades through repair", func(t *testing.T) {
		seg := NewSegment(0)
		require.True(t, seg.SetColorSlot(8, 3))

		assert.Len(t, seg.Color, 9)
		assert.Equal(t, 3, seg.Color[8])
		assert.Len(t, seg.Transparency, 9)
		assert.Equal(t, 1.0, seg.Transparency[8])
		assert.Len(t, seg.Length, 8)
		for _, l := range seg.Length {
			assert.Greater(t, l, 0)
		}
	})

	t.Run("rejects negative slot", func(t *testing.T) {
		seg := NewSegment(0)
		assert.False(t, seg.SetColorSlot(-1, 0))
	})
}

func TestResetColorIdentity(t *testing.T) {
	seg := NewSegment(0)
	seg.Color = []int{5, 4, 3}
	seg.Repair()
	transparency := append([]float64{}, seg.Transparency...)
	length := append([]int{}, seg.Length...)

	seg.ResetColorIdentity()

	assert.Equal(t, []int{0, 1, 2}, seg.Color)
	assert.Equal(t, transparency, seg.Transparency)
	assert.Equal(t, length, seg.Length)
}

func TestSegmentClone(t *testing.T) {
	seg := NewSegment(3)
	clone := seg.Clone()

	clone.Color[0] = 99
	clone.Transparency[0] = 0.25

	assert.Equal(t, 0, seg.Color[0])
	assert.Equal(t, 1.0, seg.Transparency[0])
	assert.Equal(t, seg.SegmentID, clone.SegmentID)
}
