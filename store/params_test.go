package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetMoveSpeedFromText(t *testing.T) {
	cache := newTestCache(t)
	editor := NewParamEditor(cache)
	seg, _ := cache.Segment(0)

	tests := []struct {
		name string
		text string
		ok   bool
	}{
		{"accepts a float", "1.5", true},
		{"accepts zero", "0", true},
		{"trims whitespace", " 2 ", true},
		{"rejects negative", "-1", false},
		{"rejects non-numeric", "fast", false},
		{"rejects empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := seg.MoveSpeed
			got := editor.SetMoveSpeedFromText(0, tt.text)
			assert.Equal(t, tt.ok, got)
			if !tt.ok {
				assert.Equal(t, before, seg.MoveSpeed)
			}
		})
	}
}

func TestSetMoveRangeFromText(t *testing.T) {
	cache := newTestCache(t)
	editor := NewParamEditor(cache)
	seg, _ := cache.Segment(0)

	require.True(t, editor.SetMoveRangeFromText(0, "3", "40"))
	assert.Equal(t, [2]int{3, 40}, seg.MoveRange)

	assert.False(t, editor.SetMoveRangeFromText(0, "x", "40"))
	assert.False(t, editor.SetMoveRangeFromText(0, "3", "y"))
	assert.Equal(t, [2]int{3, 40}, seg.MoveRange)
}

func TestSetInitialPositionFromText(t *testing.T) {
	cache := newTestCache(t)
	editor := NewParamEditor(cache)
	seg, _ := cache.Segment(0)

	require.True(t, editor.SetInitialPositionFromText(0, "12"))
	assert.Equal(t, 12, seg.InitialPosition)

	assert.False(t, editor.SetInitialPositionFromText(0, "1.5"))
	assert.False(t, editor.SetInitialPositionFromText(0, "abc"))
	assert.Equal(t, 12, seg.InitialPosition)
}

func TestSetTransparency(t *testing.T) {
	cache := newTestCache(t)
	editor := NewParamEditor(cache)
	seg, _ := cache.Segment(0)

	require.True(t, editor.SetTransparency(0, 2, 0.25))
	assert.Equal(t, 0.25, seg.Transparency[2])

	t.Run("rejects out of domain", func(t *testing.T) {
		assert.False(t, editor.SetTransparency(0, 2, -0.1))
		assert.False(t, editor.SetTransparency(0, 2, 1.1))
		assert.Equal(t, 0.25, seg.Transparency[2])
	})

	t.Run("rejects out-of-range index", func(t *testing.T) {
		assert.False(t, editor.SetTransparency(0, 99, 0.5))
	})

	t.Run("rejects unknown segment", func(t *testing.T) {
		assert.False(t, editor.SetTransparency(42, 0, 0.5))
	})
}

func TestSetLengthFromText(t *testing.T) {
	cache := newTestCache(t)
	editor := NewParamEditor(cache)
	seg, _ := cache.Segment(0)

	require.True(t, editor.SetLengthFromText(0, 1, "25"))
	assert.Equal(t, 25, seg.Length[1])

	t.Run("rejects non-positive spans", func(t *testing.T) {
		assert.False(t, editor.SetLengthFromText(0, 1, "0"))
		assert.False(t, editor.SetLengthFromText(0, 1, "-3"))
		assert.Equal(t, 25, seg.Length[1])
	})

	t.Run("rejects non-numeric text", func(t *testing.T) {
		assert.False(t, editor.SetLengthFromText(0, 1, "wide"))
	})

	t.Run("rejects out-of-range index", func(t *testing.T) {
		assert.False(t, editor.SetLengthFromText(0, 99, "5"))
	})

	t.Run("arrays stay consistent afterwards", func(t *testing.T) {
		assert.Len(t, seg.Length, len(seg.Color)-1)
		for _, l := range seg.Length {
			assert.Greater(t, l, 0)
		}
	})
}
