package store

import (
	"strconv"
	"strings"
)

// ParamEditor validates text-field input before it reaches a segment.
// Every setter parses, rejects out-of-domain values with no mutation, and
// returns whether the edit was applied, so a controller can leave the text
// field unchanged and report inline on false.
type ParamEditor struct {
	cache *Cache
}

// NewParamEditor returns an editor bound to the cache.
func NewParamEditor(cache *Cache) *ParamEditor {
	return &ParamEditor{cache: cache}
}

// SetMoveSpeedFromText parses a non-negative float. Negative speeds exist
// in the model to denote direction, but text input may not introduce them.
func (p *ParamEditor) SetMoveSpeedFromText(segmentID int, text string) bool {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || v < 0 {
		return false
	}
	return p.cache.UpdateSegmentParameter(segmentID, FieldMoveSpeed, v)
}

// SetMoveRangeFromText parses the [min, max] pair.
func (p *ParamEditor) SetMoveRangeFromText(segmentID int, minText, maxText string) bool {
	minVal, err := strconv.Atoi(strings.TrimSpace(minText))
	if err != nil {
		return false
	}
	maxVal, err := strconv.Atoi(strings.TrimSpace(maxText))
	if err != nil {
		return false
	}
	return p.cache.UpdateSegmentParameter(segmentID, FieldMoveRange, [2]int{minVal, maxVal})
}

// SetInitialPositionFromText parses an integer position.
func (p *ParamEditor) SetInitialPositionFromText(segmentID int, text string) bool {
	v, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return false
	}
	return p.cache.UpdateSegmentParameter(segmentID, FieldInitialPosition, v)
}

// SetTransparency sets one transparency slot from a slider value in [0, 1].
func (p *ParamEditor) SetTransparency(segmentID, index int, value float64) bool {
	if value < 0 || value > 1 {
		return false
	}
	seg, ok := p.cache.Segment(segmentID)
	if !ok || index < 0 || index >= len(seg.Transparency) {
		return false
	}
	seg.Transparency[index] = value
	p.cache.markMutated()
	return true
}

// SetLengthFromText parses one length slot; spans must be positive.
func (p *ParamEditor) SetLengthFromText(segmentID, index int, text string) bool {
	v, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || v <= 0 {
		return false
	}
	seg, ok := p.cache.Segment(segmentID)
	if !ok || index < 0 || index >= len(seg.Length) {
		return false
	}
	seg.Length[index] = v
	seg.Repair()
	p.cache.markMutated()
	return true
}
