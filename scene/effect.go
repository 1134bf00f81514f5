package scene

import "strconv"

// Effect groups segments within a scene. Segments are keyed by their decimal
// segment id; the key always matches the segment's SegmentID field.
type Effect struct {
	EffectID int                 `json:"effect_id"`
	Segments map[string]*Segment `json:"segments"`
}

// NewEffect returns an empty effect.
func NewEffect(id int) *Effect {
	return &Effect{
		EffectID: id,
		Segments: map[string]*Segment{},
	}
}

// SegmentKey converts a segment id to its map key.
func SegmentKey(id int) string {
	return strconv.Itoa(id)
}

// Segment looks up a segment by id.
func (e *Effect) Segment(id int) (*Segment, bool) {
	seg, ok := e.Segments[SegmentKey(id)]
	return seg, ok
}

// PutSegment stores a segment under its own id, replacing any segment
// already at that key.
func (e *Effect) PutSegment(seg *Segment) {
	e.Segments[SegmentKey(seg.SegmentID)] = seg
}

// RemoveSegment deletes the segment stored under id, if any.
func (e *Effect) RemoveSegment(id int) {
	delete(e.Segments, SegmentKey(id))
}

// NextFreeSegmentID returns the smallest non-negative id with no segment.
func (e *Effect) NextFreeSegmentID() int {
	for id := 0; ; id++ {
		if _, ok := e.Segments[SegmentKey(id)]; !ok {
			return id
		}
	}
}

// Clone returns a deep copy of the effect.
func (e *Effect) Clone() *Effect {
	out := NewEffect(e.EffectID)
	for key, seg := range e.Segments {
		out.Segments[key] = seg.Clone()
	}
	return out
}
