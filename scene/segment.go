package scene

const (
	// DefaultTransparency is the visibility value used for padded transparency slots.
	DefaultTransparency = 1.0
	// DefaultSpan is the spatial span used for padded or non-positive length entries.
	DefaultSpan = 10
)

// Segment is a contiguous lighting region with its own color, transparency
// and motion parameters. Color entries index into the owning scene's current
// palette; Transparency runs parallel to Color, and Length holds the span
// between successive colors (so it is one entry shorter than Color).
type Segment struct {
	SegmentID       int       `json:"segment_id"`
	Color           []int     `json:"color"`
	Transparency    []float64 `json:"transparency"`
	Length          []int     `json:"length"`
	MoveSpeed       float64   `json:"move_speed"`
	MoveRange       [2]int    `json:"move_range"`
	InitialPosition int       `json:"initial_position"`
	CurrentPosition float64   `json:"current_position"`
	IsEdgeReflect   bool      `json:"is_edge_reflect"`
	RegionID        int       `json:"region_id"`
	DimmerTime      []float64 `json:"dimmer_time"`
}

// NewSegment returns a default segment: one color per default palette slot,
// fully repaired so the parallel arrays are consistent.
func NewSegment(id int) *Segment {
	s := &Segment{
		SegmentID:  id,
		Color:      []int{0, 1, 2, 3, 4, 5},
		DimmerTime: []float64{},
	}
	s.Repair()
	return s
}

// Repair normalizes the parallel arrays so that
// len(Transparency) == len(Color), len(Length) == max(len(Color)-1, 0) and
// every Length entry is positive. Transparency is truncated at the tail and
// padded with DefaultTransparency; Length is truncated from the front and
// padded at the tail with DefaultSpan. Running Repair on an already valid
// segment changes nothing.
func (s *Segment) Repair() {
	want := len(s.Color)
	if len(s.Transparency) > want {
		s.Transparency = s.Transparency[:want]
	}
	for len(s.Transparency) < want {
		s.Transparency = append(s.Transparency, DefaultTransparency)
	}

	spans := want - 1
	if spans < 0 {
		spans = 0
	}
	if len(s.Length) > spans {
		s.Length = s.Length[len(s.Length)-spans:]
	}
	for len(s.Length) < spans {
		s.Length = append(s.Length, DefaultSpan)
	}
	for i, l := range s.Length {
		if l <= 0 {
			s.Length[i] = DefaultSpan
		}
	}
}

// SetColorSlot assigns a palette index to a color slot, growing the color
// array when slot is beyond the current length. Growth cascades through
// Repair so Transparency and Length follow.
func (s *Segment) SetColorSlot(slot, paletteIndex int) bool {
	if slot < 0 {
		return false
	}
	for len(s.Color) <= slot {
		s.Color = append(s.Color, 0)
	}
	s.Color[slot] = paletteIndex
	s.Repair()
	return true
}

// ResetColorIdentity restores the color array to the identity sequence
// [0, 1, ..., n-1], keeping its length. Transparency and Length are left
// alone. Used when the palette the indices pointed into goes away.
func (s *Segment) ResetColorIdentity() {
	for i := range s.Color {
		s.Color[i] = i
	}
}

// Clone returns a deep copy with nil array fields materialized as empty
// slices, so serializing a clone never emits null for an array field.
func (s *Segment) Clone() *Segment {
	out := *s
	out.Color = append([]int{}, s.Color...)
	out.Transparency = append([]float64{}, s.Transparency...)
	out.Length = append([]int{}, s.Length...)
	out.DimmerTime = append([]float64{}, s.DimmerTime...)
	return &out
}
