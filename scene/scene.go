package scene

// Scene is the top-level configuration unit: playback metadata, the scene's
// palettes, and its effects. CurrentPaletteID indexes Palettes;
// CurrentEffectID refers to an effect's EffectID.
type Scene struct {
	SceneID          int       `json:"scene_id"`
	LEDCount         int       `json:"led_count"`
	FPS              int       `json:"fps"`
	CurrentPaletteID int       `json:"current_palette_id"`
	Palettes         []Palette `json:"palettes"`
	CurrentEffectID  int       `json:"current_effect_id"`
	Effects          []*Effect `json:"effects"`
}

// NewScene returns the default scene: one default palette, one effect
// (id 0) holding one default segment (id 0).
func NewScene(id, ledCount, fps int) *Scene {
	effect := NewEffect(0)
	effect.PutSegment(NewSegment(0))
	return &Scene{
		SceneID:          id,
		LEDCount:         ledCount,
		FPS:              fps,
		CurrentPaletteID: 0,
		Palettes:         []Palette{DefaultPalette()},
		CurrentEffectID:  0,
		Effects:          []*Effect{effect},
	}
}

// Effect looks up an effect by its EffectID.
func (s *Scene) Effect(id int) (*Effect, bool) {
	for _, e := range s.Effects {
		if e.EffectID == id {
			return e, true
		}
	}
	return nil, false
}

// CurrentEffect returns the effect CurrentEffectID points at.
func (s *Scene) CurrentEffect() (*Effect, bool) {
	return s.Effect(s.CurrentEffectID)
}

// CurrentPalette returns the palette CurrentPaletteID points at.
func (s *Scene) CurrentPalette() (Palette, bool) {
	if s.CurrentPaletteID < 0 || s.CurrentPaletteID >= len(s.Palettes) {
		return nil, false
	}
	return s.Palettes[s.CurrentPaletteID], true
}

// Normalize repairs every segment and materializes nil containers. Called
// on freshly decoded scenes so short or legacy documents are fixed on
// ingestion, not only when segments are constructed in memory.
func (s *Scene) Normalize() {
	if s.Palettes == nil {
		s.Palettes = []Palette{}
	}
	if s.Effects == nil {
		s.Effects = []*Effect{}
	}
	for _, e := range s.Effects {
		if e.Segments == nil {
			e.Segments = map[string]*Segment{}
		}
		for _, seg := range e.Segments {
			if seg.DimmerTime == nil {
				seg.DimmerTime = []float64{}
			}
			seg.Repair()
		}
	}
}

// Clone returns a deep copy of the scene.
func (s *Scene) Clone() *Scene {
	out := *s
	out.Palettes = make([]Palette, len(s.Palettes))
	for i, p := range s.Palettes {
		out.Palettes[i] = p.Clone()
	}
	out.Effects = make([]*Effect, len(s.Effects))
	for i, e := range s.Effects {
		out.Effects[i] = e.Clone()
	}
	return &out
}
