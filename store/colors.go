package store

import (
	"ledscene/scene"
)

// ColorService is the editing front for colors. It mirrors the current
// scene's current palette as hex strings for the UI to read, remembers
// which segment color-slot edits target, and owns two independent listener
// groups: palette listeners fire on global palette recolors, color
// listeners fire on a segment's own color-slot edits. The groups never
// overlap: consumers that only care about per-segment edits are not
// re-invoked on palette recolors.
//
// The authoritative palette stays in the Cache; the service's working copy
// only ever diverges transiently inside an edit the service itself
// performs.
type ColorService struct {
	cache            *Cache
	currentSegmentID int
	working          []string

	paletteListeners []*Listener
	colorListeners   []*Listener
}

// NewColorService returns a service bound to the cache, with its working
// palette synced.
func NewColorService(cache *Cache) *ColorService {
	s := &ColorService{cache: cache}
	s.SyncWithCachePalette()
	return s
}

// AddPaletteChangeListener registers a callback for palette recolors.
func (s *ColorService) AddPaletteChangeListener(fn func()) *Listener {
	h := &Listener{fn: fn}
	s.paletteListeners = append(s.paletteListeners, h)
	return h
}

// RemovePaletteChangeListener unregisters a palette listener by handle.
func (s *ColorService) RemovePaletteChangeListener(h *Listener) {
	s.paletteListeners = removeListener(s.paletteListeners, h)
}

// AddColorChangeListener registers a callback for segment color-slot edits.
func (s *ColorService) AddColorChangeListener(fn func()) *Listener {
	h := &Listener{fn: fn}
	s.colorListeners = append(s.colorListeners, h)
	return h
}

// RemoveColorChangeListener unregisters a color listener by handle.
func (s *ColorService) RemoveColorChangeListener(h *Listener) {
	s.colorListeners = removeListener(s.colorListeners, h)
}

// SyncWithCachePalette pulls the current scene's current palette into the
// working copy. Call after scene or palette selection changes.
func (s *ColorService) SyncWithCachePalette() {
	sc := s.cache.CurrentScene()
	if sc == nil {
		s.working = nil
		return
	}
	pal, ok := sc.CurrentPalette()
	if !ok {
		s.working = nil
		return
	}
	s.working = pal.HexColors()
}

// PaletteColors returns the working palette as hex strings.
func (s *ColorService) PaletteColors() []string {
	return s.working
}

// UpdatePaletteColor recolors one slot of the current palette, writing
// through to the cache. Only palette listeners fire, after both copies are
// updated. Returns false on a malformed hex string or an out-of-range
// index, with nothing mutated.
func (s *ColorService) UpdatePaletteColor(index int, hexColor string) bool {
	sc := s.cache.CurrentScene()
	if sc == nil {
		return false
	}
	pal, ok := sc.CurrentPalette()
	if !ok || index < 0 || index >= len(pal) {
		return false
	}

	rgb, err := scene.HexToRGB(hexColor)
	if err != nil {
		return false
	}

	pal[index] = rgb
	if len(s.working) != len(pal) {
		s.working = pal.HexColors()
	} else {
		s.working[index] = rgb.Hex()
	}

	s.cache.markMutated()
	notify(s.paletteListeners)
	return true
}

// SetCurrentSegmentID changes which segment subsequent color-slot edits
// target. No notifications fire.
func (s *ColorService) SetCurrentSegmentID(id int) {
	s.currentSegmentID = id
}

// CurrentSegmentID returns the segment color-slot edits currently target.
func (s *ColorService) CurrentSegmentID() int {
	return s.currentSegmentID
}

// SetSegmentColorSlot assigns a palette index to one color slot of the
// current segment, growing the segment's arrays if needed. Only color
// listeners fire. Returns false when the current segment does not exist.
func (s *ColorService) SetSegmentColorSlot(slot, paletteIndex int) bool {
	seg, ok := s.cache.Segment(s.currentSegmentID)
	if !ok {
		return false
	}
	if !seg.SetColorSlot(slot, paletteIndex) {
		return false
	}
	s.cache.markMutated()
	notify(s.colorListeners)
	return true
}
