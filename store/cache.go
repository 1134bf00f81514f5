package store

import (
	"fmt"

	"ledscene/scene"
)

// Field identifies a segment attribute updatable through
// UpdateSegmentParameter. The set is closed on purpose: the fields whose
// update must re-run the array repair are known statically.
type Field int

const (
	FieldSegmentID Field = iota
	FieldColor
	FieldTransparency
	FieldLength
	FieldMoveSpeed
	FieldMoveRange
	FieldInitialPosition
	FieldCurrentPosition
	FieldIsEdgeReflect
	FieldRegionID
	FieldDimmerTime
)

// Cache owns the Scene -> Effect -> Segment hierarchy and the process-wide
// selection state. It is the only component that mutates the hierarchy;
// every consumer receives a *Cache from the composition root rather than
// reaching for a global.
type Cache struct {
	scenes         []*scene.Scene
	currentSceneID int

	mutationListeners []*Listener
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{}
}

// AddMutationListener registers fn to run after every successful mutating
// operation, once the hierarchy is consistent again. The FileService uses
// this to maintain its dirty flag.
func (c *Cache) AddMutationListener(fn func()) *Listener {
	h := &Listener{fn: fn}
	c.mutationListeners = append(c.mutationListeners, h)
	return h
}

// RemoveMutationListener unregisters a previously returned handle.
func (c *Cache) RemoveMutationListener(h *Listener) {
	c.mutationListeners = removeListener(c.mutationListeners, h)
}

// markMutated runs the mutation listeners. Call only after the object graph
// is fully repaired, so observers never see an inconsistent state.
func (c *Cache) markMutated() {
	notify(c.mutationListeners)
}

// SceneCount returns the number of scenes.
func (c *Cache) SceneCount() int {
	return len(c.scenes)
}

// Scene returns the scene at position id.
func (c *Cache) Scene(id int) (*scene.Scene, bool) {
	if id < 0 || id >= len(c.scenes) {
		return nil, false
	}
	return c.scenes[id], true
}

// CurrentSceneID returns the current scene's position.
func (c *Cache) CurrentSceneID() int {
	return c.currentSceneID
}

// CurrentScene returns the scene the cache's selection points at, or nil
// when the cache is empty.
func (c *Cache) CurrentScene() *scene.Scene {
	sc, ok := c.Scene(c.currentSceneID)
	if !ok {
		return nil
	}
	return sc
}

// CreateNewScene appends a default scene and returns its position. The
// scene comes with one default palette and one effect holding segment "0".
func (c *Cache) CreateNewScene(ledCount, fps int) int {
	id := len(c.scenes)
	c.scenes = append(c.scenes, scene.NewScene(id, ledCount, fps))
	c.markMutated()
	return id
}

// SetCurrentScene moves the process-wide scene selection.
func (c *Cache) SetCurrentScene(id int) error {
	if id < 0 || id >= len(c.scenes) {
		return fmt.Errorf("%w: scene %d", ErrSceneNotFound, id)
	}
	c.currentSceneID = id
	c.markMutated()
	return nil
}

// Segment looks up a segment in the current scene's current effect.
func (c *Cache) Segment(segmentID int) (*scene.Segment, bool) {
	sc := c.CurrentScene()
	if sc == nil {
		return nil, false
	}
	eff, ok := sc.CurrentEffect()
	if !ok {
		return nil, false
	}
	return eff.Segment(segmentID)
}

// UpdateSegmentParameter sets one field of a segment in the current effect.
// It returns false when the segment does not exist or the value does not
// match the field's type; nothing is mutated in that case. Updating
// FieldSegmentID renumbers the segment's map key while reusing the segment
// object, so references held elsewhere stay valid; a collision with an
// existing id overwrites that slot. Array fields are re-repaired after the
// update.
func (c *Cache) UpdateSegmentParameter(segmentID int, field Field, value any) bool {
	seg, ok := c.Segment(segmentID)
	if !ok {
		return false
	}

	switch field {
	case FieldSegmentID:
		id, ok := value.(int)
		if !ok || id < 0 {
			return false
		}
		eff, _ := c.CurrentScene().CurrentEffect()
		eff.RemoveSegment(segmentID)
		seg.SegmentID = id
		eff.PutSegment(seg)
	case FieldColor:
		v, ok := value.([]int)
		if !ok {
			return false
		}
		seg.Color = v
		seg.Repair()
	case FieldTransparency:
		v, ok := value.([]float64)
		if !ok {
			return false
		}
		seg.Transparency = v
		seg.Repair()
	case FieldLength:
		v, ok := value.([]int)
		if !ok {
			return false
		}
		seg.Length = v
		seg.Repair()
	case FieldMoveSpeed:
		v, ok := value.(float64)
		if !ok {
			return false
		}
		seg.MoveSpeed = v
	case FieldMoveRange:
		v, ok := value.([2]int)
		if !ok {
			return false
		}
		seg.MoveRange = v
	case FieldInitialPosition:
		v, ok := value.(int)
		if !ok {
			return false
		}
		seg.InitialPosition = v
	case FieldCurrentPosition:
		v, ok := value.(float64)
		if !ok {
			return false
		}
		seg.CurrentPosition = v
	case FieldIsEdgeReflect:
		v, ok := value.(bool)
		if !ok {
			return false
		}
		seg.IsEdgeReflect = v
	case FieldRegionID:
		v, ok := value.(int)
		if !ok || v < 0 {
			return false
		}
		seg.RegionID = v
	case FieldDimmerTime:
		v, ok := value.([]float64)
		if !ok {
			return false
		}
		seg.DimmerTime = v
	default:
		return false
	}

	c.markMutated()
	return true
}

// CreateNewSegment inserts a default segment into the current effect and
// returns its id. A non-negative customID is used when free; otherwise the
// next free integer id is taken. Returns -1 when there is no current
// effect to insert into.
func (c *Cache) CreateNewSegment(customID int) int {
	sc := c.CurrentScene()
	if sc == nil {
		return -1
	}
	eff, ok := sc.CurrentEffect()
	if !ok {
		return -1
	}

	id := customID
	if id < 0 {
		id = eff.NextFreeSegmentID()
	} else if _, taken := eff.Segment(id); taken {
		id = eff.NextFreeSegmentID()
	}

	eff.PutSegment(scene.NewSegment(id))
	c.markMutated()
	return id
}

// CreateNewPalette appends a copy of the scene's first palette and returns
// its position, or -1 when there is no current scene.
func (c *Cache) CreateNewPalette() int {
	sc := c.CurrentScene()
	if sc == nil || len(sc.Palettes) == 0 {
		return -1
	}
	sc.Palettes = append(sc.Palettes, sc.Palettes[0].Clone())
	c.markMutated()
	return len(sc.Palettes) - 1
}

// DeletePalette removes a palette from the current scene. The last
// remaining palette cannot be deleted. Deleting the scene's current palette
// resets the selection to palette 0 and restores every segment's color
// array in every effect to the identity sequence, since the indices no
// longer mean anything once their palette is gone; transparency and length
// are untouched. Deleting a non-current palette only shifts the selection
// index so it keeps pointing at the same palette.
func (c *Cache) DeletePalette(paletteID int) bool {
	sc := c.CurrentScene()
	if sc == nil {
		return false
	}
	if paletteID < 0 || paletteID >= len(sc.Palettes) || len(sc.Palettes) == 1 {
		return false
	}

	wasCurrent := paletteID == sc.CurrentPaletteID
	sc.Palettes = append(sc.Palettes[:paletteID], sc.Palettes[paletteID+1:]...)

	if wasCurrent {
		sc.CurrentPaletteID = 0
		for _, eff := range sc.Effects {
			for _, seg := range eff.Segments {
				seg.ResetColorIdentity()
			}
		}
	} else if sc.CurrentPaletteID > paletteID {
		sc.CurrentPaletteID--
	}

	c.markMutated()
	return true
}
