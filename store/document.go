package store

import (
	"encoding/json"
	"fmt"

	"ledscene/log"
	"ledscene/scene"
)

// Document is the wire representation of the whole cache. Exporting always
// emits every field with its defaulted value; a loaded document replaces
// the cache atomically or not at all.
type Document struct {
	CurrentSceneID int            `json:"current_scene_id"`
	Scenes         []*scene.Scene `json:"scenes"`
}

// Export serializes the cache into a deep-copied document. Segments in the
// copy have all arrays materialized, so marshaling never omits a field or
// emits null for one.
func (c *Cache) Export() *Document {
	doc := &Document{
		CurrentSceneID: c.currentSceneID,
		Scenes:         make([]*scene.Scene, 0, len(c.scenes)),
	}
	for _, sc := range c.scenes {
		doc.Scenes = append(doc.Scenes, sc.Clone())
	}
	return doc
}

// Load replaces the entire cache content from a JSON document. Documents
// missing a required top-level key fail without touching the prior state.
// Segments are normalized on ingestion: parallel arrays repaired, absent
// region_id defaulted to 0.
func (c *Cache) Load(data []byte) error {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		log.WarningLog.Printf("rejecting scene document: %v", err)
		return fmt.Errorf("parse scene document: %w", err)
	}
	for _, key := range []string{"current_scene_id", "scenes"} {
		if _, ok := keys[key]; !ok {
			log.WarningLog.Printf("rejecting scene document: missing %q", key)
			return fmt.Errorf("scene document missing %q", key)
		}
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		log.WarningLog.Printf("rejecting scene document: %v", err)
		return fmt.Errorf("parse scene document: %w", err)
	}

	if doc.Scenes == nil {
		doc.Scenes = []*scene.Scene{}
	}
	for _, sc := range doc.Scenes {
		sc.Normalize()
	}

	c.scenes = doc.Scenes
	c.currentSceneID = doc.CurrentSceneID
	c.markMutated()
	return nil
}
