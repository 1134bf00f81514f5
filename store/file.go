package store

import (
	"encoding/json"
	"fmt"
	"os"

	"ledscene/log"
)

// FileService persists the cache as JSON and tracks unsaved changes. The
// dirty flag is set by any successful mutating cache operation (via a
// mutation listener) and cleared only by a successful save or load.
type FileService struct {
	cache           *Cache
	currentFilePath string
	dirty           bool
}

// NewFileService wraps a cache. The returned service starts clean.
func NewFileService(cache *Cache) *FileService {
	f := &FileService{cache: cache}
	cache.AddMutationListener(func() { f.dirty = true })
	return f
}

// HasUnsavedChanges reports whether the cache has mutated since the last
// successful save.
func (f *FileService) HasUnsavedChanges() bool {
	return f.dirty
}

// CurrentFilePath returns the path of the last save or load, if any.
func (f *FileService) CurrentFilePath() string {
	return f.currentFilePath
}

// SaveToPath writes the exported cache to path as indented JSON. On success
// the path becomes the current file and the dirty flag clears; on I/O
// failure the dirty flag stays set.
func (f *FileService) SaveToPath(path string) error {
	data, err := json.MarshalIndent(f.cache.Export(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal scene document: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		log.ErrorLog.Printf("failed to save scene file %s: %v", path, err)
		return fmt.Errorf("write scene file: %w", err)
	}
	f.currentFilePath = path
	f.dirty = false
	log.InfoLog.Printf("saved scene file %s", path)
	return nil
}

// SaveFile saves to the current file path; fails when none is set yet.
func (f *FileService) SaveFile() error {
	if f.currentFilePath == "" {
		return ErrNoFilePath
	}
	return f.SaveToPath(f.currentFilePath)
}

// LoadFromPath reads a scene file into the cache. The cache is replaced
// atomically: on any read or structural failure the prior content stays
// authoritative and the dirty flag is untouched.
func (f *FileService) LoadFromPath(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		log.ErrorLog.Printf("failed to read scene file %s: %v", path, err)
		return fmt.Errorf("read scene file: %w", err)
	}
	if err := f.cache.Load(data); err != nil {
		return err
	}
	f.currentFilePath = path
	f.dirty = false
	log.InfoLog.Printf("loaded scene file %s", path)
	return nil
}
