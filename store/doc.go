// Package store owns the in-memory scene configuration: the Cache is the
// single source of truth for all scenes, the ColorService fronts palette and
// per-segment color editing with two independent listener groups, and the
// FileService tracks unsaved changes and persists the cache as JSON.
//
// Everything here assumes a single writer: one logical actor (the UI event
// loop) issues mutations at a time, so there is no locking. Callers exposing
// the store to multiple goroutines must serialize access themselves.
package store
