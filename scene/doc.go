// Package scene defines the LED lighting data model: scenes containing
// effects containing segments, plus the color palettes segments reference.
//
// Segments carry three parallel arrays (color, transparency, length) whose
// lengths must stay consistent. The package never rejects malformed arrays;
// Repair normalizes them instead, so legacy or partially written documents
// always load into a structurally valid model.
package scene
