package store

import "errors"

var (
	ErrSceneNotFound = errors.New("scene not found")
	ErrNoFilePath    = errors.New("no file path set")
)
