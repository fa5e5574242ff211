package maze

import "errors"

var (
	// ErrFormat indicates the text does not contain exactly one start and one goal marker.
	ErrFormat = errors.New("maze: invalid format")
	// ErrNotFound indicates the named maze file does not exist.
	ErrNotFound = errors.New("maze: file not found")
	// ErrOptionViolation indicates an unusable marker configuration.
	ErrOptionViolation = errors.New("maze: invalid option supplied")
)
