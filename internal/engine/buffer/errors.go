package buffer

import "errors"

// Errors returned by buffer operations.
var (
	// ErrNoPath indicates a save was attempted on a buffer with no
	// associated file path. The buffer stays dirty.
	ErrNoPath = errors.New("buffer has no file path")
)
