package upload

import "errors"

var (
	// ErrDirNotFound is returned when the moveTo destination directory does
	// not exist. This is a configuration problem, not invalid user input.
	ErrDirNotFound = errors.New("destination directory not found")

	// ErrMoveFailed is returned when relocating the uploaded file fails
	// after validation succeeded.
	ErrMoveFailed = errors.New("failed to move uploaded file")
)
