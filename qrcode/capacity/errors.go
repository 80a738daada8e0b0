package capacity

import "errors"

var (
	// ErrVersionRange is returned for version numbers outside 1-40.
	ErrVersionRange = errors.New("capacity: version out of range")
	// ErrMaskRange is returned for mask patterns outside 0-7.
	ErrMaskRange = errors.New("capacity: mask pattern out of range")
	// ErrUnknownLevel is returned when an error correction level name is not recognized.
	ErrUnknownLevel = errors.New("capacity: unknown error correction level")
	// ErrUnknownMode is returned when a mode name is not recognized.
	ErrUnknownMode = errors.New("capacity: unknown mode")
)
