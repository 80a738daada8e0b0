package qrlite

import (
	"errors"
	"fmt"

	"github.com/ericlevine/qrlite/qrcode/capacity"
)

var (
	// ErrDataTooLong is returned when the input fits no permitted version
	// and error correction level.
	ErrDataTooLong = errors.New("data too long")

	// ErrInvalidMode is returned when a forced mode cannot represent the input.
	ErrInvalidMode = errors.New("invalid mode for input")

	// ErrInvalidVersion is returned for a requested version outside 1-40.
	ErrInvalidVersion = errors.New("invalid version")

	// ErrInvalidMask is returned for a requested mask pattern outside 0-7.
	ErrInvalidMask = errors.New("invalid mask pattern")

	// ErrInvalidECLevel is returned for an unknown error correction level.
	ErrInvalidECLevel = errors.New("invalid error correction level")

	// ErrInternal marks a broken encoder invariant. It indicates a bug.
	ErrInternal = errors.New("internal encoder error")
)

// DataTooLongError reports the largest symbol that was tried. Level is
// capacity.ECLevelAuto when the caller left the level unspecified.
type DataTooLongError struct {
	Level         capacity.ErrorCorrectionLevel
	MaxVersion    int
	RequiredBits  int
	AvailableBits int
}

func (e *DataTooLongError) Error() string {
	return fmt.Sprintf("%s: need %d bits, version %d at level %s holds %d",
		ErrDataTooLong, e.RequiredBits, e.MaxVersion, e.Level, e.AvailableBits)
}

func (e *DataTooLongError) Unwrap() error { return ErrDataTooLong }

// InvalidModeError reports the first character a forced mode cannot encode.
type InvalidModeError struct {
	Mode  capacity.Mode
	Char  rune
	Index int
}

func (e *InvalidModeError) Error() string {
	return fmt.Sprintf("%s: %q at index %d is not %s", ErrInvalidMode, e.Char, e.Index, e.Mode)
}

func (e *InvalidModeError) Unwrap() error { return ErrInvalidMode }
