// Package qrlite encodes text into QR Code symbols (ISO/IEC 18004) using
// the numeric, alphanumeric and byte modes over versions 1-40.
//
// The encoding pipeline lives in qrcode/encoder; package qrcode wraps it
// with renderers. This package holds the options and errors shared by both.
package qrlite

import (
	"fmt"
	"log/slog"

	"github.com/ericlevine/qrlite/bitutil"
	"github.com/ericlevine/qrlite/qrcode/capacity"
)

// DefaultQuietZone is the light border, in modules, added by renderers.
const DefaultQuietZone = 4

// EncodeOptions configures QR encoding. A nil *EncodeOptions selects every
// default.
type EncodeOptions struct {
	// ErrorCorrection is "L", "M", "Q" or "H". Empty selects the strongest
	// level that fits the smallest version.
	ErrorCorrection string

	// Mode forces "numeric", "alphanumeric" or "byte". Empty picks the most
	// compact mode that can represent the input.
	Mode string

	// Version forces a symbol version (1-40). Zero selects the smallest
	// version that fits.
	Version int

	// MaskPattern forces a data mask (0-7). Nil selects the mask with the
	// lowest penalty.
	MaskPattern *int

	// Margin is the quiet zone in modules. Nil uses DefaultQuietZone.
	Margin *int

	// Parallel evaluates the eight mask candidates concurrently.
	Parallel bool

	// Logger receives debug records about version and mask selection.
	Logger *slog.Logger
}

// ECLevel returns the parsed error correction level.
func (o *EncodeOptions) ECLevel() (capacity.ErrorCorrectionLevel, error) {
	if o == nil {
		return capacity.ECLevelAuto, nil
	}
	ecl, err := capacity.ParseECLevel(o.ErrorCorrection)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidECLevel, o.ErrorCorrection)
	}
	return ecl, nil
}

// SegmentMode returns the parsed mode, capacity.ModeAuto when unset.
func (o *EncodeOptions) SegmentMode() (capacity.Mode, error) {
	if o == nil {
		return capacity.ModeAuto, nil
	}
	m, err := capacity.ParseMode(o.Mode)
	if err != nil {
		return 0, fmt.Errorf("%w: unknown mode %q", ErrInvalidMode, o.Mode)
	}
	return m, nil
}

// QRVersion returns the requested version, 0 for automatic.
func (o *EncodeOptions) QRVersion() (int, error) {
	if o == nil || o.Version == 0 {
		return 0, nil
	}
	if o.Version < capacity.MinVersion || o.Version > capacity.MaxVersion {
		return 0, fmt.Errorf("%w: %d", ErrInvalidVersion, o.Version)
	}
	return o.Version, nil
}

// QRMaskPattern returns the requested mask, -1 for automatic.
func (o *EncodeOptions) QRMaskPattern() (int, error) {
	if o == nil || o.MaskPattern == nil {
		return -1, nil
	}
	if *o.MaskPattern < 0 || *o.MaskPattern >= capacity.NumMaskPatterns {
		return 0, fmt.Errorf("%w: %d", ErrInvalidMask, *o.MaskPattern)
	}
	return *o.MaskPattern, nil
}

// QuietZone returns the margin in modules.
func (o *EncodeOptions) QuietZone() (int, error) {
	if o == nil || o.Margin == nil {
		return DefaultQuietZone, nil
	}
	if *o.Margin < 0 {
		return 0, fmt.Errorf("negative margin %d", *o.Margin)
	}
	return *o.Margin, nil
}

// Writer renders contents as a QR symbol scaled to at least width x height.
type Writer interface {
	Encode(contents string, width, height int, opts *EncodeOptions) (*bitutil.BitMatrix, error)
}
