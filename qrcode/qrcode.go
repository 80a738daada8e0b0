// Package qrcode renders QR symbols produced by package encoder: as a
// BitMatrix with a quiet zone, as an image or PNG, and as terminal text.
package qrcode

import (
	"github.com/ericlevine/qrlite"
	"github.com/ericlevine/qrlite/qrcode/encoder"
)

// Encode encodes content with string-valued options. A nil opts selects the
// error correction level, version, mask and mode automatically.
func Encode(content string, opts *qrlite.EncodeOptions) (*encoder.QRCode, error) {
	o, err := encoderOptions(opts)
	if err != nil {
		return nil, err
	}
	return encoder.EncodeWithOptions(content, o)
}

func encoderOptions(opts *qrlite.EncodeOptions) (encoder.Options, error) {
	o := encoder.DefaultOptions()
	var err error
	if o.ECLevel, err = opts.ECLevel(); err != nil {
		return o, err
	}
	if o.Mode, err = opts.SegmentMode(); err != nil {
		return o, err
	}
	if o.Version, err = opts.QRVersion(); err != nil {
		return o, err
	}
	if o.MaskPattern, err = opts.QRMaskPattern(); err != nil {
		return o, err
	}
	if opts != nil {
		o.Parallel = opts.Parallel
		o.Logger = opts.Logger
	}
	return o, nil
}
