// Package encoder implements QR code encoding: segment packing, version
// selection, codeword assembly, module placement and mask selection.
package encoder

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ericlevine/qrlite"
	"github.com/ericlevine/qrlite/bitutil"
	"github.com/ericlevine/qrlite/internal/logger"
	"github.com/ericlevine/qrlite/qrcode/capacity"
)

// QRCode holds the encoded QR code data. It is not modified after Encode
// returns.
type QRCode struct {
	Mode        capacity.Mode
	ECLevel     capacity.ErrorCorrectionLevel
	Version     *capacity.Version
	MaskPattern int
	Matrix      *ByteMatrix
	Penalty     int
}

// Size returns the side length in modules.
func (qr *QRCode) Size() int {
	return qr.Matrix.Width
}

// Get reports whether the module at column x, row y is dark. Coordinates
// outside the symbol are light.
func (qr *QRCode) Get(x, y int) bool {
	if x < 0 || y < 0 || x >= qr.Matrix.Width || y >= qr.Matrix.Height {
		return false
	}
	return qr.Matrix.Get(x, y) == 1
}

// ToBitMatrix converts the symbol to a BitMatrix, set for dark modules.
func (qr *QRCode) ToBitMatrix() *bitutil.BitMatrix {
	bm := bitutil.NewBitMatrixWithSize(qr.Matrix.Width, qr.Matrix.Height)
	for y := 0; y < qr.Matrix.Height; y++ {
		for x := 0; x < qr.Matrix.Width; x++ {
			if qr.Matrix.Get(x, y) == 1 {
				bm.Set(x, y)
			}
		}
	}
	return bm
}

func (qr *QRCode) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "mode: %s\n", qr.Mode)
	fmt.Fprintf(&sb, "ecLevel: %s\n", qr.ECLevel)
	fmt.Fprintf(&sb, "version: %s\n", qr.Version)
	fmt.Fprintf(&sb, "maskPattern: %d\n", qr.MaskPattern)
	fmt.Fprintf(&sb, "penalty: %d\n", qr.Penalty)
	if qr.Matrix != nil {
		fmt.Fprintf(&sb, "matrix:\n%s", qr.ToBitMatrix().StringWithChars("1 ", "0 "))
	}
	return sb.String()
}

// Options control a single encode.
type Options struct {
	// ECLevel is capacity.ECLevelAuto or a fixed level.
	ECLevel capacity.ErrorCorrectionLevel
	// Version is 0 for automatic selection or a fixed version 1-40.
	Version int
	// MaskPattern is -1 for automatic selection or a fixed pattern 0-7.
	MaskPattern int
	// Mode is capacity.ModeAuto or a forced mode.
	Mode capacity.Mode
	// Parallel scores the mask candidates on separate goroutines.
	Parallel bool
	// Logger receives debug records. Nil discards them.
	Logger *slog.Logger
}

// DefaultOptions selects the level, version, mask and mode automatically.
func DefaultOptions() Options {
	return Options{
		ECLevel:     capacity.ECLevelAuto,
		MaskPattern: -1,
		Mode:        capacity.ModeAuto,
	}
}

// Encode encodes content into a QRCode. ecLevel may be capacity.ECLevelAuto,
// qrVersion 0 and maskPattern -1 for automatic selection.
func Encode(content string, ecLevel capacity.ErrorCorrectionLevel, qrVersion int, maskPattern int) (*QRCode, error) {
	opts := DefaultOptions()
	opts.ECLevel = ecLevel
	opts.Version = qrVersion
	opts.MaskPattern = maskPattern
	return EncodeWithOptions(content, opts)
}

// EncodeWithOptions encodes content into a QRCode.
func EncodeWithOptions(content string, opts Options) (*QRCode, error) {
	start := time.Now()
	log := logger.OrDiscard(opts.Logger)

	if opts.MaskPattern < -1 || opts.MaskPattern >= capacity.NumMaskPatterns {
		return nil, fmt.Errorf("%w: %d", qrlite.ErrInvalidMask, opts.MaskPattern)
	}
	if opts.ECLevel != capacity.ECLevelAuto && !opts.ECLevel.Valid() {
		return nil, fmt.Errorf("%w: %d", qrlite.ErrInvalidECLevel, int(opts.ECLevel))
	}

	seg, err := NewSegment(content, opts.Mode)
	if err != nil {
		return nil, err
	}

	version, ecLevel, err := SelectVersion(seg, opts.ECLevel, opts.Version)
	if err != nil {
		log.Debug("no version fits", logger.Mode(seg.Mode), logger.Error(err))
		return nil, err
	}
	log.Debug("version selected",
		logger.Mode(seg.Mode), logger.Version(version.Number), logger.ECLevel(ecLevel),
		slog.Int("data_bits", seg.TotalBits(version)),
		slog.Int("capacity_bits", version.DataCodewords(ecLevel)*8))

	finalBits, err := AssembleCodewords(seg, version, ecLevel)
	if err != nil {
		return nil, err
	}

	s := newSkeleton(version)
	if err := placeData(finalBits, s.matrix, s.reserved); err != nil {
		return nil, err
	}

	var chosen maskCandidate
	if opts.MaskPattern >= 0 {
		chosen = s.evaluateMask(ecLevel, opts.MaskPattern)
	} else {
		chosen = s.chooseMask(ecLevel, opts.Parallel, log)
	}

	qr := &QRCode{
		Mode:        seg.Mode,
		ECLevel:     ecLevel,
		Version:     version,
		MaskPattern: chosen.pattern,
		Matrix:      chosen.matrix,
		Penalty:     chosen.penalty,
	}
	log.Debug("symbol encoded",
		logger.Version(version.Number), logger.ECLevel(ecLevel), logger.Mask(chosen.pattern),
		logger.Penalty(chosen.penalty), logger.Elapsed(start))
	return qr, nil
}
