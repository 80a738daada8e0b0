// Package capacity holds the static tables of the QR Code standard: version
// block structures, alignment pattern centers, error correction levels,
// segment modes, data mask formulas and the BCH codes for format and
// version information. Everything here is immutable and safe to share.
package capacity

import (
	"fmt"
	"strings"
)

// ErrorCorrectionLevel represents the four QR code error correction levels.
type ErrorCorrectionLevel int

const (
	ECLevelL ErrorCorrectionLevel = iota // ~7% correction
	ECLevelM                             // ~15% correction
	ECLevelQ                             // ~25% correction
	ECLevelH                             // ~30% correction
)

// ECLevelAuto asks the encoder to choose the strongest level that fits in
// the smallest version.
const ECLevelAuto ErrorCorrectionLevel = -1

// ECLevelsStrongestFirst lists the levels in the order the encoder tries
// them when the level is automatic.
var ECLevelsStrongestFirst = [4]ErrorCorrectionLevel{ECLevelH, ECLevelQ, ECLevelM, ECLevelL}

// Valid reports whether ecl is one of L, M, Q, H.
func (ecl ErrorCorrectionLevel) Valid() bool {
	return ecl >= ECLevelL && ecl <= ECLevelH
}

// Bits returns the 2-bit format information encoding of this level.
func (ecl ErrorCorrectionLevel) Bits() int {
	switch ecl {
	case ECLevelL:
		return 0x01
	case ECLevelM:
		return 0x00
	case ECLevelQ:
		return 0x03
	case ECLevelH:
		return 0x02
	}
	panic(fmt.Sprintf("capacity: no format bits for level %d", int(ecl)))
}

// Ordinal returns the ordinal position (L=0, M=1, Q=2, H=3).
func (ecl ErrorCorrectionLevel) Ordinal() int {
	return int(ecl)
}

// String returns the level name.
func (ecl ErrorCorrectionLevel) String() string {
	switch ecl {
	case ECLevelL:
		return "L"
	case ECLevelM:
		return "M"
	case ECLevelQ:
		return "Q"
	case ECLevelH:
		return "H"
	case ECLevelAuto:
		return "auto"
	}
	return "?"
}

// ParseECLevel accepts L, M, Q, H (or low, medium, quartile, high) in any
// case. The empty string and "auto" select ECLevelAuto.
func ParseECLevel(s string) (ErrorCorrectionLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ECLevelAuto, nil
	case "l", "low":
		return ECLevelL, nil
	case "m", "medium":
		return ECLevelM, nil
	case "q", "quartile":
		return ECLevelQ, nil
	case "h", "high":
		return ECLevelH, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}
