package capacity

import (
	"fmt"
	"strings"
)

// Mode is a QR segment mode. Its value is the 4-bit mode indicator.
type Mode int

const (
	// ModeAuto lets the encoder pick the most compact mode for the input.
	ModeAuto         Mode = 0x0
	ModeNumeric      Mode = 0x1
	ModeAlphanumeric Mode = 0x2
	ModeByte         Mode = 0x4
)

// characterCountBits contains [v1-9, v10-26, v27-40] bit counts.
var characterCountBits = map[Mode][3]int{
	ModeNumeric:      {10, 12, 14},
	ModeAlphanumeric: {9, 11, 13},
	ModeByte:         {8, 16, 16},
}

// CharacterCountBits returns the width of the character count indicator for
// this mode in the given version.
func (m Mode) CharacterCountBits(version *Version) int {
	widths, ok := characterCountBits[m]
	if !ok {
		panic(fmt.Sprintf("capacity: no character count for mode %s", m))
	}
	number := version.Number
	switch {
	case number <= 9:
		return widths[0]
	case number <= 26:
		return widths[1]
	default:
		return widths[2]
	}
}

// Bits returns the 4-bit mode indicator.
func (m Mode) Bits() int {
	return int(m)
}

func (m Mode) String() string {
	switch m {
	case ModeAuto:
		return "auto"
	case ModeNumeric:
		return "numeric"
	case ModeAlphanumeric:
		return "alphanumeric"
	case ModeByte:
		return "byte"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode accepts numeric, alphanumeric (or alnum) and byte in any case.
// The empty string and "auto" select ModeAuto.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ModeAuto, nil
	case "numeric", "num":
		return ModeNumeric, nil
	case "alphanumeric", "alnum":
		return ModeAlphanumeric, nil
	case "byte", "bytes", "8bit":
		return ModeByte, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}
