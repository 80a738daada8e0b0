package encoder

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"

	"github.com/ericlevine/qrlite"
	"github.com/ericlevine/qrlite/bitutil"
	"github.com/ericlevine/qrlite/qrcode/capacity"
)

// Segment is the payload of one QR segment: the mode, the number of
// characters (bytes in byte mode) and the packed data bits. The mode
// indicator and character count are not part of Bits.
type Segment struct {
	Mode      capacity.Mode
	CharCount int
	Bits      *bitutil.BitArray
}

// alphanumericTable maps ASCII values to alphanumeric codes.
var alphanumericTable = [128]int{
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	36, -1, -1, -1, 37, 38, -1, -1, -1, -1, 39, 40, -1, 41, 42, 43,
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 44, -1, -1, -1, -1, -1,
	-1, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24,
	25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
}

// GetAlphanumericCode returns the alphanumeric code for a character, or -1
// if the character is outside the 45-character set.
func GetAlphanumericCode(c rune) int {
	if c >= 0 && c < 128 {
		return alphanumericTable[c]
	}
	return -1
}

func isDigit(c rune) bool { return c >= '0' && c <= '9' }

// ChooseMode returns the most compact mode able to represent content:
// numeric when every character is a digit, alphanumeric when every
// character is in the 45-character set, byte otherwise. Empty content is
// encoded in byte mode.
func ChooseMode(content string) capacity.Mode {
	if content == "" {
		return capacity.ModeByte
	}
	numeric := true
	for _, c := range content {
		if isDigit(c) {
			continue
		}
		if GetAlphanumericCode(c) == -1 {
			return capacity.ModeByte
		}
		numeric = false
	}
	if numeric {
		return capacity.ModeNumeric
	}
	return capacity.ModeAlphanumeric
}

// NewSegment packs content in the given mode. capacity.ModeAuto selects the
// mode with ChooseMode. A forced numeric or alphanumeric mode fails with
// *qrlite.InvalidModeError at the first character it cannot represent.
func NewSegment(content string, mode capacity.Mode) (*Segment, error) {
	if mode == capacity.ModeAuto {
		mode = ChooseMode(content)
	}
	bits := bitutil.NewBitArray(0)
	var count int
	var err error
	switch mode {
	case capacity.ModeNumeric:
		count, err = appendNumericBytes(content, bits)
	case capacity.ModeAlphanumeric:
		count, err = appendAlphanumericBytes(content, bits)
	case capacity.ModeByte:
		count = append8BitBytes(content, bits)
	default:
		return nil, fmt.Errorf("%w: unsupported mode %s", qrlite.ErrInvalidMode, mode)
	}
	if err != nil {
		return nil, err
	}
	return &Segment{Mode: mode, CharCount: count, Bits: bits}, nil
}

// HeaderBits returns the mode indicator and character count width for the
// given version.
func (s *Segment) HeaderBits(version *capacity.Version) int {
	return 4 + s.Mode.CharacterCountBits(version)
}

// TotalBits returns the number of bits the segment occupies in version,
// header included.
func (s *Segment) TotalBits(version *capacity.Version) int {
	return s.HeaderBits(version) + s.Bits.Size()
}

// FitsCount reports whether CharCount fits the character count indicator
// of version.
func (s *Segment) FitsCount(version *capacity.Version) bool {
	return s.CharCount < 1<<s.Mode.CharacterCountBits(version)
}

// AppendTo writes the mode indicator, the character count for version and
// the payload to bits.
func (s *Segment) AppendTo(bits *bitutil.BitArray, version *capacity.Version) {
	bits.AppendBits(uint32(s.Mode.Bits()), 4)
	bits.AppendBits(uint32(s.CharCount), s.Mode.CharacterCountBits(version))
	bits.AppendBitArray(s.Bits)
}

func appendNumericBytes(content string, bits *bitutil.BitArray) (int, error) {
	for i, c := range content {
		if !isDigit(c) {
			return 0, &qrlite.InvalidModeError{Mode: capacity.ModeNumeric, Char: c, Index: i}
		}
	}
	length := len(content)
	i := 0
	for i < length {
		num1 := int(content[i] - '0')
		if i+2 < length {
			num2 := int(content[i+1] - '0')
			num3 := int(content[i+2] - '0')
			bits.AppendBits(uint32(num1*100+num2*10+num3), 10)
			i += 3
		} else if i+1 < length {
			num2 := int(content[i+1] - '0')
			bits.AppendBits(uint32(num1*10+num2), 7)
			i += 2
		} else {
			bits.AppendBits(uint32(num1), 4)
			i++
		}
	}
	return length, nil
}

func appendAlphanumericBytes(content string, bits *bitutil.BitArray) (int, error) {
	for i, c := range content {
		if GetAlphanumericCode(c) == -1 {
			return 0, &qrlite.InvalidModeError{Mode: capacity.ModeAlphanumeric, Char: c, Index: i}
		}
	}
	length := len(content)
	i := 0
	for i < length {
		code1 := GetAlphanumericCode(rune(content[i]))
		if i+1 < length {
			code2 := GetAlphanumericCode(rune(content[i+1]))
			bits.AppendBits(uint32(code1*45+code2), 11)
			i += 2
		} else {
			bits.AppendBits(uint32(code1), 6)
			i++
		}
	}
	return length, nil
}

// append8BitBytes writes content as UTF-8. Ill-formed sequences are replaced
// with U+FFFD first so the symbol always carries valid UTF-8.
func append8BitBytes(content string, bits *bitutil.BitArray) int {
	if !utf8.ValidString(content) {
		content, _, _ = transform.String(runes.ReplaceIllFormed(), content)
	}
	for i := 0; i < len(content); i++ {
		bits.AppendBits(uint32(content[i]), 8)
	}
	return len(content)
}
