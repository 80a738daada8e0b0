package encoder

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericlevine/qrlite"
	"github.com/ericlevine/qrlite/bitutil"
	"github.com/ericlevine/qrlite/qrcode/capacity"
)

// helloWorldQ is HELLO WORLD at 1-Q with mask 0.
const helloWorldQ = `
#######.##....#######
#.....#.#..#..#.....#
#.###.#.#..##.#.###.#
#.###.#.#.....#.###.#
#.###.#.#.#...#.###.#
#.....#...#...#.....#
#######.#.#.#.#######
........#............
.##.#.##....#.#.#####
.#......####....#...#
..##.###.##...#.##...
.##.##.#..##.#.#.###.
#...#.#.#.###.###.#.#
........##.#..#...#.#
#######.#.#....#.##..
#.....#..#.##.##.#...
#.###.#.#.#...#######
#.###.#..#.#.#.#...#.
#.###.#.#..#.###.#..#
#.....#.#.####...#.##
#######....#.###....#
`

func TestEncodeHelloWorld(t *testing.T) {
	qr, err := Encode("HELLO WORLD", capacity.ECLevelAuto, 0, -1)
	require.NoError(t, err)
	assert.Equal(t, capacity.ModeAlphanumeric, qr.Mode)
	assert.Equal(t, capacity.ECLevelQ, qr.ECLevel)
	assert.Equal(t, 1, qr.Version.Number)
	assert.Equal(t, 0, qr.MaskPattern)
	assert.Equal(t, 1027, qr.Penalty)
	assert.Equal(t, 21, qr.Size())

	want := bitutil.ParseStringMatrix(helloWorldQ, "#", ".")
	assert.True(t, want.Equals(qr.ToBitMatrix()), "got:\n%s", qr.ToBitMatrix().StringWithChars("#", "."))
}

func TestEncodeKnownSelections(t *testing.T) {
	tests := []struct {
		content string
		level   capacity.ErrorCorrectionLevel
		mode    capacity.Mode
		version int
		wantECL capacity.ErrorCorrectionLevel
		mask    int
		penalty int
	}{
		{"01234567", capacity.ECLevelM, capacity.ModeNumeric, 1, capacity.ECLevelM, 2, 1037},
		{"https://example.com/qr", capacity.ECLevelAuto, capacity.ModeByte, 2, capacity.ECLevelM, 6, 1167},
		{strings.Repeat("A", 100), capacity.ECLevelH, capacity.ModeAlphanumeric, 8, capacity.ECLevelH, 2, 2088},
		{strings.Repeat("Hello, 世界! ", 8), capacity.ECLevelAuto, capacity.ModeByte, 6, capacity.ECLevelL, 2, 1700},
		{"", capacity.ECLevelAuto, capacity.ModeByte, 1, capacity.ECLevelH, 7, -1},
	}
	for _, tt := range tests {
		t.Run(tt.content, func(t *testing.T) {
			qr, err := Encode(tt.content, tt.level, 0, -1)
			require.NoError(t, err)
			assert.Equal(t, tt.mode, qr.Mode)
			assert.Equal(t, tt.version, qr.Version.Number)
			assert.Equal(t, tt.wantECL, qr.ECLevel)
			assert.Equal(t, tt.mask, qr.MaskPattern)
			if tt.penalty >= 0 {
				assert.Equal(t, tt.penalty, qr.Penalty)
			}
		})
	}
}

// readFormatInfo reads both copies of the format information.
func readFormatInfo(qr *QRCode) (int, int) {
	first, second := 0, 0
	for i := 0; i < 15; i++ {
		x1, y1, x2, y2 := typeInfoPositions(i, qr.Size(), qr.Size())
		if qr.Get(x1, y1) {
			first |= 1 << i
		}
		if qr.Get(x2, y2) {
			second |= 1 << i
		}
	}
	return first, second
}

func TestEncodeFormatAndVersionInfo(t *testing.T) {
	for _, n := range []int{1, 6, 7, 21, 40} {
		qr, err := Encode("FORMAT", capacity.ECLevelM, n, -1)
		require.NoError(t, err)
		first, second := readFormatInfo(qr)
		want := capacity.FormatInfoBits(capacity.ECLevelM, qr.MaskPattern)
		assert.Equal(t, want, first, "version %d", n)
		assert.Equal(t, want, second, "version %d", n)
		assert.True(t, qr.Get(8, qr.Size()-8), "dark module, version %d", n)

		if n < 7 {
			continue
		}
		bl, tr := 0, 0
		for i := 0; i < 18; i++ {
			x1, y1, x2, y2 := versionInfoPositions(i, qr.Size(), qr.Size())
			if qr.Get(x1, y1) {
				bl |= 1 << i
			}
			if qr.Get(x2, y2) {
				tr |= 1 << i
			}
		}
		assert.Equal(t, capacity.VersionInfoBits(n), bl, "version %d", n)
		assert.Equal(t, capacity.VersionInfoBits(n), tr, "version %d", n)
	}
}

func TestEncodeDataReadsBack(t *testing.T) {
	tests := []struct {
		content string
		level   capacity.ErrorCorrectionLevel
		version int
	}{
		{"HELLO WORLD", capacity.ECLevelQ, 0},
		{"read back through two block groups", capacity.ECLevelQ, 5},
		{strings.Repeat("0123456789", 40), capacity.ECLevelH, 0},
		{strings.Repeat("bytes ", 300), capacity.ECLevelL, 0},
	}
	for _, tt := range tests {
		qr, err := Encode(tt.content, tt.level, tt.version, -1)
		require.NoError(t, err)

		s := newSkeleton(qr.Version)
		m := qr.Matrix.Clone()
		applyMask(m, s, qr.MaskPattern)
		got := readData(m, s.reserved)

		seg := mustSegment(t, tt.content)
		want, err := AssembleCodewords(seg, qr.Version, qr.ECLevel)
		require.NoError(t, err)
		assert.Equal(t, want.Binary(), got.Binary(), "%.20q", tt.content)
	}
}

func TestEncodeFinderPatternsIdentical(t *testing.T) {
	qr, err := Encode("finder", capacity.ECLevelL, 10, -1)
	require.NoError(t, err)
	dim := qr.Size()
	require.Equal(t, 57, dim)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			assert.Equal(t, qr.Get(x, y), qr.Get(dim-1-x, y))
			assert.Equal(t, qr.Get(x, y), qr.Get(x, dim-1-y))
		}
	}
	assert.False(t, qr.Get(-1, 0))
	assert.False(t, qr.Get(0, dim))
}

func TestEncodeForcedMask(t *testing.T) {
	for p := 0; p < capacity.NumMaskPatterns; p++ {
		qr, err := Encode("HELLO WORLD", capacity.ECLevelQ, 0, p)
		require.NoError(t, err)
		assert.Equal(t, p, qr.MaskPattern)
		first, _ := readFormatInfo(qr)
		assert.Equal(t, capacity.FormatInfoBits(capacity.ECLevelQ, p), first)
	}
	qr, err := Encode("HELLO WORLD", capacity.ECLevelQ, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, 1081, qr.Penalty, "forced masks still report their penalty")
}

func TestEncodeErrors(t *testing.T) {
	_, err := Encode("x", capacity.ECLevelL, 0, 8)
	assert.ErrorIs(t, err, qrlite.ErrInvalidMask)
	_, err = Encode("x", capacity.ECLevelL, 0, -2)
	assert.ErrorIs(t, err, qrlite.ErrInvalidMask)
	_, err = Encode("x", capacity.ErrorCorrectionLevel(4), 0, -1)
	assert.ErrorIs(t, err, qrlite.ErrInvalidECLevel)
	_, err = Encode("x", capacity.ECLevelL, 41, -1)
	assert.ErrorIs(t, err, qrlite.ErrInvalidVersion)

	_, err = Encode(strings.Repeat("9", 7090), capacity.ECLevelL, 0, -1)
	var tooLong *qrlite.DataTooLongError
	require.True(t, errors.As(err, &tooLong))
	assert.Equal(t, 40, tooLong.MaxVersion)

	opts := DefaultOptions()
	opts.Mode = capacity.ModeNumeric
	_, err = EncodeWithOptions("12a", opts)
	assert.ErrorIs(t, err, qrlite.ErrInvalidMode)
}

func TestEncodeWithOptionsForcedMode(t *testing.T) {
	opts := DefaultOptions()
	opts.Mode = capacity.ModeByte
	qr, err := EncodeWithOptions("12345", opts)
	require.NoError(t, err)
	assert.Equal(t, capacity.ModeByte, qr.Mode)
}

func TestEncodeParallelMatchesSerial(t *testing.T) {
	for _, content := range []string{"HELLO WORLD", strings.Repeat("parallel ", 40)} {
		serial, err := Encode(content, capacity.ECLevelAuto, 0, -1)
		require.NoError(t, err)

		opts := DefaultOptions()
		opts.Parallel = true
		parallel, err := EncodeWithOptions(content, opts)
		require.NoError(t, err)
		assert.Equal(t, serial.MaskPattern, parallel.MaskPattern)
		assert.True(t, serial.ToBitMatrix().Equals(parallel.ToBitMatrix()))
	}
}

func TestEncodeLogsDebugRecords(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Logger = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	_, err := EncodeWithOptions("HELLO WORLD", opts)
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "version selected")
	assert.Contains(t, out, "ec_level=Q")
	assert.Contains(t, out, "mask scored")
	assert.Contains(t, out, "mask=0")
}

func TestQRCodeString(t *testing.T) {
	qr, err := Encode("HELLO WORLD", capacity.ECLevelAuto, 0, -1)
	require.NoError(t, err)
	s := qr.String()
	assert.Contains(t, s, "mode: alphanumeric\n")
	assert.Contains(t, s, "ecLevel: Q\n")
	assert.Contains(t, s, "version: 1\n")
	assert.Contains(t, s, "maskPattern: 0\n")
	assert.Contains(t, s, "1 1 1 1 1 1 1 0 ")
}

func BenchmarkEncode(b *testing.B) {
	tests := []struct {
		name     string
		content  string
		parallel bool
	}{
		{"short", "HELLO WORLD", false},
		{"url", "https://example.com/some/longer/path?query=value", false},
		{"large", strings.Repeat("benchmark ", 200), false},
		{"large_parallel", strings.Repeat("benchmark ", 200), true},
	}
	for _, tc := range tests {
		b.Run(tc.name, func(b *testing.B) {
			opts := DefaultOptions()
			opts.Parallel = tc.parallel
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := EncodeWithOptions(tc.content, opts); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
