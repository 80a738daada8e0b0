package qrcode

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericlevine/qrlite"
	"github.com/ericlevine/qrlite/bitutil"
	"github.com/ericlevine/qrlite/qrcode/capacity"
)

func intPtr(v int) *int { return &v }

func TestEncodeDefaults(t *testing.T) {
	code, err := Encode("HELLO WORLD", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, code.Version.Number)
	assert.Equal(t, capacity.ECLevelQ, code.ECLevel)
	assert.Equal(t, capacity.ModeAlphanumeric, code.Mode)
	assert.Equal(t, 0, code.MaskPattern)
}

func TestEncodeOptions(t *testing.T) {
	code, err := Encode("HELLO WORLD", &qrlite.EncodeOptions{
		ErrorCorrection: "L",
		Mode:            "byte",
		Version:         4,
		MaskPattern:     intPtr(5),
		Parallel:        true,
	})
	require.NoError(t, err)
	assert.Equal(t, capacity.ECLevelL, code.ECLevel)
	assert.Equal(t, capacity.ModeByte, code.Mode)
	assert.Equal(t, 4, code.Version.Number)
	assert.Equal(t, 5, code.MaskPattern)
}

func TestEncodeOptionErrors(t *testing.T) {
	tests := []struct {
		name string
		opts *qrlite.EncodeOptions
		want error
	}{
		{"level", &qrlite.EncodeOptions{ErrorCorrection: "X"}, qrlite.ErrInvalidECLevel},
		{"mode", &qrlite.EncodeOptions{Mode: "kanji"}, qrlite.ErrInvalidMode},
		{"version", &qrlite.EncodeOptions{Version: 41}, qrlite.ErrInvalidVersion},
		{"negative version", &qrlite.EncodeOptions{Version: -1}, qrlite.ErrInvalidVersion},
		{"mask", &qrlite.EncodeOptions{MaskPattern: intPtr(8)}, qrlite.ErrInvalidMask},
		{"forced mode", &qrlite.EncodeOptions{Mode: "numeric"}, qrlite.ErrInvalidMode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Encode("HELLO", tt.opts)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := Encode(strings.Repeat("x", 3000), nil)
	assert.ErrorIs(t, err, qrlite.ErrDataTooLong)
}

func TestWriterEncode(t *testing.T) {
	w := NewWriter()
	result, err := w.Encode("Hello", 100, 100, nil)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, result.Width(), 100)
	assert.GreaterOrEqual(t, result.Height(), 100)
}

func TestWriterEncodeNaturalSize(t *testing.T) {
	result, err := NewWriter().Encode("HELLO WORLD", 0, 0, nil)
	require.NoError(t, err)
	require.Equal(t, 21+2*qrlite.DefaultQuietZone, result.Width())

	code, err := Encode("HELLO WORLD", nil)
	require.NoError(t, err)
	for y := 0; y < result.Height(); y++ {
		for x := 0; x < result.Width(); x++ {
			want := code.Get(x-qrlite.DefaultQuietZone, y-qrlite.DefaultQuietZone)
			require.Equal(t, want, result.Get(x, y), "(%d,%d)", x, y)
		}
	}
}

func TestWriterEncodeWithOptions(t *testing.T) {
	result, err := NewWriter().Encode("Test", 0, 0, &qrlite.EncodeOptions{
		ErrorCorrection: "H",
		Margin:          intPtr(0),
	})
	require.NoError(t, err)
	assert.Equal(t, 21, result.Width())
	assert.True(t, result.Get(0, 0))

	result, err = NewWriter().Encode("Test", 200, 200, &qrlite.EncodeOptions{Margin: intPtr(2)})
	require.NoError(t, err)
	// 25 modules per side fit 8 times into 200 pixels.
	assert.Equal(t, 200, result.Width())
	assert.False(t, result.Get(15, 15))
	assert.True(t, result.Get(16, 16))
}

func TestWriterErrors(t *testing.T) {
	w := NewWriter()
	_, err := w.Encode("Hello", -1, 100, nil)
	assert.Error(t, err)
	_, err = w.Encode("Hello", 0, 0, &qrlite.EncodeOptions{Margin: intPtr(-1)})
	assert.Error(t, err)
	_, err = w.Encode("Hello", 0, 0, &qrlite.EncodeOptions{ErrorCorrection: "Z"})
	assert.ErrorIs(t, err, qrlite.ErrInvalidECLevel)
}

func TestWriterEmptyContents(t *testing.T) {
	result, err := NewWriter().Encode("", 0, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, 29, result.Width())
}

func TestImage(t *testing.T) {
	bm := bitutil.ParseStringMatrix("#.\n.#\n", "#", ".")
	img := Image(bm, 3)
	assert.Equal(t, 6, img.Bounds().Dx())
	assert.Equal(t, uint8(0), img.GrayAt(0, 0).Y)
	assert.Equal(t, uint8(0), img.GrayAt(2, 2).Y)
	assert.Equal(t, uint8(0xFF), img.GrayAt(3, 0).Y)
	assert.Equal(t, uint8(0), img.GrayAt(5, 5).Y)

	assert.Equal(t, 2, Image(bm, 0).Bounds().Dx(), "scale is at least 1")
}

func TestGeneratePNG(t *testing.T) {
	b, err := Generate("https://example.com", 256, &qrlite.EncodeOptions{ErrorCorrection: "M"})
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(b))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, img.Bounds().Dx(), 256)

	uri, err := GenerateBase64Image("https://example.com", 256, nil)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, "data:image/png;base64,"))
	require.NoError(t, err)
	_, err = png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)

	_, err = Generate(strings.Repeat("x", 3000), 256, nil)
	assert.ErrorIs(t, err, qrlite.ErrDataTooLong)
}

func TestTerminal(t *testing.T) {
	bm := bitutil.ParseStringMatrix("#..#\n#.#.\n.#..\n", "#", ".")
	assert.Equal(t, " █▀▄\n"+"▀ ▀▀\n", Terminal(bm))
	assert.Equal(t, "  ████  \n  ██  ██\n██  ████\n", TerminalWide(bm))

	code, err := Encode("HELLO WORLD", nil)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(Terminal(code.ToBitMatrix()), "\n"), "\n")
	assert.Len(t, lines, 11)
}
