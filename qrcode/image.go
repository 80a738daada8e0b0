package qrcode

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/ericlevine/qrlite"
	"github.com/ericlevine/qrlite/bitutil"
)

// Image converts bm to a grayscale image, drawing every set bit as a
// scale x scale black square on white.
func Image(bm *bitutil.BitMatrix, scale int) *image.Gray {
	if scale < 1 {
		scale = 1
	}
	img := image.NewGray(image.Rect(0, 0, bm.Width()*scale, bm.Height()*scale))
	for i := range img.Pix {
		img.Pix[i] = 0xFF
	}
	for y := 0; y < bm.Height(); y++ {
		for x := 0; x < bm.Width(); x++ {
			if !bm.Get(x, y) {
				continue
			}
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					img.SetGray(x*scale+dx, y*scale+dy, color.Gray{Y: 0})
				}
			}
		}
	}
	return img
}

// WritePNG encodes bm as a PNG image with the given module scale.
func WritePNG(w io.Writer, bm *bitutil.BitMatrix, scale int) error {
	if err := png.Encode(w, Image(bm, scale)); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// Generate encodes content and returns PNG bytes at least size x size
// pixels, quiet zone included.
func Generate(content string, size int, opts *qrlite.EncodeOptions) ([]byte, error) {
	bm, err := NewWriter().Encode(content, size, size, opts)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := WritePNG(&buf, bm, 1); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GenerateBase64Image is Generate returning a data URI for direct use in
// an HTML img tag.
func GenerateBase64Image(content string, size int, opts *qrlite.EncodeOptions) (string, error) {
	b, err := Generate(content, size, opts)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(b), nil
}
