package qrcode

import (
	"fmt"

	"github.com/ericlevine/qrlite"
	"github.com/ericlevine/qrlite/bitutil"
	"github.com/ericlevine/qrlite/qrcode/encoder"
)

// Writer encodes QR codes into BitMatrix images.
type Writer struct{}

var _ qrlite.Writer = (*Writer)(nil)

// NewWriter creates a new QR code Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Encode encodes contents into a BitMatrix at least width x height pixels,
// each module scaled by the largest integer factor that fits, centred, with
// a quiet zone of opts.Margin modules (4 by default).
func (w *Writer) Encode(contents string, width, height int, opts *qrlite.EncodeOptions) (*bitutil.BitMatrix, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("requested dimensions are too small: %dx%d", width, height)
	}
	quietZone, err := opts.QuietZone()
	if err != nil {
		return nil, err
	}
	code, err := Encode(contents, opts)
	if err != nil {
		return nil, err
	}
	return RenderResult(code, width, height, quietZone), nil
}

// RenderResult scales code into an output matrix. The output is never
// smaller than the symbol plus its quiet zone.
func RenderResult(code *encoder.QRCode, width, height, quietZone int) *bitutil.BitMatrix {
	input := code.Matrix
	inputWidth := input.Width
	inputHeight := input.Height
	qrWidth := inputWidth + quietZone*2
	qrHeight := inputHeight + quietZone*2
	outputWidth := max(width, qrWidth)
	outputHeight := max(height, qrHeight)

	multiple := min(outputWidth/qrWidth, outputHeight/qrHeight)

	leftPadding := (outputWidth - inputWidth*multiple) / 2
	topPadding := (outputHeight - inputHeight*multiple) / 2

	output := bitutil.NewBitMatrixWithSize(outputWidth, outputHeight)

	for inputY := 0; inputY < inputHeight; inputY++ {
		outputY := topPadding + inputY*multiple
		for inputX := 0; inputX < inputWidth; inputX++ {
			if input.Get(inputX, inputY) == 1 {
				outputX := leftPadding + inputX*multiple
				output.SetRegion(outputX, outputY, multiple, multiple)
			}
		}
	}

	return output
}
