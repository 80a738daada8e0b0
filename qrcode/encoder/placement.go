package encoder

import (
	"fmt"
	"iter"

	"github.com/ericlevine/qrlite"
	"github.com/ericlevine/qrlite/bitutil"
)

// zigzag yields every (x, y) position of a dimension x dimension symbol in
// data placement order: two-module columns from the right edge, alternating
// upward and downward, right module before left, skipping the vertical
// timing column.
func zigzag(dimension int) iter.Seq2[int, int] {
	return func(yield func(x, y int) bool) {
		upward := true
		for right := dimension - 1; right >= 1; right -= 2 {
			if right == 6 {
				right = 5
			}
			for vert := 0; vert < dimension; vert++ {
				y := vert
				if upward {
					y = dimension - 1 - vert
				}
				for dx := 0; dx < 2; dx++ {
					if !yield(right-dx, y) {
						return
					}
				}
			}
			upward = !upward
		}
	}
}

// placeData writes bits into every unreserved module in zigzag order. The
// number of unreserved modules must equal the number of bits.
func placeData(bits *bitutil.BitArray, matrix *ByteMatrix, reserved *bitutil.BitMatrix) error {
	bitIndex := 0
	for x, y := range zigzag(matrix.Width) {
		if reserved.Get(x, y) {
			continue
		}
		if bitIndex >= bits.Size() {
			return fmt.Errorf("%w: more data modules than %d bits", qrlite.ErrInternal, bits.Size())
		}
		matrix.SetBool(x, y, bits.Get(bitIndex))
		bitIndex++
	}
	if bitIndex != bits.Size() {
		return fmt.Errorf("%w: placed %d of %d bits", qrlite.ErrInternal, bitIndex, bits.Size())
	}
	return nil
}

// readData returns the module values of every unreserved module in zigzag
// order, the inverse of placeData.
func readData(matrix *ByteMatrix, reserved *bitutil.BitMatrix) *bitutil.BitArray {
	bits := bitutil.NewBitArray(0)
	for x, y := range zigzag(matrix.Width) {
		if !reserved.Get(x, y) {
			bits.AppendBit(matrix.Get(x, y) == 1)
		}
	}
	return bits
}
