package capacity

import "fmt"

// NumMaskPatterns is the number of data mask patterns.
const NumMaskPatterns = 8

// DataMaskFunc reports whether the module at row i, column j is inverted.
type DataMaskFunc func(i, j int) bool

// DataMasks contains the 8 QR code data mask patterns.
var DataMasks = [NumMaskPatterns]DataMaskFunc{
	func(i, j int) bool { return (i+j)&0x01 == 0 },             // 000
	func(i, j int) bool { return i&0x01 == 0 },                 // 001
	func(i, j int) bool { return j%3 == 0 },                    // 010
	func(i, j int) bool { return (i+j)%3 == 0 },                // 011
	func(i, j int) bool { return ((i/2)+(j/3))&0x01 == 0 },     // 100
	func(i, j int) bool { return (i*j)%2+(i*j)%3 == 0 },        // 101
	func(i, j int) bool { return ((i*j)%2+(i*j)%3)&0x01 == 0 }, // 110
	func(i, j int) bool { return ((i+j)%2+(i*j)%3)&0x01 == 0 }, // 111
}

// DataMask returns the formula for the given pattern.
func DataMask(pattern int) (DataMaskFunc, error) {
	if pattern < 0 || pattern >= NumMaskPatterns {
		return nil, fmt.Errorf("%w: %d", ErrMaskRange, pattern)
	}
	return DataMasks[pattern], nil
}
