// Package bitutil provides the bit containers used while building QR symbols.
package bitutil

import (
	"iter"
	"strings"
)

const loadFactor = 0.75

// BitArray is an appendable sequence of bits stored compactly in uint32
// words. Bit i lives in word i/32 at position i%32.
type BitArray struct {
	bits []uint32
	size int
}

// NewBitArray creates a BitArray holding size unset bits.
func NewBitArray(size int) *BitArray {
	if size <= 0 {
		return &BitArray{}
	}
	return &BitArray{
		bits: makeArray(size),
		size: size,
	}
}

// Size returns the number of bits in the array.
func (ba *BitArray) Size() int {
	return ba.size
}

// SizeInBytes returns the number of bytes needed to hold the bits.
func (ba *BitArray) SizeInBytes() int {
	return (ba.size + 7) / 8
}

func (ba *BitArray) ensureCapacity(newSize int) {
	if newSize > len(ba.bits)*32 {
		newBits := makeArray(int(float64(newSize) / loadFactor))
		copy(newBits, ba.bits)
		ba.bits = newBits
	}
}

// Get returns true if bit i is set.
func (ba *BitArray) Get(i int) bool {
	if i < 0 || i >= ba.size {
		panic("bitarray: index out of range")
	}
	return (ba.bits[i/32] & (1 << uint(i&0x1F))) != 0
}

// Set sets bit i.
func (ba *BitArray) Set(i int) {
	if i < 0 || i >= ba.size {
		panic("bitarray: index out of range")
	}
	ba.bits[i/32] |= 1 << uint(i&0x1F)
}

// AppendBit appends a single bit.
func (ba *BitArray) AppendBit(bit bool) {
	ba.ensureCapacity(ba.size + 1)
	if bit {
		ba.bits[ba.size/32] |= 1 << uint(ba.size&0x1F)
	}
	ba.size++
}

// AppendBits appends the least-significant numBits bits of value, from most
// significant to least significant. value must fit in numBits.
func (ba *BitArray) AppendBits(value uint32, numBits int) {
	if numBits < 0 || numBits > 32 {
		panic("bitarray: numBits must be between 0 and 32")
	}
	if numBits < 32 && value>>uint(numBits) != 0 {
		panic("bitarray: value does not fit in numBits")
	}
	nextSize := ba.size
	ba.ensureCapacity(nextSize + numBits)
	for numBitsLeft := numBits - 1; numBitsLeft >= 0; numBitsLeft-- {
		if (value & (1 << uint(numBitsLeft))) != 0 {
			ba.bits[nextSize/32] |= 1 << uint(nextSize&0x1F)
		}
		nextSize++
	}
	ba.size = nextSize
}

// AppendBitArray appends another BitArray to this one.
func (ba *BitArray) AppendBitArray(other *BitArray) {
	ba.ensureCapacity(ba.size + other.size)
	for i := 0; i < other.size; i++ {
		ba.AppendBit(other.Get(i))
	}
}

// ToBytes packs numBytes bytes starting at bitOffset into array[offset:],
// most significant bit first. Bits past the end of the array read as zero.
func (ba *BitArray) ToBytes(bitOffset int, array []byte, offset, numBytes int) {
	for i := 0; i < numBytes; i++ {
		theByte := byte(0)
		for j := 0; j < 8; j++ {
			if bitOffset < ba.size && ba.Get(bitOffset) {
				theByte |= 1 << uint(7-j)
			}
			bitOffset++
		}
		array[offset+i] = theByte
	}
}

// Bytes returns the whole array packed into bytes; a trailing partial byte
// is zero-padded on the right.
func (ba *BitArray) Bytes() []byte {
	out := make([]byte, ba.SizeInBytes())
	ba.ToBytes(0, out, 0, len(out))
	return out
}

// All yields every bit in order.
func (ba *BitArray) All() iter.Seq[bool] {
	return func(yield func(bool) bool) {
		for i := 0; i < ba.size; i++ {
			if !yield(ba.Get(i)) {
				return
			}
		}
	}
}

// Clone returns a copy of this BitArray.
func (ba *BitArray) Clone() *BitArray {
	b := make([]uint32, len(ba.bits))
	copy(b, ba.bits)
	return &BitArray{bits: b, size: ba.size}
}

// String returns the bits as '0' and '1' characters grouped in bytes.
func (ba *BitArray) String() string {
	var sb strings.Builder
	sb.Grow(ba.size + ba.size/8 + 1)
	for i := 0; i < ba.size; i++ {
		if i > 0 && i&0x07 == 0 {
			sb.WriteByte(' ')
		}
		if ba.Get(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Binary returns the bits as an unbroken run of '0' and '1' characters.
func (ba *BitArray) Binary() string {
	var sb strings.Builder
	sb.Grow(ba.size)
	for bit := range ba.All() {
		if bit {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

func makeArray(size int) []uint32 {
	return make([]uint32, (size+31)/32)
}
