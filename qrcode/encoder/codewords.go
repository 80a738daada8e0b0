package encoder

import (
	"fmt"

	"github.com/ericlevine/qrlite"
	"github.com/ericlevine/qrlite/bitutil"
	"github.com/ericlevine/qrlite/qrcode/capacity"
	"github.com/ericlevine/qrlite/reedsolomon"
)

// Pad codewords appended alternately after the terminator.
const (
	padCodeword1 = 0xEC
	padCodeword2 = 0x11
)

// Block is one Reed-Solomon block: its share of the data codewords and the
// error correction codewords computed over them.
type Block struct {
	Data []byte
	EC   []byte
}

// BuildDataCodewords writes seg for version and terminates and pads the
// result to exactly the data capacity at ecLevel.
func BuildDataCodewords(seg *Segment, version *capacity.Version, ecLevel capacity.ErrorCorrectionLevel) (*bitutil.BitArray, error) {
	bits := bitutil.NewBitArray(0)
	seg.AppendTo(bits, version)
	if err := terminateBits(version.DataCodewords(ecLevel), bits); err != nil {
		return nil, err
	}
	return bits, nil
}

func terminateBits(numDataBytes int, bits *bitutil.BitArray) error {
	capacityBits := numDataBytes * 8
	if bits.Size() > capacityBits {
		return fmt.Errorf("%w: %d data bits exceed capacity %d", qrlite.ErrInternal, bits.Size(), capacityBits)
	}

	// Terminator mode
	for i := 0; i < 4 && bits.Size() < capacityBits; i++ {
		bits.AppendBit(false)
	}

	// Pad to byte boundary
	numBitsInLastByte := bits.Size() & 0x07
	if numBitsInLastByte > 0 {
		for i := numBitsInLastByte; i < 8; i++ {
			bits.AppendBit(false)
		}
	}

	// Pad with alternating bytes
	numPaddingBytes := numDataBytes - bits.SizeInBytes()
	for i := 0; i < numPaddingBytes; i++ {
		if i%2 == 0 {
			bits.AppendBits(padCodeword1, 8)
		} else {
			bits.AppendBits(padCodeword2, 8)
		}
	}
	if bits.Size() != capacityBits {
		return fmt.Errorf("%w: padded to %d bits, want %d", qrlite.ErrInternal, bits.Size(), capacityBits)
	}
	return nil
}

// SplitBlocks divides the data codewords into the blocks of version at
// ecLevel, shorter group first, and computes each block's error correction.
func SplitBlocks(data *bitutil.BitArray, version *capacity.Version, ecLevel capacity.ErrorCorrectionLevel) ([]Block, error) {
	ecBlocks := version.ECBlocksForLevel(ecLevel)
	if data.SizeInBytes() != version.DataCodewords(ecLevel) {
		return nil, fmt.Errorf("%w: %d data codewords, want %d",
			qrlite.ErrInternal, data.SizeInBytes(), version.DataCodewords(ecLevel))
	}

	blocks := make([]Block, 0, ecBlocks.NumBlocks())
	offset := 0
	for _, size := range ecBlocks.DataBlockSizes() {
		dataBytes := make([]byte, size)
		data.ToBytes(8*offset, dataBytes, 0, size)
		blocks = append(blocks, Block{
			Data: dataBytes,
			EC:   reedsolomon.ECCodewords(dataBytes, ecBlocks.ECCodewordsPerBlock),
		})
		offset += size
	}
	return blocks, nil
}

// Interleave emits the data codewords column by column across blocks, then
// the error correction codewords the same way, then the version's
// remainder bits.
func Interleave(blocks []Block, version *capacity.Version) (*bitutil.BitArray, error) {
	maxNumDataBytes, maxNumECBytes := 0, 0
	for _, b := range blocks {
		maxNumDataBytes = max(maxNumDataBytes, len(b.Data))
		maxNumECBytes = max(maxNumECBytes, len(b.EC))
	}

	result := bitutil.NewBitArray(0)
	for i := 0; i < maxNumDataBytes; i++ {
		for _, block := range blocks {
			if i < len(block.Data) {
				result.AppendBits(uint32(block.Data[i]), 8)
			}
		}
	}
	for i := 0; i < maxNumECBytes; i++ {
		for _, block := range blocks {
			if i < len(block.EC) {
				result.AppendBits(uint32(block.EC[i]), 8)
			}
		}
	}

	if result.SizeInBytes() != version.TotalCodewords {
		return nil, fmt.Errorf("%w: interleaved %d codewords, want %d",
			qrlite.ErrInternal, result.SizeInBytes(), version.TotalCodewords)
	}
	for i := 0; i < version.RemainderBits(); i++ {
		result.AppendBit(false)
	}
	return result, nil
}

// AssembleCodewords runs the codeword stage: terminate and pad, split into
// blocks, add error correction and interleave.
func AssembleCodewords(seg *Segment, version *capacity.Version, ecLevel capacity.ErrorCorrectionLevel) (*bitutil.BitArray, error) {
	data, err := BuildDataCodewords(seg, version, ecLevel)
	if err != nil {
		return nil, err
	}
	blocks, err := SplitBlocks(data, version, ecLevel)
	if err != nil {
		return nil, err
	}
	return Interleave(blocks, version)
}
