package encoder

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericlevine/qrlite"
	"github.com/ericlevine/qrlite/bitutil"
	"github.com/ericlevine/qrlite/qrcode/capacity"
	"github.com/ericlevine/qrlite/reedsolomon"
)

func TestBuildDataCodewordsHelloWorld(t *testing.T) {
	data, err := BuildDataCodewords(mustSegment(t, "HELLO WORLD"), capacity.MustVersion(1), capacity.ECLevelQ)
	require.NoError(t, err)
	assert.Equal(t, []byte{32, 91, 11, 120, 209, 114, 220, 77, 67, 64, 236, 17, 236}, data.Bytes())

	data, err = BuildDataCodewords(mustSegment(t, "HELLO WORLD"), capacity.MustVersion(1), capacity.ECLevelM)
	require.NoError(t, err)
	assert.Equal(t, []byte{32, 91, 11, 120, 209, 114, 220, 77, 67, 64, 236, 17, 236, 17, 236, 17}, data.Bytes())
}

func TestBuildDataCodewordsNumeric(t *testing.T) {
	data, err := BuildDataCodewords(mustSegment(t, "01234567"), capacity.MustVersion(1), capacity.ECLevelM)
	require.NoError(t, err)
	assert.Equal(t, []byte{16, 32, 12, 86, 97, 128, 236, 17, 236, 17, 236, 17, 236, 17, 236, 17}, data.Bytes())
}

func TestBuildDataCodewordsEmpty(t *testing.T) {
	data, err := BuildDataCodewords(mustSegment(t, ""), capacity.MustVersion(1), capacity.ECLevelH)
	require.NoError(t, err)
	assert.Equal(t, []byte{64, 0, 236, 17, 236, 17, 236, 17, 236}, data.Bytes())
}

func TestTerminateBits(t *testing.T) {
	tests := []struct {
		name    string
		bits    int
		numData int
		want    []byte
	}{
		{"empty", 0, 1, []byte{0x00}},
		{"short terminator", 6, 1, []byte{0xFC}},
		{"full", 8, 1, []byte{0xFF}},
		{"pads alternate", 3, 4, []byte{0xE0, 0xEC, 0x11, 0xEC}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bits := bitutil.NewBitArray(0)
			for i := 0; i < tt.bits; i++ {
				bits.AppendBit(true)
			}
			require.NoError(t, terminateBits(tt.numData, bits))
			assert.Equal(t, tt.numData*8, bits.Size())
			assert.Equal(t, tt.want, bits.Bytes())
		})
	}

	bits := bitutil.NewBitArray(0)
	bits.AppendBits(0, 9)
	assert.ErrorIs(t, terminateBits(1, bits), qrlite.ErrInternal)
}

func TestSplitBlocksTwoGroups(t *testing.T) {
	version := capacity.MustVersion(5)
	seg := mustSegment(t, strings.Repeat("A", 60))
	data, err := BuildDataCodewords(seg, version, capacity.ECLevelQ)
	require.NoError(t, err)

	blocks, err := SplitBlocks(data, version, capacity.ECLevelQ)
	require.NoError(t, err)
	require.Len(t, blocks, 4)
	raw := data.Bytes()
	offset := 0
	for i, want := range []int{15, 15, 16, 16} {
		assert.Len(t, blocks[i].Data, want, "block %d", i)
		assert.Len(t, blocks[i].EC, 18, "block %d", i)
		assert.Equal(t, raw[offset:offset+want], blocks[i].Data)
		assert.Equal(t, reedsolomon.ECCodewords(blocks[i].Data, 18), blocks[i].EC)
		offset += want
	}

	_, err = SplitBlocks(bitutil.NewBitArray(8), version, capacity.ECLevelQ)
	assert.ErrorIs(t, err, qrlite.ErrInternal)
}

func TestInterleave(t *testing.T) {
	version := capacity.MustVersion(5)
	data, err := BuildDataCodewords(mustSegment(t, strings.Repeat("A", 60)), version, capacity.ECLevelQ)
	require.NoError(t, err)
	blocks, err := SplitBlocks(data, version, capacity.ECLevelQ)
	require.NoError(t, err)

	out, err := Interleave(blocks, version)
	require.NoError(t, err)
	assert.Equal(t, 8*134+7, out.Size())

	cw := out.Bytes()
	// Column 0 of every block, then column 1.
	assert.Equal(t, []byte{blocks[0].Data[0], blocks[1].Data[0], blocks[2].Data[0], blocks[3].Data[0]}, cw[0:4])
	assert.Equal(t, []byte{33, 135, 195, 236, 225, 48, 152, 17}, cw[0:8])
	// The last data column exists only in the longer blocks.
	assert.Equal(t, []byte{blocks[2].Data[15], blocks[3].Data[15]}, cw[60:62])
	// EC codewords follow all 62 data codewords.
	assert.Equal(t, []byte{blocks[0].EC[0], blocks[1].EC[0], blocks[2].EC[0], blocks[3].EC[0]}, cw[62:66])
	assert.Equal(t, blocks[3].EC[17], cw[133])
	// Remainder bits are zero.
	assert.Zero(t, cw[134])

	_, err = Interleave(blocks[:3], version)
	assert.ErrorIs(t, err, qrlite.ErrInternal)
}

func TestAssembleCodewordsHelloWorld(t *testing.T) {
	out, err := AssembleCodewords(mustSegment(t, "HELLO WORLD"), capacity.MustVersion(1), capacity.ECLevelQ)
	require.NoError(t, err)
	assert.Equal(t, []byte{
		32, 91, 11, 120, 209, 114, 220, 77, 67, 64, 236, 17, 236,
		168, 72, 22, 82, 217, 54, 156, 0, 46, 15, 180, 122, 16,
	}, out.Bytes())
}

func TestAssembleCodewordsLength(t *testing.T) {
	for n := capacity.MinVersion; n <= capacity.MaxVersion; n += 3 {
		version := capacity.MustVersion(n)
		out, err := AssembleCodewords(mustSegment(t, "QR"), version, capacity.ECLevelM)
		require.NoError(t, err)
		assert.Equal(t, version.RawDataModules(), out.Size(), "version %d", n)
	}
}
