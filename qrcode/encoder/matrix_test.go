package encoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericlevine/qrlite"
	"github.com/ericlevine/qrlite/bitutil"
	"github.com/ericlevine/qrlite/qrcode/capacity"
)

func TestZigzagVisitsEveryModuleOnce(t *testing.T) {
	for _, dimension := range []int{21, 25, 45, 177} {
		seen := bitutil.NewBitMatrix(dimension)
		count := 0
		for x, y := range zigzag(dimension) {
			require.False(t, seen.Get(x, y), "(%d,%d) visited twice", x, y)
			seen.Set(x, y)
			count++
		}
		// Column 6 is never visited.
		assert.Equal(t, dimension*(dimension-1), count)
		for y := 0; y < dimension; y++ {
			assert.False(t, seen.Get(6, y))
		}
	}
}

func TestZigzagOrder(t *testing.T) {
	var got [][2]int
	for x, y := range zigzag(21) {
		got = append(got, [2]int{x, y})
		if len(got) == 4 {
			break
		}
	}
	assert.Equal(t, [][2]int{{20, 20}, {19, 20}, {20, 19}, {19, 19}}, got)

	// The second column pair runs downward.
	i := 0
	for x, y := range zigzag(21) {
		if i == 42 {
			assert.Equal(t, [2]int{18, 0}, [2]int{x, y})
			break
		}
		i++
	}
}

func TestSkeletonReservesFunctionPattern(t *testing.T) {
	for n := capacity.MinVersion; n <= capacity.MaxVersion; n++ {
		version := capacity.MustVersion(n)
		s := newSkeleton(version)
		assert.True(t, s.reserved.Equals(version.BuildFunctionPattern()), "version %d", n)

		// Every reserved module is written, every other one is empty.
		for y := 0; y < s.matrix.Height; y++ {
			for x := 0; x < s.matrix.Width; x++ {
				if s.reserved.Get(x, y) {
					require.NotEqual(t, byte(emptyModule), s.matrix.Get(x, y), "version %d (%d,%d)", n, x, y)
				} else {
					require.Equal(t, byte(emptyModule), s.matrix.Get(x, y), "version %d (%d,%d)", n, x, y)
				}
			}
		}
	}
}

func TestSkeletonPatterns(t *testing.T) {
	version := capacity.MustVersion(7)
	s := newSkeleton(version)
	dim := version.Dimension()

	// The three finder patterns are identical.
	for y := 0; y < 7; y++ {
		for x := 0; x < 7; x++ {
			want := s.matrix.Get(x, y)
			assert.Equal(t, want, s.matrix.Get(dim-7+x, y))
			assert.Equal(t, want, s.matrix.Get(x, dim-7+y))
		}
	}
	for i := 8; i < dim-8; i++ {
		assert.Equal(t, byte((i+1)%2), s.matrix.Get(i, 6), "timing row at %d", i)
		assert.Equal(t, byte((i+1)%2), s.matrix.Get(6, i), "timing column at %d", i)
	}
	assert.Equal(t, byte(1), s.matrix.Get(8, dim-8), "dark module")
	// Alignment pattern centred on (22, 22).
	assert.Equal(t, byte(1), s.matrix.Get(22, 22))
	assert.Equal(t, byte(0), s.matrix.Get(21, 22))
	assert.Equal(t, byte(1), s.matrix.Get(20, 22))
	// Alignment patterns sharing a timing line are drawn.
	assert.Equal(t, byte(1), s.matrix.Get(6, 22))
	assert.Equal(t, byte(1), s.matrix.Get(22, 6))
}

func TestPlaceDataCountInvariant(t *testing.T) {
	version := capacity.MustVersion(2)
	s := newSkeleton(version)

	short := bitutil.NewBitArray(version.RawDataModules() - 1)
	assert.ErrorIs(t, placeData(short, s.matrix, s.reserved), qrlite.ErrInternal)

	s = newSkeleton(version)
	long := bitutil.NewBitArray(version.RawDataModules() + 1)
	assert.ErrorIs(t, placeData(long, s.matrix, s.reserved), qrlite.ErrInternal)
}

func TestPlaceDataRoundTrip(t *testing.T) {
	version := capacity.MustVersion(8)
	bits := bitutil.NewBitArray(0)
	for i := 0; i < version.RawDataModules(); i++ {
		bits.AppendBit(i%3 == 0 || i%7 == 2)
	}
	s := newSkeleton(version)
	require.NoError(t, placeData(bits, s.matrix, s.reserved))
	assert.Equal(t, bits.Binary(), readData(s.matrix, s.reserved).Binary())
}

func TestByteMatrixClone(t *testing.T) {
	m := NewByteMatrix(3, 2)
	m.Set(2, 1, 1)
	c := m.Clone()
	c.Set(0, 0, 1)
	assert.Equal(t, byte(0), m.Get(0, 0))
	assert.Equal(t, byte(1), c.Get(2, 1))
	assert.Equal(t, 1, m.CountDark())
	m.Clear(1)
	assert.Equal(t, 6, m.CountDark())
}
