package encoder

import (
	"github.com/ericlevine/qrlite/bitutil"
	"github.com/ericlevine/qrlite/qrcode/capacity"
)

// emptyModule marks a module nothing has been written to yet.
const emptyModule = 0xFF

// ByteMatrix is a square-or-rectangular grid of modules: 0 is light, 1 is
// dark and 0xFF is unset.
type ByteMatrix struct {
	Data          [][]byte
	Width, Height int
}

// NewByteMatrix creates a new ByteMatrix.
func NewByteMatrix(width, height int) *ByteMatrix {
	data := make([][]byte, height)
	for i := range data {
		data[i] = make([]byte, width)
	}
	return &ByteMatrix{Data: data, Width: width, Height: height}
}

// Get returns the value at (x, y).
func (bm *ByteMatrix) Get(x, y int) byte { return bm.Data[y][x] }

// Set sets the value at (x, y).
func (bm *ByteMatrix) Set(x, y int, value byte) { bm.Data[y][x] = value }

// SetBool sets the value at (x, y) as 1 (true) or 0 (false).
func (bm *ByteMatrix) SetBool(x, y int, value bool) {
	if value {
		bm.Data[y][x] = 1
	} else {
		bm.Data[y][x] = 0
	}
}

// Clear fills the matrix with the given value.
func (bm *ByteMatrix) Clear(value byte) {
	for y := range bm.Data {
		for x := range bm.Data[y] {
			bm.Data[y][x] = value
		}
	}
}

// Clone returns a deep copy.
func (bm *ByteMatrix) Clone() *ByteMatrix {
	c := NewByteMatrix(bm.Width, bm.Height)
	for y := range bm.Data {
		copy(c.Data[y], bm.Data[y])
	}
	return c
}

// CountDark returns the number of dark modules.
func (bm *ByteMatrix) CountDark() int {
	n := 0
	for _, row := range bm.Data {
		for _, v := range row {
			if v == 1 {
				n++
			}
		}
	}
	return n
}

// skeleton is a symbol with every function pattern drawn and the format and
// version areas reserved but not yet written. reserved has a bit set for
// every module that is not available for data.
type skeleton struct {
	version  *capacity.Version
	matrix   *ByteMatrix
	reserved *bitutil.BitMatrix
}

func newSkeleton(version *capacity.Version) *skeleton {
	dimension := version.Dimension()
	s := &skeleton{
		version:  version,
		matrix:   NewByteMatrix(dimension, dimension),
		reserved: bitutil.NewBitMatrix(dimension),
	}
	s.matrix.Clear(emptyModule)
	s.embedBasicPatterns()
	s.reserveTypeInfo()
	s.reserveVersionInfo()
	return s
}

func (s *skeleton) setFunction(x, y int, value byte) {
	s.matrix.Set(x, y, value)
	s.reserved.Set(x, y)
}

// Position detection pattern (7x7 finder pattern)
var positionDetectionPattern = [7][7]byte{
	{1, 1, 1, 1, 1, 1, 1},
	{1, 0, 0, 0, 0, 0, 1},
	{1, 0, 1, 1, 1, 0, 1},
	{1, 0, 1, 1, 1, 0, 1},
	{1, 0, 1, 1, 1, 0, 1},
	{1, 0, 0, 0, 0, 0, 1},
	{1, 1, 1, 1, 1, 1, 1},
}

// Position adjustment pattern (5x5 alignment pattern)
var positionAdjustmentPattern = [5][5]byte{
	{1, 1, 1, 1, 1},
	{1, 0, 0, 0, 1},
	{1, 0, 1, 0, 1},
	{1, 0, 0, 0, 1},
	{1, 1, 1, 1, 1},
}

func (s *skeleton) embedBasicPatterns() {
	width, height := s.matrix.Width, s.matrix.Height

	// Position detection patterns and separators
	s.embedPositionDetectionPattern(0, 0)
	s.embedPositionDetectionPattern(width-7, 0)
	s.embedPositionDetectionPattern(0, height-7)

	// Horizontal separators
	s.embedHorizontalSeparator(0, 7)
	s.embedHorizontalSeparator(width-8, 7)
	s.embedHorizontalSeparator(0, height-8)

	// Vertical separators
	s.embedVerticalSeparator(7, 0)
	s.embedVerticalSeparator(width-8, 0)
	s.embedVerticalSeparator(7, height-7)

	s.embedTimingPatterns()

	if s.version.Number >= 2 {
		s.embedPositionAdjustmentPatterns()
	}

	// Dark module
	s.setFunction(8, height-8, 1)
}

func (s *skeleton) embedPositionDetectionPattern(xStart, yStart int) {
	for y := 0; y < 7; y++ {
		for x := 0; x < 7; x++ {
			s.setFunction(xStart+x, yStart+y, positionDetectionPattern[y][x])
		}
	}
}

func (s *skeleton) embedHorizontalSeparator(xStart, yStart int) {
	for x := 0; x < 8; x++ {
		s.setFunction(xStart+x, yStart, 0)
	}
}

func (s *skeleton) embedVerticalSeparator(xStart, yStart int) {
	for y := 0; y < 7; y++ {
		s.setFunction(xStart, yStart+y, 0)
	}
}

// embedTimingPatterns draws alternating modules on row and column 6 between
// the separators, starting and ending dark.
func (s *skeleton) embedTimingPatterns() {
	for i := 8; i < s.matrix.Width-8; i++ {
		bit := byte((i + 1) % 2)
		s.setFunction(i, 6, bit)
		s.setFunction(6, i, bit)
	}
}

// embedPositionAdjustmentPatterns draws an alignment pattern at every pair
// of centers except the three that coincide with finder patterns. Patterns
// crossing a timing line agree with it module for module.
func (s *skeleton) embedPositionAdjustmentPatterns() {
	centers := s.version.AlignmentPatternCenters
	last := len(centers) - 1
	for i, cy := range centers {
		for j, cx := range centers {
			if (i == 0 && j == 0) || (i == 0 && j == last) || (i == last && j == 0) {
				continue
			}
			for y := 0; y < 5; y++ {
				for x := 0; x < 5; x++ {
					s.setFunction(cx-2+x, cy-2+y, positionAdjustmentPattern[y][x])
				}
			}
		}
	}
}

// typeInfoCoordinates lists the first copy of the format information, bit 0
// first, as (x, y).
var typeInfoCoordinates = [15][2]int{
	{8, 0}, {8, 1}, {8, 2}, {8, 3}, {8, 4}, {8, 5}, {8, 7}, {8, 8},
	{7, 8}, {5, 8}, {4, 8}, {3, 8}, {2, 8}, {1, 8}, {0, 8},
}

// typeInfoPositions returns both module positions of format bit i.
func typeInfoPositions(i, width, height int) (x1, y1, x2, y2 int) {
	x1, y1 = typeInfoCoordinates[i][0], typeInfoCoordinates[i][1]
	if i < 8 {
		x2, y2 = width-1-i, 8
	} else {
		x2, y2 = 8, height-7+(i-8)
	}
	return x1, y1, x2, y2
}

// versionInfoPositions returns both module positions of version bit i.
func versionInfoPositions(i, width, height int) (x1, y1, x2, y2 int) {
	a, b := i/3, i%3
	// Bottom-left, then top-right
	return a, height - 11 + b, width - 11 + b, a
}

func (s *skeleton) reserveTypeInfo() {
	for i := 0; i < 15; i++ {
		x1, y1, x2, y2 := typeInfoPositions(i, s.matrix.Width, s.matrix.Height)
		s.setFunction(x1, y1, 0)
		s.setFunction(x2, y2, 0)
	}
}

func (s *skeleton) reserveVersionInfo() {
	if s.version.Number < 7 {
		return
	}
	for i := 0; i < 18; i++ {
		x1, y1, x2, y2 := versionInfoPositions(i, s.matrix.Width, s.matrix.Height)
		s.setFunction(x1, y1, 0)
		s.setFunction(x2, y2, 0)
	}
}

func embedTypeInfo(ecLevel capacity.ErrorCorrectionLevel, maskPattern int, matrix *ByteMatrix) {
	typeInfoBits := capacity.FormatInfoBits(ecLevel, maskPattern)
	for i := 0; i < 15; i++ {
		bit := byte((typeInfoBits >> uint(i)) & 1)
		x1, y1, x2, y2 := typeInfoPositions(i, matrix.Width, matrix.Height)
		matrix.Set(x1, y1, bit)
		matrix.Set(x2, y2, bit)
	}
}

func maybeEmbedVersionInfo(version *capacity.Version, matrix *ByteMatrix) {
	if version.Number < 7 {
		return
	}
	versionInfoBits := capacity.VersionInfoBits(version.Number)
	for i := 0; i < 18; i++ {
		bit := byte((versionInfoBits >> uint(i)) & 1)
		x1, y1, x2, y2 := versionInfoPositions(i, matrix.Width, matrix.Height)
		matrix.Set(x1, y1, bit)
		matrix.Set(x2, y2, bit)
	}
}
