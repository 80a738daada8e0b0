package encoder

import (
	"log/slog"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/ericlevine/qrlite/internal/logger"
	"github.com/ericlevine/qrlite/qrcode/capacity"
)

// Penalty weights for the four mask scoring rules.
const (
	penaltyN1 = 3
	penaltyN2 = 3
	penaltyN3 = 40
	penaltyN4 = 10
)

// maskCandidate is one finished symbol under a given mask.
type maskCandidate struct {
	pattern int
	matrix  *ByteMatrix
	penalty int
}

// buildMasked applies pattern to a copy of the placed symbol and writes the
// format and version information.
func (s *skeleton) buildMasked(ecLevel capacity.ErrorCorrectionLevel, pattern int) *ByteMatrix {
	matrix := s.matrix.Clone()
	applyMask(matrix, s, pattern)
	embedTypeInfo(ecLevel, pattern, matrix)
	maybeEmbedVersionInfo(s.version, matrix)
	return matrix
}

// applyMask inverts every unreserved module the pattern selects. Applying
// the same pattern twice restores the input.
func applyMask(matrix *ByteMatrix, s *skeleton, pattern int) {
	mask := capacity.DataMasks[pattern]
	for y := 0; y < matrix.Height; y++ {
		for x := 0; x < matrix.Width; x++ {
			if !s.reserved.Get(x, y) && mask(y, x) {
				matrix.Data[y][x] ^= 1
			}
		}
	}
}

func (s *skeleton) evaluateMask(ecLevel capacity.ErrorCorrectionLevel, pattern int) maskCandidate {
	matrix := s.buildMasked(ecLevel, pattern)
	return maskCandidate{pattern: pattern, matrix: matrix, penalty: calculateMaskPenalty(matrix)}
}

// chooseMask scores all eight patterns and returns the lowest, the lowest
// index winning ties. With parallel set the candidates are built
// concurrently.
func (s *skeleton) chooseMask(ecLevel capacity.ErrorCorrectionLevel, parallel bool, log *slog.Logger) maskCandidate {
	var candidates [capacity.NumMaskPatterns]maskCandidate
	if parallel {
		var g errgroup.Group
		for p := range candidates {
			g.Go(func() error {
				candidates[p] = s.evaluateMask(ecLevel, p)
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for p := range candidates {
			candidates[p] = s.evaluateMask(ecLevel, p)
		}
	}

	best := maskCandidate{pattern: -1, penalty: math.MaxInt}
	for _, c := range candidates {
		log.Debug("mask scored", logger.Mask(c.pattern), logger.Penalty(c.penalty))
		if c.penalty < best.penalty {
			best = c
		}
	}
	return best
}

func calculateMaskPenalty(matrix *ByteMatrix) int {
	return applyMaskPenaltyRule1(matrix) +
		applyMaskPenaltyRule2(matrix) +
		applyMaskPenaltyRule3(matrix) +
		applyMaskPenaltyRule4(matrix)
}

// Mask penalty rule 1: penalize runs of 5+ same-color modules
func applyMaskPenaltyRule1(matrix *ByteMatrix) int {
	return applyMaskPenaltyRule1Internal(matrix, true) + applyMaskPenaltyRule1Internal(matrix, false)
}

func applyMaskPenaltyRule1Internal(matrix *ByteMatrix, isHorizontal bool) int {
	penalty := 0
	iLimit := matrix.Height
	jLimit := matrix.Width
	if !isHorizontal {
		iLimit = matrix.Width
		jLimit = matrix.Height
	}
	for i := 0; i < iLimit; i++ {
		numSameBitCells := 0
		prevBit := byte(emptyModule)
		for j := 0; j < jLimit; j++ {
			var bit byte
			if isHorizontal {
				bit = matrix.Get(j, i)
			} else {
				bit = matrix.Get(i, j)
			}
			if bit == prevBit {
				numSameBitCells++
			} else {
				if numSameBitCells >= 5 {
					penalty += penaltyN1 + (numSameBitCells - 5)
				}
				numSameBitCells = 1
				prevBit = bit
			}
		}
		if numSameBitCells >= 5 {
			penalty += penaltyN1 + (numSameBitCells - 5)
		}
	}
	return penalty
}

// Mask penalty rule 2: penalize 2x2 blocks of same color
func applyMaskPenaltyRule2(matrix *ByteMatrix) int {
	penalty := 0
	for y := 0; y < matrix.Height-1; y++ {
		for x := 0; x < matrix.Width-1; x++ {
			value := matrix.Get(x, y)
			if value == matrix.Get(x+1, y) && value == matrix.Get(x, y+1) && value == matrix.Get(x+1, y+1) {
				penalty += penaltyN2
			}
		}
	}
	return penalty
}

// finderLike is dark-light-dark-dark-dark-light-dark.
var finderLike = [7]byte{1, 0, 1, 1, 1, 0, 1}

// Mask penalty rule 3: penalize 1:1:3:1:1 finder-like patterns with four
// light modules before or after them. Modules outside the symbol count as
// light since the quiet zone surrounds it.
func applyMaskPenaltyRule3(matrix *ByteMatrix) int {
	penalty := 0
	for y := 0; y < matrix.Height; y++ {
		for x := 0; x < matrix.Width; x++ {
			if x+6 < matrix.Width && matchesFinderLike(matrix, x, y, 1, 0) &&
				(isLightRun(matrix, x-4, y, 1, 0) || isLightRun(matrix, x+7, y, 1, 0)) {
				penalty += penaltyN3
			}
			if y+6 < matrix.Height && matchesFinderLike(matrix, x, y, 0, 1) &&
				(isLightRun(matrix, x, y-4, 0, 1) || isLightRun(matrix, x, y+7, 0, 1)) {
				penalty += penaltyN3
			}
		}
	}
	return penalty
}

func matchesFinderLike(matrix *ByteMatrix, x, y, dx, dy int) bool {
	for k, want := range finderLike {
		if matrix.Get(x+k*dx, y+k*dy) != want {
			return false
		}
	}
	return true
}

// isLightRun reports whether the four modules starting at (x, y) in the
// direction (dx, dy) are light or off the symbol.
func isLightRun(matrix *ByteMatrix, x, y, dx, dy int) bool {
	for k := 0; k < 4; k++ {
		cx, cy := x+k*dx, y+k*dy
		if cx < 0 || cy < 0 || cx >= matrix.Width || cy >= matrix.Height {
			continue
		}
		if matrix.Get(cx, cy) == 1 {
			return false
		}
	}
	return true
}

// Mask penalty rule 4: penalize deviation from 50% dark modules
func applyMaskPenaltyRule4(matrix *ByteMatrix) int {
	numDarkCells := matrix.CountDark()
	total := matrix.Height * matrix.Width
	fivePercentVariances := abs(numDarkCells*2-total) * 10 / total
	return fivePercentVariances * penaltyN4
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
