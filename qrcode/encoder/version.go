package encoder

import (
	"fmt"

	"github.com/ericlevine/qrlite"
	"github.com/ericlevine/qrlite/qrcode/capacity"
)

// SelectVersion picks the version and error correction level for seg.
//
// With a fixed level, versions are scanned in ascending order and the first
// one whose data capacity holds the segment wins. With capacity.ECLevelAuto
// every version is tried at H, Q, M, L in turn, so the result is the
// smallest version that fits at all, paired with the strongest level that
// still fits it. A non-zero versionNumber restricts the search to that
// version.
func SelectVersion(seg *Segment, ecLevel capacity.ErrorCorrectionLevel, versionNumber int) (*capacity.Version, capacity.ErrorCorrectionLevel, error) {
	levels := []capacity.ErrorCorrectionLevel{ecLevel}
	if ecLevel == capacity.ECLevelAuto {
		levels = capacity.ECLevelsStrongestFirst[:]
	} else if !ecLevel.Valid() {
		return nil, 0, fmt.Errorf("%w: %d", qrlite.ErrInvalidECLevel, int(ecLevel))
	}

	first, last := capacity.MinVersion, capacity.MaxVersion
	if versionNumber != 0 {
		if _, err := capacity.GetVersionForNumber(versionNumber); err != nil {
			return nil, 0, fmt.Errorf("%w: %d", qrlite.ErrInvalidVersion, versionNumber)
		}
		first, last = versionNumber, versionNumber
	}

	for n := first; n <= last; n++ {
		version := capacity.MustVersion(n)
		for _, ecl := range levels {
			if fits(seg, version, ecl) {
				return version, ecl, nil
			}
		}
	}

	// Report against the weakest level tried, which has the most room.
	version := capacity.MustVersion(last)
	weakest := levels[len(levels)-1]
	return nil, 0, &qrlite.DataTooLongError{
		Level:         ecLevel,
		MaxVersion:    last,
		RequiredBits:  seg.TotalBits(version),
		AvailableBits: version.DataCodewords(weakest) * 8,
	}
}

func fits(seg *Segment, version *capacity.Version, ecLevel capacity.ErrorCorrectionLevel) bool {
	return seg.FitsCount(version) && seg.TotalBits(version) <= version.DataCodewords(ecLevel)*8
}
