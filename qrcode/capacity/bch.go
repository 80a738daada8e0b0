package capacity

const (
	formatInfoPoly  = 0x537
	formatInfoMask  = 0x5412
	versionInfoPoly = 0x1f25
)

// FormatInfoBits returns the 15-bit format information for the level and
// mask: five data bits, ten BCH(15,5) check bits, XORed with 0x5412.
func FormatInfoBits(ecLevel ErrorCorrectionLevel, maskPattern int) int {
	typeInfo := (ecLevel.Bits() << 3) | maskPattern
	return ((typeInfo << 10) | bchCode(typeInfo, formatInfoPoly)) ^ formatInfoMask
}

// VersionInfoBits returns the 18-bit version information: the 6-bit version
// number followed by twelve BCH(18,6) check bits. Only versions 7 and up
// carry it.
func VersionInfoBits(version int) int {
	return (version << 12) | bchCode(version, versionInfoPoly)
}

func bchCode(value, poly int) int {
	msbSetInPoly := findMSBSet(poly)
	value <<= uint(msbSetInPoly - 1)
	for findMSBSet(value) >= msbSetInPoly {
		value ^= poly << uint(findMSBSet(value)-msbSetInPoly)
	}
	return value
}

func findMSBSet(value int) int {
	count := 0
	for value != 0 {
		value >>= 1
		count++
	}
	return count
}
