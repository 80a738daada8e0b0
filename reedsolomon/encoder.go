package reedsolomon

import "sync"

// Encoder computes Reed-Solomon error correction codewords. Generator
// polynomials are built on demand and cached; an Encoder is safe for
// concurrent use.
type Encoder struct {
	field *GenericGF

	mu               sync.Mutex
	cachedGenerators []*GenericGFPoly
}

// NewEncoder creates a new Encoder for the given field.
func NewEncoder(field *GenericGF) *Encoder {
	e := &Encoder{
		field:            field,
		cachedGenerators: make([]*GenericGFPoly, 1),
	}
	e.cachedGenerators[0] = newGenericGFPoly(field, []int{1})
	return e
}

var qrEncoder = NewEncoder(QRCodeField256)

// Generator returns the generator polynomial of the given degree, the
// product of (x - 2^(i+base)) for i in [0, degree).
func (e *Encoder) Generator(degree int) *GenericGFPoly {
	if degree < 0 {
		panic("reedsolomon: negative degree")
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if degree < len(e.cachedGenerators) {
		return e.cachedGenerators[degree]
	}
	lastGenerator := e.cachedGenerators[len(e.cachedGenerators)-1]
	for d := len(e.cachedGenerators); d <= degree; d++ {
		nextGenerator := lastGenerator.MultiplyPoly(
			newGenericGFPoly(e.field, []int{1, e.field.Exp(d - 1 + e.field.GeneratorBase())}))
		e.cachedGenerators = append(e.cachedGenerators, nextGenerator)
		lastGenerator = nextGenerator
	}
	return e.cachedGenerators[degree]
}

// Encode fills the last ecBytes values of toEncode with error correction
// codewords computed over the leading values.
func (e *Encoder) Encode(toEncode []int, ecBytes int) {
	if ecBytes <= 0 {
		panic("reedsolomon: no error correction bytes")
	}
	dataBytes := len(toEncode) - ecBytes
	if dataBytes <= 0 {
		panic("reedsolomon: no data bytes provided")
	}
	generator := e.Generator(ecBytes)
	infoCoefficients := make([]int, dataBytes)
	copy(infoCoefficients, toEncode[:dataBytes])
	info := newGenericGFPoly(e.field, infoCoefficients)
	info = info.MultiplyByMonomial(ecBytes, 1)
	_, remainder := info.Divide(generator)
	coefficients := remainder.Coefficients()
	numZero := ecBytes - len(coefficients)
	for i := 0; i < numZero; i++ {
		toEncode[dataBytes+i] = 0
	}
	copy(toEncode[dataBytes+numZero:], coefficients)
}

// ECCodewords returns the ecCount error correction codewords for data, the
// remainder of data(x)*x^ecCount divided by the QR generator polynomial.
func ECCodewords(data []byte, ecCount int) []byte {
	toEncode := make([]int, len(data)+ecCount)
	for i, b := range data {
		toEncode[i] = int(b)
	}
	qrEncoder.Encode(toEncode, ecCount)
	ec := make([]byte, ecCount)
	for i := range ec {
		ec[i] = byte(toEncode[len(data)+i])
	}
	return ec
}
