package rs255

// bytesToPoly interprets b as a Polynomial[Elem] with the first byte as the
// highest-degree coefficient (spec §4.4 step 1).
func bytesToPoly(b []byte) Polynomial[Elem] {
	coeffs := make([]Elem, len(b))
	for i, v := range b {
		coeffs[i] = Elem(v)
	}
	return NewPolynomial(GF256, coeffs...)
}

// polyToBytes serializes p into exactly length bytes, left-padding with
// zeros for any leading coefficients canonicalization stripped away. This
// is the fix for the "naive strip-and-emit loses leading null bytes"
// pitfall spec §9 calls out: codewords whose high-degree byte is zero must
// still serialize to the full fixed length.
func polyToBytes(p Polynomial[Elem], length int) []byte {
	coeffs := p.Coefficients()
	out := make([]byte, length)
	offset := length - len(coeffs)
	for i, c := range coeffs {
		out[offset+i] = byte(c)
	}
	return out
}

// EncodePolynomial performs systematic RS(255, 223) encoding of message
// (spec §4.4), returning the unserialized codeword polynomial. message must
// be at most 223 bytes.
func EncodePolynomial(message []byte) (Polynomial[Elem], error) {
	if len(message) > k {
		return Polynomial[Elem]{}, errInputTooLong(len(message))
	}

	m := bytesToPoly(message)
	shifted := m.Mul(monomial(GF256, Elem(1), nk)) // M(x) * x^32

	_, remainder, err := shifted.DivMod(generator())
	if err != nil {
		return Polynomial[Elem]{}, err
	}

	// C(x) = M'(x) - remainder; C is a multiple of g(x).
	return shifted.Sub(remainder), nil
}

// Encode performs systematic RS(255, 223) encoding of message, returning
// exactly 255 bytes: zero padding (for messages shorter than 223 bytes), the
// message, then 32 parity bytes. message must be at most 223 bytes, or
// Encode returns ErrInputTooLong.
func Encode(message []byte) ([]byte, error) {
	c, err := EncodePolynomial(message)
	if err != nil {
		return nil, err
	}
	return polyToBytes(c, n), nil
}

// Verify reports whether codeword is a valid RS(255, 223) codeword, i.e.
// whether it is divisible by the generator polynomial (equivalently, all 32
// syndromes are zero). codeword must be exactly 255 bytes.
func Verify(codeword []byte) (bool, error) {
	if len(codeword) != n {
		return false, errInputLengthInvalid(len(codeword))
	}
	r := bytesToPoly(codeword)
	_, remainder, err := r.DivMod(generator())
	if err != nil {
		return false, err
	}
	return remainder.IsZero(), nil
}
