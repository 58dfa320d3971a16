package rs255

// MaxErrors is the largest number of byte errors RS(255, 223) can correct.
const MaxErrors = nk / 2 // 16

// DecodeOptions controls Decode's output shape (spec §6).
type DecodeOptions struct {
	// NoStrip returns the full 223-byte message region, including any
	// leading zero bytes that the default behavior would otherwise strip.
	NoStrip bool
	// ReturnFull returns the full 255-byte corrected codeword instead of
	// the 223-byte message.
	ReturnFull bool
}

// Decode attempts to recover the original message from a possibly
// corrupted 255-byte received word, correcting up to MaxErrors altered
// byte positions (spec §4.6). It returns ErrInputLengthInvalid if received
// is not exactly 255 bytes, and ErrUncorrectable if the error pattern
// cannot be resolved.
func Decode(received []byte, opts DecodeOptions) ([]byte, error) {
	if len(received) != n {
		return nil, errInputLengthInvalid(len(received))
	}

	ok, err := Verify(received)
	if err != nil {
		return nil, err
	}
	if ok {
		return finalizeOutput(received, opts), nil
	}

	r := bytesToPoly(received)
	syndromes := computeSyndromes(r)

	sz := syndromePolynomial(syndromes)
	lambda, omega, err := berlekampMassey(sz)
	if err != nil {
		return nil, err
	}

	locations, positions, err := chienSearch(lambda)
	if err != nil {
		return nil, err
	}

	magnitudes, err := forneyMagnitudes(omega, locations)
	if err != nil {
		return nil, err
	}

	corrected := applyCorrections(received, positions, magnitudes)
	return finalizeOutput(corrected, opts), nil
}

// computeSyndromes returns S_l = R(alpha^l) for l = 1..32; index 0 is
// unused (spec §3's syndrome polynomial has no z^0 term).
func computeSyndromes(r Polynomial[Elem]) []Elem {
	s := make([]Elem, nk+1)
	for l := 1; l <= nk; l++ {
		s[l] = r.Evaluate(Pow(alpha, l))
	}
	return s
}

// syndromePolynomial packs syndromes into S(z) = S_32 z^32 + ... + S_1 z,
// highest-degree first, with an explicit zero coefficient for z^0.
func syndromePolynomial(s []Elem) Polynomial[Elem] {
	coeffs := make([]Elem, nk+1)
	for i := 0; i < nk; i++ {
		coeffs[i] = s[nk-i]
	}
	coeffs[nk] = 0
	return NewPolynomial(GF256, coeffs...)
}

// scalarMul multiplies every coefficient of p by scalar.
func scalarMul(scalar Elem, p Polynomial[Elem]) Polynomial[Elem] {
	src := p.Coefficients()
	out := make([]Elem, len(src))
	for i, c := range src {
		out[i] = Mul(scalar, c)
	}
	return NewPolynomial(GF256, out...)
}

// berlekampMassey runs the PGZ-style Berlekamp-Massey recursion of spec
// §4.6 step 3, tracking the error locator Lambda, the error evaluator
// Omega, and the auxiliary polynomials tau/gamma used by the Rule-A/Rule-B
// update. The Rule-A/Rule-B tie-break at 2*D == l+1, branching on the
// state bit B, is preserved exactly as specified; it is easy to mis-code
// and spec §9 calls this out explicitly.
func berlekampMassey(sz Polynomial[Elem]) (lambda, omega Polynomial[Elem], err error) {
	one := NewPolynomial(GF256, Elem(1))
	zero := NewPolynomial(GF256, Elem(0))
	z := monomial(GF256, Elem(1), 1)

	onePlusS := sz.Add(one)

	lambda = one
	omega = one
	tau := one
	gamma := zero
	D := 0
	B := 0

	for l := 0; l < nk; l++ {
		delta := onePlusS.Mul(lambda).Coefficient(l + 1)

		zTau := z.Mul(tau)
		zGamma := z.Mul(gamma)

		nextLambda := lambda.Sub(scalarMul(delta, zTau))
		nextOmega := omega.Sub(scalarMul(delta, zGamma))

		var nextTau, nextGamma Polynomial[Elem]
		var nextD, nextB int

		if delta == 0 || 2*D > l+1 || (2*D == l+1 && B == 0) {
			nextD, nextB = D, B
			nextTau, nextGamma = zTau, zGamma
		} else {
			nextD, nextB = l+1-D, 1-B
			deltaInv, invErr := Inverse(delta)
			if invErr != nil {
				return Polynomial[Elem]{}, Polynomial[Elem]{}, invErr
			}
			nextTau = scalarMul(deltaInv, lambda)
			nextGamma = scalarMul(deltaInv, omega)
		}

		lambda, omega, tau, gamma, D, B = nextLambda, nextOmega, nextTau, nextGamma, nextD, nextB
	}

	return lambda, omega, nil
}

// chienSearch brute-force-evaluates Lambda at every nonzero field element
// to find its roots (spec §4.6 step 4). Each root alpha^l corresponds to
// error location X_i = alpha^-l at byte position n-l (counted from the
// low-degree end). It returns ErrUncorrectable if the number of roots
// found does not match deg(Lambda).
func chienSearch(lambda Polynomial[Elem]) (locations []Elem, positions []int, err error) {
	degLambda := lambda.Degree()
	if lambda.IsZero() {
		degLambda = 0
	}

	for l := 1; l <= n; l++ {
		x := Pow(alpha, l)
		if lambda.Evaluate(x) == 0 {
			locations = append(locations, Pow(alpha, -l))
			positions = append(positions, n-l)
		}
	}

	if len(locations) != degLambda {
		return nil, nil, errUncorrectable("Chien search root count does not match error locator degree")
	}
	return locations, positions, nil
}

// forneyMagnitudes computes the error magnitude at each location found by
// chienSearch, via spec §4.6 step 5's closed form:
//
//	Y_l = X_l^-1 * Omega(X_l^-1) * (prod_{i!=l} (X_l - X_i))^-1 * X_l^16
//
// The X_l^16 scalar aligns with the Omega normalization produced by the
// Berlekamp-Massey recursion above (first consecutive root alpha^1,
// 32 iterations); the denominator product runs over a fixed 16 slots, with
// slots beyond the current root count contributing X_j = 0.
func forneyMagnitudes(omega Polynomial[Elem], locations []Elem) ([]Elem, error) {
	s := len(locations)
	magnitudes := make([]Elem, s)

	for l := 0; l < s; l++ {
		xl := locations[l]
		xlInv, err := Inverse(xl)
		if err != nil {
			return nil, err
		}

		var denom Elem = 1
		for j := 0; j < MaxErrors; j++ {
			if j == l {
				continue
			}
			var xj Elem
			if j < s {
				xj = locations[j]
			}
			denom = Mul(denom, Sub(xl, xj))
		}
		denomInv, err := Inverse(denom)
		if err != nil {
			return nil, errUncorrectable("Forney denominator is zero")
		}

		y := Mul(Mul(xlInv, omega.Evaluate(xlInv)), denomInv)
		y = Mul(y, Pow(xl, MaxErrors))
		magnitudes[l] = y
	}

	return magnitudes, nil
}

// applyCorrections XORs each error magnitude into the received word at its
// byte position and returns the corrected 255-byte codeword.
func applyCorrections(received []byte, positions []int, magnitudes []Elem) []byte {
	corrected := make([]byte, len(received))
	copy(corrected, received)
	for i, j := range positions {
		idx := n - 1 - j
		corrected[idx] ^= byte(magnitudes[i])
	}
	return corrected
}

// finalizeOutput applies ReturnFull/NoStrip to a corrected 255-byte
// codeword (spec §4.6 step 7 and §6). Per original_source/rstest.py's
// test_strip precedent, the default (NoStrip=false) strips every leading
// zero byte from the 223-byte message region, not just the padding zeros a
// short message picked up during encoding. This resolves spec §9's open
// question: decode(encode(m)) == m only holds under default options when m
// is empty or does not itself start with a zero byte; a message that starts
// with 0x00 loses those bytes under the default strip, same as the
// original library. Callers that need an exact round trip for arbitrary
// messages, including ones starting with zero bytes, must pass NoStrip and
// compare against the left-padded 223-byte message region (see DESIGN.md).
func finalizeOutput(corrected []byte, opts DecodeOptions) []byte {
	if opts.ReturnFull {
		out := make([]byte, len(corrected))
		copy(out, corrected)
		return out
	}

	message := make([]byte, k)
	copy(message, corrected[:k])

	if opts.NoStrip {
		return message
	}

	i := 0
	for i < len(message) && message[i] == 0 {
		i++
	}
	return message[i:]
}
