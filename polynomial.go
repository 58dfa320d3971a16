package rs255

// Polynomial[T] is an immutable, dense polynomial over the coefficient ring
// T, stored highest-degree term first. Construction always canonicalizes:
// leading zero coefficients are stripped, and the zero polynomial is
// represented as the single coefficient [Zero()]. Two field instantiations
// are used in this module: Polynomial[int] (IntRing, test-only — spec §8's
// polynomial laws) and Polynomial[Elem] (GF256 — the codec itself).
type Polynomial[T any] struct {
	ring   Ring[T]
	coeffs []T
}

// NewPolynomial builds a canonical Polynomial from coefficients given
// highest-degree first.
func NewPolynomial[T any](ring Ring[T], coeffs ...T) Polynomial[T] {
	c := make([]T, len(coeffs))
	copy(c, coeffs)
	for len(c) > 1 && ring.IsZero(c[0]) {
		c = c[1:]
	}
	if len(c) == 0 {
		c = []T{ring.Zero()}
	}
	return Polynomial[T]{ring: ring, coeffs: c}
}

// monomial returns coeff*x^degree as a canonical Polynomial.
func monomial[T any](ring Ring[T], coeff T, degree int) Polynomial[T] {
	c := make([]T, degree+1)
	c[0] = coeff
	for i := 1; i < len(c); i++ {
		c[i] = ring.Zero()
	}
	return NewPolynomial(ring, c...)
}

// Degree returns len(coefficients)-1; the zero polynomial has degree 0.
func (p Polynomial[T]) Degree() int { return len(p.coeffs) - 1 }

// Coefficient returns the coefficient of x^d, or Zero() if d exceeds the
// polynomial's degree.
func (p Polynomial[T]) Coefficient(d int) T {
	if d < 0 || d > p.Degree() {
		return p.ring.Zero()
	}
	return p.coeffs[len(p.coeffs)-1-d]
}

// Coefficients returns the canonical coefficient slice, highest-degree
// first. The caller must not mutate it.
func (p Polynomial[T]) Coefficients() []T { return p.coeffs }

func (p Polynomial[T]) isZeroPoly() bool {
	return len(p.coeffs) == 1 && p.ring.IsZero(p.coeffs[0])
}

// IsZero reports whether p is the zero polynomial.
func (p Polynomial[T]) IsZero() bool { return p.isZeroPoly() }

// Equal reports whether p and q have identical canonical coefficient
// sequences.
func (p Polynomial[T]) Equal(q Polynomial[T]) bool {
	if len(p.coeffs) != len(q.coeffs) {
		return false
	}
	for i := range p.coeffs {
		if !p.ring.Equal(p.coeffs[i], q.coeffs[i]) {
			return false
		}
	}
	return true
}

// align returns a, b zero-padded on the left to equal length.
func align[T any](ring Ring[T], a, b []T) ([]T, []T) {
	diff := len(a) - len(b)
	if diff == 0 {
		return a, b
	}
	if diff > 0 {
		padded := make([]T, diff, len(a))
		for i := range padded {
			padded[i] = ring.Zero()
		}
		return a, append(padded, b...)
	}
	padded := make([]T, -diff)
	for i := range padded {
		padded[i] = ring.Zero()
	}
	return append(padded, a...), b
}

// Add returns p+q, aligned elementwise over the coefficient ring.
func (p Polynomial[T]) Add(q Polynomial[T]) Polynomial[T] {
	a, b := align(p.ring, p.coeffs, q.coeffs)
	out := make([]T, len(a))
	for i := range a {
		out[i] = p.ring.Add(a[i], b[i])
	}
	return NewPolynomial(p.ring, out...)
}

// Sub returns p-q. Over GF256, this coincides with Add.
func (p Polynomial[T]) Sub(q Polynomial[T]) Polynomial[T] {
	a, b := align(p.ring, p.coeffs, q.coeffs)
	out := make([]T, len(a))
	for i := range a {
		out[i] = p.ring.Sub(a[i], b[i])
	}
	return NewPolynomial(p.ring, out...)
}

// Neg returns -p.
func (p Polynomial[T]) Neg() Polynomial[T] {
	out := make([]T, len(p.coeffs))
	zero := p.ring.Zero()
	for i, c := range p.coeffs {
		out[i] = p.ring.Sub(zero, c)
	}
	return NewPolynomial(p.ring, out...)
}

// Mul returns p*q via schoolbook multiplication, skipping zero terms.
func (p Polynomial[T]) Mul(q Polynomial[T]) Polynomial[T] {
	zero := p.ring.Zero()
	out := make([]T, len(p.coeffs)+len(q.coeffs)-1)
	for i := range out {
		out[i] = zero
	}
	pn, qn := len(p.coeffs), len(q.coeffs)
	for i1 := 0; i1 < pn; i1++ {
		c1 := p.coeffs[pn-1-i1]
		if p.ring.IsZero(c1) {
			continue
		}
		for i2 := 0; i2 < qn; i2++ {
			c2 := q.coeffs[qn-1-i2]
			if p.ring.IsZero(c2) {
				continue
			}
			idx := len(out) - 1 - (i1 + i2)
			out[idx] = p.ring.Add(out[idx], p.ring.Mul(c1, c2))
		}
	}
	return NewPolynomial(p.ring, out...)
}

// DivMod performs polynomial long division of p by q, returning the
// quotient and remainder such that p == quotient*q + remainder and
// Degree(remainder) < Degree(q) (or remainder is the zero polynomial).
// It returns ErrZeroDivision if q is the zero polynomial.
func (p Polynomial[T]) DivMod(q Polynomial[T]) (quotient, remainder Polynomial[T], err error) {
	if q.isZeroPoly() {
		return Polynomial[T]{}, Polynomial[T]{}, errZeroDivision("polynomial division by the zero polynomial")
	}

	ring := p.ring
	divisorDeg := q.Degree()
	divisorLead := q.Coefficient(divisorDeg)

	quotient = NewPolynomial(ring, ring.Zero())
	remainder = p

	for !remainder.isZeroPoly() && remainder.Degree() >= divisorDeg {
		shift := remainder.Degree() - divisorDeg
		lead := remainder.Coefficient(remainder.Degree())
		coeff, derr := ring.Div(lead, divisorLead)
		if derr != nil {
			return Polynomial[T]{}, Polynomial[T]{}, derr
		}
		term := monomial(ring, coeff, shift)
		quotient = quotient.Add(term)
		remainder = remainder.Sub(term.Mul(q))
	}
	return quotient, remainder, nil
}

// Evaluate computes p(x) via Horner's method.
func (p Polynomial[T]) Evaluate(x T) T {
	acc := p.coeffs[0]
	for _, c := range p.coeffs[1:] {
		acc = p.ring.Add(p.ring.Mul(acc, x), c)
	}
	return acc
}
