package rs255

// Ring describes the coefficient arithmetic Polynomial[T] needs: the additive
// and multiplicative identities, +, -, *, and a division operation used by
// DivMod to compute each quotient term. Two instantiations exist: IntRing,
// used only by tests to exercise the polynomial laws over ordinary integers
// (spec §9: "division uses ordinary integer/float division"), and the
// GF(2^8) ring used by the codec, where Div(a, b) is Mul(a, Inverse(b))
// (spec §4.2: "division of coefficients uses mul(a, inverse(b))").
type Ring[T any] interface {
	Zero() T
	One() T
	Add(a, b T) T
	Sub(a, b T) T
	Mul(a, b T) T
	// Div returns a/b, the quotient-term coefficient used during polynomial
	// long division. It errors if b is the additive identity.
	Div(a, b T) (T, error)
	// Inverse returns the multiplicative inverse of a, or an error if a has
	// none.
	Inverse(a T) (T, error)
	IsZero(a T) bool
	Equal(a, b T) bool
}

// IntRing implements Ring[int] with ordinary integer arithmetic, used only
// by tests exercising the polynomial laws (spec §8) over integer
// coefficients.
type IntRing struct{}

func (IntRing) Zero() int            { return 0 }
func (IntRing) One() int             { return 1 }
func (IntRing) Add(a, b int) int     { return a + b }
func (IntRing) Sub(a, b int) int     { return a - b }
func (IntRing) Mul(a, b int) int     { return a * b }
func (IntRing) IsZero(a int) bool    { return a == 0 }
func (IntRing) Equal(a, b int) bool  { return a == b }

func (IntRing) Div(a, b int) (int, error) {
	if b == 0 {
		return 0, errZeroDivision("integer division by zero")
	}
	// Matches original_source/polynomial.py's Python 2 "/" on ints: floor
	// division, not truncation toward zero.
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q, nil
}

func (IntRing) Inverse(a int) (int, error) {
	if a == 1 || a == -1 {
		return a, nil
	}
	return 0, errZeroDivision("integer coefficient has no integer inverse")
}

// gf256Ring implements Ring[Elem] over GF(2^8).
type gf256Ring struct{}

func (gf256Ring) Zero() Elem                   { return 0 }
func (gf256Ring) One() Elem                    { return 1 }
func (gf256Ring) Add(a, b Elem) Elem           { return Add(a, b) }
func (gf256Ring) Sub(a, b Elem) Elem           { return Sub(a, b) }
func (gf256Ring) Mul(a, b Elem) Elem           { return Mul(a, b) }
func (gf256Ring) IsZero(a Elem) bool           { return a == 0 }
func (gf256Ring) Equal(a, b Elem) bool         { return a == b }
func (gf256Ring) Inverse(a Elem) (Elem, error) { return Inverse(a) }

func (gf256Ring) Div(a, b Elem) (Elem, error) {
	inv, err := Inverse(b)
	if err != nil {
		return 0, err
	}
	return Mul(a, inv), nil
}

// GF256 is the shared Ring[Elem] instance used by every codec-facing
// Polynomial[Elem].
var GF256 Ring[Elem] = gf256Ring{}
