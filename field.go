// Package rs255 implements the RS(255, 223) Reed-Solomon codec over GF(2^8).
package rs255

// Galois Field (256) arithmetic for RS(255, 223).
// Reduction polynomial: x^8 + x^4 + x^3 + x + 1 (0x11B).
// Primitive element: alpha = 3.

// Elem is a value in GF(2^8): a byte interpreted as a polynomial in Z_2[x]
// modulo 0x11B. The zero value is the additive identity.
type Elem byte

const (
	// reductionPoly is the field's modulus, x^8+x^4+x^3+x+1.
	reductionPoly = 0x11B
	// alpha is the primitive element used throughout the codec.
	alpha = Elem(3)
	// fieldOrder is the order of the multiplicative group generated by alpha.
	fieldOrder = 255
)

// antilog[i] = alpha^i. Extended to 510 entries so antilog[i+255] == antilog[i],
// which lets callers add two log values without reducing mod 255 first.
var antilog [2 * fieldOrder]Elem

// logTable[a] is the i such that alpha^i == a, for a != 0. logTable[0] is
// unused; the zero element is handled explicitly by every operation below.
var logTable [256]int

func init() {
	// Peasant's-algorithm doubling: antilog[i+1] = antilog[i] * alpha.
	var val Elem = 1
	for i := 0; i < fieldOrder; i++ {
		antilog[i] = val
		logTable[val] = i
		val = gfMulNoTable(val, alpha)
	}
	for i := fieldOrder; i < len(antilog); i++ {
		antilog[i] = antilog[i-fieldOrder]
	}
}

// gfMulNoTable computes a*b by carryless multiplication reduced mod
// reductionPoly. This is only used to bootstrap the log/antilog tables in
// init(); everywhere else, Mul uses the tables.
func gfMulNoTable(a, b Elem) Elem {
	var r, p int
	x, y := int(a), int(b)
	p = x
	for y != 0 {
		if y&1 != 0 {
			r ^= p
		}
		p <<= 1
		if p&0x100 != 0 {
			p ^= reductionPoly
		}
		y >>= 1
	}
	return Elem(r)
}

// Add returns a+b in GF(2^8), which is the bitwise XOR of a and b.
func Add(a, b Elem) Elem { return a ^ b }

// Sub returns a-b in GF(2^8). Subtraction and addition coincide in
// characteristic 2.
func Sub(a, b Elem) Elem { return a ^ b }

// Mul returns a*b in GF(2^8) via the log/antilog tables.
func Mul(a, b Elem) Elem {
	if a == 0 || b == 0 {
		return 0
	}
	return antilog[logTable[a]+logTable[b]]
}

// Pow returns a^n in GF(2^8) for any integer n; for nonzero a, a negative n
// yields a power of a's inverse. Pow(0, 0) is conventionally 1; Pow(0, n)
// for any other n is 0.
func Pow(a Elem, n int) Elem {
	if n == 0 {
		return 1
	}
	if a == 0 {
		return 0
	}
	e := (logTable[a] * n) % fieldOrder
	if e < 0 {
		e += fieldOrder
	}
	return antilog[e]
}

// Inverse returns a^-1 in GF(2^8). It returns ErrZeroDivision if a is zero.
func Inverse(a Elem) (Elem, error) {
	if a == 0 {
		return 0, errZeroDivision("field inverse of zero")
	}
	return antilog[fieldOrder-logTable[a]], nil
}

// NewElem constructs a field element from an integer value in 0..255,
// returning ErrFieldDomain if out of range.
func NewElem(v int) (Elem, error) {
	if v < 0 || v > 255 {
		return 0, errFieldDomain(v)
	}
	return Elem(v), nil
}
