package rs255

import "sync"

// n is the codeword length, k the message length, and nk the number of
// parity bytes for RS(255, 223).
const (
	n  = 255
	k  = 223
	nk = n - k // 32
)

var (
	generatorOnce sync.Once
	generatorPoly Polynomial[Elem]
)

// generator returns g(x) = prod_{i=1..32} (x - alpha^i), the fixed
// degree-32 generator polynomial for RS(255, 223). It is computed once and
// reused by every Encode/Verify/Decode call; field tables and this
// polynomial are the only process-wide state the codec keeps (spec §4.7).
func generator() Polynomial[Elem] {
	generatorOnce.Do(func() {
		g := NewPolynomial(GF256, Elem(1))
		for i := 1; i <= nk; i++ {
			// (x - alpha^i); subtraction is XOR so this is (x + alpha^i).
			factor := NewPolynomial(GF256, Elem(1), Pow(alpha, i))
			g = g.Mul(factor)
		}
		generatorPoly = g
	})
	return generatorPoly
}
