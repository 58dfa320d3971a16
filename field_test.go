package rs255

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func elemGen() *rapid.Generator[Elem] {
	return rapid.Custom(func(t *rapid.T) Elem {
		return Elem(rapid.IntRange(0, 255).Draw(t, "elem"))
	})
}

func TestFieldAddIsXor(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := elemGen().Draw(t, "a")
		b := elemGen().Draw(t, "b")
		assert.Equal(t, Elem(byte(a)^byte(b)), Add(a, b))
		assert.Equal(t, Add(a, b), Sub(a, b))
	})
}

func TestFieldAdditionCommutativeAssociative(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := elemGen().Draw(t, "a")
		b := elemGen().Draw(t, "b")
		c := elemGen().Draw(t, "c")

		assert.Equal(t, Add(a, b), Add(b, a))
		assert.Equal(t, Add(Add(a, b), c), Add(a, Add(b, c)))
	})
}

func TestFieldMultiplicationCommutativeAssociativeDistributive(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := elemGen().Draw(t, "a")
		b := elemGen().Draw(t, "b")
		c := elemGen().Draw(t, "c")

		assert.Equal(t, Mul(a, b), Mul(b, a))
		assert.Equal(t, Mul(Mul(a, b), c), Mul(a, Mul(b, c)))
		assert.Equal(t, Mul(a, Add(b, c)), Add(Mul(a, b), Mul(a, c)))
	})
}

func TestFieldMulIdentitiesAndZero(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := elemGen().Draw(t, "a")
		assert.Equal(t, Elem(0), Mul(a, 0))
		assert.Equal(t, a, Mul(a, 1))
	})
}

func TestFieldInverse(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := Elem(rapid.IntRange(1, 255).Draw(t, "a"))
		inv, err := Inverse(a)
		assert.NoError(t, err)
		assert.Equal(t, Elem(1), Mul(a, inv))
	})
}

func TestFieldInverseOfZeroErrors(t *testing.T) {
	_, err := Inverse(0)
	assert.ErrorIs(t, err, ErrZeroDivision)
}

func TestFieldAlphaOrder255(t *testing.T) {
	assert.Equal(t, Elem(1), Pow(alpha, 255))
	for _, i := range []int{1, 17, 128, 254} {
		assert.NotEqual(t, Elem(1), Pow(alpha, i), "alpha^%d should not be 1", i)
	}
}

func TestFieldAlphaGeneratesAllNonzeroElements(t *testing.T) {
	seen := make(map[Elem]bool)
	for i := 0; i < 255; i++ {
		seen[Pow(alpha, i)] = true
	}
	assert.Len(t, seen, 255)
	assert.False(t, seen[0])
}

func TestFieldPowZeroExponent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := elemGen().Draw(t, "a")
		assert.Equal(t, Elem(1), Pow(a, 0))
	})
}

func TestFieldNewElemDomain(t *testing.T) {
	v, err := NewElem(42)
	assert.NoError(t, err)
	assert.Equal(t, Elem(42), v)

	_, err = NewElem(256)
	assert.ErrorIs(t, err, ErrFieldDomain)

	_, err = NewElem(-1)
	assert.ErrorIs(t, err, ErrFieldDomain)
}
