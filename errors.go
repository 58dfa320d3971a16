package rs255

import (
	"github.com/pkg/errors"
)

// Sentinel error kinds, per spec. Callers match against these with
// errors.Is; call sites that need extra context wrap them with
// errors.Wrapf rather than inventing new sentinels.
var (
	// ErrInputTooLong is returned by Encode/EncodePolynomial when the
	// message exceeds k (223) bytes.
	ErrInputTooLong = errors.New("rs255: message exceeds 223 bytes")

	// ErrInputLengthInvalid is returned by Verify/Decode when the received
	// word is not exactly n (255) bytes.
	ErrInputLengthInvalid = errors.New("rs255: codeword must be exactly 255 bytes")

	// ErrFieldDomain is returned when constructing a field element from a
	// value outside 0..255.
	ErrFieldDomain = errors.New("rs255: field element value out of domain 0..255")

	// ErrZeroDivision is returned by polynomial division by the zero
	// polynomial, or by field inverse of zero.
	ErrZeroDivision = errors.New("rs255: division by zero")

	// ErrUncorrectable is returned by Decode when more than 16 byte
	// positions were altered and the error pattern cannot be resolved.
	ErrUncorrectable = errors.New("rs255: uncorrectable error pattern")
)

func errFieldDomain(v int) error {
	return errors.Wrapf(ErrFieldDomain, "value %d", v)
}

func errZeroDivision(context string) error {
	return errors.Wrap(ErrZeroDivision, context)
}

func errInputTooLong(n int) error {
	return errors.Wrapf(ErrInputTooLong, "got %d bytes", n)
}

func errInputLengthInvalid(n int) error {
	return errors.Wrapf(ErrInputLengthInvalid, "got %d bytes, want 255", n)
}

func errUncorrectable(reason string) error {
	return errors.Wrap(ErrUncorrectable, reason)
}
