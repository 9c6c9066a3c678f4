// Package scalar provides the two deterministic number types used for
// coordinates: Int, a checked 64-bit integer, and Fixed, a Q32.32 fixed-point
// number. Neither ever wraps or silently loses range; every operation that can
// leave the representable range returns an error instead.
//
// The types are deliberately not interchangeable. Converting between them
// requires Int.ToFixed or Fixed.ToInt, both of which fail rather than round.
package scalar

import (
	"encoding/binary"
	"fmt"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Scalar is the capability set shared by Int and Fixed. The underlying type
// is a signed integer, so ordering and equality are plain comparisons of the
// raw representation, which are exact for both families.
type Scalar[T any] interface {
	constraints.Signed
	fmt.Stringer

	Add(T) (T, error)
	Sub(T) (T, error)
	Mul(T) (T, error)
	Div(T) (T, error)
	// MulDiv computes a*b/c with a single rounding step.
	MulDiv(b, c T) (T, error)
	Neg() (T, error)
	Sqrt() (T, error)

	// FromInt64 ignores its receiver. It exists so that generic code can
	// build constants of the right family.
	FromInt64(int64) (T, error)
}

// Size is the length in bytes of the binary encoding of either scalar type.
const Size = 8

// Append appends the binary encoding of v to b: the raw representation as
// a big-endian two's complement 64-bit integer.
func Append[T Scalar[T]](b []byte, v T) []byte {
	return binary.BigEndian.AppendUint64(b, uint64(int64(v)))
}

// Decode reads a value written by Append. data must be exactly Size bytes.
func Decode[T Scalar[T]](data []byte) (T, error) {
	if len(data) != Size {
		return 0, errors.Wrapf(ErrMalformedEncoding, "scalar is %d bytes, want %d", len(data), Size)
	}
	return T(int64(binary.BigEndian.Uint64(data))), nil
}
