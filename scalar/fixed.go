package scalar

import (
	"math"

	"github.com/pkg/errors"
)

// Fixed is a Q32.32 fixed-point number: the value is raw / 2^32 where raw is
// the underlying int64. The range is roughly ±2^31 with a resolution of
// 2^-32.
//
// Mul, Div and MulDiv round toward negative infinity. Sqrt rounds down.
type Fixed int64

const (
	// FracBits is the number of fractional bits.
	FracBits = 32

	fracMask = 1<<FracBits - 1
)

const (
	Zero Fixed = 0
	One  Fixed = 1 << FracBits
	Max  Fixed = math.MaxInt64
	Min  Fixed = math.MinInt64
	// Epsilon is the smallest positive value, one unit in the last place.
	Epsilon Fixed = 1
)

// FromRaw returns the Fixed whose raw representation is raw.
func FromRaw(raw int64) Fixed {
	return Fixed(raw)
}

// FromInt converts an integer exactly. It fails if n is outside
// [-2^31, 2^31-1].
func FromInt(n int64) (Fixed, error) {
	if n < math.MinInt32 || n > math.MaxInt32 {
		return 0, errors.Wrapf(ErrOverflow, "fixed from int %d", n)
	}
	return Fixed(n << FracBits), nil
}

// FromInt32 converts an int32, which always fits.
func FromInt32(n int32) Fixed {
	return Fixed(int64(n) << FracBits)
}

// FromInt64 implements Scalar.
func (Fixed) FromInt64(n int64) (Fixed, error) {
	return FromInt(n)
}

// Raw returns the underlying representation.
func (f Fixed) Raw() int64 {
	return int64(f)
}

// Floor returns the largest integer not greater than f.
func (f Fixed) Floor() int64 {
	return int64(f) >> FracBits
}

// IsInteger reports whether f has no fractional part.
func (f Fixed) IsInteger() bool {
	return f&fracMask == 0
}

// ToInt converts f to the integer family. It fails with ErrInexact if f has
// a fractional part.
func (f Fixed) ToInt() (Int, error) {
	if !f.IsInteger() {
		return 0, errors.Wrapf(ErrInexact, "fixed %s to int", f)
	}
	return Int(f.Floor()), nil
}

func (f Fixed) Add(g Fixed) (Fixed, error) {
	s, ok := checkedAdd(int64(f), int64(g))
	if !ok {
		return 0, errors.Wrapf(ErrOverflow, "%s + %s", f, g)
	}
	return Fixed(s), nil
}

func (f Fixed) Sub(g Fixed) (Fixed, error) {
	d, ok := checkedSub(int64(f), int64(g))
	if !ok {
		return 0, errors.Wrapf(ErrOverflow, "%s - %s", f, g)
	}
	return Fixed(d), nil
}

func (f Fixed) Neg() (Fixed, error) {
	if f == Min {
		return 0, errors.Wrapf(ErrOverflow, "-(%s)", f)
	}
	return -f, nil
}

func (f Fixed) Abs() (Fixed, error) {
	if f < 0 {
		return f.Neg()
	}
	return f, nil
}

// Mul multiplies through a 128-bit intermediate and shifts the product back
// down by 32 bits, rounding toward negative infinity.
func (f Fixed) Mul(g Fixed) (Fixed, error) {
	p, ok := mulDivFloor(int64(f), int64(g), int64(One))
	if !ok {
		return 0, errors.Wrapf(ErrOverflow, "%s * %s", f, g)
	}
	return Fixed(p), nil
}

// Div shifts the dividend up by 32 bits in a 128-bit intermediate before
// dividing, rounding toward negative infinity.
func (f Fixed) Div(g Fixed) (Fixed, error) {
	if g == 0 {
		return 0, errors.Wrapf(ErrDivisionByZero, "%s / 0", f)
	}
	q, ok := mulDivFloor(int64(f), int64(One), int64(g))
	if !ok {
		return 0, errors.Wrapf(ErrOverflow, "%s / %s", f, g)
	}
	return Fixed(q), nil
}

// MulDiv computes f*b/c rounding once, toward negative infinity. The
// product is never narrowed, so it succeeds whenever the final quotient is
// representable.
func (f Fixed) MulDiv(b, c Fixed) (Fixed, error) {
	if c == 0 {
		return 0, errors.Wrapf(ErrDivisionByZero, "%s * %s / 0", f, b)
	}
	// raw(f*b/c) = (f/S)(b/S)/(c/S)*S = raw(f)*raw(b)/raw(c)
	q, ok := mulDivFloor(int64(f), int64(b), int64(c))
	if !ok {
		return 0, errors.Wrapf(ErrOverflow, "%s * %s / %s", f, b, c)
	}
	return Fixed(q), nil
}

// Sqrt returns the square root rounded down to the nearest representable
// value. It works on the raw value shifted up by 32 bits, whose integer
// square root is exactly the raw representation of the result.
func (f Fixed) Sqrt() (Fixed, error) {
	if f < 0 {
		return 0, errors.Wrapf(ErrNegativeInput, "sqrt(%s)", f)
	}
	raw := uint64(f)
	// raw < 2^63, so raw<<32 < 2^95 and the root has at most 48 bits.
	return Fixed(sqrtFloor(raw>>(64-FracBits), raw<<FracBits, 48)), nil
}

func (f Fixed) AppendBinary(b []byte) ([]byte, error) {
	return Append(b, f), nil
}

func (f Fixed) MarshalBinary() ([]byte, error) {
	return f.AppendBinary(make([]byte, 0, Size))
}

func (f *Fixed) UnmarshalBinary(data []byte) error {
	v, err := Decode[Fixed](data)
	if err != nil {
		return err
	}
	*f = v
	return nil
}
