package scalar

import (
	"math"
	"strconv"

	"github.com/pkg/errors"
)

// Int is a 64-bit integer coordinate with checked arithmetic. Div and MulDiv
// round toward negative infinity, matching Fixed.
type Int int64

// FromInt64 implements Scalar. It never fails.
func (Int) FromInt64(n int64) (Int, error) {
	return Int(n), nil
}

// ToFixed converts i to the fixed-point family. It fails if i is outside the
// Fixed integer range.
func (i Int) ToFixed() (Fixed, error) {
	return FromInt(int64(i))
}

func (i Int) Add(j Int) (Int, error) {
	s, ok := checkedAdd(int64(i), int64(j))
	if !ok {
		return 0, errors.Wrapf(ErrOverflow, "%d + %d", i, j)
	}
	return Int(s), nil
}

func (i Int) Sub(j Int) (Int, error) {
	d, ok := checkedSub(int64(i), int64(j))
	if !ok {
		return 0, errors.Wrapf(ErrOverflow, "%d - %d", i, j)
	}
	return Int(d), nil
}

func (i Int) Neg() (Int, error) {
	if i == math.MinInt64 {
		return 0, errors.Wrapf(ErrOverflow, "-(%d)", i)
	}
	return -i, nil
}

func (i Int) Abs() (Int, error) {
	if i < 0 {
		return i.Neg()
	}
	return i, nil
}

func (i Int) Mul(j Int) (Int, error) {
	p, ok := mulDivFloor(int64(i), int64(j), 1)
	if !ok {
		return 0, errors.Wrapf(ErrOverflow, "%d * %d", i, j)
	}
	return Int(p), nil
}

// Div is floored division: -7/2 is -4, not Go's -3.
func (i Int) Div(j Int) (Int, error) {
	if j == 0 {
		return 0, errors.Wrapf(ErrDivisionByZero, "%d / 0", i)
	}
	q, ok := mulDivFloor(int64(i), 1, int64(j))
	if !ok {
		return 0, errors.Wrapf(ErrOverflow, "%d / %d", i, j)
	}
	return Int(q), nil
}

func (i Int) MulDiv(b, c Int) (Int, error) {
	if c == 0 {
		return 0, errors.Wrapf(ErrDivisionByZero, "%d * %d / 0", i, b)
	}
	q, ok := mulDivFloor(int64(i), int64(b), int64(c))
	if !ok {
		return 0, errors.Wrapf(ErrOverflow, "%d * %d / %d", i, b, c)
	}
	return Int(q), nil
}

// Sqrt returns the integer square root, rounded down.
func (i Int) Sqrt() (Int, error) {
	if i < 0 {
		return 0, errors.Wrapf(ErrNegativeInput, "sqrt(%d)", i)
	}
	return Int(sqrtFloor(0, uint64(i), 32)), nil
}

func (i Int) String() string {
	return strconv.FormatInt(int64(i), 10)
}

// ParseInt reads a base 10 integer.
func ParseInt(s string) (Int, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, errors.Wrapf(ErrOverflow, "parse int %q", s)
		}
		return 0, errors.Wrapf(ErrSyntax, "parse int %q", s)
	}
	return Int(n), nil
}

func (i Int) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *Int) UnmarshalText(text []byte) error {
	v, err := ParseInt(string(text))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

func (i Int) AppendBinary(b []byte) ([]byte, error) {
	return Append(b, i), nil
}

func (i Int) MarshalBinary() ([]byte, error) {
	return i.AppendBinary(make([]byte, 0, Size))
}

func (i *Int) UnmarshalBinary(data []byte) error {
	v, err := Decode[Int](data)
	if err != nil {
		return err
	}
	*i = v
	return nil
}
