package scalar

import (
	"math/big"

	"github.com/pkg/errors"
)

// Wide is an exact integer of unbounded width, holding sums and products of
// raw representations. It is the intermediate for computations whose result
// fits a scalar even though their partial products do not.
//
// A raw Fixed carries a scale factor of 2^32, so a product of k raw values
// carries 2^(32k). Quo divides the scales out along with the values: when
// num carries exactly one more factor than den, the quotient is in the
// scalar's own representation. For Int every scale factor is 1.
//
// The zero Wide is zero. Wide values are immutable.
type Wide struct {
	v *big.Int
}

// WideOf returns the raw representation of v.
func WideOf[T Scalar[T]](v T) Wide {
	return Wide{big.NewInt(int64(v))}
}

// Cross returns ax*by - ay*bx over raw representations.
func Cross[T Scalar[T]](ax, ay, bx, by T) Wide {
	return WideOf(ax).Mul(WideOf(by)).Sub(WideOf(ay).Mul(WideOf(bx)))
}

// Dot returns ax*bx + ay*by over raw representations.
func Dot[T Scalar[T]](ax, ay, bx, by T) Wide {
	return WideOf(ax).Mul(WideOf(bx)).Add(WideOf(ay).Mul(WideOf(by)))
}

func (w Wide) int() *big.Int {
	if w.v == nil {
		return new(big.Int)
	}
	return w.v
}

func (w Wide) Add(u Wide) Wide {
	return Wide{new(big.Int).Add(w.int(), u.int())}
}

func (w Wide) Sub(u Wide) Wide {
	return Wide{new(big.Int).Sub(w.int(), u.int())}
}

func (w Wide) Mul(u Wide) Wide {
	return Wide{new(big.Int).Mul(w.int(), u.int())}
}

func (w Wide) Neg() Wide {
	return Wide{new(big.Int).Neg(w.int())}
}

// Sign returns -1, 0 or 1.
func (w Wide) Sign() int {
	return w.int().Sign()
}

func (w Wide) String() string {
	return w.int().String()
}

// Quo returns floor(num / den) as a T. It fails if den is zero or the
// quotient is outside T's range.
func Quo[T Scalar[T]](num, den Wide) (T, error) {
	n, d := num.int(), den.int()
	if d.Sign() == 0 {
		return 0, errors.Wrapf(ErrDivisionByZero, "%s / 0", num)
	}
	if d.Sign() < 0 {
		n, d = new(big.Int).Neg(n), new(big.Int).Neg(d)
	}
	// With a positive divisor, Euclidean division is floor division.
	q := new(big.Int).Div(n, d)
	if !q.IsInt64() {
		return 0, errors.Wrapf(ErrOverflow, "%s / %s", num, den)
	}
	return T(q.Int64()), nil
}

// Narrow converts a product of two raw values back to T's representation,
// rounding down.
func Narrow[T Scalar[T]](w Wide) (T, error) {
	one, err := T(0).FromInt64(1)
	if err != nil {
		return 0, err
	}
	return Quo[T](w, WideOf(one))
}
