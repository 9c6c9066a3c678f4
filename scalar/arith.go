package scalar

import (
	"math"
	"math/bits"
)

// Wide arithmetic shared by both families. Operands are split into sign and
// magnitude so the 128-bit work can be done with math/bits on unsigned
// values.

// magnitude returns |v|. math.MinInt64 maps to 1<<63.
func magnitude(v int64) uint64 {
	if v < 0 {
		return uint64(-v)
	}
	return uint64(v)
}

// narrow applies a sign to a magnitude, reporting false if the result does
// not fit in an int64.
func narrow(mag uint64, neg bool) (int64, bool) {
	if neg {
		if mag > 1<<63 {
			return 0, false
		}
		return -int64(mag), true
	}
	if mag > math.MaxInt64 {
		return 0, false
	}
	return int64(mag), true
}

// mulDivRem computes q = floor(a*b/c) and r = a*b - q*c through a 128-bit
// intermediate, so r has the sign of c and |r| < |c|. ok is false when q does
// not fit in an int64. c must not be 0.
func mulDivRem(a, b, c int64) (q, r int64, ok bool) {
	productNeg := (a < 0) != (b < 0)
	hi, lo := bits.Mul64(magnitude(a), magnitude(b))
	d := magnitude(c)
	if hi >= d {
		return 0, 0, false
	}
	qm, rm := bits.Div64(hi, lo, d)
	r = int64(rm)
	if productNeg {
		r = -r
	}
	qNeg := productNeg != (c < 0)
	if qNeg && r != 0 {
		// Truncation rounded the magnitude down, which is toward zero. Floor
		// is one step further from zero for a negative quotient.
		if qm == math.MaxUint64 {
			return 0, 0, false
		}
		qm++
		r += c
	}
	q, ok = narrow(qm, qNeg)
	return q, r, ok
}

func mulDivFloor(a, b, c int64) (int64, bool) {
	q, _, ok := mulDivRem(a, b, c)
	return q, ok
}

// sqrtFloor returns floor(sqrt(hi<<64 | lo)). The result is built one bit at
// a time from the top, so it always takes exactly width steps; width must be
// large enough to hold the root.
func sqrtFloor(hi, lo uint64, width int) uint64 {
	var r uint64
	for i := width - 1; i >= 0; i-- {
		c := r | 1<<uint(i)
		ch, cl := bits.Mul64(c, c)
		if ch < hi || (ch == hi && cl <= lo) {
			r = c
		}
	}
	return r
}

// checkedAdd and checkedSub detect two's complement overflow from the signs
// of the operands and the wrapped result.
func checkedAdd(a, b int64) (int64, bool) {
	s := a + b
	return s, (a^s)&(b^s) >= 0
}

func checkedSub(a, b int64) (int64, bool) {
	d := a - b
	return d, (a^b)&(a^d) >= 0
}
