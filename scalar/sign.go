package scalar

import "math/bits"

// The predicates below work on raw representations. For Fixed every product
// carries the same positive scale factor 2^64, so the sign of the raw result
// is the sign of the real one. Nothing is rounded and nothing can overflow,
// which keeps orientation tests exact even where Mul would round a tiny
// product to zero.

// CrossSign returns the sign of ax*by - ay*bx.
func CrossSign[T Scalar[T]](ax, ay, bx, by T) int {
	return productSumSign(int64(ax), int64(by), -sign(int64(ay))*sign(int64(bx)), int64(ay), int64(bx))
}

// DotSign returns the sign of ax*bx + ay*by.
func DotSign[T Scalar[T]](ax, ay, bx, by T) int {
	return productSumSign(int64(ax), int64(bx), sign(int64(ay))*sign(int64(by)), int64(ay), int64(by))
}

// productSumSign returns the sign of a*b + s*|c*d|, where s is the sign the
// second term should carry.
func productSumSign(a, b int64, s int, c, d int64) int {
	s1 := sign(a) * sign(b)
	switch {
	case s == 0 || s1 == s:
		return s1
	case s1 == 0:
		return s
	}
	// Opposite signs: the larger magnitude wins.
	h1, l1 := bits.Mul64(magnitude(a), magnitude(b))
	h2, l2 := bits.Mul64(magnitude(c), magnitude(d))
	switch {
	case h1 > h2 || (h1 == h2 && l1 > l2):
		return s1
	case h1 < h2 || (h1 == h2 && l1 < l2):
		return s
	}
	return 0
}

func sign(v int64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
