package scalar

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// maxFracDigits is the number of fractional digits Parse looks at. Later
// digits cannot move the result by more than 10^-19, far below half an ulp.
const maxFracDigits = 19

var pow10 = [maxFracDigits + 1]uint64{
	1, 10, 100, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10,
	1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19,
}

const pow5to16 = 152587890625

// Parse reads a decimal number of the form [-+]digits[.digits]. The result
// is the nearest representable value, ties rounded away from zero. Values
// that need 32 or fewer fractional digits, such as everything String
// produces, are read exactly.
func Parse(s string) (Fixed, error) {
	text := s
	neg := false
	if strings.HasPrefix(text, "-") {
		neg = true
		text = text[1:]
	} else if strings.HasPrefix(text, "+") {
		text = text[1:]
	}

	whole, frac, hasPoint := strings.Cut(text, ".")
	if !isDigits(whole) || (hasPoint && !isDigits(frac)) {
		return 0, errors.Wrapf(ErrSyntax, "parse fixed %q", s)
	}

	w, err := strconv.ParseUint(whole, 10, 64)
	if err != nil || w > 1<<31 {
		return 0, errors.Wrapf(ErrOverflow, "parse fixed %q", s)
	}

	var q uint64
	if frac != "" {
		if len(frac) > maxFracDigits {
			frac = frac[:maxFracDigits]
		}
		digits, err := strconv.ParseUint(frac, 10, 64)
		if err != nil {
			return 0, errors.Wrapf(ErrSyntax, "parse fixed %q", s)
		}
		// q = round(digits * 2^32 / 10^len). digits < 10^len keeps the high
		// word below the divisor.
		pow := pow10[len(frac)]
		var r uint64
		q, r = bits.Div64(digits>>(64-FracBits), digits<<FracBits, pow)
		if r >= pow-r {
			q++
		}
	}

	raw, ok := narrow(w<<FracBits+q, neg)
	if !ok {
		return 0, errors.Wrapf(ErrOverflow, "parse fixed %q", s)
	}
	return Fixed(raw), nil
}

// MustParse is like Parse but panics on error. It is meant for constants and
// test tables.
func MustParse(s string) Fixed {
	f, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return f
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// String returns the exact decimal value of f with trailing zeros removed.
// Since 2^-32 = 5^32 / 10^32, at most 32 fractional digits are needed.
func (f Fixed) String() string {
	mag := magnitude(int64(f))
	whole, frac := mag>>FracBits, mag&fracMask

	var b strings.Builder
	if f < 0 {
		b.WriteByte('-')
	}
	b.WriteString(strconv.FormatUint(whole, 10))
	if frac == 0 {
		return b.String()
	}

	// frac * 5^32 in 128 bits, as two multiplications by 5^16.
	h1, l1 := bits.Mul64(frac, pow5to16)
	hi, lo := bits.Mul64(l1, pow5to16)
	hi += h1 * pow5to16
	top, bottom := bits.Div64(hi, lo, pow10[16])

	digits := fmt.Sprintf("%016d%016d", top, bottom)
	b.WriteByte('.')
	b.WriteString(strings.TrimRight(digits, "0"))
	return b.String()
}

// Text formats f rounded to prec fractional digits, ties away from zero,
// with trailing zeros removed. prec is clamped to [0, 19]. Any decimal with
// at most 9 fractional digits comes back unchanged from Parse(s).Text(9),
// because an ulp is smaller than half of 10^-9.
func (f Fixed) Text(prec int) string {
	if prec < 0 {
		prec = 0
	}
	if prec > maxFracDigits {
		prec = maxFracDigits
	}
	mag := magnitude(int64(f))
	whole, frac := mag>>FracBits, mag&fracMask

	pow := pow10[prec]
	hi, lo := bits.Mul64(frac, pow)
	digits := hi<<(64-FracBits) | lo>>FracBits
	if lo&fracMask >= 1<<(FracBits-1) {
		digits++
	}
	if digits == pow {
		whole++
		digits = 0
	}

	var b strings.Builder
	if f < 0 && (whole != 0 || digits != 0) {
		b.WriteByte('-')
	}
	b.WriteString(strconv.FormatUint(whole, 10))
	if digits != 0 {
		b.WriteByte('.')
		b.WriteString(strings.TrimRight(fmt.Sprintf("%0*d", prec, digits), "0"))
	}
	return b.String()
}

func (f Fixed) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f *Fixed) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}
