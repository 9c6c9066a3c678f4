package scalar

import "github.com/pkg/errors"

// Error kinds. Every failing operation wraps one of these with its operands,
// so callers can match on the kind with errors.Is while the message records
// exactly which inputs failed. Nothing here depends on anything but the
// inputs, so every replica fails the same way.
var (
	ErrOverflow          = errors.New("arithmetic overflow")
	ErrDivisionByZero    = errors.New("division by zero")
	ErrNegativeInput     = errors.New("square root of negative value")
	ErrInexact           = errors.New("inexact conversion")
	ErrSyntax            = errors.New("invalid syntax")
	ErrMalformedEncoding = errors.New("malformed encoding")
)
