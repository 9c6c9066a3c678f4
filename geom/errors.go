package geom

import "github.com/pkg/errors"

// Geometry error kinds. Arithmetic failures surface as the scalar package's
// kinds, ErrOverflow above all.
var (
	// ErrDegenerateGeometry is returned where a construction needs a nonzero
	// area or a unique crossing and the input has none.
	ErrDegenerateGeometry = errors.New("degenerate geometry")
	ErrInvalidPolygon     = errors.New("invalid polygon")
)
