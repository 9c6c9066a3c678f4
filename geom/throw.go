package geom

// Threading checked-arithmetic errors up and down every step of the polygon
// algorithms would bury the geometry under error plumbing. Instead, the
// unexported helpers call must, which panics with a geometryError, and every
// exported operation defers catch to convert it back into an error. Any other
// panic is a real bug and keeps unwinding.

type geometryError struct {
	err error
}

func throw(err error) {
	panic(geometryError{err})
}

func must[V any](v V, err error) V {
	if err != nil {
		throw(err)
	}
	return v
}

// catch must be deferred directly by the exported function.
func catch(err *error) {
	if r := recover(); r != nil {
		ge, ok := r.(geometryError)
		if !ok {
			panic(r)
		}
		*err = ge.err
	}
}
