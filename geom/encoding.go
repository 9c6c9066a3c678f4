package geom

import (
	"encoding/binary"
	"math"

	"github.com/osuushi/detgeom/scalar"
	"github.com/pkg/errors"
)

// Binary layouts. Every scalar is scalar.Size bytes, big-endian, and
// composites are their fields concatenated in declaration order:
//
//	Point, Vector   X Y                        16 bytes
//	Segment         A.X A.Y B.X B.Y            32 bytes
//	BBox            Min.X Min.Y Max.X Max.Y    32 bytes
//	Polygon         count:uint32 then count points
//
// The layouts are written out by hand and never derived from the struct
// definitions, so they only change when this file does.

const (
	pointSize        = 2 * scalar.Size
	segmentSize      = 2 * pointSize
	polygonCountSize = 4
)

func malformed(what string, data []byte, want int) error {
	return errors.Wrapf(scalar.ErrMalformedEncoding, "%s is %d bytes, want %d", what, len(data), want)
}

func (p Point[T]) AppendBinary(b []byte) ([]byte, error) {
	return scalar.Append(scalar.Append(b, p.X), p.Y), nil
}

func (p Point[T]) MarshalBinary() ([]byte, error) {
	return p.AppendBinary(make([]byte, 0, pointSize))
}

func (p *Point[T]) UnmarshalBinary(data []byte) error {
	if len(data) != pointSize {
		return malformed("point", data, pointSize)
	}
	p.X, p.Y = decodePair[T](data)
	return nil
}

func (v Vector[T]) AppendBinary(b []byte) ([]byte, error) {
	return scalar.Append(scalar.Append(b, v.X), v.Y), nil
}

func (v Vector[T]) MarshalBinary() ([]byte, error) {
	return v.AppendBinary(make([]byte, 0, pointSize))
}

func (v *Vector[T]) UnmarshalBinary(data []byte) error {
	if len(data) != pointSize {
		return malformed("vector", data, pointSize)
	}
	v.X, v.Y = decodePair[T](data)
	return nil
}

func (s Segment[T]) AppendBinary(b []byte) ([]byte, error) {
	b, _ = s.A.AppendBinary(b)
	return s.B.AppendBinary(b)
}

func (s Segment[T]) MarshalBinary() ([]byte, error) {
	return s.AppendBinary(make([]byte, 0, segmentSize))
}

func (s *Segment[T]) UnmarshalBinary(data []byte) error {
	if len(data) != segmentSize {
		return malformed("segment", data, segmentSize)
	}
	s.A.X, s.A.Y = decodePair[T](data)
	s.B.X, s.B.Y = decodePair[T](data[pointSize:])
	return nil
}

func (b BBox[T]) AppendBinary(buf []byte) ([]byte, error) {
	buf, _ = b.Min.AppendBinary(buf)
	return b.Max.AppendBinary(buf)
}

func (b BBox[T]) MarshalBinary() ([]byte, error) {
	return b.AppendBinary(make([]byte, 0, segmentSize))
}

// UnmarshalBinary rejects a box whose Min is not below and left of its Max.
func (b *BBox[T]) UnmarshalBinary(data []byte) error {
	if len(data) != segmentSize {
		return malformed("bbox", data, segmentSize)
	}
	var box BBox[T]
	box.Min.X, box.Min.Y = decodePair[T](data)
	box.Max.X, box.Max.Y = decodePair[T](data[pointSize:])
	if box.Min.X > box.Max.X || box.Min.Y > box.Max.Y {
		return errors.Wrapf(scalar.ErrMalformedEncoding, "inverted bbox %s", box)
	}
	*b = box
	return nil
}

func (poly Polygon[T]) AppendBinary(b []byte) ([]byte, error) {
	if uint64(len(poly.vertices)) > math.MaxUint32 {
		return nil, errors.Wrapf(ErrInvalidPolygon, "%d vertices do not fit the encoding", len(poly.vertices))
	}
	b = binary.BigEndian.AppendUint32(b, uint32(len(poly.vertices)))
	for _, v := range poly.vertices {
		b, _ = v.AppendBinary(b)
	}
	return b, nil
}

func (poly Polygon[T]) MarshalBinary() ([]byte, error) {
	return poly.AppendBinary(make([]byte, 0, polygonCountSize+pointSize*len(poly.vertices)))
}

// UnmarshalBinary decodes a polygon written by MarshalBinary. The vertex
// count must be at least three and must match the remaining length exactly.
func (poly *Polygon[T]) UnmarshalBinary(data []byte) error {
	if len(data) < polygonCountSize {
		return malformed("polygon header", data, polygonCountSize)
	}
	count := uint64(binary.BigEndian.Uint32(data))
	data = data[polygonCountSize:]
	if count < 3 {
		return errors.Wrapf(scalar.ErrMalformedEncoding, "polygon with %d vertices", count)
	}
	if uint64(len(data)) != count*pointSize {
		return errors.Wrapf(scalar.ErrMalformedEncoding, "polygon of %d vertices has %d bytes of points", count, len(data))
	}

	vertices := make([]Point[T], count)
	for i := range vertices {
		vertices[i].X, vertices[i].Y = decodePair[T](data[i*pointSize:])
	}
	*poly = newPolygon(vertices)
	return nil
}

// decodePair reads two scalars from the front of data, which the caller has
// already checked is long enough.
func decodePair[T Scalar[T]](data []byte) (x, y T) {
	x = T(int64(binary.BigEndian.Uint64(data)))
	y = T(int64(binary.BigEndian.Uint64(data[scalar.Size:])))
	return x, y
}
