package blockbuf

import (
	"unsafe"

	"github.com/blockbuf/blockbuf/endian"
	"github.com/blockbuf/blockbuf/errs"
	"github.com/blockbuf/blockbuf/format"
	"github.com/blockbuf/blockbuf/pos"
)

// Vector attaches a buffer to a vector position with a fixed element type.
// Elements are decoded from little-endian on access; Bytes exposes the raw
// wire bytes for callers that want the zero-copy span instead.
type Vector[T endian.Scalar] struct {
	buf []byte
	pos pos.Vector
}

// NewVector creates a buffer-attached vector of T at the given position.
func NewVector[T endian.Scalar](buf []byte, p pos.Vector) Vector[T] {
	return Vector[T]{buf: buf, pos: p}
}

// Position returns the vector position.
func (v Vector[T]) Position() pos.Vector { return v.pos }

// Len reads the element count.
func (v Vector[T]) Len() (int, error) {
	n, err := v.pos.Len(v.buf)

	return int(n), err
}

// At reads and endian-converts the element at index i.
//
// Returns:
//   - T: Element value
//   - error: errs.ErrOutOfBounds when i is outside [0, Len)
func (v Vector[T]) At(i int) (T, error) {
	var zero T

	n, err := v.Len()
	if err != nil {
		return zero, err
	}
	if i < 0 || i >= n {
		return zero, errs.ErrOutOfBounds
	}

	return pos.ReadScalar[T](v.buf, int(v.pos)+format.LenSize+i*elemSize[T]())
}

// Bytes returns the raw little-endian element bytes, sharing the buffer's
// memory.
func (v Vector[T]) Bytes() ([]byte, error) {
	return v.pos.Slice(v.buf, elemSize[T]())
}

// Values decodes every element into a freshly allocated slice. This is the
// one deliberately copying convenience; use Bytes or At to stay zero-copy.
func (v Vector[T]) Values() ([]T, error) {
	b, err := v.Bytes()
	if err != nil {
		return nil, err
	}

	size := elemSize[T]()
	out := make([]T, len(b)/size)
	for i := range out {
		out[i] = endian.FromLESlice[T](b[i*size:])
	}

	return out, nil
}

// TableVectorAt derives the nested table stored as a forward offset at
// element i of a vector of tables.
func TableVectorAt(buf []byte, v pos.Vector, i int) (*Table, error) {
	p, err := offsetElemPosition(buf, v, i)
	if err != nil {
		return nil, err
	}

	tp, err := pos.ReadTable(buf, p)
	if err != nil {
		return nil, err
	}

	return NewTable(buf, tp)
}

// StringVectorAt derives the string stored as a forward offset at element i
// of a vector of strings.
func StringVectorAt(buf []byte, v pos.Vector, i int) (string, error) {
	p, err := offsetElemPosition(buf, v, i)
	if err != nil {
		return "", err
	}

	sp, err := pos.ReadString(buf, p)
	if err != nil {
		return "", err
	}

	return sp.Str(buf)
}

// offsetElemPosition locates element i of a vector whose elements are
// UOffset-width forward references.
func offsetElemPosition(buf []byte, v pos.Vector, i int) (int, error) {
	n, err := v.Len(buf)
	if err != nil {
		return 0, err
	}
	if i < 0 || i >= int(n) {
		return 0, errs.ErrOutOfBounds
	}

	return int(v) + format.LenSize + i*format.UOffsetSize, nil
}

func elemSize[T endian.Scalar]() int {
	var zero T

	return int(unsafe.Sizeof(zero))
}
