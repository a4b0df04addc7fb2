package pos

import (
	"math"
	"unsafe"

	"github.com/blockbuf/blockbuf/endian"
	"github.com/blockbuf/blockbuf/errs"
	"github.com/blockbuf/blockbuf/format"
)

// check validates that the width-byte span starting at p lies inside buf.
func check(buf []byte, p, width int) error {
	if p < 0 || p+width > len(buf) {
		return errs.ErrOutOfBounds
	}

	return nil
}

// ReadScalar reads a little-endian scalar of type T at position p.
//
// This is the bounds-checked counterpart of endian.FromLESlice:
// it returns errs.ErrOutOfBounds when the type's width does not fit at p.
func ReadScalar[T endian.Scalar](buf []byte, p int) (T, error) {
	var zero T
	if err := check(buf, p, int(unsafe.Sizeof(zero))); err != nil {
		return zero, err
	}

	return endian.FromLESlice[T](buf[p:]), nil
}

// SeekUOffset reads the UOffset stored at p and returns p + value, the
// position of the forward referent. It is used for every forward reference:
// buffer start to root table, table field to nested table/vector/string,
// and vector element to nested table.
//
// Returns:
//   - int: The derived position
//   - error: errs.ErrOutOfBounds if the read or the resulting position
//     exceeds the buffer, errs.ErrOffsetOverflow if the arithmetic exceeds
//     the format's 32-bit offset range
func SeekUOffset(buf []byte, p int) (int, error) {
	off, err := ReadScalar[format.UOffset](buf, p)
	if err != nil {
		return 0, err
	}

	next := int64(p) + int64(off)
	if next > math.MaxUint32 {
		return 0, errs.ErrOffsetOverflow
	}
	if next > int64(len(buf)) {
		return 0, errs.ErrOutOfBounds
	}

	return int(next), nil
}

// SeekSOffset reads the SOffset stored at p and returns p - value, the
// position of the backward referent. It is used exclusively for the
// table-to-vtable reference. A negative stored value therefore moves
// forward, since vtables may sit on either side of their table.
//
// Returns:
//   - int: The derived position
//   - error: errs.ErrOutOfBounds if the read exceeds the buffer or the
//     resulting position is negative or beyond the buffer,
//     errs.ErrOffsetOverflow if the arithmetic exceeds the format's 32-bit
//     offset range
func SeekSOffset(buf []byte, p int) (int, error) {
	off, err := ReadScalar[format.SOffset](buf, p)
	if err != nil {
		return 0, err
	}

	next := int64(p) - int64(off)
	if next < 0 {
		return 0, errs.ErrOutOfBounds
	}
	if next > math.MaxUint32 {
		return 0, errs.ErrOffsetOverflow
	}
	if next > int64(len(buf)) {
		return 0, errs.ErrOutOfBounds
	}

	return int(next), nil
}
