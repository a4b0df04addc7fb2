package pos

import (
	"math"
	"unicode/utf8"
	"unsafe"

	"github.com/blockbuf/blockbuf/errs"
	"github.com/blockbuf/blockbuf/format"
)

// The four position kinds. Each wraps a raw byte offset and carries no other
// state; equality and ordering follow the numeric offset, which lets a
// caller assert that a nested structure falls inside an expected containing
// region.
type (
	// Table points at a table's first stored field, the backward SOffset to
	// its vtable.
	Table format.UOffset
	// VTable points at a vtable head: two VOffset size fields followed by
	// one VOffset slot per declared field.
	VTable format.UOffset
	// Vector points at a Len field immediately followed by that many
	// fixed-width elements.
	Vector format.UOffset
	// String points at a Len field followed by UTF-8 content and a trailing
	// NUL byte excluded from the length.
	String format.UOffset
)

// Root returns the position of the root table, stored as a single UOffset at
// the start of the buffer.
func Root(buf []byte) (Table, error) {
	return ReadTable(buf, 0)
}

// ReadTable derives a table position from the forward UOffset stored at p.
func ReadTable(buf []byte, p int) (Table, error) {
	next, err := SeekUOffset(buf, p)

	return Table(next), err
}

// ReadVector derives a vector position from the forward UOffset stored at p.
func ReadVector(buf []byte, p int) (Vector, error) {
	next, err := SeekUOffset(buf, p)

	return Vector(next), err
}

// ReadString derives a string position from the forward UOffset stored at p.
func ReadString(buf []byte, p int) (String, error) {
	next, err := SeekUOffset(buf, p)

	return String(next), err
}

// Len reads the element count prefixing the vector.
func (v Vector) Len(buf []byte) (format.Len, error) {
	return ReadScalar[format.Len](buf, int(v))
}

// Slice returns the raw little-endian bytes of the vector's elements, the
// span [v+LenSize, v+LenSize+len*elemSize). The element width is supplied by
// the caller; the position itself is element-width-agnostic.
//
// Returns:
//   - []byte: Element bytes, sharing the buffer's memory (zero-copy)
//   - error: errs.ErrOutOfBounds if the span exceeds the buffer or the
//     element width is negative, errs.ErrOffsetOverflow if the span
//     arithmetic exceeds the offset range
func (v Vector) Slice(buf []byte, elemSize int) ([]byte, error) {
	if elemSize < 0 {
		return nil, errs.ErrOutOfBounds
	}

	n, err := v.Len(buf)
	if err != nil {
		return nil, err
	}

	start := int64(v) + format.LenSize
	end := start + int64(n)*int64(elemSize)
	if end > math.MaxUint32 {
		return nil, errs.ErrOffsetOverflow
	}
	if end > int64(len(buf)) {
		return nil, errs.ErrOutOfBounds
	}

	return buf[start:end], nil
}

// Len reads the content byte count, excluding the trailing NUL.
func (s String) Len(buf []byte) (format.Len, error) {
	return ReadScalar[format.Len](buf, int(s))
}

// Bytes returns the raw content bytes without UTF-8 validation.
func (s String) Bytes(buf []byte) ([]byte, error) {
	return Vector(s).Slice(buf, 1)
}

// Str returns the string content as a zero-copy view into the buffer.
//
// Returns:
//   - string: Content view; valid as long as the buffer is
//   - error: errs.ErrInvalidUTF8 if the content fails UTF-8 validation,
//     errs.ErrOutOfBounds if the content span exceeds the buffer
func (s String) Str(buf []byte) (string, error) {
	b, err := s.Bytes(buf)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", errs.ErrInvalidUTF8
	}

	return unsafe.String(unsafe.SliceData(b), len(b)), nil
}

// VTableBytesLen reads the size of the vtable in bytes, including the two
// head fields.
func (vt VTable) VTableBytesLen(buf []byte) (format.VOffset, error) {
	return ReadScalar[format.VOffset](buf, int(vt))
}

// TableBytesLen reads the size of the associated table in bytes, including
// its vtable offset field.
func (vt VTable) TableBytesLen(buf []byte) (format.VOffset, error) {
	return ReadScalar[format.VOffset](buf, int(vt)+format.VOffsetSize)
}

// FieldOffset reads the slot for the given field index (0 is the first field
// declared in the schema).
//
// A zero result means the field is absent in the table instance. An index at
// or beyond the declared slot count also yields zero rather than an error,
// which is what lets newer schemas read older buffers and vice versa.
func (vt VTable) FieldOffset(buf []byte, field int) (format.VOffset, error) {
	vlen, err := vt.VTableBytesLen(buf)
	if err != nil {
		return 0, err
	}

	slot := format.VTableHeadSize + field*format.VOffsetSize
	if field < 0 || slot+format.VOffsetSize > int(vlen) {
		return 0, nil
	}

	return ReadScalar[format.VOffset](buf, int(vt)+slot)
}

// VTable seeks the table's vtable position via the backward SOffset stored
// at the table's own position.
func (t Table) VTable(buf []byte) (VTable, error) {
	next, err := SeekSOffset(buf, int(t))

	return VTable(next), err
}

// FieldPosition locates the field's raw value (or the forward offset to its
// nested value) inside the table.
//
// Returns:
//   - int: Byte position of the field, table position + slot value
//   - bool: false when the field is absent (zero slot or index beyond the
//     vtable); absence is a successful outcome, callers apply defaults
//   - error: Seek or slot read failures
func (t Table) FieldPosition(buf []byte, field int) (int, bool, error) {
	vt, err := t.VTable(buf)
	if err != nil {
		return 0, false, err
	}

	off, err := vt.FieldOffset(buf, field)
	if err != nil || off == 0 {
		return 0, false, err
	}

	return int(t) + int(off), true, nil
}
