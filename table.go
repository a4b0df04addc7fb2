package blockbuf

import (
	"github.com/blockbuf/blockbuf/endian"
	"github.com/blockbuf/blockbuf/format"
	"github.com/blockbuf/blockbuf/pos"
)

// Table attaches a buffer to a table position so fields can be fetched
// without threading the buffer through every call. The vtable position is
// resolved once at construction and cached, saving the backward seek on
// every field lookup.
//
// A Table is an immutable view; it is safe to copy and to share between
// goroutines.
type Table struct {
	buf []byte
	pos pos.Table
	vt  pos.VTable
}

// NewTable creates a buffer-attached table at the given position, resolving
// its vtable eagerly.
//
// Returns:
//   - *Table: Table view with cached vtable position
//   - error: Seek failure on a malformed vtable offset
func NewTable(buf []byte, p pos.Table) (*Table, error) {
	vt, err := p.VTable(buf)
	if err != nil {
		return nil, err
	}

	return &Table{buf: buf, pos: p, vt: vt}, nil
}

// Buffer returns the underlying byte region.
func (t *Table) Buffer() []byte { return t.buf }

// Position returns the table position.
func (t *Table) Position() pos.Table { return t.pos }

// VTablePosition returns the cached vtable position.
func (t *Table) VTablePosition() pos.VTable { return t.vt }

// VTableBytesLen reads the vtable size in bytes.
func (t *Table) VTableBytesLen() (format.VOffset, error) {
	return t.vt.VTableBytesLen(t.buf)
}

// TableBytesLen reads the table size in bytes.
func (t *Table) TableBytesLen() (format.VOffset, error) {
	return t.vt.TableBytesLen(t.buf)
}

// FieldOffset reads the vtable slot for the given field index. Zero means
// the field is absent, including when the index is beyond the vtable's
// declared slot count.
func (t *Table) FieldOffset(field int) (format.VOffset, error) {
	return t.vt.FieldOffset(t.buf, field)
}

// FieldPosition locates the field's raw value (or the forward offset to its
// nested value) using the cached vtable.
//
// Returns:
//   - int: Byte position of the field inside the buffer
//   - bool: false when the field is absent
//   - error: Slot read failure
func (t *Table) FieldPosition(field int) (int, bool, error) {
	off, err := t.vt.FieldOffset(t.buf, field)
	if err != nil || off == 0 {
		return 0, false, err
	}

	return int(t.pos) + int(off), true, nil
}

// StringField reads a string field, following the forward offset stored in
// the field slot.
//
// Returns:
//   - string: Zero-copy content view, "" when absent
//   - bool: false when the field is absent
//   - error: Seek, bounds, or UTF-8 validation failure
func (t *Table) StringField(field int) (string, bool, error) {
	p, ok, err := t.FieldPosition(field)
	if err != nil || !ok {
		return "", false, err
	}

	sp, err := pos.ReadString(t.buf, p)
	if err != nil {
		return "", false, err
	}

	s, err := sp.Str(t.buf)
	if err != nil {
		return "", false, err
	}

	return s, true, nil
}

// VectorField reads a vector field, following the forward offset stored in
// the field slot. Wrap the result in NewVector for typed element access.
func (t *Table) VectorField(field int) (pos.Vector, bool, error) {
	p, ok, err := t.FieldPosition(field)
	if err != nil || !ok {
		return 0, false, err
	}

	vp, err := pos.ReadVector(t.buf, p)
	if err != nil {
		return 0, false, err
	}

	return vp, true, nil
}

// TableField reads a nested table field, following the forward offset stored
// in the field slot.
func (t *Table) TableField(field int) (*Table, bool, error) {
	p, ok, err := t.FieldPosition(field)
	if err != nil || !ok {
		return nil, false, err
	}

	tp, err := pos.ReadTable(t.buf, p)
	if err != nil {
		return nil, false, err
	}

	sub, err := NewTable(t.buf, tp)
	if err != nil {
		return nil, false, err
	}

	return sub, true, nil
}

// Field reads a scalar field of type T and converts it to native endian.
//
// Returns:
//   - T: Field value, zero when absent
//   - bool: false when the field is absent
//   - error: Slot read or bounds failure
func Field[T endian.Scalar](t *Table, field int) (T, bool, error) {
	var zero T

	p, ok, err := t.FieldPosition(field)
	if err != nil || !ok {
		return zero, false, err
	}

	v, err := pos.ReadScalar[T](t.buf, p)
	if err != nil {
		return zero, false, err
	}

	return v, true, nil
}

// FieldOrDefault reads a scalar field, substituting def when the field is
// absent. Absence is the normal outcome for fields a writer never set, so
// this is the usual way generated accessors read scalars.
func FieldOrDefault[T endian.Scalar](t *Table, field int, def T) (T, error) {
	v, ok, err := Field[T](t, field)
	if err != nil {
		return def, err
	}
	if !ok {
		return def, nil
	}

	return v, nil
}
