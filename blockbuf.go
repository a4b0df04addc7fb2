// Package blockbuf provides zero-copy read access to buffers using a
// schema-driven, FlatBuffers-compatible wire layout.
//
// A buffer is an immutable byte region produced by an external builder.
// Instead of deserializing it, blockbuf computes byte positions: the leading
// UOffset reaches the root table, a backward SOffset reaches a table's
// vtable, vtable slots locate individual fields, and forward UOffsets reach
// nested tables, vectors and strings. Fields missing from a buffer (older
// writers, newer schemas, or simply unset) read back as absent, not as
// errors, so schema evolution is safe in both directions.
//
// # Basic Usage
//
// Reading a scalar field from the root table:
//
//	table, err := blockbuf.GetRootTable(buf)
//	if err != nil {
//	    return err
//	}
//	version, ok, err := blockbuf.Field[uint32](table, 0)
//	if err != nil {
//	    return err
//	}
//	if !ok {
//	    version = 1 // field absent, apply the schema default
//	}
//
// Typed accessors generated from a schema sit on top of these primitives;
// this package only guarantees safe, bounds-checked byte-level navigation.
//
// # Package Structure
//
// The pos package holds the position types and seek operations, endian the
// little-endian conversion capability, format the offset kinds and widths,
// and compress the codecs for buffers stored or shipped compressed. This
// package wraps them for the common cases.
//
// # Thread Safety
//
// Every read is a pure function of (buffer, offset); any number of
// goroutines may traverse the same buffer concurrently without
// synchronization.
package blockbuf

import (
	"github.com/blockbuf/blockbuf/compress"
	"github.com/blockbuf/blockbuf/format"
	"github.com/blockbuf/blockbuf/internal/hash"
	"github.com/blockbuf/blockbuf/pos"
)

// GetRootTable resolves the root table reached by the buffer's leading
// forward offset.
//
// Returns:
//   - *Table: Buffer-attached root table with its vtable resolved
//   - error: errs.ErrOutOfBounds or errs.ErrOffsetOverflow on a malformed
//     root or vtable offset
func GetRootTable(buf []byte) (*Table, error) {
	root, err := pos.Root(buf)
	if err != nil {
		return nil, err
	}

	return NewTable(buf, root)
}

// TableID computes the 64-bit xxHash64 identity of a fully-qualified table
// name (for example "Example.Transaction"). Generated code uses these IDs to
// tag table types across schema versions.
func TableID(name string) uint64 {
	return hash.ID(name)
}

// Unwrap decodes a buffer at rest into the immutable byte region handed to
// the accessors. CompressionNone passes the input through without copying.
//
// Returns:
//   - []byte: Decoded buffer, owned by the caller
//   - error: errs.ErrUnsupportedCompression for an unknown type, or the
//     codec's decode error
func Unwrap(data []byte, ct format.CompressionType) ([]byte, error) {
	codec, err := compress.GetCodec(ct)
	if err != nil {
		return nil, err
	}

	return codec.Decompress(data)
}
