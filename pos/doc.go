// Package pos implements offset navigation over a blockbuf byte region:
// typed positions for the four referent kinds (table, vtable, vector,
// string), the forward/backward seek operations that derive them, and
// bounds-checked little-endian scalar reads.
//
// A position is a plain byte offset into the buffer, typed by what it points
// at. Positions are copyable values ordered by numeric offset; deriving a new
// position never mutates the buffer or any other position, so any number of
// goroutines may traverse one buffer concurrently.
//
// The offset direction is a wire invariant, not a convention: forward
// references (root, nested tables, vectors, strings) store the distance to
// add to the current position, while the table-to-vtable reference stores
// the distance to subtract. Every operation validates its reads against the
// buffer bounds and reports errs.ErrOutOfBounds or errs.ErrOffsetOverflow
// instead of clamping, since this package is the trust boundary for
// untrusted buffers.
package pos
