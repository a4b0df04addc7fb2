// Package errs defines the sentinel errors shared by all blockbuf packages.
//
// The accessor layer is the trust boundary for untrusted buffers: malformed
// or adversarial input must surface one of these errors instead of reading
// adjacent memory, truncating, or wrapping. An absent table field is not an
// error condition and has no sentinel; absence is reported through the
// ok-result of the field accessors.
package errs

import "errors"

var (
	// ErrOutOfBounds indicates a read, or the result of offset arithmetic,
	// would access bytes outside the buffer.
	ErrOutOfBounds = errors.New("access out of buffer bounds")

	// ErrInvalidUTF8 indicates string content bytes failed UTF-8 validation.
	ErrInvalidUTF8 = errors.New("string content is not valid UTF-8")

	// ErrOffsetOverflow indicates offset arithmetic exceeded the range
	// addressable by the format's 32-bit offsets.
	ErrOffsetOverflow = errors.New("offset arithmetic overflow")

	// ErrUnsupportedCompression indicates an unknown compression type in a
	// buffer-at-rest envelope.
	ErrUnsupportedCompression = errors.New("unsupported compression type")
)
