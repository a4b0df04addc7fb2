// Package compress provides codecs for blockbuf buffers at rest.
//
// The accessor layer itself never allocates or copies: it needs a fully
// formed, contiguous byte region. Buffers stored on disk or shipped over the
// network are often compressed, though, so this package supplies the unwrap
// step that turns a compressed envelope back into the immutable region the
// position accessors navigate. Whole buffers compress well because vtables
// are shared between tables with identical layouts and offsets are small.
//
// Supported algorithms:
//   - None: passthrough (zero-copy)
//   - Zstd: best ratio for archived buffers
//   - S2: balanced ratio and speed
//   - LZ4: fastest decompression for hot paths
//
// All codecs are stateless values and safe for concurrent use; pooled
// encoder and decoder state sits behind sync.Pool.
package compress

import (
	"fmt"

	"github.com/blockbuf/blockbuf/errs"
	"github.com/blockbuf/blockbuf/format"
)

// Compressor compresses a whole buffer.
type Compressor interface {
	// Compress compresses the input and returns a newly allocated result.
	// The input is not modified.
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a whole buffer.
type Decompressor interface {
	// Decompress restores the original buffer from compressed input. The
	// returned slice is newly allocated and owned by the caller, which makes
	// it a valid immutable region to hand to the accessors; the one
	// exception is NoOpCodec, which passes the input through sharing its
	// memory. Corrupted or mismatched input returns an error.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCodec(),
	format.CompressionZstd: NewZstdCodec(),
	format.CompressionS2:   NewS2Codec(),
	format.CompressionLZ4:  NewLZ4Codec(),
}

// GetCodec retrieves the built-in Codec for the given compression type.
//
// Returns:
//   - Codec: Stateless codec instance, safe to share
//   - error: errs.ErrUnsupportedCompression for an unknown type
func GetCodec(ct format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[ct]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedCompression, ct)
}
