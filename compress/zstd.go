package compress

// ZstdCodec compresses buffers with Zstandard, trading speed for the best
// ratio of the supported codecs. Suited to archived buffers read back
// infrequently.
//
// Two implementations exist behind build tags: cgo builds use valyala/gozstd
// (the reference C library), pure-Go builds use klauspost/compress/zstd.
// Both produce standard zstd frames and interoperate freely.
type ZstdCodec struct{}

var _ Codec = (*ZstdCodec)(nil)

// NewZstdCodec creates a new Zstd codec.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}
