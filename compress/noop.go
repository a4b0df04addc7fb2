package compress

// NoOpCodec passes buffers through unchanged. It is the codec behind
// format.CompressionNone and the baseline for benchmarks.
type NoOpCodec struct{}

var _ Codec = (*NoOpCodec)(nil)

// NewNoOpCodec creates a passthrough codec.
func NewNoOpCodec() NoOpCodec {
	return NoOpCodec{}
}

// Compress returns the input slice as-is, sharing its memory.
func (c NoOpCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input slice as-is, sharing its memory. Callers that
// need an owned region must copy; the other codecs always allocate.
func (c NoOpCodec) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
