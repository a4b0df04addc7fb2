package format

// Offset kinds used by the wire layout. All multi-byte values in a buffer
// are little-endian.
type (
	// UOffset is an unsigned forward reference: the distance added to the
	// current position to reach the referent (buffer start to root table,
	// table field to nested table/vector/string, vector element to table).
	UOffset uint32
	// SOffset is a signed backward reference, used only for table to vtable.
	// The stored value is subtracted from the current position.
	SOffset int32
	// VOffset is the narrow offset used inside vtables for the two size
	// fields and the per-field slots.
	VOffset uint16
	// Len is the element count prefixing vectors and strings.
	Len uint32
)

// Byte widths of the offset kinds. All layout arithmetic in the module goes
// through these constants.
const (
	UOffsetSize = 4
	SOffsetSize = 4
	VOffsetSize = 2
	LenSize     = 4

	// VTableHeadSize is the size of the two VOffset fields (vtable byte
	// length, table byte length) heading every vtable. Field slots start
	// right after the head.
	VTableHeadSize = 2 * VOffsetSize
)

// CompressionType identifies the codec applied to a buffer at rest.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
