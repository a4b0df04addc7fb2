package endian

import "unsafe"

// Scalar is the type set of fixed-width wire scalars: booleans, signed and
// unsigned integers of 1, 2, 4 and 8 bytes, and 32/64-bit floats.
//
// Integer-backed enumerations are named types over one of these kernels and
// satisfy the constraint automatically, so declaring
//
//	type Side uint16
//
// gives Side the full conversion capability with no per-enum code: the
// conversion delegates to the backing integer's width.
type Scalar interface {
	~bool | ~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 |
		~int64 | ~uint64 | ~float32 | ~float64
}

// nativeLittle caches the host byte order probe.
var nativeLittle = IsNativeLittleEndian()

// swapBytes reverses the in-memory byte order of v.
func swapBytes[T Scalar](v T) T {
	b := unsafe.Slice((*byte)(unsafe.Pointer(&v)), unsafe.Sizeof(v))
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}

	return v
}

// ToLE converts a native-endian value to its little-endian bit pattern,
// expressed as a value of the same type.
//
// On a little-endian host this is the identity; on a big-endian host the
// bytes are reversed. Single-byte types (and bool) are unaffected either way.
func ToLE[T Scalar](v T) T {
	if nativeLittle {
		return v
	}

	return swapBytes(v)
}

// FromLE converts a little-endian bit pattern back to a native-endian value.
// FromLE(ToLE(x)) == x for every value x of every Scalar type.
func FromLE[T Scalar](v T) T {
	if nativeLittle {
		return v
	}

	return swapBytes(v)
}

// FromLESlice interprets the first sizeof(T) bytes of b, in little-endian
// order, as a native value.
//
// The caller must have validated that the span has the type's width and lies
// within buffer bounds; this function performs no bounds checking. The
// bounds-checked counterpart is pos.ReadScalar.
func FromLESlice[T Scalar](b []byte) T {
	var v T
	copy(unsafe.Slice((*byte)(unsafe.Pointer(&v)), unsafe.Sizeof(v)), b)

	return FromLE(v)
}
