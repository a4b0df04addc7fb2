package endian

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// side is an integer-backed enumeration; it obtains the conversion
// capability purely by being a named type over uint16.
type side uint16

const (
	sideLeft  side = 1
	sideRight side = 2
)

func TestRoundTrip(t *testing.T) {
	require := require.New(t)

	require.Equal(true, FromLE(ToLE(true)))
	require.Equal(false, FromLE(ToLE(false)))
	require.Equal(int8(-5), FromLE(ToLE(int8(-5))))
	require.Equal(uint8(0xAB), FromLE(ToLE(uint8(0xAB))))
	require.Equal(int16(-12345), FromLE(ToLE(int16(-12345))))
	require.Equal(uint16(0xBEEF), FromLE(ToLE(uint16(0xBEEF))))
	require.Equal(int32(-123456789), FromLE(ToLE(int32(-123456789))))
	require.Equal(uint32(0xDEADBEEF), FromLE(ToLE(uint32(0xDEADBEEF))))
	require.Equal(int64(math.MinInt64), FromLE(ToLE(int64(math.MinInt64))))
	require.Equal(uint64(0x0102030405060708), FromLE(ToLE(uint64(0x0102030405060708))))
	require.Equal(float32(1.5), FromLE(ToLE(float32(1.5))))
	require.Equal(float64(math.Pi), FromLE(ToLE(math.Pi)))
}

func TestRoundTripEnum(t *testing.T) {
	require.Equal(t, sideLeft, FromLE(ToLE(sideLeft)))
	require.Equal(t, sideRight, FromLE(ToLE(sideRight)))
}

func TestToLEOnLittleEndianHost(t *testing.T) {
	if !IsNativeLittleEndian() {
		t.Skip("host is big-endian")
	}

	// On an LE host the conversions are the identity.
	require.Equal(t, uint16(0x0102), ToLE(uint16(0x0102)))
	require.Equal(t, uint32(0x01020304), ToLE(uint32(0x01020304)))
	require.Equal(t, uint64(0x0102030405060708), ToLE(uint64(0x0102030405060708)))
}

func TestSwapBytes(t *testing.T) {
	// swapBytes is the big-endian-host path of ToLE/FromLE; exercising it
	// directly simulates that host on any platform.
	require := require.New(t)

	require.Equal(uint16(0x0201), swapBytes(uint16(0x0102)))
	require.Equal(uint32(0x04030201), swapBytes(uint32(0x01020304)))
	require.Equal(uint64(0x0807060504030201), swapBytes(uint64(0x0102030405060708)))
	require.Equal(uint8(0xAB), swapBytes(uint8(0xAB)))
	require.Equal(true, swapBytes(true))

	// Involution: swapping twice restores the value for every width.
	require.Equal(int32(-123456789), swapBytes(swapBytes(int32(-123456789))))
	require.Equal(math.Pi, swapBytes(swapBytes(math.Pi)))
}

func TestFromLESlice(t *testing.T) {
	require := require.New(t)

	require.Equal(true, FromLESlice[bool]([]byte{1}))
	require.Equal(false, FromLESlice[bool]([]byte{0}))
	require.Equal(uint8(0x7F), FromLESlice[uint8]([]byte{0x7F}))
	require.Equal(int16(-4), FromLESlice[int16]([]byte{0xFC, 0xFF}))
	require.Equal(uint16(4), FromLESlice[uint16]([]byte{4, 0, 0, 0, 1}))
	require.Equal(uint32(1), FromLESlice[uint32]([]byte{1, 0, 0, 0}))
	require.Equal(int32(-1), FromLESlice[int32]([]byte{0xFF, 0xFF, 0xFF, 0xFF}))
	require.Equal(uint64(0x0102030405060708), FromLESlice[uint64]([]byte{8, 7, 6, 5, 4, 3, 2, 1}))
	require.Equal(float32(1.5), FromLESlice[float32]([]byte{0x00, 0x00, 0xC0, 0x3F}))
	require.Equal(sideRight, FromLESlice[side]([]byte{2, 0}))
}

func TestFromLESliceRoundTrip(t *testing.T) {
	// Encoding a value with the little-endian engine and decoding it with
	// FromLESlice reproduces the value exactly.
	engine := GetLittleEndianEngine()

	b := engine.AppendUint32(nil, 0xDEADBEEF)
	require.Equal(t, uint32(0xDEADBEEF), FromLESlice[uint32](b))

	b = engine.AppendUint64(nil, math.Float64bits(math.Pi))
	require.Equal(t, math.Pi, FromLESlice[float64](b))

	b = engine.AppendUint16(nil, 0xBEEF)
	require.Equal(t, uint16(0xBEEF), FromLESlice[uint16](b))
}
