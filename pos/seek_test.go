package pos

import (
	"testing"

	"github.com/blockbuf/blockbuf/errs"
	"github.com/stretchr/testify/require"
)

func TestSeekUOffset(t *testing.T) {
	t.Run("Forward reference adds the stored value", func(t *testing.T) {
		next, err := SeekUOffset([]byte{0, 4, 0, 0, 0}, 1)
		require.NoError(t, err)
		require.Equal(t, 5, next)
	})

	t.Run("Zero offset stays in place", func(t *testing.T) {
		next, err := SeekUOffset([]byte{0, 0, 0, 0}, 0)
		require.NoError(t, err)
		require.Equal(t, 0, next)
	})

	t.Run("Read beyond buffer fails", func(t *testing.T) {
		_, err := SeekUOffset([]byte{1, 0, 0}, 0)
		require.ErrorIs(t, err, errs.ErrOutOfBounds)

		_, err = SeekUOffset([]byte{1, 0, 0, 0}, 2)
		require.ErrorIs(t, err, errs.ErrOutOfBounds)

		_, err = SeekUOffset([]byte{1, 0, 0, 0}, -1)
		require.ErrorIs(t, err, errs.ErrOutOfBounds)
	})

	t.Run("Result beyond buffer fails", func(t *testing.T) {
		// position 0 + stored 100 exceeds the 4-byte buffer
		_, err := SeekUOffset([]byte{100, 0, 0, 0}, 0)
		require.ErrorIs(t, err, errs.ErrOutOfBounds)
	})

	t.Run("Result beyond offset range fails", func(t *testing.T) {
		// the maximum stored offset at position 4 lands past the 32-bit
		// offset range, which is overflow rather than a bounds miss
		buf := []byte{0, 0, 0, 0, 0xFF, 0xFF, 0xFF, 0xFF}
		_, err := SeekUOffset(buf, 4)
		require.ErrorIs(t, err, errs.ErrOffsetOverflow)
	})
}

func TestSeekSOffset(t *testing.T) {
	t.Run("Backward reference subtracts the stored value", func(t *testing.T) {
		next, err := SeekSOffset([]byte{0, 1, 0, 0, 0}, 1)
		require.NoError(t, err)
		require.Equal(t, 0, next)
	})

	t.Run("Negative stored value moves forward", func(t *testing.T) {
		// -4 stored at position 0 lands at 4
		next, err := SeekSOffset([]byte{252, 255, 255, 255}, 0)
		require.NoError(t, err)
		require.Equal(t, 4, next)
	})

	t.Run("Result before buffer start fails", func(t *testing.T) {
		// stored 2 > position 1 would land at -1
		_, err := SeekSOffset([]byte{0, 2, 0, 0, 0}, 1)
		require.ErrorIs(t, err, errs.ErrOutOfBounds)
	})

	t.Run("Result beyond buffer fails", func(t *testing.T) {
		// -100 stored at position 0 lands far past the end
		_, err := SeekSOffset([]byte{156, 255, 255, 255}, 0)
		require.ErrorIs(t, err, errs.ErrOutOfBounds)
	})

	t.Run("Read beyond buffer fails", func(t *testing.T) {
		_, err := SeekSOffset([]byte{0, 0}, 0)
		require.ErrorIs(t, err, errs.ErrOutOfBounds)
	})
}

func TestReadScalar(t *testing.T) {
	t.Run("Reads little-endian at position", func(t *testing.T) {
		v, err := ReadScalar[uint16]([]byte{4, 0, 0, 0, 1}, 0)
		require.NoError(t, err)
		require.Equal(t, uint16(4), v)

		u, err := ReadScalar[uint32]([]byte{0, 1, 0, 0, 0}, 1)
		require.NoError(t, err)
		require.Equal(t, uint32(1), u)

		b, err := ReadScalar[bool]([]byte{0, 1}, 1)
		require.NoError(t, err)
		require.Equal(t, true, b)
	})

	t.Run("Width must fit inside buffer", func(t *testing.T) {
		_, err := ReadScalar[uint32]([]byte{1, 2, 3}, 0)
		require.ErrorIs(t, err, errs.ErrOutOfBounds)

		_, err = ReadScalar[uint16]([]byte{1, 2, 3}, 2)
		require.ErrorIs(t, err, errs.ErrOutOfBounds)
	})
}
