package endian

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-bcif/bcif/errs"
)

func TestReinterpretByteArray_Int16(t *testing.T) {
	require := require.New(t)

	// Scenario 7: ByteArray with Int16 on bytes [0x34,0x12, 0xFF,0xFF]
	// yields [0x1234, -1] on both little- and big-endian hosts.
	data := []byte{0x34, 0x12, 0xFF, 0xFF}

	seq, err := Reinterpret(data, Int16)
	require.NoError(err)
	require.Equal(2, seq.Len())
	require.Equal(int64(0x1234), seq.Int64At(0))
	require.Equal(int64(-1), seq.Int64At(1))
}

func TestReinterpretAllWidths(t *testing.T) {
	require := require.New(t)

	t.Run("Int8", func(t *testing.T) {
		seq, err := Reinterpret([]byte{0x01, 0xFF}, Int8)
		require.NoError(err)
		require.Equal(int64(1), seq.Int64At(0))
		require.Equal(int64(-1), seq.Int64At(1))
	})

	t.Run("Uint8", func(t *testing.T) {
		seq, err := Reinterpret([]byte{0x01, 0xFF}, Uint8)
		require.NoError(err)
		require.Equal(int64(1), seq.Int64At(0))
		require.Equal(int64(255), seq.Int64At(1))
	})

	t.Run("Uint16", func(t *testing.T) {
		seq, err := Reinterpret([]byte{0xFF, 0xFF}, Uint16)
		require.NoError(err)
		require.Equal(int64(65535), seq.Int64At(0))
	})

	t.Run("Int32", func(t *testing.T) {
		seq, err := Reinterpret([]byte{0xFF, 0xFF, 0xFF, 0xFF}, Int32)
		require.NoError(err)
		require.Equal(int64(-1), seq.Int64At(0))
	})

	t.Run("Uint32", func(t *testing.T) {
		seq, err := Reinterpret([]byte{0x01, 0x00, 0x00, 0x00}, Uint32)
		require.NoError(err)
		require.Equal(int64(1), seq.Int64At(0))
	})

	t.Run("Float32", func(t *testing.T) {
		// 1.5 as IEEE-754 float32 little-endian.
		seq, err := Reinterpret([]byte{0x00, 0x00, 0xC0, 0x3F}, Float32)
		require.NoError(err)
		require.InDelta(1.5, seq.Float64At(0), 1e-6)
	})

	t.Run("Float64", func(t *testing.T) {
		// 1.5 as IEEE-754 float64 little-endian.
		seq, err := Reinterpret([]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xF8, 0x3F}, Float64)
		require.NoError(err)
		require.InDelta(1.5, seq.Float64At(0), 1e-12)
	})
}

func TestReinterpretUnsupportedType(t *testing.T) {
	require := require.New(t)

	_, err := Reinterpret([]byte{1, 2, 3, 4}, DataType(99))
	require.ErrorIs(err, errs.ErrUnsupportedType)
}

func TestReinterpretMisalignedLength(t *testing.T) {
	require := require.New(t)

	_, err := Reinterpret([]byte{1, 2, 3}, Int32)
	require.ErrorIs(err, errs.ErrMalformedEncoding)
}

func TestByteSwapCopyRoundTrip(t *testing.T) {
	require := require.New(t)

	data := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}
	swapped := byteSwapCopy(data, 4)
	require.Equal([]byte{0x04, 0x03, 0x02, 0x01, 0x08, 0x07, 0x06, 0x05}, swapped)

	// Swapping twice restores the original layout.
	require.Equal(data, byteSwapCopy(swapped, 4))
}

func TestFloat64SequenceTruncation(t *testing.T) {
	require := require.New(t)

	seq := Float64Sequence{3.9, -3.9}
	require.Equal(int64(3), seq.Int64At(0))
	require.Equal(int64(-3), seq.Int64At(1))
}
