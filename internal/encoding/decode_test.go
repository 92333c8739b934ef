package encoding

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-bcif/bcif/endian"
	"github.com/go-bcif/bcif/errs"
)

func TestDecodeRunLength(t *testing.T) {
	require := require.New(t)

	// Scenario 1: {RunLength, srcType=Int32, srcSize=5} over [7,3, 2,2] -> [7,7,7,2,2].
	in := endian.Int32Sequence{7, 3, 2, 2}
	out, err := DecodeRunLength(in, endian.Int32, 5)
	require.NoError(err)
	require.Equal([]int64{7, 7, 7, 2, 2}, toInt64Slice(out))
}

func TestDecodeRunLengthMismatch(t *testing.T) {
	require := require.New(t)

	in := endian.Int32Sequence{7, 3, 2, 2}
	_, err := DecodeRunLength(in, endian.Int32, 4)
	require.ErrorIs(err, errs.ErrMalformedEncoding)
}

func TestDecodeDelta(t *testing.T) {
	require := require.New(t)

	// Scenario 2: {Delta, origin=10, srcType=Int32} over [1,2,3,-1] -> [11,13,16,15].
	in := endian.Int32Sequence{1, 2, 3, -1}
	out, err := DecodeDelta(in, 10, endian.Int32)
	require.NoError(err)
	require.Equal([]int64{11, 13, 16, 15}, toInt64Slice(out))
}

func TestDecodeDeltaEmpty(t *testing.T) {
	require := require.New(t)

	out, err := DecodeDelta(endian.Int32Sequence{}, 5, endian.Int32)
	require.NoError(err)
	require.Equal(0, out.Len())
}

func TestDecodeIntegerPackingSigned1Byte(t *testing.T) {
	require := require.New(t)

	// Scenario 3: Int8 [127,127,1,-128,-1,5], srcSize=3 -> Int32 [255,-129,5].
	in := endian.Int8Sequence{127, 127, 1, -128, -1, 5}
	out, err := DecodeIntegerPacking(in, 1, false, 3)
	require.NoError(err)
	require.Equal([]int64{255, -129, 5}, toInt64Slice(out))
}

func TestDecodeIntegerPackingUnsigned1Byte(t *testing.T) {
	require := require.New(t)

	in := endian.Uint8Sequence{255, 255, 10}
	out, err := DecodeIntegerPacking(in, 1, true, 1)
	require.NoError(err)
	require.Equal([]int64{520}, toInt64Slice(out))
}

func TestDecodeIntegerPackingShortInput(t *testing.T) {
	require := require.New(t)

	in := endian.Int8Sequence{127, 127}
	_, err := DecodeIntegerPacking(in, 1, false, 1)
	require.ErrorIs(err, errs.ErrMalformedEncoding)
}

func TestDecodeFixedPoint(t *testing.T) {
	require := require.New(t)

	// Scenario 4: factor=1000, Int32 [1500,2500,3140] -> Float32 [1.5,2.5,3.14].
	in := endian.Int32Sequence{1500, 2500, 3140}
	out, err := DecodeFixedPoint(in, 1000, endian.Float32)
	require.NoError(err)
	require.InDelta(1.5, out.Float64At(0), 1e-4)
	require.InDelta(2.5, out.Float64At(1), 1e-4)
	require.InDelta(3.14, out.Float64At(2), 1e-4)
}

func TestDecodeFixedPointZeroFactor(t *testing.T) {
	require := require.New(t)

	_, err := DecodeFixedPoint(endian.Int32Sequence{1}, 0, endian.Float64)
	require.ErrorIs(err, errs.ErrMalformedEncoding)
}

func TestDecodeIntervalQuantization(t *testing.T) {
	require := require.New(t)

	// Scenario 5: min=0, max=1, numSteps=5, Int32 [0,2,4] -> [0.0, 0.5, 1.0].
	in := endian.Int32Sequence{0, 2, 4}
	out, err := DecodeIntervalQuantization(in, 0.0, 1.0, 5, endian.Float64)
	require.NoError(err)
	require.InDelta(0.0, out.Float64At(0), 1e-9)
	require.InDelta(0.5, out.Float64At(1), 1e-9)
	require.InDelta(1.0, out.Float64At(2), 1e-9)
}

func TestDecodeIntervalQuantizationNumStepsTooSmall(t *testing.T) {
	require := require.New(t)

	_, err := DecodeIntervalQuantization(endian.Int32Sequence{0}, 0, 1, 1, endian.Float64)
	require.ErrorIs(err, errs.ErrMalformedEncoding)
}

func TestDecodeStringArray(t *testing.T) {
	require := require.New(t)

	// Scenario 6: stringData="foobar", offsets=[0,3,6], indices=[0,1,0,-1,1]
	// over rowCount=5 -> ["foo","bar","foo",null,"bar"].
	pool := []byte("foobar")
	offsets := []int64{0, 3, 6}
	indices := endian.Int32Sequence{0, 1, 0, -1, 1}

	out, err := DecodeStringArray(indices, pool, offsets)
	require.NoError(err)
	require.Len(out, 5)
	require.Equal("foo", *out[0])
	require.Equal("bar", *out[1])
	require.Equal("foo", *out[2])
	require.Nil(out[3])
	require.Equal("bar", *out[4])

	// Interning: repeated indices share the same pointer.
	require.Same(out[0], out[2])
	require.Same(out[1], out[4])
}

func TestDecodeStringArrayIndexOutOfRange(t *testing.T) {
	require := require.New(t)

	pool := []byte("foobar")
	offsets := []int64{0, 3, 6}
	indices := endian.Int32Sequence{5}

	_, err := DecodeStringArray(indices, pool, offsets)
	require.ErrorIs(err, errs.ErrMalformedEncoding)
}

func toInt64Slice(seq endian.NumericSequence) []int64 {
	out := make([]int64, seq.Len())
	for i := range out {
		out[i] = seq.Int64At(i)
	}

	return out
}
