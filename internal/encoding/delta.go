package encoding

import (
	"fmt"

	"github.com/go-bcif/bcif/endian"
	"github.com/go-bcif/bcif/errs"
)

// DecodeDelta reconstructs a cumulative sum with starting offset origin:
// out[0] = in[0] + origin, out[i] = in[i] + out[i-1] for i >= 1. An empty
// input yields an empty output. Overflow wraps in srcType; the encoder is
// assumed to have picked a wide enough target type.
func DecodeDelta(in endian.NumericSequence, origin int64, srcType endian.DataType) (endian.NumericSequence, error) {
	if !in.DataType().IsInteger() {
		return nil, fmt.Errorf("%w: Delta requires an integer input, got %s", errs.ErrMalformedEncoding, in.DataType())
	}

	builder, err := newIntBuilder(srcType, in.Len())
	if err != nil {
		return nil, err
	}

	var running int64
	for i := range in.Len() {
		if i == 0 {
			running = wrapTo(srcType, in.Int64At(i)+origin)
		} else {
			running = wrapTo(srcType, in.Int64At(i)+running)
		}
		builder.append(running)
	}

	return builder.build(), nil
}

// wrapTo truncates v to srcType's width using Go's defined wraparound
// integer conversion semantics, then widens back to int64 so subsequent
// accumulation continues correctly in the narrower type.
func wrapTo(srcType endian.DataType, v int64) int64 {
	switch srcType {
	case endian.Int8:
		return int64(int8(v))
	case endian.Int16:
		return int64(int16(v))
	case endian.Int32:
		return int64(int32(v))
	case endian.Uint8:
		return int64(uint8(v))
	case endian.Uint16:
		return int64(uint16(v))
	case endian.Uint32:
		return int64(uint32(v))
	default:
		return v
	}
}
