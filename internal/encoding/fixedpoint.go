// Package encoding implements the pure, allocation-minimal transform
// decoders that sit beneath the public encoding package's pipeline driver:
// FixedPoint, IntervalQuantization, RunLength, Delta, IntegerPacking, and
// the index-to-substring half of StringArray.
package encoding

import (
	"fmt"

	"github.com/go-bcif/bcif/endian"
	"github.com/go-bcif/bcif/errs"
)

// DecodeFixedPoint maps an Int32 sequence to a float sequence of srcType
// precision: out[i] = in[i] * (1/factor). The reciprocal is precomputed
// once, preserving the encoder's intent of representing a fixed-precision
// real by its scaled integer.
func DecodeFixedPoint(in endian.NumericSequence, factor float64, srcType endian.DataType) (endian.NumericSequence, error) {
	if in.DataType() != endian.Int32 {
		return nil, fmt.Errorf("%w: FixedPoint requires Int32 input, got %s", errs.ErrMalformedEncoding, in.DataType())
	}
	if factor == 0 {
		return nil, fmt.Errorf("%w: FixedPoint factor must be nonzero", errs.ErrMalformedEncoding)
	}

	n := in.Len()
	inv := 1 / factor

	switch srcType {
	case endian.Float32:
		out := make(endian.Float32Sequence, n)
		for i := range n {
			out[i] = float32(float64(in.Int64At(i)) * inv)
		}

		return out, nil
	case endian.Float64:
		out := make(endian.Float64Sequence, n)
		for i := range n {
			out[i] = float64(in.Int64At(i)) * inv
		}

		return out, nil
	default:
		return nil, fmt.Errorf("%w: FixedPoint srcType must be Float32 or Float64, got %s", errs.ErrUnsupportedType, srcType)
	}
}
