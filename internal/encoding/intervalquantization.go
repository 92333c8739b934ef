package encoding

import (
	"fmt"

	"github.com/go-bcif/bcif/endian"
	"github.com/go-bcif/bcif/errs"
)

// DecodeIntervalQuantization maps an Int32 sequence to a float sequence by
// uniformly discretizing [min, max] into numSteps steps:
// step = (max-min)/(numSteps-1); out[i] = min + step*in[i].
//
// numSteps must be >= 2; numSteps < 2 fails with errs.ErrMalformedEncoding.
func DecodeIntervalQuantization(in endian.NumericSequence, min, max float64, numSteps int, srcType endian.DataType) (endian.NumericSequence, error) {
	if in.DataType() != endian.Int32 {
		return nil, fmt.Errorf("%w: IntervalQuantization requires Int32 input, got %s", errs.ErrMalformedEncoding, in.DataType())
	}
	if numSteps < 2 {
		return nil, fmt.Errorf("%w: IntervalQuantization numSteps must be >= 2, got %d", errs.ErrMalformedEncoding, numSteps)
	}

	step := (max - min) / float64(numSteps-1)
	n := in.Len()

	switch srcType {
	case endian.Float32:
		out := make(endian.Float32Sequence, n)
		for i := range n {
			out[i] = float32(min + step*float64(in.Int64At(i)))
		}

		return out, nil
	case endian.Float64:
		out := make(endian.Float64Sequence, n)
		for i := range n {
			out[i] = min + step*float64(in.Int64At(i))
		}

		return out, nil
	default:
		return nil, fmt.Errorf("%w: IntervalQuantization srcType must be Float32 or Float64, got %s", errs.ErrUnsupportedType, srcType)
	}
}
