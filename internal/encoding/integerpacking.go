package encoding

import (
	"fmt"

	"github.com/go-bcif/bcif/endian"
	"github.com/go-bcif/bcif/errs"
)

// DecodeIntegerPacking widens a narrow-int sequence into an Int32 sequence
// of length srcSize, using saturation tokens as overflow-continuation
// markers. In signed mode (byteCount 1 or 2, Int8/Int16 input) both the
// max and min representable narrow values are continuation tokens; in
// unsigned mode (Uint8/Uint16 input) only the max value is.
//
// The decoder walks the input left to right, accumulating a running sum
// while the current token is a continuation token; the first
// non-continuation token is added to the sum and the accumulated value is
// emitted, then the sum resets. Output length must equal srcSize exactly.
func DecodeIntegerPacking(in endian.NumericSequence, byteCount int, isUnsigned bool, srcSize int) (endian.NumericSequence, error) {
	wantType, upper, lower, hasLower, err := integerPackingParams(byteCount, isUnsigned)
	if err != nil {
		return nil, err
	}

	if in.DataType() != wantType {
		return nil, fmt.Errorf("%w: IntegerPacking expects %s input, got %s", errs.ErrMalformedEncoding, wantType, in.DataType())
	}

	builder, err := newIntBuilder(endian.Int32, srcSize)
	if err != nil {
		return nil, err
	}

	var sum int64
	accumulating := false

	for i := range in.Len() {
		token := in.Int64At(i)

		if token == upper || (hasLower && token == lower) {
			sum += token
			accumulating = true

			continue
		}

		sum += token
		if builder.len() >= srcSize {
			return nil, fmt.Errorf("%w: IntegerPacking output exceeds srcSize %d", errs.ErrMalformedEncoding, srcSize)
		}
		builder.append(sum)
		sum = 0
		accumulating = false
	}

	if accumulating {
		return nil, fmt.Errorf("%w: IntegerPacking input ends mid-continuation token", errs.ErrMalformedEncoding)
	}

	if builder.len() != srcSize {
		return nil, fmt.Errorf("%w: IntegerPacking produced %d values, want srcSize %d", errs.ErrMalformedEncoding, builder.len(), srcSize)
	}

	return builder.build(), nil
}

func integerPackingParams(byteCount int, isUnsigned bool) (wantType endian.DataType, upper, lower int64, hasLower bool, err error) {
	switch {
	case isUnsigned && byteCount == 1:
		return endian.Uint8, 0xFF, 0, false, nil
	case isUnsigned && byteCount == 2:
		return endian.Uint16, 0xFFFF, 0, false, nil
	case !isUnsigned && byteCount == 1:
		return endian.Int8, 0x7F, -0x7F - 1, true, nil
	case !isUnsigned && byteCount == 2:
		return endian.Int16, 0x7FFF, -0x7FFF - 1, true, nil
	default:
		return 0, 0, 0, false, fmt.Errorf("%w: IntegerPacking byteCount must be 1 or 2, got %d", errs.ErrMalformedEncoding, byteCount)
	}
}
