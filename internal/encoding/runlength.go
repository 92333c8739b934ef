package encoding

import (
	"fmt"

	"github.com/go-bcif/bcif/endian"
	"github.com/go-bcif/bcif/errs"
)

// DecodeRunLength expands an Int32 sequence of (value, length) pairs into
// a flat integer sequence of length srcSize in srcType. The pairs are
// emitted in order; the total emitted count must equal srcSize exactly.
func DecodeRunLength(in endian.NumericSequence, srcType endian.DataType, srcSize int) (endian.NumericSequence, error) {
	if in.DataType() != endian.Int32 {
		return nil, fmt.Errorf("%w: RunLength requires Int32 input, got %s", errs.ErrMalformedEncoding, in.DataType())
	}
	if in.Len()%2 != 0 {
		return nil, fmt.Errorf("%w: RunLength input length %d is not even", errs.ErrMalformedEncoding, in.Len())
	}

	builder, err := newIntBuilder(srcType, srcSize)
	if err != nil {
		return nil, err
	}

	for i := 0; i < in.Len(); i += 2 {
		value := in.Int64At(i)
		length := in.Int64At(i + 1)

		if length < 0 {
			return nil, fmt.Errorf("%w: RunLength pair has negative length %d", errs.ErrMalformedEncoding, length)
		}

		for range length {
			if builder.len() >= srcSize {
				return nil, fmt.Errorf("%w: RunLength output exceeds srcSize %d", errs.ErrMalformedEncoding, srcSize)
			}
			builder.append(value)
		}
	}

	if builder.len() != srcSize {
		return nil, fmt.Errorf("%w: RunLength produced %d values, want srcSize %d", errs.ErrMalformedEncoding, builder.len(), srcSize)
	}

	return builder.build(), nil
}
