package encoding

import (
	"fmt"

	"github.com/go-bcif/bcif/endian"
	"github.com/go-bcif/bcif/errs"
)

// intBuilder accumulates int64 values and materializes them as the
// concrete NumericSequence matching dtype. It is shared by RunLength,
// Delta, and IntegerPacking, which all produce integer-typed output.
type intBuilder struct {
	dtype endian.DataType
	vals  []int64
}

func newIntBuilder(dtype endian.DataType, capHint int) (*intBuilder, error) {
	if !dtype.IsInteger() {
		return nil, fmt.Errorf("%w: expected an integer data type, got %s", errs.ErrUnsupportedType, dtype)
	}

	return &intBuilder{dtype: dtype, vals: make([]int64, 0, capHint)}, nil
}

func (b *intBuilder) append(v int64) {
	b.vals = append(b.vals, v)
}

func (b *intBuilder) len() int {
	return len(b.vals)
}

func (b *intBuilder) build() endian.NumericSequence {
	n := len(b.vals)

	switch b.dtype {
	case endian.Int8:
		out := make(endian.Int8Sequence, n)
		for i, v := range b.vals {
			out[i] = int8(v)
		}

		return out
	case endian.Int16:
		out := make(endian.Int16Sequence, n)
		for i, v := range b.vals {
			out[i] = int16(v)
		}

		return out
	case endian.Int32:
		out := make(endian.Int32Sequence, n)
		for i, v := range b.vals {
			out[i] = int32(v)
		}

		return out
	case endian.Uint8:
		out := make(endian.Uint8Sequence, n)
		for i, v := range b.vals {
			out[i] = uint8(v)
		}

		return out
	case endian.Uint16:
		out := make(endian.Uint16Sequence, n)
		for i, v := range b.vals {
			out[i] = uint16(v)
		}

		return out
	case endian.Uint32:
		out := make(endian.Uint32Sequence, n)
		for i, v := range b.vals {
			out[i] = uint32(v)
		}

		return out
	default:
		// unreachable: newIntBuilder rejects non-integer dtypes
		return nil
	}
}
