package encoding

import (
	"fmt"

	"github.com/go-bcif/bcif/endian"
	"github.com/go-bcif/bcif/errs"
)

// DecodeStringArray maps an integer index sequence to a string sequence
// using a shared string pool and an offset table. A negative index emits
// a nil (absent) string. Repeated indices are interned: the returned
// pointer for a given index is identical across every occurrence within
// this call, avoiding re-slicing the pool.
func DecodeStringArray(indices endian.NumericSequence, pool []byte, offsets []int64) ([]*string, error) {
	n := indices.Len()
	out := make([]*string, n)
	cache := make(map[int64]*string, n)

	for i := range n {
		idx := indices.Int64At(i)
		if idx < 0 {
			continue
		}

		if cached, ok := cache[idx]; ok {
			out[i] = cached

			continue
		}

		if idx+1 >= int64(len(offsets)) {
			return nil, fmt.Errorf("%w: StringArray index %d out of range for offset table of length %d",
				errs.ErrMalformedEncoding, idx, len(offsets))
		}

		start, end := offsets[idx], offsets[idx+1]
		if start < 0 || end > int64(len(pool)) || start > end {
			return nil, fmt.Errorf("%w: StringArray offsets [%d,%d) out of range for pool of length %d",
				errs.ErrMalformedEncoding, start, end, len(pool))
		}

		s := string(pool[start:end])
		cache[idx] = &s
		out[i] = &s
	}

	return out, nil
}
