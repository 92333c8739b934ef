package encoding

import "github.com/go-bcif/bcif/endian"

// Sequence is the result of running the pipeline driver: either a numeric
// typed sequence or a string sequence. It is a closed sum of NumericSeq and
// StringSeq.
type Sequence interface {
	isSequence()
	Len() int
}

// NumericSeq wraps an endian.NumericSequence so it satisfies Sequence.
type NumericSeq struct {
	endian.NumericSequence
}

func (NumericSeq) isSequence() {}

// Len is re-declared (rather than promoted) so NumericSeq satisfies
// Sequence even if the embedded interface is nil-checked separately.
func (s NumericSeq) Len() int { return s.NumericSequence.Len() }

// StringSeq is a decoded string sequence; a nil element means the row is
// absent (the StringArray transform emits nil for a negative index).
type StringSeq []*string

func (StringSeq) isSequence() {}

func (s StringSeq) Len() int { return len(s) }
