// Package encoding defines the encoding algebra: the closed set of
// transform descriptors that can be stacked to encode a column, the
// EncodedData record the pipeline driver consumes, and Decode, which
// inverts a stack back to a typed or string sequence.
package encoding

// Kind identifies which of the seven encoding descriptors a given
// Encoding value is.
type Kind uint8

const (
	KindByteArray Kind = iota + 1
	KindFixedPoint
	KindIntervalQuantization
	KindRunLength
	KindDelta
	KindIntegerPacking
	KindStringArray
)

func (k Kind) String() string {
	switch k {
	case KindByteArray:
		return "ByteArray"
	case KindFixedPoint:
		return "FixedPoint"
	case KindIntervalQuantization:
		return "IntervalQuantization"
	case KindRunLength:
		return "RunLength"
	case KindDelta:
		return "Delta"
	case KindIntegerPacking:
		return "IntegerPacking"
	case KindStringArray:
		return "StringArray"
	default:
		return "Unknown"
	}
}
