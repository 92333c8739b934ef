package encoding

import "github.com/go-bcif/bcif/endian"

// Encoding is the sum of the seven transform descriptors. Each concrete
// parameter struct below implements it; the pipeline driver dispatches on
// the concrete type with a type switch, and any other implementation falls
// through to its default branch, which returns errs.ErrUnknownEncodingKind
// (see TestDecodeUnknownEncodingKind in pipeline_test.go).
type Encoding interface {
	Kind() Kind
}

// ByteArray reinterprets raw bytes as a typed sequence of Type's width.
// It is always the bottom-most encoding in a stack.
type ByteArray struct {
	Type endian.DataType
}

func (ByteArray) Kind() Kind { return KindByteArray }

// FixedPoint maps an Int32 sequence to a float sequence by dividing each
// element by Factor: out[i] = in[i] / Factor.
type FixedPoint struct {
	Factor  float64
	SrcType endian.DataType // Float32 or Float64
}

func (FixedPoint) Kind() Kind { return KindFixedPoint }

// IntervalQuantization maps an Int32 sequence to a float sequence by
// uniformly discretizing [Min, Max] into NumSteps steps:
// out[i] = Min + (Max-Min)/(NumSteps-1) * in[i].
type IntervalQuantization struct {
	Min, Max float64
	NumSteps int
	SrcType  endian.DataType // Float32 or Float64
}

func (IntervalQuantization) Kind() Kind { return KindIntervalQuantization }

// RunLength expands (value, length) pairs in an Int32 sequence into a flat
// integer sequence of length SrcSize, in SrcType.
type RunLength struct {
	SrcType endian.DataType
	SrcSize int
}

func (RunLength) Kind() Kind { return KindRunLength }

// Delta reconstructs a cumulative sum with starting offset Origin:
// out[0] = in[0] + Origin, out[i] = in[i] + out[i-1].
type Delta struct {
	Origin  int64
	SrcType endian.DataType // signed integer type
}

func (Delta) Kind() Kind { return KindDelta }

// IntegerPacking widens a narrow-int sequence (Int8/Int16 or Uint8/Uint16,
// selected by ByteCount and IsUnsigned) into an Int32 sequence of length
// SrcSize, using saturation tokens as overflow-continuation markers.
type IntegerPacking struct {
	ByteCount  int // 1 or 2
	IsUnsigned bool
	SrcSize    int
}

func (IntegerPacking) Kind() Kind { return KindIntegerPacking }

// StringArray turns the integer index sequence produced by the rest of
// its own stack into a string sequence, using a string pool and an offset
// table that are each independently decoded through the pipeline driver.
type StringArray struct {
	DataEncoding   []Encoding // decodes StringData into the raw pool bytes
	StringData     []byte
	OffsetEncoding []Encoding // decodes Offsets into an integer offset table
	Offsets        []byte
}

func (StringArray) Kind() Kind { return KindStringArray }

// EncodedData is an ordered encoding stack paired with the raw bytes the
// bottom-most encoding consumes.
type EncodedData struct {
	Encodings []Encoding
	Data      []byte
}
