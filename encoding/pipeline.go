package encoding

import (
	"fmt"

	"github.com/go-bcif/bcif/endian"
	"github.com/go-bcif/bcif/errs"
	ienc "github.com/go-bcif/bcif/internal/encoding"
)

// Decode runs the pipeline driver over ed: starting from ed.Data, it
// applies each encoding in ed.Encodings in reverse order. The encoding
// list, as persisted, describes transforms in application (encode)
// order; decoding inverts them by walking the stack from the bottom
// (len(encodings)-1, always a ByteArray) back up to index 0.
func Decode(ed EncodedData) (Sequence, error) {
	if len(ed.Encodings) == 0 {
		return nil, fmt.Errorf("%w: encoding stack is empty", errs.ErrMalformedEncoding)
	}

	var current Sequence
	for i := len(ed.Encodings) - 1; i >= 0; i-- {
		next, err := decodeStep(ed.Data, current, ed.Encodings[i])
		if err != nil {
			return nil, err
		}
		current = next
	}

	return current, nil
}

func decodeStep(raw []byte, current Sequence, enc Encoding) (Sequence, error) {
	switch e := enc.(type) {
	case ByteArray:
		seq, err := endian.Reinterpret(raw, e.Type)
		if err != nil {
			return nil, err
		}

		return NumericSeq{seq}, nil

	case FixedPoint:
		ns, err := asNumeric(current, "FixedPoint")
		if err != nil {
			return nil, err
		}
		out, err := ienc.DecodeFixedPoint(ns, e.Factor, e.SrcType)
		if err != nil {
			return nil, err
		}

		return NumericSeq{out}, nil

	case IntervalQuantization:
		ns, err := asNumeric(current, "IntervalQuantization")
		if err != nil {
			return nil, err
		}
		out, err := ienc.DecodeIntervalQuantization(ns, e.Min, e.Max, e.NumSteps, e.SrcType)
		if err != nil {
			return nil, err
		}

		return NumericSeq{out}, nil

	case RunLength:
		ns, err := asNumeric(current, "RunLength")
		if err != nil {
			return nil, err
		}
		out, err := ienc.DecodeRunLength(ns, e.SrcType, e.SrcSize)
		if err != nil {
			return nil, err
		}

		return NumericSeq{out}, nil

	case Delta:
		ns, err := asNumeric(current, "Delta")
		if err != nil {
			return nil, err
		}
		out, err := ienc.DecodeDelta(ns, e.Origin, e.SrcType)
		if err != nil {
			return nil, err
		}

		return NumericSeq{out}, nil

	case IntegerPacking:
		ns, err := asNumeric(current, "IntegerPacking")
		if err != nil {
			return nil, err
		}
		out, err := ienc.DecodeIntegerPacking(ns, e.ByteCount, e.IsUnsigned, e.SrcSize)
		if err != nil {
			return nil, err
		}

		return NumericSeq{out}, nil

	case StringArray:
		return decodeStringArrayStep(current, e)

	default:
		return nil, fmt.Errorf("%w: %T", errs.ErrUnknownEncodingKind, enc)
	}
}

func asNumeric(s Sequence, opName string) (endian.NumericSequence, error) {
	ns, ok := s.(NumericSeq)
	if !ok {
		return nil, fmt.Errorf("%w: %s requires a numeric sequence beneath it in the stack", errs.ErrMalformedEncoding, opName)
	}

	return ns.NumericSequence, nil
}

func decodeStringArrayStep(current Sequence, e StringArray) (Sequence, error) {
	indices, err := asNumeric(current, "StringArray")
	if err != nil {
		return nil, err
	}

	poolSeq, err := Decode(EncodedData{Encodings: e.DataEncoding, Data: e.StringData})
	if err != nil {
		return nil, err
	}
	poolNumeric, err := asNumeric(poolSeq, "StringArray.DataEncoding")
	if err != nil {
		return nil, err
	}

	offsetSeq, err := Decode(EncodedData{Encodings: e.OffsetEncoding, Data: e.Offsets})
	if err != nil {
		return nil, err
	}
	offsetNumeric, err := asNumeric(offsetSeq, "StringArray.OffsetEncoding")
	if err != nil {
		return nil, err
	}

	offsets := make([]int64, offsetNumeric.Len())
	for i := range offsets {
		offsets[i] = offsetNumeric.Int64At(i)
	}

	strs, err := ienc.DecodeStringArray(indices, numericToBytes(poolNumeric), offsets)
	if err != nil {
		return nil, err
	}

	return StringSeq(strs), nil
}

// numericToBytes extracts the raw byte form of a Uint8/Int8 sequence, the
// shape a well-formed StringArray.DataEncoding always decodes to.
func numericToBytes(seq endian.NumericSequence) []byte {
	switch b := seq.(type) {
	case endian.Uint8Sequence:
		return []byte(b)
	case endian.Int8Sequence:
		out := make([]byte, len(b))
		for i, v := range b {
			out[i] = byte(v)
		}

		return out
	default:
		out := make([]byte, seq.Len())
		for i := range out {
			out[i] = byte(seq.Int64At(i))
		}

		return out
	}
}
