package endian

import (
	"fmt"
	"unsafe"

	"github.com/go-bcif/bcif/errs"
	"github.com/go-bcif/bcif/internal/pool"
)

// NumericSequence is the closed sum of the eight fixed-width typed views a
// raw byte buffer can be reinterpreted as. Every concrete implementation is
// a named slice type in this file.
type NumericSequence interface {
	// Len returns the number of elements in the sequence.
	Len() int
	// DataType returns the element width/kind.
	DataType() DataType
	// Int64At returns the element at i widened (or, for floats, truncated
	// toward zero) to int64.
	Int64At(i int) int64
	// Float64At returns the element at i widened to float64.
	Float64At(i int) float64
}

type Int8Sequence []int8

func (s Int8Sequence) Len() int            { return len(s) }
func (s Int8Sequence) DataType() DataType  { return Int8 }
func (s Int8Sequence) Int64At(i int) int64 { return int64(s[i]) }
func (s Int8Sequence) Float64At(i int) float64 { return float64(s[i]) }

type Int16Sequence []int16

func (s Int16Sequence) Len() int            { return len(s) }
func (s Int16Sequence) DataType() DataType  { return Int16 }
func (s Int16Sequence) Int64At(i int) int64 { return int64(s[i]) }
func (s Int16Sequence) Float64At(i int) float64 { return float64(s[i]) }

type Int32Sequence []int32

func (s Int32Sequence) Len() int            { return len(s) }
func (s Int32Sequence) DataType() DataType  { return Int32 }
func (s Int32Sequence) Int64At(i int) int64 { return int64(s[i]) }
func (s Int32Sequence) Float64At(i int) float64 { return float64(s[i]) }

type Uint8Sequence []uint8

func (s Uint8Sequence) Len() int            { return len(s) }
func (s Uint8Sequence) DataType() DataType  { return Uint8 }
func (s Uint8Sequence) Int64At(i int) int64 { return int64(s[i]) }
func (s Uint8Sequence) Float64At(i int) float64 { return float64(s[i]) }

type Uint16Sequence []uint16

func (s Uint16Sequence) Len() int            { return len(s) }
func (s Uint16Sequence) DataType() DataType  { return Uint16 }
func (s Uint16Sequence) Int64At(i int) int64 { return int64(s[i]) }
func (s Uint16Sequence) Float64At(i int) float64 { return float64(s[i]) }

type Uint32Sequence []uint32

func (s Uint32Sequence) Len() int            { return len(s) }
func (s Uint32Sequence) DataType() DataType  { return Uint32 }
func (s Uint32Sequence) Int64At(i int) int64 { return int64(s[i]) }
func (s Uint32Sequence) Float64At(i int) float64 { return float64(s[i]) }

type Float32Sequence []float32

func (s Float32Sequence) Len() int           { return len(s) }
func (s Float32Sequence) DataType() DataType { return Float32 }
func (s Float32Sequence) Int64At(i int) int64 {
	return int64(s[i]) // truncates toward zero per Go conversion rules
}
func (s Float32Sequence) Float64At(i int) float64 { return float64(s[i]) }

type Float64Sequence []float64

func (s Float64Sequence) Len() int           { return len(s) }
func (s Float64Sequence) DataType() DataType { return Float64 }
func (s Float64Sequence) Int64At(i int) int64 {
	return int64(s[i]) // truncates toward zero per Go conversion rules
}
func (s Float64Sequence) Float64At(i int) float64 { return s[i] }

// Reinterpret turns raw little-endian bytes into a typed NumericSequence.
//
// On a little-endian host, the returned sequence aliases data directly via
// unsafe.Slice with no copy (the Int8/Uint8 cases never need byte-swapping
// and always alias regardless of host order). On a big-endian host, a
// byte-swapped copy is made using a pooled scratch buffer, swapping in
// groups of dtype's width.
//
// Reinterpret fails with errs.ErrUnsupportedType if dtype is not one of the
// eight enumerated widths, and with errs.ErrMalformedEncoding if len(data)
// is not a multiple of dtype's width.
func Reinterpret(data []byte, dtype DataType) (NumericSequence, error) {
	width := dtype.Width()
	if width == 0 {
		return nil, fmt.Errorf("%w: data type code %d", errs.ErrUnsupportedType, dtype)
	}

	if len(data)%width != 0 {
		return nil, fmt.Errorf("%w: byte length %d is not a multiple of width %d for %s",
			errs.ErrMalformedEncoding, len(data), width, dtype)
	}

	n := len(data) / width

	if width == 1 {
		// Int8/Uint8 never need byte-swapping.
		switch dtype {
		case Int8:
			return Int8Sequence(unsafe.Slice((*int8)(unsafe.Pointer(unsafe.SliceData(data))), n)), nil
		case Uint8:
			return Uint8Sequence(data), nil
		}
	}

	src := data
	if IsNativeBigEndian() {
		src = byteSwapCopy(data, width)
	}

	switch dtype {
	case Int16:
		return Int16Sequence(unsafe.Slice((*int16)(unsafe.Pointer(unsafe.SliceData(src))), n)), nil
	case Int32:
		return Int32Sequence(unsafe.Slice((*int32)(unsafe.Pointer(unsafe.SliceData(src))), n)), nil
	case Uint16:
		return Uint16Sequence(unsafe.Slice((*uint16)(unsafe.Pointer(unsafe.SliceData(src))), n)), nil
	case Uint32:
		return Uint32Sequence(unsafe.Slice((*uint32)(unsafe.Pointer(unsafe.SliceData(src))), n)), nil
	case Float32:
		return Float32Sequence(unsafe.Slice((*float32)(unsafe.Pointer(unsafe.SliceData(src))), n)), nil
	case Float64:
		return Float64Sequence(unsafe.Slice((*float64)(unsafe.Pointer(unsafe.SliceData(src))), n)), nil
	default:
		return nil, fmt.Errorf("%w: data type code %d", errs.ErrUnsupportedType, dtype)
	}
}

// byteSwapCopy returns a copy of data with every width-byte group reversed,
// converting little-endian wire bytes into the host's big-endian layout.
//
// The swap is staged into a pooled scratch buffer and then copied into a
// freshly allocated slice, since the result is aliased by a NumericSequence
// for the lifetime of the decoded column while the scratch buffer itself is
// returned to the pool for reuse by the next decode call.
func byteSwapCopy(data []byte, width int) []byte {
	bb := pool.Get()
	defer pool.Put(bb)

	scratch := bb.Extend(len(data))
	for off := 0; off < len(data); off += width {
		group := data[off : off+width]
		dst := scratch[off : off+width]
		for i := range group {
			dst[width-1-i] = group[i]
		}
	}

	out := make([]byte, len(data))
	copy(out, scratch)

	return out
}
