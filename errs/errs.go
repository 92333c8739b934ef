// Package errs defines the sentinel errors shared across the bcif decoder
// packages. Callers should use errors.Is against these values rather than
// comparing error strings.
package errs

import "errors"

var (
	// ErrUnsupportedType is returned when a ByteArray encoding cites a
	// data-type code outside the eight enumerated widths, or when a
	// transform's srcType is not a type that transform can produce. Column
	// accessors never return it: the table package has no typed-array
	// accessor.
	ErrUnsupportedType = errors.New("bcif: unsupported data type")

	// ErrMalformedEncoding is returned when a transform's structural
	// precondition fails: a RunLength output length mismatch, an
	// IntervalQuantization with numSteps < 2, a short IntegerPacking
	// input, and similar violations.
	ErrMalformedEncoding = errors.New("bcif: malformed encoding")

	// ErrUnknownEncodingKind is returned when the pipeline driver
	// encounters an encoding descriptor whose kind is none of the seven
	// recognized kinds.
	ErrUnknownEncodingKind = errors.New("bcif: unknown encoding kind")
)
