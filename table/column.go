// Package table is the column/category/datablock/file view layer: it
// wraps decoded sequences and optional presence masks into uniform
// row-addressable columns, and organizes them into named categories and
// data blocks.
package table

import (
	"strconv"

	"github.com/go-bcif/bcif/endian"
	"github.com/go-bcif/bcif/format"
)

// Column is the row-addressable accessor contract every decoded column
// satisfies, whether its backing store is numeric or textual and whether
// it carries a presence mask.
type Column interface {
	// Len returns the column's row count.
	Len() int

	// IsDefined reports whether this column was actually materialized
	// from an encoded column (false only for UndefinedColumn).
	IsDefined() bool

	// GetString returns the row's string form. ok is false when the row is
	// not present, when a string column holds a nil entry for the row, or
	// (in strict mode) when r is out of range.
	GetString(r int) (value string, ok bool)

	// GetInteger returns the row's integer form, truncating a numeric
	// store toward zero or parsing a string store; 0 if absent.
	GetInteger(r int) int64

	// GetFloat returns the row's float form, widening a numeric store or
	// parsing a string store; 0 if absent.
	GetFloat(r int) float64

	// StringEquals compares the row against v. hasValue distinguishes a
	// real (possibly empty) string from the caller's null/absent
	// sentinel; see EqualsAbsent for the masked-column "equals-absent"
	// predicate this disambiguates.
	StringEquals(r int, v string, hasValue bool) bool

	// EqualsAbsent reports whether row r is itself absent. It is the
	// explicit predicate the spec's open question about overloading
	// StringEquals with a null sentinel resolves to.
	EqualsAbsent(r int) bool

	// AreValuesEqual compares the underlying stored values of rA and rB.
	// Presence is NOT consulted: two absent rows whose backing value
	// happens to be equal compare equal.
	AreValuesEqual(rA, rB int) bool

	// GetValuePresence returns the row's presence state. Always Present
	// for unmasked columns.
	GetValuePresence(r int) format.Presence
}

// boundsOK reports whether r is usable as a row index into a column of
// length n. In strict mode (the default) it returns false for any
// out-of-range r, letting the caller return a neutral default instead of
// touching the backing slice. In non-strict mode it always returns true,
// deferring to Go's own slice bounds check, which panics on OOB access
// rather than ever reading past the end of the buffer.
func boundsOK(strict bool, r, n int) bool {
	if !strict {
		return true
	}

	return r >= 0 && r < n
}

// formatNumeric renders a numeric sequence element in its canonical
// string form: base-10 integer for integer types, shortest round-trip
// decimal for floats.
func formatNumeric(data endian.NumericSequence, r int) string {
	if data.DataType() == endian.Float32 || data.DataType() == endian.Float64 {
		return strconv.FormatFloat(data.Float64At(r), 'g', -1, 64)
	}

	return strconv.FormatInt(data.Int64At(r), 10)
}

// numericEqual compares the stored values at a and b directly, without
// regard to presence.
func numericEqual(data endian.NumericSequence, a, b int) bool {
	if data.DataType() == endian.Float32 || data.DataType() == endian.Float64 {
		return data.Float64At(a) == data.Float64At(b)
	}

	return data.Int64At(a) == data.Int64At(b)
}
