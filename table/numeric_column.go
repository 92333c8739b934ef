package table

import (
	"github.com/go-bcif/bcif/endian"
	"github.com/go-bcif/bcif/format"
	"github.com/go-bcif/bcif/internal/numparse"
)

// NumericColumn is an unmasked numeric column: every row is present.
type NumericColumn struct {
	data   endian.NumericSequence
	strict bool
}

func newNumericColumn(data endian.NumericSequence, strict bool) *NumericColumn {
	return &NumericColumn{data: data, strict: strict}
}

func (c *NumericColumn) Len() int      { return c.data.Len() }
func (c *NumericColumn) IsDefined() bool { return true }

func (c *NumericColumn) GetString(r int) (string, bool) {
	if !boundsOK(c.strict, r, c.data.Len()) {
		return "", false
	}

	return formatNumeric(c.data, r), true
}

func (c *NumericColumn) GetInteger(r int) int64 {
	if !boundsOK(c.strict, r, c.data.Len()) {
		return 0
	}

	return c.data.Int64At(r)
}

func (c *NumericColumn) GetFloat(r int) float64 {
	if !boundsOK(c.strict, r, c.data.Len()) {
		return 0
	}

	return c.data.Float64At(r)
}

func (c *NumericColumn) StringEquals(r int, v string, hasValue bool) bool {
	if !hasValue {
		return false
	}
	if !boundsOK(c.strict, r, c.data.Len()) {
		return false
	}

	want := numparse.ParseFloat(v, 0, len(v))

	return c.data.Float64At(r) == want
}

func (c *NumericColumn) EqualsAbsent(r int) bool { return false }

func (c *NumericColumn) AreValuesEqual(rA, rB int) bool {
	if !boundsOK(c.strict, rA, c.data.Len()) || !boundsOK(c.strict, rB, c.data.Len()) {
		return false
	}

	return numericEqual(c.data, rA, rB)
}

func (c *NumericColumn) GetValuePresence(r int) format.Presence { return format.Present }

// MaskedNumericColumn is a numeric column with a row-parallel presence
// mask: a row's value is only meaningful when its presence is Present.
type MaskedNumericColumn struct {
	data   endian.NumericSequence
	mask   []byte
	strict bool
}

func newMaskedNumericColumn(data endian.NumericSequence, mask []byte, strict bool) *MaskedNumericColumn {
	return &MaskedNumericColumn{data: data, mask: mask, strict: strict}
}

func (c *MaskedNumericColumn) Len() int      { return c.data.Len() }
func (c *MaskedNumericColumn) IsDefined() bool { return true }

func (c *MaskedNumericColumn) GetValuePresence(r int) format.Presence {
	if !boundsOK(c.strict, r, len(c.mask)) {
		return format.NotSpecified
	}

	return format.PresenceFromByte(c.mask[r])
}

func (c *MaskedNumericColumn) GetString(r int) (string, bool) {
	if c.GetValuePresence(r) != format.Present {
		return "", false
	}

	return formatNumeric(c.data, r), true
}

func (c *MaskedNumericColumn) GetInteger(r int) int64 {
	if c.GetValuePresence(r) != format.Present {
		return 0
	}

	return c.data.Int64At(r)
}

func (c *MaskedNumericColumn) GetFloat(r int) float64 {
	if c.GetValuePresence(r) != format.Present {
		return 0
	}

	return c.data.Float64At(r)
}

// StringEquals treats an absent row as equal only to the caller's
// null/empty sentinel (hasValue == false); see EqualsAbsent.
func (c *MaskedNumericColumn) StringEquals(r int, v string, hasValue bool) bool {
	if c.GetValuePresence(r) != format.Present {
		return !hasValue
	}
	if !hasValue {
		return false
	}

	want := numparse.ParseFloat(v, 0, len(v))

	return c.data.Float64At(r) == want
}

func (c *MaskedNumericColumn) EqualsAbsent(r int) bool {
	return c.GetValuePresence(r) != format.Present
}

// AreValuesEqual compares the underlying stored values only; presence is
// not consulted, so two absent rows whose backing value happens to be
// equal compare equal.
func (c *MaskedNumericColumn) AreValuesEqual(rA, rB int) bool {
	if !boundsOK(c.strict, rA, c.data.Len()) || !boundsOK(c.strict, rB, c.data.Len()) {
		return false
	}

	return numericEqual(c.data, rA, rB)
}
