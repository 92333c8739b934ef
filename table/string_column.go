package table

import (
	"github.com/go-bcif/bcif/format"
	"github.com/go-bcif/bcif/internal/numparse"
)

// StringColumn is an unmasked string column. A row can still be nil — the
// StringArray transform emits nil for a negative index — but there is no
// separate presence mask backing it.
type StringColumn struct {
	data   []*string
	strict bool
}

func newStringColumn(data []*string, strict bool) *StringColumn {
	return &StringColumn{data: data, strict: strict}
}

func (c *StringColumn) Len() int        { return len(c.data) }
func (c *StringColumn) IsDefined() bool { return true }

func (c *StringColumn) GetValuePresence(r int) format.Presence { return format.Present }

func (c *StringColumn) GetString(r int) (string, bool) {
	if !boundsOK(c.strict, r, len(c.data)) {
		return "", false
	}
	if c.data[r] == nil {
		return "", false
	}

	return *c.data[r], true
}

func (c *StringColumn) GetInteger(r int) int64 {
	s, ok := c.GetString(r)
	if !ok {
		return 0
	}

	return numparse.ParseInt(s, 0, len(s))
}

func (c *StringColumn) GetFloat(r int) float64 {
	s, ok := c.GetString(r)
	if !ok {
		return 0
	}

	return numparse.ParseFloat(s, 0, len(s))
}

func (c *StringColumn) StringEquals(r int, v string, hasValue bool) bool {
	s, ok := c.GetString(r)
	if !ok {
		return !hasValue
	}
	if !hasValue {
		return false
	}

	return s == v
}

func (c *StringColumn) EqualsAbsent(r int) bool {
	_, ok := c.GetString(r)

	return !ok
}

// AreValuesEqual compares the underlying pointers' referents directly,
// without regard to presence: two nil rows compare equal.
func (c *StringColumn) AreValuesEqual(rA, rB int) bool {
	if !boundsOK(c.strict, rA, len(c.data)) || !boundsOK(c.strict, rB, len(c.data)) {
		return false
	}

	return stringPtrEqual(c.data[rA], c.data[rB])
}

// MaskedStringColumn is a string column with a row-parallel presence
// mask.
type MaskedStringColumn struct {
	data   []*string
	mask   []byte
	strict bool
}

func newMaskedStringColumn(data []*string, mask []byte, strict bool) *MaskedStringColumn {
	return &MaskedStringColumn{data: data, mask: mask, strict: strict}
}

func (c *MaskedStringColumn) Len() int        { return len(c.data) }
func (c *MaskedStringColumn) IsDefined() bool { return true }

func (c *MaskedStringColumn) GetValuePresence(r int) format.Presence {
	if !boundsOK(c.strict, r, len(c.mask)) {
		return format.NotSpecified
	}

	return format.PresenceFromByte(c.mask[r])
}

func (c *MaskedStringColumn) GetString(r int) (string, bool) {
	if c.GetValuePresence(r) != format.Present {
		return "", false
	}
	if c.data[r] == nil {
		return "", false
	}

	return *c.data[r], true
}

func (c *MaskedStringColumn) GetInteger(r int) int64 {
	s, ok := c.GetString(r)
	if !ok {
		return 0
	}

	return numparse.ParseInt(s, 0, len(s))
}

func (c *MaskedStringColumn) GetFloat(r int) float64 {
	s, ok := c.GetString(r)
	if !ok {
		return 0
	}

	return numparse.ParseFloat(s, 0, len(s))
}

func (c *MaskedStringColumn) StringEquals(r int, v string, hasValue bool) bool {
	if c.GetValuePresence(r) != format.Present {
		return !hasValue
	}
	if !hasValue {
		return false
	}
	s, ok := c.GetString(r)
	if !ok {
		return false
	}

	return s == v
}

func (c *MaskedStringColumn) EqualsAbsent(r int) bool {
	return c.GetValuePresence(r) != format.Present
}

func (c *MaskedStringColumn) AreValuesEqual(rA, rB int) bool {
	if !boundsOK(c.strict, rA, len(c.data)) || !boundsOK(c.strict, rB, len(c.data)) {
		return false
	}

	return stringPtrEqual(c.data[rA], c.data[rB])
}

func stringPtrEqual(a, b *string) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}

	return *a == *b
}
