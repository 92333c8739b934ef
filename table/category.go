package table

import (
	"fmt"
	"sync"

	"github.com/go-bcif/bcif/encoding"
	"github.com/go-bcif/bcif/internal/collision"
	"github.com/go-bcif/bcif/internal/hash"
	"github.com/go-bcif/bcif/section"
)

// Category is a named table: an ordered list of columns sharing a row
// count. Columns are decoded lazily, on first GetColumn call, and cached
// for the Category's lifetime.
type Category struct {
	name     string
	rowCount int
	columns  []section.EncodedColumn
	index    *collision.NameIndex[int]

	cache []Column
	once  []sync.Once

	strict bool
}

func newCategory(ec section.EncodedCategory, strict bool) *Category {
	idx := collision.NewNameIndex[int]()
	for i, col := range ec.Columns {
		idx.Put(col.Name, hash.ID(col.Name), i)
	}

	return &Category{
		name:     ec.Name,
		rowCount: ec.RowCount,
		columns:  ec.Columns,
		index:    idx,
		cache:    make([]Column, len(ec.Columns)),
		once:     make([]sync.Once, len(ec.Columns)),
		strict:   strict,
	}
}

// Name returns the category's name.
func (c *Category) Name() string { return c.name }

// RowCount returns the category's shared row count.
func (c *Category) RowCount() int { return c.rowCount }

// ColumnCount returns the number of columns in the category.
func (c *Category) ColumnCount() int { return len(c.columns) }

// ColumnNames returns the column names in declaration order.
func (c *Category) ColumnNames() []string {
	names := make([]string, len(c.columns))
	for i, col := range c.columns {
		names[i] = col.Name
	}

	return names
}

// GetColumn returns the named column, decoding and caching it on first
// access. An unknown name returns Undefined, never nil.
//
// Decoding is fatal on malformed input: a column whose transform stack is
// inconsistent with its own declared encodings panics, carrying the
// original decode error, since GetColumn's signature (matching the
// read-only accessor contract) has no room for an error return.
func (c *Category) GetColumn(name string) Column {
	i, ok := c.index.Get(name, hash.ID(name))
	if !ok {
		return Undefined
	}

	c.once[i].Do(func() {
		c.cache[i] = c.buildColumn(c.columns[i])
	})

	return c.cache[i]
}

func (c *Category) buildColumn(ec section.EncodedColumn) Column {
	seq, err := encoding.Decode(ec.Data)
	if err != nil {
		panic(fmt.Errorf("bcif: decode column %q: %w", ec.Name, err))
	}

	var mask []byte
	if ec.Mask != nil {
		maskSeq, err := encoding.Decode(*ec.Mask)
		if err != nil {
			panic(fmt.Errorf("bcif: decode mask for column %q: %w", ec.Name, err))
		}
		mask = maskToBytes(ec.Name, maskSeq)
	}

	switch v := seq.(type) {
	case encoding.NumericSeq:
		if mask != nil {
			return newMaskedNumericColumn(v.NumericSequence, mask, c.strict)
		}

		return newNumericColumn(v.NumericSequence, c.strict)

	case encoding.StringSeq:
		if mask != nil {
			return newMaskedStringColumn([]*string(v), mask, c.strict)
		}

		return newStringColumn([]*string(v), c.strict)

	default:
		panic(fmt.Errorf("bcif: decode column %q: unexpected sequence type %T", ec.Name, seq))
	}
}

func maskToBytes(columnName string, seq encoding.Sequence) []byte {
	ns, ok := seq.(encoding.NumericSeq)
	if !ok {
		panic(fmt.Errorf("bcif: mask for column %q must decode to a numeric sequence, got %T", columnName, seq))
	}

	out := make([]byte, ns.Len())
	for i := range out {
		out[i] = byte(ns.Int64At(i))
	}

	return out
}
