package table

import (
	"github.com/go-bcif/bcif/internal/collision"
	"github.com/go-bcif/bcif/internal/hash"
	"github.com/go-bcif/bcif/section"
)

// DataBlock is a named collection of categories, in declaration order.
type DataBlock struct {
	header     string
	categories []*Category
	index      *collision.NameIndex[int]
}

func newDataBlock(edb section.EncodedDataBlock, strict bool) *DataBlock {
	categories := make([]*Category, len(edb.Categories))
	idx := collision.NewNameIndex[int]()

	for i, ec := range edb.Categories {
		categories[i] = newCategory(ec, strict)
		idx.Put(ec.Name, hash.ID(ec.Name), i)
	}

	return &DataBlock{header: edb.Header, categories: categories, index: idx}
}

// Header returns the data block's header name.
func (b *DataBlock) Header() string { return b.header }

// Categories returns the data block's categories in declaration order.
func (b *DataBlock) Categories() []*Category { return b.categories }

// GetCategory returns the named category, or (nil, false) if the data
// block has no category by that name.
func (b *DataBlock) GetCategory(name string) (*Category, bool) {
	i, ok := b.index.Get(name, hash.ID(name))
	if !ok {
		return nil, false
	}

	return b.categories[i], true
}
