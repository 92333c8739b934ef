package table

import (
	"github.com/go-bcif/bcif/internal/options"
	"github.com/go-bcif/bcif/section"
)

// File is the fully decoded view over an EncodedFile: an ordered list of
// data blocks, each holding its own categories and columns.
type File struct {
	version    string
	encoder    string
	dataBlocks []*DataBlock
}

// NewFile builds a File view over ef. Column decoding is lazy: no
// transform runs until a caller calls GetColumn.
func NewFile(ef section.EncodedFile, opts ...Option) *File {
	cfg := defaultConfig()
	options.Apply(cfg, opts...)

	blocks := make([]*DataBlock, len(ef.DataBlocks))
	for i, edb := range ef.DataBlocks {
		blocks[i] = newDataBlock(edb, cfg.strict)
	}

	return &File{version: ef.Version, encoder: ef.Encoder, dataBlocks: blocks}
}

// Version returns the encoded file's format version string.
func (f *File) Version() string { return f.version }

// Encoder returns the encoder's self-reported identifier.
func (f *File) Encoder() string { return f.encoder }

// DataBlocks returns the file's data blocks in declaration order.
func (f *File) DataBlocks() []*DataBlock { return f.dataBlocks }
