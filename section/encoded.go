// Package section holds the plain in-memory records that represent an
// already-deserialized encoded tree: the format this package assumes has
// already been produced by parsing the outer container (e.g. MessagePack),
// which is out of scope for this module.
package section

import "github.com/go-bcif/bcif/encoding"

// EncodedFile is the root of an encoded tree: a version string, the
// encoder's self-reported identifier, and an ordered list of data blocks.
type EncodedFile struct {
	Version    string
	Encoder    string
	DataBlocks []EncodedDataBlock
}

// EncodedDataBlock is a named collection of categories, in declaration
// order.
type EncodedDataBlock struct {
	Header     string
	Categories []EncodedCategory
}

// EncodedCategory is a named table: a row count and an ordered list of
// columns.
type EncodedCategory struct {
	Name     string
	RowCount int
	Columns  []EncodedColumn
}

// EncodedColumn is a named column: a required EncodedData for values and
// an optional EncodedData for a presence mask.
type EncodedColumn struct {
	Name string
	Data encoding.EncodedData
	Mask *encoding.EncodedData
}
