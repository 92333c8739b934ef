package table

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-bcif/bcif/encoding"
	"github.com/go-bcif/bcif/endian"
	"github.com/go-bcif/bcif/section"
)

func newTestFile() *File {
	ef := section.EncodedFile{
		Version: "0.3.0",
		Encoder: "test-encoder",
		DataBlocks: []section.EncodedDataBlock{
			{
				Header: "block1",
				Categories: []section.EncodedCategory{
					{
						Name:     "atom_site",
						RowCount: 2,
						Columns: []section.EncodedColumn{
							{
								Name: "id",
								Data: encoding.EncodedData{
									Encodings: []encoding.Encoding{encoding.ByteArray{Type: endian.Int32}},
									Data:      le32(10, 20),
								},
							},
						},
					},
				},
			},
		},
	}

	return NewFile(ef)
}

func TestFileDataBlockOrdering(t *testing.T) {
	require := require.New(t)

	f := newTestFile()
	require.Len(f.DataBlocks(), 1)
	require.Equal("block1", f.DataBlocks()[0].Header())
}

func TestFileGetCategory(t *testing.T) {
	require := require.New(t)

	f := newTestFile()
	block := f.DataBlocks()[0]

	cat, ok := block.GetCategory("atom_site")
	require.True(ok)
	require.Equal(int64(20), cat.GetColumn("id").GetInteger(1))

	_, ok = block.GetCategory("missing")
	require.False(ok)
}

func TestFileToJSON(t *testing.T) {
	require := require.New(t)

	f := newTestFile()
	out := f.ToJSON()
	require.Equal("0.3.0", out.Version)
	require.Len(out.DataBlocks, 1)
	require.Equal("atom_site", out.DataBlocks[0].Categories[0].Name)
}

func TestFileWithStrictBoundsOption(t *testing.T) {
	require := require.New(t)

	ef := section.EncodedFile{
		Version: "0.3.0",
		DataBlocks: []section.EncodedDataBlock{
			{
				Categories: []section.EncodedCategory{
					{
						Name:     "cat",
						RowCount: 1,
						Columns: []section.EncodedColumn{
							{
								Name: "x",
								Data: encoding.EncodedData{
									Encodings: []encoding.Encoding{encoding.ByteArray{Type: endian.Int32}},
									Data:      le32(1),
								},
							},
						},
					},
				},
			},
		},
	}

	f := NewFile(ef, WithStrictBounds(false))
	cat, _ := f.DataBlocks()[0].GetCategory("cat")
	col := cat.GetColumn("x")
	require.Panics(func() { col.GetInteger(5) })
}
