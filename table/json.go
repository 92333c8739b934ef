package table

import "github.com/go-bcif/bcif/format"

// renderCell renders row r of col in the text/JSON projection: the real
// value when present, "." or "?" per its presence, and "." for a null row
// in a column with no presence mask at all (the StringArray transform's
// own per-row null, independent of any mask).
func renderCell(col Column, r int) string {
	if p := col.GetValuePresence(r); p != format.Present {
		return p.Symbol()
	}
	if s, ok := col.GetString(r); ok {
		return s
	}

	return format.NotSpecified.Symbol()
}

// CategoryJSON is the JSON projection of a Category: every row rendered
// as a map from column name to its text form.
type CategoryJSON struct {
	Name     string              `json:"name"`
	RowCount int                 `json:"rowCount"`
	Rows     []map[string]string `json:"rows"`
}

// ToJSON renders the category as a row-oriented JSON-friendly structure.
func (c *Category) ToJSON() CategoryJSON {
	names := c.ColumnNames()
	cols := make([]Column, len(names))
	for i, n := range names {
		cols[i] = c.GetColumn(n)
	}

	rows := make([]map[string]string, c.rowCount)
	for r := 0; r < c.rowCount; r++ {
		row := make(map[string]string, len(names))
		for i, n := range names {
			row[n] = renderCell(cols[i], r)
		}
		rows[r] = row
	}

	return CategoryJSON{Name: c.name, RowCount: c.rowCount, Rows: rows}
}

// DataBlockJSON is the JSON projection of a DataBlock.
type DataBlockJSON struct {
	Header     string         `json:"header"`
	Categories []CategoryJSON `json:"categories"`
}

// ToJSON renders the data block and all of its categories.
func (b *DataBlock) ToJSON() DataBlockJSON {
	cats := make([]CategoryJSON, len(b.categories))
	for i, c := range b.categories {
		cats[i] = c.ToJSON()
	}

	return DataBlockJSON{Header: b.header, Categories: cats}
}

// FileJSON is the JSON projection of a File.
type FileJSON struct {
	Version    string          `json:"version"`
	Encoder    string          `json:"encoder"`
	DataBlocks []DataBlockJSON `json:"dataBlocks"`
}

// ToJSON renders the whole decoded file tree.
func (f *File) ToJSON() FileJSON {
	blocks := make([]DataBlockJSON, len(f.dataBlocks))
	for i, b := range f.dataBlocks {
		blocks[i] = b.ToJSON()
	}

	return FileJSON{Version: f.version, Encoder: f.encoder, DataBlocks: blocks}
}
