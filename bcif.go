package bcif

import (
	"fmt"
	"strings"

	"github.com/go-bcif/bcif/section"
	"github.com/go-bcif/bcif/table"
)

// Decode validates ef's format version against this package's supported
// range (0.3.x) and builds the decoded table.File view. Decode itself
// never runs a column's transform pipeline; that happens lazily the
// first time a caller calls Category.GetColumn.
func Decode(ef section.EncodedFile, opts ...table.Option) (*table.File, error) {
	if !isSupportedVersion(ef.Version) {
		return nil, fmt.Errorf("bcif: unsupported format version %q, want 0.3.x", ef.Version)
	}

	return table.NewFile(ef, opts...), nil
}

// MustDecode is like Decode but panics on error.
func MustDecode(ef section.EncodedFile, opts ...table.Option) *table.File {
	f, err := Decode(ef, opts...)
	if err != nil {
		panic(err)
	}

	return f
}

func isSupportedVersion(v string) bool {
	return strings.HasPrefix(v, "0.3.")
}
