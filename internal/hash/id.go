// Package hash provides the 64-bit name hash used to index categories and
// columns by name in constant average time.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of a category, column, or data block name.
func ID(name string) uint64 {
	return xxhash.Sum64String(name)
}
