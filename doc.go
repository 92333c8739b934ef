// Package bcif decodes an already-deserialized BinaryCIF encoded tree
// into a lazily-materialized, row-addressable table view.
//
// The outer container format (MessagePack) is out of scope: callers
// parse that themselves and hand this package a section.EncodedFile.
// Decode validates the format version and builds a table.File; every
// column's transform pipeline runs only when a caller first asks for
// that column.
package bcif
