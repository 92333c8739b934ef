// Package collision provides a hash-keyed lookup index with an exact
// string-comparison fallback for the (vanishingly rare) case of two
// different names sharing the same 64-bit hash.
package collision

// entry pairs the original name with its indexed value, so a hash bucket
// holding more than one name can still resolve to the right value.
type entry[T any] struct {
	name  string
	value T
}

// NameIndex maps string names (category names, column names, data block
// headers) to arbitrary values via a caller-supplied 64-bit hash.
//
// A NameIndex is built once and read many times; it is not safe for
// concurrent Put calls, but concurrent Get calls are safe once building is
// complete.
type NameIndex[T any] struct {
	buckets map[uint64][]entry[T]
}

// NewNameIndex creates an empty index.
func NewNameIndex[T any]() *NameIndex[T] {
	return &NameIndex[T]{buckets: make(map[uint64][]entry[T])}
}

// Put records value under name, indexed by hash. If name was already
// present under the same hash, its value is overwritten in place.
func (idx *NameIndex[T]) Put(name string, hash uint64, value T) {
	bucket := idx.buckets[hash]
	for i, e := range bucket {
		if e.name == name {
			bucket[i].value = value
			return
		}
	}
	idx.buckets[hash] = append(bucket, entry[T]{name: name, value: value})
}

// Get returns the value stored under name, or the zero value and false if
// no entry matches. A hash collision between two different names never
// produces a false positive: the bucket is scanned for an exact match.
func (idx *NameIndex[T]) Get(name string, hash uint64) (T, bool) {
	for _, e := range idx.buckets[hash] {
		if e.name == name {
			return e.value, true
		}
	}

	var zero T

	return zero, false
}

// HasCollision reports whether more than one distinct name has ever hashed
// into the same bucket.
func (idx *NameIndex[T]) HasCollision() bool {
	for _, bucket := range idx.buckets {
		if len(bucket) > 1 {
			return true
		}
	}

	return false
}
