package resolve

import "sync"

// Cache is a concurrent, reference-keyed store of resolution outcomes.
// It distinguishes "key absent" (Load's second return) from "resolved to
// unresolved" (Result.OK == false), so negative results are cached too.
//
// Writes only ever happen in bulk, after a top-level Resolve call has
// fully computed a resolution: readers may observe a partial batch as
// entries trickle in across concurrent resolutions, but never a
// half-constructed value for any single reference.
type Cache[T comparable] struct {
	m sync.Map // T -> Result
}

func newCache[T comparable]() *Cache[T] {
	return &Cache[T]{}
}

// Load returns the cached Result for reference and whether it was
// present.
func (c *Cache[T]) Load(reference T) (Result, bool) {
	v, ok := c.m.Load(reference)
	if !ok {
		return Result{}, false
	}
	return v.(Result), true
}

// Store performs a bulk upsert of a completed resolution batch.
func (c *Cache[T]) Store(batch map[T]Result) {
	for ref, e := range batch {
		c.m.Store(ref, e)
	}
}

// Len reports the number of cached entries. It is intended for tests and
// diagnostics, not for production control flow (sync.Map has no O(1)
// length).
func (c *Cache[T]) Len() int {
	n := 0
	c.m.Range(func(any, any) bool {
		n++
		return true
	})
	return n
}
