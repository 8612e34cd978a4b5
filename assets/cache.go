// Package assets shares immutable resources such as themes between
// widgets through reference-counted, generational handles.
package assets

import "sync"

// ID identifies an asset slot in a Cache. The generation guards
// against a slot index being reused after its asset was reclaimed.
type ID struct {
	index      uint32
	generation uint32
}

type slot[V any] struct {
	value      V
	generation uint32
	refs       int
	allocated  bool
}

// Cache stores assets behind reference-counted handles. Slots whose
// handles have all been released are reclaimed lazily: an insert into
// a cache at 70% occupancy sweeps dead slots first, so churning
// assets do not grow the table without bound.
type Cache[V any] struct {
	mu    sync.Mutex
	slots []slot[V]
	free  []uint32
}

// NewCache creates an empty cache.
func NewCache[V any]() *Cache[V] {
	return &Cache[V]{}
}

// Insert stores a value and returns the first handle to it.
func (c *Cache[V]) Insert(value V) *Handle[V] {
	c.mu.Lock()
	defer c.mu.Unlock()

	used := len(c.slots) - len(c.free)
	if cap(c.slots) > 0 && float64(used) >= float64(cap(c.slots))*0.7 {
		c.pruneLocked()
	}

	var idx uint32
	if n := len(c.free); n > 0 {
		idx = c.free[n-1]
		c.free = c.free[:n-1]
	} else {
		c.slots = append(c.slots, slot[V]{})
		idx = uint32(len(c.slots) - 1)
	}

	s := &c.slots[idx]
	s.value = value
	s.refs = 1
	s.allocated = true

	return &Handle[V]{
		cache: c,
		id:    ID{index: idx, generation: s.generation},
		value: value,
	}
}

// Get acquires a new handle on the asset with the given id, or
// reports false if every handle to it has been released.
func (c *Cache[V]) Get(id ID) (*Handle[V], bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if int(id.index) >= len(c.slots) {
		return nil, false
	}
	s := &c.slots[id.index]
	if !s.allocated || s.generation != id.generation || s.refs == 0 {
		return nil, false
	}

	s.refs++
	return &Handle[V]{cache: c, id: id, value: s.value}, true
}

// Prune reclaims every slot whose handles have all been released.
func (c *Cache[V]) Prune() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pruneLocked()
}

func (c *Cache[V]) pruneLocked() {
	var zero V
	for i := range c.slots {
		s := &c.slots[i]
		if s.allocated && s.refs == 0 {
			s.value = zero
			s.generation++
			s.allocated = false
			c.free = append(c.free, uint32(i))
		}
	}
}

// Len reports how many slots hold assets, including released slots
// not yet pruned.
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.slots) - len(c.free)
}

// Handle is a reference-counted lease on a cached asset. Copies must
// go through Clone so the count stays accurate; the zero Handle is
// invalid.
type Handle[V any] struct {
	cache    *Cache[V]
	id       ID
	value    V
	released bool
}

// Value returns the leased asset.
func (h *Handle[V]) Value() V {
	return h.value
}

// ID returns the asset's cache id, valid for Cache.Get while any
// handle is held.
func (h *Handle[V]) ID() ID {
	return h.id
}

// Clone acquires an additional handle on the same asset.
func (h *Handle[V]) Clone() *Handle[V] {
	if h.released {
		panic("assets: clone of released handle")
	}

	h.cache.mu.Lock()
	h.cache.slots[h.id.index].refs++
	h.cache.mu.Unlock()

	return &Handle[V]{cache: h.cache, id: h.id, value: h.value}
}

// Release gives the lease back. Releasing a handle twice panics.
func (h *Handle[V]) Release() {
	if h.released {
		panic("assets: handle released twice")
	}
	h.released = true

	h.cache.mu.Lock()
	h.cache.slots[h.id.index].refs--
	h.cache.mu.Unlock()
}
