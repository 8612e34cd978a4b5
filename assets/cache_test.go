package assets

import "testing"

func TestCacheInsertGet(t *testing.T) {
	c := NewCache[string]()

	h := c.Insert("mono")

	if h.Value() != "mono" {
		t.Errorf("Expected value 'mono', got %q", h.Value())
	}

	got, ok := c.Get(h.ID())
	if !ok {
		t.Fatal("Expected live asset to be gettable")
	}
	if got.Value() != "mono" {
		t.Errorf("Expected 'mono' from cache, got %q", got.Value())
	}
}

func TestCacheGetAfterRelease(t *testing.T) {
	c := NewCache[int]()

	h := c.Insert(7)
	id := h.ID()
	h.Release()

	if _, ok := c.Get(id); ok {
		t.Error("Expected released asset to be unreachable")
	}
}

func TestCacheCloneKeepsAlive(t *testing.T) {
	c := NewCache[int]()

	h := c.Insert(7)
	clone := h.Clone()
	h.Release()

	got, ok := c.Get(clone.ID())
	if !ok {
		t.Fatal("Expected clone to keep the asset alive")
	}
	if got.Value() != 7 {
		t.Errorf("Expected 7, got %d", got.Value())
	}
}

func TestCachePrune(t *testing.T) {
	c := NewCache[int]()

	h := c.Insert(1)
	keep := c.Insert(2)
	h.Release()

	c.Prune()

	if c.Len() != 1 {
		t.Errorf("Expected 1 slot after prune, got %d", c.Len())
	}
	if _, ok := c.Get(keep.ID()); !ok {
		t.Error("Expected held asset to survive the prune")
	}
}

func TestCacheGenerationGuard(t *testing.T) {
	c := NewCache[int]()

	h := c.Insert(1)
	stale := h.ID()
	h.Release()
	c.Prune()

	// The slot is reused, bumping its generation.
	fresh := c.Insert(2)

	if _, ok := c.Get(stale); ok {
		t.Error("Expected stale id to miss after slot reuse")
	}
	got, ok := c.Get(fresh.ID())
	if !ok {
		t.Fatal("Expected fresh id to hit")
	}
	if got.Value() != 2 {
		t.Errorf("Expected 2 from reused slot, got %d", got.Value())
	}
}

func TestHandleDoubleReleasePanics(t *testing.T) {
	c := NewCache[int]()
	h := c.Insert(1)
	h.Release()

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic on double release")
		}
	}()
	h.Release()
}
