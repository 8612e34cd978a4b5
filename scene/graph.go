package scene

import (
	"sync"

	"weft/component"
	"weft/core"
	"weft/vmath"
)

// AnyStore provides type-erased operations for entity lifecycle management
// This interface allows Graph to manage all stores uniformly
type AnyStore interface {
	Remove(e core.Entity)
	RemoveBatch(entities []core.Entity)
	Has(e core.Entity) bool
	Len() int
	Clear()
	Version() uint64
}

// Graph holds the scene tree: nodes identified by entity IDs with all
// attributes in explicitly typed component stores for compile-time safety.
// Node relationships live in the Children store; the tree shape is whatever
// the children lists describe.
type Graph struct {
	mu           sync.RWMutex
	nextEntityID core.Entity
	alive        map[core.Entity]struct{}

	// Layout input attributes
	Children *Store[[]core.Entity]
	Flows    *Store[component.FlowComponent]
	Margins  *Store[vmath.Edges]
	Paddings *Store[vmath.Edges]
	Sizes    *Store[vmath.Unit]
	MinSizes *Store[vmath.Unit]
	Offsets  *Store[vmath.Unit]
	Anchors  *Store[vmath.Unit]

	// Layout outputs consumed by the renderer
	Rects     *Store[vmath.Rect]
	Positions *Store[vmath.Vec2]
	Screens   *Store[vmath.Vec2]

	// Visual attributes
	Fills   *Store[component.FillComponent]
	Texts   *Store[component.TextComponent]
	Borders *Store[component.BorderComponent]

	// Lifecycle registry - all stores implement AnyStore for uniform cleanup
	allStores []AnyStore
}

// NewGraph creates an empty scene graph with all component stores initialized
func NewGraph() *Graph {
	g := &Graph{
		nextEntityID: 1,
		alive:        make(map[core.Entity]struct{}),

		Children: NewStore[[]core.Entity](),
		Flows:    NewStore[component.FlowComponent](),
		Margins:  NewStore[vmath.Edges](),
		Paddings: NewStore[vmath.Edges](),
		Sizes:    NewStore[vmath.Unit](),
		MinSizes: NewStore[vmath.Unit](),
		Offsets:  NewStore[vmath.Unit](),
		Anchors:  NewStore[vmath.Unit](),

		Rects:     NewStore[vmath.Rect](),
		Positions: NewStore[vmath.Vec2](),
		Screens:   NewStore[vmath.Vec2](),

		Fills:   NewStore[component.FillComponent](),
		Texts:   NewStore[component.TextComponent](),
		Borders: NewStore[component.BorderComponent](),
	}

	g.allStores = []AnyStore{
		g.Children,
		g.Flows,
		g.Margins,
		g.Paddings,
		g.Sizes,
		g.MinSizes,
		g.Offsets,
		g.Anchors,
		g.Rects,
		g.Positions,
		g.Screens,
		g.Fills,
		g.Texts,
		g.Borders,
	}

	return g
}

// Spawn reserves a new node ID without adding any components.
// Use NewNode for fluent transactional construction.
func (g *Graph) Spawn() core.Entity {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.nextEntityID
	g.nextEntityID++
	g.alive[id] = struct{}{}
	return id
}

// Alive reports whether the entity has been spawned and not despawned
func (g *Graph) Alive(e core.Entity) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.alive[e]
	return ok
}

// Count returns the number of live nodes
func (g *Graph) Count() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.alive)
}

// Despawn removes the node and its whole subtree from every store.
// The caller is responsible for detaching e from its parent's children
// list first (or use RemoveChild), otherwise the next layout pass will
// panic on the dangling reference.
func (g *Graph) Despawn(e core.Entity) {
	subtree := g.collect(e, nil)

	g.mu.Lock()
	for _, id := range subtree {
		delete(g.alive, id)
	}
	g.mu.Unlock()

	for _, store := range g.allStores {
		store.RemoveBatch(subtree)
	}
}

// collect gathers e and all its descendants depth-first
func (g *Graph) collect(e core.Entity, acc []core.Entity) []core.Entity {
	acc = append(acc, e)
	children, _ := g.Children.Get(e)
	for _, c := range children {
		acc = g.collect(c, acc)
	}
	return acc
}

// AddChild appends child to parent's ordered children list
func (g *Graph) AddChild(parent, child core.Entity) {
	children, _ := g.Children.Get(parent)
	g.Children.Set(parent, append(children, child))
}

// RemoveChild detaches child from parent's children list without
// despawning it
func (g *Graph) RemoveChild(parent, child core.Entity) {
	children, _ := g.Children.Get(parent)
	for i, c := range children {
		if c == child {
			g.Children.Set(parent, append(children[:i], children[i+1:]...))
			return
		}
	}
}

// Clear removes all nodes and components from the graph
func (g *Graph) Clear() {
	g.mu.Lock()
	g.nextEntityID = 1
	g.alive = make(map[core.Entity]struct{})
	g.mu.Unlock()

	for _, store := range g.allStores {
		store.Clear()
	}
}

// Version sums all store write stamps. It moves if and only if some store
// accepted a write, which lets the renderer skip frames where two layout
// passes produced identical output.
func (g *Graph) Version() uint64 {
	var v uint64
	for _, store := range g.allStores {
		v += store.Version()
	}
	return v
}
