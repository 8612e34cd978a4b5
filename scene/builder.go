package scene

import (
	"weft/component"
	"weft/core"
	"weft/vmath"
)

// NodeBuilder provides a fluent, type-safe interface for constructing scene
// nodes. It reserves an entity ID upfront and adds components as it goes,
// so a node under construction is already addressable by its children.
//
// Example usage:
//
//	node := graph.NewNode().
//	    WithFlow(component.FlowComponent{Direction: component.Horizontal}).
//	    WithPadding(vmath.EdgesEven(1)).
//	    WithChildren(a, b).
//	    Build()
type NodeBuilder struct {
	graph  *Graph
	entity core.Entity
	built  bool
}

// NewNode creates a NodeBuilder with a freshly spawned entity ID
func (g *Graph) NewNode() *NodeBuilder {
	return &NodeBuilder{
		graph:  g,
		entity: g.Spawn(),
	}
}

// With adds a component of type T to the node being built.
// Generic so the store type must match the component type at compile time.
// Panics if called after Build().
func With[T any](nb *NodeBuilder, store *Store[T], component T) *NodeBuilder {
	if nb.built {
		panic("node already built - cannot add components after Build()")
	}
	store.Set(nb.entity, component)
	return nb
}

func (nb *NodeBuilder) WithFlow(f component.FlowComponent) *NodeBuilder {
	return With(nb, nb.graph.Flows, f)
}

func (nb *NodeBuilder) WithMargin(e vmath.Edges) *NodeBuilder {
	return With(nb, nb.graph.Margins, e)
}

func (nb *NodeBuilder) WithPadding(e vmath.Edges) *NodeBuilder {
	return With(nb, nb.graph.Paddings, e)
}

func (nb *NodeBuilder) WithSize(u vmath.Unit) *NodeBuilder {
	return With(nb, nb.graph.Sizes, u)
}

func (nb *NodeBuilder) WithMinSize(u vmath.Unit) *NodeBuilder {
	return With(nb, nb.graph.MinSizes, u)
}

func (nb *NodeBuilder) WithOffset(u vmath.Unit) *NodeBuilder {
	return With(nb, nb.graph.Offsets, u)
}

func (nb *NodeBuilder) WithAnchor(u vmath.Unit) *NodeBuilder {
	return With(nb, nb.graph.Anchors, u)
}

func (nb *NodeBuilder) WithFill(f component.FillComponent) *NodeBuilder {
	return With(nb, nb.graph.Fills, f)
}

func (nb *NodeBuilder) WithText(t component.TextComponent) *NodeBuilder {
	return With(nb, nb.graph.Texts, t)
}

func (nb *NodeBuilder) WithBorder(b component.BorderComponent) *NodeBuilder {
	return With(nb, nb.graph.Borders, b)
}

// WithChildren sets the ordered children list of the node being built
func (nb *NodeBuilder) WithChildren(children ...core.Entity) *NodeBuilder {
	return With(nb, nb.graph.Children, children)
}

// Build finalizes construction and returns the entity ID.
// After Build() the builder rejects further component additions.
func (nb *NodeBuilder) Build() core.Entity {
	nb.built = true
	return nb.entity
}
