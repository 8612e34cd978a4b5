// Package layout resolves the rectangles of a scene graph in two
// passes: a bottom-up size query that reports each subtree's minimum
// and preferred extents, and a top-down placement pass that distributes
// the available space under parent-imposed limits.
package layout

import (
	"fmt"

	"weft/core"
	"weft/scene"
	"weft/vmath"
)

// Limits constrain how large or small a subtree may resolve. They are
// passed top-down from parent to child and recomputed every pass,
// never stored.
type Limits struct {
	Min vmath.Vec2
	Max vmath.Vec2
}

// Block is a resolved rect together with the margin surrounding it,
// the unit a placement cursor consumes.
type Block struct {
	Rect   vmath.Rect
	Margin vmath.Edges
}

// SizeQuery reports how little a subtree can tolerate and how much it
// would like, before any constraints apply.
type SizeQuery struct {
	Min       vmath.Rect
	Preferred vmath.Rect
	Margin    vmath.Edges
}

// QuerySize measures a subtree bottom-up without applying constraints.
// The content area only lends its extent for resolving relative units.
func QuerySize(g *scene.Graph, e core.Entity, contentArea vmath.Rect) SizeQuery {
	margin, _ := g.Margins.Get(e)
	padding, _ := g.Paddings.Get(e)

	if flow, ok := g.Flows.Get(e); ok {
		minLine, prefLine, _ := flowQuerySize(g, e, flow, contentArea.Inset(padding))
		return SizeQuery{
			Min:       minLine.Pad(padding),
			Preferred: prefLine.Pad(padding),
			Margin:    margin,
		}
	}

	if children, ok := g.Children.Get(e); ok {
		return stackQuerySize(g, e, children, contentArea, padding, margin)
	}

	minSize, size := resolveSize(g, e, contentArea)
	return SizeQuery{
		Min:       vmath.RectFromPosSize(resolvePos(g, e, contentArea, minSize), minSize),
		Preferred: vmath.RectFromPosSize(resolvePos(g, e, contentArea, size), size),
		Margin:    margin,
	}
}

// UpdateSubtree resolves the rects and local positions of an entire
// subtree and writes them back to the graph, returning the outer
// bounds so the caller can place the subtree in turn.
//
// Dispatch follows attribute presence: a flow component makes the node
// a flow container, children alone make it a stacking container, and
// anything else is a leaf. The caller owns writing the root's own rect
// and position.
func UpdateSubtree(g *scene.Graph, e core.Entity, contentArea vmath.Rect, limits Limits) Block {
	margin, _ := g.Margins.Get(e)
	padding, _ := g.Paddings.Get(e)

	if flow, ok := g.Flows.Get(e); ok {
		rect := flowApply(g, e, flow, contentArea.Inset(padding), Limits{
			Min: limits.Min,
			Max: limits.Max.Sub(padding.Size()),
		}).Pad(padding).ClampSize(limits.Min, limits.Max)

		return Block{Rect: rect, Margin: margin}
	}

	if children, ok := g.Children.Get(e); ok {
		return stackApply(g, e, children, contentArea, limits, padding, margin)
	}

	_, size := resolveSize(g, e, contentArea)
	size = size.Clamp(limits.Min, limits.Max)
	pos := resolvePos(g, e, contentArea, size)

	return Block{Rect: vmath.RectFromPosSize(pos, size), Margin: margin}
}

// stackApply lays every child of a stacking container over the same
// origin-bound content area, so children overlap and separate only
// through their own offsets. The container's bounds are the union of
// the children's margin-padded rects.
func stackApply(g *scene.Graph, e core.Entity, children []core.Entity, contentArea vmath.Rect, limits Limits, padding, margin vmath.Edges) Block {
	inner := vmath.Rect{Max: contentArea.Size()}.Inset(padding)
	childLimits := Limits{Max: limits.Max.Sub(padding.Size())}

	var bounds vmath.Rect
	for i, child := range children {
		if !g.Alive(child) {
			panic(fmt.Sprintf("layout: node %d references dead child %d", e, child))
		}

		block := UpdateSubtree(g, child, inner, childLimits)

		scene.SetIfChanged(g.Rects, child, block.Rect)
		scene.SetIfChanged(g.Positions, child, vmath.Vec2{})

		outer := block.Rect.Pad(block.Margin)
		if i == 0 {
			bounds = outer
		} else {
			bounds = bounds.Merge(outer)
		}
	}

	rect := bounds.Pad(padding).ClampSize(limits.Min, limits.Max)
	return Block{Rect: rect, Margin: margin}
}

func stackQuerySize(g *scene.Graph, e core.Entity, children []core.Entity, contentArea vmath.Rect, padding, margin vmath.Edges) SizeQuery {
	inner := vmath.Rect{Max: contentArea.Size()}.Inset(padding)

	var minBounds, prefBounds vmath.Rect
	for i, child := range children {
		if !g.Alive(child) {
			panic(fmt.Sprintf("layout: node %d references dead child %d", e, child))
		}

		q := QuerySize(g, child, inner)

		minOuter := q.Min.Pad(q.Margin)
		prefOuter := q.Preferred.Pad(q.Margin)
		if i == 0 {
			minBounds, prefBounds = minOuter, prefOuter
		} else {
			minBounds = minBounds.Merge(minOuter)
			prefBounds = prefBounds.Merge(prefOuter)
		}
	}

	return SizeQuery{
		Min:       minBounds.Pad(padding),
		Preferred: prefBounds.Pad(padding),
		Margin:    margin,
	}
}

// resolveSize resolves the size attributes against the parent extent.
// The preferred size is never below the minimum.
func resolveSize(g *scene.Graph, e core.Entity, contentArea vmath.Rect) (minSize, size vmath.Vec2) {
	parent := contentArea.Size()

	minUnit, _ := g.MinSizes.Get(e)
	minSize = minUnit.Resolve(parent)

	sizeUnit, _ := g.Sizes.Get(e)
	size = sizeUnit.Resolve(parent).Max(minSize)

	return minSize, size
}

// resolvePos combines the offset, resolved against the parent extent,
// with the anchor, resolved against the node's own size.
func resolvePos(g *scene.Graph, e core.Entity, contentArea vmath.Rect, selfSize vmath.Vec2) vmath.Vec2 {
	offset, _ := g.Offsets.Get(e)
	anchor, _ := g.Anchors.Get(e)

	return contentArea.Pos().
		Add(offset.Resolve(contentArea.Size())).
		Sub(anchor.Resolve(selfSize))
}
