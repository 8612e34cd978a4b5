package layout

import (
	"fmt"

	"weft/component"
	"weft/core"
	"weft/scene"
	"weft/vmath"
)

type childQuery struct {
	entity core.Entity
	query  SizeQuery
}

type placedChild struct {
	entity core.Entity
	block  Block
}

// flowQuerySize measures the children of a flow container along its
// axis. Minimum and preferred extents accumulate on two independent
// cursors so the container reports both in one walk.
func flowQuerySize(g *scene.Graph, e core.Entity, flow component.FlowComponent, inner vmath.Rect) (minLine, prefLine vmath.Rect, queries []childQuery) {
	children, _ := g.Children.Get(e)

	axis, cross := flow.Direction.Axis()

	minCursor := newMarginCursor(vmath.Vec2{}, axis, cross)
	prefCursor := newMarginCursor(vmath.Vec2{}, axis, cross)

	// Children are measured against a content area reset to local origin.
	contentArea := vmath.Rect{Max: inner.Size()}

	queries = make([]childQuery, 0, len(children))
	for _, child := range children {
		if !g.Alive(child) {
			panic(fmt.Sprintf("layout: node %d references dead child %d", e, child))
		}

		q := QuerySize(g, child, contentArea)

		minCursor.put(Block{Rect: q.Min, Margin: q.Margin})
		prefCursor.put(Block{Rect: q.Preferred, Margin: q.Margin})

		queries = append(queries, childQuery{entity: child, query: q})
	}

	return minCursor.finish(), prefCursor.finish(), queries
}

// flowApply sizes and places the children of a flow container inside
// the given inner rect. Axis space beyond each child's minimum is
// handed out in proportion to how far its preferred size is from its
// minimum, so rigid children stay put while stretchy ones grow.
func flowApply(g *scene.Graph, e core.Entity, flow component.FlowComponent, inner vmath.Rect, limits Limits) vmath.Rect {
	axis, cross := flow.Direction.Axis()

	_, prefLine, queries := flowQuerySize(g, e, flow, inner)

	// Signed: reverse directions negate both this and the per-child
	// dots below, so the shares stay positive.
	totalPreferred := prefLine.Size().Dot(axis)

	available := limits.Max

	contentArea := vmath.Rect{Max: inner.Size()}

	measure := newMarginCursor(vmath.Vec2{}, axis, cross)

	placed := make([]placedChild, 0, len(queries))
	for _, cq := range queries {
		minSize := cq.query.Min.Size().Dot(axis)
		prefSize := cq.query.Preferred.Size().Dot(axis)

		toPreferred := prefSize - minSize
		sizing := minSize
		if totalPreferred != 0 {
			sizing += limits.Max.Dot(axis) * (toPreferred / totalPreferred)
		}
		axisSizing := axis.Scale(sizing)

		var childLimits Limits
		if flow.Align == component.AlignStretch {
			childMargin, _ := g.Margins.Get(cq.entity)
			size := inner.Size().Min(limits.Max).Sub(childMargin.Size())
			childLimits = Limits{
				Min: size.Mul(cross),
				Max: size.Mul(cross).Add(axisSizing),
			}
		} else {
			childLimits = Limits{
				Max: available.Mul(cross).Add(axisSizing),
			}
		}

		block := UpdateSubtree(g, cq.entity, contentArea, childLimits)

		measure.put(block)
		placed = append(placed, placedChild{entity: cq.entity, block: block})
	}

	lineSize := measure.finish().Size()

	cursor := newMarginCursor(placementStart(flow.Direction, inner), axis, cross)

	for _, pc := range placed {
		height := pc.block.Rect.Size().Add(pc.block.Margin.Size()).Dot(cross)

		pos := cursor.put(pc.block).
			Add(cross.Scale(flow.Align.Offset(lineSize.Dot(cross), height)))

		scene.SetIfChanged(g.Rects, pc.entity, pc.block.Rect)
		scene.SetIfChanged(g.Positions, pc.entity, pos)
	}

	return cursor.finish()
}

// placementStart picks the inner corner the cursor runs from, so
// reverse directions grow from the far edge.
func placementStart(d component.Direction, inner vmath.Rect) vmath.Vec2 {
	switch d {
	case component.HorizontalReverse:
		return vmath.Vec2{X: inner.Max.X, Y: inner.Min.Y}
	case component.VerticalReverse:
		return vmath.Vec2{X: inner.Min.X, Y: inner.Max.Y}
	default:
		return inner.Min
	}
}
