package layout

import "weft/vmath"

// marginCursor places a run of blocks one after another along an axis,
// collapsing adjacent margins the way CSS block layout does: the gap
// between two neighbours is the larger of the two touching margins,
// while negative margins subtract from the gap instead of competing in
// the max.
type marginCursor struct {
	pending    float64
	start      vmath.Vec2
	cursor     vmath.Vec2
	lineHeight float64
	axis       vmath.Vec2
	cross      vmath.Vec2
}

func newMarginCursor(start, axis, cross vmath.Vec2) marginCursor {
	return marginCursor{
		start:  start,
		cursor: start,
		axis:   axis,
		cross:  cross,
	}
}

// put advances past the collapsed gap, places the block flush against
// it and returns the block's placement position. The block's trailing
// margin is held back until the next put or finish.
func (c *marginCursor) put(b Block) vmath.Vec2 {
	back, front := b.Margin.InAxis(c.axis)

	advance := max(max(c.pending, 0), max(back, 0)) + min(c.pending, 0) + min(back, 0)
	advance = max(advance, 0)

	c.pending = front

	// Support against the negated axis aligns the block's leading edge
	// to the cursor, which flips correctly for reverse directions.
	c.cursor = c.cursor.Add(c.axis.Scale(advance + b.Rect.Support(c.axis.Neg())))

	crossBack, crossFront := b.Margin.InAxis(c.cross)
	pos := c.cursor.Add(c.cross.Scale(crossBack))

	c.cursor = c.cursor.Add(c.axis.Scale(b.Rect.Support(c.axis)))

	c.lineHeight = max(c.lineHeight, b.Rect.Size().Dot(c.cross)+crossBack+crossFront)

	return pos
}

// finish flushes the trailing margin and the line height into the
// cursor and returns the bounding rect of everything placed since the
// line started. The cursor is left at the start of a following line.
func (c *marginCursor) finish() vmath.Rect {
	c.cursor = c.cursor.Add(c.cross.Scale(c.lineHeight)).Add(c.axis.Scale(c.pending))
	c.pending = 0

	line := vmath.RectBetween(c.start, c.cursor)

	c.start = c.axis.Scale(c.start.Dot(c.axis)).Add(c.cross.Scale(c.cursor.Dot(c.cross)))
	c.cursor = c.start
	c.lineHeight = 0

	return line
}
