package vmath

// Rect defines the outer bounds of a node by two corner points.
// Inverted and negative-size rects are representable; all arithmetic
// tolerates them.
type Rect struct {
	Min, Max Vec2
}

// RectFromPosSize builds a rect with Min at pos extending by size
func RectFromPosSize(pos, size Vec2) Rect {
	return Rect{Min: pos, Max: pos.Add(size)}
}

// RectBetween builds the bounding rect of two points given in any order
func RectBetween(a, b Vec2) Rect {
	return Rect{Min: a.Min(b), Max: a.Max(b)}
}

func (r Rect) Size() Vec2 {
	return r.Max.Sub(r.Min)
}

func (r Rect) Pos() Vec2 {
	return r.Min
}

// Inset shrinks the rect inward by the given edges
func (r Rect) Inset(e Edges) Rect {
	return Rect{
		Min: r.Min.Add(Vec2{X: e.Left, Y: e.Top}),
		Max: r.Max.Sub(Vec2{X: e.Right, Y: e.Bottom}),
	}
}

// Pad grows the rect outward by the given edges, the exact inverse of Inset
func (r Rect) Pad(e Edges) Rect {
	return Rect{
		Min: r.Min.Sub(Vec2{X: e.Left, Y: e.Top}),
		Max: r.Max.Add(Vec2{X: e.Right, Y: e.Bottom}),
	}
}

func (r Rect) Translate(v Vec2) Rect {
	return Rect{Min: r.Min.Add(v), Max: r.Max.Add(v)}
}

// ClampSize limits the rect size to [lo, hi] keeping Min fixed
func (r Rect) ClampSize(lo, hi Vec2) Rect {
	return Rect{Min: r.Min, Max: r.Min.Add(r.Size().Clamp(lo, hi))}
}

// Merge returns the smallest rect containing both r and o
func (r Rect) Merge(o Rect) Rect {
	return Rect{Min: r.Min.Min(o.Min), Max: r.Max.Max(o.Max)}
}

// Support returns the signed extent of the rect along direction d.
// Each component contributes the corner furthest along d, so a cursor
// walking in either axis direction can align leading edges by
// subtracting Support(-axis) and advance by Support(axis).
func (r Rect) Support(d Vec2) float64 {
	return max(r.Min.X*d.X, r.Max.X*d.X) + max(r.Min.Y*d.Y, r.Max.Y*d.Y)
}
