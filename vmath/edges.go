package vmath

// Edges is spacing between an outer and an inner bounds, one value per side.
// Used for both margins and padding; negative values are allowed for
// margins and pull neighbors closer.
type Edges struct {
	Left, Right, Top, Bottom float64
}

func NewEdges(left, right, top, bottom float64) Edges {
	return Edges{Left: left, Right: right, Top: top, Bottom: bottom}
}

// EdgesEven returns edges with the same distance on all four sides
func EdgesEven(distance float64) Edges {
	return Edges{Left: distance, Right: distance, Top: distance, Bottom: distance}
}

// Size returns the summed spacing per axis
func (e Edges) Size() Vec2 {
	return Vec2{X: e.Left + e.Right, Y: e.Top + e.Bottom}
}

// InAxis returns the margins on the two faces crossed when travelling along
// axis: back is on the face met first (the -axis face), front on the face
// left through (the +axis face). Axis components select the faces by sign,
// so negated axes swap the pair and negative margin values pass through
// untouched.
func (e Edges) InAxis(axis Vec2) (back, front float64) {
	lead := Vec2{X: e.Left, Y: e.Top}
	trail := Vec2{X: e.Right, Y: e.Bottom}
	fwd := axis.Max(Vec2{})
	rev := axis.Neg().Max(Vec2{})
	back = lead.Dot(fwd) + trail.Dot(rev)
	front = trail.Dot(fwd) + lead.Dot(rev)
	return back, front
}
