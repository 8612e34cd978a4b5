package vmath

// Unit is a length given as absolute values plus a fraction of the parent
// extent. The layout solver only ever calls Resolve and never inspects the
// parts, so alternative length systems can be layered on top by resolving
// into Px up front.
type Unit struct {
	Px  Vec2
	Rel Vec2
}

// UnitPx returns a unit with only absolute values
func UnitPx(x, y float64) Unit {
	return Unit{Px: Vec2{X: x, Y: y}}
}

// UnitRel returns a unit relative to the parent extent
func UnitRel(x, y float64) Unit {
	return Unit{Rel: Vec2{X: x, Y: y}}
}

// Resolve computes the concrete extent against the parent extent
func (u Unit) Resolve(parent Vec2) Vec2 {
	return u.Px.Add(u.Rel.Mul(parent))
}
