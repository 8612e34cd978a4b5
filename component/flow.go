package component

import (
	"weft/vmath"
)

// FlowComponent manages the layout of an entity's children along one axis.
// Entities carrying it are flow containers; entities with children but no
// flow stack their children on top of each other instead.
type FlowComponent struct {
	Direction Direction
	Align     Align
}

// Direction selects the main axis of a flow and its travel direction
type Direction int

const (
	Horizontal Direction = iota
	Vertical
	HorizontalReverse
	VerticalReverse
)

// Axis returns the main and cross axis unit vectors.
// Reverse variants negate the main axis; the cross axis always points
// toward positive coordinates.
func (d Direction) Axis() (axis, cross vmath.Vec2) {
	switch d {
	case Vertical:
		return vmath.UnitY, vmath.UnitX
	case HorizontalReverse:
		return vmath.UnitX.Neg(), vmath.UnitY
	case VerticalReverse:
		return vmath.UnitY.Neg(), vmath.UnitX
	default:
		return vmath.UnitX, vmath.UnitY
	}
}

// Align controls child placement along the cross axis
type Align int

const (
	AlignStart   Align = iota // Align items to the start of the cross axis
	AlignCenter               // Align items to the center of the cross axis
	AlignEnd                  // Align items to the end of the cross axis
	AlignStretch              // Fill the cross axis
)

// Offset returns the cross-axis displacement for an item of the given size
// inside the total line size. Stretch items are sized to fill instead of
// being displaced.
func (a Align) Offset(total, size float64) float64 {
	switch a {
	case AlignCenter:
		return (total - size) / 2
	case AlignEnd:
		return total - size
	default:
		return 0
	}
}
