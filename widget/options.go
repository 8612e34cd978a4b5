package widget

import (
	"github.com/gdamore/tcell/v2"

	"weft/app"
	"weft/component"
	"weft/vmath"
)

// Children sets the ordered child widgets.
func Children(ws ...app.Widget) Option {
	return func(f *app.Frame, n *node) {
		n.children = append(n.children, ws...)
	}
}

// Direction overrides the flow direction of a Row or Column, for the
// reverse variants.
func Direction(d component.Direction) Option {
	return func(f *app.Frame, n *node) {
		if n.flow == nil {
			n.flow = &component.FlowComponent{}
		}
		n.flow.Direction = d
	}
}

// Align sets cross-axis placement of children in a flow container.
func Align(a component.Align) Option {
	return func(f *app.Frame, n *node) {
		if n.flow == nil {
			n.flow = &component.FlowComponent{}
		}
		n.flow.Align = a
	}
}

// Size sets a fixed size in cells.
func Size(w, h float64) Option {
	return unitOption(vmath.UnitPx(w, h), func(n *node) **vmath.Unit { return &n.size })
}

// SizeRel sets a size as a fraction of the parent content area.
func SizeRel(x, y float64) Option {
	return unitOption(vmath.UnitRel(x, y), func(n *node) **vmath.Unit { return &n.size })
}

// MinSize sets the size floor in cells.
func MinSize(w, h float64) Option {
	return unitOption(vmath.UnitPx(w, h), func(n *node) **vmath.Unit { return &n.minSize })
}

// Offset displaces the widget from its resolved position.
func Offset(u vmath.Unit) Option {
	return unitOption(u, func(n *node) **vmath.Unit { return &n.offset })
}

// Anchor selects which point of the widget lands on the resolved
// position, as a fraction of its own size.
func Anchor(u vmath.Unit) Option {
	return unitOption(u, func(n *node) **vmath.Unit { return &n.anchor })
}

func unitOption(u vmath.Unit, field func(n *node) **vmath.Unit) Option {
	return func(f *app.Frame, n *node) {
		*field(n) = &u
	}
}

// Padding insets the content area evenly on all sides.
func Padding(d float64) Option {
	return PaddingEdges(vmath.EdgesEven(d))
}

// PaddingEdges insets the content area per side.
func PaddingEdges(e vmath.Edges) Option {
	return func(f *app.Frame, n *node) {
		n.padding = &e
	}
}

// Margin reserves even space around the widget, collapsing against
// sibling margins.
func Margin(d float64) Option {
	return MarginEdges(vmath.EdgesEven(d))
}

// MarginEdges reserves space around the widget per side.
func MarginEdges(e vmath.Edges) Option {
	return func(f *app.Frame, n *node) {
		n.margin = &e
	}
}

// Fill paints the widget rect with a style.
func Fill(style tcell.Style) Option {
	return func(f *app.Frame, n *node) {
		n.fill = &component.FillComponent{Style: style}
	}
}

// Surface paints the widget rect with the theme surface style.
func Surface() Option {
	return func(f *app.Frame, n *node) {
		n.fill = &component.FillComponent{Style: f.Theme.Value().SurfaceStyle()}
	}
}

// Border draws a box along the widget edge in the theme border style.
func Border(line component.LineType) Option {
	return func(f *app.Frame, n *node) {
		n.border = &component.BorderComponent{Line: line, Style: f.Theme.Value().BorderStyle()}
	}
}

// BorderStyled draws a box along the widget edge in an explicit style.
func BorderStyled(line component.LineType, style tcell.Style) Option {
	return func(f *app.Frame, n *node) {
		n.border = &component.BorderComponent{Line: line, Style: style}
	}
}

// TextStyle overrides the text style of a Label. No-op on widgets
// without text, so it must follow the Label constructor.
func TextStyle(style tcell.Style) Option {
	return func(f *app.Frame, n *node) {
		if n.text != nil {
			n.text.Style = style
		}
	}
}

// Muted renders a Label in the theme muted style.
func Muted() Option {
	return func(f *app.Frame, n *node) {
		if n.text != nil {
			n.text.Style = f.Theme.Value().MutedStyle()
		}
	}
}
