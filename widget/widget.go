// Package widget provides composable building blocks that mount scene
// subtrees into a frame. A widget is a declarative description; Mount
// turns it into entities on the frame's graph.
package widget

import (
	"weft/app"
	"weft/component"
	"weft/core"
	"weft/vmath"
)

// node stages components while options run. Mount copies the staged
// values onto a fresh entity.
type node struct {
	flow     *component.FlowComponent
	padding  *vmath.Edges
	margin   *vmath.Edges
	size     *vmath.Unit
	minSize  *vmath.Unit
	offset   *vmath.Unit
	anchor   *vmath.Unit
	fill     *component.FillComponent
	border   *component.BorderComponent
	text     *component.TextComponent
	children []app.Widget
}

// Option configures a Panel at mount time, when the frame and its
// theme are available.
type Option func(f *app.Frame, n *node)

// Panel is the one concrete widget. Row, Column, Box and Label are
// constructors that pre-stage its options.
type Panel struct {
	opts []Option
}

// Compile-time check that Panel implements app.Widget
var _ app.Widget = (*Panel)(nil)

// Mount applies the options, mounts children depth-first and builds
// the entity carrying the staged components.
func (p *Panel) Mount(f *app.Frame) core.Entity {
	var n node
	for _, opt := range p.opts {
		opt(f, &n)
	}

	ids := make([]core.Entity, 0, len(n.children))
	for _, child := range n.children {
		ids = append(ids, child.Mount(f))
	}

	b := f.Graph.NewNode()
	if n.flow != nil {
		b = b.WithFlow(*n.flow)
	}
	if n.padding != nil {
		b = b.WithPadding(*n.padding)
	}
	if n.margin != nil {
		b = b.WithMargin(*n.margin)
	}
	if n.size != nil {
		b = b.WithSize(*n.size)
	}
	if n.minSize != nil {
		b = b.WithMinSize(*n.minSize)
	}
	if n.offset != nil {
		b = b.WithOffset(*n.offset)
	}
	if n.anchor != nil {
		b = b.WithAnchor(*n.anchor)
	}
	if n.fill != nil {
		b = b.WithFill(*n.fill)
	}
	if n.border != nil {
		b = b.WithBorder(*n.border)
	}
	if n.text != nil {
		b = b.WithText(*n.text)
	}
	if len(ids) > 0 {
		b = b.WithChildren(ids...)
	}
	return b.Build()
}

// Row lays its children out left to right.
func Row(opts ...Option) *Panel {
	return flowPanel(component.Horizontal, opts)
}

// Column lays its children out top to bottom.
func Column(opts ...Option) *Panel {
	return flowPanel(component.Vertical, opts)
}

// Box stacks its children on top of each other, or acts as a plain
// leaf when it has none.
func Box(opts ...Option) *Panel {
	return &Panel{opts: opts}
}

func flowPanel(d component.Direction, opts []Option) *Panel {
	base := func(f *app.Frame, n *node) {
		n.flow = &component.FlowComponent{Direction: d}
	}
	return &Panel{opts: append([]Option{base}, opts...)}
}

// Adopt wraps an already mounted entity so it can be composed as a
// child of a widget tree.
func Adopt(e core.Entity) app.Widget {
	return adopted(e)
}

type adopted core.Entity

func (a adopted) Mount(f *app.Frame) core.Entity {
	return core.Entity(a)
}
