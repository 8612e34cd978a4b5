// Command weft-dump runs one layout pass over a sample tree and
// prints the resolved geometry, for inspecting the solver without a
// terminal.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"weft/app"
	"weft/component"
	"weft/core"
	"weft/layout"
	"weft/render"
	"weft/scene"
	"weft/vmath"
	"weft/widget"
)

var (
	widthFlag  = flag.Float64("width", 80, "Viewport width in cells")
	heightFlag = flag.Float64("height", 24, "Viewport height in cells")
)

func main() {
	flag.Parse()

	f := app.NewFrame(render.DefaultTheme(), nil)
	root := sample().Mount(f)

	size := vmath.Vec2{X: *widthFlag, Y: *heightFlag}
	block := layout.UpdateSubtree(f.Graph, root, vmath.Rect{Max: size}, layout.Limits{Max: size})
	scene.SetIfChanged(f.Graph.Rects, root, block.Rect)
	scene.SetIfChanged(f.Graph.Positions, root, vmath.Vec2{})

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "entity\tkind\tpos\trect\tsize")
	dump(w, f.Graph, root, vmath.Vec2{}, 0)
	w.Flush()

	fmt.Printf("\n%d nodes, %d flows, %d labels, %d sized leaves\n",
		f.Graph.Count(),
		f.Graph.Flows.Len(),
		f.Graph.Texts.Len(),
		len(f.Graph.Query().With(f.Graph.Sizes).With(f.Graph.Rects).Execute()))
}

// sample is a tree touching every layout feature: nested flows, a
// reverse row, collapsing margins, padding and relative sizes.
func sample() app.Widget {
	return widget.Column(
		widget.Padding(1),
		widget.Children(
			widget.Row(
				widget.Align(component.AlignCenter),
				widget.Children(
					widget.Label("header"),
					widget.HSpacer(),
					widget.Label("right"),
				),
			),
			widget.Gap(0, 1),
			widget.Row(widget.Children(
				widget.Box(widget.Size(12, 4), widget.Margin(1)),
				widget.Box(widget.Size(12, 4), widget.Margin(2)),
				widget.Column(
					widget.Direction(component.VerticalReverse),
					widget.Children(
						widget.Label("bottom-up 1"),
						widget.Label("bottom-up 2"),
					),
				),
			)),
			widget.VSpacer(),
			widget.Label("footer"),
		),
	)
}

func dump(w *tabwriter.Writer, g *scene.Graph, e core.Entity, origin vmath.Vec2, depth int) {
	pos, _ := g.Positions.Get(e)
	origin = origin.Add(pos)

	rect, _ := g.Rects.Get(e)
	abs := rect.Translate(origin)
	fmt.Fprintf(w, "%s%d\t%s\t%.0f,%.0f\t%.0f,%.0f..%.0f,%.0f\t%.0fx%.0f\n",
		strings.Repeat("  ", depth), e, kind(g, e),
		pos.X, pos.Y,
		abs.Min.X, abs.Min.Y, abs.Max.X, abs.Max.Y,
		rect.Size().X, rect.Size().Y)

	children, _ := g.Children.Get(e)
	for _, child := range children {
		dump(w, g, child, origin, depth+1)
	}
}

func kind(g *scene.Graph, e core.Entity) string {
	if flow, ok := g.Flows.Get(e); ok {
		switch flow.Direction {
		case component.Vertical:
			return "column"
		case component.HorizontalReverse:
			return "row-rev"
		case component.VerticalReverse:
			return "col-rev"
		default:
			return "row"
		}
	}
	if text, ok := g.Texts.Get(e); ok {
		return fmt.Sprintf("label %q", text.Content)
	}
	if g.Children.Has(e) {
		return "stack"
	}
	return "box"
}
