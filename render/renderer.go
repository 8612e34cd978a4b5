// Package render composites a resolved scene graph into terminal
// cells and flushes only what changed.
package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"weft/core"
	"weft/scene"
	"weft/vmath"
)

// Renderer walks the scene graph depth-first, composites every node
// into a cell buffer and diffs the result onto the screen. Frames
// whose graph version has not moved since the last draw are skipped
// entirely.
type Renderer struct {
	buf   *Buffer
	last  uint64
	drawn bool
}

// NewRenderer creates a renderer with a buffer of the given size.
func NewRenderer(width, height int) *Renderer {
	return &Renderer{buf: NewBuffer(width, height)}
}

// Resize drops the previous frame and forces the next Frame to draw.
func (r *Renderer) Resize(width, height int) {
	r.buf.Resize(width, height)
	r.drawn = false
}

// Frame draws the subtree under root if anything changed since the
// last call and reports whether a draw happened. The caller shows the
// screen.
func (r *Renderer) Frame(g *scene.Graph, root core.Entity, background tcell.Style, screen tcell.Screen) bool {
	if r.drawn && g.Version() == r.last {
		return false
	}

	r.buf.Clear(background)
	r.walk(g, root, vmath.Vec2{})
	r.buf.Flush(screen)

	// Sampled after the walk so the screen-position writes performed
	// there do not retrigger the next frame.
	r.last = g.Version()
	r.drawn = true
	return true
}

// walk accumulates each node's screen origin from its parent's origin
// and local position, records it, draws the node and recurses. Later
// siblings and children paint over earlier content.
func (r *Renderer) walk(g *scene.Graph, e core.Entity, origin vmath.Vec2) {
	pos, _ := g.Positions.Get(e)
	origin = origin.Add(pos)
	scene.SetIfChanged(g.Screens, e, origin)

	if rect, ok := g.Rects.Get(e); ok {
		r.drawNode(g, e, rect.Translate(origin))
	}

	children, _ := g.Children.Get(e)
	for _, child := range children {
		r.walk(g, child, origin)
	}
}

func (r *Renderer) drawNode(g *scene.Graph, e core.Entity, bounds vmath.Rect) {
	x0, y0, x1, y1 := cellBounds(bounds)

	if fill, ok := g.Fills.Get(e); ok {
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				r.buf.Set(x, y, ' ', fill.Style)
			}
		}
	}

	if border, ok := g.Borders.Get(e); ok {
		Box(r.buf, x0, y0, x1, y1, border.Line, border.Style)
	}

	if text, ok := g.Texts.Get(e); ok {
		DrawTextClipped(r.buf, x0, y0, x1-x0, y1-y0, text.Content, text.Style)
	}
}

// cellBounds rounds a layout rect onto the integer cell grid.
func cellBounds(r vmath.Rect) (x0, y0, x1, y1 int) {
	x0 = int(math.Round(r.Min.X))
	y0 = int(math.Round(r.Min.Y))
	x1 = int(math.Round(r.Max.X))
	y1 = int(math.Round(r.Max.Y))
	return x0, y0, x1, y1
}
