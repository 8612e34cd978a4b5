package layout

import (
	"testing"

	"weft/component"
	"weft/core"
	"weft/scene"
	"weft/vmath"
)

// runPass drives a full layout the way the frame loop does: resolve
// the subtree against a window-sized content area, then write the
// root's own rect and position.
func runPass(g *scene.Graph, root core.Entity, size vmath.Vec2) Block {
	block := UpdateSubtree(g, root, vmath.Rect{Max: size}, Limits{Max: size})
	scene.SetIfChanged(g.Rects, root, block.Rect)
	scene.SetIfChanged(g.Positions, root, vmath.Vec2{})
	return block
}

func pos(t *testing.T, g *scene.Graph, e core.Entity) vmath.Vec2 {
	t.Helper()
	p, ok := g.Positions.Get(e)
	if !ok {
		t.Fatalf("Expected position for entity %d", e)
	}
	return p
}

func rect(t *testing.T, g *scene.Graph, e core.Entity) vmath.Rect {
	t.Helper()
	r, ok := g.Rects.Get(e)
	if !ok {
		t.Fatalf("Expected rect for entity %d", e)
	}
	return r
}

func TestFlowTwoLeavesStart(t *testing.T) {
	g := scene.NewGraph()

	c1 := g.NewNode().WithSize(vmath.UnitPx(100, 50)).Build()
	c2 := g.NewNode().WithSize(vmath.UnitPx(50, 80)).Build()
	root := g.NewNode().
		WithFlow(component.FlowComponent{Direction: component.Horizontal, Align: component.AlignStart}).
		WithChildren(c1, c2).
		Build()

	block := runPass(g, root, vmath.Vec2{X: 300, Y: 100})

	if got := block.Rect.Size(); got != (vmath.Vec2{X: 150, Y: 80}) {
		t.Errorf("Expected container size {150 80}, got %+v", got)
	}
	if got := pos(t, g, c1); got != (vmath.Vec2{}) {
		t.Errorf("Expected first child at {0 0}, got %+v", got)
	}
	if got := pos(t, g, c2); got != (vmath.Vec2{X: 100}) {
		t.Errorf("Expected second child at {100 0}, got %+v", got)
	}
	if got := rect(t, g, c1).Size(); got != (vmath.Vec2{X: 100, Y: 50}) {
		t.Errorf("Expected first child size {100 50}, got %+v", got)
	}
}

func TestFlowCrossAlignCenter(t *testing.T) {
	g := scene.NewGraph()

	c1 := g.NewNode().WithSize(vmath.UnitPx(100, 50)).Build()
	c2 := g.NewNode().WithSize(vmath.UnitPx(50, 80)).Build()
	root := g.NewNode().
		WithFlow(component.FlowComponent{Direction: component.Horizontal, Align: component.AlignCenter}).
		WithChildren(c1, c2).
		Build()

	runPass(g, root, vmath.Vec2{X: 300, Y: 100})

	if got := pos(t, g, c1); got != (vmath.Vec2{Y: 15}) {
		t.Errorf("Expected shorter child centered at {0 15}, got %+v", got)
	}
	if got := pos(t, g, c2); got != (vmath.Vec2{X: 100}) {
		t.Errorf("Expected taller child at {100 0}, got %+v", got)
	}
}

func TestFlowMarginFlush(t *testing.T) {
	g := scene.NewGraph()

	child := g.NewNode().
		WithSize(vmath.UnitPx(20, 20)).
		WithMargin(vmath.NewEdges(10, 10, 0, 0)).
		Build()
	root := g.NewNode().
		WithFlow(component.FlowComponent{Direction: component.Horizontal}).
		WithChildren(child).
		Build()

	block := runPass(g, root, vmath.Vec2{X: 300, Y: 100})

	if got := block.Rect.Size().X; got != 40 {
		t.Errorf("Expected container width 40, got %v", got)
	}
	if got := pos(t, g, child); got != (vmath.Vec2{X: 10}) {
		t.Errorf("Expected child at {10 0}, got %+v", got)
	}
}

func TestFlowNegativeMarginGap(t *testing.T) {
	tests := map[string]struct {
		trailing float64
		leading  float64
		wantX    float64
	}{
		"partial cancellation": {-2, 5, 13},
		"clamped to zero":      {-5, -2, 10},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			g := scene.NewGraph()

			c1 := g.NewNode().
				WithSize(vmath.UnitPx(10, 10)).
				WithMargin(vmath.NewEdges(0, tc.trailing, 0, 0)).
				Build()
			c2 := g.NewNode().
				WithSize(vmath.UnitPx(10, 10)).
				WithMargin(vmath.NewEdges(tc.leading, 0, 0, 0)).
				Build()
			root := g.NewNode().
				WithFlow(component.FlowComponent{Direction: component.Horizontal}).
				WithChildren(c1, c2).
				Build()

			runPass(g, root, vmath.Vec2{X: 300, Y: 100})

			if got := pos(t, g, c2).X; got != tc.wantX {
				t.Errorf("Expected second child at x=%v, got %v", tc.wantX, got)
			}
		})
	}
}

func TestFlowStretchFillsCross(t *testing.T) {
	g := scene.NewGraph()

	child := g.NewNode().
		WithSize(vmath.UnitPx(10, 5)).
		WithMargin(vmath.NewEdges(2, 2, 1, 1)).
		Build()
	root := g.NewNode().
		WithFlow(component.FlowComponent{Direction: component.Horizontal, Align: component.AlignStretch}).
		WithChildren(child).
		Build()

	runPass(g, root, vmath.Vec2{X: 100, Y: 40})

	if got := rect(t, g, child).Size(); got != (vmath.Vec2{X: 10, Y: 38}) {
		t.Errorf("Expected child stretched to {10 38}, got %+v", got)
	}
	if got := pos(t, g, child); got != (vmath.Vec2{X: 2, Y: 1}) {
		t.Errorf("Expected child at {2 1}, got %+v", got)
	}
}

func TestFlowVertical(t *testing.T) {
	g := scene.NewGraph()

	c1 := g.NewNode().WithSize(vmath.UnitPx(30, 10)).Build()
	c2 := g.NewNode().WithSize(vmath.UnitPx(30, 20)).Build()
	root := g.NewNode().
		WithFlow(component.FlowComponent{Direction: component.Vertical}).
		WithChildren(c1, c2).
		Build()

	block := runPass(g, root, vmath.Vec2{X: 120, Y: 80})

	if got := block.Rect.Size(); got != (vmath.Vec2{X: 30, Y: 30}) {
		t.Errorf("Expected container size {30 30}, got %+v", got)
	}
	if got := pos(t, g, c2); got != (vmath.Vec2{Y: 10}) {
		t.Errorf("Expected second child at {0 10}, got %+v", got)
	}
}

func TestFlowHorizontalReverse(t *testing.T) {
	g := scene.NewGraph()

	c1 := g.NewNode().WithSize(vmath.UnitPx(30, 10)).Build()
	c2 := g.NewNode().WithSize(vmath.UnitPx(20, 10)).Build()
	root := g.NewNode().
		WithFlow(component.FlowComponent{Direction: component.HorizontalReverse}).
		WithChildren(c1, c2).
		Build()

	block := runPass(g, root, vmath.Vec2{X: 100, Y: 20})

	if got := pos(t, g, c1); got != (vmath.Vec2{X: 70}) {
		t.Errorf("Expected first child flush right at {70 0}, got %+v", got)
	}
	if got := pos(t, g, c2); got != (vmath.Vec2{X: 50}) {
		t.Errorf("Expected second child at {50 0}, got %+v", got)
	}
	if got := block.Rect.Size(); got != (vmath.Vec2{X: 50, Y: 10}) {
		t.Errorf("Expected container size {50 10}, got %+v", got)
	}
	if got := block.Rect.Min; got != (vmath.Vec2{X: 50}) {
		t.Errorf("Expected container hugging the far edge at min {50 0}, got %+v", got)
	}
}

func TestFlowPadding(t *testing.T) {
	g := scene.NewGraph()

	child := g.NewNode().WithSize(vmath.UnitPx(10, 10)).Build()
	root := g.NewNode().
		WithFlow(component.FlowComponent{Direction: component.Horizontal}).
		WithPadding(vmath.EdgesEven(5)).
		WithChildren(child).
		Build()

	block := runPass(g, root, vmath.Vec2{X: 100, Y: 50})

	if got := block.Rect.Size(); got != (vmath.Vec2{X: 20, Y: 20}) {
		t.Errorf("Expected padded container size {20 20}, got %+v", got)
	}
	if got := pos(t, g, child); got != (vmath.Vec2{X: 5, Y: 5}) {
		t.Errorf("Expected child inside padding at {5 5}, got %+v", got)
	}
}

func TestFlowShrinkProportional(t *testing.T) {
	g := scene.NewGraph()

	c1 := g.NewNode().
		WithSize(vmath.UnitPx(100, 10)).
		WithMinSize(vmath.UnitPx(40, 10)).
		Build()
	c2 := g.NewNode().WithSize(vmath.UnitPx(100, 10)).Build()
	root := g.NewNode().
		WithFlow(component.FlowComponent{Direction: component.Horizontal}).
		WithChildren(c1, c2).
		Build()

	runPass(g, root, vmath.Vec2{X: 100, Y: 20})

	// c1 keeps its minimum plus a share of the space proportional to
	// its stretch range, c2 shrinks harder.
	if got := rect(t, g, c1).Size(); got != (vmath.Vec2{X: 70, Y: 10}) {
		t.Errorf("Expected constrained first child {70 10}, got %+v", got)
	}
	if got := rect(t, g, c2).Size(); got != (vmath.Vec2{X: 50, Y: 10}) {
		t.Errorf("Expected constrained second child {50 10}, got %+v", got)
	}
}

func TestFlowZeroPreferred(t *testing.T) {
	g := scene.NewGraph()

	c1 := g.NewNode().Build()
	c2 := g.NewNode().Build()
	root := g.NewNode().
		WithFlow(component.FlowComponent{Direction: component.Horizontal}).
		WithChildren(c1, c2).
		Build()

	block := runPass(g, root, vmath.Vec2{X: 100, Y: 50})

	if got := block.Rect.Size(); got != (vmath.Vec2{}) {
		t.Errorf("Expected zero container size, got %+v", got)
	}
	if got := pos(t, g, c1); got != (vmath.Vec2{}) {
		t.Errorf("Expected first child at origin, got %+v", got)
	}
	if got := pos(t, g, c2); got != (vmath.Vec2{}) {
		t.Errorf("Expected second child at origin, got %+v", got)
	}
}

func TestClampContainment(t *testing.T) {
	g := scene.NewGraph()

	child := g.NewNode().WithSize(vmath.UnitPx(500, 500)).Build()
	root := g.NewNode().
		WithFlow(component.FlowComponent{Direction: component.Horizontal}).
		WithChildren(child).
		Build()

	block := runPass(g, root, vmath.Vec2{X: 100, Y: 60})

	if got := block.Rect.Size(); got != (vmath.Vec2{X: 100, Y: 60}) {
		t.Errorf("Expected container clamped to {100 60}, got %+v", got)
	}
	if got := rect(t, g, child).Size(); got != (vmath.Vec2{X: 100, Y: 60}) {
		t.Errorf("Expected child clamped to {100 60}, got %+v", got)
	}
}

func TestLeafClamp(t *testing.T) {
	g := scene.NewGraph()
	leaf := g.NewNode().WithSize(vmath.UnitPx(500, 500)).Build()

	block := UpdateSubtree(g, leaf, vmath.Rect{Max: vmath.Vec2{X: 100, Y: 60}}, Limits{
		Max: vmath.Vec2{X: 100, Y: 60},
	})

	if got := block.Rect.Size(); got != (vmath.Vec2{X: 100, Y: 60}) {
		t.Errorf("Expected leaf clamped to {100 60}, got %+v", got)
	}
}

func TestLeafOffsetAnchor(t *testing.T) {
	g := scene.NewGraph()

	leaf := g.NewNode().
		WithSize(vmath.UnitPx(10, 4)).
		WithOffset(vmath.UnitPx(3, 2)).
		WithAnchor(vmath.UnitRel(0.5, 0.5)).
		Build()

	block := UpdateSubtree(g, leaf, vmath.Rect{Max: vmath.Vec2{X: 100, Y: 50}}, Limits{
		Max: vmath.Vec2{X: 100, Y: 50},
	})

	want := vmath.Rect{Min: vmath.Vec2{X: -2}, Max: vmath.Vec2{X: 8, Y: 4}}
	if block.Rect != want {
		t.Errorf("Expected anchored rect %+v, got %+v", want, block.Rect)
	}
}

func TestIdempotence(t *testing.T) {
	g := scene.NewGraph()

	c1 := g.NewNode().WithSize(vmath.UnitPx(100, 50)).Build()
	c2 := g.NewNode().WithSize(vmath.UnitPx(50, 80)).Build()
	root := g.NewNode().
		WithFlow(component.FlowComponent{Direction: component.Horizontal}).
		WithChildren(c1, c2).
		Build()

	first := runPass(g, root, vmath.Vec2{X: 300, Y: 100})
	version := g.Version()

	second := runPass(g, root, vmath.Vec2{X: 300, Y: 100})

	if first != second {
		t.Errorf("Expected identical blocks across passes, got %+v then %+v", first, second)
	}
	if g.Version() != version {
		t.Error("Expected repeated pass to suppress every write")
	}
}

func TestStackContainer(t *testing.T) {
	g := scene.NewGraph()

	c1 := g.NewNode().
		WithSize(vmath.UnitPx(10, 10)).
		WithOffset(vmath.UnitPx(4, 4)).
		Build()
	c2 := g.NewNode().WithSize(vmath.UnitPx(20, 8)).Build()
	root := g.NewNode().
		WithPadding(vmath.EdgesEven(1)).
		WithChildren(c1, c2).
		Build()

	block := runPass(g, root, vmath.Vec2{X: 100, Y: 40})

	want := vmath.Rect{Max: vmath.Vec2{X: 22, Y: 16}}
	if block.Rect != want {
		t.Errorf("Expected union bounds %+v, got %+v", want, block.Rect)
	}

	wantC1 := vmath.Rect{Min: vmath.Vec2{X: 5, Y: 5}, Max: vmath.Vec2{X: 15, Y: 15}}
	if got := rect(t, g, c1); got != wantC1 {
		t.Errorf("Expected offset child rect %+v, got %+v", wantC1, got)
	}
}

func TestStackResetsPositions(t *testing.T) {
	g := scene.NewGraph()

	child := g.NewNode().WithSize(vmath.UnitPx(10, 10)).Build()
	root := g.NewNode().WithChildren(child).Build()

	g.Positions.Set(child, vmath.Vec2{X: 99, Y: 99})

	runPass(g, root, vmath.Vec2{X: 100, Y: 40})

	if got := pos(t, g, child); got != (vmath.Vec2{}) {
		t.Errorf("Expected stale position reset to {0 0}, got %+v", got)
	}
}

func TestFlowNested(t *testing.T) {
	g := scene.NewGraph()

	a := g.NewNode().WithSize(vmath.UnitPx(20, 10)).Build()
	b := g.NewNode().WithSize(vmath.UnitPx(20, 15)).Build()
	inner := g.NewNode().
		WithFlow(component.FlowComponent{Direction: component.Vertical}).
		WithChildren(a, b).
		Build()
	c := g.NewNode().WithSize(vmath.UnitPx(30, 40)).Build()
	root := g.NewNode().
		WithFlow(component.FlowComponent{Direction: component.Horizontal}).
		WithChildren(inner, c).
		Build()

	block := runPass(g, root, vmath.Vec2{X: 200, Y: 100})

	if got := block.Rect.Size(); got != (vmath.Vec2{X: 50, Y: 40}) {
		t.Errorf("Expected root size {50 40}, got %+v", got)
	}
	if got := rect(t, g, inner).Size(); got != (vmath.Vec2{X: 20, Y: 25}) {
		t.Errorf("Expected nested container size {20 25}, got %+v", got)
	}
	if got := pos(t, g, b); got != (vmath.Vec2{Y: 10}) {
		t.Errorf("Expected nested child at {0 10}, got %+v", got)
	}
	if got := pos(t, g, c); got != (vmath.Vec2{X: 20}) {
		t.Errorf("Expected sibling leaf at {20 0}, got %+v", got)
	}
}

func TestQuerySizeLeaf(t *testing.T) {
	g := scene.NewGraph()

	leaf := g.NewNode().
		WithSize(vmath.UnitPx(10, 10)).
		WithMinSize(vmath.UnitPx(5, 5)).
		Build()

	q := QuerySize(g, leaf, vmath.Rect{Max: vmath.Vec2{X: 100, Y: 100}})

	if got := q.Min.Size(); got != (vmath.Vec2{X: 5, Y: 5}) {
		t.Errorf("Expected minimum size {5 5}, got %+v", got)
	}
	if got := q.Preferred.Size(); got != (vmath.Vec2{X: 10, Y: 10}) {
		t.Errorf("Expected preferred size {10 10}, got %+v", got)
	}
}

func TestQuerySizeFlowContainer(t *testing.T) {
	g := scene.NewGraph()

	child := g.NewNode().WithSize(vmath.UnitPx(10, 4)).Build()
	root := g.NewNode().
		WithFlow(component.FlowComponent{Direction: component.Horizontal}).
		WithPadding(vmath.EdgesEven(2)).
		WithChildren(child).
		Build()

	q := QuerySize(g, root, vmath.Rect{Max: vmath.Vec2{X: 100, Y: 50}})

	if got := q.Preferred.Size(); got != (vmath.Vec2{X: 14, Y: 8}) {
		t.Errorf("Expected preferred size {14 8}, got %+v", got)
	}
	if got := q.Min.Size(); got != (vmath.Vec2{X: 4, Y: 4}) {
		t.Errorf("Expected padding-only minimum {4 4}, got %+v", got)
	}
}

func TestRelativeSizeResolution(t *testing.T) {
	g := scene.NewGraph()

	child := g.NewNode().WithSize(vmath.UnitRel(0.5, 1)).Build()
	root := g.NewNode().
		WithFlow(component.FlowComponent{Direction: component.Horizontal}).
		WithChildren(child).
		Build()

	runPass(g, root, vmath.Vec2{X: 80, Y: 24})

	if got := rect(t, g, child).Size(); got != (vmath.Vec2{X: 40, Y: 24}) {
		t.Errorf("Expected child resolved to {40 24}, got %+v", got)
	}
}

func TestDanglingChildPanics(t *testing.T) {
	g := scene.NewGraph()

	child := g.NewNode().WithSize(vmath.UnitPx(10, 10)).Build()
	root := g.NewNode().
		WithFlow(component.FlowComponent{Direction: component.Horizontal}).
		WithChildren(child).
		Build()

	g.Despawn(child)

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic on dead child reference")
		}
	}()
	runPass(g, root, vmath.Vec2{X: 100, Y: 50})
}
