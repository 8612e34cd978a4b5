package main

import (
	"weft/app"
	"weft/component"
	"weft/core"
	"weft/vmath"
	"weft/widget"
)

// dashboard builds the demo tree and registers the systems animating
// it. The clock and pulse entities are mounted first so the systems
// can address them directly.
func dashboard(a *app.App, clockSys *clockSystem, pulseSys *pulseSystem) app.Widget {
	return app.WidgetFunc(func(f *app.Frame) core.Entity {
		clock := widget.Label("00:00:00", widget.Muted()).Mount(f)
		pulse := widget.Box(
			widget.Size(3, 1),
			widget.Fill(f.Theme.Value().AccentFill(0)),
		).Mount(f)

		clockSys.label = clock
		pulseSys.box = pulse
		a.Scheduler().Add(clockSys)
		a.Scheduler().Add(pulseSys)

		// The sidebar and content margins collapse to a 2-cell gutter.
		sidebar := widget.Column(
			widget.Surface(),
			widget.Border(component.LineSingle),
			widget.Padding(1),
			widget.MarginEdges(vmath.NewEdges(0, 1, 0, 0)),
			widget.Children(
				widget.Label("flows"),
				widget.Label("stacks"),
				widget.Label("margins"),
				widget.Label("themes"),
			),
		)

		content := widget.Column(
			widget.Border(component.LineRounded),
			widget.Padding(1),
			widget.MarginEdges(vmath.NewEdges(2, 0, 0, 0)),
			widget.Children(
				widget.Row(widget.Children(
					widget.Label("weft"),
					widget.Gap(1, 0),
					widget.Adopt(pulse),
					widget.HSpacer(),
					widget.Adopt(clock),
				)),
				widget.Gap(0, 1),
				widget.Label("two-pass layout over an entity graph"),
				widget.Label("margins collapse between siblings", widget.Muted()),
			),
		)

		return widget.Column(
			widget.Padding(1),
			widget.Children(
				widget.Row(
					widget.Align(component.AlignStretch),
					widget.Children(
						sidebar,
						content,
					),
				),
				widget.VSpacer(),
				widget.Label("p pauses the pulse, q quits", widget.Muted()),
			),
		).Mount(f)
	})
}
