package main

import (
	"math"
	"time"

	"weft/app"
	"weft/component"
	"weft/core"
	"weft/scene"
)

// clockSystem keeps the header clock on wall time.
type clockSystem struct {
	label core.Entity
}

func (s *clockSystem) Priority() int { return 10 }

func (s *clockSystem) Update(f *app.Frame, dt time.Duration) {
	scene.SetIfChanged(f.Graph.Texts, s.label, component.TextComponent{
		Content: time.Now().Format("15:04:05"),
		Style:   f.Theme.Value().MutedStyle(),
	})
}

// pulseSystem breathes the accent swatch between the theme's two
// accent colors, making the per-cell diffing visible.
type pulseSystem struct {
	box     core.Entity
	elapsed time.Duration
	paused  bool
}

func (s *pulseSystem) Priority() int { return 20 }

func (s *pulseSystem) Update(f *app.Frame, dt time.Duration) {
	if s.paused {
		return
	}
	s.elapsed += dt
	blend := (math.Sin(s.elapsed.Seconds()*2) + 1) / 2
	scene.SetIfChanged(f.Graph.Fills, s.box, component.FillComponent{
		Style: f.Theme.Value().AccentFill(blend),
	})
}
