package app

import (
	"go.uber.org/zap"

	"weft/assets"
	"weft/core"
	"weft/render"
	"weft/scene"
	"weft/vmath"
)

// Frame is the shared state widgets mount into and systems update. One
// Frame owns one scene graph and the asset caches its nodes refer to.
type Frame struct {
	Graph  *scene.Graph
	Themes *assets.Cache[render.Theme]
	Theme  *assets.Handle[render.Theme]
	Size   vmath.Vec2
	Log    *zap.Logger
}

// Widget is anything that can mount a subtree into a frame and hand
// back its root entity.
type Widget interface {
	Mount(f *Frame) core.Entity
}

// WidgetFunc adapts a function to the Widget interface.
type WidgetFunc func(f *Frame) core.Entity

func (fn WidgetFunc) Mount(f *Frame) core.Entity {
	return fn(f)
}

// NewFrame creates an empty frame with the given theme installed.
func NewFrame(theme render.Theme, log *zap.Logger) *Frame {
	if log == nil {
		log = zap.NewNop()
	}
	themes := assets.NewCache[render.Theme]()
	return &Frame{
		Graph:  scene.NewGraph(),
		Themes: themes,
		Theme:  themes.Insert(theme),
		Log:    log,
	}
}

// SetTheme swaps the active theme, releasing the previous handle so
// the cache can reclaim its slot.
func (f *Frame) SetTheme(theme render.Theme) {
	old := f.Theme
	f.Theme = f.Themes.Insert(theme)
	old.Release()
}
