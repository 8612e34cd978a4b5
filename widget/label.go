package widget

import (
	"weft/app"
	"weft/component"
	"weft/render"
	"weft/vmath"
)

// Label is a text leaf sized to its content. The measured extent is
// also its floor so surrounding flows cannot collapse the text away.
func Label(content string, opts ...Option) *Panel {
	base := func(f *app.Frame, n *node) {
		w, h := render.TextExtent(content)
		size := vmath.UnitPx(float64(w), float64(h))
		n.size = &size
		minSize := size
		n.minSize = &minSize
		n.text = &component.TextComponent{
			Content: content,
			Style:   f.Theme.Value().Style(),
		}
	}
	return &Panel{opts: append([]Option{base}, opts...)}
}
