package render

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Theme carries the palette shared by the stock widgets. Colors stay
// in colorful's space so accents can be blended smoothly; they are
// converted to tcell only at the edge.
type Theme struct {
	Background colorful.Color
	Surface    colorful.Color
	Text       colorful.Color
	Muted      colorful.Color
	Accent     colorful.Color
	AccentAlt  colorful.Color
	Border     colorful.Color
}

// DefaultTheme is a dark palette tuned for 24-bit terminals.
func DefaultTheme() Theme {
	return Theme{
		Background: hex("#14161b"),
		Surface:    hex("#1e2128"),
		Text:       hex("#d5d8de"),
		Muted:      hex("#6b7280"),
		Accent:     hex("#4cc2ff"),
		AccentAlt:  hex("#b388ff"),
		Border:     hex("#3a3f4b"),
	}
}

// LightTheme mirrors the default palette on a bright background.
func LightTheme() Theme {
	return Theme{
		Background: hex("#f4f4f2"),
		Surface:    hex("#e7e7e3"),
		Text:       hex("#24292f"),
		Muted:      hex("#848b95"),
		Accent:     hex("#0969da"),
		AccentAlt:  hex("#8250df"),
		Border:     hex("#b4b9c2"),
	}
}

func hex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("render: bad theme color " + s)
	}
	return c
}

// Blend mixes a into b in Hcl space, which keeps perceived lightness
// steady mid-blend.
func Blend(a, b colorful.Color, t float64) colorful.Color {
	return a.BlendHcl(b, t).Clamped()
}

// ToTcell converts to the terminal's 24-bit color model.
func ToTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Style is the base text-on-background style.
func (t Theme) Style() tcell.Style {
	return tcell.StyleDefault.
		Foreground(ToTcell(t.Text)).
		Background(ToTcell(t.Background))
}

// SurfaceStyle is the style for raised panels.
func (t Theme) SurfaceStyle() tcell.Style {
	return tcell.StyleDefault.
		Foreground(ToTcell(t.Text)).
		Background(ToTcell(t.Surface))
}

// MutedStyle dims secondary text on the base background.
func (t Theme) MutedStyle() tcell.Style {
	return tcell.StyleDefault.
		Foreground(ToTcell(t.Muted)).
		Background(ToTcell(t.Background))
}

// BorderStyle is the style for box borders on panels.
func (t Theme) BorderStyle() tcell.Style {
	return tcell.StyleDefault.
		Foreground(ToTcell(t.Border)).
		Background(ToTcell(t.Surface))
}

// AccentStyle blends the two accent colors by t and paints text with
// the result, for animated highlights.
func (t Theme) AccentStyle(blend float64) tcell.Style {
	return tcell.StyleDefault.
		Foreground(ToTcell(Blend(t.Accent, t.AccentAlt, blend))).
		Background(ToTcell(t.Surface))
}

// AccentFill puts the blended accent in the background, for color
// chips and other filled indicators where only the background shows.
func (t Theme) AccentFill(blend float64) tcell.Style {
	return tcell.StyleDefault.
		Foreground(ToTcell(t.Background)).
		Background(ToTcell(Blend(t.Accent, t.AccentAlt, blend)))
}
