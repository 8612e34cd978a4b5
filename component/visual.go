package component

import "github.com/gdamore/tcell/v2"

// FillComponent paints an entity's rect with a background style
type FillComponent struct {
	Style tcell.Style
}

// TextComponent draws text clipped to the entity's rect
type TextComponent struct {
	Content string
	Style   tcell.Style
}

// LineType specifies box drawing character style
type LineType uint8

const (
	LineSingle  LineType = iota // ┌─┐│└┘
	LineDouble                  // ╔═╗║╚╝
	LineRounded                 // ╭─╮│╰╯
	LineHeavy                   // ┏━┓┃┗┛
	LineNone                    // spaces (invisible border with padding)
)

// BorderComponent draws a box just inside the entity's rect edge
type BorderComponent struct {
	Line  LineType
	Style tcell.Style
}
