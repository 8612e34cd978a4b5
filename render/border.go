package render

import (
	"github.com/gdamore/tcell/v2"

	"weft/component"
)

// boxChars contains box drawing character sets indexed by LineType.
var boxChars = [...][6]rune{
	component.LineSingle:  {'┌', '─', '┐', '│', '└', '┘'},
	component.LineDouble:  {'╔', '═', '╗', '║', '╚', '╝'},
	component.LineRounded: {'╭', '─', '╮', '│', '╰', '╯'},
	component.LineHeavy:   {'┏', '━', '┓', '┃', '┗', '┛'},
	component.LineNone:    {' ', ' ', ' ', ' ', ' ', ' '},
}

const (
	boxTL = 0 // top-left
	boxH  = 1 // horizontal
	boxTR = 2 // top-right
	boxV  = 3 // vertical
	boxBL = 4 // bottom-left
	boxBR = 5 // bottom-right
)

// Box draws a border ring just inside the half-open cell bounds
// [x0,x1) x [y0,y1). Regions thinner than 2 cells are skipped.
func Box(buf *Buffer, x0, y0, x1, y1 int, line component.LineType, style tcell.Style) {
	w, h := x1-x0, y1-y0
	if w < 2 || h < 2 {
		return
	}
	if line >= component.LineType(len(boxChars)) {
		line = component.LineSingle
	}

	chars := boxChars[line]

	buf.Set(x0, y0, chars[boxTL], style)
	buf.Set(x1-1, y0, chars[boxTR], style)
	buf.Set(x0, y1-1, chars[boxBL], style)
	buf.Set(x1-1, y1-1, chars[boxBR], style)

	for x := x0 + 1; x < x1-1; x++ {
		buf.Set(x, y0, chars[boxH], style)
		buf.Set(x, y1-1, chars[boxH], style)
	}

	for y := y0 + 1; y < y1-1; y++ {
		buf.Set(x0, y, chars[boxV], style)
		buf.Set(x1-1, y, chars[boxV], style)
	}
}

// HLine draws a horizontal rule across [x0,x1) at row y.
func HLine(buf *Buffer, x0, x1, y int, line component.LineType, style tcell.Style) {
	if line >= component.LineType(len(boxChars)) {
		line = component.LineSingle
	}
	ch := boxChars[line][boxH]
	for x := x0; x < x1; x++ {
		buf.Set(x, y, ch, style)
	}
}

// VLine draws a vertical rule across [y0,y1) at column x.
func VLine(buf *Buffer, x, y0, y1 int, line component.LineType, style tcell.Style) {
	if line >= component.LineType(len(boxChars)) {
		line = component.LineSingle
	}
	ch := boxChars[line][boxV]
	for y := y0; y < y1; y++ {
		buf.Set(x, y, ch, style)
	}
}
