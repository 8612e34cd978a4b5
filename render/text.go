package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// DrawText writes s starting at the given cell, advancing by the
// display width of each rune and breaking on newlines. Tail cells of
// wide glyphs are zeroed so Flush leaves them to the terminal.
func DrawText(buf *Buffer, x, y int, s string, style tcell.Style) {
	col := x
	for _, r := range s {
		if r == '\n' {
			y++
			col = x
			continue
		}
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		buf.Set(col, y, r, style)
		for i := 1; i < w; i++ {
			buf.Set(col+i, y, 0, style)
		}
		col += w
	}
}

// DrawTextClipped draws s inside a width/height box, truncating each
// line with an ellipsis when it overflows.
func DrawTextClipped(buf *Buffer, x, y, maxWidth, maxHeight int, s string, style tcell.Style) {
	row := 0
	for _, line := range strings.Split(s, "\n") {
		if row >= maxHeight {
			return
		}
		if runewidth.StringWidth(line) > maxWidth {
			line = Truncate(line, maxWidth)
		}
		DrawText(buf, x, y+row, line, style)
		row++
	}
}

// TextExtent measures the cell footprint of s: the display width of
// the widest line and the number of lines.
func TextExtent(s string) (w, h int) {
	for _, line := range strings.Split(s, "\n") {
		w = max(w, runewidth.StringWidth(line))
		h++
	}
	return w, h
}

// Truncate shortens s to at most width display cells, replacing the
// tail with an ellipsis when it does not fit.
func Truncate(s string, width int) string {
	return runewidth.Truncate(s, width, "…")
}
