package render

import "github.com/gdamore/tcell/v2"

// Cell is one terminal cell in the composition buffer. A zero Rune
// marks a cell covered by the tail of a wide glyph to its left, which
// Flush must leave to the terminal.
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// Buffer composites one frame and diffs it against the previously
// flushed frame, so unchanged cells never reach the terminal.
type Buffer struct {
	cells  []Cell
	prev   []Cell
	width  int
	height int
}

// NewBuffer creates a buffer with the specified dimensions.
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocating only if capacity is
// insufficient. The previous frame is dropped, forcing a full repaint
// on the next Flush.
func (b *Buffer) Resize(width, height int) {
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.prev = nil
	b.width = width
	b.height = height
	b.Clear(tcell.StyleDefault)
}

// Clear resets all cells to a styled space using exponential copy.
func (b *Buffer) Clear(style tcell.Style) {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Rune: ' ', Style: style}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// Bounds returns the buffer dimensions.
func (b *Buffer) Bounds() (int, int) {
	return b.width, b.height
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Set writes one cell, ignoring out-of-bounds coordinates.
func (b *Buffer) Set(x, y int, r rune, style tcell.Style) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Style: style}
}

// Get returns the cell at the position, or a zero cell out of bounds.
func (b *Buffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// Flush writes every cell that differs from the previously flushed
// frame and returns how many cells changed. It does not Show; the
// caller controls when the terminal updates.
func (b *Buffer) Flush(screen tcell.Screen) int {
	full := len(b.prev) != len(b.cells)
	changed := 0
	for i, c := range b.cells {
		if !full && b.prev[i] == c {
			continue
		}
		if c.Rune != 0 {
			screen.SetContent(i%b.width, i/b.width, c.Rune, nil, c.Style)
		}
		changed++
	}
	if full {
		b.prev = make([]Cell, len(b.cells))
	}
	copy(b.prev, b.cells)
	return changed
}
