package render

import (
	"github.com/gdamore/tcell/v2"
)

// RenderBuffer is a compositor backed by a Cell array with dirty tracking
// Renderers write here; FlushToScreen copies the result to a tcell.Screen
type RenderBuffer struct {
	cells   []Cell
	touched []bool
	width   int
	height  int
}

// NewRenderBuffer creates a buffer with the specified dimensions
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
		b.touched = make([]bool, size)
	} else {
		b.cells = b.cells[:size]
		b.touched = b.touched[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Size returns the buffer dimensions
func (b *RenderBuffer) Size() (int, int) {
	return b.width, b.height
}

// Clear resets all cells to empty using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = emptyCell
	b.touched[0] = false
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
	for filled := 1; filled < len(b.touched); filled *= 2 {
		copy(b.touched[filled:], b.touched[:filled])
	}
}

// inBounds returns true if in screen bounds
func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at (x, y); out of bounds returns the empty cell
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return emptyCell
	}
	return b.cells[y*b.width+x]
}

// Touched reports whether any renderer wrote to (x, y) this frame
func (b *RenderBuffer) Touched(x, y int) bool {
	if !b.inBounds(x, y) {
		return false
	}
	return b.touched[y*b.width+x]
}

// Set replaces the cell at (x, y)
func (b *RenderBuffer) Set(x, y int, c Cell) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx] = c
	b.touched[idx] = true
}

// SetRune writes a glyph and foreground, keeping the background already composited
func (b *RenderBuffer) SetRune(x, y int, r rune, fg RGB, attrs tcell.AttrMask) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx].Rune = r
	b.cells[idx].Fg = fg
	b.cells[idx].Attrs = attrs
	b.touched[idx] = true
}

// SetString writes s left to right from (x, y), clipped at the right edge
// Returns the column after the last written rune
func (b *RenderBuffer) SetString(x, y int, s string, fg, bg RGB, attrs tcell.AttrMask) int {
	for _, r := range s {
		b.Set(x, y, Cell{Rune: r, Fg: fg, Bg: bg, Attrs: attrs})
		x++
	}
	return x
}

// BlendBg mixes color into the existing background by alpha in [0,1]
func (b *RenderBuffer) BlendBg(x, y int, color RGB, alpha float64) {
	if !b.inBounds(x, y) || alpha <= 0 {
		return
	}
	idx := y*b.width + x
	b.cells[idx].Bg = b.cells[idx].Bg.Lerp(color, alpha)
	b.touched[idx] = true
}

// FillRow paints a full row background
func (b *RenderBuffer) FillRow(y int, bg RGB) {
	if y < 0 || y >= b.height {
		return
	}
	for x := 0; x < b.width; x++ {
		b.Set(x, y, Cell{Rune: ' ', Fg: RgbForeground, Bg: bg})
	}
}

// FlushToScreen writes every cell to the screen; untouched cells render as background
func (b *RenderBuffer) FlushToScreen(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		row := y * b.width
		for x := 0; x < b.width; x++ {
			c := b.cells[row+x]
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			screen.SetContent(x, y, r, nil, c.Style())
		}
	}
}
