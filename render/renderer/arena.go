package renderer

import (
	"github.com/lixenwraith/antigen/render"
)

// ArenaRenderer paints the arena background and its frame
type ArenaRenderer struct{}

// NewArenaRenderer creates an arena renderer
func NewArenaRenderer() *ArenaRenderer {
	return &ArenaRenderer{}
}

// Render implements SystemRenderer
func (r *ArenaRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	cols, rows := ctx.ScreenWidth, ctx.ArenaRows()
	if cols < 2 || rows < 2 {
		return
	}

	for x := 1; x < cols-1; x++ {
		buf.SetRune(x, 0, '─', render.RgbArenaEdge, 0)
		buf.SetRune(x, rows-1, '─', render.RgbArenaEdge, 0)
	}
	for y := 1; y < rows-1; y++ {
		buf.SetRune(0, y, '│', render.RgbArenaEdge, 0)
		buf.SetRune(cols-1, y, '│', render.RgbArenaEdge, 0)
	}
	buf.SetRune(0, 0, '┌', render.RgbArenaEdge, 0)
	buf.SetRune(cols-1, 0, '┐', render.RgbArenaEdge, 0)
	buf.SetRune(0, rows-1, '└', render.RgbArenaEdge, 0)
	buf.SetRune(cols-1, rows-1, '┘', render.RgbArenaEdge, 0)
}
