package renderer

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/antigen/core"
	"github.com/lixenwraith/antigen/render"
)

// UpgradeRenderer draws collectibles as pulsing discs with a type letter
// Global upgrades are marked with a trailing '*'
type UpgradeRenderer struct{}

// NewUpgradeRenderer creates an upgrade renderer
func NewUpgradeRenderer() *UpgradeRenderer {
	return &UpgradeRenderer{}
}

// Render implements SystemRenderer
func (r *UpgradeRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	for _, u := range ctx.Snap.Upgrades {
		color, ok := render.UpgradeColor(u.Upgrade)
		if !ok {
			continue
		}
		scale := u.Scale
		if u.Pulse > 0 {
			scale *= u.Pulse
		}
		render.FillDisc(buf, ctx.Viewport, u.Pos, u.Size*scale/2, color, u.Opacity)

		if u.Collected || u.Opacity <= 0.3 {
			continue
		}
		glyph, _ := render.UpgradeGlyph(u.Upgrade)
		x, y := ctx.WorldToCell(u.Pos)
		if ctx.InArena(x, y) {
			buf.SetRune(x, y, glyph, render.RgbUpgradeLabel, tcell.AttrBold)
		}
		if u.Mode == core.ApplyGlobal && ctx.InArena(x+1, y) {
			buf.SetRune(x+1, y, '*', render.RgbUpgradeLabel, tcell.AttrBold)
		}
	}
}
