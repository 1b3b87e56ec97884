package renderer

import (
	"github.com/lixenwraith/antigen/render"
)

// CancerRenderer draws cancer cells as marker-tinted discs with the marker label
type CancerRenderer struct{}

// NewCancerRenderer creates a cancer cell renderer
func NewCancerRenderer() *CancerRenderer {
	return &CancerRenderer{}
}

// Render implements SystemRenderer
func (r *CancerRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	for _, c := range ctx.Snap.Cancers {
		color, ok := render.MarkerColor(c.Marker)
		if !ok {
			color = render.RgbCancerUnmarked
		}
		render.FillDisc(buf, ctx.Viewport, c.Pos, c.Size*c.Scale/2, color, c.Opacity)

		// Unknown markers draw the body only
		if label, ok := render.MarkerGlyph(c.Marker); ok && c.Opacity > 0.3 {
			render.CenterLabel(buf, ctx.Viewport, c.Pos, label, render.RgbCancerLabel)
		}
	}
}
