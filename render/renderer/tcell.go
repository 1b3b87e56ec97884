package renderer

import (
	"github.com/lixenwraith/antigen/engine"
	"github.com/lixenwraith/antigen/render"
)

// TCellRenderer draws T-cells; body color follows behavior, label follows marker
type TCellRenderer struct{}

// NewTCellRenderer creates a T-cell renderer
func NewTCellRenderer() *TCellRenderer {
	return &TCellRenderer{}
}

// Render implements SystemRenderer
func (r *TCellRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	for _, t := range ctx.Snap.TCells {
		render.FillDisc(buf, ctx.Viewport, t.Pos, t.Size*t.Scale/2, bodyColor(t), t.Opacity*0.85)

		if t.Opacity <= 0.3 {
			continue
		}
		if label, ok := render.MarkerGlyph(t.Marker); ok {
			render.CenterLabel(buf, ctx.Viewport, t.Pos, label, render.RgbTCellLabel)
		} else if !t.Marker.Armed() {
			render.CenterLabel(buf, ctx.Viewport, t.Pos, "·", render.RgbTCellLabel)
		}
	}
}

func bodyColor(t engine.AgentSnapshot) render.RGB {
	switch t.Behavior {
	case "bursting":
		return render.RgbTCellBurst
	case "impulse":
		return render.RgbTCellImpulse
	}
	body := render.RgbTCellBody
	if tint, ok := render.MarkerColor(t.Marker); ok {
		body = body.Lerp(tint, 0.35)
	}
	if t.Speed {
		body = body.Scale(1.2)
	}
	return body
}
