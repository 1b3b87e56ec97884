package renderer

import (
	"sync/atomic"

	"github.com/lixenwraith/antigen/core"
	"github.com/lixenwraith/antigen/render"
	"github.com/lixenwraith/antigen/vmath"
)

// TargetLineRenderer draws a dotted line from each hunting T-cell to its target
// Hidden by default; toggled from the keyboard
type TargetLineRenderer struct {
	visible atomic.Bool
	targets map[core.Entity]vmath.Vec2
}

// NewTargetLineRenderer creates a hidden target line renderer
func NewTargetLineRenderer() *TargetLineRenderer {
	return &TargetLineRenderer{
		targets: make(map[core.Entity]vmath.Vec2),
	}
}

// IsVisible implements VisibilityToggle
func (r *TargetLineRenderer) IsVisible() bool {
	return r.visible.Load()
}

// Toggle flips visibility and returns the new value
func (r *TargetLineRenderer) Toggle() bool {
	for {
		old := r.visible.Load()
		if r.visible.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Render implements SystemRenderer
func (r *TargetLineRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	clear(r.targets)
	for _, c := range ctx.Snap.Cancers {
		r.targets[c.ID] = c.Pos
	}

	for _, t := range ctx.Snap.TCells {
		if t.Target == core.NoEntity {
			continue
		}
		pos, ok := r.targets[t.Target]
		if !ok {
			continue
		}
		render.DrawLine(buf, ctx.Viewport, t.Pos, pos, '·', render.RgbTargetLine)
	}
}
