package renderer

import (
	"github.com/lixenwraith/antigen/render"
	"github.com/lixenwraith/antigen/status"
)

// Layers holds renderers the input layer toggles at runtime
type Layers struct {
	TargetLines *TargetLineRenderer
}

// Install registers the default render pipeline with o
func Install(o *render.RenderOrchestrator, reg *status.Registry) Layers {
	targetLines := NewTargetLineRenderer()

	o.Register(NewArenaRenderer(), render.PriorityArena)
	o.Register(targetLines, render.PriorityTargetLine)
	o.Register(NewCancerRenderer(), render.PriorityCancer)
	o.Register(NewTCellRenderer(), render.PriorityTCell)
	o.Register(NewUpgradeRenderer(), render.PriorityUpgrade)
	o.Register(NewStatusBarRenderer(reg), render.PriorityUI)

	return Layers{TargetLines: targetLines}
}
