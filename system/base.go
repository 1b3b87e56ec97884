package system

import (
	"github.com/lixenwraith/antigen/engine"
	"github.com/lixenwraith/antigen/event"
)

// base carries the world handles and the enable toggle shared by every system
type base struct {
	world *engine.World
	res   *engine.Resource
	comp  *engine.ComponentStore

	name    string
	enabled bool
}

func newBase(w *engine.World, name string) base {
	return base{
		world:   w,
		res:     w.Resources,
		comp:    &w.Components,
		name:    name,
		enabled: true,
	}
}

// Name returns system's name
func (b *base) Name() string {
	return b.name
}

// handleToggle applies EventSystemToggle addressed to this system
// Returns true if the event was a toggle
func (b *base) handleToggle(ev event.GameEvent) bool {
	if ev.Type != event.EventSystemToggle {
		return false
	}
	if p, ok := ev.Payload.(*event.SystemTogglePayload); ok && p.System == b.name {
		b.enabled = p.Active
	}
	return true
}

// running reports whether agent updates should advance this frame
// Simulation freezes outside the playing phase
func (b *base) running() bool {
	return b.enabled && b.res.Game.Phase == engine.PhasePlaying
}
