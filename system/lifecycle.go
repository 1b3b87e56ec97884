package system

import (
	"time"

	"github.com/lixenwraith/antigen/component"
	"github.com/lixenwraith/antigen/core"
	"github.com/lixenwraith/antigen/engine"
	"github.com/lixenwraith/antigen/parameter"
	"github.com/lixenwraith/antigen/vmath"
)

// advanceSpawn eases scale and opacity in with smoothstep; promotes to Active on completion
// Upward rise is applied per tick while spawning
func advanceSpawn(lc *component.LifecycleComponent, tr *component.TransformComponent, dt time.Duration) {
	if lc.State != component.StateSpawning {
		return
	}
	lc.Elapsed += dt

	t := 1.0
	if lc.SpawnDuration > 0 {
		t = vmath.Clamp(float64(lc.Elapsed)/float64(lc.SpawnDuration), 0, 1)
	}
	eased := vmath.Smoothstep(t)

	tr.Opacity = eased
	tr.Scale = lc.StartScale + (1-lc.StartScale)*eased
	if lc.Rise != 0 {
		tr.Pos.Y -= (1 - eased) * lc.Rise
	}

	if t >= 1 {
		tr.Opacity = 1
		tr.Scale = 1
		lc.Transition(component.StateActive)
	}
}

// advanceDeath fades scale and opacity linearly to zero; marks Dead on completion
func advanceDeath(lc *component.LifecycleComponent, tr *component.TransformComponent, dt time.Duration) {
	if lc.State != component.StateDying {
		return
	}
	lc.Elapsed += dt

	t := 1.0
	if lc.DeathDuration > 0 {
		t = vmath.Clamp(float64(lc.Elapsed)/float64(lc.DeathDuration), 0, 1)
	}
	fade := 1 - t
	tr.Scale = fade
	tr.Opacity = fade

	if t >= 1 {
		lc.Transition(component.StateDead)
	}
}

// driftRotation perturbs the drift heading and eases rotation toward it
func driftRotation(tr *component.TransformComponent, rng *engine.RandResource) {
	tr.TargetRotation += (rng.Float64() - 0.5) * parameter.RotationDrift
	tr.Rotation += (tr.TargetRotation - tr.Rotation) * parameter.RotationEase
}

// startDying moves a Spawning or Active entity to Dying
// Returns false if the entity is missing or already expiring
func startDying(w *engine.World, e core.Entity) bool {
	lc, ok := w.Components.Lifecycle.GetComponent(e)
	if !ok || lc.Expiring() {
		return false
	}
	if !lc.Transition(component.StateDying) {
		return false
	}
	w.Components.Lifecycle.SetComponent(e, lc)
	return true
}

// isTargetable reports whether e exists and is Active
func isTargetable(w *engine.World, e core.Entity) bool {
	lc, ok := w.Components.Lifecycle.GetComponent(e)
	return ok && lc.Targetable()
}
