package system

import (
	"github.com/lixenwraith/antigen/component"
	"github.com/lixenwraith/antigen/core"
	"github.com/lixenwraith/antigen/engine"
	"github.com/lixenwraith/antigen/event"
	"github.com/lixenwraith/antigen/parameter"
)

// TargetingSystem drops stale targets and assigns the nearest matching cancer cell to idle hunters
type TargetingSystem struct {
	base
}

// NewTargetingSystem creates a new targeting system
func NewTargetingSystem(world *engine.World) engine.System {
	s := &TargetingSystem{base: newBase(world, "targeting")}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *TargetingSystem) Init() {
	s.enabled = true
}

// Priority returns the system's priority
func (s *TargetingSystem) Priority() int {
	return parameter.PriorityTargeting
}

// EventTypes returns the event types TargetingSystem handles
func (s *TargetingSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSystemToggle,
		event.EventGameReset,
	}
}

// HandleEvent processes toggle and reset events
func (s *TargetingSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
		return
	}
	s.handleToggle(ev)
}

// Update clears invalid targets, then assigns new ones
func (s *TargetingSystem) Update() {
	if !s.running() {
		return
	}
	ClearInvalidTargets(s.world)
	AssignTargets(s.world)
}

// ClearInvalidTargets clears targets that are gone or expiring, along with their binding
func ClearInvalidTargets(w *engine.World) int {
	cleared := 0
	for _, e := range w.Components.TCell.GetAllEntities() {
		tc, ok := w.Components.TCell.GetComponent(e)
		if !ok || tc.Target == core.NoEntity {
			continue
		}
		if w.Components.Cancer.HasEntity(tc.Target) {
			if lc, ok := w.Components.Lifecycle.GetComponent(tc.Target); ok && !lc.Expiring() {
				continue
			}
		}
		tc.ClearTarget()
		w.Components.TCell.SetComponent(e, tc)
		cleared++
	}
	return cleared
}

// AssignTargets gives each eligible hunter the nearest Active same-marker cancer cell within detection radius
// Strict comparison keeps the first-seen candidate on distance ties
func AssignTargets(w *engine.World) int {
	radius := w.Resources.Config.TCell.DetectionRadius
	cancers := w.Components.Cancer.GetAllEntities()
	assigned := 0

	for _, e := range w.Components.TCell.GetAllEntities() {
		tc, ok := w.Components.TCell.GetComponent(e)
		if !ok || !canAcquire(w, e, &tc) {
			continue
		}
		tr, _ := w.Components.Transform.GetComponent(e)

		closest := core.NoEntity
		closestDist := radius
		for _, c := range cancers {
			cc, _ := w.Components.Cancer.GetComponent(c)
			if cc.Marker != tc.Marker || tc.IsRejected(c) || !isTargetable(w, c) {
				continue
			}
			ctr, _ := w.Components.Transform.GetComponent(c)
			if d := ctr.Pos.Dist(tr.Pos); d < closestDist {
				closest = c
				closestDist = d
			}
		}

		if closest != core.NoEntity {
			tc.Target = closest
			w.Components.TCell.SetComponent(e, tc)
			assigned++
		}
	}
	return assigned
}

func canAcquire(w *engine.World, e core.Entity, tc *component.TCellComponent) bool {
	if !tc.Marker.Armed() || tc.Target != core.NoEntity {
		return false
	}
	if tc.RetargetCooldown > 0 || tc.OverrideRemaining > 0 {
		return false
	}
	if tc.Behavior == component.BehaviorBursting || tc.Behavior == component.BehaviorImpulse {
		return false
	}
	return isTargetable(w, e)
}
