package system

import (
	"time"

	"github.com/lixenwraith/antigen/component"
	"github.com/lixenwraith/antigen/engine"
	"github.com/lixenwraith/antigen/event"
	"github.com/lixenwraith/antigen/parameter"
)

// BindingSystem resolves contact between hunters and their targets into kills or rejections
type BindingSystem struct {
	base
}

// NewBindingSystem creates a new binding system
func NewBindingSystem(world *engine.World) engine.System {
	s := &BindingSystem{base: newBase(world, "binding")}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *BindingSystem) Init() {
	s.enabled = true
}

// Priority returns the system's priority
func (s *BindingSystem) Priority() int {
	return parameter.PriorityBinding
}

// EventTypes returns the event types BindingSystem handles
func (s *BindingSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSystemToggle,
		event.EventGameReset,
	}
}

// HandleEvent processes toggle and reset events
func (s *BindingSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
		return
	}
	s.handleToggle(ev)
}

// Update runs one kill resolution pass
func (s *BindingSystem) Update() {
	if !s.running() {
		return
	}
	ResolveKills(s.world, s.res.Time.DeltaTime)
}

// ResolveKills runs one resolution pass and returns the number of kills
//
// Cancer cells are visited last to first. For each T-cell targeting the cell within contact distance:
//   - already binding to it: the timer runs down; on expiry marker equality decides kill or reject
//   - otherwise a binding starts
//
// Each T-cell resolves at most once per pass; a cell killed in the pass is skipped afterwards
func ResolveKills(w *engine.World, dt time.Duration) int {
	cfg := w.Resources.Config.TCell
	tcells := w.Components.TCell.GetAllEntities()
	cancers := w.Components.Cancer.GetAllEntities()

	for _, e := range tcells {
		tc, ok := w.Components.TCell.GetComponent(e)
		if ok && tc.Resolved {
			tc.Resolved = false
			w.Components.TCell.SetComponent(e, tc)
		}
	}

	kills := 0
	for i := len(cancers) - 1; i >= 0; i-- {
		c := cancers[i]
		if !isTargetable(w, c) {
			continue
		}
		cc, _ := w.Components.Cancer.GetComponent(c)
		ctr, _ := w.Components.Transform.GetComponent(c)

		for _, e := range tcells {
			tc, ok := w.Components.TCell.GetComponent(e)
			if !ok || tc.Resolved || tc.Target != c {
				continue
			}
			lc, _ := w.Components.Lifecycle.GetComponent(e)
			if lc.Expiring() {
				continue
			}
			tr, _ := w.Components.Transform.GetComponent(e)
			if tr.Pos.Dist(ctr.Pos) > (tr.Size+ctr.Size)*parameter.ContactFactor {
				continue
			}

			pair := &event.BindingPayload{TCell: e, Cancer: c}

			if tc.BindingTarget != c {
				tc.BindingTarget = c
				tc.BindingRemaining = cfg.BindingDuration
				tc.SetBehavior(component.BehaviorBinding)
				tc.Resolved = true
				w.Components.TCell.SetComponent(e, tc)
				w.PushEvent(event.EventBindingStarted, pair)
				continue
			}

			tc.BindingRemaining -= dt
			if tc.BindingRemaining > 0 {
				w.Components.TCell.SetComponent(e, tc)
				continue
			}

			killed := false
			if cc.Marker != tc.Marker {
				tc.Reject(c)
				w.PushEvent(event.EventBindingRejected, pair)
			} else if startDying(w, c) {
				killed = true
				kills++
				w.PushEvent(event.EventCancerKilled, &event.CancerKilledPayload{
					Cancer:   c,
					TCell:    e,
					Marker:   cc.Marker,
					Position: ctr.Pos,
				})
				if tc.Upgrades.ChainReaction {
					w.PushEvent(event.EventChainTriggered, &event.ChainTriggerPayload{
						Origin:   c,
						TCell:    e,
						Marker:   cc.Marker,
						Position: ctr.Pos,
					})
					tc.SetBehavior(component.BehaviorBursting)
					tc.BurstElapsed = 0
				}
			}

			tc.ClearTarget()
			tc.Resolved = true
			w.Components.TCell.SetComponent(e, tc)

			if killed {
				break
			}
		}
	}
	return kills
}

// resolvedCount counts T-cells handled in the last resolution pass
func resolvedCount(w *engine.World) int {
	n := 0
	for _, e := range w.Components.TCell.GetAllEntities() {
		if tc, ok := w.Components.TCell.GetComponent(e); ok && tc.Resolved {
			n++
		}
	}
	return n
}
