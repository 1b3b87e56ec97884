package system

import (
	"github.com/lixenwraith/antigen/component"
	"github.com/lixenwraith/antigen/engine"
	"github.com/lixenwraith/antigen/event"
	"github.com/lixenwraith/antigen/parameter"
)

// UpgradeSystem animates collectibles and expires them after their lifetime
type UpgradeSystem struct {
	base
}

// NewUpgradeSystem creates a new upgrade system
func NewUpgradeSystem(world *engine.World) engine.System {
	s := &UpgradeSystem{base: newBase(world, "upgrade")}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *UpgradeSystem) Init() {
	s.enabled = true
}

// Priority returns the system's priority
func (s *UpgradeSystem) Priority() int {
	return parameter.PriorityUpgrade
}

// EventTypes returns the event types UpgradeSystem handles
func (s *UpgradeSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSystemToggle,
		event.EventGameReset,
	}
}

// HandleEvent processes toggle and reset events
func (s *UpgradeSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
		return
	}
	s.handleToggle(ev)
}

// Update advances pulse, age and lifecycle of every upgrade
// Lifetime is only checked once the spawn animation completes
func (s *UpgradeSystem) Update() {
	if !s.running() {
		return
	}
	dt := s.res.Time.DeltaTime

	for _, e := range s.comp.Upgrade.GetAllEntities() {
		up, ok := s.comp.Upgrade.GetComponent(e)
		if !ok {
			continue
		}
		tr, _ := s.comp.Transform.GetComponent(e)
		lc, _ := s.comp.Lifecycle.GetComponent(e)
		if !lc.Alive() {
			continue
		}

		up.Pulse += dt.Seconds()
		up.Age += dt

		switch lc.State {
		case component.StateSpawning:
			advanceSpawn(&lc, &tr, dt)
		case component.StateActive:
			if up.Age >= up.Lifetime {
				lc.Transition(component.StateDying)
				advanceDeath(&lc, &tr, dt)
			}
		case component.StateDying:
			advanceDeath(&lc, &tr, dt)
		}

		s.comp.Upgrade.SetComponent(e, up)
		s.comp.Transform.SetComponent(e, tr)
		s.comp.Lifecycle.SetComponent(e, lc)
	}
}
