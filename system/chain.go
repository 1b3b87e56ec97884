package system

import (
	"cmp"
	"slices"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/antigen/core"
	"github.com/lixenwraith/antigen/engine"
	"github.com/lixenwraith/antigen/event"
	"github.com/lixenwraith/antigen/parameter"
	"github.com/lixenwraith/antigen/vmath"
)

// ChainSystem schedules and executes cascade kills
// Cascades ride the engine delay queue, keyed by simulation time
type ChainSystem struct {
	base

	statScheduled *atomic.Int64
	statExecuted  *atomic.Int64
}

// NewChainSystem creates a new chain reaction system
func NewChainSystem(world *engine.World) engine.System {
	s := &ChainSystem{base: newBase(world, "chain")}
	s.statScheduled = s.res.Status.Ints.Get("chain.scheduled")
	s.statExecuted = s.res.Status.Ints.Get("chain.executed")
	s.Init()
	return s
}

// Init resets session state for new game
func (s *ChainSystem) Init() {
	s.enabled = true
	s.statScheduled.Store(0)
	s.statExecuted.Store(0)
}

// Priority returns the system's priority
func (s *ChainSystem) Priority() int {
	return parameter.PriorityChain
}

// EventTypes returns the event types ChainSystem handles
func (s *ChainSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSystemToggle,
		event.EventGameReset,
		event.EventChainTriggered,
		event.EventChainKill,
	}
}

// HandleEvent processes chain events
func (s *ChainSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
		return
	}
	if s.handleToggle(ev) || !s.enabled {
		return
	}

	switch ev.Type {
	case event.EventChainTriggered:
		if p, ok := ev.Payload.(*event.ChainTriggerPayload); ok {
			s.trigger(p)
		}
	case event.EventChainKill:
		if p, ok := ev.Payload.(*event.ChainKillPayload); ok {
			s.kill(p)
		}
	}
}

// Update is a no-op; all work is event-driven
func (s *ChainSystem) Update() {}

// trigger schedules kills on the nearest same-marker Active cells around the origin
func (s *ChainSystem) trigger(p *event.ChainTriggerPayload) {
	cfg := s.res.Config.Chain
	targets := ChainTargets(s.world, p.Origin, p.Marker, p.Position, cfg.Count)
	for rank, target := range targets {
		s.world.ScheduleEvent(cfg.DelayStep*time.Duration(rank+1), event.EventChainKill, &event.ChainKillPayload{
			Target: target,
			Origin: p.Origin,
			Rank:   rank,
		})
		s.statScheduled.Add(1)
	}
}

// kill executes one scheduled cascade kill; skipped if the target is gone or already expiring
func (s *ChainSystem) kill(p *event.ChainKillPayload) {
	cc, ok := s.comp.Cancer.GetComponent(p.Target)
	if !ok {
		return
	}
	if !startDying(s.world, p.Target) {
		return
	}
	tr, _ := s.comp.Transform.GetComponent(p.Target)
	s.statExecuted.Add(1)
	s.world.PushEvent(event.EventCancerKilled, &event.CancerKilledPayload{
		Cancer:   p.Target,
		Marker:   cc.Marker,
		Position: tr.Pos,
		Chained:  true,
	})
}

// ChainTargets returns up to count Active cancer cells of marker, excluding origin, nearest first
// Ties keep store order
func ChainTargets(w *engine.World, origin core.Entity, marker core.Marker, at vmath.Vec2, count int) []core.Entity {
	type candidate struct {
		e    core.Entity
		dist float64
	}
	var candidates []candidate
	for _, c := range w.Components.Cancer.GetAllEntities() {
		if c == origin || !isTargetable(w, c) {
			continue
		}
		cc, _ := w.Components.Cancer.GetComponent(c)
		if cc.Marker != marker {
			continue
		}
		tr, _ := w.Components.Transform.GetComponent(c)
		candidates = append(candidates, candidate{e: c, dist: tr.Pos.DistSq(at)})
	}

	slices.SortStableFunc(candidates, func(a, b candidate) int {
		return cmp.Compare(a.dist, b.dist)
	})

	n := min(count, len(candidates))
	out := make([]core.Entity, n)
	for i := range n {
		out[i] = candidates[i].e
	}
	return out
}
