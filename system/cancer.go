package system

import (
	"math"

	"github.com/lixenwraith/antigen/component"
	"github.com/lixenwraith/antigen/core"
	"github.com/lixenwraith/antigen/engine"
	"github.com/lixenwraith/antigen/event"
	"github.com/lixenwraith/antigen/parameter"
	"github.com/lixenwraith/antigen/vmath"
)

// CancerSystem advances cancer cells: jiggle, lifecycle fades, isolation-gated proliferation
type CancerSystem struct {
	base
}

// NewCancerSystem creates a new cancer system
func NewCancerSystem(world *engine.World) engine.System {
	s := &CancerSystem{base: newBase(world, "cancer")}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *CancerSystem) Init() {
	s.enabled = true
}

// Priority returns the system's priority
func (s *CancerSystem) Priority() int {
	return parameter.PriorityCancer
}

// EventTypes returns the event types CancerSystem handles
func (s *CancerSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSystemToggle,
		event.EventGameReset,
	}
}

// HandleEvent processes toggle and reset events
func (s *CancerSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
		return
	}
	s.handleToggle(ev)
}

// Update advances every cancer cell present at frame start
// Cells created by division this frame first update next frame
func (s *CancerSystem) Update() {
	if !s.running() {
		return
	}
	dt := s.res.Time.DeltaTime
	dtSec := dt.Seconds()

	for _, e := range s.comp.Cancer.GetAllEntities() {
		cc, ok := s.comp.Cancer.GetComponent(e)
		if !ok {
			continue
		}
		tr, _ := s.comp.Transform.GetComponent(e)
		lc, _ := s.comp.Lifecycle.GetComponent(e)
		if !lc.Alive() {
			continue
		}

		cc.JigglePhase += parameter.CancerJigglePhaseStep
		tr.Pos.X += math.Sin(cc.JigglePhase) * dtSec * parameter.CancerJiggleAmount
		tr.Pos.Y += math.Cos(cc.JigglePhase) * dtSec * parameter.CancerJiggleAmount

		switch lc.State {
		case component.StateSpawning:
			advanceSpawn(&lc, &tr, dt)
		case component.StateDying:
			advanceDeath(&lc, &tr, dt)
		case component.StateActive:
			driftRotation(&tr, s.res.Rand)
			s.comp.Transform.SetComponent(e, tr)
			s.proliferate(e, &cc, tr)
		}

		s.comp.Cancer.SetComponent(e, cc)
		s.comp.Transform.SetComponent(e, tr)
		s.comp.Lifecycle.SetComponent(e, lc)
	}
}

// proliferate runs the isolation timer and, when due, one division attempt
func (s *CancerSystem) proliferate(e core.Entity, cc *component.CancerComponent, tr component.TransformComponent) {
	cfg := s.res.Config.Cancer

	if !s.isIsolated(e, tr.Pos, cfg.ProliferationRadius) {
		s.resetTimer(cc)
		return
	}
	cc.SinceDivision += s.res.Time.DeltaTime

	if cc.SinceDivision < cc.Threshold || s.comp.Cancer.CountEntities() >= cfg.MaxCells {
		return
	}

	if s.res.Rand.Chance(cfg.ProliferationChance) {
		if pos, ok := s.findFreePosition(tr); ok {
			child := SpawnCancer(s.world, pos, tr.Size, cc.Marker, false)
			s.world.PushEvent(event.EventCancerDivided, &event.CancerDividedPayload{
				Parent:   e,
				Child:    child,
				Position: pos,
			})
		}
	}

	// Failed attempts wait a full new threshold
	s.resetTimer(cc)
}

func (s *CancerSystem) resetTimer(cc *component.CancerComponent) {
	cfg := s.res.Config.Cancer
	cc.SinceDivision = 0
	cc.Threshold = s.res.Rand.Duration(cfg.ProliferationTime, cfg.ProliferationVariance)
}

// isIsolated reports whether no other living cancer cell lies within radius of pos
func (s *CancerSystem) isIsolated(self core.Entity, pos vmath.Vec2, radius float64) bool {
	for _, other := range s.comp.Cancer.GetAllEntities() {
		if other == self {
			continue
		}
		lc, _ := s.comp.Lifecycle.GetComponent(other)
		if !lc.Alive() {
			continue
		}
		otr, ok := s.comp.Transform.GetComponent(other)
		if !ok {
			continue
		}
		if otr.Pos.Dist(pos) < radius {
			return false
		}
	}
	return true
}

// findFreePosition samples equally spaced directions one diameter out
// and accepts the first candidate clear of every cancer cell by 0.75 size
func (s *CancerSystem) findFreePosition(tr component.TransformComponent) (vmath.Vec2, bool) {
	return FindFreePosition(s.world, tr.Pos, tr.Size)
}

// FindFreePosition searches ProliferationAttempts directions around center at offset size
func FindFreePosition(w *engine.World, center vmath.Vec2, size float64) (vmath.Vec2, bool) {
	minGap := size * parameter.ProliferationMinGap
	cancers := w.Components.Cancer.GetAllEntities()

	for i := 0; i < parameter.ProliferationAttempts; i++ {
		angle := float64(i) / parameter.ProliferationAttempts * 2 * math.Pi
		candidate := center.Add(vmath.FromAngle(angle, size))

		free := true
		for _, other := range cancers {
			otr, ok := w.Components.Transform.GetComponent(other)
			if !ok {
				continue
			}
			if otr.Pos.Dist(candidate) < minGap {
				free = false
				break
			}
		}
		if free {
			return candidate, true
		}
	}
	return vmath.Vec2{}, false
}
