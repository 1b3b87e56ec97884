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

// GestureSystem applies player gestures to the world
// Gestures are ignored outside the playing phase
type GestureSystem struct {
	base
}

// NewGestureSystem creates a new gesture system
func NewGestureSystem(world *engine.World) engine.System {
	s := &GestureSystem{base: newBase(world, "gesture")}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *GestureSystem) Init() {
	s.enabled = true
}

// Priority returns the system's priority
func (s *GestureSystem) Priority() int {
	return parameter.PriorityGesture
}

// EventTypes returns the event types GestureSystem handles
func (s *GestureSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSystemToggle,
		event.EventGameReset,
		event.EventSwipe,
		event.EventDropReceptor,
		event.EventDropUpgrade,
		event.EventCollectUpgrade,
		event.EventCycleMarker,
	}
}

// HandleEvent processes gesture events
func (s *GestureSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
		return
	}
	if s.handleToggle(ev) || !s.running() {
		return
	}

	switch ev.Type {
	case event.EventSwipe:
		if p, ok := ev.Payload.(*event.SwipePayload); ok {
			if ApplySwipe(s.world, p.Start, p.End, p.Duration().Seconds()) > 0 {
				s.world.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{SoundType: core.SoundSwipe})
			}
		}

	case event.EventDropReceptor:
		if p, ok := ev.Payload.(*event.DropReceptorPayload); ok {
			s.dropReceptor(p)
		}

	case event.EventDropUpgrade:
		if p, ok := ev.Payload.(*event.DropUpgradePayload); ok {
			s.dropUpgrade(p)
		}

	case event.EventCollectUpgrade:
		if p, ok := ev.Payload.(*event.CollectUpgradePayload); ok {
			s.collectUpgrade(p)
		}

	case event.EventCycleMarker:
		if p, ok := ev.Payload.(*event.CycleMarkerPayload); ok {
			tc, ok := s.comp.TCell.GetComponent(p.TCell)
			if !ok || !s.interactive(p.TCell) {
				return
			}
			tc.CycleMarker()
			s.comp.TCell.SetComponent(p.TCell, tc)
		}
	}
}

// Update is a no-op; gestures arrive as events
func (s *GestureSystem) Update() {}

// ApplySwipe pushes every T-cell near the segment start→end along the swipe direction
// Strength scales with swipe speed; duration is floored to avoid spikes on instant swipes
// Returns the number of T-cells affected
func ApplySwipe(w *engine.World, start, end vmath.Vec2, durationSec float64) int {
	cfg := w.Resources.Config.Gesture

	delta := end.Sub(start)
	dist := delta.Len()
	if dist < cfg.SwipeMinDistance {
		return 0
	}
	dir := delta.Scale(1 / dist)
	speed := dist / math.Max(durationSec, parameter.SwipeMinDuration.Seconds())
	impulse := dir.Scale(speed * cfg.SwipeImpulseFactor)

	affected := 0
	for _, e := range w.Components.TCell.GetAllEntities() {
		tr, ok := w.Components.Transform.GetComponent(e)
		if !ok || !interactive(w, e) {
			continue
		}
		if vmath.DistanceToSegment(tr.Pos, start, end) >= cfg.SwipeRadius {
			continue
		}
		tc, _ := w.Components.TCell.GetComponent(e)
		tc.Impulse = tc.Impulse.Add(impulse)
		tc.ClearTarget()
		tc.RetargetCooldown = cfg.SwipeCooldown
		w.Components.TCell.SetComponent(e, tc)
		affected++
	}
	return affected
}

// dropReceptor arms the first T-cell under the drop point that accepts the receptor
func (s *GestureSystem) dropReceptor(p *event.DropReceptorPayload) {
	if !p.Marker.Armed() {
		return
	}
	for _, e := range s.tcellsAt(p.Position) {
		tc, _ := s.comp.TCell.GetComponent(e)
		if !tc.ApplyReceptor(p.Marker) {
			continue
		}
		tc.OverrideRemaining = parameter.ReceptorOverride
		s.comp.TCell.SetComponent(e, tc)
		s.world.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{SoundType: core.SoundCollect})
		return
	}
}

// dropUpgrade moves a single-mode upgrade to the drop point and applies it to the first T-cell there
// With no T-cell under the point the upgrade stays where it was dropped
func (s *GestureSystem) dropUpgrade(p *event.DropUpgradePayload) {
	up, ok := s.comp.Upgrade.GetComponent(p.Upgrade)
	if !ok || up.Mode != core.ApplySingle || up.Collected || !s.interactive(p.Upgrade) {
		return
	}
	tr, _ := s.comp.Transform.GetComponent(p.Upgrade)
	tr.Pos = p.Position
	s.comp.Transform.SetComponent(p.Upgrade, tr)

	hits := s.tcellsAt(p.Position)
	if len(hits) == 0 {
		return
	}
	e := hits[0]
	tc, _ := s.comp.TCell.GetComponent(e)
	tc.ApplyUpgrade(up.Type, s.res.Config.TCell.LifetimeUpgradeMult)
	s.comp.TCell.SetComponent(e, tc)

	s.consume(p.Upgrade, up, 1)
}

// collectUpgrade applies a global-mode upgrade to every live T-cell
func (s *GestureSystem) collectUpgrade(p *event.CollectUpgradePayload) {
	up, ok := s.comp.Upgrade.GetComponent(p.Upgrade)
	if !ok || up.Mode != core.ApplyGlobal || up.Collected || !s.interactive(p.Upgrade) {
		return
	}

	lifetimeMult := s.res.Config.TCell.LifetimeUpgradeMult
	applied := 0
	for _, e := range s.comp.TCell.GetAllEntities() {
		if !s.interactive(e) {
			continue
		}
		tc, _ := s.comp.TCell.GetComponent(e)
		tc.ApplyUpgrade(up.Type, lifetimeMult)
		s.comp.TCell.SetComponent(e, tc)
		applied++
	}

	s.consume(p.Upgrade, up, applied)
}

// consume marks an upgrade collected and starts its fade-out
func (s *GestureSystem) consume(e core.Entity, up component.UpgradeComponent, targets int) {
	up.Collected = true
	s.comp.Upgrade.SetComponent(e, up)
	startDying(s.world, e)

	s.world.PushEvent(event.EventUpgradeApplied, &event.UpgradeAppliedPayload{
		Upgrade: e,
		Type:    up.Type,
		Targets: targets,
	})
}

// tcellsAt returns live T-cells whose drop radius contains p, in store order
func (s *GestureSystem) tcellsAt(p vmath.Vec2) []core.Entity {
	var hits []core.Entity
	factor := s.res.Config.Gesture.DropRadiusFactor
	for _, e := range s.comp.TCell.GetAllEntities() {
		tr, ok := s.comp.Transform.GetComponent(e)
		if !ok || !s.interactive(e) {
			continue
		}
		if tr.Pos.Dist(p) < tr.Size*factor {
			hits = append(hits, e)
		}
	}
	return hits
}

func (s *GestureSystem) interactive(e core.Entity) bool {
	return interactive(s.world, e)
}

// interactive reports whether e is Spawning or Active
func interactive(w *engine.World, e core.Entity) bool {
	lc, ok := w.Components.Lifecycle.GetComponent(e)
	return ok && !lc.Expiring()
}
