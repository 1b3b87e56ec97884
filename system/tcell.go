package system

import (
	"math"
	"time"

	"github.com/lixenwraith/antigen/component"
	"github.com/lixenwraith/antigen/core"
	"github.com/lixenwraith/antigen/engine"
	"github.com/lixenwraith/antigen/event"
	"github.com/lixenwraith/antigen/parameter"
	"github.com/lixenwraith/antigen/vmath"
)

// TCellSystem advances the T-cell state machine
//
// Per tick, first match wins:
//   - Dying: death fade
//   - Bursting: pop animation, then Dying
//   - Impulse physics while velocity is above threshold
//   - Lifetime expiry
//   - Wandering (unarmed), Binding (hold), Hunting (steer, chase speed, bounce)
type TCellSystem struct {
	base
}

// NewTCellSystem creates a new T-cell system
func NewTCellSystem(world *engine.World) engine.System {
	s := &TCellSystem{base: newBase(world, "tcell")}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *TCellSystem) Init() {
	s.enabled = true
}

// Priority returns the system's priority
func (s *TCellSystem) Priority() int {
	return parameter.PriorityTCell
}

// EventTypes returns the event types TCellSystem handles
func (s *TCellSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSystemToggle,
		event.EventGameReset,
	}
}

// HandleEvent processes toggle and reset events
func (s *TCellSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
		return
	}
	s.handleToggle(ev)
}

// Update advances every T-cell
func (s *TCellSystem) Update() {
	if !s.running() {
		return
	}
	dt := s.res.Time.DeltaTime

	for _, e := range s.comp.TCell.GetAllEntities() {
		tc, ok := s.comp.TCell.GetComponent(e)
		if !ok {
			continue
		}
		tr, _ := s.comp.Transform.GetComponent(e)
		lc, _ := s.comp.Lifecycle.GetComponent(e)
		if !lc.Alive() {
			continue
		}

		s.step(&tc, &tr, &lc, dt)

		s.comp.TCell.SetComponent(e, tc)
		s.comp.Transform.SetComponent(e, tr)
		s.comp.Lifecycle.SetComponent(e, lc)
	}
}

func (s *TCellSystem) step(tc *component.TCellComponent, tr *component.TransformComponent, lc *component.LifecycleComponent, dt time.Duration) {
	dtSec := dt.Seconds()

	if lc.State == component.StateDying {
		advanceDeath(lc, tr, dt)
		return
	}

	if tc.Behavior == component.BehaviorBursting {
		tc.BurstElapsed += dt
		t := vmath.Clamp(float64(tc.BurstElapsed)/float64(parameter.TCellBurstDuration), 0, 1)
		tr.Scale = 1 + parameter.TCellBurstScale*(1-t)
		tr.Opacity = 1
		if t >= 1 {
			lc.Transition(component.StateDying)
		}
		return
	}

	advanceSpawn(lc, tr, dt)

	if s.applyImpulse(tc, tr, dtSec) {
		return
	}

	driftRotation(tr, s.res.Rand)

	tc.Age += dt
	tc.RetargetCooldown = max(tc.RetargetCooldown-dt, 0)
	tc.OverrideRemaining = max(tc.OverrideRemaining-dt, 0)

	if tc.Age >= tc.Lifetime {
		tc.ClearTarget()
		lc.Transition(component.StateDying)
		return
	}

	if !tc.Marker.Armed() {
		s.wander(tc, tr, dt)
		return
	}

	if tc.BindingTarget != core.NoEntity {
		tc.Heading = tc.Heading.Scale(parameter.BindingHeadingDecay)
		return
	}

	if tc.Target != core.NoEntity {
		if ttr, ok := s.comp.Transform.GetComponent(tc.Target); ok {
			delta := ttr.Pos.Sub(tr.Pos)
			if delta.Len() > 0.001 {
				tc.Heading = delta.Normalize()
			}
		}
	}

	speed := s.effectiveSpeed(tc)
	if tc.Target != core.NoEntity {
		speed *= s.res.Config.TCell.ChaseSpeedMult
	}
	tr.Pos = tr.Pos.Add(tc.Heading.Scale(speed * dtSec))
	s.bounce(tc, tr)
}

// applyImpulse integrates swipe impulse; returns true while it overrides normal movement
func (s *TCellSystem) applyImpulse(tc *component.TCellComponent, tr *component.TransformComponent, dtSec float64) bool {
	if tc.Impulse.Len() > parameter.ImpulseInjectThreshold {
		tc.Velocity = tc.Velocity.Add(tc.Impulse.Scale(dtSec))
	}

	if tc.Velocity.Len() <= parameter.ImpulseActiveSpeed {
		if tc.Behavior == component.BehaviorImpulse {
			tc.SetBehavior(tc.RestingBehavior())
		}
		return false
	}

	tc.SetBehavior(component.BehaviorImpulse)

	tc.Velocity = tc.Velocity.Add(tc.Impulse.Sub(tc.Velocity).Scale(parameter.ImpulseSharpness * dtSec))
	tr.Pos = tr.Pos.Add(tc.Velocity.Scale(dtSec))
	tc.Velocity = tc.Velocity.Scale(math.Exp(-parameter.ImpulseDamping * dtSec))
	tc.Impulse = tc.Impulse.Scale(parameter.ImpulseDecay)

	arena := s.res.Arena
	tr.Pos = tr.Pos.Clamp(vmath.Vec2{}, arena.Size())
	return true
}

// wander roams between random interior points with pauses on arrival
func (s *TCellSystem) wander(tc *component.TCellComponent, tr *component.TransformComponent, dt time.Duration) {
	if !tc.HasWanderTarget {
		tc.WanderTarget = s.randomWanderPoint(tr.Size)
		tc.HasWanderTarget = true
	}

	if tc.WanderPause > 0 {
		tc.WanderPause -= dt
		if tc.WanderPause <= 0 {
			tc.WanderPause = 0
			tc.HasWanderTarget = false
		}
		return
	}

	delta := tc.WanderTarget.Sub(tr.Pos)
	dist := delta.Len()
	if dist < parameter.WanderArriveDistance {
		tc.WanderPause = parameter.WanderPauseMin + time.Duration(s.res.Rand.Float64()*float64(parameter.WanderPauseSpread))
		return
	}

	tc.Heading = delta.Scale(1 / dist)
	tr.Pos = tr.Pos.Add(tc.Heading.Scale(s.effectiveSpeed(tc) * dt.Seconds()))
}

func (s *TCellSystem) randomWanderPoint(size float64) vmath.Vec2 {
	arena := s.res.Arena
	margin := size * parameter.WanderMarginFactor
	pick := func(extent float64) float64 {
		if extent <= 2*margin {
			return extent / 2
		}
		return margin + s.res.Rand.Float64()*(extent-2*margin)
	}
	return vmath.V(pick(arena.Width), pick(arena.Height))
}

func (s *TCellSystem) effectiveSpeed(tc *component.TCellComponent) float64 {
	cfg := s.res.Config.TCell
	speed := cfg.BaseSpeed
	if tc.Upgrades.Speed {
		speed *= cfg.SpeedUpgradeMult
	}
	return speed
}

// bounce points the heading back inside when the cell crosses a half-size inset
func (s *TCellSystem) bounce(tc *component.TCellComponent, tr *component.TransformComponent) {
	arena := s.res.Arena
	half := tr.Size / 2
	if tr.Pos.X < half {
		tc.Heading.X = math.Abs(tc.Heading.X)
	} else if tr.Pos.X > arena.Width-half {
		tc.Heading.X = -math.Abs(tc.Heading.X)
	}
	if tr.Pos.Y < half {
		tc.Heading.Y = math.Abs(tc.Heading.Y)
	} else if tr.Pos.Y > arena.Height-half {
		tc.Heading.Y = -math.Abs(tc.Heading.Y)
	}
}
