package component

import "time"

// LifecycleState is the shared spawn/live/death progression of every agent
type LifecycleState uint8

const (
	StateSpawning LifecycleState = iota // Fading in, not targetable
	StateActive                         // Participates in targeting and proliferation
	StateDying                          // Fading out, references to it are cleared
	StateDead                           // Awaiting purge
)

// lifecycleTransitions lists legal moves; same-state moves are no-ops
var lifecycleTransitions = [4][4]bool{
	StateSpawning: {StateActive: true, StateDying: true},
	StateActive:   {StateDying: true},
	StateDying:    {StateDead: true},
	StateDead:     {},
}

// String returns state name
func (s LifecycleState) String() string {
	switch s {
	case StateSpawning:
		return "spawning"
	case StateActive:
		return "active"
	case StateDying:
		return "dying"
	case StateDead:
		return "dead"
	default:
		return "unknown"
	}
}

// CanTransition reports whether moving from s to next is legal
func (s LifecycleState) CanTransition(next LifecycleState) bool {
	if s > StateDead || next > StateDead {
		return false
	}
	return lifecycleTransitions[s][next]
}

// LifecycleComponent drives spawn fade-in and death fade-out
type LifecycleComponent struct {
	State LifecycleState

	// Elapsed is time spent in the current state
	Elapsed time.Duration

	SpawnDuration time.Duration
	DeathDuration time.Duration
	StartScale    float64

	// Rise is the upward offset eased out during spawn (upgrades only)
	Rise float64
}

// Transition moves to next if legal and resets Elapsed
// Returns false for illegal or same-state moves
func (l *LifecycleComponent) Transition(next LifecycleState) bool {
	if !l.State.CanTransition(next) {
		return false
	}
	l.State = next
	l.Elapsed = 0
	return true
}

// Alive reports whether the entity is not Dead
func (l LifecycleComponent) Alive() bool {
	return l.State != StateDead
}

// Targetable reports whether the entity is eligible for spatial queries
func (l LifecycleComponent) Targetable() bool {
	return l.State == StateActive
}

// Expiring reports whether the entity is Dying or Dead
func (l LifecycleComponent) Expiring() bool {
	return l.State == StateDying || l.State == StateDead
}
