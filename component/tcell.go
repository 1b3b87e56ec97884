package component

import (
	"time"

	"github.com/lixenwraith/antigen/core"
	"github.com/lixenwraith/antigen/parameter"
	"github.com/lixenwraith/antigen/vmath"
)

// TCellBehavior is the T-cell movement/interaction mode layered over the lifecycle
type TCellBehavior uint8

const (
	BehaviorWandering TCellBehavior = iota // Unarmed, roaming to random points
	BehaviorHunting                        // Armed, steering toward target if any
	BehaviorBinding                        // In contact, binding timer running
	BehaviorImpulse                        // Swipe-driven free flight
	BehaviorBursting                       // Post-kill pop, then Dying
)

var behaviorTransitions = [5][5]bool{
	BehaviorWandering: {BehaviorHunting: true, BehaviorImpulse: true},
	BehaviorHunting:   {BehaviorWandering: true, BehaviorBinding: true, BehaviorImpulse: true},
	BehaviorBinding:   {BehaviorHunting: true, BehaviorWandering: true, BehaviorBursting: true, BehaviorImpulse: true},
	BehaviorImpulse:   {BehaviorWandering: true, BehaviorHunting: true},
	BehaviorBursting:  {},
}

// String returns behavior name
func (b TCellBehavior) String() string {
	switch b {
	case BehaviorWandering:
		return "wandering"
	case BehaviorHunting:
		return "hunting"
	case BehaviorBinding:
		return "binding"
	case BehaviorImpulse:
		return "impulse"
	case BehaviorBursting:
		return "bursting"
	default:
		return "unknown"
	}
}

// CanTransition reports whether moving from b to next is legal
func (b TCellBehavior) CanTransition(next TCellBehavior) bool {
	if b > BehaviorBursting || next > BehaviorBursting {
		return false
	}
	return behaviorTransitions[b][next]
}

// TCellUpgrades records applied power-ups
type TCellUpgrades struct {
	Speed         bool
	ChainReaction bool
	// LifetimeStacks counts applied lifetime extensions
	LifetimeStacks int
}

// TCellComponent holds hunter state
// Target and BindingTarget are entity ids resolved against the world each access
type TCellComponent struct {
	Marker   core.Marker
	Behavior TCellBehavior

	Target           core.Entity
	BindingTarget    core.Entity
	BindingRemaining time.Duration
	Rejected         map[core.Entity]struct{}

	// Receptors are markers applied by drag-drop, capped at MaxReceptors
	Receptors []core.Marker

	Upgrades TCellUpgrades

	Heading  vmath.Vec2
	Velocity vmath.Vec2
	Impulse  vmath.Vec2

	Age      time.Duration
	Lifetime time.Duration

	RetargetCooldown  time.Duration
	OverrideRemaining time.Duration

	// Resolved is set when the cell was handled in the current kill resolution pass
	Resolved bool

	WanderTarget    vmath.Vec2
	HasWanderTarget bool
	WanderPause     time.Duration

	BurstElapsed time.Duration
}

// NewTCell returns an unbound T-cell of the given marker
func NewTCell(marker core.Marker, lifetime time.Duration) TCellComponent {
	tc := TCellComponent{
		Marker:   marker,
		Behavior: BehaviorWandering,
		Rejected: make(map[core.Entity]struct{}),
		Lifetime: lifetime,
	}
	if marker.Armed() {
		tc.Behavior = BehaviorHunting
	}
	return tc
}

// SetBehavior applies a legal behavior change
func (t *TCellComponent) SetBehavior(next TCellBehavior) bool {
	if t.Behavior == next {
		return true
	}
	if !t.Behavior.CanTransition(next) {
		return false
	}
	t.Behavior = next
	return true
}

// RestingBehavior is Hunting for armed cells and Wandering otherwise
func (t *TCellComponent) RestingBehavior() TCellBehavior {
	if t.Marker.Armed() {
		return BehaviorHunting
	}
	return BehaviorWandering
}

// ClearTarget drops target and binding together
func (t *TCellComponent) ClearTarget() {
	t.Target = core.NoEntity
	t.BindingTarget = core.NoEntity
	t.BindingRemaining = 0
	if t.Behavior == BehaviorBinding {
		t.SetBehavior(t.RestingBehavior())
	}
}

// SetMarker changes the marker and hard-resets interaction state
// No-op if the marker is unchanged
func (t *TCellComponent) SetMarker(m core.Marker) {
	if t.Marker == m {
		return
	}
	t.Marker = m
	t.ClearTarget()
	clear(t.Rejected)
	if t.Behavior == BehaviorWandering || t.Behavior == BehaviorHunting {
		t.SetBehavior(t.RestingBehavior())
	}
}

// CycleMarker advances to the next marker in core.MarkerOrder
func (t *TCellComponent) CycleMarker() {
	t.SetMarker(t.Marker.Next())
}

// ApplyReceptor arms the cell with a dropped receptor
// Rejects when the receptor cap is reached or the marker is already carried
func (t *TCellComponent) ApplyReceptor(m core.Marker) bool {
	if len(t.Receptors) >= parameter.MaxReceptors {
		return false
	}
	for _, r := range t.Receptors {
		if r == m {
			return false
		}
	}
	t.Receptors = append(t.Receptors, m)
	t.SetMarker(m)
	return true
}

// ApplyUpgrade records a power-up; lifetime extensions stack multiplicatively
func (t *TCellComponent) ApplyUpgrade(u core.UpgradeType, lifetimeMult float64) {
	switch u {
	case core.UpgradeSpeed:
		t.Upgrades.Speed = true
	case core.UpgradeChainReaction:
		t.Upgrades.ChainReaction = true
	case core.UpgradeLifetime:
		t.Lifetime = time.Duration(float64(t.Lifetime) * lifetimeMult)
		t.Upgrades.LifetimeStacks++
	}
}

// IsRejected reports whether e was previously rejected on marker mismatch
func (t *TCellComponent) IsRejected(e core.Entity) bool {
	_, ok := t.Rejected[e]
	return ok
}

// Reject records e as a mismatched target
func (t *TCellComponent) Reject(e core.Entity) {
	if t.Rejected == nil {
		t.Rejected = make(map[core.Entity]struct{})
	}
	t.Rejected[e] = struct{}{}
}
