package component

import (
	"testing"
	"time"

	"github.com/lixenwraith/antigen/core"
)

func TestLifecycleTransitions(t *testing.T) {
	tests := []struct {
		from, to LifecycleState
		legal    bool
	}{
		{StateSpawning, StateActive, true},
		{StateSpawning, StateDying, true},
		{StateActive, StateDying, true},
		{StateDying, StateDead, true},
		{StateActive, StateSpawning, false},
		{StateDead, StateActive, false},
		{StateDying, StateActive, false},
		{StateActive, StateDead, false},
	}
	for _, tt := range tests {
		if got := tt.from.CanTransition(tt.to); got != tt.legal {
			t.Errorf("%s -> %s: expected %v, got %v", tt.from, tt.to, tt.legal, got)
		}
	}
}

func TestLifecycleTransitionResetsElapsed(t *testing.T) {
	l := LifecycleComponent{State: StateActive, Elapsed: time.Second}
	if !l.Transition(StateDying) {
		t.Fatal("Active -> Dying should be legal")
	}
	if l.Elapsed != 0 {
		t.Errorf("Expected elapsed reset, got %v", l.Elapsed)
	}
	if l.Transition(StateActive) {
		t.Error("Dying -> Active should be illegal")
	}
	if !l.Expiring() || !l.Alive() {
		t.Error("Dying entity should be expiring and alive")
	}
}

func TestBehaviorBurstingIsTerminal(t *testing.T) {
	for b := BehaviorWandering; b <= BehaviorBursting; b++ {
		if BehaviorBursting.CanTransition(b) {
			t.Errorf("Bursting should not transition to %s", b)
		}
	}
}

func TestSetMarkerHardReset(t *testing.T) {
	tc := NewTCell(core.MarkerCD19, 20*time.Second)
	tc.Target = 7
	tc.BindingTarget = 7
	tc.BindingRemaining = 300 * time.Millisecond
	tc.Behavior = BehaviorBinding
	tc.Reject(9)

	tc.SetMarker(core.MarkerCD30)

	if tc.Target != core.NoEntity || tc.BindingTarget != core.NoEntity {
		t.Error("Expected target and binding cleared")
	}
	if tc.BindingRemaining != 0 {
		t.Errorf("Expected binding timer reset, got %v", tc.BindingRemaining)
	}
	if tc.IsRejected(9) {
		t.Error("Expected rejected set cleared")
	}
	if tc.Behavior != BehaviorHunting {
		t.Errorf("Expected hunting, got %s", tc.Behavior)
	}

	// Same marker is a no-op
	tc.Reject(4)
	tc.SetMarker(core.MarkerCD30)
	if !tc.IsRejected(4) {
		t.Error("Setting the same marker should not reset state")
	}
}

func TestCycleMarkerToNoneWanders(t *testing.T) {
	tc := NewTCell(core.MarkerCD4, 20*time.Second)
	tc.CycleMarker()
	if tc.Marker != core.MarkerNone {
		t.Errorf("Expected NONE after CD4, got %s", tc.Marker)
	}
	if tc.Behavior != BehaviorWandering {
		t.Errorf("Expected wandering, got %s", tc.Behavior)
	}
}

func TestApplyReceptorLimits(t *testing.T) {
	tc := NewTCell(core.MarkerNone, 20*time.Second)
	if !tc.ApplyReceptor(core.MarkerCD3) {
		t.Fatal("First receptor should be accepted")
	}
	if tc.Marker != core.MarkerCD3 {
		t.Errorf("Expected CD3, got %s", tc.Marker)
	}
	if tc.ApplyReceptor(core.MarkerCD4) {
		t.Error("Second receptor should exceed the cap")
	}
	if tc.ApplyReceptor(core.MarkerCD3) {
		t.Error("Duplicate receptor should be rejected")
	}
}

func TestApplyUpgrade(t *testing.T) {
	tc := NewTCell(core.MarkerCD19, 20*time.Second)
	tc.ApplyUpgrade(core.UpgradeSpeed, 2)
	tc.ApplyUpgrade(core.UpgradeSpeed, 2)
	tc.ApplyUpgrade(core.UpgradeChainReaction, 2)
	tc.ApplyUpgrade(core.UpgradeLifetime, 2)

	if !tc.Upgrades.Speed || !tc.Upgrades.ChainReaction {
		t.Error("Expected speed and chain flags set")
	}
	if tc.Lifetime != 40*time.Second {
		t.Errorf("Expected lifetime 40s, got %v", tc.Lifetime)
	}
	if tc.Upgrades.LifetimeStacks != 1 {
		t.Errorf("Expected 1 lifetime stack, got %d", tc.Upgrades.LifetimeStacks)
	}
}
