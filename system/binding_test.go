package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/antigen/component"
	"github.com/lixenwraith/antigen/core"
	"github.com/lixenwraith/antigen/event"
	"github.com/lixenwraith/antigen/vmath"
)

// TestResolveKillsBindThenKill verifies the binding timer runs before the kill
func TestResolveKillsBindThenKill(t *testing.T) {
	w := newTestWorld(t, nil)

	tc := SpawnTCell(w, vmath.V(100, 100), core.MarkerCD19, true)
	cancer := SpawnCancer(w, vmath.V(130, 100), 0, core.MarkerCD19, true)
	AssignTargets(w)

	if n := ResolveKills(w, 16*time.Millisecond); n != 0 {
		t.Fatalf("Expected no kill on contact, got %d", n)
	}
	got := tcellOf(t, w, tc)
	if got.BindingTarget != cancer {
		t.Fatalf("Expected binding to %d, got %d", cancer, got.BindingTarget)
	}
	if got.Behavior != component.BehaviorBinding {
		t.Errorf("Expected binding behavior, got %s", got.Behavior)
	}
	if got.BindingRemaining != 500*time.Millisecond {
		t.Errorf("Expected 500ms binding timer, got %v", got.BindingRemaining)
	}

	if n := ResolveKills(w, 250*time.Millisecond); n != 0 {
		t.Errorf("Expected no kill mid-binding, got %d", n)
	}
	if n := ResolveKills(w, 250*time.Millisecond); n != 1 {
		t.Fatalf("Expected 1 kill at timer expiry, got %d", n)
	}

	if s := stateOf(w, cancer); s != component.StateDying {
		t.Errorf("Expected cancer dying, got %s", s)
	}
	got = tcellOf(t, w, tc)
	if got.Target != core.NoEntity || got.BindingTarget != core.NoEntity {
		t.Errorf("Expected interaction state cleared, got target %d binding %d", got.Target, got.BindingTarget)
	}
	if got.Behavior != component.BehaviorHunting {
		t.Errorf("Expected hunting after kill, got %s", got.Behavior)
	}

	types := drainTypes(w)
	if countType(types, event.EventBindingStarted) != 1 {
		t.Errorf("Expected 1 binding started event, got %v", types)
	}
	if countType(types, event.EventCancerKilled) != 1 {
		t.Errorf("Expected 1 kill event, got %v", types)
	}
}

// TestResolveKillsRejectsMismatch verifies a mismatched binding is recorded and never retried
func TestResolveKillsRejectsMismatch(t *testing.T) {
	w := newTestWorld(t, nil)

	tc := SpawnTCell(w, vmath.V(100, 100), core.MarkerCD19, true)
	cancer := SpawnCancer(w, vmath.V(130, 100), 0, core.MarkerCD30, true)
	setTCell(w, tc, func(c *TCell) { c.Target = cancer })

	ResolveKills(w, 16*time.Millisecond)
	if n := ResolveKills(w, 500*time.Millisecond); n != 0 {
		t.Errorf("Expected no kill on mismatch, got %d", n)
	}

	got := tcellOf(t, w, tc)
	if !got.IsRejected(cancer) {
		t.Error("Expected cancer in rejected set")
	}
	if got.Target != core.NoEntity {
		t.Errorf("Expected target cleared, got %d", got.Target)
	}
	if s := stateOf(w, cancer); s != component.StateActive {
		t.Errorf("Expected cancer to stay active, got %s", s)
	}
	if countType(drainTypes(w), event.EventBindingRejected) != 1 {
		t.Error("Expected a binding rejected event")
	}
}

// TestResolveKillsOutOfContact verifies no binding starts beyond contact distance
func TestResolveKillsOutOfContact(t *testing.T) {
	w := newTestWorld(t, nil)

	tc := SpawnTCell(w, vmath.V(100, 100), core.MarkerCD19, true)
	SpawnCancer(w, vmath.V(200, 100), 0, core.MarkerCD19, true) // contact is (125+50)*0.4 = 70
	AssignTargets(w)

	ResolveKills(w, 16*time.Millisecond)
	if got := tcellOf(t, w, tc).BindingTarget; got != core.NoEntity {
		t.Errorf("Expected no binding out of contact, got %d", got)
	}
}

// TestResolveKillsSkipsKilledCell verifies a cell killed in a pass is not killed again by a second hunter
func TestResolveKillsSkipsKilledCell(t *testing.T) {
	w := newTestWorld(t, nil)

	first := SpawnTCell(w, vmath.V(100, 100), core.MarkerCD19, true)
	second := SpawnTCell(w, vmath.V(160, 100), core.MarkerCD19, true)
	cancer := SpawnCancer(w, vmath.V(130, 100), 0, core.MarkerCD19, true)
	AssignTargets(w)

	ResolveKills(w, 16*time.Millisecond)
	if n := ResolveKills(w, 500*time.Millisecond); n != 1 {
		t.Fatalf("Expected exactly 1 kill, got %d", n)
	}
	if got := tcellOf(t, w, first).Target; got != core.NoEntity {
		t.Errorf("Expected first hunter cleared, got %d", got)
	}
	if got := tcellOf(t, w, second).Target; got != cancer {
		t.Errorf("Expected second hunter still on %d, got %d", cancer, got)
	}

	if n := ClearInvalidTargets(w); n != 1 {
		t.Errorf("Expected stale target cleared next frame, got %d", n)
	}
	if countType(drainTypes(w), event.EventCancerKilled) != 1 {
		t.Error("Expected a single kill event")
	}
}

// TestResolveKillsChainReactionBursts verifies a chain-reaction hunter triggers a cascade and bursts
func TestResolveKillsChainReactionBursts(t *testing.T) {
	w := newTestWorld(t, nil)

	tc := SpawnTCell(w, vmath.V(100, 100), core.MarkerCD19, true)
	SpawnCancer(w, vmath.V(130, 100), 0, core.MarkerCD19, true)
	setTCell(w, tc, func(c *TCell) { c.Upgrades.ChainReaction = true })
	AssignTargets(w)

	ResolveKills(w, 16*time.Millisecond)
	ResolveKills(w, 500*time.Millisecond)

	if got := tcellOf(t, w, tc).Behavior; got != component.BehaviorBursting {
		t.Errorf("Expected bursting, got %s", got)
	}
	if countType(drainTypes(w), event.EventChainTriggered) != 1 {
		t.Error("Expected a chain triggered event")
	}
}
