package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/antigen/component"
	"github.com/lixenwraith/antigen/core"
	"github.com/lixenwraith/antigen/event"
	"github.com/lixenwraith/antigen/vmath"
)

// TestChainTargetsOrdering verifies marker filter, exclusions and distance order
func TestChainTargetsOrdering(t *testing.T) {
	w := newTestWorld(t, nil)

	origin := SpawnCancer(w, vmath.V(500, 400), 0, core.MarkerCD19, true)
	d300 := SpawnCancer(w, vmath.V(800, 400), 0, core.MarkerCD19, true)
	d100 := SpawnCancer(w, vmath.V(600, 400), 0, core.MarkerCD19, true)
	d200 := SpawnCancer(w, vmath.V(500, 600), 0, core.MarkerCD19, true)
	SpawnCancer(w, vmath.V(100, 400), 0, core.MarkerCD19, true)
	SpawnCancer(w, vmath.V(510, 400), 0, core.MarkerCD30, true)
	dying := SpawnCancer(w, vmath.V(520, 400), 0, core.MarkerCD19, true)
	startDying(w, dying)

	got := ChainTargets(w, origin, core.MarkerCD19, vmath.V(500, 400), 3)
	want := []core.Entity{d100, d200, d300}
	if len(got) != len(want) {
		t.Fatalf("Expected %d targets, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Rank %d: expected %d, got %d", i, want[i], got[i])
		}
	}

	if few := ChainTargets(w, origin, core.MarkerCD3, vmath.V(500, 400), 3); len(few) != 0 {
		t.Errorf("Expected no targets for absent marker, got %d", len(few))
	}
}

// TestChainCascadeStaggered verifies cascade kills land at 120ms steps of simulation time
func TestChainCascadeStaggered(t *testing.T) {
	sim := newTestSim(t, nil)
	w := sim.World

	origin := SpawnCancer(w, vmath.V(500, 400), 0, core.MarkerCD19, true)
	rank0 := SpawnCancer(w, vmath.V(600, 400), 0, core.MarkerCD19, true)
	rank1 := SpawnCancer(w, vmath.V(500, 600), 0, core.MarkerCD19, true)
	rank2 := SpawnCancer(w, vmath.V(800, 400), 0, core.MarkerCD19, true)
	spared := SpawnCancer(w, vmath.V(100, 400), 0, core.MarkerCD19, true)
	startDying(w, origin)

	sim.Push(event.GameEvent{
		Type: event.EventChainTriggered,
		Payload: &event.ChainTriggerPayload{
			Origin:   origin,
			Marker:   core.MarkerCD19,
			Position: vmath.V(500, 400),
		},
	})

	// Trigger handled at 10ms; kills due at 130ms, 250ms, 370ms
	sim.Step(10 * time.Millisecond)
	if n := w.Resources.Event.Delay.Len(); n != 3 {
		t.Fatalf("Expected 3 scheduled kills, got %d", n)
	}

	stepTo := func(target time.Duration) {
		for w.Resources.Time.SimTime < target {
			sim.Step(40 * time.Millisecond)
		}
	}

	stepTo(90 * time.Millisecond)
	if s := stateOf(w, rank0); s != component.StateActive {
		t.Errorf("Expected rank 0 active before its delay, got %s", s)
	}

	stepTo(130 * time.Millisecond)
	if s := stateOf(w, rank0); s != component.StateDying {
		t.Errorf("Expected rank 0 dying at 130ms, got %s", s)
	}
	if s := stateOf(w, rank1); s != component.StateActive {
		t.Errorf("Expected rank 1 active at 130ms, got %s", s)
	}

	stepTo(370 * time.Millisecond)
	for i, e := range []core.Entity{rank1, rank2} {
		if s := stateOf(w, e); s != component.StateDying {
			t.Errorf("Expected rank %d dying, got %s", i+1, s)
		}
	}
	if s := stateOf(w, spared); s != component.StateActive {
		t.Errorf("Expected fourth cell spared, got %s", s)
	}

	chained := w.Resources.Status.Ints.Get("sim.chain_kills")
	if got := chained.Load(); got != 3 {
		t.Errorf("Expected 3 chain kills, got %d", got)
	}

	// Replayed kill on an expiring target is a no-op
	sim.Push(event.GameEvent{Type: event.EventChainKill, Payload: &event.ChainKillPayload{Target: rank2}})
	sim.Step(16 * time.Millisecond)
	if got := chained.Load(); got != 3 {
		t.Errorf("Expected chain kills unchanged, got %d", got)
	}
}

// TestChainKillMissingTarget verifies a kill for a destroyed entity is skipped
func TestChainKillMissingTarget(t *testing.T) {
	sim := newTestSim(t, nil)
	w := sim.World

	gone := SpawnCancer(w, vmath.V(300, 300), 0, core.MarkerCD19, true)
	w.DestroyEntity(gone)

	sim.Push(event.GameEvent{Type: event.EventChainKill, Payload: &event.ChainKillPayload{Target: gone}})
	sim.Step(16 * time.Millisecond)

	if got := w.Resources.Status.Ints.Get("sim.kills").Load(); got != 0 {
		t.Errorf("Expected no kills, got %d", got)
	}
	if w.Components.Lifecycle.HasEntity(gone) {
		t.Error("Expected destroyed entity to stay absent")
	}
}

