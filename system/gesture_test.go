package system

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/antigen/component"
	"github.com/lixenwraith/antigen/core"
	"github.com/lixenwraith/antigen/engine"
	"github.com/lixenwraith/antigen/event"
	"github.com/lixenwraith/antigen/vmath"
)

// TestDropReceptorArmsTCell verifies a dropped receptor arms the cell under the point once
func TestDropReceptorArmsTCell(t *testing.T) {
	sim := newTestSim(t, nil)
	w := sim.World
	e := SpawnTCell(w, vmath.V(300, 300), core.MarkerNone, true)

	sim.Push(event.GameEvent{Type: event.EventDropReceptor, Payload: &event.DropReceptorPayload{
		Position: vmath.V(310, 300), Marker: core.MarkerCD19,
	}})
	sim.Step(tick)

	tc := tcellOf(t, w, e)
	if tc.Marker != core.MarkerCD19 {
		t.Fatalf("Expected CD19 after drop, got %s", tc.Marker)
	}
	if tc.Behavior != component.BehaviorHunting {
		t.Errorf("Expected hunting after arming, got %s", tc.Behavior)
	}
	if tc.OverrideRemaining <= 0 {
		t.Errorf("Expected targeting override after drop, got %v", tc.OverrideRemaining)
	}

	sim.Push(event.GameEvent{Type: event.EventDropReceptor, Payload: &event.DropReceptorPayload{
		Position: vmath.V(300, 300), Marker: core.MarkerCD30,
	}})
	sim.Step(tick)

	tc = tcellOf(t, w, e)
	if tc.Marker != core.MarkerCD19 {
		t.Errorf("Expected receptor cap to keep CD19, got %s", tc.Marker)
	}
	if len(tc.Receptors) != 1 {
		t.Errorf("Expected 1 receptor, got %d", len(tc.Receptors))
	}
}

// TestDropReceptorMisses verifies drops outside the hit radius or unarmed drops do nothing
func TestDropReceptorMisses(t *testing.T) {
	sim := newTestSim(t, nil)
	w := sim.World
	e := SpawnTCell(w, vmath.V(300, 300), core.MarkerNone, true)

	sim.Push(event.GameEvent{Type: event.EventDropReceptor, Payload: &event.DropReceptorPayload{
		Position: vmath.V(300+125*0.6+1, 300), Marker: core.MarkerCD19,
	}})
	sim.Push(event.GameEvent{Type: event.EventDropReceptor, Payload: &event.DropReceptorPayload{
		Position: vmath.V(300, 300), Marker: core.MarkerNone,
	}})
	sim.Step(tick)

	if tc := tcellOf(t, w, e); tc.Marker != core.MarkerNone || len(tc.Receptors) != 0 {
		t.Errorf("Expected unarmed cell, got %s with %d receptors", tc.Marker, len(tc.Receptors))
	}
}

// TestCollectGlobalUpgrade verifies a tapped global upgrade reaches every live T-cell
func TestCollectGlobalUpgrade(t *testing.T) {
	sim := newTestSim(t, nil)
	w := sim.World
	a := SpawnTCell(w, vmath.V(300, 300), core.MarkerCD19, true)
	b := SpawnTCell(w, vmath.V(700, 300), core.MarkerNone, false)
	up := SpawnUpgrade(w, core.UpgradeSpeed, vmath.V(640, 400))

	sim.Push(event.GameEvent{Type: event.EventCollectUpgrade, Payload: &event.CollectUpgradePayload{Upgrade: up}})
	sim.Step(tick)

	for _, e := range []core.Entity{a, b} {
		if !tcellOf(t, w, e).Upgrades.Speed {
			t.Errorf("Expected speed upgrade on T-cell %d", e)
		}
	}
	uc, ok := w.Components.Upgrade.GetComponent(up)
	if !ok || !uc.Collected {
		t.Errorf("Expected upgrade collected")
	}
	if s := stateOf(w, up); s != component.StateDying {
		t.Errorf("Expected collected upgrade dying, got %s", s)
	}
	if n := w.Resources.Status.Ints.Get("sim.upgrades_applied").Load(); n != 1 {
		t.Errorf("Expected 1 applied upgrade, got %d", n)
	}

	// Second tap is ignored
	sim.Push(event.GameEvent{Type: event.EventCollectUpgrade, Payload: &event.CollectUpgradePayload{Upgrade: up}})
	sim.Step(tick)
	if n := w.Resources.Status.Ints.Get("sim.upgrades_applied").Load(); n != 1 {
		t.Errorf("Expected repeated tap ignored, got %d applied", n)
	}
}

// TestCollectIgnoresSingleMode verifies single-mode upgrades cannot be tapped
func TestCollectIgnoresSingleMode(t *testing.T) {
	sim := newTestSim(t, nil)
	w := sim.World
	e := SpawnTCell(w, vmath.V(300, 300), core.MarkerCD19, true)
	up := SpawnUpgrade(w, core.UpgradeChainReaction, vmath.V(640, 400))

	sim.Push(event.GameEvent{Type: event.EventCollectUpgrade, Payload: &event.CollectUpgradePayload{Upgrade: up}})
	sim.Step(tick)

	if tcellOf(t, w, e).Upgrades.ChainReaction {
		t.Error("Expected no chain reaction from a tap")
	}
	if uc, _ := w.Components.Upgrade.GetComponent(up); uc.Collected {
		t.Error("Expected single-mode upgrade uncollected")
	}
}

// TestDropSingleUpgrade verifies drag-drop applies to the T-cell under the point
func TestDropSingleUpgrade(t *testing.T) {
	sim := newTestSim(t, nil)
	w := sim.World
	e := SpawnTCell(w, vmath.V(300, 300), core.MarkerCD19, true)
	before := tcellOf(t, w, e).Lifetime
	chain := SpawnUpgrade(w, core.UpgradeChainReaction, vmath.V(800, 500))
	life := SpawnUpgrade(w, core.UpgradeLifetime, vmath.V(900, 500))

	sim.Push(event.GameEvent{Type: event.EventDropUpgrade, Payload: &event.DropUpgradePayload{Upgrade: chain, Position: vmath.V(305, 300)}})
	sim.Push(event.GameEvent{Type: event.EventDropUpgrade, Payload: &event.DropUpgradePayload{Upgrade: life, Position: vmath.V(295, 300)}})
	sim.Step(tick)

	tc := tcellOf(t, w, e)
	if !tc.Upgrades.ChainReaction {
		t.Error("Expected chain reaction upgrade")
	}
	if tc.Lifetime != 2*before || tc.Upgrades.LifetimeStacks != 1 {
		t.Errorf("Expected lifetime doubled to %v, got %v (%d stacks)", 2*before, tc.Lifetime, tc.Upgrades.LifetimeStacks)
	}
	for _, up := range []core.Entity{chain, life} {
		if s := stateOf(w, up); s != component.StateDying {
			t.Errorf("Expected upgrade %d dying, got %s", up, s)
		}
	}
}

// TestDropUpgradeOnEmptySpace verifies a missed drop leaves the upgrade at the drop point
func TestDropUpgradeOnEmptySpace(t *testing.T) {
	sim := newTestSim(t, nil)
	w := sim.World
	SpawnTCell(w, vmath.V(300, 300), core.MarkerCD19, true)
	up := SpawnUpgrade(w, core.UpgradeChainReaction, vmath.V(800, 500))

	drop := vmath.V(600, 200)
	sim.Push(event.GameEvent{Type: event.EventDropUpgrade, Payload: &event.DropUpgradePayload{Upgrade: up, Position: drop}})
	sim.Step(tick)

	uc, _ := w.Components.Upgrade.GetComponent(up)
	if uc.Collected {
		t.Error("Expected upgrade uncollected")
	}
	p := posOf(w, up)
	if math.Abs(p.X-drop.X) > 1e-9 || math.Abs(p.Y-drop.Y) > 6 {
		t.Errorf("Expected upgrade near %v, got %v", drop, p)
	}
}

// TestCycleMarkerGesture verifies a tap on a T-cell advances its marker
func TestCycleMarkerGesture(t *testing.T) {
	sim := newTestSim(t, nil)
	w := sim.World
	e := SpawnTCell(w, vmath.V(300, 300), core.MarkerNone, true)

	sim.Push(event.GameEvent{Type: event.EventCycleMarker, Payload: &event.CycleMarkerPayload{TCell: e}})
	sim.Step(tick)
	if m := tcellOf(t, w, e).Marker; m != core.MarkerCD19 {
		t.Errorf("Expected CD19, got %s", m)
	}
}

// TestSwipeEmitsSound verifies an effective swipe requests the swipe cue
func TestSwipeEmitsSound(t *testing.T) {
	w := newTestWorld(t, nil)
	sys := NewGestureSystem(w).(*GestureSystem)
	SpawnTCell(w, vmath.V(250, 300), core.MarkerCD19, true)

	sys.HandleEvent(event.GameEvent{Type: event.EventSwipe, Payload: &event.SwipePayload{
		Start: vmath.V(100, 300), End: vmath.V(400, 300), DurationMS: 200,
	}})
	if n := countType(drainTypes(w), event.EventSoundRequest); n != 1 {
		t.Errorf("Expected 1 sound request, got %d", n)
	}

	sys.HandleEvent(event.GameEvent{Type: event.EventSwipe, Payload: &event.SwipePayload{
		Start: vmath.V(100, 700), End: vmath.V(400, 700), DurationMS: 200,
	}})
	if n := countType(drainTypes(w), event.EventSoundRequest); n != 0 {
		t.Errorf("Expected no sound for a missed swipe, got %d", n)
	}
}

// TestGesturesIgnoredOutsidePlay verifies gestures are dropped during the victory hold
func TestGesturesIgnoredOutsidePlay(t *testing.T) {
	w := newTestWorld(t, nil)
	sys := NewGestureSystem(w).(*GestureSystem)
	e := SpawnTCell(w, vmath.V(300, 300), core.MarkerNone, true)
	w.Resources.Game.Phase = engine.PhaseVictory

	sys.HandleEvent(event.GameEvent{Type: event.EventCycleMarker, Payload: &event.CycleMarkerPayload{TCell: e}})
	sys.HandleEvent(event.GameEvent{Type: event.EventSwipe, Payload: &event.SwipePayload{
		Start: vmath.V(100, 300), End: vmath.V(400, 300), DurationMS: int64(time.Second / time.Millisecond),
	}})

	tc := tcellOf(t, w, e)
	if tc.Marker != core.MarkerNone {
		t.Errorf("Expected marker unchanged, got %s", tc.Marker)
	}
	if !tc.Impulse.IsZero() {
		t.Errorf("Expected no impulse, got %v", tc.Impulse)
	}
}
