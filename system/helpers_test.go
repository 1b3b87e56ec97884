package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/antigen/component"
	"github.com/lixenwraith/antigen/config"
	"github.com/lixenwraith/antigen/core"
	"github.com/lixenwraith/antigen/engine"
	"github.com/lixenwraith/antigen/event"
	"github.com/lixenwraith/antigen/vmath"
)

func testConfig(mutate func(*config.Config)) *config.Config {
	cfg := config.Default()
	cfg.Engine.Seed = 7
	cfg.Audio.Enabled = false
	if mutate != nil {
		mutate(cfg)
	}
	return cfg
}

// newTestWorld returns a bare world in the playing phase
func newTestWorld(t *testing.T, mutate func(*config.Config)) *engine.World {
	t.Helper()
	w := engine.NewWorld(testConfig(mutate))
	w.Resources.Game.Phase = engine.PhasePlaying
	return w
}

// newTestSim returns a simulation with all systems, in the playing phase without clusters
// An anchor cancer cell far in the corner keeps the round from ending
func newTestSim(t *testing.T, mutate func(*config.Config)) *engine.Simulation {
	t.Helper()
	sim := NewSimulation(testConfig(mutate))
	w := sim.World
	w.Resources.Game.Phase = engine.PhasePlaying
	arena := w.Resources.Arena
	SpawnCancer(w, arenaCorner(arena), 0, core.MarkerCD4, true)
	return sim
}

func arenaCorner(a *engine.ArenaResource) vmath.Vec2 {
	return vmath.V(a.Width-60, a.Height-60)
}

func advance(w *engine.World, dt time.Duration) {
	w.Resources.Time.Advance(dt)
}

func tcellOf(t *testing.T, w *engine.World, e core.Entity) component.TCellComponent {
	t.Helper()
	tc, ok := w.Components.TCell.GetComponent(e)
	if !ok {
		t.Fatalf("Expected T-cell %d to exist", e)
	}
	return tc
}

func setTCell(w *engine.World, e core.Entity, fn func(tc *component.TCellComponent)) {
	tc, _ := w.Components.TCell.GetComponent(e)
	fn(&tc)
	w.Components.TCell.SetComponent(e, tc)
}

func stateOf(w *engine.World, e core.Entity) component.LifecycleState {
	lc, ok := w.Components.Lifecycle.GetComponent(e)
	if !ok {
		return component.StateDead
	}
	return lc.State
}

func posOf(w *engine.World, e core.Entity) vmath.Vec2 {
	tr, _ := w.Components.Transform.GetComponent(e)
	return tr.Pos
}

func drainTypes(w *engine.World) []event.EventType {
	var types []event.EventType
	for _, ev := range w.Resources.Event.Queue.Consume() {
		types = append(types, ev.Type)
	}
	return types
}

func countType(types []event.EventType, want event.EventType) int {
	n := 0
	for _, t := range types {
		if t == want {
			n++
		}
	}
	return n
}

// TCell is shorthand for the component in test closures
type TCell = component.TCellComponent
