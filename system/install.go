package system

import (
	"github.com/lixenwraith/antigen/config"
	"github.com/lixenwraith/antigen/engine"
)

// constructors lists every simulation system; execution order comes from priorities,
// event handler order from this list
var constructors = []func(*engine.World) engine.System{
	NewRoundSystem,
	NewSpawnSystem,
	NewGestureSystem,
	NewChainSystem,
	NewTargetingSystem,
	NewCancerSystem,
	NewTCellSystem,
	NewUpgradeSystem,
	NewBindingSystem,
	NewAudioSystem,
	NewCullSystem,
	NewDiagnosticsSystem,
}

// Install registers every simulation system with sim
func Install(sim *engine.Simulation) {
	for _, ctor := range constructors {
		sim.Register(ctor(sim.World))
	}
}

// NewSimulation creates a simulation with all systems installed
// The world stays idle until a reset event starts round one
func NewSimulation(cfg *config.Config) *engine.Simulation {
	sim := engine.NewSimulation(cfg)
	Install(sim)
	return sim
}
