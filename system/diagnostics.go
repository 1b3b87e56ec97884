package system

import (
	"sync/atomic"

	"github.com/lixenwraith/antigen/engine"
	"github.com/lixenwraith/antigen/event"
	"github.com/lixenwraith/antigen/parameter"
	"github.com/lixenwraith/antigen/status"
)

// DiagnosticsSystem publishes simulation telemetry to the status registry
// Gauges are sampled every tick; counters accumulate from events and reset with the game
type DiagnosticsSystem struct {
	world *engine.World

	// Store counts
	statCancerCount  *atomic.Int64
	statTCellCount   *atomic.Int64
	statUpgradeCount *atomic.Int64

	// Frame
	statFrame       *atomic.Int64
	statSimTime     *status.AtomicFloat
	statPhase       *status.AtomicString
	statRound       *atomic.Int64
	statSpawnMarker *status.AtomicString

	// Interaction counters
	statKills      *atomic.Int64
	statChainKills *atomic.Int64
	statRejections *atomic.Int64
	statBindings   *atomic.Int64
	statDivisions  *atomic.Int64
	statTCells     *atomic.Int64
	statUpgrades   *atomic.Int64
	statApplied    *atomic.Int64
	statRoundsWon  *atomic.Int64
	statResolved   *atomic.Int64

	// Queues
	statQueueDropped *atomic.Int64
	statDelayPending *atomic.Int64

	// Entity lifecycle
	statEntityCreated *atomic.Int64
	statEntityLive    *atomic.Int64

	statPeers *atomic.Int64
}

// NewDiagnosticsSystem creates a new diagnostics system
func NewDiagnosticsSystem(world *engine.World) engine.System {
	reg := world.Resources.Status

	s := &DiagnosticsSystem{
		world: world,

		statCancerCount:  reg.Ints.Get("store.cancer.count"),
		statTCellCount:   reg.Ints.Get("store.tcell.count"),
		statUpgradeCount: reg.Ints.Get("store.upgrade.count"),

		statFrame:       reg.Ints.Get("engine.frame"),
		statSimTime:     reg.Floats.Get("engine.sim_time"),
		statPhase:       reg.Strings.Get("game.phase"),
		statRound:       reg.Ints.Get("game.round"),
		statSpawnMarker: reg.Strings.Get("game.spawn_marker"),

		statKills:      reg.Ints.Get("sim.kills"),
		statChainKills: reg.Ints.Get("sim.chain_kills"),
		statRejections: reg.Ints.Get("sim.rejections"),
		statBindings:   reg.Ints.Get("sim.bindings"),
		statDivisions:  reg.Ints.Get("sim.divisions"),
		statTCells:     reg.Ints.Get("sim.tcells_spawned"),
		statUpgrades:   reg.Ints.Get("sim.upgrades_spawned"),
		statApplied:    reg.Ints.Get("sim.upgrades_applied"),
		statRoundsWon:  reg.Ints.Get("sim.rounds_won"),
		statResolved:   reg.Ints.Get("sim.resolved"),

		statQueueDropped: reg.Ints.Get("event.dropped"),
		statDelayPending: reg.Ints.Get("event.delay_pending"),

		statEntityCreated: reg.Ints.Get("entity.created"),
		statEntityLive:    reg.Ints.Get("entity.live"),

		statPeers: reg.Ints.Get("network.peers"),
	}
	s.Init()
	return s
}

// Init resets counters
func (s *DiagnosticsSystem) Init() {
	for _, c := range []*atomic.Int64{
		s.statKills, s.statChainKills, s.statRejections, s.statBindings, s.statDivisions,
		s.statTCells, s.statUpgrades, s.statApplied, s.statRoundsWon,
	} {
		c.Store(0)
	}
}

// Name returns system's name
func (s *DiagnosticsSystem) Name() string {
	return "diagnostics"
}

// Priority returns the system's priority
func (s *DiagnosticsSystem) Priority() int {
	return parameter.PriorityDiagnostics
}

// EventTypes returns the event types DiagnosticsSystem counts
func (s *DiagnosticsSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
		event.EventCancerKilled,
		event.EventBindingStarted,
		event.EventBindingRejected,
		event.EventCancerDivided,
		event.EventTCellSpawned,
		event.EventUpgradeSpawned,
		event.EventUpgradeApplied,
		event.EventRoundWon,
	}
}

// HandleEvent updates counters
func (s *DiagnosticsSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.Init()
	case event.EventCancerKilled:
		s.statKills.Add(1)
		if p, ok := ev.Payload.(*event.CancerKilledPayload); ok && p.Chained {
			s.statChainKills.Add(1)
		}
	case event.EventBindingStarted:
		s.statBindings.Add(1)
	case event.EventBindingRejected:
		s.statRejections.Add(1)
	case event.EventCancerDivided:
		s.statDivisions.Add(1)
	case event.EventTCellSpawned:
		s.statTCells.Add(1)
	case event.EventUpgradeSpawned:
		s.statUpgrades.Add(1)
	case event.EventUpgradeApplied:
		s.statApplied.Add(1)
	case event.EventRoundWon:
		s.statRoundsWon.Add(1)
	}
}

// Update samples gauges
func (s *DiagnosticsSystem) Update() {
	w := s.world
	res := w.Resources

	cancers := w.Components.Cancer.CountEntities()
	tcells := w.Components.TCell.CountEntities()
	upgrades := w.Components.Upgrade.CountEntities()
	s.statCancerCount.Store(int64(cancers))
	s.statTCellCount.Store(int64(tcells))
	s.statUpgradeCount.Store(int64(upgrades))

	s.statFrame.Store(res.Time.FrameNumber)
	s.statSimTime.Set(res.Time.SimTime.Seconds())
	s.statPhase.Store(res.Game.Phase.String())
	s.statRound.Store(int64(res.Game.Round))
	s.statSpawnMarker.Store(res.Game.SpawnMarker.String())
	s.statResolved.Store(int64(resolvedCount(w)))

	s.statQueueDropped.Store(int64(res.Event.Queue.Dropped()))
	s.statDelayPending.Store(int64(res.Event.Delay.Len()))

	s.statEntityCreated.Store(w.CreatedCount())
	s.statEntityLive.Store(int64(cancers + tcells + upgrades))

	s.statPeers.Store(int64(res.Network.Peers()))
}
