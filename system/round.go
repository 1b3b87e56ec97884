package system

import (
	"log"

	"github.com/lixenwraith/antigen/core"
	"github.com/lixenwraith/antigen/engine"
	"github.com/lixenwraith/antigen/event"
	"github.com/lixenwraith/antigen/parameter"
)

// RoundSystem drives the game flow: Idle → Playing → Victory → Playing
//
// Victory is declared once no cancer cell remains after the cull pass.
// After the victory hold the board is cleared of cells and a new round starts;
// upgrades on the board carry over
type RoundSystem struct {
	world *engine.World
	res   *engine.Resource
}

// NewRoundSystem creates a new round system
func NewRoundSystem(world *engine.World) engine.System {
	return &RoundSystem{
		world: world,
		res:   world.Resources,
	}
}

// Init
func (s *RoundSystem) Init() {}

// Name returns system's name
func (s *RoundSystem) Name() string {
	return "round"
}

// Priority returns the system's priority
func (s *RoundSystem) Priority() int {
	return parameter.PriorityRound
}

// EventTypes returns the event types RoundSystem handles
func (s *RoundSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
	}
}

// HandleEvent wipes the world and starts round one
func (s *RoundSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type != event.EventGameReset {
		return
	}
	s.world.Clear()
	s.res.Event.Delay.Clear()
	s.res.Game.Round = 0
	s.res.Game.VictoryRemaining = 0
	s.res.Game.SpawnMarker = s.res.Config.SpawnMarker()
	s.startRound()
}

// Update checks for victory and counts down the victory hold
func (s *RoundSystem) Update() {
	game := s.res.Game
	switch game.Phase {
	case engine.PhasePlaying:
		if s.world.Components.Cancer.CountEntities() > 0 {
			return
		}
		game.Phase = engine.PhaseVictory
		game.VictoryRemaining = s.res.Config.Engine.VictoryDuration
		log.Printf("round: round %d won", game.Round)
		s.world.PushEvent(event.EventRoundWon, &event.RoundPayload{Round: game.Round})

	case engine.PhaseVictory:
		game.VictoryRemaining -= s.res.Time.DeltaTime
		if game.VictoryRemaining > 0 {
			return
		}
		game.VictoryRemaining = 0
		s.clearCells()
		s.startRound()
	}
}

// clearCells removes every cancer cell and T-cell; pending cascades are dropped with them
func (s *RoundSystem) clearCells() {
	comp := &s.world.Components
	cells := make([]core.Entity, 0, comp.Cancer.CountEntities()+comp.TCell.CountEntities())
	cells = append(cells, comp.Cancer.GetAllEntities()...)
	cells = append(cells, comp.TCell.GetAllEntities()...)
	s.world.DestroyBatch(cells)
	s.res.Event.Delay.Clear()
}

func (s *RoundSystem) startRound() {
	game := s.res.Game
	game.Round++
	game.Phase = engine.PhasePlaying
	s.world.PushEvent(event.EventRoundStart, &event.RoundPayload{Round: game.Round})
}
