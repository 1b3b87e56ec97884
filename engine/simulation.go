package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/antigen/config"
	"github.com/lixenwraith/antigen/event"
	"github.com/lixenwraith/antigen/parameter"
)

// Simulation owns a World and advances it one frame per Step
//
// Frame pipeline:
//  1. Clamp dt, advance simulation time
//  2. Release due delayed events into the queue
//  3. Dispatch pending events (gestures, chain kills, round control)
//  4. Run systems in priority order
//  5. Dispatch events emitted during update
//  6. Publish an immutable snapshot
type Simulation struct {
	World  *World
	Router *EventRouter

	mu       sync.Mutex
	snapshot atomic.Pointer[Snapshot]
}

// NewSimulation creates a simulation with an empty world
func NewSimulation(cfg *config.Config) *Simulation {
	w := NewWorld(cfg)
	s := &Simulation{
		World:  w,
		Router: NewEventRouter(w.Resources.Event.Queue),
	}
	s.snapshot.Store(BuildSnapshot(w))
	return s
}

// Register adds a system and routes its events if it handles any
func (s *Simulation) Register(sys System) {
	s.World.AddSystem(sys)
	if h, ok := sys.(EventHandler); ok {
		s.Router.Register(h)
	}
}

// Step advances the world by dt, clamped to [0, Engine.MaxFrameDelta]
func (s *Simulation) Step(dt time.Duration) *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.World.Resources
	if dt < 0 {
		dt = 0
	}
	if maxDt := res.Config.Engine.MaxFrameDelta; dt > maxDt {
		dt = maxDt
	}
	res.Time.Advance(dt)

	for _, ev := range res.Event.Delay.PopDue(res.Time.SimTime) {
		ev.Frame = res.Time.FrameNumber
		res.Event.Queue.Push(ev)
	}

	s.Router.DispatchAll(parameter.EventLoopIterations)
	s.World.UpdateSystems()
	s.Router.DispatchAll(parameter.EventLoopIterations)

	snap := BuildSnapshot(s.World)
	s.snapshot.Store(snap)
	return snap
}

// Push enqueues an event from any goroutine
func (s *Simulation) Push(ev event.GameEvent) {
	s.World.Resources.Event.Queue.Push(ev)
}

// Reset requests a fresh game; applied on the next Step
func (s *Simulation) Reset() {
	s.Push(event.GameEvent{Type: event.EventGameReset})
}

// Resize updates arena extents; serialized with Step
func (s *Simulation) Resize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	s.mu.Lock()
	s.World.Resources.Arena.Width = width
	s.World.Resources.Arena.Height = height
	s.mu.Unlock()
}

// Snapshot returns the latest published snapshot; safe from any goroutine
func (s *Simulation) Snapshot() *Snapshot {
	return s.snapshot.Load()
}

// Inspect runs fn with exclusive access to the world between steps
func (s *Simulation) Inspect(fn func(w *World)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.World)
}
