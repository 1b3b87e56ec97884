package engine

import "github.com/lixenwraith/antigen/event"

// System is a per-frame simulation stage
type System interface {
	// Init resets session state for a new game
	Init()

	// Name returns the registry name used by EventSystemToggle
	Name() string

	// Priority orders execution; lower runs first
	Priority() int

	// Update advances the system by the current TimeResource.DeltaTime
	Update()
}

// EventHandler processes specific event types
// Systems implement this interface to receive routed events
type EventHandler interface {
	// HandleEvent processes a single event during the dispatch phase
	HandleEvent(ev event.GameEvent)

	// EventTypes returns the event types this handler processes
	EventTypes() []event.EventType
}
