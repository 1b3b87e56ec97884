package engine

import (
	"time"

	"github.com/lixenwraith/antigen/config"
	"github.com/lixenwraith/antigen/core"
	"github.com/lixenwraith/antigen/event"
)

// World is the simulation aggregate: entities, typed component stores, resources and systems
// Entity ids are never reused within a World so stale references resolve to nothing
type World struct {
	nextEntityID core.Entity

	Components ComponentStore
	Resources  *Resource

	systems []System
}

// NewWorld creates a world bound to cfg
func NewWorld(cfg *config.Config) *World {
	return &World{
		nextEntityID: 1,
		Components:   newComponentStore(),
		Resources:    NewResource(cfg),
		systems:      make([]System, 0),
	}
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components associated with an entity
func (w *World) DestroyEntity(e core.Entity) {
	for _, s := range w.Components.all() {
		s.RemoveEntity(e)
	}
}

// DestroyBatch removes all components of the given entities
func (w *World) DestroyBatch(entities []core.Entity) {
	for _, s := range w.Components.all() {
		s.RemoveBatch(entities)
	}
}

// Clear removes all entities; the id counter keeps running
func (w *World) Clear() {
	for _, s := range w.Components.all() {
		s.ClearAllComponents()
	}
}

// AddSystem adds a system and keeps systems sorted by priority
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)

	// Insertion sort, stable for equal priorities
	for i := len(w.systems) - 1; i > 0; i-- {
		if w.systems[i-1].Priority() <= w.systems[i].Priority() {
			break
		}
		w.systems[i-1], w.systems[i] = w.systems[i], w.systems[i-1]
	}
}

// Systems returns a copy of all registered systems in execution order
func (w *World) Systems() []System {
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// UpdateSystems runs every system once in priority order
func (w *World) UpdateSystems() {
	for _, system := range w.systems {
		system.Update()
	}
}

// PushEvent emits an event stamped with the current frame
func (w *World) PushEvent(eventType event.EventType, payload any) {
	w.Resources.Event.Queue.Push(event.GameEvent{
		Type:    eventType,
		Payload: payload,
		Frame:   w.Resources.Time.FrameNumber,
	})
}

// ScheduleEvent emits an event once simulation time has advanced by delay
func (w *World) ScheduleEvent(delay time.Duration, eventType event.EventType, payload any) {
	w.Resources.Event.Delay.Schedule(w.Resources.Time.SimTime+delay, event.GameEvent{
		Type:    eventType,
		Payload: payload,
	})
}

// CreatedCount returns the number of entities ever created in this world
func (w *World) CreatedCount() int64 {
	return int64(w.nextEntityID - 1)
}
