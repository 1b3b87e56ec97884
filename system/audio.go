package system

import (
	"github.com/lixenwraith/antigen/core"
	"github.com/lixenwraith/antigen/engine"
	"github.com/lixenwraith/antigen/event"
	"github.com/lixenwraith/antigen/parameter"
)

// AudioSystem turns simulation events into sound cues
// Decouples game systems from direct audio backend access; a missing player is silent
type AudioSystem struct {
	world *engine.World

	enabled bool
}

// NewAudioSystem creates an audio system bound to the world's audio resource
func NewAudioSystem(world *engine.World) engine.System {
	s := &AudioSystem{world: world}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *AudioSystem) Init() {
	s.enabled = s.world.Resources.Config.Audio.Enabled
}

// Name returns system's name
func (s *AudioSystem) Name() string {
	return "audio"
}

// Priority returns the system's priority
func (s *AudioSystem) Priority() int {
	return parameter.PriorityAudio
}

// EventTypes returns the event types AudioSystem handles
func (s *AudioSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
		event.EventSystemToggle,
		event.EventSoundRequest,
		event.EventCancerKilled,
		event.EventBindingRejected,
		event.EventCancerDivided,
		event.EventUpgradeApplied,
		event.EventRoundWon,
	}
}

// HandleEvent maps events to cues
func (s *AudioSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.Init()
		return
	case event.EventSystemToggle:
		if p, ok := ev.Payload.(*event.SystemTogglePayload); ok && p.System == s.Name() {
			s.enabled = p.Active
		}
		return
	}

	if !s.enabled {
		return
	}
	if sound, ok := SoundFor(ev); ok {
		s.world.Resources.Audio.Play(sound)
	}
}

// Update implements System interface (no tick-based logic)
func (s *AudioSystem) Update() {}

// SoundFor returns the cue for an event, if any
func SoundFor(ev event.GameEvent) (core.SoundType, bool) {
	switch ev.Type {
	case event.EventSoundRequest:
		if p, ok := ev.Payload.(*event.SoundRequestPayload); ok {
			return p.SoundType, true
		}
	case event.EventCancerKilled:
		if p, ok := ev.Payload.(*event.CancerKilledPayload); ok && p.Chained {
			return core.SoundChain, true
		}
		return core.SoundKill, true
	case event.EventBindingRejected:
		return core.SoundReject, true
	case event.EventCancerDivided:
		return core.SoundDivide, true
	case event.EventUpgradeApplied:
		return core.SoundCollect, true
	case event.EventRoundWon:
		return core.SoundRoundWon, true
	}
	return 0, false
}
