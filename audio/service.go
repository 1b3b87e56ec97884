package audio

import (
	"sync/atomic"

	"github.com/lixenwraith/antigen/config"
	"github.com/lixenwraith/antigen/engine"
	"github.com/lixenwraith/antigen/service"
)

// AudioService wraps Player as a Service
// Handles graceful degradation when no audio device is available
type AudioService struct {
	player   *Player
	disabled atomic.Bool
}

// NewService creates a new audio service
func NewService() *AudioService {
	return &AudioService{}
}

// Name implements Service
func (s *AudioService) Name() string {
	return "audio"
}

// Dependencies implements Service
func (s *AudioService) Dependencies() []string {
	return nil
}

// Init implements Service
// args[0]: config.AudioConfig or *config.AudioConfig; defaults apply when absent
// args[1]: bool - force mute
func (s *AudioService) Init(args ...any) error {
	cfg := config.Default().Audio
	if len(args) > 0 {
		switch v := args[0].(type) {
		case config.AudioConfig:
			cfg = v
		case *config.AudioConfig:
			if v != nil {
				cfg = *v
			}
		}
	}
	if len(args) > 1 {
		if muted, ok := args[1].(bool); ok && muted {
			cfg.Enabled = false
		}
	}

	s.player = NewPlayer(cfg)
	return nil
}

// Start implements Service
// Speaker failure leaves the player in silent mode (no error returned)
func (s *AudioService) Start() error {
	if s.disabled.Load() || s.player == nil {
		return nil
	}
	if err := s.player.Start(); err != nil {
		s.disabled.Store(true)
		return nil
	}
	if s.player.IsSilent() {
		s.disabled.Store(true)
	}
	return nil
}

// Stop implements Service
func (s *AudioService) Stop() error {
	if s.player != nil {
		s.player.Stop()
	}
	return nil
}

// Contribute implements service.ResourceContributor
// Publishes AudioResource if a device was opened
func (s *AudioService) Contribute(publish service.ResourcePublisher) {
	if player := s.Player(); player != nil {
		publish(&engine.AudioResource{Player: player})
	}
}

// IsDisabled returns true if audio is unavailable
func (s *AudioService) IsDisabled() bool {
	return s.disabled.Load()
}

// Player returns the cue player (nil if disabled)
func (s *AudioService) Player() *Player {
	if s.disabled.Load() || s.player == nil {
		return nil
	}
	return s.player
}
