package main

import (
	"fmt"
	"log"

	"github.com/lixenwraith/antigen/audio"
	"github.com/lixenwraith/antigen/config"
	"github.com/lixenwraith/antigen/engine"
	"github.com/lixenwraith/antigen/network"
	"github.com/lixenwraith/antigen/service"
)

// serviceSet selects which background services a command runs
type serviceSet struct {
	audio   bool
	muted   bool
	network bool
}

// startServices initializes and starts the selected services, then bridges their
// resources into the simulation world
func startServices(cfg *config.Config, sim *engine.Simulation, set serviceSet) (*service.Hub, error) {
	hub := service.NewHub()

	if set.audio {
		if err := hub.Register(audio.NewService(), cfg.Audio, set.muted); err != nil {
			return nil, err
		}
	}
	if set.network {
		if err := hub.Register(network.NewService(), cfg.Stream, sim); err != nil {
			return nil, err
		}
	}

	if err := hub.InitAll(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}
	if err := hub.StartAll(); err != nil {
		return nil, fmt.Errorf("start services: %w", err)
	}

	sim.Inspect(func(w *engine.World) {
		hub.ContributeAll(w.Resources.ServiceBridge)
	})
	return hub, nil
}

// stopServices stops every started service, logging failures
func stopServices(hub *service.Hub) {
	for _, err := range hub.StopAll() {
		log.Printf("service stop: %v", err)
	}
}
