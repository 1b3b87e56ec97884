package network

import (
	"errors"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/antigen/config"
	"github.com/lixenwraith/antigen/core"
	"github.com/lixenwraith/antigen/engine"
	"github.com/lixenwraith/antigen/event"
	"github.com/lixenwraith/antigen/service"
)

// Target receives remote commands and supplies snapshots to stream
// *engine.Simulation satisfies it
type Target interface {
	Push(ev event.GameEvent)
	Snapshot() *engine.Snapshot
}

// Service streams snapshots to websocket clients and feeds their commands to the simulation
type Service struct {
	config    *Config
	transport *Transport
	target    Target

	seq       atomic.Uint64
	lastFrame int64

	accepted atomic.Int64
	rejected atomic.Int64

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	disabled atomic.Bool
}

// NewService creates a network service
func NewService() *Service {
	return &Service{
		config:    DefaultConfig(),
		lastFrame: -1,
		stopCh:    make(chan struct{}),
	}
}

// Name implements service.Service
func (s *Service) Name() string {
	return "network"
}

// Dependencies implements service.Service
func (s *Service) Dependencies() []string {
	return nil
}

// Init implements service.Service
// args[0]: *Config or config.StreamConfig; args[1]: Target (required)
// An empty address disables the service
func (s *Service) Init(args ...any) error {
	if len(args) > 0 {
		switch cfg := args[0].(type) {
		case *Config:
			if cfg != nil {
				s.config = cfg
			}
		case config.StreamConfig:
			s.config = FromStream(cfg)
		}
	}
	if len(args) > 1 {
		if t, ok := args[1].(Target); ok {
			s.target = t
		}
	}
	if s.target == nil {
		return errors.New("network: no simulation target")
	}

	if s.config.Address == "" {
		s.disabled.Store(true)
		return nil
	}

	s.transport = NewTransport(s.config)
	s.transport.SetHandlers(s.onConnect, s.onDisconnect, s.onMessage)
	return nil
}

// Start implements service.Service
func (s *Service) Start() error {
	if s.disabled.Load() || s.transport == nil {
		return nil
	}
	if err := s.transport.Start(); err != nil {
		return err
	}

	s.wg.Add(1)
	core.Go(s.streamLoop)
	return nil
}

// Stop implements service.Service
func (s *Service) Stop() error {
	var err error
	s.stopOnce.Do(func() {
		close(s.stopCh)
		s.wg.Wait()
		if s.transport != nil {
			err = s.transport.Stop()
		}
	})
	return err
}

// Contribute implements service.ResourceContributor
func (s *Service) Contribute(publish service.ResourcePublisher) {
	if s.disabled.Load() {
		return
	}
	publish(&engine.NetworkResource{Status: s})
}

// PeerCount implements engine.NetworkStatus
func (s *Service) PeerCount() int {
	if s.transport == nil {
		return 0
	}
	return s.transport.PeerCount()
}

// Addr returns the bound address, empty when disabled or stopped
func (s *Service) Addr() string {
	if s.transport == nil {
		return ""
	}
	return s.transport.Addr()
}

// IsDisabled reports whether Init found no address
func (s *Service) IsDisabled() bool {
	return s.disabled.Load()
}

// Stats returns accepted and rejected command counts
func (s *Service) Stats() (accepted, rejected int64) {
	return s.accepted.Load(), s.rejected.Load()
}

// streamLoop broadcasts each new snapshot at the configured interval
func (s *Service) streamLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case <-ticker.C:
			s.broadcastSnapshot()
		}
	}
}

func (s *Service) broadcastSnapshot() {
	if s.transport.PeerCount() == 0 {
		return
	}
	snap := s.target.Snapshot()
	if snap == nil || snap.Frame == s.lastFrame {
		return
	}
	s.lastFrame = snap.Frame

	frame, err := encode(Envelope{Type: MsgSnapshot, Seq: s.seq.Add(1), Data: snap})
	if err != nil {
		log.Printf("network: %v", err)
		return
	}
	s.transport.Broadcast(frame)
}

// onConnect greets a new peer with its id, the command list and the current snapshot
func (s *Service) onConnect(p *Peer) {
	hello, err := encode(Envelope{
		Type: MsgHello,
		Seq:  s.seq.Add(1),
		Data: HelloData{
			PeerID:     uint32(p.ID),
			IntervalMS: s.config.Interval.Milliseconds(),
			Commands:   event.RemoteNames(),
		},
	})
	if err == nil {
		p.Send(hello)
	}

	if snap := s.target.Snapshot(); snap != nil {
		if frame, err := encode(Envelope{Type: MsgSnapshot, Seq: s.seq.Add(1), Data: snap}); err == nil {
			p.Send(frame)
		}
	}
	log.Printf("network: peer %d connected from %s", p.ID, p.Addr)
}

func (s *Service) onDisconnect(id PeerID) {
	log.Printf("network: peer %d disconnected", id)
}

// onMessage decodes a command and forwards it; failures are reported to the sender only
func (s *Service) onMessage(id PeerID, data []byte) {
	ev, err := ParseCommand(data)
	if err != nil {
		s.rejected.Add(1)
		if frame, encErr := encode(Envelope{Type: MsgError, Seq: s.seq.Add(1), Error: err.Error()}); encErr == nil {
			s.transport.Send(id, frame)
		}
		return
	}
	s.accepted.Add(1)
	s.target.Push(ev)
}
