package network

import (
	"time"

	"github.com/lixenwraith/antigen/config"
)

// Config holds websocket stream configuration
type Config struct {
	// Address to bind; empty disables the service
	Address string

	// Path of the websocket endpoint
	Path string

	// Interval between snapshot broadcasts
	Interval time.Duration

	// Connection limits
	MaxPeers  int
	ReadLimit int64

	// Timing
	WriteTimeout time.Duration
	PongTimeout  time.Duration
	PingInterval time.Duration

	// Buffer sizes
	ReadBufferSize  int
	WriteBufferSize int
	SendQueueSize   int
}

// DefaultConfig returns local defaults
func DefaultConfig() *Config {
	return &Config{
		Address:         "127.0.0.1:8420",
		Path:            "/ws",
		Interval:        50 * time.Millisecond,
		MaxPeers:        16,
		ReadLimit:       16 * 1024,
		WriteTimeout:    5 * time.Second,
		PongTimeout:     30 * time.Second,
		PingInterval:    10 * time.Second,
		ReadBufferSize:  4 * 1024,
		WriteBufferSize: 64 * 1024,
		SendQueueSize:   64,
	}
}

// FromStream builds a Config from the stream section of the simulation config
func FromStream(sc config.StreamConfig) *Config {
	cfg := DefaultConfig()
	cfg.Address = sc.Addr
	if sc.Interval > 0 {
		cfg.Interval = sc.Interval
	}
	return cfg
}
