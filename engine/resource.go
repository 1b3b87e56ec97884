package engine

import (
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/antigen/config"
	"github.com/lixenwraith/antigen/core"
	"github.com/lixenwraith/antigen/event"
	"github.com/lixenwraith/antigen/status"
	"github.com/lixenwraith/antigen/vmath"
)

// Resource holds singleton simulation resources, accessed via World.Resources
type Resource struct {
	Time   *TimeResource
	Config *config.Config
	Arena  *ArenaResource
	Rand   *RandResource
	Event  *EventQueueResource
	Game   *GameStateResource

	// Telemetry
	Status *status.Registry

	// Bridged from services
	Audio   *AudioResource
	Network *NetworkResource
}

// NewResource builds resources from configuration
func NewResource(cfg *config.Config) *Resource {
	seed := cfg.Engine.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Resource{
		Time:   &TimeResource{},
		Config: cfg,
		Arena: &ArenaResource{
			Width:  cfg.Engine.ArenaWidth,
			Height: cfg.Engine.ArenaHeight,
		},
		Rand: NewRandResource(seed),
		Event: &EventQueueResource{
			Queue: event.NewEventQueue(),
			Delay: NewDelayQueue(),
		},
		Game:   &GameStateResource{SpawnMarker: cfg.SpawnMarker()},
		Status:  status.NewRegistry(),
		Audio:   &AudioResource{},
		Network: &NetworkResource{},
	}
}

// ServiceBridge routes a service-contributed resource to its typed field
func (r *Resource) ServiceBridge(res any) {
	switch v := res.(type) {
	case *AudioResource:
		r.Audio = v
	case *NetworkResource:
		r.Network = v
	}
}

// === World Resources ===

// TimeResource carries simulation time; advanced once per Step
type TimeResource struct {
	// SimTime is accumulated clamped simulation time
	SimTime time.Duration

	// DeltaTime is the clamped duration of the current frame
	DeltaTime time.Duration

	// FrameNumber is the current frame count
	FrameNumber int64
}

// Advance moves time forward by dt
func (tr *TimeResource) Advance(dt time.Duration) {
	tr.DeltaTime = dt
	tr.SimTime += dt
	tr.FrameNumber++
}

// Seconds returns DeltaTime in seconds
func (tr *TimeResource) Seconds() float64 {
	return tr.DeltaTime.Seconds()
}

// ArenaResource holds the playable extents in world units
type ArenaResource struct {
	Width  float64
	Height float64
}

// Size returns extents as a vector
func (a *ArenaResource) Size() vmath.Vec2 {
	return vmath.V(a.Width, a.Height)
}

// Center returns the arena midpoint
func (a *ArenaResource) Center() vmath.Vec2 {
	return vmath.V(a.Width/2, a.Height/2)
}

// EventQueueResource wraps the immediate and delayed event queues
type EventQueueResource struct {
	Queue *event.EventQueue
	Delay *DelayQueue
}

// RoundPhase is the top-level game flow state
type RoundPhase uint8

const (
	PhaseIdle    RoundPhase = iota // No round started yet
	PhasePlaying                   // Cancer cells on the board
	PhaseVictory                   // Board cleared, waiting to restart
)

// String returns phase name
func (p RoundPhase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseVictory:
		return "victory"
	default:
		return "idle"
	}
}

// GameStateResource holds round flow and player selections
type GameStateResource struct {
	Phase            RoundPhase
	Round            int
	VictoryRemaining time.Duration

	// SpawnMarker is given to newly spawned T-cells
	SpawnMarker core.Marker
}

// AudioPlayer plays synthesized cues; implementations must not block
type AudioPlayer interface {
	Play(sound core.SoundType) bool
}

// AudioResource exposes the audio backend to systems; nil Player is silent
type AudioResource struct {
	Player AudioPlayer
}

// Play forwards to the player if one is attached
func (a *AudioResource) Play(sound core.SoundType) bool {
	if a == nil || a.Player == nil {
		return false
	}
	return a.Player.Play(sound)
}

// NetworkStatus reports remote client connectivity
type NetworkStatus interface {
	PeerCount() int
}

// NetworkResource exposes the snapshot stream to systems; nil Status means offline
type NetworkResource struct {
	Status NetworkStatus
}

// Peers returns the connected client count
func (n *NetworkResource) Peers() int {
	if n == nil || n.Status == nil {
		return 0
	}
	return n.Status.PeerCount()
}

// RandResource is the seeded simulation PRNG
// Same seed and inputs reproduce the same run within one process
type RandResource struct {
	seed uint64
	rng  *rand.Rand
}

// NewRandResource seeds a PCG source
func NewRandResource(seed uint64) *RandResource {
	return &RandResource{
		seed: seed,
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Seed returns the seed in use
func (r *RandResource) Seed() uint64 { return r.seed }

// Float64 returns a value in [0, 1)
func (r *RandResource) Float64() float64 { return r.rng.Float64() }

// Range returns a value in [lo, hi)
func (r *RandResource) Range(lo, hi float64) float64 {
	return lo + r.rng.Float64()*(hi-lo)
}

// IntN returns a value in [0, n)
func (r *RandResource) IntN(n int) int { return r.rng.IntN(n) }

// Chance returns true with probability p
func (r *RandResource) Chance(p float64) bool { return r.rng.Float64() < p }

// Shuffle permutes n elements via swap
func (r *RandResource) Shuffle(n int, swap func(i, j int)) { r.rng.Shuffle(n, swap) }

// Duration returns base scaled by a uniform factor in [1-variance, 1+variance)
func (r *RandResource) Duration(base time.Duration, variance float64) time.Duration {
	return time.Duration(float64(base) * r.Range(1-variance, 1+variance))
}
