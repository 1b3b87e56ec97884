package parameter

import "time"

// Frame loop & engine timing
const (
	// FrameUpdateInterval is the driver tick interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta clamps a single simulation step so a stalled driver cannot tunnel entities
	MaxFrameDelta = 50 * time.Millisecond

	// SnapshotInterval is the default websocket publish interval
	SnapshotInterval = 50 * time.Millisecond
)

// ECS & resource limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 2048

	// EventBufferMask is the bitmask for fast modulo operations (2048 - 1)
	EventBufferMask = 2047
)

// Default arena extents (world units) used when no surface has reported its size
const (
	DefaultArenaWidth  = 1280.0
	DefaultArenaHeight = 800.0
)

// EventLoopIterations caps dispatch passes per phase so handler-emitted events settle within a frame
const EventLoopIterations = 4
