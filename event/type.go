package event

// EventType represents the type of simulation event
type EventType int

const (
	// === Meta Event ===

	// EventGameReset clears the world and starts round one
	// Trigger: Player reset, CLI start
	// Consumer: RoundSystem, SpawnSystem, all stateful systems | Payload: nil
	EventGameReset EventType = iota + 1

	// EventSystemToggle enables or disables a system by name
	// Trigger: Debug input, remote command
	// Consumer: Every system embedding the toggle | Payload: *SystemTogglePayload
	EventSystemToggle

	// === Round Event ===

	// EventRoundStart requests cluster generation for a new round
	// Trigger: RoundSystem after reset or victory phase
	// Consumer: SpawnSystem | Payload: *RoundPayload
	EventRoundStart

	// EventRoundWon signals the board was cleared of cancer cells
	// Trigger: RoundSystem
	// Consumer: AudioSystem, DiagnosticsSystem | Payload: *RoundPayload
	EventRoundWon

	// === Gesture Event ===

	// EventSwipe applies an impulse to T-cells near the swipe segment
	// Trigger: Input mapper, remote client
	// Consumer: GestureSystem | Payload: *SwipePayload
	EventSwipe

	// EventDropReceptor arms the T-cell under the drop point
	// Trigger: Input mapper, remote client
	// Consumer: GestureSystem | Payload: *DropReceptorPayload
	EventDropReceptor

	// EventDropUpgrade applies a single-mode upgrade to the T-cell under the drop point
	// Trigger: Input mapper, remote client
	// Consumer: GestureSystem | Payload: *DropUpgradePayload
	EventDropUpgrade

	// EventCollectUpgrade applies a global-mode upgrade to every T-cell
	// Trigger: Input mapper tap, remote client
	// Consumer: GestureSystem | Payload: *CollectUpgradePayload
	EventCollectUpgrade

	// EventCycleMarker advances one T-cell's marker
	// Trigger: Input mapper, remote client
	// Consumer: GestureSystem | Payload: *CycleMarkerPayload
	EventCycleMarker

	// EventSetSpawnMarker selects the marker given to newly spawned T-cells
	// Trigger: Remote client
	// Consumer: SpawnSystem | Payload: *SpawnMarkerPayload
	EventSetSpawnMarker

	// EventCycleSpawnMarker advances the spawn marker
	// Trigger: Input mapper
	// Consumer: SpawnSystem | Payload: nil
	EventCycleSpawnMarker

	// EventSpawnCancer places a cancer cell directly
	// Trigger: Debug input, remote client, tests
	// Consumer: SpawnSystem | Payload: *SpawnCancerPayload
	EventSpawnCancer

	// EventSpawnTCell places a T-cell directly
	// Trigger: Debug input, remote client, tests
	// Consumer: SpawnSystem | Payload: *SpawnTCellPayload
	EventSpawnTCell

	// === Interaction Event ===

	// EventBindingStarted signals a T-cell made contact and began binding
	// Trigger: BindingSystem
	// Consumer: DiagnosticsSystem | Payload: *BindingPayload
	EventBindingStarted

	// EventBindingRejected signals a binding ended on marker mismatch
	// Trigger: BindingSystem
	// Consumer: AudioSystem, DiagnosticsSystem | Payload: *BindingPayload
	EventBindingRejected

	// EventCancerKilled signals a cancer cell entered Dying
	// Trigger: BindingSystem, ChainSystem
	// Consumer: AudioSystem, DiagnosticsSystem | Payload: *CancerKilledPayload
	EventCancerKilled

	// EventChainTriggered starts a cascade from a kill by a chain-reaction T-cell
	// Trigger: BindingSystem
	// Consumer: ChainSystem | Payload: *ChainTriggerPayload
	EventChainTriggered

	// EventChainKill is a scheduled cascade kill, released by the delay queue
	// Trigger: ChainSystem via DelayQueue
	// Consumer: ChainSystem | Payload: *ChainKillPayload
	EventChainKill

	// EventCancerDivided signals a proliferation spawned a child cell
	// Trigger: CancerSystem
	// Consumer: AudioSystem, DiagnosticsSystem | Payload: *CancerDividedPayload
	EventCancerDivided

	// === Spawn Event ===

	// EventTCellSpawned signals a new T-cell entered the arena
	// Trigger: SpawnSystem
	// Consumer: DiagnosticsSystem | Payload: *EntitySpawnedPayload
	EventTCellSpawned

	// EventUpgradeSpawned signals a new collectible
	// Trigger: SpawnSystem
	// Consumer: DiagnosticsSystem | Payload: *UpgradeSpawnedPayload
	EventUpgradeSpawned

	// EventUpgradeApplied signals an upgrade reached one or more T-cells
	// Trigger: GestureSystem
	// Consumer: AudioSystem, DiagnosticsSystem | Payload: *UpgradeAppliedPayload
	EventUpgradeApplied

	// === Audio Event ===

	// EventSoundRequest requests cue playback
	// Trigger: AudioSystem mapping
	// Consumer: AudioSystem | Payload: *SoundRequestPayload
	EventSoundRequest
)

// GameEvent represents a single event with metadata
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
