package event

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"sync"
)

var (
	nameToType    = make(map[string]EventType)
	typeToName    = make(map[EventType]string)
	typeToPayload = make(map[EventType]reflect.Type)
	remoteAllowed = make(map[EventType]bool)
	registryOnce  sync.Once
)

// RegisterType maps a wire name to an EventType and its payload struct type
// payloadInstance should be a pointer to the payload struct; nil for payload-less events
func RegisterType(name string, et EventType, payloadInstance any) {
	nameToType[name] = et
	typeToName[et] = name
	if payloadInstance != nil {
		t := reflect.TypeOf(payloadInstance)
		if t.Kind() == reflect.Ptr {
			t = t.Elem()
		}
		typeToPayload[et] = t
	}
}

// GetEventType returns the EventType for a given name
func GetEventType(name string) (EventType, bool) {
	InitRegistry()
	et, ok := nameToType[name]
	return et, ok
}

// GetEventName returns the wire name for an EventType
func GetEventName(et EventType) string {
	InitRegistry()
	return typeToName[et]
}

// NewPayloadStruct returns a new pointer to a zero-value payload struct for the event type
// Returns nil if no payload is registered
func NewPayloadStruct(et EventType) any {
	InitRegistry()
	t, ok := typeToPayload[et]
	if !ok {
		return nil
	}
	return reflect.New(t).Interface()
}

// DecodeRemote builds a GameEvent from a named command and its JSON payload
// Only gesture and control events are accepted from remote producers
func DecodeRemote(name string, raw json.RawMessage) (GameEvent, error) {
	et, ok := GetEventType(name)
	if !ok {
		return GameEvent{}, fmt.Errorf("unknown event %q", name)
	}
	if !remoteAllowed[et] {
		return GameEvent{}, fmt.Errorf("event %q not accepted from remote", name)
	}

	payload := NewPayloadStruct(et)
	if payload != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, payload); err != nil {
			return GameEvent{}, fmt.Errorf("decoding %s payload: %w", name, err)
		}
	}
	return GameEvent{Type: et, Payload: payload}, nil
}

// RemoteNames returns the sorted wire names accepted by DecodeRemote
func RemoteNames() []string {
	InitRegistry()
	names := make([]string, 0, len(remoteAllowed))
	for et := range remoteAllowed {
		names = append(names, typeToName[et])
	}
	sort.Strings(names)
	return names
}

// InitRegistry populates the registry with all simulation events
// Safe to call repeatedly
func InitRegistry() {
	registryOnce.Do(func() {
		// Meta
		RegisterType("reset", EventGameReset, nil)
		RegisterType("system_toggle", EventSystemToggle, &SystemTogglePayload{})

		// Round
		RegisterType("round_start", EventRoundStart, &RoundPayload{})
		RegisterType("round_won", EventRoundWon, &RoundPayload{})

		// Gesture
		RegisterType("swipe", EventSwipe, &SwipePayload{})
		RegisterType("drop_receptor", EventDropReceptor, &DropReceptorPayload{})
		RegisterType("drop_upgrade", EventDropUpgrade, &DropUpgradePayload{})
		RegisterType("collect_upgrade", EventCollectUpgrade, &CollectUpgradePayload{})
		RegisterType("cycle_marker", EventCycleMarker, &CycleMarkerPayload{})
		RegisterType("set_spawn_marker", EventSetSpawnMarker, &SpawnMarkerPayload{})
		RegisterType("cycle_spawn_marker", EventCycleSpawnMarker, nil)
		RegisterType("spawn_cancer", EventSpawnCancer, &SpawnCancerPayload{})
		RegisterType("spawn_tcell", EventSpawnTCell, &SpawnTCellPayload{})

		// Interaction
		RegisterType("binding_started", EventBindingStarted, &BindingPayload{})
		RegisterType("binding_rejected", EventBindingRejected, &BindingPayload{})
		RegisterType("cancer_killed", EventCancerKilled, &CancerKilledPayload{})
		RegisterType("chain_triggered", EventChainTriggered, &ChainTriggerPayload{})
		RegisterType("chain_kill", EventChainKill, &ChainKillPayload{})
		RegisterType("cancer_divided", EventCancerDivided, &CancerDividedPayload{})

		// Spawn
		RegisterType("tcell_spawned", EventTCellSpawned, &EntitySpawnedPayload{})
		RegisterType("upgrade_spawned", EventUpgradeSpawned, &UpgradeSpawnedPayload{})
		RegisterType("upgrade_applied", EventUpgradeApplied, &UpgradeAppliedPayload{})

		// Audio
		RegisterType("sound_request", EventSoundRequest, &SoundRequestPayload{})

		for _, et := range []EventType{
			EventGameReset,
			EventSystemToggle,
			EventSwipe,
			EventDropReceptor,
			EventDropUpgrade,
			EventCollectUpgrade,
			EventCycleMarker,
			EventSetSpawnMarker,
			EventCycleSpawnMarker,
			EventSpawnCancer,
			EventSpawnTCell,
		} {
			remoteAllowed[et] = true
		}
	})
}
