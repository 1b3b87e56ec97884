package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/antigen/core"
	"github.com/lixenwraith/antigen/event"
)

// KeyBehavior classifies how a key is processed
type KeyBehavior uint8

const (
	BehaviorNone     KeyBehavior = iota
	BehaviorSystem               // Returned to the host as an intent
	BehaviorEvent                // Pushed to the simulation as a payload-less event
	BehaviorReceptor             // Drops a receptor at the pointer
)

// KeyEntry describes a key's behavior without function pointers
type KeyEntry struct {
	Behavior   KeyBehavior
	IntentType IntentType
	Event      event.EventType
	Marker     core.Marker
}

// KeyTable maps keys to behaviors
type KeyTable struct {
	// Special keys (Ctrl+*, Esc)
	SpecialKeys map[tcell.Key]KeyEntry

	// Rune bindings
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
// Digits 1..n drop the armed markers in cycle order
func DefaultKeyTable() *KeyTable {
	kt := &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyEscape: {Behavior: BehaviorSystem, IntentType: IntentQuit},
			tcell.KeyCtrlC:  {Behavior: BehaviorSystem, IntentType: IntentQuit},
			tcell.KeyCtrlQ:  {Behavior: BehaviorSystem, IntentType: IntentQuit},
		},
		Runes: map[rune]KeyEntry{
			'q': {Behavior: BehaviorSystem, IntentType: IntentQuit},
			' ': {Behavior: BehaviorSystem, IntentType: IntentTogglePause},
			'p': {Behavior: BehaviorSystem, IntentType: IntentTogglePause},
			's': {Behavior: BehaviorSystem, IntentType: IntentToggleMute},
			't': {Behavior: BehaviorSystem, IntentType: IntentToggleTargets},
			'r': {Behavior: BehaviorEvent, Event: event.EventGameReset},
			'm': {Behavior: BehaviorEvent, Event: event.EventCycleSpawnMarker},
		},
	}
	for i, m := range core.ArmedMarkers() {
		if i >= 9 {
			break
		}
		kt.Runes[rune('1'+i)] = KeyEntry{Behavior: BehaviorReceptor, Marker: m}
	}
	return kt
}
