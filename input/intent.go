package input

// IntentType discriminates actions the mapper hands back to the caller
// Gestures go straight to the simulation; intents are for the host loop
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentQuit          // q, Esc, Ctrl+C
	IntentResize        // Terminal resize event
	IntentTogglePause   // Space, p
	IntentToggleMute    // s
	IntentToggleTargets // t
)

// String returns the intent label
func (t IntentType) String() string {
	switch t {
	case IntentQuit:
		return "quit"
	case IntentResize:
		return "resize"
	case IntentTogglePause:
		return "toggle_pause"
	case IntentToggleMute:
		return "toggle_mute"
	case IntentToggleTargets:
		return "toggle_targets"
	default:
		return "none"
	}
}
