package core

// SoundType represents the audio cues raised by simulation events
type SoundType int

const (
	SoundKill      SoundType = iota // Cancer cell destroyed by binding
	SoundReject                     // Binding ended on marker mismatch
	SoundChain                      // Cascade kill landed
	SoundDivide                     // Cancer cell proliferated
	SoundCollect                    // Upgrade collected
	SoundRoundWon                   // Board cleared
	SoundSwipe                      // Impulse gesture applied
	SoundTypeCount
)

// String returns the sound name for logs and config keys
func (s SoundType) String() string {
	switch s {
	case SoundKill:
		return "kill"
	case SoundReject:
		return "reject"
	case SoundChain:
		return "chain"
	case SoundDivide:
		return "divide"
	case SoundCollect:
		return "collect"
	case SoundRoundWon:
		return "round_won"
	case SoundSwipe:
		return "swipe"
	default:
		return "unknown"
	}
}
