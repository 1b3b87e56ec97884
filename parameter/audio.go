package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length; trades latency for underrun safety
	AudioBufferDuration = 100 * time.Millisecond

	// AudioQueueSize bounds pending cue requests; overflow is dropped
	AudioQueueSize = 32

	// AudioMaxVoices caps concurrently mixed cues
	AudioMaxVoices = 12
)

// Kill Sound: sine pop with a fifth overtone
const (
	KillSoundFreq     = 660.0
	KillSoundDuration = 120 * time.Millisecond
	KillSoundAttack   = 4 * time.Millisecond
	KillSoundRelease  = 100 * time.Millisecond
)

// Reject Sound: low saw buzz
const (
	RejectSoundFreq     = 110.0
	RejectSoundDuration = 90 * time.Millisecond
	RejectSoundAttack   = 5 * time.Millisecond
	RejectSoundRelease  = 30 * time.Millisecond
)

// Chain Sound: rising square blips
const (
	ChainSoundNoteDuration = 60 * time.Millisecond
	ChainSoundAttack       = 3 * time.Millisecond
	ChainSoundRelease      = 40 * time.Millisecond
)

// ChainSoundNotes are E5, G#5, B5
var ChainSoundNotes = []float64{659.25, 830.61, 987.77}

// Divide Sound: soft low sine
const (
	DivideSoundFreq     = 196.0
	DivideSoundDuration = 180 * time.Millisecond
	DivideSoundAttack   = 40 * time.Millisecond
	DivideSoundRelease  = 120 * time.Millisecond
)

// Collect Sound: bell
const (
	CollectSoundDuration           = 600 * time.Millisecond
	CollectSoundAttack             = 5 * time.Millisecond
	CollectSoundFundamentalRelease = 550 * time.Millisecond
	CollectSoundOvertoneRelease    = 200 * time.Millisecond
)

// Round Won Sound: major arpeggio
const (
	RoundWonNoteDuration = 140 * time.Millisecond
	RoundWonLastDuration = 420 * time.Millisecond
	RoundWonAttack       = 5 * time.Millisecond
	RoundWonRelease      = 80 * time.Millisecond
	RoundWonLastRelease  = 350 * time.Millisecond
)

// RoundWonNotes are C5, E5, G5, C6
var RoundWonNotes = []float64{523.25, 659.25, 783.99, 1046.50}

// Swipe Sound: noise whoosh
const (
	SwipeSoundDuration = 220 * time.Millisecond
	SwipeSoundAttack   = 110 * time.Millisecond
	SwipeSoundRelease  = 110 * time.Millisecond
)
