package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/antigen/core"
	"github.com/lixenwraith/antigen/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream and ends it after duration
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if remaining := e.totalSamples - e.position; remaining < len(samples) {
		if remaining <= 0 {
			return 0, false
		}
		samples = samples[:remaining]
	}

	n, ok = e.streamer.Stream(samples)

	releaseStart := e.attackSamples + e.sustainSamples
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain
// math.Log2(0) is -Inf, so zero volume is mapped to silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone is a shaped oscillator note
func tone(freq float64, wave WaveType, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, duration, wave, rate), duration, attack, release, rate)
}

// Cue generators, unity gain

// CreateKillSound generates a short bright pop for a binding kill
func CreateKillSound(rate beep.SampleRate) beep.Streamer {
	fund, err := generators.SineTone(rate, parameter.KillSoundFreq)
	if err != nil {
		fund = NewOscillator(parameter.KillSoundFreq, parameter.KillSoundDuration, WaveSine, rate)
	}
	fundShaped := NewEnvelope(fund, parameter.KillSoundDuration, parameter.KillSoundAttack, parameter.KillSoundRelease, rate)
	fifth := tone(parameter.KillSoundFreq*1.5, WaveSine, parameter.KillSoundDuration, parameter.KillSoundAttack, parameter.KillSoundRelease/2, rate)

	return beep.Mix(
		newVolume(fundShaped, 0.7),
		newVolume(fifth, 0.3),
	)
}

// CreateRejectSound generates a low buzz for a marker mismatch
func CreateRejectSound(rate beep.SampleRate) beep.Streamer {
	return tone(parameter.RejectSoundFreq, WaveSaw, parameter.RejectSoundDuration, parameter.RejectSoundAttack, parameter.RejectSoundRelease, rate)
}

// CreateChainSound generates rising blips for a cascade kill
func CreateChainSound(rate beep.SampleRate) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(parameter.ChainSoundNotes))
	for _, freq := range parameter.ChainSoundNotes {
		notes = append(notes, tone(freq, WaveSquare, parameter.ChainSoundNoteDuration, parameter.ChainSoundAttack, parameter.ChainSoundRelease, rate))
	}
	return newVolume(beep.Seq(notes...), 0.5)
}

// CreateDivideSound generates a soft swell for a proliferation
func CreateDivideSound(rate beep.SampleRate) beep.Streamer {
	return tone(parameter.DivideSoundFreq, WaveSine, parameter.DivideSoundDuration, parameter.DivideSoundAttack, parameter.DivideSoundRelease, rate)
}

// CreateCollectSound generates a bell for an applied upgrade or receptor
func CreateCollectSound(rate beep.SampleRate) beep.Streamer {
	// Fundamental A5
	fund := tone(880.0, WaveSine, parameter.CollectSoundDuration, parameter.CollectSoundAttack, parameter.CollectSoundFundamentalRelease, rate)
	// Octave overtone
	over := tone(1760.0, WaveSine, parameter.CollectSoundDuration, parameter.CollectSoundAttack, parameter.CollectSoundOvertoneRelease, rate)

	return beep.Mix(
		newVolume(fund, 0.7),
		newVolume(over, 0.3),
	)
}

// CreateRoundWonSound generates an ascending arpeggio with a held last note
func CreateRoundWonSound(rate beep.SampleRate) beep.Streamer {
	last := len(parameter.RoundWonNotes) - 1
	notes := make([]beep.Streamer, 0, len(parameter.RoundWonNotes))
	for i, freq := range parameter.RoundWonNotes {
		duration, release := parameter.RoundWonNoteDuration, parameter.RoundWonRelease
		if i == last {
			duration, release = parameter.RoundWonLastDuration, parameter.RoundWonLastRelease
		}
		notes = append(notes, tone(freq, WaveSine, duration, parameter.RoundWonAttack, release, rate))
	}
	return beep.Seq(notes...)
}

// CreateSwipeSound generates a noise whoosh for an impulse gesture
func CreateSwipeSound(rate beep.SampleRate) beep.Streamer {
	return newVolume(tone(0, WaveNoise, parameter.SwipeSoundDuration, parameter.SwipeSoundAttack, parameter.SwipeSoundRelease, rate), 0.4)
}

// Cue returns a fresh streamer for the sound type, nil for unknown types
func Cue(st core.SoundType, rate beep.SampleRate) beep.Streamer {
	switch st {
	case core.SoundKill:
		return CreateKillSound(rate)
	case core.SoundReject:
		return CreateRejectSound(rate)
	case core.SoundChain:
		return CreateChainSound(rate)
	case core.SoundDivide:
		return CreateDivideSound(rate)
	case core.SoundCollect:
		return CreateCollectSound(rate)
	case core.SoundRoundWon:
		return CreateRoundWonSound(rate)
	case core.SoundSwipe:
		return CreateSwipeSound(rate)
	default:
		return nil
	}
}

// CueDuration returns the playback length of a cue
func CueDuration(st core.SoundType) time.Duration {
	switch st {
	case core.SoundKill:
		return parameter.KillSoundDuration
	case core.SoundReject:
		return parameter.RejectSoundDuration
	case core.SoundChain:
		return time.Duration(len(parameter.ChainSoundNotes)) * parameter.ChainSoundNoteDuration
	case core.SoundDivide:
		return parameter.DivideSoundDuration
	case core.SoundCollect:
		return parameter.CollectSoundDuration
	case core.SoundRoundWon:
		return time.Duration(len(parameter.RoundWonNotes)-1)*parameter.RoundWonNoteDuration + parameter.RoundWonLastDuration
	case core.SoundSwipe:
		return parameter.SwipeSoundDuration
	default:
		return 0
	}
}
