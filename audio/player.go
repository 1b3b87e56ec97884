package audio

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/antigen/config"
	"github.com/lixenwraith/antigen/core"
	"github.com/lixenwraith/antigen/parameter"
)

// Player synthesizes cues into a beep mixer driven by the system speaker
// Play never blocks the simulation: requests go through a bounded queue and overflow is dropped
type Player struct {
	rate  beep.SampleRate
	mixer *beep.Mixer

	queue    chan core.SoundType
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	mu     sync.RWMutex // Protects volume
	volume float64

	running    atomic.Bool
	muted      atomic.Bool
	silentMode atomic.Bool
	speakerOn  atomic.Bool

	played  atomic.Uint64
	dropped atomic.Uint64
}

// NewPlayer creates a stopped player from audio config
func NewPlayer(cfg config.AudioConfig) *Player {
	rate := cfg.SampleRate
	if rate <= 0 {
		rate = parameter.AudioSampleRate
	}
	p := &Player{
		rate:     beep.SampleRate(rate),
		mixer:    &beep.Mixer{},
		queue:    make(chan core.SoundType, parameter.AudioQueueSize),
		stopChan: make(chan struct{}),
		volume:   clampVolume(cfg.Volume),
	}
	p.muted.Store(!cfg.Enabled)
	return p
}

// Start opens the speaker and launches the cue loop
// A missing audio device switches to silent mode instead of failing
func (p *Player) Start() error {
	if !p.running.CompareAndSwap(false, true) {
		return fmt.Errorf("audio player already running")
	}

	if err := speaker.Init(p.rate, p.rate.N(parameter.AudioBufferDuration)); err != nil {
		log.Printf("audio: speaker unavailable, running silent: %v", err)
		p.silentMode.Store(true)
		return nil
	}
	p.speakerOn.Store(true)
	speaker.Play(p.mixer)

	p.startLoop()
	return nil
}

// startLoop runs the cue loop without touching the speaker
func (p *Player) startLoop() {
	p.wg.Add(1)
	core.Go(p.loop)
}

// Stop halts the loop and closes the speaker; idempotent
func (p *Player) Stop() {
	p.stopOnce.Do(func() {
		close(p.stopChan)
		p.wg.Wait()
		if p.speakerOn.CompareAndSwap(true, false) {
			speaker.Clear()
			speaker.Close()
		}
		p.running.Store(false)
	})
}

// Play queues a cue; returns false when muted, silent, stopped or the queue is full
func (p *Player) Play(st core.SoundType) bool {
	if !p.running.Load() || p.muted.Load() || p.silentMode.Load() {
		return false
	}
	if st < 0 || st >= core.SoundTypeCount {
		return false
	}

	select {
	case p.queue <- st:
		return true
	default:
		p.dropped.Add(1)
		return false
	}
}

func (p *Player) loop() {
	defer p.wg.Done()

	for {
		select {
		case <-p.stopChan:
			return
		case st := <-p.queue:
			p.add(st)
		}
	}
}

// add builds the cue and hands it to the mixer under the speaker lock
func (p *Player) add(st core.SoundType) {
	cue := Cue(st, p.rate)
	if cue == nil {
		return
	}

	p.mu.RLock()
	vol := p.volume
	p.mu.RUnlock()

	speaker.Lock()
	if p.mixer.Len() >= parameter.AudioMaxVoices {
		speaker.Unlock()
		p.dropped.Add(1)
		return
	}
	p.mixer.Add(newVolume(cue, vol))
	speaker.Unlock()

	p.played.Add(1)
}

// ToggleMute toggles mute state, returns true if now audible
func (p *Player) ToggleMute() bool {
	for {
		old := p.muted.Load()
		if p.muted.CompareAndSwap(old, !old) {
			return old
		}
	}
}

// IsMuted returns current mute state
func (p *Player) IsMuted() bool {
	return p.muted.Load()
}

// IsRunning returns true if started, even in silent mode
func (p *Player) IsRunning() bool {
	return p.running.Load()
}

// IsSilent reports whether no audio device could be opened
func (p *Player) IsSilent() bool {
	return p.silentMode.Load()
}

// SetVolume updates master volume (0.0-1.0)
func (p *Player) SetVolume(vol float64) {
	p.mu.Lock()
	p.volume = clampVolume(vol)
	p.mu.Unlock()
}

// Volume returns master volume
func (p *Player) Volume() float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.volume
}

// Stats returns played and dropped counts
func (p *Player) Stats() (played, dropped uint64) {
	return p.played.Load(), p.dropped.Load()
}

func clampVolume(vol float64) float64 {
	if vol < 0 {
		return 0
	}
	if vol > 1 {
		return 1
	}
	return vol
}
