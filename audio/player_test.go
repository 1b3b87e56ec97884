package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/antigen/config"
	"github.com/lixenwraith/antigen/core"
	"github.com/lixenwraith/antigen/engine"
	"github.com/lixenwraith/antigen/parameter"
)

func testAudioConfig() config.AudioConfig {
	return config.AudioConfig{Enabled: true, Volume: 0.5, SampleRate: 44100}
}

// startHeadless runs the cue loop without opening a device
func startHeadless(t *testing.T, p *Player) {
	t.Helper()
	p.running.Store(true)
	p.startLoop()
	t.Cleanup(func() {
		close(p.stopChan)
		p.wg.Wait()
	})
}

// TestPlayerStoppedRejects verifies Play is a no-op before Start
func TestPlayerStoppedRejects(t *testing.T) {
	p := NewPlayer(testAudioConfig())
	if p.Play(core.SoundKill) {
		t.Error("Expected Play to fail before Start")
	}
	if p.IsRunning() {
		t.Error("Expected player not running")
	}
}

// TestPlayerMute verifies mute state follows config and toggling
func TestPlayerMute(t *testing.T) {
	cfg := testAudioConfig()
	cfg.Enabled = false
	p := NewPlayer(cfg)
	startHeadless(t, p)

	if !p.IsMuted() {
		t.Fatal("Expected muted player when disabled")
	}
	if p.Play(core.SoundKill) {
		t.Error("Expected muted Play to fail")
	}
	if !p.ToggleMute() {
		t.Error("Expected toggle to report audible")
	}
	if p.IsMuted() {
		t.Error("Expected unmuted after toggle")
	}
}

// TestPlayerMixesCue verifies queued cues reach the mixer and produce samples
func TestPlayerMixesCue(t *testing.T) {
	p := NewPlayer(testAudioConfig())
	startHeadless(t, p)

	if !p.Play(core.SoundCollect) {
		t.Fatal("Expected Play to queue")
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if played, _ := p.Stats(); played == 1 {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}
	if played, _ := p.Stats(); played != 1 {
		t.Fatalf("Expected 1 played cue, got %d", played)
	}

	buf := make([][2]float64, 4096)
	speaker.Lock()
	n, _ := p.mixer.Stream(buf)
	speaker.Unlock()

	peak := 0.0
	for i := 0; i < n; i++ {
		peak = max(peak, buf[i][0], -buf[i][0])
	}
	if peak <= 0 || peak > 0.5+1e-9 {
		t.Errorf("Expected audible cue within master volume, got peak %f", peak)
	}
}

// TestPlayerQueueOverflow verifies excess requests are dropped without blocking
func TestPlayerQueueOverflow(t *testing.T) {
	p := NewPlayer(testAudioConfig())
	p.running.Store(true) // loop not started, queue never drains

	accepted := 0
	for range parameter.AudioQueueSize + 5 {
		if p.Play(core.SoundKill) {
			accepted++
		}
	}
	if accepted != parameter.AudioQueueSize {
		t.Errorf("Expected %d accepted, got %d", parameter.AudioQueueSize, accepted)
	}
	if _, dropped := p.Stats(); dropped != 5 {
		t.Errorf("Expected 5 dropped, got %d", dropped)
	}
}

// TestPlayerInvalidSound verifies out-of-range sound types are rejected
func TestPlayerInvalidSound(t *testing.T) {
	p := NewPlayer(testAudioConfig())
	p.running.Store(true)
	if p.Play(core.SoundTypeCount) {
		t.Error("Expected unknown sound rejected")
	}
}

// TestPlayerVolumeClamp verifies volume stays in [0, 1]
func TestPlayerVolumeClamp(t *testing.T) {
	p := NewPlayer(testAudioConfig())
	p.SetVolume(2)
	if v := p.Volume(); v != 1 {
		t.Errorf("Expected 1, got %f", v)
	}
	p.SetVolume(-1)
	if v := p.Volume(); v != 0 {
		t.Errorf("Expected 0, got %f", v)
	}
}

// TestPlayerImplementsAudioPlayer verifies the engine bridge accepts the player
func TestPlayerImplementsAudioPlayer(t *testing.T) {
	var _ engine.AudioPlayer = NewPlayer(testAudioConfig())

	res := &engine.AudioResource{}
	if res.Play(core.SoundKill) {
		t.Error("Expected resource without player to be silent")
	}
}

// TestServiceInit verifies config is taken from args and mute can be forced
func TestServiceInit(t *testing.T) {
	s := NewService()
	if s.Name() != "audio" || len(s.Dependencies()) != 0 {
		t.Errorf("Unexpected service identity %q %v", s.Name(), s.Dependencies())
	}

	cfg := testAudioConfig()
	if err := s.Init(&cfg, true); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	p := s.Player()
	if p == nil {
		t.Fatal("Expected player after Init")
	}
	if !p.IsMuted() {
		t.Error("Expected forced mute")
	}
	if p.Volume() != 0.5 {
		t.Errorf("Expected volume 0.5, got %f", p.Volume())
	}
	if err := s.Stop(); err != nil {
		t.Errorf("Stop failed: %v", err)
	}
}
