package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/antigen/core"
)

const testRate = beep.SampleRate(44100)

// drain streams s to completion and returns the sample count and peak amplitude
func drain(t *testing.T, s beep.Streamer, limit int) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for total < limit {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		total += n
		if !ok || n == 0 {
			return total, peak
		}
	}
	t.Fatalf("Expected stream to end within %d samples", limit)
	return total, peak
}

// TestOscillatorRange verifies every wave shape stays within [-1, 1]
func TestOscillatorRange(t *testing.T) {
	tests := []struct {
		name string
		wave WaveType
	}{
		{"sine", WaveSine},
		{"square", WaveSquare},
		{"saw", WaveSaw},
		{"noise", WaveNoise},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			osc := NewOscillator(440, 50*time.Millisecond, tt.wave, testRate)
			samples := make([][2]float64, 100)
			n, ok := osc.Stream(samples)
			if !ok || n != 100 {
				t.Fatalf("Expected 100 samples ok, got %d %v", n, ok)
			}
			for i := 0; i < n; i++ {
				if samples[i][0] < -1 || samples[i][0] > 1 {
					t.Errorf("Sample %d out of range: %f", i, samples[i][0])
				}
				if samples[i][0] != samples[i][1] {
					t.Errorf("Sample %d: expected identical channels", i)
				}
			}
		})
	}
}

// TestOscillatorSquareLevels verifies the square wave only takes ±1
func TestOscillatorSquareLevels(t *testing.T) {
	osc := NewOscillator(220, 50*time.Millisecond, WaveSquare, testRate)
	samples := make([][2]float64, 200)
	n, _ := osc.Stream(samples)
	for i := 0; i < n; i++ {
		if v := samples[i][0]; v != 1 && v != -1 {
			t.Errorf("Expected ±1 at %d, got %f", i, v)
		}
	}
}

// TestOscillatorDuration verifies the oscillator stops at its duration
func TestOscillatorDuration(t *testing.T) {
	want := testRate.N(10 * time.Millisecond)
	osc := NewOscillator(440, 10*time.Millisecond, WaveSine, testRate)

	samples := make([][2]float64, want*2)
	n, ok := osc.Stream(samples)
	if n != want || !ok {
		t.Errorf("Expected %d samples ok, got %d %v", want, n, ok)
	}

	n, ok = osc.Stream(samples)
	if n != 0 || ok {
		t.Errorf("Expected drained oscillator, got %d %v", n, ok)
	}
}

// TestEnvelopeShape verifies attack ramps from silence and the stream ends at duration
func TestEnvelopeShape(t *testing.T) {
	duration := 100 * time.Millisecond
	osc := NewOscillator(0, time.Second, WaveSquare, testRate)
	env := NewEnvelope(osc, duration, 20*time.Millisecond, 20*time.Millisecond, testRate)

	samples := make([][2]float64, testRate.N(time.Second))
	n, _ := env.Stream(samples)
	if n != testRate.N(duration) {
		t.Fatalf("Expected %d samples, got %d", testRate.N(duration), n)
	}
	if samples[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", samples[0][0])
	}
	mid := n / 2
	if samples[mid][0] != 1 {
		t.Errorf("Expected full sustain at midpoint, got %f", samples[mid][0])
	}
	if last := samples[n-1][0]; last <= 0 || last > 0.01 {
		t.Errorf("Expected near-silent last sample, got %f", last)
	}

	if n, ok := env.Stream(samples); n != 0 || ok {
		t.Errorf("Expected drained envelope, got %d %v", n, ok)
	}
}

// TestNewVolumeZeroIsSilent verifies zero gain mutes instead of producing -Inf
func TestNewVolumeZeroIsSilent(t *testing.T) {
	s := newVolume(NewOscillator(0, 10*time.Millisecond, WaveSquare, testRate), 0)
	_, peak := drain(t, s, testRate.N(time.Second))
	if peak != 0 {
		t.Errorf("Expected silence, got peak %f", peak)
	}

	half := newVolume(NewOscillator(0, 10*time.Millisecond, WaveSquare, testRate), 0.5)
	_, peak = drain(t, half, testRate.N(time.Second))
	if math.Abs(peak-0.5) > 1e-9 {
		t.Errorf("Expected peak 0.5, got %f", peak)
	}
}

// TestCuesTerminate verifies every sound type yields a finite audible cue of the advertised length
func TestCuesTerminate(t *testing.T) {
	for st := core.SoundType(0); st < core.SoundTypeCount; st++ {
		t.Run(st.String(), func(t *testing.T) {
			cue := Cue(st, testRate)
			if cue == nil {
				t.Fatal("Expected a cue")
			}
			want := testRate.N(CueDuration(st))
			n, peak := drain(t, cue, want+4096)
			if n < want-512 || n > want+512 {
				t.Errorf("Expected about %d samples, got %d", want, n)
			}
			if peak <= 0 {
				t.Error("Expected an audible cue")
			}
		})
	}
}

// TestCueUnknown verifies unknown sound types map to nil
func TestCueUnknown(t *testing.T) {
	if Cue(core.SoundTypeCount, testRate) != nil {
		t.Error("Expected nil cue for unknown type")
	}
	if CueDuration(core.SoundTypeCount) != 0 {
		t.Error("Expected zero duration for unknown type")
	}
}
