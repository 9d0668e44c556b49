package synth_test

import (
	"math"
	"testing"

	"github.com/arvilehto/keyshift"
	"github.com/arvilehto/keyshift/synth"
)

func TestFrequency(t *testing.T) {
	cases := []struct {
		note int
		hz   float64
	}{
		{69, 440},
		{57, 220},
		{81, 880},
		{60, 261.6255653005986},
	}
	for _, c := range cases {
		if hz := synth.Frequency(c.note); math.Abs(hz-c.hz) > 1e-9 {
			t.Errorf("Frequency(%v) = %v, expected %v", c.note, hz, c.hz)
		}
	}
}

func TestRenderLength(t *testing.T) {
	melody := keyshift.Melody{60, 64, 67}
	buffer, err := synth.Render(melody, 120)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	samplesPerNote := keyshift.SampleRate * 60 / 120
	if expected := 2 * samplesPerNote * len(melody); len(buffer) != expected {
		t.Fatalf("buffer is %v samples, expected %v", len(buffer), expected)
	}
}

func TestRenderOutput(t *testing.T) {
	buffer, err := synth.Render(keyshift.Melody{69}, 120)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	var peak float32
	for i := 0; i < len(buffer); i += 2 {
		if buffer[i] != buffer[i+1] {
			t.Fatalf("channels should carry the same signal, differ at frame %v", i/2)
		}
		if abs := float32(math.Abs(float64(buffer[i]))); abs > peak {
			peak = abs
		}
	}
	if peak > 0.5 {
		t.Errorf("peak %v exceeds the oscillator gain", peak)
	}
	if peak < 0.1 {
		t.Errorf("peak %v, expected an audible signal", peak)
	}
}

func TestRenderSilenceForOutOfRange(t *testing.T) {
	buffer, err := synth.Render(keyshift.Melody{200}, 120)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	for i, sample := range buffer {
		if sample != 0 {
			t.Fatalf("expected silence, sample %v is %v", i, sample)
		}
	}
}

func TestRenderRejectsBadBPM(t *testing.T) {
	if _, err := synth.Render(keyshift.Melody{60}, 0); err == nil {
		t.Fatalf("expected an error for BPM 0")
	}
}
