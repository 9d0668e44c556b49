// Package synth renders melodies as audible previews: a monophonic sine
// oscillator, one note per beat, stereo float32 at keyshift.SampleRate.
package synth

import (
	"errors"
	"math"

	"github.com/arvilehto/keyshift"
)

const gain = 0.5

// decayPow2 sets how fast a note fades: the amplitude halves decayPow2 times
// over one beat, so notes do not click into each other at any BPM.
const decayPow2 = 8

// Frequency returns the equal-tempered frequency of a MIDI number in Hz,
// with A4 (69) at 440 Hz.
func Frequency(note int) float64 {
	return 440 * math.Exp2(float64(note-69)/12)
}

// Render synthesizes the melody into a stereo interleaved float32 buffer.
// Each note rings for one beat at the given BPM. Notes outside 0-127 render
// as silence for their beat; they carry no pitch to preview.
func Render(melody keyshift.Melody, bpm int) ([]float32, error) {
	if bpm < 1 {
		return nil, errors.New("BPM should be > 0")
	}
	samplesPerNote := keyshift.SampleRate * 60 / bpm
	buffer := make([]float32, 0, 2*samplesPerNote*len(melody))
	for _, note := range melody {
		if note < 0 || note > 127 {
			buffer = append(buffer, make([]float32, 2*samplesPerNote)...)
			continue
		}
		omega := Frequency(note) / keyshift.SampleRate
		amplitude := float64(gain)
		decay := math.Exp2(-decayPow2 / float64(samplesPerNote))
		phase := 0.0
		for i := 0; i < samplesPerNote; i++ {
			sample := float32(amplitude * math.Sin(2*math.Pi*phase))
			buffer = append(buffer, sample, sample)
			phase += omega
			if phase >= 1 {
				phase -= 1
			}
			amplitude *= decay
		}
	}
	return buffer, nil
}
