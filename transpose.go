package keyshift

import (
	"fmt"
	"math"
)

// NoteTrace records the decision taken for a single note during
// transposition. Purely diagnostic; Transpose never needs it.
type NoteTrace struct {
	Input      int  // original MIDI number
	PitchClass int  // input mod 12
	Diatonic   bool // true if the note sat on a scale degree of the source key
	Degree     int  // 1-based scale degree when Diatonic, 0 otherwise
	Shift      int  // chromatic semitone shift applied when not Diatonic
	Result     int  // MIDI number after transposition and clamping
}

// Transpose maps each note of the melody from fromKey to toKey, preserving
// the note's scale degree where it has one. A note diatonic to the source key
// lands on the same degree number of the target key, in the register aligned
// to its own octave; a note foreign to the source scale is shifted by the
// flat tonic-to-tonic interval instead, since it has no degree to preserve.
// Results are clamped to 0-127; input notes already outside that range pass
// through untouched. The input melody is not modified.
func Transpose(melody Melody, fromKey, toKey Key) (Melody, error) {
	result, _, err := transpose(melody, fromKey, toKey, false)
	return result, err
}

// TransposeTraced is Transpose plus a per-note trace of the decisions taken.
func TransposeTraced(melody Melody, fromKey, toKey Key) (Melody, []NoteTrace, error) {
	return transpose(melody, fromKey, toKey, true)
}

func transpose(melody Melody, fromKey, toKey Key, traced bool) (Melody, []NoteTrace, error) {
	if !fromKey.Mode.Valid() {
		return nil, nil, fmt.Errorf("%w: source key mode %v", ErrUnknownMode, int(fromKey.Mode))
	}
	if !toKey.Mode.Valid() {
		return nil, nil, fmt.Errorf("%w: target key mode %v", ErrUnknownMode, int(toKey.Mode))
	}
	result := make(Melody, len(melody))
	var traces []NoteTrace
	if traced {
		traces = make([]NoteTrace, len(melody))
	}
	for i, note := range melody {
		mapped, trace := transposeNote(note, fromKey, toKey)
		result[i] = mapped
		if traced {
			traces[i] = trace
		}
	}
	return result, traces, nil
}

func transposeNote(note int, fromKey, toKey Key) (int, NoteTrace) {
	trace := NoteTrace{Input: note}
	if note < 0 || note > 127 {
		// externally constructed out-of-range input is passed through
		// rather than rejected; strictness lives at the parse/render boundary
		trace.Result = note
		return note, trace
	}
	pitchClass := note % 12
	trace.PitchClass = pitchClass
	interval := (pitchClass - int(fromKey.Tonic) + 12) % 12
	if degree, ok := fromKey.Mode.degree(interval); ok {
		// Diatonic: keep the degree number, align the register to the
		// note's own octave. The quotient below is an exact integer since
		// idealTonic shares the tonic's pitch class, but the original
		// formula rounds and so do we.
		idealTonic := note - interval
		octaveOffset := int(math.Round(float64(idealTonic-int(fromKey.Tonic)) / 12))
		newTonic := int(toKey.Tonic) + 12*octaveOffset
		mapped := clamp(newTonic+toKey.Mode.Offsets()[degree], 0, 127)
		trace.Diatonic = true
		trace.Degree = degree + 1
		trace.Result = mapped
		return mapped, trace
	}
	// Chromatic: no degree to preserve, shift flat by the tonic interval.
	shift := (int(toKey.Tonic) - int(fromKey.Tonic) + 12) % 12
	mapped := clamp(note+shift, 0, 127)
	trace.Shift = shift
	trace.Result = mapped
	return mapped, trace
}

func clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
