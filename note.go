package keyshift

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// PitchClass is one of the 12 semitone identities within an octave, C=0 ... B=11.
// Enharmonic spellings (C#/Db) map to the same PitchClass.
type PitchClass int

// DefaultOctave is assumed when a note token carries no octave, so "C" parses
// the same as "C4" (middle C, MIDI 60).
const DefaultOctave = 4

// spellings enumerates every letter+accidental combination the parser accepts.
// This is an explicit table rather than something derived from letter offsets,
// so that grammar-valid but unrecognized spellings like Fb or B# are rejected.
var spellings = map[string]PitchClass{
	"C":  0,
	"C#": 1,
	"Db": 1,
	"D":  2,
	"D#": 3,
	"Eb": 3,
	"E":  4,
	"F":  5,
	"F#": 6,
	"Gb": 6,
	"G":  7,
	"G#": 8,
	"Ab": 8,
	"A":  9,
	"A#": 10,
	"Bb": 10,
	"B":  11,
}

// sharpNames is the canonical render table; output never uses flats.
var sharpNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

var notePattern = regexp.MustCompile(`^([A-Ga-g])([#b]?)([+-]?\d+)?$`)

// String returns the canonical sharp-biased name of the pitch class.
func (p PitchClass) String() string {
	return sharpNames[((int(p)%12)+12)%12]
}

// ParsePitchClass parses a bare spelling without octave, e.g. "Eb" or "f#".
// Used for key tonics; ParseNote handles full note tokens.
func ParsePitchClass(text string) (PitchClass, error) {
	trimmed := strings.TrimSpace(text)
	m := notePattern.FindStringSubmatch(trimmed)
	if m == nil || m[3] != "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, text)
	}
	pc, ok := spellings[strings.ToUpper(m[1])+m[2]]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownNote, text)
	}
	return pc, nil
}

// ParseNote converts a note token like "C4", "f#3", "Bb" or "C-1" to its MIDI
// number, pitch class + 12*(octave+1). The octave defaults to 4 when absent
// and may be negative. No range check is done here; out-of-range numbers are
// clamped or rejected downstream.
func ParseNote(text string) (int, error) {
	trimmed := strings.TrimSpace(text)
	m := notePattern.FindStringSubmatch(trimmed)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, text)
	}
	pc, ok := spellings[strings.ToUpper(m[1])+m[2]]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownNote, text)
	}
	octave := DefaultOctave
	if m[3] != "" {
		var err error
		octave, err = strconv.Atoi(m[3])
		if err != nil { // the pattern guarantees digits, but Atoi can still overflow
			return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, text)
		}
	}
	return int(pc) + 12*(octave+1), nil
}

// RenderNote converts a MIDI number in 0-127 back to its canonical name,
// always using the sharp spelling, e.g. 61 -> "C#4", 0 -> "C-1".
func RenderNote(midi int) (string, error) {
	if midi < 0 || midi > 127 {
		return "", fmt.Errorf("%w: %v", ErrOutOfRange, midi)
	}
	octave := midi/12 - 1
	return sharpNames[midi%12] + strconv.Itoa(octave), nil
}
