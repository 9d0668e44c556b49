package keyshift

import "fmt"

// Mode selects one of the three scale patterns. The set is closed: transposition
// looks intervals up by degree index, so both keys must use the same fixed
// seven-degree shape.
type Mode int

const (
	Major Mode = iota
	NaturalMinor
	HarmonicMinor
	numModes
)

var modeNames = [...]string{"major", "naturalMinor", "harmonicMinor"}

// modeOffsets maps each mode to the semitone offsets of its seven degrees
// above the tonic. Offsets are strictly increasing and start at 0, so a given
// interval appears at most once per mode.
var modeOffsets = [numModes][7]int{
	Major:         {0, 2, 4, 5, 7, 9, 11},
	NaturalMinor:  {0, 2, 3, 5, 7, 8, 10},
	HarmonicMinor: {0, 2, 3, 5, 7, 8, 11},
}

func (m Mode) String() string {
	if m < 0 || m >= numModes {
		return "unknown"
	}
	return modeNames[m]
}

// Valid reports whether m is one of the recognized modes.
func (m Mode) Valid() bool {
	return m >= 0 && m < numModes
}

// Offsets returns the seven semitone offsets of the mode.
func (m Mode) Offsets() [7]int {
	return modeOffsets[m]
}

// degree returns the 0-based degree index whose offset equals the given
// interval above the tonic, or false if the interval is foreign to the mode.
// A linear scan; the table has seven entries.
func (m Mode) degree(interval int) (int, bool) {
	for i, o := range modeOffsets[m] {
		if o == interval {
			return i, true
		}
	}
	return 0, false
}

// ParseMode parses one of the stable mode tags "major", "naturalMinor" or
// "harmonicMinor". Tags are matched exactly.
func ParseMode(text string) (Mode, error) {
	for i, name := range modeNames {
		if text == name {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, text)
}
