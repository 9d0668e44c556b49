package keyshift

import (
	"fmt"
	"strings"
)

// Key is a tonic pitch class plus a mode, e.g. (A, harmonicMinor). Keys are
// plain values; construct them with NewKey or ParseKey and pass by value.
type Key struct {
	Tonic PitchClass
	Mode  Mode
}

// NewKey builds a Key from a tonic spelling ("C", "Eb", "f#") and a mode.
func NewKey(tonic string, mode Mode) (Key, error) {
	pc, err := ParsePitchClass(tonic)
	if err != nil {
		return Key{}, err
	}
	if !mode.Valid() {
		return Key{}, fmt.Errorf("%w: %v", ErrUnknownMode, int(mode))
	}
	return Key{Tonic: pc, Mode: mode}, nil
}

// ParseKey parses a key spec of the form "Tonic:mode", e.g. "C:major" or
// "Eb:harmonicMinor". A space may be used instead of the colon.
func ParseKey(text string) (Key, error) {
	trimmed := strings.TrimSpace(text)
	parts := strings.SplitN(trimmed, ":", 2)
	if len(parts) < 2 {
		parts = strings.Fields(trimmed)
	}
	if len(parts) != 2 {
		return Key{}, fmt.Errorf("%w: key spec %q, expected Tonic:mode", ErrInvalidFormat, text)
	}
	mode, err := ParseMode(strings.TrimSpace(parts[1]))
	if err != nil {
		return Key{}, err
	}
	return NewKey(strings.TrimSpace(parts[0]), mode)
}

func (k Key) String() string {
	return k.Tonic.String() + ":" + k.Mode.String()
}
