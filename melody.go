package keyshift

import (
	"fmt"
	"strings"
)

// Melody is an ordered sequence of MIDI numbers; the order is the temporal
// order of the notes and repeats are allowed.
type Melody []int

// Copy makes a deep copy of a Melody.
func (m Melody) Copy() Melody {
	ret := make(Melody, len(m))
	copy(ret, m)
	return ret
}

// ParseMelody parses a sequence of note tokens into a Melody. The whole batch
// fails on the first malformed token, reporting the token and its position;
// filtering bad tokens beforehand is the caller's business.
func ParseMelody(tokens []string) (Melody, error) {
	melody := make(Melody, len(tokens))
	for i, tok := range tokens {
		note, err := ParseNote(tok)
		if err != nil {
			return nil, fmt.Errorf("token %v: %w", i, err)
		}
		melody[i] = note
	}
	return melody, nil
}

// ParseMelodyText tokenizes free text on whitespace and commas and parses the
// tokens. This is the ingestion path for plain note-list files.
func ParseMelodyText(text string) (Melody, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == ','
	})
	return ParseMelody(fields)
}

// Render converts every note of the melody back to its canonical name.
// Fails if any note is outside 0-127.
func (m Melody) Render() ([]string, error) {
	names := make([]string, len(m))
	for i, note := range m {
		name, err := RenderNote(note)
		if err != nil {
			return nil, fmt.Errorf("note %v: %w", i, err)
		}
		names[i] = name
	}
	return names, nil
}
