package keyshift

import "errors"

// The four failure kinds the library can report. Functions wrap these with
// fmt.Errorf("...: %w", ...) so callers can match with errors.Is while still
// getting a message that names the offending input.
var (
	// ErrInvalidFormat means the text did not match the note-name grammar
	// <letter A-G><optional # or b><optional signed octave>.
	ErrInvalidFormat = errors.New("invalid note format")

	// ErrUnknownNote means the text matched the grammar but the
	// letter+accidental combination is not one of the recognized spellings
	// (e.g. Fb or E#).
	ErrUnknownNote = errors.New("unknown note spelling")

	// ErrOutOfRange means a MIDI number outside 0-127 was given to render.
	ErrOutOfRange = errors.New("MIDI number out of range")

	// ErrUnknownMode means a mode tag other than major, naturalMinor or
	// harmonicMinor.
	ErrUnknownMode = errors.New("unknown mode")
)
