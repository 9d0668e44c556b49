// Package midifile reads melodies out of Standard MIDI Files and writes
// transposed melodies back. Only the note-on stream matters here: the melody
// is the ordered sequence of note-on keys, everything else (tempo map,
// controllers, velocities) is the file's business, not the transposer's.
package midifile

import (
	"fmt"
	"io"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/arvilehto/keyshift"
)

// Read extracts the melody from a Standard MIDI File: the keys of all
// note-on events, track by track in event order. A note-on with velocity 0
// is a running-status note-off and is skipped.
func Read(r io.Reader) (keyshift.Melody, error) {
	file, err := smf.ReadFrom(r)
	if err != nil {
		return nil, fmt.Errorf("could not read SMF: %w", err)
	}
	var melody keyshift.Melody
	var ch, key, vel uint8
	for _, track := range file.Tracks {
		for _, ev := range track {
			if ev.Message.GetNoteOn(&ch, &key, &vel) && vel > 0 {
				melody = append(melody, int(key))
			}
		}
	}
	return melody, nil
}

// Write emits the melody as a single-track SMF, one note per beat at the
// given BPM, fixed velocity. Fails with keyshift.ErrOutOfRange if any note
// does not fit in a MIDI key.
func Write(w io.Writer, melody keyshift.Melody, bpm int) error {
	file := smf.New()
	ticks := smf.MetricTicks(960)
	file.TimeFormat = ticks
	var track smf.Track
	track.Add(0, smf.MetaTempo(float64(bpm)))
	delta := uint32(0)
	for i, note := range melody {
		if note < 0 || note > 127 {
			return fmt.Errorf("note %v: %w: %v", i, keyshift.ErrOutOfRange, note)
		}
		track.Add(delta, midi.NoteOn(0, uint8(note), 100))
		track.Add(ticks.Ticks4th(), midi.NoteOff(0, uint8(note)))
		delta = 0
	}
	track.Close(0)
	if err := file.Add(track); err != nil {
		return fmt.Errorf("could not add SMF track: %w", err)
	}
	if _, err := file.WriteTo(w); err != nil {
		return fmt.Errorf("could not write SMF: %w", err)
	}
	return nil
}
