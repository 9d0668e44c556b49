package keyshift_test

import (
	"errors"
	"testing"

	"github.com/arvilehto/keyshift"
)

func TestParseNote(t *testing.T) {
	cases := []struct {
		text string
		midi int
	}{
		{"C4", 60},
		{"Bb4", 70},
		{"c4", 60},
		{"C", 60},   // octave defaults to 4
		{"Bb", 70},  // accidental without octave
		{"C-1", 0},  // negative octaves reach the bottom of the MIDI range
		{"G9", 127}, // and the top
		{"f#3", 54},
		{"Db4", 61},
		{"C#4", 61}, // enharmonic with Db4
		{" A4 ", 69},
		{"b4", 71}, // lone lowercase b is the letter B, not a flat
	}
	for _, c := range cases {
		midi, err := keyshift.ParseNote(c.text)
		if err != nil {
			t.Errorf("ParseNote(%q) failed: %v", c.text, err)
			continue
		}
		if midi != c.midi {
			t.Errorf("ParseNote(%q) = %v, expected %v", c.text, midi, c.midi)
		}
	}
}

func TestParseNoteErrors(t *testing.T) {
	cases := []struct {
		text string
		kind error
	}{
		{"H4", keyshift.ErrInvalidFormat},
		{"", keyshift.ErrInvalidFormat},
		{"C##4", keyshift.ErrInvalidFormat},
		{"4", keyshift.ErrInvalidFormat},
		{"C4x", keyshift.ErrInvalidFormat},
		{"Fb4", keyshift.ErrUnknownNote}, // grammar-valid but not a recognized spelling
		{"E#2", keyshift.ErrUnknownNote},
		{"Cb", keyshift.ErrUnknownNote},
		{"B#", keyshift.ErrUnknownNote},
	}
	for _, c := range cases {
		_, err := keyshift.ParseNote(c.text)
		if !errors.Is(err, c.kind) {
			t.Errorf("ParseNote(%q) returned %v, expected %v", c.text, err, c.kind)
		}
	}
}

func TestRenderNote(t *testing.T) {
	cases := []struct {
		midi int
		text string
	}{
		{61, "C#4"},
		{60, "C4"},
		{0, "C-1"},
		{127, "G9"},
		{70, "A#4"}, // flats normalize to sharps on render
		{9, "A-1"},
	}
	for _, c := range cases {
		text, err := keyshift.RenderNote(c.midi)
		if err != nil {
			t.Errorf("RenderNote(%v) failed: %v", c.midi, err)
			continue
		}
		if text != c.text {
			t.Errorf("RenderNote(%v) = %q, expected %q", c.midi, text, c.text)
		}
	}
}

func TestRenderNoteOutOfRange(t *testing.T) {
	for _, midi := range []int{-1, 128, 1000} {
		if _, err := keyshift.RenderNote(midi); !errors.Is(err, keyshift.ErrOutOfRange) {
			t.Errorf("RenderNote(%v) returned %v, expected ErrOutOfRange", midi, err)
		}
	}
}

func TestNoteRoundTrip(t *testing.T) {
	for midi := 0; midi <= 127; midi++ {
		text, err := keyshift.RenderNote(midi)
		if err != nil {
			t.Fatalf("RenderNote(%v) failed: %v", midi, err)
		}
		back, err := keyshift.ParseNote(text)
		if err != nil {
			t.Fatalf("ParseNote(%q) failed: %v", text, err)
		}
		if back != midi {
			t.Fatalf("round trip of %v through %q gave %v", midi, text, back)
		}
	}
}

func TestParsePitchClass(t *testing.T) {
	cases := []struct {
		text string
		pc   keyshift.PitchClass
	}{
		{"C", 0}, {"C#", 1}, {"Db", 1}, {"eb", 3}, {"B", 11}, {"Gb", 6},
	}
	for _, c := range cases {
		pc, err := keyshift.ParsePitchClass(c.text)
		if err != nil {
			t.Errorf("ParsePitchClass(%q) failed: %v", c.text, err)
			continue
		}
		if pc != c.pc {
			t.Errorf("ParsePitchClass(%q) = %v, expected %v", c.text, pc, c.pc)
		}
	}
	if _, err := keyshift.ParsePitchClass("C4"); !errors.Is(err, keyshift.ErrInvalidFormat) {
		t.Errorf("ParsePitchClass should not accept octaves, got %v", err)
	}
}
