package keyshift

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

type (
	// Sheet is the on-disk document describing one transposition job: the
	// melody as note tokens plus the source and target keys. Sheets are
	// accepted in both yaml and json, e.g.
	//
	//   notes: [C4, E4, G4, Bb4]
	//   from: {tonic: C, mode: major}
	//   to: {tonic: A, mode: harmonicMinor}
	Sheet struct {
		Notes []string `yaml:",flow" json:"notes"`
		From  KeySpec  `json:"from"`
		To    KeySpec  `json:"to"`
	}

	// KeySpec is the unresolved key of a sheet, kept as strings so that a
	// document with a bad tonic or mode parses structurally and fails with
	// the proper note/mode error on resolution.
	KeySpec struct {
		Tonic string `json:"tonic"`
		Mode  string `json:"mode"`
	}
)

// Key resolves the spec into a Key.
func (s KeySpec) Key() (Key, error) {
	mode, err := ParseMode(s.Mode)
	if err != nil {
		return Key{}, err
	}
	return NewKey(s.Tonic, mode)
}

// Melody parses the sheet's note tokens, failing fast on the first bad one.
func (s *Sheet) Melody() (Melody, error) {
	return ParseMelody(s.Notes)
}

// ParseSheet decodes a sheet document, trying json first and yaml second,
// and reports both decode errors when neither format matches.
func ParseSheet(data []byte) (Sheet, error) {
	var sheet Sheet
	if errJSON := json.Unmarshal(data, &sheet); errJSON != nil {
		if errYaml := yaml.Unmarshal(data, &sheet); errYaml != nil {
			return Sheet{}, fmt.Errorf("the sheet could not be parsed as .json (%v) or .yml (%v)", errJSON, errYaml)
		}
	}
	return sheet, nil
}

// Transpose resolves the sheet's keys, parses its melody and transposes it.
func (s *Sheet) Transpose() (Melody, error) {
	fromKey, err := s.From.Key()
	if err != nil {
		return nil, fmt.Errorf("source key: %w", err)
	}
	toKey, err := s.To.Key()
	if err != nil {
		return nil, fmt.Errorf("target key: %w", err)
	}
	melody, err := s.Melody()
	if err != nil {
		return nil, err
	}
	return Transpose(melody, fromKey, toKey)
}
