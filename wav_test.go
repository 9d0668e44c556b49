package keyshift_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/arvilehto/keyshift"
)

func TestWavPCM16(t *testing.T) {
	buffer := []float32{0, 0.5, -0.5, 2, -2, 1} // the 2s clip
	wav, err := keyshift.Wav(buffer, true)
	if err != nil {
		t.Fatalf("Wav failed: %v", err)
	}
	if expected := 44 + 2*len(buffer); len(wav) != expected {
		t.Fatalf("pcm16 wav is %v bytes, expected %v", len(wav), expected)
	}
	if !bytes.Equal(wav[:4], []byte("RIFF")) || !bytes.Equal(wav[8:12], []byte("WAVE")) {
		t.Errorf("bad header magic: %q", wav[:12])
	}
	var format uint16
	binary.Read(bytes.NewReader(wav[20:22]), binary.LittleEndian, &format)
	if format != 1 {
		t.Errorf("wave format = %v, expected 1 (PCM)", format)
	}
}

func TestWavFloat32(t *testing.T) {
	buffer := []float32{0, 0.25, -0.25, 1}
	wav, err := keyshift.Wav(buffer, false)
	if err != nil {
		t.Fatalf("Wav failed: %v", err)
	}
	if expected := 58 + 4*len(buffer); len(wav) != expected {
		t.Fatalf("float32 wav is %v bytes, expected %v", len(wav), expected)
	}
	var format uint16
	binary.Read(bytes.NewReader(wav[20:22]), binary.LittleEndian, &format)
	if format != 3 {
		t.Errorf("wave format = %v, expected 3 (IEEE float)", format)
	}
}

func TestRaw(t *testing.T) {
	buffer := []float32{0, 1, -1, 0.5}
	raw, err := keyshift.Raw(buffer, false)
	if err != nil {
		t.Fatalf("Raw failed: %v", err)
	}
	if len(raw) != 4*len(buffer) {
		t.Fatalf("float32 raw is %v bytes, expected %v", len(raw), 4*len(buffer))
	}
	raw, err = keyshift.Raw(buffer, true)
	if err != nil {
		t.Fatalf("Raw failed: %v", err)
	}
	if len(raw) != 2*len(buffer) {
		t.Fatalf("pcm16 raw is %v bytes, expected %v", len(raw), 2*len(buffer))
	}
}
