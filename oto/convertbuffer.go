package oto

import (
	"encoding/binary"
	"math"
)

// floatBufferToLE converts a []float32 buffer to the raw little-endian byte
// stream the player consumes.
func floatBufferToLE(buffer []float32) []byte {
	ret := make([]byte, 4*len(buffer))
	for i, v := range buffer {
		binary.LittleEndian.PutUint32(ret[4*i:], math.Float32bits(v))
	}
	return ret
}
