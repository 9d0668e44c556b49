package keyshift

// SampleRate is the sample rate of all rendered audio, in Hz. Stereo
// interleaved float32 buffers are used throughout, so one frame is two
// consecutive samples.
const SampleRate = 44100

// AudioSink accepts rendered audio for playback or capture.
type AudioSink interface {
	WriteAudio(buffer []float32) error
	Close() error
}

// AudioContext is a connection to the audio system of the OS, from which
// sinks can be created.
type AudioContext interface {
	Output() AudioSink
	Close() error
}
