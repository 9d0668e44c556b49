// Package oto plays rendered audio through the default output device, using
// ebitengine/oto under the hood.
package oto

import (
	"bytes"
	"fmt"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/arvilehto/keyshift"
)

type (
	Context struct {
		context *oto.Context
	}

	Output struct {
		context *oto.Context
	}
)

// NewContext opens the audio device for stereo float32 playback at
// keyshift.SampleRate and waits until the device is ready.
func NewContext() (*Context, error) {
	options := &oto.NewContextOptions{
		SampleRate:   keyshift.SampleRate,
		ChannelCount: 2,
		Format:       oto.FormatFloat32LE,
	}
	context, ready, err := oto.NewContext(options)
	if err != nil {
		return nil, fmt.Errorf("cannot create oto context: %w", err)
	}
	<-ready
	return &Context{context: context}, nil
}

func (c *Context) Output() keyshift.AudioSink {
	return &Output{context: c.context}
}

// Close implements keyshift.AudioContext. An oto context cannot actually be
// closed; it lives until the process exits.
func (c *Context) Close() error {
	return nil
}

// WriteAudio plays the whole buffer and returns once it has played out.
func (o *Output) WriteAudio(buffer []float32) error {
	player := o.context.NewPlayer(bytes.NewReader(floatBufferToLE(buffer)))
	player.Play()
	for player.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}
	if err := player.Close(); err != nil {
		return fmt.Errorf("cannot close oto player: %w", err)
	}
	return nil
}

func (o *Output) Close() error {
	return nil
}
