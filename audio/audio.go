// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"time"
)

// Buffer is a fully decoded, planar PCM stream. Channels holds one slice per
// channel, every slice the same length, with samples as float32 in [-1,1].
//
// Functions in this module treat a Buffer they receive as read-only and
// always return freshly allocated buffers.
type Buffer struct {
	SampleRate int
	Channels   [][]float32
}

// NewBuffer builds a Buffer and checks its shape.
func NewBuffer(sampleRate int, channels ...[]float32) (*Buffer, error) {
	b := &Buffer{SampleRate: sampleRate, Channels: channels}
	if err := b.Validate(); err != nil {
		return nil, err
	}

	return b, nil
}

// Validate reports whether b has a positive rate, at least one channel and
// equally long channels.
func (b *Buffer) Validate() error {
	if b == nil {
		return ErrNoChannels
	}

	if b.SampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, b.SampleRate)
	}

	if len(b.Channels) == 0 {
		return ErrNoChannels
	}

	frames := len(b.Channels[0])
	for i, ch := range b.Channels[1:] {
		if len(ch) != frames {
			return fmt.Errorf("%w: channel %d has %d frames, channel 0 has %d",
				ErrChannelLengthMismatch, i+1, len(ch), frames)
		}
	}

	return nil
}

// NumChannels returns the channel count.
func (b *Buffer) NumChannels() int { return len(b.Channels) }

// Frames returns the number of samples per channel.
func (b *Buffer) Frames() int {
	if len(b.Channels) == 0 {
		return 0
	}

	return len(b.Channels[0])
}

// Seconds returns the length of b in seconds.
func (b *Buffer) Seconds() float64 {
	if b.SampleRate <= 0 {
		return 0
	}

	return float64(b.Frames()) / float64(b.SampleRate)
}

// Duration returns the length of b.
func (b *Buffer) Duration() time.Duration {
	return time.Duration(b.Seconds() * float64(time.Second))
}

// Interleave returns the samples of b frame by frame (L0,R0,L1,R1,...).
func (b *Buffer) Interleave() []float32 {
	channels := b.NumChannels()
	frames := b.Frames()
	out := make([]float32, frames*channels)

	for c, ch := range b.Channels {
		for f, s := range ch[:frames] {
			out[f*channels+c] = s
		}
	}

	return out
}

// Deinterleave splits frame ordered samples into a planar Buffer.
func Deinterleave(sampleRate, channels int, data []float32) (*Buffer, error) {
	if channels <= 0 {
		return nil, ErrNoChannels
	}

	if len(data)%channels != 0 {
		return nil, ErrInvalidDstSize
	}

	frames := len(data) / channels
	planes := make([][]float32, channels)
	for c := range planes {
		planes[c] = make([]float32, frames)
	}

	for f := range frames {
		base := f * channels
		for c := range channels {
			planes[c][f] = data[base+c]
		}
	}

	return NewBuffer(sampleRate, planes...)
}

// Decoder reads a whole input container into a Buffer.
type Decoder interface {
	Decode(r io.Reader) (*Buffer, error)
}
