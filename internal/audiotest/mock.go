// SPDX-License-Identifier: EPL-2.0

// Package audiotest builds synthetic audio buffers for tests and examples.
package audiotest

import (
	"math"

	"github.com/ik5/audcut/audio"
)

// Waveform returns the sample value for a frame index and channel.
type Waveform func(frame int, channel int) float32

// NewBuffer creates a buffer of frames samples per channel filled by waveform.
func NewBuffer(sampleRate, channels, frames int, waveform Waveform) *audio.Buffer {
	planes := make([][]float32, channels)
	for c := range planes {
		planes[c] = make([]float32, frames)
		for f := range frames {
			planes[c][f] = waveform(f, c)
		}
	}

	return &audio.Buffer{SampleRate: sampleRate, Channels: planes}
}

// NewSilentBuffer creates a buffer of zeros.
func NewSilentBuffer(sampleRate, channels, frames int) *audio.Buffer {
	return NewBuffer(sampleRate, channels, frames, func(int, int) float32 { return 0 })
}

// NewSineBuffer creates a buffer holding the same sine tone on every channel.
func NewSineBuffer(sampleRate, channels, frames int, frequency float64) *audio.Buffer {
	return NewBuffer(sampleRate, channels, frames, func(frame int, _ int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewConstantBuffer creates a buffer with a constant value.
func NewConstantBuffer(sampleRate, channels, frames int, value float32) *audio.Buffer {
	return NewBuffer(sampleRate, channels, frames, func(int, int) float32 { return value })
}

// NewRampBuffer creates a buffer whose samples encode their own position:
// frame f of channel c holds (f + c*frames) / (frames*channels), which makes
// misplaced or reordered samples easy to spot.
func NewRampBuffer(sampleRate, channels, frames int) *audio.Buffer {
	total := float32(frames * channels)
	return NewBuffer(sampleRate, channels, frames, func(frame int, channel int) float32 {
		return float32(frame+channel*frames) / total
	})
}
