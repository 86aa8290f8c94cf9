// SPDX-License-Identifier: EPL-2.0

package clip

import (
	"fmt"

	"github.com/ik5/audcut/audio"
)

// Extract copies the frames of rng from every channel of src into a new
// buffer at the same sample rate. The result never shares memory with src.
func Extract(src *audio.Buffer, rng Range) (*audio.Buffer, error) {
	if err := src.Validate(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	frames := src.Frames()
	if rng.Start < 0 || rng.End > frames || rng.End < rng.Start {
		return nil, fmt.Errorf("%w: [%d, %d) of %d frames", ErrInvalidRange, rng.Start, rng.End, frames)
	}

	if rng.Start == rng.End {
		return nil, fmt.Errorf("%w: frame %d", ErrEmptySelection, rng.Start)
	}

	channels := make([][]float32, src.NumChannels())
	for c, ch := range src.Channels {
		channels[c] = make([]float32, rng.Frames())
		copy(channels[c], ch[rng.Start:rng.End])
	}

	return &audio.Buffer{SampleRate: src.SampleRate, Channels: channels}, nil
}
