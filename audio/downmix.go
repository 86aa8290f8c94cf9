// SPDX-License-Identifier: EPL-2.0

package audio

// Downmix averages every channel of b into a new mono buffer. A mono input
// is copied.
func Downmix(b *Buffer) (*Buffer, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	frames := b.Frames()
	mono := make([]float32, frames)

	switch b.NumChannels() {
	case 1:
		copy(mono, b.Channels[0])
	case 2: // Stereo (most common)
		left, right := b.Channels[0], b.Channels[1]
		for f := range frames {
			mono[f] = (left[f] + right[f]) * 0.5
		}
	default:
		inv := float32(1.0) / float32(b.NumChannels())
		for _, ch := range b.Channels {
			for f, s := range ch {
				mono[f] += s
			}
		}
		for f := range mono {
			mono[f] *= inv
		}
	}

	return &Buffer{SampleRate: b.SampleRate, Channels: [][]float32{mono}}, nil
}
