// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"fmt"

	shine "github.com/braheezy/shine-mp3/pkg/mp3"
	"github.com/ik5/audcut/audio"
	"github.com/ik5/audcut/pcm"
)

// Bitrate of every MP3 produced by Encode, in kbps.
const Bitrate = 128

// SampleRates accepted by MPEG-1, MPEG-2 and MPEG-2.5 layer III, ascending.
var SampleRates = []int{8000, 11025, 12000, 16000, 22050, 24000, 32000, 44100, 48000}

// BlockEncoder is a block based MP3 encoder. EncodeBuffer is given the whole
// PCM sequence in one call (right is nil for mono) and returns the frames it
// could complete; Flush returns whatever is still buffered.
type BlockEncoder interface {
	EncodeBuffer(left, right []int16) ([]byte, error)
	Flush() ([]byte, error)
}

// NewBlockEncoderFunc constructs a BlockEncoder for a stream layout.
type NewBlockEncoderFunc func(channels, sampleRate, bitrate int) (BlockEncoder, error)

// Encode returns buf as an MP3 stream at Bitrate using the shine encoder.
func Encode(buf *audio.Buffer) ([]byte, error) {
	return EncodeWith(NewShineEncoder, buf)
}

// EncodeWith encodes buf through the encoder built by newEncoder. Samples
// are converted with pcm.FloatToInt16. Only mono and stereo are accepted.
func EncodeWith(newEncoder NewBlockEncoderFunc, buf *audio.Buffer) ([]byte, error) {
	if err := buf.Validate(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	channels := buf.NumChannels()
	if channels != 1 && channels != 2 {
		return nil, fmt.Errorf("%w: %d channels", audio.ErrUnsupportedChannelLayout, channels)
	}

	enc, err := newEncoder(channels, buf.SampleRate, Bitrate)
	if err != nil {
		return nil, fmt.Errorf("creating mp3 encoder: %w", err)
	}

	left := pcm.Int16s(buf.Channels[0])
	var right []int16
	if channels == 2 {
		right = pcm.Int16s(buf.Channels[1])
	}

	out := new(bytes.Buffer)

	chunk, err := enc.EncodeBuffer(left, right)
	if err != nil {
		return nil, fmt.Errorf("encoding mp3: %w", err)
	}
	out.Write(chunk)

	tail, err := enc.Flush()
	if err != nil {
		return nil, fmt.Errorf("flushing mp3: %w", err)
	}
	out.Write(tail)

	return out.Bytes(), nil
}

// SupportedSampleRate reports whether rate is one of SampleRates.
func SupportedSampleRate(rate int) bool {
	for _, r := range SampleRates {
		if r == rate {
			return true
		}
	}

	return false
}

// NearestSampleRate returns the entry of SampleRates closest to rate,
// preferring the higher one on a tie.
func NearestSampleRate(rate int) int {
	best := SampleRates[0]
	for _, r := range SampleRates[1:] {
		if abs(r-rate) <= abs(best-rate) {
			best = r
		}
	}

	return best
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// samplesPerFrame returns the per channel granule count of one MPEG frame.
func samplesPerFrame(sampleRate int) int {
	if sampleRate >= 32000 {
		return 1152 // MPEG-1
	}
	return 576 // MPEG-2 and 2.5
}

// shineEncoder adapts the shine encoder, which only consumes whole frames,
// to BlockEncoder. It holds back the incomplete last frame until Flush.
type shineEncoder struct {
	enc       *shine.Encoder
	channels  int
	frameSize int
	pending   []int16 // interleaved
}

// NewShineEncoder builds a BlockEncoder on github.com/braheezy/shine-mp3.
// shine always encodes at 128 kbps.
func NewShineEncoder(channels, sampleRate, bitrate int) (BlockEncoder, error) {
	if channels != 1 && channels != 2 {
		return nil, fmt.Errorf("%w: %d channels", audio.ErrUnsupportedChannelLayout, channels)
	}

	if !SupportedSampleRate(sampleRate) {
		return nil, fmt.Errorf("%w: %d Hz", ErrUnsupportedSampleRate, sampleRate)
	}

	if bitrate != Bitrate {
		return nil, fmt.Errorf("%w: %d kbps", ErrUnsupportedBitrate, bitrate)
	}

	return &shineEncoder{
		enc:       shine.NewEncoder(sampleRate, channels),
		channels:  channels,
		frameSize: samplesPerFrame(sampleRate),
	}, nil
}

func (e *shineEncoder) EncodeBuffer(left, right []int16) ([]byte, error) {
	switch {
	case e.channels == 1:
		e.pending = append(e.pending, left...)
	case len(left) != len(right):
		return nil, fmt.Errorf("%w: left %d, right %d", audio.ErrChannelLengthMismatch, len(left), len(right))
	default:
		for i := range left {
			e.pending = append(e.pending, left[i], right[i])
		}
	}

	block := e.frameSize * e.channels
	whole := len(e.pending) / block * block
	if whole == 0 {
		return nil, nil
	}

	// shine advances a fixed stride per pass, so it is fed one frame per call
	var out []byte
	for off := 0; off < whole; off += block {
		chunk, err := e.write(e.pending[off : off+block])
		if err != nil {
			return nil, err
		}
		out = append(out, chunk...)
	}

	e.pending = append(e.pending[:0], e.pending[whole:]...)

	return out, nil
}

// Flush pads the held back samples with silence to one last frame.
func (e *shineEncoder) Flush() ([]byte, error) {
	if len(e.pending) == 0 {
		return nil, nil
	}

	last := make([]int16, e.frameSize*e.channels)
	copy(last, e.pending)
	e.pending = e.pending[:0]

	return e.write(last)
}

func (e *shineEncoder) write(samples []int16) ([]byte, error) {
	out := new(bytes.Buffer)
	if err := e.enc.Write(out, samples); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return out.Bytes(), nil
}
