// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audcut/audio"
	"github.com/jfreymuth/oggvorbis"
)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

// chunkFrames bounds each Read call.
const chunkFrames = 4096

type Decoder struct{}

// Decode reads a whole Ogg Vorbis stream.
func (Decoder) Decode(r io.Reader) (*audio.Buffer, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return decodeAll(dec)
}

// decodeAll drains dec. Read returns a count of interleaved values.
func decodeAll(dec oggReader) (*audio.Buffer, error) {
	channels := dec.Channels()
	if channels <= 0 {
		return nil, fmt.Errorf("%w: %d", audio.ErrNoChannels, channels)
	}

	chunk := make([]float32, chunkFrames*channels)
	var data []float32

	for {
		n, err := dec.Read(chunk)
		data = append(data, chunk[:n]...)

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading vorbis packets: %w", err)
		}
		if n == 0 {
			break
		}
	}

	// drop a trailing partial frame
	data = data[:len(data)/channels*channels]

	buf, err := audio.Deinterleave(dec.SampleRate(), channels, data)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return buf, nil
}
