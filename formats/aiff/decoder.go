// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/ik5/audcut/audio"
)

// aiffReader is an interface for aiff.Decoder to allow testing
type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// chunkSamples bounds each PCMBuffer call.
const chunkSamples = 8192

type Decoder struct{}

// Decode reads a whole 16-bit PCM AIFF file.
func (Decoder) Decode(r io.Reader) (*audio.Buffer, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	dec.ReadInfo()

	if dec.BitDepth != 16 {
		return nil, fmt.Errorf("%w: %d-bit", ErrOnlyPCM16bitSupported, dec.BitDepth)
	}

	return decodeAll(dec)
}

func decodeAll(dec aiffReader) (*audio.Buffer, error) {
	format := dec.Format()
	if format == nil || format.NumChannels <= 0 {
		return nil, ErrUnsupportedAiffLayout
	}

	intBuf := &goaudio.IntBuffer{
		Data:   make([]int, chunkSamples*format.NumChannels),
		Format: format,
	}

	var data []float32
	for {
		n, err := dec.PCMBuffer(intBuf)
		for _, v := range intBuf.Data[:n] {
			data = append(data, float32(v)/32768.0)
		}

		if errors.Is(err, io.EOF) || (err == nil && n == 0) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading aiff samples: %w", err)
		}
	}

	data = data[:len(data)/format.NumChannels*format.NumChannels]

	buf, err := audio.Deinterleave(format.SampleRate, format.NumChannels, data)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return buf, nil
}
