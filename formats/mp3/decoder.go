// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/audcut/audio"
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

// bytesPerFrame of go-mp3 output: two channels of 16-bit little-endian PCM.
const bytesPerFrame = 4

type Decoder struct{}

// Decode reads a whole MP3 stream. go-mp3 always produces stereo, so the
// buffer has two channels even for mono files.
func (Decoder) Decode(r io.Reader) (*audio.Buffer, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return decodeAll(dec)
}

func decodeAll(dec mp3Reader) (*audio.Buffer, error) {
	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("reading mp3 frames: %w", err)
	}

	frames := len(raw) / bytesPerFrame
	left := make([]float32, frames)
	right := make([]float32, frames)

	for f := range frames {
		base := f * bytesPerFrame
		left[f] = float32(int16(binary.LittleEndian.Uint16(raw[base:]))) / 32768.0
		right[f] = float32(int16(binary.LittleEndian.Uint16(raw[base+2:]))) / 32768.0
	}

	buf, err := audio.NewBuffer(dec.SampleRate(), left, right)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return buf, nil
}
