// SPDX-License-Identifier: EPL-2.0

package clip

import (
	"fmt"

	"github.com/ik5/audcut/audio"
	"github.com/ik5/audcut/formats/mp3"
	"github.com/ik5/audcut/formats/wav"
)

// EncodeMP3 encodes a mono or stereo clip as 128 kbps MP3.
func EncodeMP3(buf *audio.Buffer) (*Output, error) {
	return EncodeMP3With(mp3.NewShineEncoder, buf)
}

// EncodeMP3With encodes buf through the encoder built by newEncoder.
func EncodeMP3With(newEncoder mp3.NewBlockEncoderFunc, buf *audio.Buffer) (*Output, error) {
	data, err := mp3.EncodeWith(newEncoder, buf)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &Output{Format: FormatMP3, MIMEType: FormatMP3.MIMEType(), Data: data}, nil
}

// EncodeWAV encodes buf as 16-bit PCM WAV.
func EncodeWAV(buf *audio.Buffer) (*Output, error) {
	data, err := wav.Encode(buf)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &Output{Format: FormatWAV, MIMEType: FormatWAV.MIMEType(), Data: data}, nil
}

// Encode dispatches to EncodeMP3 or EncodeWAV.
func Encode(format Format, buf *audio.Buffer) (*Output, error) {
	switch format {
	case FormatMP3:
		return EncodeMP3(buf)
	case FormatWAV:
		return EncodeWAV(buf)
	default:
		return nil, fmt.Errorf("%w: %q", audio.ErrUnknownFormat, format)
	}
}
