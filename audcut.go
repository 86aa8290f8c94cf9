// SPDX-License-Identifier: EPL-2.0

package audcut

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/ik5/audcut/audio"
	"github.com/ik5/audcut/formats/aiff"
	"github.com/ik5/audcut/formats/mp3"
	"github.com/ik5/audcut/formats/vorbis"
	"github.com/ik5/audcut/formats/wav"
)

// sniffLen is how much of the input is given to content detection.
const sniffLen = 3072

// NewRegistry returns a registry holding every decoder of this module under
// the keys wav, mp3, ogg and aiff.
func NewRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})

	return reg
}

// Decode reads r completely and decodes it with the decoder matching its
// content, or the extension of name when the content is not recognized.
// It returns the format key that was used.
func Decode(r io.Reader, name string) (*audio.Buffer, string, error) {
	return DecodeWith(NewRegistry(), r, name)
}

// DecodeWith is Decode with a caller supplied registry.
func DecodeWith(reg *audio.Registry, r io.Reader, name string) (*audio.Buffer, string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, "", fmt.Errorf("reading %s: %w", name, err)
	}

	format, dec, err := reg.Lookup(name, data[:min(len(data), sniffLen)])
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", name, err)
	}

	buf, err := dec.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, format, fmt.Errorf("decoding %s as %s: %w", name, format, err)
	}

	return buf, format, nil
}

// DecodeFile opens path and decodes it.
func DecodeFile(path string) (*audio.Buffer, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("%w", err)
	}
	defer f.Close()

	return Decode(f, path)
}
