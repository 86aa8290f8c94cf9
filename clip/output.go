// SPDX-License-Identifier: EPL-2.0

package clip

import (
	"fmt"
	"strings"

	"github.com/ik5/audcut/audio"
)

// Format is an export container.
type Format string

// Supported export formats.
const (
	FormatMP3 Format = "mp3"
	FormatWAV Format = "wav"
)

// ParseFormat accepts "mp3" or "wav" in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatMP3, FormatWAV:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", audio.ErrUnknownFormat, s)
	}
}

// MIMEType returns the tag attached to exported bytes.
func (f Format) MIMEType() string {
	return "audio/" + string(f)
}

// Filename returns the default download name, cut.mp3 or cut.wav.
func (f Format) Filename() string {
	return "cut." + string(f)
}

// Output is an encoded clip. The caller owns Data.
type Output struct {
	Format   Format
	MIMEType string
	Data     []byte
}

// Filename returns the default download name for the output format.
func (o *Output) Filename() string { return o.Format.Filename() }
