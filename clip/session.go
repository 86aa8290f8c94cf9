// SPDX-License-Identifier: EPL-2.0

package clip

import (
	"fmt"

	"github.com/ik5/audcut/audio"
	"github.com/ik5/audcut/formats/mp3"
)

// Session holds a decoded source and the current selection on it. A Session
// is not safe for concurrent use; Source is never modified.
type Session struct {
	Source    *audio.Buffer
	Selection Selection
}

// NewSession selects the whole of src.
func NewSession(src *audio.Buffer) (*Session, error) {
	if err := src.Validate(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &Session{
		Source:    src,
		Selection: Selection{Start: 0, End: src.Seconds()},
	}, nil
}

// SetStart moves the start of the selection, in seconds.
func (s *Session) SetStart(seconds float64) { s.Selection.Start = seconds }

// SetEnd moves the end of the selection, in seconds.
func (s *Session) SetEnd(seconds float64) { s.Selection.End = seconds }

// Range resolves the current selection against the source.
func (s *Session) Range() (Range, error) {
	return Resolve(s.Selection, s.Source.SampleRate, s.Source.Frames())
}

// Clip extracts the current selection.
func (s *Session) Clip() (*audio.Buffer, error) {
	rng, err := s.Range()
	if err != nil {
		return nil, err
	}

	return Extract(s.Source, rng)
}

type exportOptions struct {
	mono       bool
	sampleRate int
	newMP3     mp3.NewBlockEncoderFunc
}

// ExportOption configures Session.Export.
type ExportOption func(*exportOptions)

// WithMono averages all channels into one before encoding.
func WithMono() ExportOption {
	return func(o *exportOptions) {
		o.mono = true
	}
}

// WithSampleRate resamples the clip to rate before encoding. For MP3 the
// rate is still moved to the nearest MPEG rate if needed.
func WithSampleRate(rate int) ExportOption {
	return func(o *exportOptions) {
		o.sampleRate = rate
	}
}

// WithMP3Encoder replaces the shine block encoder.
func WithMP3Encoder(newEncoder mp3.NewBlockEncoderFunc) ExportOption {
	return func(o *exportOptions) {
		o.newMP3 = newEncoder
	}
}

// Export runs resolve, extract, the optional downmix and resample steps, and
// encode. Nothing is returned unless every step succeeds.
func (s *Session) Export(format Format, opts ...ExportOption) (*Output, error) {
	o := exportOptions{newMP3: mp3.NewShineEncoder}
	for _, opt := range opts {
		opt(&o)
	}

	if format != FormatMP3 && format != FormatWAV {
		return nil, fmt.Errorf("%w: %q", audio.ErrUnknownFormat, format)
	}

	buf, err := s.Clip()
	if err != nil {
		return nil, err
	}

	if o.mono && buf.NumChannels() > 1 {
		if buf, err = audio.Downmix(buf); err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	rate := buf.SampleRate
	if o.sampleRate > 0 {
		rate = o.sampleRate
	}
	if format == FormatMP3 && !mp3.SupportedSampleRate(rate) {
		rate = mp3.NearestSampleRate(rate)
	}

	if rate != buf.SampleRate {
		if buf, err = audio.Resample(buf, rate); err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	// a clip shorter than one frame at the target rate resamples to nothing
	if buf.Frames() == 0 {
		return nil, fmt.Errorf("%w: no frames left at %d Hz: %w", ErrEmptySelection, rate, ErrInvalidRange)
	}

	if format == FormatMP3 {
		return EncodeMP3With(o.newMP3, buf)
	}

	return EncodeWAV(buf)
}
