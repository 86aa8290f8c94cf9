// SPDX-License-Identifier: EPL-2.0

package clip

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ik5/audcut/audio"
	"github.com/ik5/audcut/formats/wav"
	"github.com/ik5/audcut/internal/audiotest"
)

func TestNewSession_SelectsAll(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentBuffer(8000, 1, 16000)

	s, err := NewSession(src)
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}

	rng, err := s.Range()
	if err != nil {
		t.Fatalf("Range() error = %v", err)
	}

	if rng != (Range{0, 16000}) {
		t.Errorf("Range() = %+v, want {0 16000}", rng)
	}
}

func TestNewSession_InvalidSource(t *testing.T) {
	t.Parallel()

	if _, err := NewSession(&audio.Buffer{}); !errors.Is(err, audio.ErrInvalidSampleRate) {
		t.Errorf("NewSession() error = %v, want ErrInvalidSampleRate", err)
	}
}

func TestSession_Clip(t *testing.T) {
	t.Parallel()

	src := audiotest.NewRampBuffer(1000, 2, 1000)
	s, _ := NewSession(src)
	s.SetStart(0.25)
	s.SetEnd(0.5)

	got, err := s.Clip()
	if err != nil {
		t.Fatalf("Clip() error = %v", err)
	}

	if got.Frames() != 250 {
		t.Errorf("Frames() = %d, want 250", got.Frames())
	}

	if got.Channels[0][0] != src.Channels[0][250] {
		t.Errorf("first sample = %v, want %v", got.Channels[0][0], src.Channels[0][250])
	}
}

func TestSession_ClipPastEnd(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentBuffer(1000, 1, 1000)
	s, _ := NewSession(src)
	s.SetStart(0.5)
	s.SetEnd(3)

	got, err := s.Clip()
	if err != nil {
		t.Fatalf("Clip() error = %v", err)
	}

	if got.Frames() != 500 {
		t.Errorf("Frames() = %d, want 500 (clamped)", got.Frames())
	}
}

func TestSession_ClipErrors(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentBuffer(1000, 1, 1000)

	tests := []struct {
		name       string
		start, end float64
		wantErr    error
	}{
		{"equal", 0.3, 0.3, ErrEmptySelection},
		{"reversed", 0.6, 0.3, ErrInvalidRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, _ := NewSession(src)
			s.SetStart(tt.start)
			s.SetEnd(tt.end)

			if _, err := s.Clip(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Clip() error = %v, want %v", err, tt.wantErr)
			}

			if _, err := s.Export(FormatWAV); !errors.Is(err, tt.wantErr) {
				t.Errorf("Export() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSession_ExportWAV(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSineBuffer(16000, 2, 16000, 300)
	s, _ := NewSession(src)
	s.SetStart(0.5)

	out, err := s.Export(FormatWAV)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	if len(out.Data) != 8000*2*2+44 {
		t.Errorf("len = %d, want %d", len(out.Data), 8000*2*2+44)
	}
}

func TestSession_ExportWAVMonoResampled(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSineBuffer(44100, 2, 44100, 300)
	s, _ := NewSession(src)

	out, err := s.Export(FormatWAV, WithMono(), WithSampleRate(8000))
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	got, err := wav.Decoder{}.Decode(bytes.NewReader(out.Data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if got.SampleRate != 8000 || got.NumChannels() != 1 || got.Frames() != 8000 {
		t.Errorf("decoded %d Hz x %d x %d frames, want 8000 x 1 x 8000",
			got.SampleRate, got.NumChannels(), got.Frames())
	}
}

func TestSession_ExportMP3(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		rate         int
		channels     int
		opts         []ExportOption
		wantRate     int
		wantChannels int
	}{
		{name: "stereo 44.1kHz", rate: 44100, channels: 2, wantRate: 44100, wantChannels: 2},
		{name: "96kHz moves to 48kHz", rate: 96000, channels: 2, wantRate: 48000, wantChannels: 2},
		{name: "requested 40kHz moves to 44.1kHz", rate: 48000, channels: 1,
			opts: []ExportOption{WithSampleRate(40000)}, wantRate: 44100, wantChannels: 1},
		{name: "surround downmixed", rate: 48000, channels: 6,
			opts: []ExportOption{WithMono()}, wantRate: 48000, wantChannels: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := &recordingEncoder{}
			s, _ := NewSession(audiotest.NewSineBuffer(tt.rate, tt.channels, tt.rate/10, 440))

			opts := append([]ExportOption{WithMP3Encoder(recording(rec))}, tt.opts...)
			out, err := s.Export(FormatMP3, opts...)
			if err != nil {
				t.Fatalf("Export() error = %v", err)
			}

			if out.Format != FormatMP3 {
				t.Errorf("Format = %q, want mp3", out.Format)
			}

			if rec.sampleRate != tt.wantRate || rec.channels != tt.wantChannels {
				t.Errorf("encoder got %d Hz x %d, want %d Hz x %d",
					rec.sampleRate, rec.channels, tt.wantRate, tt.wantChannels)
			}
		})
	}
}

func TestSession_ExportMP3Surround(t *testing.T) {
	t.Parallel()

	s, _ := NewSession(audiotest.NewSilentBuffer(48000, 6, 4800))

	if _, err := s.Export(FormatMP3); !errors.Is(err, ErrUnsupportedChannelLayout) {
		t.Errorf("Export() error = %v, want ErrUnsupportedChannelLayout", err)
	}
}

func TestSession_ExportUnknownFormat(t *testing.T) {
	t.Parallel()

	s, _ := NewSession(audiotest.NewSilentBuffer(8000, 1, 800))

	if _, err := s.Export("flac"); !errors.Is(err, audio.ErrUnknownFormat) {
		t.Errorf("Export() error = %v, want ErrUnknownFormat", err)
	}
}

func TestSession_ExportLeavesSourceIntact(t *testing.T) {
	t.Parallel()

	src := audiotest.NewRampBuffer(8000, 2, 800)
	want := append([]float32(nil), src.Channels[1]...)

	s, _ := NewSession(src)
	if _, err := s.Export(FormatWAV, WithMono(), WithSampleRate(16000)); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	for f := range want {
		if src.Channels[1][f] != want[f] {
			t.Fatalf("source frame %d = %v, want %v", f, src.Channels[1][f], want[f])
		}
	}
}

func TestSession_ExportResampledToNothing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		format Format
		opts   []ExportOption
	}{
		{name: "mp3 nearest rate", format: FormatMP3},
		{name: "wav requested rate", format: FormatWAV, opts: []ExportOption{WithSampleRate(8000)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, err := NewSession(audiotest.NewConstantBuffer(96000, 1, 3, 0.5))
			if err != nil {
				t.Fatalf("NewSession() error = %v", err)
			}
			s.SetStart(0)
			s.SetEnd(1.5 / 96000)

			out, err := s.Export(tt.format, tt.opts...)
			if !errors.Is(err, ErrEmptySelection) {
				t.Errorf("Export() error = %v, want ErrEmptySelection", err)
			}
			if out != nil {
				t.Errorf("Export() output = %d bytes, want nil", len(out.Data))
			}
		})
	}
}
