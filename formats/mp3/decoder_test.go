// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"testing"
)

// mockMP3Reader simulates the gomp3.Decoder for testing
type mockMP3Reader struct {
	sampleRate   int
	samples      []int16 // PCM samples (16-bit, stereo interleaved)
	offset       int
	returnErrors bool
}

func (m *mockMP3Reader) SampleRate() int {
	return m.sampleRate
}

func (m *mockMP3Reader) Read(buf []byte) (int, error) {
	if m.returnErrors {
		return 0, io.ErrUnexpectedEOF
	}

	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	samplesToRead := min(len(buf)/2, len(m.samples)-m.offset)
	for i := range samplesToRead {
		binary.LittleEndian.PutUint16(buf[i*2:i*2+2], uint16(m.samples[m.offset+i]))
	}

	m.offset += samplesToRead

	return samplesToRead * 2, nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("This is not MP3 data")))
	if err == nil {
		t.Error("Decode() error = nil, want error for invalid data")
	}
}

func TestDecoder_EmptyInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte{}))
	if err == nil {
		t.Error("Decode() error = nil, want error for empty input")
	}
}

func TestDecodeAll_Deinterleaves(t *testing.T) {
	t.Parallel()

	// 4 stereo frames
	reader := &mockMP3Reader{
		sampleRate: 8000,
		samples:    []int16{0, 16384, 32767, -16384, -32768, 8192, -8192, 0},
	}

	buf, err := decodeAll(reader)
	if err != nil {
		t.Fatalf("decodeAll() error = %v", err)
	}

	if buf.SampleRate != 8000 {
		t.Errorf("SampleRate = %d, want 8000", buf.SampleRate)
	}

	if buf.NumChannels() != 2 || buf.Frames() != 4 {
		t.Fatalf("shape = %d x %d, want 2 x 4", buf.NumChannels(), buf.Frames())
	}

	wantLeft := []float32{0.0, 1.0, -1.0, -0.25}
	wantRight := []float32{0.5, -0.5, 0.25, 0.0}
	for f := range 4 {
		if math.Abs(float64(buf.Channels[0][f]-wantLeft[f])) > 0.001 {
			t.Errorf("left[%d] = %v, want ≈%v", f, buf.Channels[0][f], wantLeft[f])
		}
		if math.Abs(float64(buf.Channels[1][f]-wantRight[f])) > 0.001 {
			t.Errorf("right[%d] = %v, want ≈%v", f, buf.Channels[1][f], wantRight[f])
		}
	}
}

func TestDecodeAll_DropsPartialFrame(t *testing.T) {
	t.Parallel()

	reader := &mockMP3Reader{sampleRate: 44100, samples: []int16{1, 2, 3}}

	buf, err := decodeAll(reader)
	if err != nil {
		t.Fatalf("decodeAll() error = %v", err)
	}

	if buf.Frames() != 1 {
		t.Errorf("Frames() = %d, want 1", buf.Frames())
	}
}

func TestDecodeAll_ReadError(t *testing.T) {
	t.Parallel()

	reader := &mockMP3Reader{sampleRate: 44100, returnErrors: true}

	_, err := decodeAll(reader)
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("decodeAll() error = %v, want io.ErrUnexpectedEOF", err)
	}
}
