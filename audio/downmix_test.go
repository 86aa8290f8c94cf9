// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"math"
	"testing"
)

func TestDownmix_MonoCopy(t *testing.T) {
	t.Parallel()

	src, _ := NewBuffer(8000, []float32{0.5, 0.5, 0.5})

	mono, err := Downmix(src)
	if err != nil {
		t.Fatalf("Downmix() error = %v", err)
	}

	if mono.NumChannels() != 1 {
		t.Fatalf("NumChannels() = %d, want 1", mono.NumChannels())
	}

	mono.Channels[0][0] = -1
	if src.Channels[0][0] != 0.5 {
		t.Error("Downmix() result aliases the source")
	}
}

func TestDownmix_StereoToMono(t *testing.T) {
	t.Parallel()

	src, _ := NewBuffer(8000, []float32{0.4, 0.4, 1}, []float32{0.6, 0.6, -1})

	mono, err := Downmix(src)
	if err != nil {
		t.Fatalf("Downmix() error = %v", err)
	}

	want := []float32{0.5, 0.5, 0}
	for i, w := range want {
		if math.Abs(float64(mono.Channels[0][i]-w)) > 1e-6 {
			t.Errorf("mono[%d] = %v, want %v", i, mono.Channels[0][i], w)
		}
	}

	if mono.SampleRate != 8000 {
		t.Errorf("SampleRate = %d, want 8000", mono.SampleRate)
	}
}

func TestDownmix_MultiChannel(t *testing.T) {
	t.Parallel()

	src, _ := NewBuffer(48000,
		[]float32{0.1, 1},
		[]float32{0.2, 1},
		[]float32{0.3, -1},
		[]float32{0.4, -1},
	)

	mono, err := Downmix(src)
	if err != nil {
		t.Fatalf("Downmix() error = %v", err)
	}

	if math.Abs(float64(mono.Channels[0][0]-0.25)) > 1e-6 {
		t.Errorf("mono[0] = %v, want 0.25", mono.Channels[0][0])
	}

	if math.Abs(float64(mono.Channels[0][1])) > 1e-6 {
		t.Errorf("mono[1] = %v, want 0", mono.Channels[0][1])
	}
}

func TestDownmix_IdenticalChannels(t *testing.T) {
	t.Parallel()

	ch := []float32{-0.75, -0.1, 0, 0.3, 0.9}
	src, _ := NewBuffer(22050, ch, append([]float32(nil), ch...))

	mono, _ := Downmix(src)
	for i := range ch {
		if mono.Channels[0][i] != ch[i] {
			t.Errorf("mono[%d] = %v, want %v", i, mono.Channels[0][i], ch[i])
		}
	}
}

func TestDownmix_InvalidBuffer(t *testing.T) {
	t.Parallel()

	_, err := Downmix(&Buffer{SampleRate: 8000})
	if !errors.Is(err, ErrNoChannels) {
		t.Errorf("Downmix() error = %v, want ErrNoChannels", err)
	}
}

func BenchmarkDownmix(b *testing.B) {
	left := make([]float32, 44100)
	right := make([]float32, 44100)
	src, _ := NewBuffer(44100, left, right)

	b.ReportAllocs()

	for b.Loop() {
		_, _ = Downmix(src)
	}
}
