// SPDX-License-Identifier: EPL-2.0

package clip

import (
	"errors"
	"math"
	"testing"

	"github.com/ik5/audcut/audio"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		sel        Selection
		sampleRate int
		frames     int
		want       Range
	}{
		{"whole buffer", Selection{0, 1}, 8000, 8000, Range{0, 8000}},
		{"middle", Selection{0.25, 0.75}, 8000, 8000, Range{2000, 6000}},
		{"floor not round", Selection{0.00019, 0.00031}, 10000, 100, Range{1, 3}},
		{"end past duration clamps", Selection{0.5, 10}, 44100, 44100, Range{22050, 44100}},
		{"negative start clamps", Selection{-2, 0.5}, 100, 100, Range{0, 50}},
		{"fractional duration", Selection{0, 0.0105}, 44100, 463, Range{0, 463}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Resolve(tt.sel, tt.sampleRate, tt.frames)
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}

			if got != tt.want {
				t.Errorf("Resolve() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestResolve_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		sel        Selection
		sampleRate int
		frames     int
		wantErr    []error
	}{
		{"reversed", Selection{2, 1}, 8000, 80000, []error{ErrInvalidRange}},
		{"equal", Selection{1, 1}, 8000, 80000, []error{ErrEmptySelection, ErrInvalidRange}},
		{"empty after clamping", Selection{20, 30}, 8000, 80000, []error{ErrEmptySelection, ErrInvalidRange}},
		{"NaN start", Selection{math.NaN(), 1}, 8000, 80000, []error{ErrInvalidRange}},
		{"NaN end", Selection{0, math.NaN()}, 8000, 80000, []error{ErrInvalidRange}},
		{"infinite end", Selection{0, math.Inf(1)}, 8000, 80000, []error{ErrInvalidRange}},
		{"negative infinite start", Selection{math.Inf(-1), 1}, 8000, 80000, []error{ErrInvalidRange}},
		{"zero sample rate", Selection{0, 1}, 0, 80000, []error{audio.ErrInvalidSampleRate}},
		{"negative frames", Selection{0, 1}, 8000, -1, []error{ErrInvalidRange}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Resolve(tt.sel, tt.sampleRate, tt.frames)
			for _, want := range tt.wantErr {
				if !errors.Is(err, want) {
					t.Errorf("Resolve() error = %v, want match for %v", err, want)
				}
			}
		})
	}
}

func TestResolve_ReversedIsNotEmpty(t *testing.T) {
	t.Parallel()

	_, err := Resolve(Selection{2, 1}, 8000, 80000)
	if errors.Is(err, ErrEmptySelection) {
		t.Errorf("Resolve() error = %v, reversed range must not be ErrEmptySelection", err)
	}
}

func TestResolve_Deterministic(t *testing.T) {
	t.Parallel()

	sel := Selection{Start: 1.23456, End: 7.891011}
	first, err := Resolve(sel, 44100, 44100*10)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	for range 100 {
		again, _ := Resolve(sel, 44100, 44100*10)
		if again != first {
			t.Fatalf("Resolve() = %+v, previously %+v", again, first)
		}
	}
}

func TestResolve_FrameCount(t *testing.T) {
	t.Parallel()

	rates := []int{8000, 22050, 44100, 48000}
	sels := []Selection{{0, 0.1}, {0.333, 1.777}, {1.0001, 2.9999}, {0.5, 0.5002}}

	for _, rate := range rates {
		for _, sel := range sels {
			rng, err := Resolve(sel, rate, rate*5)
			if err != nil {
				t.Fatalf("Resolve(%+v, %d) error = %v", sel, rate, err)
			}

			want := math.Round((sel.End - sel.Start) * float64(rate))
			if diff := math.Abs(float64(rng.Frames()) - want); diff > 1 {
				t.Errorf("Resolve(%+v, %d) frames = %d, want %v within one frame", sel, rate, rng.Frames(), want)
			}
		}
	}
}

func BenchmarkResolve(b *testing.B) {
	sel := Selection{Start: 1.5, End: 3.25}

	b.ReportAllocs()

	for b.Loop() {
		_, _ = Resolve(sel, 44100, 44100*60)
	}
}
