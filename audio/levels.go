// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Level describes the loudness of one channel.
type Level struct {
	Peak float64 // largest absolute sample
	RMS  float64
}

// PeakDBFS returns Peak in decibels relative to full scale.
func (l Level) PeakDBFS() float64 { return toDBFS(l.Peak) }

// RMSDBFS returns RMS in decibels relative to full scale.
func (l Level) RMSDBFS() float64 { return toDBFS(l.RMS) }

func toDBFS(v float64) float64 {
	if v <= 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(v)
}

// Measure returns the level of each channel of b, in channel order.
func Measure(b *Buffer) []Level {
	levels := make([]Level, b.NumChannels())

	for c, ch := range b.Channels {
		if len(ch) == 0 {
			continue
		}

		samples := make([]float64, len(ch))
		for i, s := range ch {
			samples[i] = float64(s)
		}

		peak := math.Max(math.Abs(floats.Max(samples)), math.Abs(floats.Min(samples)))
		rms := math.Sqrt(floats.Dot(samples, samples) / float64(len(samples)))

		levels[c] = Level{Peak: peak, RMS: rms}
	}

	return levels
}
