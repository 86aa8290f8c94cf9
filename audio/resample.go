// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"
)

// Resample converts b to dstRate using cubic interpolation and preserves the
// channel count. The result holds floor(frames*dstRate/srcRate) frames.
// Resampling to the current rate returns a copy.
func Resample(b *Buffer, dstRate int) (*Buffer, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	if dstRate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleRate, dstRate)
	}

	out := &Buffer{SampleRate: dstRate, Channels: make([][]float32, b.NumChannels())}

	if dstRate == b.SampleRate {
		for c, ch := range b.Channels {
			out.Channels[c] = append([]float32(nil), ch...)
		}

		return out, nil
	}

	// how many source frames each output frame advances
	ratio := float64(b.SampleRate) / float64(dstRate)
	frames := int(math.Floor(float64(b.Frames()) * float64(dstRate) / float64(b.SampleRate)))

	for c, ch := range b.Channels {
		out.Channels[c] = resampleChannel(ch, ratio, frames)
	}

	return out, nil
}

func resampleChannel(src []float32, ratio float64, frames int) []float32 {
	dst := make([]float32, frames)
	if len(src) == 0 {
		return dst
	}

	last := len(src) - 1
	at := func(i int) float32 {
		if i < 0 {
			return src[0]
		}
		if i > last {
			return src[last]
		}
		return src[i]
	}

	for i := range dst {
		pos := float64(i) * ratio
		idx := int(pos)
		x := float32(pos - float64(idx))

		dst[i] = cubicInterpolate(at(idx-1), at(idx), at(idx+1), at(idx+2), x)
	}

	return dst
}

// cubicInterpolate is a Catmull-Rom spline between y1 and y2, x in [0,1].
func cubicInterpolate(y0, y1, y2, y3, x float32) float32 {
	a0 := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	a1 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	a2 := -0.5*y0 + 0.5*y2
	a3 := y1

	return a0*x*x*x + a1*x*x + a2*x + a3
}
