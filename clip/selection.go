// SPDX-License-Identifier: EPL-2.0

package clip

import (
	"fmt"
	"math"

	"github.com/ik5/audcut/audio"
)

// Selection is a time range in seconds.
type Selection struct {
	Start float64
	End   float64
}

// Range is a half open frame interval [Start, End).
type Range struct {
	Start int
	End   int
}

// Frames returns the number of frames covered by r.
func (r Range) Frames() int { return r.End - r.Start }

// Resolve converts sel into frame offsets for a buffer of frames frames at
// sampleRate. Bounds outside the buffer are clamped. A selection that is empty
// before or after clamping fails with an error matching both
// ErrEmptySelection and ErrInvalidRange.
func Resolve(sel Selection, sampleRate, frames int) (Range, error) {
	if sampleRate <= 0 {
		return Range{}, fmt.Errorf("%w: %d", audio.ErrInvalidSampleRate, sampleRate)
	}

	if frames < 0 {
		return Range{}, fmt.Errorf("%w: %d frames", ErrInvalidRange, frames)
	}

	if !finite(sel.Start) || !finite(sel.End) {
		return Range{}, fmt.Errorf("%w: non-finite bound [%v, %v]", ErrInvalidRange, sel.Start, sel.End)
	}

	if sel.End < sel.Start {
		return Range{}, fmt.Errorf("%w: end %vs before start %vs", ErrInvalidRange, sel.End, sel.Start)
	}

	if sel.End == sel.Start {
		return Range{}, fmt.Errorf("%w: %w: start and end at %vs", ErrEmptySelection, ErrInvalidRange, sel.Start)
	}

	rng := Range{
		Start: toFrame(sel.Start, sampleRate, frames),
		End:   toFrame(sel.End, sampleRate, frames),
	}

	if rng.Start == rng.End {
		return Range{}, fmt.Errorf("%w: %w: [%vs, %vs] covers no frames",
			ErrEmptySelection, ErrInvalidRange, sel.Start, sel.End)
	}

	return rng, nil
}

// toFrame floors seconds*sampleRate and clamps it into [0, frames].
func toFrame(seconds float64, sampleRate, frames int) int {
	if seconds <= 0 {
		return 0
	}

	// at or past the end
	if seconds >= float64(frames)/float64(sampleRate) {
		return frames
	}

	frame := int(math.Floor(seconds * float64(sampleRate)))

	return min(max(frame, 0), frames)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
