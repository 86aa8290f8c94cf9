// SPDX-License-Identifier: EPL-2.0

// Package clip cuts a time range out of a decoded audio buffer and encodes it
// as MP3 or WAV.
//
// The pipeline has three steps, each available on its own:
//
//	rng, err := clip.Resolve(clip.Selection{Start: 1.5, End: 4}, buf.SampleRate, buf.Frames())
//	part, err := clip.Extract(buf, rng)
//	out, err := clip.EncodeWAV(part)
//
// Resolve floors seconds*sampleRate and clamps both bounds into the buffer,
// so an end past the file simply selects up to the last frame. A reversed or
// non-finite selection fails with ErrInvalidRange and an empty one with
// ErrEmptySelection.
//
// Session bundles a source with a selection for callers that adjust the
// bounds interactively:
//
//	s, _ := clip.NewSession(buf)
//	s.SetStart(1.5)
//	s.SetEnd(4)
//	out, err := s.Export(clip.FormatMP3, clip.WithMono())
//
// MP3 export only accepts mono or stereo and MPEG sample rates; Export
// resamples to the nearest accepted rate when needed.
package clip
