// SPDX-License-Identifier: EPL-2.0

// Package audio provides the in-memory audio model and the primitives that
// operate on it.
//
// This package contains:
//   - Buffer, a decoded planar PCM stream
//   - Decoder interface and a format Registry
//   - Downmix for channel mixing
//   - Resample for sample rate conversion
//   - Measure for peak and RMS levels
//
// # Buffer
//
// A Buffer keeps one []float32 per channel, all of the same length:
//
//	buf, err := audio.NewBuffer(44100, left, right)
//	fmt.Println(buf.Frames(), buf.NumChannels(), buf.Duration())
//
// Samples are float32 in the range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// Interleave and Deinterleave convert to and from frame ordered data
// (L0,R0,L1,R1,...), which is what most container formats store.
//
// # Format Registry
//
// The registry maps format keys to decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	format, decoder, err := registry.Lookup("input.wav", head)
//
// Lookup sniffs the content first (github.com/gabriel-vasile/mimetype) and
// falls back to the file extension.
//
// # Processing
//
//	mono, _ := audio.Downmix(buf)
//	resampled, _ := audio.Resample(buf, 16000)
//
// Both allocate a new Buffer; the input is never modified.
package audio
