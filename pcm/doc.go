// SPDX-License-Identifier: EPL-2.0

// Package pcm converts normalized float samples into signed 16-bit PCM.
//
// Two scalings are provided because the two export paths disagree on how
// the negative end of the range is treated:
//
//   - FloatToInt16 scales negative values by 32768 and non-negative values by
//     32767, so that -1.0 maps to math.MinInt16 and +1.0 to math.MaxInt16.
//     This is what is fed to the MP3 encoder.
//   - FloatToInt16Symmetric scales every value by 32767, so -1.0 maps to
//     -32767. This is what the WAV writer stores.
//
// Both clamp the input to [-1, 1] first and map NaN to silence.
package pcm
