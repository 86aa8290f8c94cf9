// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package uses github.com/go-audio/aiff to decode AIFF files.
//
//	decoder := aiff.Decoder{}
//	file, _ := os.Open("audio.aif")
//	buf, err := decoder.Decode(file)
//
// Only 16-bit PCM is supported; other depths fail with
// ErrOnlyPCM16bitSupported. AIFF is big-endian, go-audio handles the byte
// order. Samples are normalized to [-1.0, 1.0) by dividing by 32768.
//
// go-audio needs an io.ReadSeeker. Other readers are read into memory first.
package aiff
