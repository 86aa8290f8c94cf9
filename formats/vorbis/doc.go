// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio file decoding.
//
// This package uses github.com/jfreymuth/oggvorbis to decode Ogg Vorbis files.
//
//	decoder := vorbis.Decoder{}
//	file, _ := os.Open("audio.ogg")
//	buf, err := decoder.Decode(file)
//
// The whole stream is decoded into an audio.Buffer with one slice per
// channel, normalized to [-1.0, 1.0]. Encoding is not supported.
package vorbis
