// SPDX-License-Identifier: EPL-2.0

// Package audcut trims audio files: decode a file, select a time range and
// export the range as MP3 or WAV.
//
// # Supported Formats
//
// Input:
//   - WAV (PCM 16, 24 and 32-bit) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF (PCM 16-bit) via formats/aiff
//
// Output:
//   - MP3, 128 kbps, mono or stereo
//   - WAV, 16-bit PCM, any channel count
//
// # Quick Start
//
//	buf, format, err := audcut.DecodeFile("interview.ogg")
//	if err != nil {
//	    return err
//	}
//
//	s, _ := clip.NewSession(buf)
//	s.SetStart(12.5)
//	s.SetEnd(47)
//
//	out, err := s.Export(clip.FormatMP3)
//	os.WriteFile(out.Filename(), out.Data, 0o644)
//
// Decode picks the decoder by sniffing the content and falls back to the
// file extension. Use NewRegistry to add decoders of your own and
// DecodeWith to decode through it.
//
// # Packages
//
//   - audio: the Buffer type, decoder registry, downmix, resampling and
//     level metering
//   - clip: selection resolving, extraction, encoding and Session
//   - pcm: float to 16-bit quantization
//   - formats/*: one decoder (and for wav and mp3 an encoder) per container
//
// The audcut command in cmd/audcut wraps all of this for the shell.
package audcut
