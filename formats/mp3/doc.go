// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 decoding and encoding.
//
// Decoding uses github.com/hajimehoshi/go-mp3. Encoding uses
// github.com/braheezy/shine-mp3, a pure Go port of the shine fixed point
// encoder, at a constant 128 kbps.
//
// # Decoding MP3 Files
//
//	decoder := mp3.Decoder{}
//	file, _ := os.Open("audio.mp3")
//	buf, err := decoder.Decode(file)
//
// go-mp3 always outputs two channels, so the decoded buffer is stereo even
// for mono files. Use audio.Downmix to fold it back.
//
// # Encoding MP3 Files
//
//	data, err := mp3.Encode(buf)
//
// Encode converts each channel to 16-bit PCM (negative values scaled by
// 32768, non-negative values by 32767), hands the whole stream to a
// BlockEncoder in one EncodeBuffer call, then calls Flush and appends its
// output. Channels other than mono or stereo fail with
// audio.ErrUnsupportedChannelLayout before any encoding starts.
//
// Only the MPEG sample rates listed in SampleRates can be encoded. Callers
// holding audio at another rate can pick a target with NearestSampleRate
// and convert with audio.Resample.
//
// # Custom Encoders
//
// EncodeWith accepts any constructor matching NewBlockEncoderFunc, which
// allows another codec library to be plugged in:
//
//	data, err := mp3.EncodeWith(func(channels, rate, kbps int) (mp3.BlockEncoder, error) {
//	    return newLameEncoder(channels, rate, kbps)
//	}, buf)
package mp3
