// SPDX-License-Identifier: EPL-2.0

package mp3

import "errors"

var (
	// ErrUnsupportedSampleRate indicates a rate no MPEG audio layer accepts
	ErrUnsupportedSampleRate = errors.New("sample rate not supported by MP3")

	// ErrUnsupportedBitrate indicates the encoder cannot produce the bitrate
	ErrUnsupportedBitrate = errors.New("bitrate not supported by encoder")
)
