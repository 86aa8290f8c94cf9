// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidSampleRate        = errors.New("sample rate must be positive")
	ErrNoChannels               = errors.New("buffer has no channels")
	ErrChannelLengthMismatch    = errors.New("channels differ in length")
	ErrInvalidDstSize           = errors.New("interleaved size must be multiple of channels")
	ErrUnsupportedChannelLayout = errors.New("unsupported channel layout")
	ErrUnknownFormat            = errors.New("unknown audio format")
)
