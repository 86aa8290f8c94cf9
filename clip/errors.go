// SPDX-License-Identifier: EPL-2.0

package clip

import (
	"errors"

	"github.com/ik5/audcut/audio"
)

var (
	// ErrInvalidRange indicates a selection whose end precedes its start, or
	// whose bounds are not finite numbers
	ErrInvalidRange = errors.New("invalid selection range")

	// ErrEmptySelection indicates a selection that covers no frames
	ErrEmptySelection = errors.New("empty selection")

	// ErrUnsupportedChannelLayout indicates a channel count the encoder
	// cannot handle
	ErrUnsupportedChannelLayout = audio.ErrUnsupportedChannelLayout
)
