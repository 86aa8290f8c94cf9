// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/audcut/audio"
	"github.com/ik5/audcut/pcm"
)

const (
	// HeaderSize is the size of the canonical RIFF/WAVE header written here.
	HeaderSize    = 44
	bitsPerSample = 16
	chunkSize     = 8192 // samples per Write call
)

// Encode returns buf as a 16-bit PCM WAV file. Samples are clamped to
// [-1, 1] and scaled by 32767.
func Encode(buf *audio.Buffer) ([]byte, error) {
	if err := buf.Validate(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	out := bytes.NewBuffer(make([]byte, 0, EncodedSize(buf)))
	if err := Write(out, buf); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

// EncodedSize returns the byte length Encode produces for buf.
func EncodedSize(buf *audio.Buffer) int {
	return buf.Frames()*buf.NumChannels()*bitsPerSample/8 + HeaderSize
}

// Write streams buf as a 16-bit PCM WAV file to w.
func Write(w io.Writer, buf *audio.Buffer) error {
	if err := buf.Validate(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return WritePCM16(w, buf.SampleRate, buf.NumChannels(), pcm.Int16sSymmetric(buf.Interleave()))
}

// WritePCM16 writes interleaved 16-bit samples with channels channels at
// sampleRate. len(samples) must be a multiple of channels.
func WritePCM16(w io.Writer, sampleRate, channels int, samples []int16) error {
	if channels <= 0 {
		return ErrInvalidChannels
	}

	if len(samples)%channels != 0 {
		return fmt.Errorf("%w", audio.ErrInvalidDstSize)
	}

	if _, err := w.Write(header(sampleRate, channels, len(samples))); err != nil {
		return fmt.Errorf("%w", err)
	}

	if len(samples) == 0 {
		return nil
	}

	buf := make([]byte, min(len(samples), chunkSize)*2)

	for i := 0; i < len(samples); i += chunkSize {
		chunk := samples[i:min(i+chunkSize, len(samples))]
		buf = buf[:len(chunk)*2]

		for j, s := range chunk {
			binary.LittleEndian.PutUint16(buf[j*2:j*2+2], uint16(s))
		}

		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}

// header lays out the 44 byte header for numSamples interleaved samples.
func header(sampleRate, channels, numSamples int) []byte {
	numChannels := uint16(channels)
	blockAlign := numChannels * bitsPerSample / 8
	byteRate := uint32(sampleRate) * uint32(blockAlign)
	dataSize := uint32(numSamples * bitsPerSample / 8)

	h := make([]byte, HeaderSize)

	// RIFF header (12 bytes); ChunkSize is the total length minus 8
	copy(h[0:4], "RIFF")
	binary.LittleEndian.PutUint32(h[4:8], HeaderSize-8+dataSize)
	copy(h[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(h[12:16], "fmt ")
	binary.LittleEndian.PutUint32(h[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(h[20:22], wavFormatPCM)
	binary.LittleEndian.PutUint16(h[22:24], numChannels)
	binary.LittleEndian.PutUint32(h[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(h[28:32], byteRate)
	binary.LittleEndian.PutUint16(h[32:34], blockAlign)
	binary.LittleEndian.PutUint16(h[34:36], bitsPerSample)

	// data chunk header (8 bytes)
	copy(h[36:40], "data")
	binary.LittleEndian.PutUint32(h[40:44], dataSize)

	return h
}
