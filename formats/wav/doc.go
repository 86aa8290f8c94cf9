// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// Decoding uses github.com/go-audio/wav and accepts integer PCM at 16, 24 or
// 32 bits, any channel count and any sample rate. Encoding always writes
// 16-bit PCM with the canonical 44 byte header.
//
// # Decoding WAV Files
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	buf, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	fmt.Println(buf.SampleRate, buf.NumChannels(), buf.Frames())
//
// Samples are normalized to float32 values in the range [-1.0, 1.0).
//
// # Writing WAV Files
//
// Encode returns the complete file, Write streams it:
//
//	data, err := wav.Encode(buf)
//	err = wav.Write(file, buf)
//
// Header layout (little-endian):
//
//	offset  field          value
//	0       ChunkID        "RIFF"
//	4       ChunkSize      total length - 8
//	8       Format         "WAVE"
//	12      Subchunk1ID    "fmt "
//	16      Subchunk1Size  16
//	20      AudioFormat    1 (PCM)
//	22      NumChannels    channel count
//	24      SampleRate     sample rate
//	28      ByteRate       sampleRate * 2 * channels
//	32      BlockAlign     channels * 2
//	34      BitsPerSample  16
//	36      Subchunk2ID    "data"
//	40      Subchunk2Size  total length - 44
//
// Frames are interleaved (L0,R0,L1,R1,...). Each sample is clamped to
// [-1, 1] and scaled by 32767, so -1.0 is stored as -32767.
//
// WritePCM16 writes samples that were already quantized.
//
// # Error Handling
//
// The package defines several errors:
//   - ErrNotWavFile: The input is not a valid WAV file
//   - ErrOnlyPCMSupported: The fmt chunk is not integer PCM
//   - ErrUnsupportedBitDepth: The bit depth is not 16, 24 or 32
//
// Example:
//
//	buf, err := decoder.Decode(file)
//	if errors.Is(err, wav.ErrNotWavFile) {
//	    fmt.Println("Not a WAV file")
//	}
package wav
