// SPDX-License-Identifier: EPL-2.0

// Package wav reads integer PCM WAV files and writes canonical 16-bit PCM
// WAV files.
//
// # Decoding
//
// The Decoder walks the RIFF chunks with github.com/go-audio/wav, so files
// with LIST or other auxiliary chunks before the sample data are accepted.
// 16, 24 and 32-bit integer PCM are supported; samples are normalized to
// float32 in [-1.0, 1.0].
//
//	src, err := wav.Decoder{}.Decode(file)
//	buf, err := audio.ReadAll(src)
//
// # Encoding
//
// Encode writes an audio.Buffer as the canonical 44-byte header followed by
// channel-interleaved little-endian int16 samples:
//
//	offset  0 "RIFF"   4 36+dataSize   8 "WAVE"
//	offset 12 "fmt "  16 16           20 1 (PCM)     22 channels
//	offset 24 rate    28 byte rate    32 block align 34 16
//	offset 36 "data"  40 dataSize
//
// Each sample is clamped to [-1, 1] and scaled by 32768 when negative and
// 32767 otherwise (see utils.Float32ToInt16).
//
// WriteWAV16 does the same for samples that are already int16.
package wav
