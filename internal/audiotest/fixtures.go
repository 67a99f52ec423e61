// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"encoding/binary"
	"errors"
)

// ErrRead is a canned read failure for tests.
var ErrRead = errors.New("audiotest: read failed")

// WAV16 builds a canonical 16-bit PCM WAV file with interleaved samples.
func WAV16(sampleRate, channels int, samples []int16) []byte {
	buf := new(bytes.Buffer)

	dataSize := uint32(len(samples) * 2)

	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, 36+dataSize)
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, uint16(1))
	binary.Write(buf, binary.LittleEndian, uint16(channels))
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate*channels*2))
	binary.Write(buf, binary.LittleEndian, uint16(channels*2))
	binary.Write(buf, binary.LittleEndian, uint16(16))

	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, dataSize)
	binary.Write(buf, binary.LittleEndian, samples)

	return buf.Bytes()
}

// Ramp returns n interleaved int16 samples counting up from start.
func Ramp(n int, start int16) []int16 {
	out := make([]int16, n)
	for i := range out {
		out[i] = start + int16(i)
	}
	return out
}

// Magic prefixes that sniff as a known format but carry no decodable audio.
var (
	FLACMagicOnly = []byte{'f', 'L', 'a', 'C', 0, 0, 0, 0}
	MP3SyncOnly   = []byte{0xFF, 0xFB, 0x00, 0x00, 0x00, 0x00}
	ID3Only       = []byte{'I', 'D', '3', 0x04, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
	NotAudio      = []byte("definitely not audio")
)
