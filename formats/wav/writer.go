// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/ik5/audconv/audio"
	"github.com/ik5/audconv/utils"
)

// HeaderSize is the size of the canonical RIFF/WAVE header written here.
const HeaderSize = 44

// chunkFrames bounds the staging buffer used when writing sample data.
const chunkFrames = 4096

// Header builds the canonical 44-byte PCM 16-bit header for dataSize bytes
// of sample data.
func Header(sampleRate, channels int, dataSize uint32) []byte {
	bitsPerSample := uint16(16)
	byteRate := uint32(sampleRate) * uint32(channels) * uint32(bitsPerSample/8)
	blockAlign := uint16(channels) * (bitsPerSample / 8)

	header := make([]byte, HeaderSize)

	// RIFF header (12 bytes)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], 36+dataSize)
	copy(header[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(header[20:22], formatPCM)
	binary.LittleEndian.PutUint16(header[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)

	// data chunk header (8 bytes)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	return header
}

// dataSize returns the byte length of frames*channels 16-bit samples, or
// an error when it cannot be described by the 32-bit RIFF size fields.
func dataSize(frames, channels int) (uint32, error) {
	size := uint64(frames) * uint64(channels) * 2
	if size > math.MaxUint32-36 {
		return 0, fmt.Errorf("%w: %d bytes", ErrDataTooLarge, size)
	}

	return uint32(size), nil
}

// Encode writes buf as a canonical 16-bit PCM WAV file. Samples are clamped
// and quantized with utils.Float32ToInt16 and written channel-interleaved.
func Encode(w io.Writer, buf *audio.Buffer) error {
	if err := buf.Validate(); err != nil {
		return err
	}

	channels := buf.Channels()
	frames := buf.Frames()

	size, err := dataSize(frames, channels)
	if err != nil {
		return err
	}

	if _, err := w.Write(Header(buf.SampleRate, channels, size)); err != nil {
		return fmt.Errorf("%w", err)
	}

	if frames == 0 {
		return nil
	}

	stage := make([]byte, min(frames, chunkFrames)*channels*2)

	for start := 0; start < frames; start += chunkFrames {
		end := min(start+chunkFrames, frames)
		out := stage[:(end-start)*channels*2]

		off := 0
		for f := start; f < end; f++ {
			for c := range channels {
				s := utils.Float32ToInt16(buf.Data[c][f])
				binary.LittleEndian.PutUint16(out[off:off+2], uint16(s))
				off += 2
			}
		}

		if _, err := w.Write(out); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}

// EncodedSize returns the exact number of bytes Encode produces for buf.
func EncodedSize(buf *audio.Buffer) int {
	return HeaderSize + buf.Frames()*buf.Channels()*2
}

// WriteWAV16 writes already quantized, channel-interleaved int16 samples.
func WriteWAV16(w io.Writer, sampleRate, channels int, samples []int16) error {
	if channels < 1 || sampleRate <= 0 {
		return fmt.Errorf("%w: channels=%d rate=%d", audio.ErrInvalidBuffer, channels, sampleRate)
	}
	if len(samples)%channels != 0 {
		return fmt.Errorf("%w: %d samples not a multiple of %d channels",
			audio.ErrInvalidBuffer, len(samples), channels)
	}

	size, err := dataSize(len(samples)/channels, channels)
	if err != nil {
		return err
	}

	if _, err := w.Write(Header(sampleRate, channels, size)); err != nil {
		return fmt.Errorf("%w", err)
	}

	if len(samples) == 0 {
		return nil
	}

	if err := binary.Write(w, binary.LittleEndian, samples); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
