// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
	"time"
)

// Buffer is a fully decoded, planar block of audio. Data holds one slice
// per channel and every slice has the same length (the frame count).
// Samples are nominally in [-1, 1] but may exceed it until they are
// quantized.
type Buffer struct {
	SampleRate int
	Data       [][]float32
}

// NewBuffer allocates a zeroed buffer of the given shape.
func NewBuffer(channels, frames, sampleRate int) (*Buffer, error) {
	if channels < 1 || frames < 0 || sampleRate <= 0 {
		return nil, fmt.Errorf("%w: channels=%d frames=%d rate=%d",
			ErrInvalidBuffer, channels, frames, sampleRate)
	}

	data := make([][]float32, channels)
	for c := range data {
		data[c] = make([]float32, frames)
	}

	return &Buffer{SampleRate: sampleRate, Data: data}, nil
}

func (b *Buffer) Channels() int { return len(b.Data) }

func (b *Buffer) Frames() int {
	if len(b.Data) == 0 {
		return 0
	}

	return len(b.Data[0])
}

// Duration of the buffer at its sample rate.
func (b *Buffer) Duration() time.Duration {
	if b.SampleRate <= 0 {
		return 0
	}

	return time.Duration(b.Frames()) * time.Second / time.Duration(b.SampleRate)
}

// Validate checks the shape invariants: at least one channel, a positive
// sample rate, and equal channel lengths.
func (b *Buffer) Validate() error {
	if b == nil {
		return fmt.Errorf("%w: nil buffer", ErrInvalidBuffer)
	}
	if len(b.Data) < 1 {
		return fmt.Errorf("%w: no channels", ErrInvalidBuffer)
	}
	if b.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d", ErrInvalidBuffer, b.SampleRate)
	}

	frames := len(b.Data[0])
	for c, ch := range b.Data {
		if len(ch) != frames {
			return fmt.Errorf("%w: channel %d has %d frames, want %d",
				ErrInvalidBuffer, c, len(ch), frames)
		}
	}

	return nil
}

// maxEmptyReads bounds consecutive (0, nil) reads before ReadAll gives up.
const maxEmptyReads = 100

// ReadAll drains src into a Buffer, de-interleaving as it goes. A trailing
// partial frame is dropped. src is not closed.
func ReadAll(src Source) (*Buffer, error) {
	channels := src.Channels()
	rate := src.SampleRate()
	if channels < 1 || rate <= 0 {
		return nil, fmt.Errorf("%w: channels=%d rate=%d", ErrInvalidSource, channels, rate)
	}

	size := src.BufSize()
	if size < channels {
		size = channels * 1024
	}
	// Keep reads frame aligned.
	size -= size % channels

	data := make([][]float32, channels)
	buf := make([]float32, size)
	pending := make([]float32, 0, channels)
	empty := 0

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			samples := buf[:n]
			// Complete a frame left over from the previous read first.
			if len(pending) > 0 {
				need := min(channels-len(pending), len(samples))
				pending = append(pending, samples[:need]...)
				samples = samples[need:]
				if len(pending) == channels {
					for c := range channels {
						data[c] = append(data[c], pending[c])
					}
					pending = pending[:0]
				}
			}

			frames := len(samples) / channels
			for f := range frames {
				base := f * channels
				for c := range channels {
					data[c] = append(data[c], samples[base+c])
				}
			}
			pending = append(pending, samples[frames*channels:]...)
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		if n == 0 {
			empty++
			if empty >= maxEmptyReads {
				return nil, io.ErrNoProgress
			}
		} else {
			empty = 0
		}
	}

	b := &Buffer{SampleRate: rate, Data: data}
	if b.Frames() == 0 {
		return nil, ErrEmptySource
	}

	return b, nil
}
