// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"fmt"
	"io"

	"github.com/ik5/audconv/audio"
	"github.com/ik5/audconv/formats/internal/intpcm"
	"github.com/mewkiz/flac"
)

// blockReader yields one decoded FLAC frame at a time as per-channel
// samples. It exists so tests do not need real FLAC data.
type blockReader interface {
	next() ([][]int32, error)
	close() error
}

type streamBlocks struct {
	stream *flac.Stream
}

func (b streamBlocks) next() ([][]int32, error) {
	f, err := b.stream.ParseNext()
	if err != nil {
		return nil, err
	}

	out := make([][]int32, len(f.Subframes))
	for i, sf := range f.Subframes {
		out[i] = sf.Samples
	}

	return out, nil
}

func (b streamBlocks) close() error { return b.stream.Close() }

type source struct {
	blocks     blockReader
	sampleRate int
	channels   int
	scale      float32
	pending    []float32 // interleaved samples not yet handed out
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) BufSize() int    { return 4096 * s.channels }
func (s *source) Close() error    { return s.blocks.close() }

func (s *source) ReadSamples(dst []float32) (int, error) {
	written := 0
	for written < len(dst) {
		if len(s.pending) == 0 {
			if err := s.fill(); err != nil {
				if written > 0 && err == io.EOF {
					return written, nil
				}
				return written, err
			}
		}

		n := copy(dst[written:], s.pending)
		s.pending = s.pending[n:]
		written += n
	}

	return written, nil
}

// fill decodes the next frame into pending.
func (s *source) fill() error {
	block, err := s.blocks.next()
	if err != nil {
		return err
	}
	if len(block) != s.channels {
		return fmt.Errorf("%w: got %d, want %d", ErrChannelMismatch, len(block), s.channels)
	}

	frames := len(block[0])
	if cap(s.pending) < frames*s.channels {
		s.pending = make([]float32, frames*s.channels)
	}
	s.pending = s.pending[:frames*s.channels]

	for f := range frames {
		for c := range s.channels {
			s.pending[f*s.channels+c] = float32(block[c][f]) / s.scale
		}
	}

	return nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	stream, err := flac.New(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	info := stream.Info
	if info == nil || info.NChannels < 1 || info.SampleRate == 0 || info.BitsPerSample == 0 {
		stream.Close()
		return nil, ErrUnsupportedLayout
	}

	return &source{
		blocks:     streamBlocks{stream: stream},
		sampleRate: int(info.SampleRate),
		channels:   int(info.NChannels),
		scale:      scaleFor(int(info.BitsPerSample)),
	}, nil
}

// scaleFor returns the full-scale value for FLAC's arbitrary bit depths.
func scaleFor(bits int) float32 {
	switch bits {
	case 8, 16, 24, 32:
		return intpcm.Scale(bits)
	default:
		return float32(uint64(1) << (bits - 1))
	}
}
