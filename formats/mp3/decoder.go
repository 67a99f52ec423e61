// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/audconv/audio"
)

// go-mp3 always produces interleaved stereo 16-bit little-endian PCM.
const channels = 2

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec        mp3Reader
	sampleRate int
	buf        []byte
	carry      []byte // odd byte left from the previous read
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.buf) / 2 }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	bytesNeeded := len(dst)*2 - len(s.carry)
	if cap(s.buf) < len(dst)*2 {
		s.buf = make([]byte, len(dst)*2)
	}
	s.buf = s.buf[:len(s.carry)+bytesNeeded]
	copy(s.buf, s.carry)

	n, err := s.dec.Read(s.buf[len(s.carry):])
	total := len(s.carry) + n
	s.carry = s.carry[:0]
	if total < 2 {
		if total == 1 {
			s.carry = append(s.carry, s.buf[0])
		}
		return 0, err
	}

	samples := total / 2
	for i := range samples {
		v := int16(binary.LittleEndian.Uint16(s.buf[2*i:]))
		dst[i] = float32(v) / 32768.0
	}
	if total%2 == 1 {
		s.carry = append(s.carry, s.buf[total-1])
	}

	return samples, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		buf:        make([]byte, 8192),
	}, nil
}
