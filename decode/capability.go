// SPDX-License-Identifier: EPL-2.0

package decode

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ik5/audconv/audio"
)

// DefaultSampleRate is the native rate assumed when none is configured.
const DefaultSampleRate = 44100

// Capability turns raw bytes into samples. hint is the sniffed format; an
// implementation may use it to pick a decoder first but must not rely on it.
type Capability interface {
	Decode(data []byte, hint audio.Format) (*audio.Buffer, error)
	// SampleRate is the capability's native rate, used for synthesized audio.
	SampleRate() int
}

// Host is the in-process decoding capability. It owns a decoder registry
// and is meant to be created once per batch and shared read-only.
type Host struct {
	registry   *audio.Registry
	sampleRate int
}

// NewHost returns a Host over registry. A non-positive sampleRate selects
// DefaultSampleRate.
func NewHost(registry *audio.Registry, sampleRate int) *Host {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}

	return &Host{registry: registry, sampleRate: sampleRate}
}

func (h *Host) SampleRate() int { return h.sampleRate }

// Decode tries the decoder registered for hint, then every other
// registered decoder in registration order, and returns the first
// non-empty result.
func (h *Host) Decode(data []byte, hint audio.Format) (*audio.Buffer, error) {
	var errs []error

	for _, format := range h.order(hint) {
		dec, ok := h.registry.Get(format)
		if !ok {
			continue
		}

		buf, err := decodeWith(dec, data)
		if err == nil {
			return buf, nil
		}
		errs = append(errs, fmt.Errorf("%s: %w", format, err))
	}

	if len(errs) == 0 {
		return nil, fmt.Errorf("%w: registry is empty", ErrNoDecoder)
	}

	return nil, fmt.Errorf("%w: %w", ErrNoDecoder, errors.Join(errs...))
}

func (h *Host) order(hint audio.Format) []audio.Format {
	formats := h.registry.Formats()
	out := make([]audio.Format, 0, len(formats))

	if _, ok := h.registry.Get(hint); ok {
		out = append(out, hint)
	}
	for _, f := range formats {
		if f != hint {
			out = append(out, f)
		}
	}

	return out
}

// decodeWith runs one decoder to completion. Third-party decoders can
// panic on malformed input, so a panic is reported as an error.
func decodeWith(dec audio.Decoder, data []byte) (buf *audio.Buffer, err error) {
	defer func() {
		if r := recover(); r != nil {
			buf, err = nil, fmt.Errorf("decoder panic: %v", r)
		}
	}()

	src, err := dec.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer src.Close()

	return audio.ReadAll(src)
}

type unavailable struct {
	sampleRate int
}

// Unavailable is the capability used when no native decoding exists. Every
// Decode fails with ErrCapabilityUnavailable, so callers always fall back.
func Unavailable(sampleRate int) Capability {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}

	return unavailable{sampleRate: sampleRate}
}

func (u unavailable) SampleRate() int { return u.sampleRate }

func (unavailable) Decode([]byte, audio.Format) (*audio.Buffer, error) {
	return nil, ErrCapabilityUnavailable
}
