// SPDX-License-Identifier: EPL-2.0

package encode

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/ik5/audconv/audio"
	"github.com/ik5/audconv/formats/wav"
)

// Substitution describes a target that was written as another container.
type Substitution struct {
	Requested audio.Format
	Written   audio.Format
}

func (s Substitution) String() string {
	return fmt.Sprintf("%s encoding not available, wrote %s instead", s.Requested, s.Written)
}

// Warner receives substitution notices.
type Warner interface {
	Substituted(Substitution)
}

// WarnerFunc adapts a function to Warner.
type WarnerFunc func(Substitution)

func (f WarnerFunc) Substituted(s Substitution) { f(s) }

type Encoder struct {
	logger *slog.Logger
	warner Warner
}

type Option func(*Encoder)

func WithLogger(l *slog.Logger) Option {
	return func(e *Encoder) { e.logger = l }
}

func WithWarner(w Warner) Option {
	return func(e *Encoder) { e.warner = w }
}

func New(opts ...Option) *Encoder {
	e := &Encoder{logger: slog.Default()}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Container returns the container actually written for target, and
// whether target is accepted at all.
func Container(target audio.Format) (audio.Format, bool) {
	switch target {
	case audio.FormatWAV, audio.FormatFLAC, audio.FormatMP3:
		return audio.FormatWAV, true
	default:
		return audio.FormatUnknown, false
	}
}

// Supported reports whether target is accepted by Encode.
func Supported(target audio.Format) bool {
	_, ok := Container(target)
	return ok
}

// Encode serializes buf for target and returns the bytes written.
func (e *Encoder) Encode(buf *audio.Buffer, target audio.Format) ([]byte, error) {
	written, ok := Container(target)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, target)
	}

	if written != target {
		sub := Substitution{Requested: target, Written: written}
		e.logger.Warn("format substituted", "requested", target, "written", written)
		if e.warner != nil {
			e.warner.Substituted(sub)
		}
	}

	out := bytes.NewBuffer(make([]byte, 0, wav.EncodedSize(buf)))
	if err := wav.Encode(out, buf); err != nil {
		return nil, fmt.Errorf("encoding %s: %w", written, err)
	}

	return out.Bytes(), nil
}
