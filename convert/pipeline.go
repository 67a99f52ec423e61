// SPDX-License-Identifier: EPL-2.0

package convert

import (
	"fmt"
	"log/slog"

	"github.com/ik5/audconv/audio"
	"github.com/ik5/audconv/decode"
	"github.com/ik5/audconv/encode"
	"github.com/ik5/audconv/sniff"
)

// Pipeline converts a single file: read, sniff, decode, encode.
type Pipeline struct {
	source  *decode.SampleSource
	encoder *encode.Encoder
	logger  *slog.Logger
	strict  bool

	fallbackSeconds float64
	warner          encode.Warner
}

type Option func(*Pipeline)

func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) { p.logger = l }
}

// WithStrictDecode makes a decode fallback a failure (ErrDecodeFailed)
// instead of a synthetic success.
func WithStrictDecode() Option {
	return func(p *Pipeline) { p.strict = true }
}

// WithFallbackSeconds sets the substitute tone length.
func WithFallbackSeconds(seconds float64) Option {
	return func(p *Pipeline) { p.fallbackSeconds = seconds }
}

// WithWarner receives format substitution notices.
func WithWarner(w encode.Warner) Option {
	return func(p *Pipeline) { p.warner = w }
}

// WithEncoder replaces the default encoder. WithWarner is ignored then.
func WithEncoder(e *encode.Encoder) Option {
	return func(p *Pipeline) { p.encoder = e }
}

// NewPipeline builds a pipeline decoding through capability. A nil
// capability behaves as decode.Unavailable.
func NewPipeline(capability decode.Capability, opts ...Option) *Pipeline {
	p := &Pipeline{
		logger:          slog.Default(),
		fallbackSeconds: decode.FallbackSeconds,
	}
	for _, opt := range opts {
		opt(p)
	}

	p.source = decode.NewSampleSource(capability,
		decode.WithLogger(p.logger),
		decode.WithFallbackSeconds(p.fallbackSeconds),
	)

	if p.encoder == nil {
		encOpts := []encode.Option{encode.WithLogger(p.logger)}
		if p.warner != nil {
			encOpts = append(encOpts, encode.WithWarner(p.warner))
		}
		p.encoder = encode.New(encOpts...)
	}

	return p
}

// ConvertOne converts f to target. It never panics; every failure is
// reported in Outcome.Err and wraps the file name. A panic is reported
// under the error of the step that raised it: ErrIO while reading,
// ErrDecodeFailed while decoding and ErrEncodeFailed while encoding.
func (p *Pipeline) ConvertOne(f File, target audio.Format) (out Outcome) {
	out = Outcome{Target: target, Detected: audio.FormatUnknown}
	step := ErrIO

	defer func() {
		if r := recover(); r != nil {
			out.Output = nil
			out.Err = fail(out.File, fmt.Errorf("%w: panic: %v", step, r))
		}
	}()

	if f == nil {
		out.Err = fail("", fmt.Errorf("%w: nil file", ErrIO))
		return out
	}

	out.File = f.Name()
	name := out.File

	p.logger.Debug("converting", "file", name, "size", f.Size(), "target", target)

	data, err := f.ReadAll()
	if err != nil {
		out.Err = fail(name, fmt.Errorf("%w: %w", ErrIO, err))
		return out
	}

	out.Detected = sniff.Detect(data)
	p.logger.Debug("sniffed", "file", name, "format", out.Detected)

	if out.Detected == audio.FormatUnknown {
		out.Err = fail(name, ErrUnrecognizedFormat)
		return out
	}

	step = ErrDecodeFailed
	res := p.source.Decode(data, out.Detected)
	out.Synthetic = res.Synthetic
	if res.Synthetic && p.strict {
		out.Err = fail(name, fmt.Errorf("%w: %w", ErrDecodeFailed, res.Cause))
		return out
	}

	step = ErrEncodeFailed
	encoded, err := p.encoder.Encode(res.Buffer, target)
	if err != nil {
		out.Err = fail(name, err)
		return out
	}

	out.Container, _ = encode.Container(target)
	out.Substituted = out.Container != target
	out.Output = encoded

	return out
}

// fileName returns f.Name(), or "" when f is nil or Name panics.
func fileName(f File) (name string) {
	if f == nil {
		return ""
	}

	defer func() {
		if recover() != nil {
			name = ""
		}
	}()

	return f.Name()
}

func fail(name string, cause error) error {
	return fmt.Errorf("convert %q: %w", name, cause)
}
