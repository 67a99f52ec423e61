// SPDX-License-Identifier: EPL-2.0

// Package config loads audconv CLI settings from YAML.
//
//	target: wav
//	output_dir: ./out
//	sample_rate: 44100
//	fallback_seconds: 2.0
//	strict_decode: false
//	overwrite: false
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ik5/audconv/audio"
	"github.com/ik5/audconv/decode"
	"github.com/ik5/audconv/encode"
)

var (
	ErrInvalidTarget     = errors.New("invalid target format")
	ErrInvalidSampleRate = errors.New("invalid sample rate")
	ErrInvalidFallback   = errors.New("invalid fallback length")
)

// Config holds CLI settings. Flags given on the command line override the
// values loaded here.
type Config struct {
	Target          string  `yaml:"target"`
	OutputDir       string  `yaml:"output_dir"`
	SampleRate      int     `yaml:"sample_rate"`
	FallbackSeconds float64 `yaml:"fallback_seconds"`
	StrictDecode    bool    `yaml:"strict_decode"`
	Overwrite       bool    `yaml:"overwrite"`
}

func Default() *Config {
	return &Config{
		Target:          string(audio.FormatWAV),
		OutputDir:       ".",
		SampleRate:      decode.DefaultSampleRate,
		FallbackSeconds: decode.FallbackSeconds,
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
// Keys missing from the file keep their default values. The result is not
// validated; call Validate after applying overrides.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// TargetFormat is Target normalized.
func (c *Config) TargetFormat() audio.Format {
	return audio.ParseFormat(c.Target)
}

func (c *Config) Validate() error {
	if target := c.TargetFormat(); !encode.Supported(target) {
		return fmt.Errorf("%w: %q", ErrInvalidTarget, c.Target)
	}
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, c.SampleRate)
	}
	if c.FallbackSeconds <= 0 {
		return fmt.Errorf("%w: %g seconds", ErrInvalidFallback, c.FallbackSeconds)
	}

	return nil
}

// Marshal renders c as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
