// SPDX-License-Identifier: EPL-2.0

package decode

import (
	"github.com/ik5/audconv/audio"
	"github.com/ik5/audconv/formats/aiff"
	"github.com/ik5/audconv/formats/flac"
	"github.com/ik5/audconv/formats/mp3"
	"github.com/ik5/audconv/formats/vorbis"
	"github.com/ik5/audconv/formats/wav"
)

// DefaultRegistry registers every native decoder. The three sniffable
// formats come first so they are probed before the decode-only ones.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register(audio.FormatWAV, wav.Decoder{})
	reg.Register(audio.FormatFLAC, flac.Decoder{})
	reg.Register(audio.FormatMP3, mp3.Decoder{})
	reg.Register(audio.FormatAIFF, aiff.Decoder{})
	reg.Register(audio.FormatVorbis, vorbis.Decoder{})

	return reg
}

// NewDefaultHost is NewHost over DefaultRegistry.
func NewDefaultHost(sampleRate int) *Host {
	return NewHost(DefaultRegistry(), sampleRate)
}
