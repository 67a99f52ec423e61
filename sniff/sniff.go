// SPDX-License-Identifier: EPL-2.0

// Package sniff classifies audio data by its leading magic bytes.
package sniff

import (
	"bytes"

	"github.com/ik5/audconv/audio"
)

// PrefixLen is the number of leading bytes Detect looks at.
const PrefixLen = 12

var (
	riffMagic = []byte("RIFF")
	waveMagic = []byte("WAVE")
	flacMagic = []byte("fLaC")
	id3Magic  = []byte("ID3")
)

// Detect returns the container format of data, or audio.FormatUnknown.
// Only the first PrefixLen bytes are inspected. Detect never panics,
// whatever the length of data.
func Detect(data []byte) audio.Format {
	if len(data) > PrefixLen {
		data = data[:PrefixLen]
	}

	switch {
	case len(data) >= 12 && bytes.Equal(data[0:4], riffMagic) && bytes.Equal(data[8:12], waveMagic):
		return audio.FormatWAV
	case bytes.HasPrefix(data, flacMagic):
		return audio.FormatFLAC
	case isMPEGSync(data):
		return audio.FormatMP3
	case bytes.HasPrefix(data, id3Magic):
		return audio.FormatMP3
	default:
		return audio.FormatUnknown
	}
}

// isMPEGSync reports an 11-bit MPEG audio frame sync at the start of data.
func isMPEGSync(data []byte) bool {
	return len(data) >= 2 && data[0] == 0xFF && data[1]&0xE0 == 0xE0
}
