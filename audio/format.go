// SPDX-License-Identifier: EPL-2.0

package audio

import "strings"

// Format names a container format. It is used both for sniffed input
// formats and for requested output targets.
type Format string

const (
	FormatUnknown Format = "unknown"
	FormatWAV     Format = "wav"
	FormatFLAC    Format = "flac"
	FormatMP3     Format = "mp3"

	// Decode-only formats. The sniffer never reports these, but the
	// native decoders can still read them when probing.
	FormatAIFF   Format = "aiff"
	FormatVorbis Format = "ogg"
)

// ParseFormat normalizes user input such as "WAV" or ".mp3". Unknown names
// are returned as-is so the encoder can reject them with a useful message.
func ParseFormat(s string) Format {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimPrefix(s, ".")
	if s == "" {
		return FormatUnknown
	}

	return Format(s)
}

func (f Format) String() string { return string(f) }

// Extension returns the file extension, with the leading dot, used for
// files in this format.
func (f Format) Extension() string {
	if f == FormatUnknown || f == "" {
		return ""
	}

	return "." + string(f)
}

// MIMEType returns the media type of the format, or
// application/octet-stream when unknown.
func (f Format) MIMEType() string {
	switch f {
	case FormatWAV:
		return "audio/wav"
	case FormatFLAC:
		return "audio/flac"
	case FormatMP3:
		return "audio/mpeg"
	case FormatAIFF:
		return "audio/aiff"
	case FormatVorbis:
		return "audio/ogg"
	default:
		return "application/octet-stream"
	}
}
