// SPDX-License-Identifier: EPL-2.0

package convert

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ik5/audconv/audio"
)

// Outcome is the result of converting one file. Exactly one of Output and
// Err is meaningful: Err == nil means success.
type Outcome struct {
	// File is the input's name.
	File   string
	Target audio.Format
	// Detected is the sniffed input format, FormatUnknown if never read.
	Detected audio.Format
	// Container is the format actually written. It differs from Target
	// when the encoder substituted WAV.
	Container audio.Format
	Output    []byte
	Err       error

	// Synthetic is set when Output holds the substitute tone rather than
	// the input's audio.
	Synthetic   bool
	Substituted bool
}

func (o Outcome) Success() bool { return o.Err == nil }

// Message is a one-line summary. Failure messages carry the file name.
func (o Outcome) Message() string {
	if o.Err != nil {
		return o.Err.Error()
	}

	msg := fmt.Sprintf("converted %q to %s (%d bytes)", o.File, o.Container, len(o.Output))
	if o.Substituted {
		msg += fmt.Sprintf(", %s requested", o.Target)
	}
	if o.Synthetic {
		msg += ", synthetic audio"
	}

	return msg
}

// OutputName is the input's base name with the written container's
// extension, e.g. "song.flac" converted to mp3 is "song.wav".
func (o Outcome) OutputName() string {
	base := strings.TrimSuffix(o.File, filepath.Ext(o.File))
	if base == "" {
		base = o.File
	}

	return base + o.Container.Extension()
}

// Succeeded counts successful outcomes.
func Succeeded(outcomes []Outcome) int {
	n := 0
	for _, o := range outcomes {
		if o.Success() {
			n++
		}
	}

	return n
}
