// SPDX-License-Identifier: EPL-2.0

// Package encode serializes an audio.Buffer into a target container.
//
// WAV is the only container written natively. FLAC and MP3 targets are
// accepted but produce WAV bytes; each substitution is reported through
// the Warner and logged at warn level. Any other target fails with
// ErrUnsupportedFormat.
package encode
