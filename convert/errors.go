// SPDX-License-Identifier: EPL-2.0

package convert

import "errors"

var (
	// ErrIO is returned when a file's bytes cannot be read.
	ErrIO = errors.New("cannot read file")
	// ErrUnrecognizedFormat is returned when the leading bytes match no
	// known container.
	ErrUnrecognizedFormat = errors.New("unrecognized audio format")
	// ErrDecodeFailed is returned in strict mode when decoding fell back to
	// synthetic audio, and when a decoder panics.
	ErrDecodeFailed = errors.New("decode failed")
	// ErrEncodeFailed is returned when the encoder panics.
	ErrEncodeFailed = errors.New("encode failed")
)
