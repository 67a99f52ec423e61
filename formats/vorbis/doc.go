// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams with github.com/jfreymuth/oggvorbis.
//
// Like aiff, it is a probe-only format: the conversion pipeline never sniffs
// Ogg input, but the decoding host will still try it.
package vorbis
