// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes uncompressed AIFF files through github.com/go-audio/aiff.
//
// The sniffer never reports AIFF, so this decoder is only reached when the
// native decoding host probes every registered format, e.g. from
// "audconv probe".
package aiff
