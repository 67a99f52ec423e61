// SPDX-License-Identifier: EPL-2.0

// Package flac decodes FLAC streams with github.com/mewkiz/flac.
//
// Only decoding is provided. Requests to encode FLAC are served as WAV by
// the encode package.
package flac
