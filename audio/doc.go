// SPDX-License-Identifier: EPL-2.0

// Package audio holds the shared data model for conversion.
//
//   - Format names a container ("wav", "flac", "mp3", ...).
//   - Source is a streaming decoder output of interleaved float32 samples.
//   - Decoder builds a Source from a reader; Registry maps formats to
//     decoders in registration order.
//   - Buffer is a fully decoded planar block: one []float32 per channel,
//     all the same length.
//
// ReadAll drains a Source into a Buffer:
//
//	src, err := wav.Decoder{}.Decode(r)
//	if err != nil {
//	    return err
//	}
//	defer src.Close()
//	buf, err := audio.ReadAll(src)
//
// # Sample Format
//
// Samples are float32, nominally in [-1.0, 1.0]. Values outside the range
// are kept as decoded and clamped only when quantized for output.
//
// # Error Handling
//
// Sources return io.EOF when no more data is available. ReadAll treats it
// as the normal end and returns ErrEmptySource if nothing was read.
package audio
