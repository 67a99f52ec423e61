// SPDX-License-Identifier: EPL-2.0

// Package audconv converts audio files between containers locally.
//
// Input is identified by its leading bytes, decoded to float32 PCM and
// re-encoded. WAV, FLAC and MP3 inputs are sniffed; AIFF and Ogg Vorbis are
// also decoded when probed. Output is always canonical 16-bit PCM WAV: a
// FLAC or MP3 target produces WAV bytes with a warning, and any other
// target fails.
//
// # Quick Start
//
//	outcomes := audconv.ConvertPaths(audio.FormatWAV, "in.flac", "in.mp3")
//	for _, o := range outcomes {
//	    if o.Err != nil {
//	        log.Println(o.Err)
//	        continue
//	    }
//	    os.WriteFile(o.OutputName(), o.Output, 0o644)
//	}
//
// # Decode Fallback
//
// When a sniffed file cannot be decoded, the converter substitutes a two
// second 440 Hz tone and reports success with Outcome.Synthetic set. Use
// convert.WithStrictDecode to turn that into a failure:
//
//	c := audconv.NewConverter(44100, convert.WithStrictDecode())
//
// # Packages
//
//   - sniff: magic-byte format detection
//   - decode: decoding capability and the synthetic fallback
//   - encode: WAV encoding with format substitution
//   - convert: single-file pipeline and batch driver with progress
//   - formats/*: native decoders for wav, flac, mp3, aiff and vorbis
//
// See the individual subpackages for more detailed documentation.
package audconv
