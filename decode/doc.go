// SPDX-License-Identifier: EPL-2.0

// Package decode turns raw file bytes into an audio.Buffer.
//
// A Capability does the real work. Host is the in-process implementation
// backed by the formats/* decoders; Unavailable stands in when there is no
// native decoding at all.
//
// SampleSource sits in front of a Capability and never fails: if decoding
// is rejected it returns a two-second stereo 440 Hz tone at 0.3 amplitude
// instead and flags the result as synthetic. This keeps every file in a
// batch producing output, at the cost of replacing the user's audio with a
// test tone.
//
//	host := decode.NewDefaultHost(44100)
//	src := decode.NewSampleSource(host)
//	res := src.Decode(data, sniff.Detect(data))
//	if res.Synthetic {
//	    // res.Cause explains why
//	}
package decode
