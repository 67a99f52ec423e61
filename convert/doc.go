// SPDX-License-Identifier: EPL-2.0

// Package convert runs the conversion pipeline over one file or a batch.
//
// For each file the Pipeline reads all bytes, sniffs the container from
// the first twelve bytes, decodes through a decode.SampleSource and
// encodes to the target. Unreadable input fails with ErrIO and
// unrecognized input with ErrUnrecognizedFormat; decoding failures fall
// back to a synthetic tone unless WithStrictDecode is set. Targets the
// encoder rejects fail with encode.ErrUnsupportedFormat.
//
// Batch drives the pipeline sequentially and reports progress:
//
//	host := decode.NewDefaultHost(44100)
//	batch := convert.NewBatch(convert.NewPipeline(host))
//	outcomes := batch.ConvertAll(convert.Paths("a.wav", "b.mp3"), audio.FormatWAV,
//	    convert.ProgressFunc(func(e convert.ProgressEvent) {
//	        fmt.Printf("%3.0f%% %s\n", e.Fraction*100, e.Message)
//	    }))
package convert
