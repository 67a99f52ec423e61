// SPDX-License-Identifier: EPL-2.0

package audconv

import (
	"github.com/ik5/audconv/audio"
	"github.com/ik5/audconv/convert"
	"github.com/ik5/audconv/decode"
)

// Converter is a batch over the default in-process decoder host.
type Converter struct {
	batch *convert.Batch
}

// NewConverter builds a Converter decoding at sampleRate (0 selects
// decode.DefaultSampleRate) with the given pipeline options.
func NewConverter(sampleRate int, opts ...convert.Option) *Converter {
	host := decode.NewDefaultHost(sampleRate)
	return &Converter{batch: convert.NewBatch(convert.NewPipeline(host, opts...))}
}

// Convert runs files through the batch. observer may be nil.
func (c *Converter) Convert(files []convert.File, target audio.Format, observer convert.Observer) []convert.Outcome {
	return c.batch.ConvertAll(files, target, observer)
}

// ConvertPaths converts files on disk with default settings.
func ConvertPaths(target audio.Format, paths ...string) []convert.Outcome {
	return NewConverter(0).Convert(convert.Paths(paths...), target, nil)
}

// ConvertBytes converts one in-memory file and returns the encoded bytes.
func ConvertBytes(name string, data []byte, target audio.Format) ([]byte, error) {
	out := NewConverter(0).Convert([]convert.File{convert.NewMemFile(name, data)}, target, nil)[0]
	if out.Err != nil {
		return nil, out.Err
	}

	return out.Output, nil
}
