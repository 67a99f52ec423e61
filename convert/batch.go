// SPDX-License-Identifier: EPL-2.0

package convert

import (
	"fmt"

	"github.com/ik5/audconv/audio"
)

// Batch converts files one after another through a Pipeline.
type Batch struct {
	pipeline *Pipeline
}

func NewBatch(p *Pipeline) *Batch {
	return &Batch{pipeline: p}
}

// ConvertAll converts every file to target and returns one outcome per
// file in input order. A failing file never stops the batch.
//
// observer, if not nil, receives one event before each file and a final
// summary event at fraction 1, so total+1 events in all.
func (b *Batch) ConvertAll(files []File, target audio.Format, observer Observer) []Outcome {
	notify := func(ProgressEvent) {}
	if observer != nil {
		notify = observer.Progress
	}

	total := len(files)
	outcomes := make([]Outcome, 0, total)

	for i, f := range files {
		notify(ProgressEvent{
			Fraction: float64(i) / float64(total),
			Message:  fmt.Sprintf("converting %s (%d/%d)", fileName(f), i+1, total),
		})

		outcomes = append(outcomes, b.pipeline.ConvertOne(f, target))
	}

	notify(ProgressEvent{
		Fraction: 1,
		Message:  fmt.Sprintf("%d/%d succeeded", Succeeded(outcomes), total),
	})

	return outcomes
}
