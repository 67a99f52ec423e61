// SPDX-License-Identifier: EPL-2.0

package convert

// ProgressEvent reports batch progress. Fraction is in [0, 1].
type ProgressEvent struct {
	Fraction float64
	Message  string
}

// Observer receives progress events synchronously, in order.
type Observer interface {
	Progress(ProgressEvent)
}

// ProgressFunc adapts a function to Observer.
type ProgressFunc func(ProgressEvent)

func (f ProgressFunc) Progress(e ProgressEvent) { f(e) }
