// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidBuffer = errors.New("invalid sample buffer")
	ErrInvalidSource = errors.New("source reports invalid rate or channel count")
	ErrEmptySource   = errors.New("source produced no frames")
)
