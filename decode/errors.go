// SPDX-License-Identifier: EPL-2.0

package decode

import "errors"

var (
	// ErrCapabilityUnavailable is returned by the Unavailable capability.
	ErrCapabilityUnavailable = errors.New("native decoding unavailable")

	// ErrNoDecoder means no registered decoder accepted the data.
	ErrNoDecoder = errors.New("no decoder accepted the data")
)
