// SPDX-License-Identifier: EPL-2.0

package encode

import "errors"

// ErrUnsupportedFormat is returned for targets the encoder cannot produce.
var ErrUnsupportedFormat = errors.New("unsupported target format")
