// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrShortBuffer     = errors.New("dst too short for block")
	ErrUnknownFormat   = errors.New("no decoder registered for format")
	ErrEmptySource     = errors.New("source produced no samples")
	ErrInvalidChannels = errors.New("source reports no channels")
)
