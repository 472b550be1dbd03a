// SPDX-License-Identifier: EPL-2.0

package playback

import "errors"

var (
	ErrChannelMismatch  = errors.New("source channels do not match output channels")
	ErrNotOutput        = errors.New("channel is not an output")
	ErrCapacityMismatch = errors.New("output channels have different buffer sizes")
)
