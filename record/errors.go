// SPDX-License-Identifier: EPL-2.0

package record

import "errors"

var (
	ErrUnsupportedBitDepth = errors.New("unsupported bit depth (supported: 16, 24, 32)")
	ErrNotInput            = errors.New("channel is not an input")
	ErrNoInputs            = errors.New("no input channels")
	ErrFrameCount          = errors.New("frame count outside buffer half")
	ErrClosed              = errors.New("recorder is closed")
)
