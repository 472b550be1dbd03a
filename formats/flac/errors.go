// SPDX-License-Identifier: EPL-2.0

package flac

import "errors"

var (
	ErrChannelCount = errors.New("FLAC frame channel count differs from stream info")
	ErrBitDepth     = errors.New("unsupported FLAC bit depth")
)
