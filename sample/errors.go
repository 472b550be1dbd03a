// SPDX-License-Identifier: EPL-2.0

package sample

import "errors"

var (
	ErrUnsupportedSampleType = errors.New("unsupported sample type")
	ErrInvalidClipCeiling    = errors.New("clip ceiling must be finite and positive")
)
