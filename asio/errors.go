// SPDX-License-Identifier: EPL-2.0

package asio

import "errors"

var (
	ErrInvalidCapacity = errors.New("buffer size must be positive")
	ErrNoChannels      = errors.New("session has no channels")
	ErrNilBuffer       = errors.New("buffer half is nil")
	ErrBufferTooSmall  = errors.New("buffer half smaller than buffer size")
	ErrInvalidHalf     = errors.New("invalid buffer half")

	// ErrIndexOutOfRange is the panic value wrapped when a sample index
	// falls outside the buffer half.
	ErrIndexOutOfRange = errors.New("sample index out of range")
)
