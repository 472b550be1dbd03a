// SPDX-License-Identifier: EPL-2.0

package asio

import (
	"fmt"
	"unsafe"

	"github.com/ik5/asiobridge/sample"
)

// NativeHalf views size bytes of driver memory at ptr as a byte slice. The
// memory is not copied and stays owned by the driver; the slice is only
// valid until the driver disposes its buffers. A nil ptr yields nil, a
// non-positive size an empty slice.
func NativeHalf(ptr unsafe.Pointer, size int) []byte {
	if ptr == nil {
		return nil
	}
	if size < 0 {
		size = 0
	}
	return unsafe.Slice((*byte)(ptr), size)
}

// AllocateHalves returns two Go-owned halves sized for capacity samples of
// t, for drivers that do not hand out their own memory.
func AllocateHalves(t sample.Type, capacity int) ([2][]byte, error) {
	if capacity <= 0 {
		return [2][]byte{}, fmt.Errorf("%d: %w", capacity, ErrInvalidCapacity)
	}

	layout, err := sample.LayoutOf(t)
	if err != nil {
		return [2][]byte{}, err
	}

	size := capacity * layout.Width
	block := make([]byte, 2*size)

	return [2][]byte{block[:size:size], block[size:]}, nil
}
