// SPDX-License-Identifier: EPL-2.0

package asio

import (
	"fmt"

	"github.com/ik5/asiobridge/sample"
)

// NewLoopbackSession builds a session of channels outputs followed by the
// same number of inputs, where input i shares its halves with output i.
// Whatever is written to an output half can be read back from the matching
// input after the same switch, exactly as a driver would receive it.
func NewLoopbackSession(t sample.Type, channels, bufferSize int, opts ...Option) (*Session, error) {
	if channels <= 0 {
		return nil, ErrNoChannels
	}

	infos := make([]ChannelInfo, 0, 2*channels)
	halves := make([][2][]byte, channels)

	for i := range channels {
		h, err := AllocateHalves(t, bufferSize)
		if err != nil {
			return nil, err
		}
		halves[i] = h

		infos = append(infos, ChannelInfo{
			Name:       fmt.Sprintf("Out %d", i+1),
			SampleType: t,
			Buffers:    h,
		})
	}

	for i := range channels {
		infos = append(infos, ChannelInfo{
			IsInput:    true,
			Name:       fmt.Sprintf("In %d", i+1),
			SampleType: t,
			Buffers:    halves[i],
		})
	}

	return NewSession(bufferSize, infos, opts...)
}
