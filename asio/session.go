// SPDX-License-Identifier: EPL-2.0

package asio

import (
	"fmt"
	"sync/atomic"

	"github.com/ik5/asiobridge/sample"
)

// ChannelInfo is what the driver reports for one channel once its buffers
// have been created.
type ChannelInfo struct {
	IsInput    bool
	Name       string
	SampleType sample.Type
	// ClipCeiling overrides the session ceiling for this channel. Zero
	// means use the session's WithClipCeiling value.
	ClipCeiling float32
	// Buffers are the two driver-owned halves, each holding at least
	// bufferSize samples of SampleType.
	Buffers [2][]byte
}

// Session is the set of channels driven by one driver buffer-switch
// callback. It is the only way to construct a Channel.
type Session struct {
	bufferSize int
	channels   []*Channel
	inputs     []*Channel
	outputs    []*Channel
	swaps      atomic.Uint64
}

// NewSession builds one Channel per info. Any invalid channel fails the
// whole session; the driver must not be started with a partial set.
func NewSession(bufferSize int, infos []ChannelInfo, opts ...Option) (*Session, error) {
	if bufferSize <= 0 {
		return nil, fmt.Errorf("%d: %w", bufferSize, ErrInvalidCapacity)
	}
	if len(infos) == 0 {
		return nil, ErrNoChannels
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.start != HalfA && cfg.start != HalfB {
		return nil, fmt.Errorf("%v: %w", cfg.start, ErrInvalidHalf)
	}

	s := &Session{
		bufferSize: bufferSize,
		channels:   make([]*Channel, 0, len(infos)),
	}

	for i, info := range infos {
		ch, err := newChannel(info, bufferSize, cfg)
		if err != nil {
			return nil, fmt.Errorf("channel %d (%q): %w", i, info.Name, err)
		}

		s.channels = append(s.channels, ch)
		if ch.isInput {
			s.inputs = append(s.inputs, ch)
		} else {
			s.outputs = append(s.outputs, ch)
		}
	}

	return s, nil
}

// BufferSwitch retargets every channel to the other half. Call it from the
// driver's buffer-switch callback, after the consumer has finished with the
// current half and before it touches the next one.
func (s *Session) BufferSwitch() {
	for _, ch := range s.channels {
		ch.notifySwap()
	}
	s.swaps.Add(1)
}

// BufferSize is the number of samples in each half.
func (s *Session) BufferSize() int { return s.bufferSize }

// Swaps is the number of buffer switches since construction.
func (s *Session) Swaps() uint64 { return s.swaps.Load() }

// Channels returns all channels in driver order.
func (s *Session) Channels() []*Channel { return s.channels }

func (s *Session) Inputs() []*Channel  { return s.inputs }
func (s *Session) Outputs() []*Channel { return s.outputs }

// Channel returns the channel at driver index i.
func (s *Session) Channel(i int) *Channel { return s.channels[i] }
