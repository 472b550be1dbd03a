// SPDX-License-Identifier: EPL-2.0

package asio

import (
	"fmt"
	"sync/atomic"

	"github.com/ik5/asiobridge/sample"
)

// Half names one of the two driver buffer halves.
type Half uint32

const (
	HalfA Half = 0
	HalfB Half = 1
)

func (h Half) String() string {
	switch h {
	case HalfA:
		return "A"
	case HalfB:
		return "B"
	default:
		return fmt.Sprintf("Half(%d)", uint32(h))
	}
}

// Channel is one physical driver channel seen as float samples.
//
// The two halves are driver memory; Channel never copies, frees or resizes
// them. Reads and writes go to the active half, which flips once per
// Session.BufferSwitch. Channel takes no locks: the caller must not swap
// while Get or Set is running on another goroutine.
type Channel struct {
	isInput  bool
	name     string
	codec    sample.Codec
	halves   [2][]byte
	capacity int
	active   atomic.Uint32
}

func newChannel(info ChannelInfo, capacity int, cfg config) (*Channel, error) {
	ceiling := cfg.ceiling
	if info.ClipCeiling != 0 {
		ceiling = info.ClipCeiling
	}

	codec, err := sample.NewCodec(info.SampleType, ceiling)
	if err != nil {
		return nil, err
	}

	need := capacity * codec.Stride()
	for i, half := range info.Buffers {
		if half == nil {
			return nil, fmt.Errorf("half %v: %w", Half(i), ErrNilBuffer)
		}
		if len(half) < need {
			return nil, fmt.Errorf("half %v has %d bytes, need %d: %w", Half(i), len(half), need, ErrBufferTooSmall)
		}
	}

	c := &Channel{
		isInput:  info.IsInput,
		name:     info.Name,
		codec:    codec,
		capacity: capacity,
	}
	// Trim to the exact span so no access can reach driver memory past it.
	c.halves[HalfA] = info.Buffers[HalfA][:need:need]
	c.halves[HalfB] = info.Buffers[HalfB][:need:need]
	c.active.Store(uint32(cfg.start))

	return c, nil
}

func (c *Channel) Name() string            { return c.name }
func (c *Channel) SampleType() sample.Type { return c.codec.Type() }
func (c *Channel) IsInput() bool           { return c.isInput }
func (c *Channel) Capacity() int           { return c.capacity }
func (c *Channel) ClipCeiling() float32    { return c.codec.Ceiling() }
func (c *Channel) ActiveHalf() Half        { return Half(c.active.Load()) }

// Get decodes sample i of the active half.
// It panics if i is outside [0, Capacity()).
func (c *Channel) Get(i int) float32 {
	return c.codec.Decode(c.slot(i))
}

// Set encodes v into sample i of the active half, clamped to the clip
// ceiling. It panics if i is outside [0, Capacity()).
func (c *Channel) Set(i int, v float32) {
	c.codec.Encode(c.slot(i), v)
}

// ReadHalf decodes the active half into dst and returns the number of
// samples read, at most Capacity().
func (c *Channel) ReadHalf(dst []float32) int {
	return c.codec.DecodeSlice(dst, c.halves[c.active.Load()])
}

// WriteHalf encodes src into the active half and returns the number of
// samples written, at most Capacity().
func (c *Channel) WriteHalf(src []float32) int {
	return c.codec.EncodeSlice(c.halves[c.active.Load()], src)
}

// Silence zeroes the active half. Zero bytes are silence in every PCM type.
func (c *Channel) Silence() {
	clear(c.halves[c.active.Load()])
}

func (c *Channel) String() string {
	dir := "out"
	if c.isInput {
		dir = "in"
	}
	return fmt.Sprintf("%s %q %v", dir, c.name, c.codec.Type())
}

func (c *Channel) notifySwap() {
	// Single writer: only the session's buffer switch touches the flag.
	c.active.Store(c.active.Load() ^ 1)
}

func (c *Channel) slot(i int) []byte {
	if i < 0 || i >= c.capacity {
		panic(fmt.Errorf("channel %q: index %d, capacity %d: %w", c.name, i, c.capacity, ErrIndexOutOfRange))
	}

	stride := c.codec.Stride()
	off := i * stride
	return c.halves[c.active.Load()][off : off+stride]
}
