// SPDX-License-Identifier: EPL-2.0

package sample

import (
	"fmt"
	"math"

	"github.com/ik5/asiobridge/utils"
)

// DefaultClipCeiling is the write ceiling used when none is configured.
const DefaultClipCeiling float32 = 1.0

// Codec converts single samples of one Type to and from normalized float32.
// It holds no mutable state and is safe for concurrent use.
type Codec struct {
	typ       Type
	layout    Layout
	ceiling   float32
	fullScale float64
	shift     uint
	bigEndian bool
}

// NewCodec builds a codec for t that clamps writes to [-ceiling, ceiling].
func NewCodec(t Type, ceiling float32) (Codec, error) {
	layout, err := LayoutOf(t)
	if err != nil {
		return Codec{}, err
	}

	if ceiling <= 0 || math.IsInf(float64(ceiling), 0) || ceiling != ceiling {
		return Codec{}, fmt.Errorf("%v: %w", ceiling, ErrInvalidClipCeiling)
	}

	return Codec{
		typ:       t,
		layout:    layout,
		ceiling:   ceiling,
		fullScale: layout.FullScale(),
		shift:     uint(64 - layout.Bits),
		bigEndian: layout.Order == be,
	}, nil
}

func (c Codec) Type() Type       { return c.typ }
func (c Codec) Layout() Layout   { return c.layout }
func (c Codec) Ceiling() float32 { return c.ceiling }
func (c Codec) Stride() int      { return c.layout.Width }

// Decode reads one sample from the first Stride() bytes of src. Any bit
// pattern is accepted; padding bits above the significant width are ignored.
func (c Codec) Decode(src []byte) float32 {
	raw := c.load(src)

	if c.layout.Kind == KindFloat {
		if c.layout.Width == 8 {
			return float32(math.Float64frombits(raw))
		}
		return math.Float32frombits(uint32(raw))
	}

	v := int64(raw<<c.shift) >> c.shift
	return float32(float64(v) / c.fullScale)
}

// Encode writes v into the first Stride() bytes of dst. Values outside the
// clip ceiling are clamped, NaN is written as silence. Float types are
// clamped as well, so they round-trip exactly only within the ceiling.
func (c Codec) Encode(dst []byte, v float32) {
	v = utils.ClampCeiling(v, c.ceiling)

	if c.layout.Kind == KindFloat {
		if c.layout.Width == 8 {
			c.store(dst, math.Float64bits(float64(v)))
			return
		}
		c.store(dst, uint64(math.Float32bits(v)))
		return
	}

	// Padded containers carry the value sign-extended through the full word.
	c.store(dst, uint64(utils.Quantize(float64(v), c.layout.Bits)))
}

// DecodeSlice decodes consecutive samples from src into dst and returns how
// many were converted.
func (c Codec) DecodeSlice(dst []float32, src []byte) int {
	n := min(len(dst), len(src)/c.layout.Width)
	for i := range n {
		dst[i] = c.Decode(src[i*c.layout.Width:])
	}
	return n
}

// EncodeSlice encodes src into consecutive samples of dst and returns how
// many were converted.
func (c Codec) EncodeSlice(dst []byte, src []float32) int {
	n := min(len(src), len(dst)/c.layout.Width)
	for i := range n {
		c.Encode(dst[i*c.layout.Width:], src[i])
	}
	return n
}

func (c Codec) load(b []byte) uint64 {
	switch c.layout.Width {
	case 2:
		return uint64(c.layout.Order.Uint16(b))
	case 3:
		_ = b[2]
		if c.bigEndian {
			return uint64(b[0])<<16 | uint64(b[1])<<8 | uint64(b[2])
		}
		return uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16
	case 4:
		return uint64(c.layout.Order.Uint32(b))
	default:
		return c.layout.Order.Uint64(b)
	}
}

func (c Codec) store(b []byte, v uint64) {
	switch c.layout.Width {
	case 2:
		c.layout.Order.PutUint16(b, uint16(v))
	case 3:
		_ = b[2]
		if c.bigEndian {
			b[0], b[1], b[2] = byte(v>>16), byte(v>>8), byte(v)
			return
		}
		b[0], b[1], b[2] = byte(v), byte(v>>8), byte(v>>16)
	case 4:
		c.layout.Order.PutUint32(b, uint32(v))
	default:
		c.layout.Order.PutUint64(b, v)
	}
}
