// SPDX-License-Identifier: EPL-2.0

package sample

import (
	"encoding/binary"
	"fmt"
)

// Kind separates integer from IEEE floating point encodings.
type Kind uint8

const (
	KindInt Kind = iota
	KindFloat
)

// Layout is the byte-level shape of one sample.
type Layout struct {
	// Width is the container size in bytes and the stride between samples.
	Width int
	// Bits is the number of significant bits. Smaller than Width*8 for
	// padded containers.
	Bits  int
	Order binary.ByteOrder
	Kind  Kind
}

// FullScale is the magnitude that decodes to 1.0: 2^(Bits-1) for integer
// layouts, 1 for floats.
func (l Layout) FullScale() float64 {
	if l.Kind == KindFloat {
		return 1
	}
	return FullScale(l.Bits)
}

// FullScale returns 2^(bits-1), the divisor that maps a signed integer of
// the given width onto [-1, 1).
func FullScale(bits int) float64 {
	return float64(int64(1) << (bits - 1))
}

var (
	be = binary.BigEndian
	le = binary.LittleEndian
)

var layouts = map[Type]Layout{
	Int16MSB:   {Width: 2, Bits: 16, Order: be, Kind: KindInt},
	Int24MSB:   {Width: 3, Bits: 24, Order: be, Kind: KindInt},
	Int32MSB:   {Width: 4, Bits: 32, Order: be, Kind: KindInt},
	Float32MSB: {Width: 4, Bits: 32, Order: be, Kind: KindFloat},
	Float64MSB: {Width: 8, Bits: 64, Order: be, Kind: KindFloat},
	Int32MSB16: {Width: 4, Bits: 16, Order: be, Kind: KindInt},
	Int32MSB18: {Width: 4, Bits: 18, Order: be, Kind: KindInt},
	Int32MSB20: {Width: 4, Bits: 20, Order: be, Kind: KindInt},
	Int32MSB24: {Width: 4, Bits: 24, Order: be, Kind: KindInt},
	Int16LSB:   {Width: 2, Bits: 16, Order: le, Kind: KindInt},
	Int24LSB:   {Width: 3, Bits: 24, Order: le, Kind: KindInt},
	Int32LSB:   {Width: 4, Bits: 32, Order: le, Kind: KindInt},
	Float32LSB: {Width: 4, Bits: 32, Order: le, Kind: KindFloat},
	Float64LSB: {Width: 8, Bits: 64, Order: le, Kind: KindFloat},
	Int32LSB16: {Width: 4, Bits: 16, Order: le, Kind: KindInt},
	Int32LSB18: {Width: 4, Bits: 18, Order: le, Kind: KindInt},
	Int32LSB20: {Width: 4, Bits: 20, Order: le, Kind: KindInt},
	Int32LSB24: {Width: 4, Bits: 24, Order: le, Kind: KindInt},
}

// LayoutOf returns the layout for t, or ErrUnsupportedSampleType for DSD
// and unknown tags.
func LayoutOf(t Type) (Layout, error) {
	l, ok := layouts[t]
	if !ok {
		return Layout{}, fmt.Errorf("%v: %w", t, ErrUnsupportedSampleType)
	}
	return l, nil
}
