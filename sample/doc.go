// SPDX-License-Identifier: EPL-2.0

// Package sample converts between native driver sample encodings and
// normalized float32 values.
//
// # Sample Types
//
// Type carries the ASIO SDK sample-type tags. Every PCM tag has a fixed
// Layout describing its container width, significant bits, byte order and
// kind:
//
//	Int16LSB, Int16MSB         2-byte two's complement
//	Int24LSB, Int24MSB         3-byte packed two's complement
//	Int32LSB, Int32MSB         4-byte two's complement
//	Int32LSB16 ... Int32LSB24  4-byte containers, value in the low 16/18/20/24 bits
//	Float32LSB, Float32MSB     IEEE 754 single precision
//	Float64LSB, Float64MSB     IEEE 754 double precision
//
// DSD tags are named but rejected with ErrUnsupportedSampleType.
//
// # Codec
//
// A Codec is built once per channel and reused for every sample:
//
//	codec, err := sample.NewCodec(sample.Int24LSB, sample.DefaultClipCeiling)
//	if err != nil {
//	    return err
//	}
//
//	buf := make([]byte, codec.Stride())
//	codec.Encode(buf, 0.25)
//	v := codec.Decode(buf) // 0.25
//
// Integer samples decode by dividing by 2^(bits-1), so the most negative
// value is exactly -1.0. Encoding clamps to the clip ceiling first, then
// rounds to nearest and saturates, so 1.0 becomes the positive maximum
// (0x7FFF for 16-bit). Float encodings are bit-exact within the ceiling.
//
// Decode and Encode never allocate and never return errors. A src or dst
// shorter than Stride() is a caller bug and panics.
package sample
