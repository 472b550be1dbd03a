// SPDX-License-Identifier: EPL-2.0

package sample

import (
	"bytes"
	"errors"
	"math"
	"testing"
)

func mustCodec(t testing.TB, typ Type, ceiling float32) Codec {
	t.Helper()

	c, err := NewCodec(typ, ceiling)
	if err != nil {
		t.Fatalf("NewCodec(%v, %v) error = %v", typ, ceiling, err)
	}
	return c
}

func TestNewCodec_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		typ     Type
		ceiling float32
		wantErr error
	}{
		{"unknown type", Type(99), 1, ErrUnsupportedSampleType},
		{"gap in table", Type(5), 1, ErrUnsupportedSampleType},
		{"dsd", DSDInt8LSB1, 1, ErrUnsupportedSampleType},
		{"zero ceiling", Int16LSB, 0, ErrInvalidClipCeiling},
		{"negative ceiling", Int16LSB, -1, ErrInvalidClipCeiling},
		{"nan ceiling", Int16LSB, float32(math.NaN()), ErrInvalidClipCeiling},
		{"infinite ceiling", Int16LSB, float32(math.Inf(1)), ErrInvalidClipCeiling},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewCodec(tt.typ, tt.ceiling)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewCodec() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// TestCodec_RoundTrip checks decode(encode(v)) for every type across the
// full normalized range.
func TestCodec_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, typ := range Types() {
		t.Run(typ.String(), func(t *testing.T) {
			t.Parallel()

			c := mustCodec(t, typ, DefaultClipCeiling)
			buf := make([]byte, c.Stride())

			tolerance := 0.0
			if c.Layout().Kind == KindInt {
				tolerance = math.Max(1/c.Layout().FullScale(), 1e-6)
			}

			for i := -100; i <= 100; i++ {
				v := float32(i) / 100
				c.Encode(buf, v)
				got := c.Decode(buf)

				if diff := math.Abs(float64(got - v)); diff > tolerance {
					t.Errorf("round trip %v -> %v (diff %v, tolerance %v)", v, got, diff, tolerance)
				}
			}
		})
	}
}

// TestCodec_ClampInvariant feeds values far outside the ceiling and checks
// the written pattern never decodes outside it.
func TestCodec_ClampInvariant(t *testing.T) {
	t.Parallel()

	inputs := []float32{
		1.0000001, -1.0000001, 2, -2, 1e9, -1e9,
		float32(math.Inf(1)), float32(math.Inf(-1)), float32(math.NaN()),
	}

	for _, typ := range Types() {
		for _, ceiling := range []float32{1, 0.5} {
			c := mustCodec(t, typ, ceiling)
			buf := make([]byte, c.Stride())

			for _, v := range inputs {
				c.Encode(buf, v)
				got := c.Decode(buf)

				if got != got || got > ceiling || got < -ceiling {
					t.Errorf("%v ceiling %v: Encode(%v) decodes to %v", typ, ceiling, v, got)
				}
			}
		}
	}
}

func TestCodec_NaNIsSilence(t *testing.T) {
	t.Parallel()

	for _, typ := range Types() {
		c := mustCodec(t, typ, DefaultClipCeiling)
		buf := bytes.Repeat([]byte{0xAA}, c.Stride())

		c.Encode(buf, float32(math.NaN()))
		if got := c.Decode(buf); got != 0 {
			t.Errorf("%v: Encode(NaN) decodes to %v, want 0", typ, got)
		}
	}
}

func TestCodec_Int16Endpoints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		typ   Type
		value float32
		want  []byte
	}{
		{Int16LSB, 1.0, []byte{0xFF, 0x7F}},
		{Int16LSB, -1.0, []byte{0x00, 0x80}},
		{Int16LSB, 0, []byte{0x00, 0x00}},
		{Int16MSB, 1.0, []byte{0x7F, 0xFF}},
		{Int16MSB, -1.0, []byte{0x80, 0x00}},
		{Int16LSB, 0.5, []byte{0x00, 0x40}},
	}

	for _, tt := range tests {
		c := mustCodec(t, tt.typ, DefaultClipCeiling)
		buf := make([]byte, c.Stride())

		c.Encode(buf, tt.value)
		if !bytes.Equal(buf, tt.want) {
			t.Errorf("%v Encode(%v) = % X, want % X", tt.typ, tt.value, buf, tt.want)
		}
	}

	c := mustCodec(t, Int16LSB, DefaultClipCeiling)
	if got := c.Decode([]byte{0x00, 0x00}); got != 0 {
		t.Errorf("Decode(0x0000) = %v, want 0", got)
	}
	if got := c.Decode([]byte{0x00, 0x80}); got != -1 {
		t.Errorf("Decode(0x8000) = %v, want -1", got)
	}
	if got := c.Decode([]byte{0xFF, 0x7F}); got != float32(32767.0/32768.0) {
		t.Errorf("Decode(0x7FFF) = %v, want %v", got, 32767.0/32768.0)
	}
}

func TestCodec_KnownPatterns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		typ   Type
		value float32
		want  []byte
	}{
		{"int24 le max", Int24LSB, 1, []byte{0xFF, 0xFF, 0x7F}},
		{"int24 le min", Int24LSB, -1, []byte{0x00, 0x00, 0x80}},
		{"int24 be half", Int24MSB, 0.5, []byte{0x40, 0x00, 0x00}},
		{"int32 le min", Int32LSB, -1, []byte{0x00, 0x00, 0x00, 0x80}},
		{"int32 be max", Int32MSB, 1, []byte{0x7F, 0xFF, 0xFF, 0xFF}},
		{"padded 24 le min", Int32LSB24, -1, []byte{0x00, 0x00, 0x80, 0xFF}},
		{"padded 24 le max", Int32LSB24, 1, []byte{0xFF, 0xFF, 0x7F, 0x00}},
		{"padded 16 be half", Int32MSB16, 0.5, []byte{0x00, 0x00, 0x40, 0x00}},
		{"padded 18 le min", Int32LSB18, -1, []byte{0x00, 0x00, 0xFE, 0xFF}},
		{"padded 20 be max", Int32MSB20, 1, []byte{0x00, 0x07, 0xFF, 0xFF}},
		{"float32 le one", Float32LSB, 1, []byte{0x00, 0x00, 0x80, 0x3F}},
		{"float32 be one", Float32MSB, 1, []byte{0x3F, 0x80, 0x00, 0x00}},
		{"float64 be minus one", Float64MSB, -1, []byte{0xBF, 0xF0, 0, 0, 0, 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := mustCodec(t, tt.typ, DefaultClipCeiling)
			buf := make([]byte, c.Stride())

			c.Encode(buf, tt.value)
			if !bytes.Equal(buf, tt.want) {
				t.Errorf("Encode(%v) = % X, want % X", tt.value, buf, tt.want)
			}
		})
	}
}

// TestCodec_PaddingIgnored checks that junk in the unused high bits of a
// padded container does not change the decoded value.
func TestCodec_PaddingIgnored(t *testing.T) {
	t.Parallel()

	c := mustCodec(t, Int32LSB24, DefaultClipCeiling)

	if got := c.Decode([]byte{0x00, 0x00, 0x40, 0xAB}); got != 0.5 {
		t.Errorf("Decode(junk padding, +0.5) = %v, want 0.5", got)
	}
	if got := c.Decode([]byte{0x00, 0x00, 0x80, 0x00}); got != -1 {
		t.Errorf("Decode(unextended -1) = %v, want -1", got)
	}

	c16 := mustCodec(t, Int32MSB16, DefaultClipCeiling)
	if got := c16.Decode([]byte{0x12, 0x34, 0xC0, 0x00}); got != -0.5 {
		t.Errorf("Decode(junk padding, -0.5) = %v, want -0.5", got)
	}
}

func TestCodec_Float32BitExact(t *testing.T) {
	t.Parallel()

	values := []float32{
		0, float32(math.Copysign(0, -1)), 1, -1, 0.1, -0.333333,
		math.SmallestNonzeroFloat32, -math.SmallestNonzeroFloat32,
		math.Nextafter32(1, 0), math.Nextafter32(-1, 0),
	}

	for _, typ := range []Type{Float32LSB, Float32MSB, Float64LSB, Float64MSB} {
		c := mustCodec(t, typ, DefaultClipCeiling)
		buf := make([]byte, c.Stride())

		for _, v := range values {
			c.Encode(buf, v)

			if typ == Float32LSB {
				if raw := le.Uint32(buf); raw != math.Float32bits(v) {
					t.Errorf("%v Encode(%v) bits = %08X, want %08X", typ, v, raw, math.Float32bits(v))
				}
			}

			got := c.Decode(buf)
			if math.Float32bits(got) != math.Float32bits(v) {
				t.Errorf("%v round trip %v -> %v not bit-exact", typ, v, got)
			}
		}
	}
}

func TestCodec_FloatDecodeUnclamped(t *testing.T) {
	t.Parallel()

	c := mustCodec(t, Float32LSB, DefaultClipCeiling)
	buf := make([]byte, 4)
	le.PutUint32(buf, math.Float32bits(1.5))

	if got := c.Decode(buf); got != 1.5 {
		t.Errorf("Decode(1.5) = %v, want 1.5", got)
	}
}

func TestCodec_Slices(t *testing.T) {
	t.Parallel()

	c := mustCodec(t, Int24MSB, DefaultClipCeiling)
	src := []float32{0, 0.25, -0.25, 0.5, -1}
	raw := make([]byte, len(src)*c.Stride())

	if n := c.EncodeSlice(raw, src); n != len(src) {
		t.Fatalf("EncodeSlice() = %d, want %d", n, len(src))
	}

	got := make([]float32, len(src)+3)
	if n := c.DecodeSlice(got, raw); n != len(src) {
		t.Fatalf("DecodeSlice() = %d, want %d", n, len(src))
	}

	for i, v := range src {
		if got[i] != v {
			t.Errorf("sample %d = %v, want %v", i, got[i], v)
		}
	}

	// A short destination limits the count.
	if n := c.EncodeSlice(raw[:4], src); n != 1 {
		t.Errorf("EncodeSlice(short dst) = %d, want 1", n)
	}
}

func TestCodec_ShortBufferPanics(t *testing.T) {
	t.Parallel()

	c := mustCodec(t, Int32LSB, DefaultClipCeiling)

	defer func() {
		if recover() == nil {
			t.Error("Decode(short buffer) did not panic")
		}
	}()

	_ = c.Decode([]byte{0x01, 0x02})
}

func TestCodec_ZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	for _, typ := range Types() {
		c := mustCodec(t, typ, DefaultClipCeiling)
		buf := make([]byte, c.Stride())

		allocs := testing.AllocsPerRun(1000, func() {
			c.Encode(buf, 0.5)
			_ = c.Decode(buf)
		})

		if allocs > 0 {
			t.Errorf("%v Encode+Decode allocated %v times, want 0", typ, allocs)
		}
	}
}

func BenchmarkCodec_Encode(b *testing.B) {
	for _, typ := range []Type{Int16LSB, Int24LSB, Int32LSB24, Float32LSB} {
		b.Run(typ.String(), func(b *testing.B) {
			c := mustCodec(b, typ, DefaultClipCeiling)
			buf := make([]byte, c.Stride()*512)

			b.ReportAllocs()

			for i := range b.N {
				c.Encode(buf[(i%512)*c.Stride():], float32(i%200-100)/100)
			}
		})
	}
}

func BenchmarkCodec_Decode(b *testing.B) {
	for _, typ := range []Type{Int16LSB, Int24LSB, Int32LSB24, Float32LSB} {
		b.Run(typ.String(), func(b *testing.B) {
			c := mustCodec(b, typ, DefaultClipCeiling)
			buf := make([]byte, c.Stride()*512)

			var result float32

			b.ReportAllocs()

			for i := range b.N {
				result = c.Decode(buf[(i%512)*c.Stride():])
			}

			_ = result
		})
	}
}
