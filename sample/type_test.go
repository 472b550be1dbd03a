// SPDX-License-Identifier: EPL-2.0

package sample

import (
	"errors"
	"testing"
)

func TestTypes_TableIsExhaustive(t *testing.T) {
	t.Parallel()

	types := Types()
	if len(types) != 18 {
		t.Fatalf("Types() returned %d types, want 18", len(types))
	}

	for _, typ := range types {
		l, err := LayoutOf(typ)
		if err != nil {
			t.Errorf("LayoutOf(%v) error = %v", typ, err)
			continue
		}
		if l.Width <= 0 || l.Bits <= 0 || l.Bits > l.Width*8 {
			t.Errorf("LayoutOf(%v) = %+v, inconsistent width/bits", typ, l)
		}
		if l.Order == nil {
			t.Errorf("LayoutOf(%v) has no byte order", typ)
		}
	}
}

func TestLayoutOf_Strides(t *testing.T) {
	t.Parallel()

	tests := []struct {
		typ   Type
		width int
		bits  int
		kind  Kind
	}{
		{Int16LSB, 2, 16, KindInt},
		{Int24MSB, 3, 24, KindInt},
		{Int32LSB, 4, 32, KindInt},
		{Int32LSB24, 4, 24, KindInt},
		{Int32MSB18, 4, 18, KindInt},
		{Float32MSB, 4, 32, KindFloat},
		{Float64LSB, 8, 64, KindFloat},
	}

	for _, tt := range tests {
		l, err := LayoutOf(tt.typ)
		if err != nil {
			t.Fatalf("LayoutOf(%v) error = %v", tt.typ, err)
		}
		if l.Width != tt.width || l.Bits != tt.bits || l.Kind != tt.kind {
			t.Errorf("LayoutOf(%v) = {%d %d %v}, want {%d %d %v}",
				tt.typ, l.Width, l.Bits, l.Kind, tt.width, tt.bits, tt.kind)
		}
	}
}

func TestLayoutOf_Rejects(t *testing.T) {
	t.Parallel()

	for _, typ := range []Type{DSDInt8LSB1, DSDInt8MSB1, DSDInt8NER8, Type(-1), Type(21), Type(1000)} {
		if _, err := LayoutOf(typ); !errors.Is(err, ErrUnsupportedSampleType) {
			t.Errorf("LayoutOf(%v) error = %v, want ErrUnsupportedSampleType", typ, err)
		}
		if typ.Valid() {
			t.Errorf("%v.Valid() = true, want false", typ)
		}
	}
}

func TestType_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		typ  Type
		want string
	}{
		{Int16LSB, "Int16LSB"},
		{Int32MSB24, "Int32MSB24"},
		{DSDInt8NER8, "DSDInt8NER8"},
		{Type(77), "Type(77)"},
	}

	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("Type(%d).String() = %q, want %q", int32(tt.typ), got, tt.want)
		}
	}
}

func TestParseType(t *testing.T) {
	t.Parallel()

	for _, typ := range Types() {
		got, err := ParseType(typ.String())
		if err != nil || got != typ {
			t.Errorf("ParseType(%q) = %v, %v; want %v", typ.String(), got, err, typ)
		}
	}

	for _, name := range []string{"", "Int16", "DSDInt8LSB1"} {
		if _, err := ParseType(name); !errors.Is(err, ErrUnsupportedSampleType) {
			t.Errorf("ParseType(%q) error = %v, want ErrUnsupportedSampleType", name, err)
		}
	}
}

func TestFullScale(t *testing.T) {
	t.Parallel()

	if got := FullScale(16); got != 32768 {
		t.Errorf("FullScale(16) = %v, want 32768", got)
	}
	if got := FullScale(24); got != 8388608 {
		t.Errorf("FullScale(24) = %v, want 8388608", got)
	}

	l, _ := LayoutOf(Float32LSB)
	if got := l.FullScale(); got != 1 {
		t.Errorf("Float32LSB FullScale() = %v, want 1", got)
	}
}
