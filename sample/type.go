// SPDX-License-Identifier: EPL-2.0

package sample

import "fmt"

// Type is a native sample encoding tag. Values match the ASIO SDK
// ASIOSampleType constants so driver-reported tags convert directly.
type Type int32

const (
	Int16MSB   Type = 0
	Int24MSB   Type = 1
	Int32MSB   Type = 2
	Float32MSB Type = 3
	Float64MSB Type = 4

	// 32-bit containers with the sample right-aligned in the low bits.
	Int32MSB16 Type = 8
	Int32MSB18 Type = 9
	Int32MSB20 Type = 10
	Int32MSB24 Type = 11

	Int16LSB   Type = 16
	Int24LSB   Type = 17
	Int32LSB   Type = 18
	Float32LSB Type = 19
	Float64LSB Type = 20

	Int32LSB16 Type = 24
	Int32LSB18 Type = 25
	Int32LSB20 Type = 26
	Int32LSB24 Type = 27

	// DSD streams are recognized but carry no PCM samples.
	DSDInt8LSB1 Type = 32
	DSDInt8MSB1 Type = 33
	DSDInt8NER8 Type = 40
)

var typeNames = map[Type]string{
	Int16MSB:    "Int16MSB",
	Int24MSB:    "Int24MSB",
	Int32MSB:    "Int32MSB",
	Float32MSB:  "Float32MSB",
	Float64MSB:  "Float64MSB",
	Int32MSB16:  "Int32MSB16",
	Int32MSB18:  "Int32MSB18",
	Int32MSB20:  "Int32MSB20",
	Int32MSB24:  "Int32MSB24",
	Int16LSB:    "Int16LSB",
	Int24LSB:    "Int24LSB",
	Int32LSB:    "Int32LSB",
	Float32LSB:  "Float32LSB",
	Float64LSB:  "Float64LSB",
	Int32LSB16:  "Int32LSB16",
	Int32LSB18:  "Int32LSB18",
	Int32LSB20:  "Int32LSB20",
	Int32LSB24:  "Int32LSB24",
	DSDInt8LSB1: "DSDInt8LSB1",
	DSDInt8MSB1: "DSDInt8MSB1",
	DSDInt8NER8: "DSDInt8NER8",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(%d)", int32(t))
}

// Valid reports whether t is a PCM type this package can convert.
func (t Type) Valid() bool {
	_, ok := layouts[t]
	return ok
}

// ParseType looks a type up by its String name.
func ParseType(name string) (Type, error) {
	for t, n := range typeNames {
		if n == name && t.Valid() {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%q: %w", name, ErrUnsupportedSampleType)
}

// Types returns every convertible type in tag order.
func Types() []Type {
	out := make([]Type, 0, len(layouts))
	for t := Int16MSB; t <= Int32LSB24; t++ {
		if t.Valid() {
			out = append(out, t)
		}
	}
	return out
}
