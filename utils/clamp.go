// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// ClampCeiling limits x to [-ceiling, ceiling]. NaN becomes silence.
func ClampCeiling(x, ceiling float32) float32 {
	if x != x {
		return 0
	}

	if x > ceiling {
		return ceiling
	} else if x < -ceiling {
		return -ceiling
	}

	return x
}

// Quantize scales a normalized value to a signed integer of the given bit
// width, rounding to nearest and saturating at the representable range.
// Full scale is 2^(bits-1), so 1.0 saturates to the positive maximum.
func Quantize(x float64, bits int) int64 {
	if x != x {
		return 0
	}

	fullScale := float64(int64(1) << (bits - 1))
	hi := fullScale - 1
	lo := -fullScale

	v := math.Round(x * fullScale)
	if v > hi {
		return int64(hi)
	} else if v < lo {
		return int64(lo)
	}

	return int64(v)
}
