// SPDX-License-Identifier: EPL-2.0

package utils

// Float32ToInt16 clamps x to [-1, 1] and quantizes it to 16-bit PCM.
// Negative values scale by 32768 and non-negative values by 32767, so both
// ends of the range are reachable without overflow. The product is taken
// in float64 and truncated toward zero.
func Float32ToInt16(x float32) int16 {
	v := float64(x)
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}

	if v < 0 {
		return int16(v * 32768)
	}

	return int16(v * 32767)
}
