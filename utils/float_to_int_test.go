// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestFloat32ToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float32
		want  int16
	}{
		{"zero", 0, 0},
		{"max positive", 1, math.MaxInt16},
		{"max negative", -1, math.MinInt16},
		{"half positive", 0.5, 16383},
		{"half negative", -0.5, -16384},
		{"quarter positive", 0.25, 8191},
		{"small positive", 0.001, 32},
		{"small negative", -0.001, -32},
		// float32 product would round up to 1022.
		{"product just below integer", 0.03118991666, 1021},
		{"clamp over max", 1.5, math.MaxInt16},
		{"clamp under min", -1.5, math.MinInt16},
		{"infinity", float32(math.Inf(1)), math.MaxInt16},
		{"negative infinity", float32(math.Inf(-1)), math.MinInt16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Float32ToInt16(tt.input); got != tt.want {
				t.Errorf("Float32ToInt16(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestFloat32ToInt16_ExactTruncation walks consecutive float32 values and
// checks each against the exact truncated product.
func TestFloat32ToInt16_ExactTruncation(t *testing.T) {
	t.Parallel()

	starts := []float32{0.03118991666, 0.5, 0.999, -0.03118991666, -0.75}

	for _, start := range starts {
		x := start
		for range 50000 {
			var want int16
			if x < 0 {
				want = int16(math.Trunc(float64(x) * 32768))
			} else {
				want = int16(math.Trunc(float64(x) * 32767))
			}

			if got := Float32ToInt16(x); got != want {
				t.Fatalf("Float32ToInt16(%v) = %v, want %v", x, got, want)
			}

			x = math.Nextafter32(x, 1)
			if x > 1 {
				break
			}
		}
	}
}

func TestFloat32ToInt16_Monotonic(t *testing.T) {
	t.Parallel()

	prev := Float32ToInt16(-1)
	for f := -0.99; f <= 1.0; f += 0.01 {
		curr := Float32ToInt16(float32(f))
		if curr < prev {
			t.Errorf("Float32ToInt16(%v) = %v, below previous %v", f, curr, prev)
		}
		prev = curr
	}
}
