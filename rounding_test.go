package fixedpoint

import (
	"errors"
	"math"
	"testing"
)

func TestRoundingMode_String(t *testing.T) {
	tests := map[RoundingMode]string{
		RoundUp:          "UP",
		RoundDown:        "DOWN",
		RoundCeiling:     "CEILING",
		RoundFloor:       "FLOOR",
		RoundHalfUp:      "HALF_UP",
		RoundHalfDown:    "HALF_DOWN",
		RoundHalfEven:    "HALF_EVEN",
		RoundUnnecessary: "UNNECESSARY",
		RoundingMode(42): "RoundingMode(42)",
	}
	for mode, want := range tests {
		if got := mode.String(); got != want {
			t.Errorf("RoundingMode(%d).String() = %q, want %q", int(mode), got, want)
		}
	}
}

func TestDivRound(t *testing.T) {
	tests := []struct {
		a, b int64
		mode RoundingMode
		want int64
	}{
		// 7 / 4 = 1.75
		{7, 4, RoundUp, 2},
		{7, 4, RoundDown, 1},
		{7, 4, RoundCeiling, 2},
		{7, 4, RoundFloor, 1},
		{7, 4, RoundHalfUp, 2},
		{7, 4, RoundHalfDown, 2},
		{7, 4, RoundHalfEven, 2},

		// -7 / 4 = -1.75
		{-7, 4, RoundUp, -2},
		{-7, 4, RoundDown, -1},
		{-7, 4, RoundCeiling, -1},
		{-7, 4, RoundFloor, -2},
		{-7, 4, RoundHalfUp, -2},
		{-7, 4, RoundHalfDown, -2},
		{-7, 4, RoundHalfEven, -2},

		// 6 / 4 = 1.5, an exact tie
		{6, 4, RoundUp, 2},
		{6, 4, RoundDown, 1},
		{6, 4, RoundCeiling, 2},
		{6, 4, RoundFloor, 1},
		{6, 4, RoundHalfUp, 2},
		{6, 4, RoundHalfDown, 1},
		{6, 4, RoundHalfEven, 2},

		// -6 / 4 = -1.5
		{-6, 4, RoundUp, -2},
		{-6, 4, RoundDown, -1},
		{-6, 4, RoundCeiling, -1},
		{-6, 4, RoundFloor, -2},
		{-6, 4, RoundHalfUp, -2},
		{-6, 4, RoundHalfDown, -1},
		{-6, 4, RoundHalfEven, -2},

		// 10 / 4 = 2.5 ties to the even neighbor below
		{10, 4, RoundHalfEven, 2},
		{-10, 4, RoundHalfEven, -2},
		{14, 4, RoundHalfEven, 4},
		{-14, 4, RoundHalfEven, -4},

		// 5 / 3 = 1.666...
		{5, 3, RoundUp, 2},
		{5, 3, RoundDown, 1},
		{5, 3, RoundHalfUp, 2},
		{5, 3, RoundHalfDown, 2},
		{-5, 3, RoundCeiling, -1},
		{-5, 3, RoundFloor, -2},

		// negative divisors
		{7, -4, RoundHalfEven, -2},
		{-7, -4, RoundHalfEven, 2},
		{6, -4, RoundHalfEven, -2},
		{-6, -4, RoundHalfEven, 2},
		{7, -4, RoundCeiling, -1},
		{7, -4, RoundFloor, -2},

		// exact divisions ignore the mode
		{8, 4, RoundUnnecessary, 2},
		{-8, 4, RoundUnnecessary, -2},
		{0, 7, RoundUnnecessary, 0},
		{8, 2, RoundFloor, 4},

		// extremes
		{math.MaxInt64, 1, RoundUnnecessary, math.MaxInt64},
		{math.MinInt64, 1, RoundUnnecessary, math.MinInt64},
		{math.MinInt64, 2, RoundHalfEven, -4611686018427387904},
		{math.MaxInt64, 2, RoundHalfEven, 4611686018427387904},
		{math.MaxInt64, 2, RoundDown, 4611686018427387903},
		{math.MinInt64, math.MinInt64, RoundUnnecessary, 1},
		{math.MaxInt64, math.MinInt64, RoundHalfEven, -1},
	}
	for _, tt := range tests {
		got, err := DivRound(tt.a, tt.b, tt.mode)
		if err != nil {
			t.Errorf("DivRound(%d, %d, %v) failed: %v", tt.a, tt.b, tt.mode, err)
			continue
		}
		if got != tt.want {
			t.Errorf("DivRound(%d, %d, %v) = %d, want %d", tt.a, tt.b, tt.mode, got, tt.want)
		}
	}
}

func TestDivRound_errors(t *testing.T) {
	tests := []struct {
		name string
		a, b int64
		mode RoundingMode
		want error
	}{
		{"zero divisor", 1, 0, RoundHalfEven, ErrDivisionByZero},
		{"zero by zero", 0, 0, RoundHalfEven, ErrDivisionByZero},
		{"negation overflow", math.MinInt64, -1, RoundHalfEven, ErrOverflow},
		{"forbidden rounding", 5, 2, RoundUnnecessary, ErrInexactResult},
		{"forbidden rounding negative", -5, 2, RoundUnnecessary, ErrInexactResult},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DivRound(tt.a, tt.b, tt.mode)
			if !errors.Is(err, tt.want) {
				t.Errorf("DivRound(%d, %d, %v) error = %v, want %v", tt.a, tt.b, tt.mode, err, tt.want)
			}
		})
	}
}
