package fixedpoint

import "math"

// maxScale is the largest supported number of fractional decimal digits.
const maxScale = 18

// Bounds of the mantissa.
const (
	maxMantissa = math.MaxInt64
	minMantissa = math.MinInt64
)

// pow10 is a cache of powers of 10, where pow10[x] = 10^x.
var pow10 = [...]int64{
	1,                         // 10^0
	10,                        // 10^1
	100,                       // 10^2
	1_000,                     // 10^3
	10_000,                    // 10^4
	100_000,                   // 10^5
	1_000_000,                 // 10^6
	10_000_000,                // 10^7
	100_000_000,               // 10^8
	1_000_000_000,             // 10^9
	10_000_000_000,            // 10^10
	100_000_000_000,           // 10^11
	1_000_000_000_000,         // 10^12
	10_000_000_000_000,        // 10^13
	100_000_000_000_000,       // 10^14
	1_000_000_000_000_000,     // 10^15
	10_000_000_000_000_000,    // 10^16
	100_000_000_000_000_000,   // 10^17
	1_000_000_000_000_000_000, // 10^18
}

// checkedAdd calculates x + y and checks overflow.
func checkedAdd(x, y int64) (z int64, ok bool) {
	z = x + y
	if (y > 0 && z < x) || (y < 0 && z > x) {
		return 0, false
	}
	return z, true
}

// checkedSub calculates x - y and checks overflow.
func checkedSub(x, y int64) (z int64, ok bool) {
	z = x - y
	if (y > 0 && z > x) || (y < 0 && z < x) {
		return 0, false
	}
	return z, true
}

// checkedMul calculates x * y and checks overflow.
func checkedMul(x, y int64) (z int64, ok bool) {
	if x == 0 || y == 0 {
		return 0, true
	}
	if (x == math.MinInt64 && y == -1) || (y == math.MinInt64 && x == -1) {
		return 0, false
	}
	z = x * y
	if z/y != x {
		return 0, false
	}
	return z, true
}

// checkedLsh calculates x * 10^shift and checks overflow.
func checkedLsh(x int64, shift int) (z int64, ok bool) {
	switch {
	case shift <= 0:
		return x, true
	case shift > maxScale:
		return 0, false
	}
	return checkedMul(x, pow10[shift])
}

// uabs returns the magnitude of x as an unsigned integer.
// Unlike int64 negation it is exact for math.MinInt64.
func uabs(x int64) uint64 {
	u := uint64(x)
	if x < 0 {
		u = -u
	}
	return u
}

// sign64 returns -1, 0 or +1 depending on the sign of x.
func sign64(x int64) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}
