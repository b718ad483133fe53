package fixedpoint

import "fmt"

// RoundingMode determines how an operation resolves a result that cannot be
// represented exactly at the target scale.
// The modes carry the same semantics as the rounding modes of general-purpose
// decimal arithmetic:
//
//   - [RoundUp] rounds away from zero.
//   - [RoundDown] rounds towards zero.
//   - [RoundCeiling] rounds towards positive infinity.
//   - [RoundFloor] rounds towards negative infinity.
//   - [RoundHalfUp] rounds to nearest, ties away from zero.
//   - [RoundHalfDown] rounds to nearest, ties towards zero.
//   - [RoundHalfEven] rounds to nearest, ties to the even neighbor.
//   - [RoundUnnecessary] asserts that no rounding is needed and fails
//     with [ErrInexactResult] otherwise.
type RoundingMode int

const (
	RoundUp RoundingMode = iota
	RoundDown
	RoundCeiling
	RoundFloor
	RoundHalfUp
	RoundHalfDown
	RoundHalfEven
	RoundUnnecessary
)

// String implements the [fmt.Stringer] interface.
func (m RoundingMode) String() string {
	switch m {
	case RoundUp:
		return "UP"
	case RoundDown:
		return "DOWN"
	case RoundCeiling:
		return "CEILING"
	case RoundFloor:
		return "FLOOR"
	case RoundHalfUp:
		return "HALF_UP"
	case RoundHalfDown:
		return "HALF_DOWN"
	case RoundHalfEven:
		return "HALF_EVEN"
	case RoundUnnecessary:
		return "UNNECESSARY"
	}
	return fmt.Sprintf("RoundingMode(%d)", int(m))
}

// DivRound divides a by b and rounds the quotient according to mode.
// It is exact for any sign combination, including operands near
// [math.MinInt64], because magnitude comparisons work on the remainder
// rather than on a negated dividend.
//
// DivRound returns an error if:
//   - b is 0;
//   - mode is [RoundUnnecessary] and the division leaves a remainder;
//   - the rounded quotient is not representable in an int64
//     (only possible for math.MinInt64 / -1).
func DivRound(a, b int64, mode RoundingMode) (int64, error) {
	if b == 0 {
		return 0, fmt.Errorf("computing [%d / 0]: %w", a, ErrDivisionByZero)
	}
	if a == minMantissa && b == -1 {
		return 0, fmt.Errorf("computing [%d / %d]: %w", a, b, ErrOverflow)
	}
	q := a / b
	r := a - q*b
	if r == 0 {
		// No mode produces a different result when the division is exact.
		return q, nil
	}
	neg := (a < 0) != (b < 0)
	var inc bool
	switch mode {
	case RoundUp:
		inc = true
	case RoundDown:
		// truncated quotient already rounds towards zero
	case RoundCeiling:
		inc = !neg
	case RoundFloor:
		inc = neg
	case RoundHalfUp, RoundHalfDown, RoundHalfEven:
		// |r| < |b| <= 2^63, so doubling the remainder cannot overflow uint64.
		switch r2, d := uabs(r)<<1, uabs(b); {
		case r2 > d:
			inc = true
		case r2 < d:
			// nearest result is the truncated quotient
		case mode == RoundHalfUp:
			inc = true
		case mode == RoundHalfEven:
			inc = q&1 != 0
		}
	case RoundUnnecessary:
		return 0, fmt.Errorf("computing [%d / %d]: %w", a, b, ErrInexactResult)
	default:
		return 0, fmt.Errorf("computing [%d / %d]: unknown rounding mode %d", a, b, int(mode))
	}
	if inc {
		if neg {
			q--
		} else {
			q++
		}
	}
	return q, nil
}
