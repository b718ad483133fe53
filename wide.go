package fixedpoint

import (
	"fmt"
	"math"
	"math/big"
	"math/bits"
)

// wideFunc computes round(a * b / c) with a full-precision intermediate
// product that may exceed 64 bits. It is the single replaceable boundary of
// the arithmetic core.
type wideFunc func(a, b, c int64, mode RoundingMode) (int64, error)

// wideMulDiv is selected exactly once at process start and never changes
// afterwards. Both backends produce bit-identical results for every input
// in range; the big.Int backend exists purely for portability.
var wideMulDiv = probeWide()

// probeWide verifies the machine-word backend against a product that does
// not fit in 64 bits and installs the big.Int backend on any disagreement.
func probeWide() wideFunc {
	const a, b, c = 7378697629483820646, 1000000003, 1000000000
	const want = 7378697651619913534
	if got, err := wideMulDivFast(a, b, c, RoundHalfEven); err == nil && got == want {
		return wideMulDivFast
	}
	return wideMulDivBig
}

// wideMulDivFast computes round(a * b / c) using a 128-bit intermediate
// product built from 64-bit machine words.
func wideMulDivFast(a, b, c int64, mode RoundingMode) (int64, error) {
	if c == 0 {
		return 0, fmt.Errorf("computing [%d * %d / 0]: %w", a, b, ErrDivisionByZero)
	}
	if a == 0 || b == 0 {
		return 0, nil
	}
	neg := ((a < 0) != (b < 0)) != (c < 0)
	uc := uabs(c)
	hi, lo := bits.Mul64(uabs(a), uabs(b))
	if hi >= uc {
		// the unrounded quotient alone needs more than 64 bits
		return 0, fmt.Errorf("computing [%d * %d / %d]: %w", a, b, c, ErrOverflow)
	}
	q, r := bits.Div64(hi, lo, uc)
	q, err := roundMag(q, r, uc, neg, mode)
	if err != nil {
		return 0, fmt.Errorf("computing [%d * %d / %d]: %w", a, b, c, err)
	}
	z, ok := toSigned(q, neg)
	if !ok {
		return 0, fmt.Errorf("computing [%d * %d / %d]: %w", a, b, c, ErrOverflow)
	}
	return z, nil
}

// wideMulDivBig computes round(a * b / c) emulating the wide product with
// arbitrary-precision integers. It must agree with [wideMulDivFast]
// bit-for-bit; the rounding dispatch is shared to guarantee that.
func wideMulDivBig(a, b, c int64, mode RoundingMode) (int64, error) {
	if c == 0 {
		return 0, fmt.Errorf("computing [%d * %d / 0]: %w", a, b, ErrDivisionByZero)
	}
	if a == 0 || b == 0 {
		return 0, nil
	}
	neg := ((a < 0) != (b < 0)) != (c < 0)
	uc := uabs(c)
	p := new(big.Int).Mul(new(big.Int).SetUint64(uabs(a)), new(big.Int).SetUint64(uabs(b)))
	q, r := new(big.Int).QuoRem(p, new(big.Int).SetUint64(uc), new(big.Int))
	if q.BitLen() > 64 {
		return 0, fmt.Errorf("computing [%d * %d / %d]: %w", a, b, c, ErrOverflow)
	}
	qm, err := roundMag(q.Uint64(), r.Uint64(), uc, neg, mode)
	if err != nil {
		return 0, fmt.Errorf("computing [%d * %d / %d]: %w", a, b, c, err)
	}
	z, ok := toSigned(qm, neg)
	if !ok {
		return 0, fmt.Errorf("computing [%d * %d / %d]: %w", a, b, c, ErrOverflow)
	}
	return z, nil
}

// roundMag rounds a magnitude quotient q with remainder r against divisor c.
// neg carries the sign of the exact quotient so that the directed modes
// resolve correctly.
func roundMag(q, r, c uint64, neg bool, mode RoundingMode) (uint64, error) {
	if r == 0 {
		return q, nil
	}
	var inc bool
	switch mode {
	case RoundUp:
		inc = true
	case RoundDown:
		// truncated magnitude already rounds towards zero
	case RoundCeiling:
		inc = !neg
	case RoundFloor:
		inc = neg
	case RoundHalfUp, RoundHalfDown, RoundHalfEven:
		// r < c <= 2^63, so doubling the remainder cannot overflow.
		switch r2 := r << 1; {
		case r2 > c:
			inc = true
		case r2 < c:
			// nearest result is the truncated quotient
		case mode == RoundHalfUp:
			inc = true
		case mode == RoundHalfEven:
			inc = q&1 != 0
		}
	case RoundUnnecessary:
		return 0, ErrInexactResult
	default:
		return 0, fmt.Errorf("unknown rounding mode %d", int(mode))
	}
	if inc {
		if q == math.MaxUint64 {
			return 0, ErrOverflow
		}
		q++
	}
	return q, nil
}

// toSigned converts a magnitude back to int64, applying the sign.
func toSigned(q uint64, neg bool) (int64, bool) {
	if neg {
		switch {
		case q > 1<<63:
			return 0, false
		case q == 1<<63:
			return minMantissa, true
		}
		return -int64(q), true
	}
	if q > math.MaxInt64 {
		return 0, false
	}
	return int64(q), true
}

// mulScaleDown computes round(a * b / 10^digits). The digit count must be
// within the supported window; anything else is a caller bug and fails
// loudly rather than truncating.
func mulScaleDown(a, b int64, digits int, mode RoundingMode) (int64, error) {
	if digits < 1 || digits > maxScale {
		return 0, fmt.Errorf("scaling down by %d digits: %w", digits, ErrScaleRange)
	}
	return wideMulDiv(a, b, pow10[digits], mode)
}

// scaleDivide computes round(a * 10^digits / b).
func scaleDivide(a int64, digits int, b int64, mode RoundingMode) (int64, error) {
	if digits < 1 || digits > maxScale {
		return 0, fmt.Errorf("scaling up by %d digits: %w", digits, ErrScaleRange)
	}
	return wideMulDiv(a, pow10[digits], b, mode)
}
