package fixedpoint

import (
	"errors"
	"fmt"
)

// Scaled is the read surface shared by every fixed-point value.
// It is implemented by all [Fixed] instantiations and by [Variable], and is
// what the generic (cross-type) operations accept.
type Scaled interface {
	// Mantissa returns the scaled integer representation; the numeric value
	// is Mantissa() / 10^Scale().
	Mantissa() int64
	// Scale returns the number of fractional decimal digits.
	Scale() int
}

var (
	// ErrDivisionByZero is returned by any division with a zero divisor.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrInexactResult is returned when [RoundUnnecessary] is requested but
	// the operation is not exact.
	ErrInexactResult = errors.New("rounding required but forbidden")
	// ErrPrecisionLoss is returned when a narrowing rescale is requested
	// without a rounding mode.
	ErrPrecisionLoss = errors.New("reducing scale requires a rounding mode")
	// ErrScaleRange is returned when a scale or scale delta falls outside
	// the supported 0..18 digit range.
	ErrScaleRange = errors.New("scale out of range")
	// ErrOverflow is returned when the exact result is not representable
	// in a 64-bit mantissa.
	ErrOverflow = errors.New("fixed-point overflow")
	// ErrEmptySum is returned by [Sum] for an empty input, which has no
	// defined result.
	ErrEmptySum = errors.New("sum of no values")

	errInvalidNumber = errors.New("invalid number")
)

// cmpScaled compares m1/10^s1 with m2/10^s2 and returns -1, 0 or +1.
// The sign check comes first: it is cheap and correct across sign
// boundaries where a subtraction could overflow.
func cmpScaled(m1 int64, s1 int, m2 int64, s2 int) int {
	sign1, sign2 := sign64(m1), sign64(m2)
	switch {
	case sign1 < sign2:
		return -1
	case sign1 > sign2:
		return 1
	case sign1 == 0:
		return 0
	}
	// Both operands are either negative or positive.
	diff := s1 - s2
	if diff == 0 {
		switch {
		case m1 < m2:
			return -1
		case m1 > m2:
			return 1
		}
		return 0
	}
	// Same sign, different scales. Scale the wider operand down first; only
	// a tie forces the exact scale-up comparison, which cannot overflow once
	// the truncated comparison came out even.
	if diff < 0 {
		if d := m1 - m2/pow10[-diff]; d != 0 {
			return sign64(d)
		}
		return sign64(m1*pow10[-diff] - m2)
	}
	if d := m1/pow10[diff] - m2; d != 0 {
		return sign64(d)
	}
	return sign64(m1 - m2*pow10[diff])
}

// alignScaled widens the narrower-scale mantissa so both operands share the
// bigger scale. Narrowing is never done implicitly.
func alignScaled(m1 int64, s1 int, m2 int64, s2 int) (a, b int64, s int, ok bool) {
	switch {
	case s1 == s2:
		return m1, m2, s1, true
	case s1 > s2:
		b, ok = checkedLsh(m2, s1-s2)
		return m1, b, s1, ok
	}
	a, ok = checkedLsh(m1, s2-s1)
	return a, m2, s2, ok
}

// addScaled computes the sum of two values at the bigger of the two scales.
func addScaled(m1 int64, s1 int, m2 int64, s2 int) (int64, int, error) {
	a, b, s, ok := alignScaled(m1, s1, m2, s2)
	if !ok {
		return 0, 0, ErrOverflow
	}
	z, ok := checkedAdd(a, b)
	if !ok {
		return 0, 0, ErrOverflow
	}
	return z, s, nil
}

// subScaled computes the difference of two values at the bigger of the two
// scales.
func subScaled(m1 int64, s1 int, m2 int64, s2 int) (int64, int, error) {
	a, b, s, ok := alignScaled(m1, s1, m2, s2)
	if !ok {
		return 0, 0, ErrOverflow
	}
	z, ok := checkedSub(a, b)
	if !ok {
		return 0, 0, ErrOverflow
	}
	return z, s, nil
}

// mulScaled computes the mantissa of (m1/10^s1) * (m2/10^s2) at the target
// scale. A non-positive digit delta needs no rounding and no wide product;
// otherwise the wide-multiply backend scales the product down exactly.
func mulScaled(m1 int64, s1 int, m2 int64, s2 int, target int, mode RoundingMode) (int64, error) {
	delta := s1 + s2 - target
	if delta <= 0 {
		z, ok := checkedMul(m1, m2)
		if ok {
			z, ok = checkedLsh(z, -delta)
		}
		if !ok {
			return 0, ErrOverflow
		}
		return z, nil
	}
	return mulScaleDown(m1, m2, delta, mode)
}

// divScaled computes the mantissa of (m1/10^s1) / (m2/10^s2) at scale s1.
// The dividend scale cancels out, so only the divisor scale is needed.
func divScaled(m1, m2 int64, s2 int, mode RoundingMode) (int64, error) {
	if m2 == 0 {
		return 0, ErrDivisionByZero
	}
	if s2 == 0 {
		return DivRound(m1, m2, mode)
	}
	return scaleDivide(m1, s2, m2, mode)
}

// rescaleExact converts m/10^s to the target scale without rounding.
// Increasing the scale is always exact; decreasing it is refused.
func rescaleExact(m int64, s, target int) (int64, error) {
	if target < 0 || target > maxScale {
		return 0, ErrScaleRange
	}
	diff := target - s
	if diff < 0 {
		return 0, ErrPrecisionLoss
	}
	z, ok := checkedLsh(m, diff)
	if !ok {
		return 0, ErrOverflow
	}
	return z, nil
}

// rescaleRound converts m/10^s to the target scale, rounding with mode when
// the scale decreases.
func rescaleRound(m int64, s, target int, mode RoundingMode) (int64, error) {
	if target < 0 || target > maxScale {
		return 0, ErrScaleRange
	}
	diff := target - s
	if diff >= 0 {
		z, ok := checkedLsh(m, diff)
		if !ok {
			return 0, ErrOverflow
		}
		return z, nil
	}
	return DivRound(m, pow10[-diff], mode)
}

// percentScaled reinterprets m/10^s scaled by 0.01 by playing with the
// scale. Scales 17 and 18 fold the extra digits into the mantissa instead,
// since the scale cannot exceed 18.
func percentScaled(m int64, s int) Variable {
	switch s {
	case maxScale:
		return Variable{m: m / 100, s: maxScale}
	case maxScale - 1:
		return Variable{m: m / 10, s: maxScale}
	}
	return Variable{m: m, s: int8(s + 2)}
}

func isOne(v Scaled) bool {
	return v.Mantissa() == pow10[v.Scale()]
}

func isMinusOne(v Scaled) bool {
	return v.Mantissa() == -pow10[v.Scale()]
}

// overflowErr wraps ErrOverflow with the operation context.
func overflowErr(op string, x, y Scaled) error {
	return fmt.Errorf("computing [%v %s %v]: %w", x, op, y, ErrOverflow)
}
