package fixedpoint

import "fmt"

// Variable is an immutable fixed-point decimal number whose scale is
// carried per instance rather than fixed by the type. It is the result
// type of scale-changing operations such as [Fixed.Percent] and of the
// generic cross-type arithmetic functions.
// The zero value is the numeric value 0 at scale 0.
type Variable struct {
	m int64
	s int8
}

// NewVariable returns the value mantissa / 10^scale.
//
// NewVariable returns an error if scale is outside the 0..18 range.
func NewVariable(mantissa int64, scale int) (Variable, error) {
	if scale < 0 || scale > maxScale {
		return Variable{}, fmt.Errorf("scale %d: %w", scale, ErrScaleRange)
	}
	return Variable{m: mantissa, s: int8(scale)}, nil
}

// Mantissa returns the scaled integer representation of x.
func (x Variable) Mantissa() int64 {
	return x.m
}

// Scale returns the number of digits after the decimal point.
func (x Variable) Scale() int {
	return int(x.s)
}

// Zero returns the value 0 at the scale of x.
func (x Variable) Zero() Variable {
	return Variable{s: x.s}
}

// One returns the value 1 at the scale of x.
func (x Variable) One() Variable {
	return Variable{m: pow10[x.s], s: x.s}
}

// ULP (Unit in the Last Place) returns the smallest positive value
// representable at the scale of x.
func (x Variable) ULP() Variable {
	return Variable{m: 1, s: x.s}
}

// IsZero returns true if x == 0.
func (x Variable) IsZero() bool {
	return x.m == 0
}

// IsOne returns true if x == 1.
func (x Variable) IsOne() bool {
	return x.m == pow10[x.s]
}

// IsMinusOne returns true if x == -1.
func (x Variable) IsMinusOne() bool {
	return x.m == -pow10[x.s]
}

// Sign returns -1, 0 or +1 depending on the sign of x.
func (x Variable) Sign() int {
	return sign64(x.m)
}

// Neg returns x with the opposite sign.
func (x Variable) Neg() (Variable, error) {
	if x.m == minMantissa {
		return Variable{}, fmt.Errorf("computing [-%v]: %w", x, ErrOverflow)
	}
	return Variable{m: -x.m, s: x.s}, nil
}

// Abs returns the absolute value of x.
func (x Variable) Abs() (Variable, error) {
	if x.m >= 0 {
		return x, nil
	}
	return x.Neg()
}

// Cmp compares x and y numerically, regardless of their scales.
func (x Variable) Cmp(y Scaled) int {
	return cmpScaled(x.m, int(x.s), y.Mantissa(), y.Scale())
}

// Equal returns true if x and y are numerically equal.
func (x Variable) Equal(y Scaled) bool {
	return x.Cmp(y) == 0
}

// Min returns the smaller of x and y.
func (x Variable) Min(y Variable) Variable {
	if x.Cmp(y) <= 0 {
		return x
	}
	return y
}

// Max returns the bigger of x and y.
func (x Variable) Max(y Variable) Variable {
	if x.Cmp(y) >= 0 {
		return x
	}
	return y
}

// Add returns the sum of x and y at the bigger of the two scales.
func (x Variable) Add(y Variable) (Variable, error) {
	m, s, err := addScaled(x.m, int(x.s), y.m, int(y.s))
	if err != nil {
		return Variable{}, overflowErr("+", x, y)
	}
	return Variable{m: m, s: int8(s)}, nil
}

// Sub returns the difference of x and y at the bigger of the two scales.
func (x Variable) Sub(y Variable) (Variable, error) {
	m, s, err := subScaled(x.m, int(x.s), y.m, int(y.s))
	if err != nil {
		return Variable{}, overflowErr("-", x, y)
	}
	return Variable{m: m, s: int8(s)}, nil
}

// Mul returns the product of x and y at the scale of x, rounded with mode.
func (x Variable) Mul(y Scaled, mode RoundingMode) (Variable, error) {
	if x.m == 0 || y.Mantissa() == 0 {
		return x.Zero(), nil
	}
	if isOne(y) {
		return x, nil
	}
	if isMinusOne(y) {
		return x.Neg()
	}
	m, err := mulScaled(x.m, int(x.s), y.Mantissa(), y.Scale(), int(x.s), mode)
	if err != nil {
		return Variable{}, fmt.Errorf("computing [%v * %v]: %w", x, y, err)
	}
	return Variable{m: m, s: x.s}, nil
}

// Div returns the quotient of x and y at the scale of x, rounded with mode.
func (x Variable) Div(y Scaled, mode RoundingMode) (Variable, error) {
	if y.Mantissa() == 0 {
		return Variable{}, fmt.Errorf("computing [%v / %v]: %w", x, y, ErrDivisionByZero)
	}
	if x.m == 0 {
		return x.Zero(), nil
	}
	if isOne(y) {
		return x, nil
	}
	if isMinusOne(y) {
		return x.Neg()
	}
	m, err := divScaled(x.m, y.Mantissa(), y.Scale(), mode)
	if err != nil {
		return Variable{}, fmt.Errorf("computing [%v / %v]: %w", x, y, err)
	}
	return Variable{m: m, s: x.s}, nil
}

// MulInt64 returns x multiplied by an integral factor.
func (x Variable) MulInt64(factor int64) (Variable, error) {
	z, ok := checkedMul(x.m, factor)
	if !ok {
		return Variable{}, fmt.Errorf("computing [%v * %d]: %w", x, factor, ErrOverflow)
	}
	return Variable{m: z, s: x.s}, nil
}

// DivInt64 returns x divided by an integral divisor, truncated towards
// zero at the scale of x.
func (x Variable) DivInt64(divisor int64) (Variable, error) {
	switch divisor {
	case 0:
		return Variable{}, fmt.Errorf("computing [%v / 0]: %w", x, ErrDivisionByZero)
	case 1:
		return x, nil
	case -1:
		return x.Neg()
	}
	return Variable{m: x.m / divisor, s: x.s}, nil
}

// RemInt64 returns the remainder of dividing x by an integral divisor.
func (x Variable) RemInt64(divisor int64) (Variable, error) {
	switch divisor {
	case 0:
		return Variable{}, fmt.Errorf("computing [%v %% 0]: %w", x, ErrDivisionByZero)
	case 1, -1:
		return x.Zero(), nil
	}
	return Variable{m: x.m % divisor, s: x.s}, nil
}

// Inc returns x + 1.
func (x Variable) Inc() (Variable, error) {
	z, ok := checkedAdd(x.m, pow10[x.s])
	if !ok {
		return Variable{}, fmt.Errorf("computing [%v + 1]: %w", x, ErrOverflow)
	}
	return Variable{m: z, s: x.s}, nil
}

// Dec returns x - 1.
func (x Variable) Dec() (Variable, error) {
	z, ok := checkedSub(x.m, pow10[x.s])
	if !ok {
		return Variable{}, fmt.Errorf("computing [%v - 1]: %w", x, ErrOverflow)
	}
	return Variable{m: z, s: x.s}, nil
}

// Percent returns x scaled by 0.01.
func (x Variable) Percent() Variable {
	return percentScaled(x.m, int(x.s))
}

// Rescale returns x at the given scale. Increasing the scale is always
// exact; decreasing it is refused with [ErrPrecisionLoss].
func (x Variable) Rescale(scale int) (Variable, error) {
	m, err := rescaleExact(x.m, int(x.s), scale)
	if err != nil {
		return Variable{}, fmt.Errorf("rescaling %v to scale %d: %w", x, scale, err)
	}
	return Variable{m: m, s: int8(scale)}, nil
}

// RescaleRound returns x at the given scale, rounding with mode when the
// scale decreases.
func (x Variable) RescaleRound(scale int, mode RoundingMode) (Variable, error) {
	m, err := rescaleRound(x.m, int(x.s), scale, mode)
	if err != nil {
		return Variable{}, fmt.Errorf("rescaling %v to scale %d: %w", x, scale, err)
	}
	return Variable{m: m, s: int8(scale)}, nil
}

// String implements the [fmt.Stringer] interface and returns the plain
// decimal representation of x with exactly Scale() fractional digits.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (x Variable) String() string {
	return formatScaled(x.m, int(x.s))
}
