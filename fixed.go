package fixedpoint

import "fmt"

// Fixed is an immutable fixed-point decimal number backed by an int64
// mantissa. The number of fractional decimal digits is fixed by the scale
// marker S, so a Fixed value is exactly one machine word and never
// allocates. The zero value is the numeric value 0.
//
// The numeric value of a Fixed is Mantissa() / 10^Scale().
// Fixed values are safe for concurrent use by multiple goroutines.
type Fixed[S Scale] struct {
	m int64
}

// New returns the value mantissa / 10^scale, where the scale is fixed
// by S. See also [FromInt64], which scales an integral value up.
func New[S Scale](mantissa int64) Fixed[S] {
	return Fixed[S]{m: mantissa}
}

// FromInt64 returns the integral value v at the scale fixed by S.
//
// FromInt64 returns an error if v * 10^scale overflows the mantissa.
func FromInt64[S Scale](v int64) (Fixed[S], error) {
	m, ok := checkedLsh(v, scaleOf[S]())
	if !ok {
		return Fixed[S]{}, fmt.Errorf("converting %d to scale %d: %w", v, scaleOf[S](), ErrOverflow)
	}
	return Fixed[S]{m: m}, nil
}

// FromScaled returns x reinterpreted at the scale fixed by S.
// Widening pads with exact zeros; narrowing is refused with
// [ErrPrecisionLoss]. See [FromScaledRound] for a rounding conversion.
func FromScaled[S Scale](x Scaled) (Fixed[S], error) {
	m, err := rescaleExact(x.Mantissa(), x.Scale(), scaleOf[S]())
	if err != nil {
		return Fixed[S]{}, fmt.Errorf("converting %v to scale %d: %w", x, scaleOf[S](), err)
	}
	return Fixed[S]{m: m}, nil
}

// FromScaledRound returns x converted to the scale fixed by S, rounding
// with mode when the conversion reduces scale.
func FromScaledRound[S Scale](x Scaled, mode RoundingMode) (Fixed[S], error) {
	m, err := rescaleRound(x.Mantissa(), x.Scale(), scaleOf[S](), mode)
	if err != nil {
		return Fixed[S]{}, fmt.Errorf("converting %v to scale %d: %w", x, scaleOf[S](), err)
	}
	return Fixed[S]{m: m}, nil
}

// Mantissa returns the scaled integer representation of x.
func (x Fixed[S]) Mantissa() int64 {
	return x.m
}

// Scale returns the number of digits after the decimal point.
func (x Fixed[S]) Scale() int {
	return scaleOf[S]()
}

// Var returns x as a [Variable] with the same mantissa and scale.
// The conversion is always exact.
func (x Fixed[S]) Var() Variable {
	return Variable{m: x.m, s: int8(scaleOf[S]())}
}

// Zero returns the value 0 at the scale of x.
func (x Fixed[S]) Zero() Fixed[S] {
	return Fixed[S]{}
}

// One returns the value 1 at the scale of x.
func (x Fixed[S]) One() Fixed[S] {
	return Fixed[S]{m: pow10[scaleOf[S]()]}
}

// ULP (Unit in the Last Place) returns the smallest positive value
// representable at the scale of x.
func (x Fixed[S]) ULP() Fixed[S] {
	return Fixed[S]{m: 1}
}

// IsZero returns true if x == 0.
func (x Fixed[S]) IsZero() bool {
	return x.m == 0
}

// IsOne returns true if x == 1.
func (x Fixed[S]) IsOne() bool {
	return x.m == pow10[scaleOf[S]()]
}

// IsMinusOne returns true if x == -1.
func (x Fixed[S]) IsMinusOne() bool {
	return x.m == -pow10[scaleOf[S]()]
}

// Sign returns:
//
//	-1 if x < 0
//	 0 if x == 0
//	+1 if x > 0
func (x Fixed[S]) Sign() int {
	return sign64(x.m)
}

// Neg returns x with the opposite sign.
//
// Neg returns an error if the mantissa is math.MinInt64, whose negation
// is not representable.
func (x Fixed[S]) Neg() (Fixed[S], error) {
	if x.m == minMantissa {
		return Fixed[S]{}, fmt.Errorf("computing [-%v]: %w", x, ErrOverflow)
	}
	return Fixed[S]{m: -x.m}, nil
}

// Abs returns the absolute value of x.
func (x Fixed[S]) Abs() (Fixed[S], error) {
	if x.m >= 0 {
		return x, nil
	}
	return x.Neg()
}

// Cmp compares x and y numerically, regardless of their scales, and
// returns:
//
//	-1 if x < y
//	 0 if x == y
//	+1 if x > y
func (x Fixed[S]) Cmp(y Scaled) int {
	return cmpScaled(x.m, scaleOf[S](), y.Mantissa(), y.Scale())
}

// Equal returns true if x and y are numerically equal.
// Values of different scales compare equal when their aligned mantissas
// match: 1.00 equals 1.0 equals 1.
func (x Fixed[S]) Equal(y Scaled) bool {
	return x.Cmp(y) == 0
}

// Min returns the smaller of x and y.
func (x Fixed[S]) Min(y Fixed[S]) Fixed[S] {
	if x.m <= y.m {
		return x
	}
	return y
}

// Max returns the bigger of x and y.
func (x Fixed[S]) Max(y Fixed[S]) Fixed[S] {
	if x.m >= y.m {
		return x
	}
	return y
}

// Add returns the sum of x and y.
//
// Add returns an error if the sum overflows the mantissa.
func (x Fixed[S]) Add(y Fixed[S]) (Fixed[S], error) {
	z, ok := checkedAdd(x.m, y.m)
	if !ok {
		return Fixed[S]{}, overflowErr("+", x, y)
	}
	return Fixed[S]{m: z}, nil
}

// Sub returns the difference of x and y.
//
// Sub returns an error if the difference overflows the mantissa.
func (x Fixed[S]) Sub(y Fixed[S]) (Fixed[S], error) {
	z, ok := checkedSub(x.m, y.m)
	if !ok {
		return Fixed[S]{}, overflowErr("-", x, y)
	}
	return Fixed[S]{m: z}, nil
}

// Mul returns the product of x and y at the scale of x, rounded with mode.
// The operand y may have any scale. Products by zero, one and minus one
// short-circuit without invoking the wide multiply.
func (x Fixed[S]) Mul(y Scaled, mode RoundingMode) (Fixed[S], error) {
	if x.m == 0 || y.Mantissa() == 0 {
		return Fixed[S]{}, nil
	}
	if isOne(y) {
		return x, nil
	}
	if isMinusOne(y) {
		return x.Neg()
	}
	m, err := mulScaled(x.m, scaleOf[S](), y.Mantissa(), y.Scale(), scaleOf[S](), mode)
	if err != nil {
		return Fixed[S]{}, fmt.Errorf("computing [%v * %v]: %w", x, y, err)
	}
	return Fixed[S]{m: m}, nil
}

// Div returns the quotient of x and y at the scale of x, rounded with mode.
// The operand y may have any scale.
//
// Div returns an error if y is zero.
func (x Fixed[S]) Div(y Scaled, mode RoundingMode) (Fixed[S], error) {
	if y.Mantissa() == 0 {
		return Fixed[S]{}, fmt.Errorf("computing [%v / %v]: %w", x, y, ErrDivisionByZero)
	}
	if x.m == 0 {
		return Fixed[S]{}, nil
	}
	if isOne(y) {
		return x, nil
	}
	if isMinusOne(y) {
		return x.Neg()
	}
	m, err := divScaled(x.m, y.Mantissa(), y.Scale(), mode)
	if err != nil {
		return Fixed[S]{}, fmt.Errorf("computing [%v / %v]: %w", x, y, err)
	}
	return Fixed[S]{m: m}, nil
}

// MulInt64 returns x multiplied by an integral factor. The scale of the
// product is the scale of x.
func (x Fixed[S]) MulInt64(factor int64) (Fixed[S], error) {
	z, ok := checkedMul(x.m, factor)
	if !ok {
		return Fixed[S]{}, fmt.Errorf("computing [%v * %d]: %w", x, factor, ErrOverflow)
	}
	return Fixed[S]{m: z}, nil
}

// DivInt64 returns x divided by an integral divisor, truncated towards
// zero at the scale of x.
func (x Fixed[S]) DivInt64(divisor int64) (Fixed[S], error) {
	switch divisor {
	case 0:
		return Fixed[S]{}, fmt.Errorf("computing [%v / 0]: %w", x, ErrDivisionByZero)
	case 1:
		return x, nil
	case -1:
		return x.Neg()
	}
	return Fixed[S]{m: x.m / divisor}, nil
}

// RemInt64 returns the remainder of dividing x by an integral divisor.
func (x Fixed[S]) RemInt64(divisor int64) (Fixed[S], error) {
	switch divisor {
	case 0:
		return Fixed[S]{}, fmt.Errorf("computing [%v %% 0]: %w", x, ErrDivisionByZero)
	case 1, -1:
		return Fixed[S]{}, nil
	}
	return Fixed[S]{m: x.m % divisor}, nil
}

// Inc returns x + 1.
func (x Fixed[S]) Inc() (Fixed[S], error) {
	z, ok := checkedAdd(x.m, pow10[scaleOf[S]()])
	if !ok {
		return Fixed[S]{}, fmt.Errorf("computing [%v + 1]: %w", x, ErrOverflow)
	}
	return Fixed[S]{m: z}, nil
}

// Dec returns x - 1.
func (x Fixed[S]) Dec() (Fixed[S], error) {
	z, ok := checkedSub(x.m, pow10[scaleOf[S]()])
	if !ok {
		return Fixed[S]{}, fmt.Errorf("computing [%v - 1]: %w", x, ErrOverflow)
	}
	return Fixed[S]{m: z}, nil
}

// Percent returns x scaled by 0.01 as a [Variable]. For scales up to 16
// the conversion only adjusts the scale and is exact; scales 17 and 18
// divide the mantissa instead, truncating towards zero.
func (x Fixed[S]) Percent() Variable {
	return percentScaled(x.m, scaleOf[S]())
}

// Rescale returns x at the given scale. Increasing the scale is always
// exact; decreasing it is refused with [ErrPrecisionLoss]. See also
// [Fixed.RescaleRound].
func (x Fixed[S]) Rescale(scale int) (Variable, error) {
	m, err := rescaleExact(x.m, scaleOf[S](), scale)
	if err != nil {
		return Variable{}, fmt.Errorf("rescaling %v to scale %d: %w", x, scale, err)
	}
	return Variable{m: m, s: int8(scale)}, nil
}

// RescaleRound returns x at the given scale, rounding with mode when the
// scale decreases.
func (x Fixed[S]) RescaleRound(scale int, mode RoundingMode) (Variable, error) {
	m, err := rescaleRound(x.m, scaleOf[S](), scale, mode)
	if err != nil {
		return Variable{}, fmt.Errorf("rescaling %v to scale %d: %w", x, scale, err)
	}
	return Variable{m: m, s: int8(scale)}, nil
}

// String implements the [fmt.Stringer] interface and returns the plain
// decimal representation of x with exactly Scale() fractional digits.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (x Fixed[S]) String() string {
	return formatScaled(x.m, scaleOf[S]())
}
