package fixedpoint

import "fmt"

// varOf reinterprets any fixed-point value as a [Variable] without changing
// mantissa or scale.
func varOf(x Scaled) Variable {
	return Variable{m: x.Mantissa(), s: int8(x.Scale())}
}

// GCmp compares two fixed-point values of any scales numerically.
func GCmp(x, y Scaled) int {
	return cmpScaled(x.Mantissa(), x.Scale(), y.Mantissa(), y.Scale())
}

// GAdd returns the sum of two fixed-point values of any scales. The scale
// of the sum is the bigger of the operand scales, except that adding an
// exact zero returns the other operand unchanged, scale included.
func GAdd(x, y Scaled) (Variable, error) {
	if x.Mantissa() == 0 {
		return varOf(y), nil
	}
	if y.Mantissa() == 0 {
		return varOf(x), nil
	}
	m, s, err := addScaled(x.Mantissa(), x.Scale(), y.Mantissa(), y.Scale())
	if err != nil {
		return Variable{}, overflowErr("+", x, y)
	}
	return Variable{m: m, s: int8(s)}, nil
}

// GSub returns the difference of two fixed-point values of any scales.
// The scale of the difference is the bigger of the operand scales.
func GSub(x, y Scaled) (Variable, error) {
	if y.Mantissa() == 0 {
		return varOf(x), nil
	}
	if x.Mantissa() == 0 {
		return varOf(y).Neg()
	}
	m, s, err := subScaled(x.Mantissa(), x.Scale(), y.Mantissa(), y.Scale())
	if err != nil {
		return Variable{}, overflowErr("-", x, y)
	}
	return Variable{m: m, s: int8(s)}, nil
}

// GMul returns the product of two fixed-point values of any scales,
// rounded with mode. The scale of the product is the scale of the left
// operand, except for the zero/one/minus-one short-circuits, which return
// the surviving operand unchanged.
func GMul(x, y Scaled, mode RoundingMode) (Variable, error) {
	switch {
	case x.Mantissa() == 0:
		return varOf(x), nil
	case y.Mantissa() == 0:
		return varOf(y), nil
	case isOne(x):
		return varOf(y), nil
	case isMinusOne(x):
		return varOf(y).Neg()
	case isOne(y):
		return varOf(x), nil
	case isMinusOne(y):
		return varOf(x).Neg()
	}
	m, err := mulScaled(x.Mantissa(), x.Scale(), y.Mantissa(), y.Scale(), x.Scale(), mode)
	if err != nil {
		return Variable{}, fmt.Errorf("computing [%v * %v]: %w", x, y, err)
	}
	return Variable{m: m, s: int8(x.Scale())}, nil
}

// GMulScale returns the product of two fixed-point values at an explicit
// target scale. Unlike [GMul] followed by a rescale, the product is
// rounded exactly once.
func GMulScale(x, y Scaled, scale int, mode RoundingMode) (Variable, error) {
	if scale < 0 || scale > maxScale {
		return Variable{}, fmt.Errorf("computing [%v * %v] at scale %d: %w", x, y, scale, ErrScaleRange)
	}
	m, err := mulScaled(x.Mantissa(), x.Scale(), y.Mantissa(), y.Scale(), scale, mode)
	if err != nil {
		return Variable{}, fmt.Errorf("computing [%v * %v] at scale %d: %w", x, y, scale, err)
	}
	return Variable{m: m, s: int8(scale)}, nil
}

// GDiv returns the quotient of two fixed-point values of any scales,
// rounded with mode. The scale of the quotient is the scale of the left
// operand.
func GDiv(x, y Scaled, mode RoundingMode) (Variable, error) {
	if y.Mantissa() == 0 {
		return Variable{}, fmt.Errorf("computing [%v / %v]: %w", x, y, ErrDivisionByZero)
	}
	switch {
	case x.Mantissa() == 0:
		return varOf(x), nil
	case isOne(y):
		return varOf(x), nil
	case isMinusOne(y):
		return varOf(x).Neg()
	}
	m, err := divScaled(x.Mantissa(), y.Mantissa(), y.Scale(), mode)
	if err != nil {
		return Variable{}, fmt.Errorf("computing [%v / %v]: %w", x, y, err)
	}
	return Variable{m: m, s: int8(x.Scale())}, nil
}

// GMin returns the smaller of two fixed-point values of any scales.
func GMin(x, y Scaled) Variable {
	if GCmp(x, y) <= 0 {
		return varOf(x)
	}
	return varOf(y)
}

// GMax returns the bigger of two fixed-point values of any scales.
func GMax(x, y Scaled) Variable {
	if GCmp(x, y) >= 0 {
		return varOf(x)
	}
	return varOf(y)
}

// Sum returns the sum of a slice of same-type values.
//
// Sum returns [ErrEmptySum] for an empty slice: without an operand there
// is no scale to anchor a zero to, so the aggregation has no defined
// result and callers must handle the empty case explicitly.
func Sum[S Scale](xs []Fixed[S]) (Fixed[S], error) {
	if len(xs) == 0 {
		return Fixed[S]{}, ErrEmptySum
	}
	z := xs[0]
	var err error
	for _, x := range xs[1:] {
		z, err = z.Add(x)
		if err != nil {
			return Fixed[S]{}, err
		}
	}
	return z, nil
}

// GSum returns the sum of a slice of fixed-point values of any scales,
// folding with [GAdd] from an explicit zero identity. An empty slice
// yields 0 at scale 0.
func GSum(xs []Scaled) (Variable, error) {
	var (
		z   Variable
		err error
	)
	for _, x := range xs {
		z, err = GAdd(z, x)
		if err != nil {
			return Variable{}, err
		}
	}
	return z, nil
}
