package fixedpoint

import "fmt"

// This file provides panicking counterparts for the fallible operations.
// They are handy for package-level variables and tests with hardcoded
// inputs; code handling untrusted values should call the error-returning
// forms instead.

// MustParse is like [Parse] but panics if the string cannot be parsed.
func MustParse[S Scale](num string) Fixed[S] {
	v, err := Parse[S](num)
	if err != nil {
		panic(fmt.Sprintf("Parse(%q) failed: %v", num, err))
	}
	return v
}

// MustParseVariable is like [ParseVariable] but panics if the string
// cannot be parsed.
func MustParseVariable(num string) Variable {
	v, err := ParseVariable(num)
	if err != nil {
		panic(fmt.Sprintf("ParseVariable(%q) failed: %v", num, err))
	}
	return v
}

// MustNewVariable is like [NewVariable] but panics if the scale is out
// of range.
func MustNewVariable(mantissa int64, scale int) Variable {
	v, err := NewVariable(mantissa, scale)
	if err != nil {
		panic(fmt.Sprintf("NewVariable(%v, %v) failed: %v", mantissa, scale, err))
	}
	return v
}

// MustFromScaled is like [FromScaled] but panics on precision loss.
func MustFromScaled[S Scale](x Scaled) Fixed[S] {
	v, err := FromScaled[S](x)
	if err != nil {
		panic(fmt.Sprintf("FromScaled(%q) failed: %v", x, err))
	}
	return v
}

// MustAdd is like [Fixed.Add] but panics on overflow.
func (x Fixed[S]) MustAdd(y Fixed[S]) Fixed[S] {
	z, err := x.Add(y)
	if err != nil {
		panic(fmt.Sprintf("%q.Add(%q) failed: %v", x, y, err))
	}
	return z
}

// MustSub is like [Fixed.Sub] but panics on overflow.
func (x Fixed[S]) MustSub(y Fixed[S]) Fixed[S] {
	z, err := x.Sub(y)
	if err != nil {
		panic(fmt.Sprintf("%q.Sub(%q) failed: %v", x, y, err))
	}
	return z
}

// MustMul is like [Fixed.Mul] but panics on overflow or a forbidden
// rounding.
func (x Fixed[S]) MustMul(y Scaled, mode RoundingMode) Fixed[S] {
	z, err := x.Mul(y, mode)
	if err != nil {
		panic(fmt.Sprintf("%q.Mul(%q, %v) failed: %v", x, y, mode, err))
	}
	return z
}

// MustDiv is like [Fixed.Div] but panics on a zero divisor, overflow or
// a forbidden rounding.
func (x Fixed[S]) MustDiv(y Scaled, mode RoundingMode) Fixed[S] {
	z, err := x.Div(y, mode)
	if err != nil {
		panic(fmt.Sprintf("%q.Div(%q, %v) failed: %v", x, y, mode, err))
	}
	return z
}

// MustNeg is like [Fixed.Neg] but panics on overflow.
func (x Fixed[S]) MustNeg() Fixed[S] {
	z, err := x.Neg()
	if err != nil {
		panic(fmt.Sprintf("%q.Neg() failed: %v", x, err))
	}
	return z
}

// MustAdd is like [Variable.Add] but panics on overflow.
func (x Variable) MustAdd(y Variable) Variable {
	z, err := x.Add(y)
	if err != nil {
		panic(fmt.Sprintf("%q.Add(%q) failed: %v", x, y, err))
	}
	return z
}

// MustSub is like [Variable.Sub] but panics on overflow.
func (x Variable) MustSub(y Variable) Variable {
	z, err := x.Sub(y)
	if err != nil {
		panic(fmt.Sprintf("%q.Sub(%q) failed: %v", x, y, err))
	}
	return z
}

// MustMul is like [Variable.Mul] but panics on overflow or a forbidden
// rounding.
func (x Variable) MustMul(y Scaled, mode RoundingMode) Variable {
	z, err := x.Mul(y, mode)
	if err != nil {
		panic(fmt.Sprintf("%q.Mul(%q, %v) failed: %v", x, y, mode, err))
	}
	return z
}

// MustDiv is like [Variable.Div] but panics on a zero divisor, overflow
// or a forbidden rounding.
func (x Variable) MustDiv(y Scaled, mode RoundingMode) Variable {
	z, err := x.Div(y, mode)
	if err != nil {
		panic(fmt.Sprintf("%q.Div(%q, %v) failed: %v", x, y, mode, err))
	}
	return z
}

// MustNeg is like [Variable.Neg] but panics on overflow.
func (x Variable) MustNeg() Variable {
	z, err := x.Neg()
	if err != nil {
		panic(fmt.Sprintf("%q.Neg() failed: %v", x, err))
	}
	return z
}

// MustRescale is like [Variable.Rescale] but panics on precision loss
// or overflow.
func (x Variable) MustRescale(scale int) Variable {
	z, err := x.Rescale(scale)
	if err != nil {
		panic(fmt.Sprintf("%q.Rescale(%v) failed: %v", x, scale, err))
	}
	return z
}
