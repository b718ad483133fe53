package money

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/finvals/fixedpoint"
)

// Amount is a monetary amount in a specific currency. The value is held
// at the currency's minor-unit scale, so a USD amount always carries 2
// fractional digits and a JPY amount none.
type Amount struct {
	curr  Currency
	value fixedpoint.Variable
}

// NewAmount binds a value to a currency. A value with fewer fractional
// digits is widened exactly; one with more is rejected, since silently
// dropping minor units is never acceptable in settlement code.
func NewAmount(curr Currency, value fixedpoint.Variable) (Amount, error) {
	v, err := value.Rescale(curr.Scale())
	if err != nil {
		return Amount{}, errors.Wrapf(err, "amount %v %v", curr, value)
	}
	return Amount{curr: curr, value: v}, nil
}

// NewAmountFromScaled binds any fixed-point value to a currency under
// the same exactness rule as [NewAmount].
func NewAmountFromScaled(curr Currency, x fixedpoint.Scaled) (Amount, error) {
	v, err := fixedpoint.NewVariable(x.Mantissa(), x.Scale())
	if err != nil {
		return Amount{}, errors.Wrapf(err, "amount %v %v", curr, x)
	}
	return NewAmount(curr, v)
}

// NewAmountFromMinorUnits builds an amount from a count of minor units,
// so NewAmountFromMinorUnits(USD, 1999) is USD 19.99.
func NewAmountFromMinorUnits(curr Currency, units int64) (Amount, error) {
	v, err := fixedpoint.NewVariable(units, curr.Scale())
	if err != nil {
		return Amount{}, errors.Wrapf(err, "amount %v from %d minor units", curr, units)
	}
	return Amount{curr: curr, value: v}, nil
}

// MustNewAmount is like [NewAmount] but panics on error.
func MustNewAmount(curr Currency, value fixedpoint.Variable) Amount {
	a, err := NewAmount(curr, value)
	if err != nil {
		panic(err)
	}
	return a
}

// ParseAmount reads an amount in the "USD 12.34" form produced by
// [Amount.String].
func ParseAmount(s string) (Amount, error) {
	code, num, ok := strings.Cut(s, " ")
	if !ok {
		return Amount{}, errors.Errorf("parsing amount %q: missing currency separator", s)
	}
	curr, err := ParseCurr(code)
	if err != nil {
		return Amount{}, errors.Wrapf(err, "parsing amount %q", s)
	}
	v, err := fixedpoint.ParseVariable(num)
	if err != nil {
		return Amount{}, errors.Wrapf(err, "parsing amount %q", s)
	}
	return NewAmount(curr, v)
}

// Curr returns the currency of a.
func (a Amount) Curr() Currency {
	return a.curr
}

// Value returns the numeric value of a at the currency's scale.
func (a Amount) Value() fixedpoint.Variable {
	return a.value
}

// MinorUnits returns the value of a as a count of minor units.
func (a Amount) MinorUnits() int64 {
	return a.value.Mantissa()
}

// Sign returns -1, 0 or +1 depending on the sign of a.
func (a Amount) Sign() int {
	return a.value.Sign()
}

// IsZero returns true if a is zero.
func (a Amount) IsZero() bool {
	return a.value.IsZero()
}

// Neg returns a with the opposite sign.
func (a Amount) Neg() (Amount, error) {
	v, err := a.value.Neg()
	if err != nil {
		return Amount{}, errors.Wrapf(err, "negating %v", a)
	}
	return Amount{curr: a.curr, value: v}, nil
}

// Abs returns the absolute value of a.
func (a Amount) Abs() (Amount, error) {
	if a.value.Sign() >= 0 {
		return a, nil
	}
	return a.Neg()
}

// sameCurr fails when two amounts cannot take part in the same
// arithmetic operation.
func (a Amount) sameCurr(b Amount, op string) error {
	if a.curr != b.curr {
		return errors.Errorf("%s %v and %v: currency mismatch", op, a, b)
	}
	return nil
}

// Add returns the sum of two amounts of the same currency.
func (a Amount) Add(b Amount) (Amount, error) {
	if err := a.sameCurr(b, "adding"); err != nil {
		return Amount{}, err
	}
	v, err := a.value.Add(b.value)
	if err != nil {
		return Amount{}, errors.Wrapf(err, "adding %v and %v", a, b)
	}
	return Amount{curr: a.curr, value: v}, nil
}

// Sub returns the difference of two amounts of the same currency.
func (a Amount) Sub(b Amount) (Amount, error) {
	if err := a.sameCurr(b, "subtracting"); err != nil {
		return Amount{}, err
	}
	v, err := a.value.Sub(b.value)
	if err != nil {
		return Amount{}, errors.Wrapf(err, "subtracting %v from %v", b, a)
	}
	return Amount{curr: a.curr, value: v}, nil
}

// Mul returns a scaled by a dimensionless factor, rounded with mode at
// the currency's scale.
func (a Amount) Mul(factor fixedpoint.Scaled, mode fixedpoint.RoundingMode) (Amount, error) {
	v, err := a.value.Mul(factor, mode)
	if err != nil {
		return Amount{}, errors.Wrapf(err, "multiplying %v by %v", a, factor)
	}
	return Amount{curr: a.curr, value: v}, nil
}

// Div returns a divided by a dimensionless divisor, rounded with mode
// at the currency's scale.
func (a Amount) Div(divisor fixedpoint.Scaled, mode fixedpoint.RoundingMode) (Amount, error) {
	v, err := a.value.Div(divisor, mode)
	if err != nil {
		return Amount{}, errors.Wrapf(err, "dividing %v by %v", a, divisor)
	}
	return Amount{curr: a.curr, value: v}, nil
}

// Cmp compares two amounts of the same currency numerically.
func (a Amount) Cmp(b Amount) (int, error) {
	if err := a.sameCurr(b, "comparing"); err != nil {
		return 0, err
	}
	return a.value.Cmp(b.value), nil
}

// Split divides a into parts whose sum is exactly a. The leading parts
// absorb the remainder one minor unit at a time, so no part differs
// from another by more than one minor unit.
func (a Amount) Split(parts int) ([]Amount, error) {
	if parts < 1 {
		return nil, errors.Errorf("splitting %v into %d parts", a, parts)
	}
	quo := a.value.Mantissa() / int64(parts)
	rem := a.value.Mantissa() % int64(parts)
	unit := int64(1)
	if rem < 0 {
		unit = -1
	}
	res := make([]Amount, parts)
	for i := range res {
		m := quo
		if rem != 0 {
			m += unit
			rem -= unit
		}
		v, err := fixedpoint.NewVariable(m, a.value.Scale())
		if err != nil {
			return nil, errors.Wrapf(err, "splitting %v", a)
		}
		res[i] = Amount{curr: a.curr, value: v}
	}
	return res, nil
}

// String implements the [fmt.Stringer] interface and returns the
// "USD 12.34" form.
func (a Amount) String() string {
	return a.curr.Code() + " " + a.value.String()
}

// MarshalText implements [encoding.TextMarshaler].
func (a Amount) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (a *Amount) UnmarshalText(b []byte) error {
	v, err := ParseAmount(string(b))
	if err != nil {
		return err
	}
	*a = v
	return nil
}
