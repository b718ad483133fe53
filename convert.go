package fixedpoint

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// formatScaled renders a mantissa at the given scale as a plain decimal
// string. Scale 0 values have no decimal point; all other scales show
// exactly scale fractional digits, trailing zeros included.
func formatScaled(m int64, scale int) string {
	var buf [24]byte
	pos := len(buf) - 1
	coef := uabs(m)

	for i := 0; i < scale; i++ {
		buf[pos] = byte(coef%10) + '0'
		pos--
		coef /= 10
	}
	if scale > 0 {
		buf[pos] = '.'
		pos--
	}
	for {
		buf[pos] = byte(coef%10) + '0'
		pos--
		coef /= 10
		if coef == 0 {
			break
		}
	}
	if m < 0 {
		buf[pos] = '-'
		pos--
	}
	return string(buf[pos+1:])
}

// parseMantissa converts a plain decimal string to a mantissa at the
// given scale. The number may carry a leading sign and one decimal
// point. More fractional digits than the scale holds is an error, not a
// silent rounding.
func parseMantissa(num string, scale int) (int64, error) {
	pos := 0
	neg := false
	if pos < len(num) {
		switch num[pos] {
		case '-':
			neg = true
			pos++
		case '+':
			pos++
		}
	}
	var (
		coef    uint64
		frac    int
		seenDot bool
		seenDig bool
	)
	for ; pos < len(num); pos++ {
		switch c := num[pos]; {
		case c == '.':
			if seenDot {
				return 0, errInvalidNumber
			}
			seenDot = true
		case c >= '0' && c <= '9':
			seenDig = true
			if seenDot {
				frac++
				if frac > scale {
					return 0, ErrPrecisionLoss
				}
			}
			if coef > (math.MaxUint64-9)/10 {
				return 0, ErrOverflow
			}
			coef = coef*10 + uint64(c-'0')
		default:
			return 0, errInvalidNumber
		}
	}
	if !seenDig {
		return 0, errInvalidNumber
	}
	for ; frac < scale; frac++ {
		if coef > math.MaxUint64/10 {
			return 0, ErrOverflow
		}
		coef *= 10
	}
	switch {
	case neg && coef == 1<<63:
		return minMantissa, nil
	case neg && coef < 1<<63:
		return -int64(coef), nil
	case !neg && coef <= uint64(maxMantissa):
		return int64(coef), nil
	}
	return 0, ErrOverflow
}

// Parse converts a plain decimal string to a fixed-point value at the
// scale of S. The string may have fewer fractional digits than the
// scale, including none, but never more.
func Parse[S Scale](num string) (Fixed[S], error) {
	m, err := parseMantissa(num, scaleOf[S]())
	if err != nil {
		return Fixed[S]{}, fmt.Errorf("parsing %q: %w", num, err)
	}
	return Fixed[S]{m: m}, nil
}

// ParseVariable converts a plain decimal string to a [Variable] whose
// scale is the number of fractional digits in the string.
func ParseVariable(num string) (Variable, error) {
	scale := 0
	if i := strings.IndexByte(num, '.'); i >= 0 {
		scale = len(num) - i - 1
	}
	if scale > maxScale {
		return Variable{}, fmt.Errorf("parsing %q: %w", num, ErrScaleRange)
	}
	m, err := parseMantissa(num, scale)
	if err != nil {
		return Variable{}, fmt.Errorf("parsing %q: %w", num, err)
	}
	return Variable{m: m, s: int8(scale)}, nil
}

const two63 = 9223372036854775808.0

// FromFloat64 converts a float64 to a fixed-point value at the scale of
// S, rounding half away from zero. NaN and infinities are rejected.
func FromFloat64[S Scale](f float64) (Fixed[S], error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Fixed[S]{}, fmt.Errorf("converting %v: %w", f, errInvalidNumber)
	}
	r := math.Round(f * float64(pow10[scaleOf[S]()]))
	if r >= two63 || r < -two63 {
		return Fixed[S]{}, fmt.Errorf("converting %v: %w", f, ErrOverflow)
	}
	return Fixed[S]{m: int64(r)}, nil
}

// VariableFromFloat64 converts a float64 to a [Variable] at the given
// scale, rounding half away from zero.
func VariableFromFloat64(f float64, scale int) (Variable, error) {
	if scale < 0 || scale > maxScale {
		return Variable{}, ErrScaleRange
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Variable{}, fmt.Errorf("converting %v: %w", f, errInvalidNumber)
	}
	r := math.Round(f * float64(pow10[scale]))
	if r >= two63 || r < -two63 {
		return Variable{}, fmt.Errorf("converting %v: %w", f, ErrOverflow)
	}
	return Variable{m: int64(r), s: int8(scale)}, nil
}

// Float64 returns the nearest float64. Mantissas above 2^53 lose
// precision.
func (x Fixed[S]) Float64() float64 {
	return float64(x.m) / float64(pow10[scaleOf[S]()])
}

// Float64 returns the nearest float64. Mantissas above 2^53 lose
// precision.
func (x Variable) Float64() float64 {
	return float64(x.m) / float64(pow10[x.s])
}

func bigPow10(n int) *big.Int {
	if n <= maxScale {
		return big.NewInt(pow10[n])
	}
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}

// mantissaFromDecimal converts an arbitrary-precision decimal to a
// mantissa at the given scale. The conversion is exact: a value with
// more fractional digits than the scale holds is rejected rather than
// rounded.
func mantissaFromDecimal(d decimal.Decimal, scale int) (int64, error) {
	shift := int(d.Exponent()) + scale
	coef := d.Coefficient()
	var r *big.Int
	if shift >= 0 {
		r = new(big.Int).Mul(coef, bigPow10(shift))
	} else {
		var rem big.Int
		r, _ = new(big.Int).QuoRem(coef, bigPow10(-shift), &rem)
		if rem.Sign() != 0 {
			return 0, ErrPrecisionLoss
		}
	}
	if !r.IsInt64() {
		return 0, ErrOverflow
	}
	return r.Int64(), nil
}

// FromDecimal converts an arbitrary-precision decimal to a fixed-point
// value at the scale of S. The conversion must be exact.
func FromDecimal[S Scale](d decimal.Decimal) (Fixed[S], error) {
	m, err := mantissaFromDecimal(d, scaleOf[S]())
	if err != nil {
		return Fixed[S]{}, fmt.Errorf("converting %v: %w", d, err)
	}
	return Fixed[S]{m: m}, nil
}

// VariableFromDecimal converts an arbitrary-precision decimal to a
// [Variable] at the given scale. The conversion must be exact.
func VariableFromDecimal(d decimal.Decimal, scale int) (Variable, error) {
	if scale < 0 || scale > maxScale {
		return Variable{}, ErrScaleRange
	}
	m, err := mantissaFromDecimal(d, scale)
	if err != nil {
		return Variable{}, fmt.Errorf("converting %v: %w", d, err)
	}
	return Variable{m: m, s: int8(scale)}, nil
}

// Decimal returns the value as an arbitrary-precision decimal. The
// conversion is always exact.
func (x Fixed[S]) Decimal() decimal.Decimal {
	return decimal.New(x.m, -int32(scaleOf[S]()))
}

// Decimal returns the value as an arbitrary-precision decimal. The
// conversion is always exact.
func (x Variable) Decimal() decimal.Decimal {
	return decimal.New(x.m, -int32(x.s))
}

// MarshalText implements [encoding.TextMarshaler].
func (x Fixed[S]) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (x *Fixed[S]) UnmarshalText(b []byte) error {
	v, err := Parse[S](string(b))
	if err != nil {
		return err
	}
	*x = v
	return nil
}

// MarshalJSON implements [json.Marshaler]. Values are encoded as JSON
// strings so that no reader can damage them by parsing them as floats.
func (x Fixed[S]) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(x.String())), nil
}

// UnmarshalJSON implements [json.Unmarshaler].
func (x *Fixed[S]) UnmarshalJSON(b []byte) error {
	num, err := strconv.Unquote(string(b))
	if err != nil {
		num = string(b)
	}
	return x.UnmarshalText([]byte(num))
}

// MarshalText implements [encoding.TextMarshaler].
func (x Variable) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (x *Variable) UnmarshalText(b []byte) error {
	v, err := ParseVariable(string(b))
	if err != nil {
		return err
	}
	*x = v
	return nil
}

// MarshalJSON implements [json.Marshaler]. Values are encoded as JSON
// strings so that no reader can damage them by parsing them as floats.
func (x Variable) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(x.String())), nil
}

// UnmarshalJSON implements [json.Unmarshaler].
func (x *Variable) UnmarshalJSON(b []byte) error {
	num, err := strconv.Unquote(string(b))
	if err != nil {
		num = string(b)
	}
	return x.UnmarshalText([]byte(num))
}
