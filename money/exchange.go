package money

import (
	"github.com/pkg/errors"

	"github.com/finvals/fixedpoint"
)

// ExchangeRate is a directed conversion rate between two currencies.
// A rate of EUR/USD 1.0950 converts EUR amounts into USD amounts.
type ExchangeRate struct {
	base  Currency
	quote Currency
	rate  fixedpoint.Variable
}

// NewExchRate builds a rate converting base amounts into quote amounts.
// The rate must be positive, and a rate between a currency and itself
// must be exactly one.
func NewExchRate(base, quote Currency, rate fixedpoint.Variable) (ExchangeRate, error) {
	if rate.Sign() <= 0 {
		return ExchangeRate{}, errors.Errorf("rate %v/%v %v: rate must be positive", base, quote, rate)
	}
	if base == quote && !rate.IsOne() {
		return ExchangeRate{}, errors.Errorf("rate %v/%v %v: identity rate must be one", base, quote, rate)
	}
	return ExchangeRate{base: base, quote: quote, rate: rate}, nil
}

// MustNewExchRate is like [NewExchRate] but panics on error.
func MustNewExchRate(base, quote Currency, rate fixedpoint.Variable) ExchangeRate {
	r, err := NewExchRate(base, quote, rate)
	if err != nil {
		panic(err)
	}
	return r
}

// Base returns the currency being converted from.
func (r ExchangeRate) Base() Currency {
	return r.base
}

// Quote returns the currency being converted to.
func (r ExchangeRate) Quote() Currency {
	return r.quote
}

// Rate returns the numeric rate.
func (r ExchangeRate) Rate() fixedpoint.Variable {
	return r.rate
}

// CanConv reports whether r can convert the given amount.
func (r ExchangeRate) CanConv(a Amount) bool {
	return a.Curr() == r.base
}

// Conv converts a base-currency amount to the quote currency, rounding
// with mode at the quote currency's scale.
func (r ExchangeRate) Conv(a Amount, mode fixedpoint.RoundingMode) (Amount, error) {
	if !r.CanConv(a) {
		return Amount{}, errors.Errorf("converting %v with rate %v/%v: currency mismatch", a, r.base, r.quote)
	}
	v, err := fixedpoint.GMulScale(a.Value(), r.rate, r.quote.Scale(), mode)
	if err != nil {
		return Amount{}, errors.Wrapf(err, "converting %v with rate %v/%v %v", a, r.base, r.quote, r.rate)
	}
	return Amount{curr: r.quote, value: v}, nil
}

// String implements the [fmt.Stringer] interface and returns the
// "EUR/USD 1.0950" form.
func (r ExchangeRate) String() string {
	return r.base.Code() + "/" + r.quote.Code() + " " + r.rate.String()
}
