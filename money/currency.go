// Package money provides monetary amounts and exchange rates on top of
// the exact fixed-point arithmetic of the parent package. An amount
// binds a value to an ISO 4217 currency and is always held at the
// currency's minor-unit scale.
package money

import (
	"strings"

	"github.com/pkg/errors"
)

// Currency is an ISO 4217 currency. The zero value is not a valid
// currency; obtain one through [ParseCurr] or [MustParseCurr].
type Currency struct {
	code  string
	num   string
	scale int
}

var errUnknownCurrency = errors.New("unknown currency")

// currencies holds the ISO 4217 registry entries that matter for
// trading and settlement. The scale is the number of minor-unit digits;
// most currencies use 2, a handful use 0 or 3.
var currencies = map[string]Currency{
	"AED": {"AED", "784", 2},
	"AUD": {"AUD", "036", 2},
	"BHD": {"BHD", "048", 3},
	"BRL": {"BRL", "986", 2},
	"CAD": {"CAD", "124", 2},
	"CHF": {"CHF", "756", 2},
	"CLP": {"CLP", "152", 0},
	"CNY": {"CNY", "156", 2},
	"CZK": {"CZK", "203", 2},
	"DKK": {"DKK", "208", 2},
	"EUR": {"EUR", "978", 2},
	"GBP": {"GBP", "826", 2},
	"HKD": {"HKD", "344", 2},
	"HUF": {"HUF", "348", 2},
	"IDR": {"IDR", "360", 2},
	"ILS": {"ILS", "376", 2},
	"INR": {"INR", "356", 2},
	"ISK": {"ISK", "352", 0},
	"JPY": {"JPY", "392", 0},
	"KRW": {"KRW", "410", 0},
	"KWD": {"KWD", "414", 3},
	"MXN": {"MXN", "484", 2},
	"NOK": {"NOK", "578", 2},
	"NZD": {"NZD", "554", 2},
	"OMR": {"OMR", "512", 3},
	"PHP": {"PHP", "608", 2},
	"PLN": {"PLN", "985", 2},
	"RUB": {"RUB", "643", 2},
	"SAR": {"SAR", "682", 2},
	"SEK": {"SEK", "752", 2},
	"SGD": {"SGD", "702", 2},
	"THB": {"THB", "764", 2},
	"TND": {"TND", "788", 3},
	"TRY": {"TRY", "949", 2},
	"TWD": {"TWD", "901", 2},
	"USD": {"USD", "840", 2},
	"VND": {"VND", "704", 0},
	"ZAR": {"ZAR", "710", 2},
}

// ParseCurr resolves a 3-letter ISO 4217 code, case-insensitively.
func ParseCurr(code string) (Currency, error) {
	c, ok := currencies[strings.ToUpper(code)]
	if !ok {
		return Currency{}, errors.Wrapf(errUnknownCurrency, "currency %q", code)
	}
	return c, nil
}

// MustParseCurr is like [ParseCurr] but panics on an unknown code.
func MustParseCurr(code string) Currency {
	c, err := ParseCurr(code)
	if err != nil {
		panic(err)
	}
	return c
}

// Code returns the 3-letter alphabetic code.
func (c Currency) Code() string {
	return c.code
}

// Num returns the 3-digit numeric code.
func (c Currency) Num() string {
	return c.num
}

// Scale returns the number of minor-unit digits. JPY has 0, USD has 2,
// BHD has 3.
func (c Currency) Scale() int {
	return c.scale
}

// String implements the [fmt.Stringer] interface.
func (c Currency) String() string {
	return c.code
}
