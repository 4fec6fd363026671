package assetbook

import (
	"fmt"
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency amounts are displayed in when none is configured.
const DefaultCurrency = "JPY"

// Money represents a monetary value in a given currency.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M returns the money for value expressed in currency.
func M(value decimal.Decimal, currency string) Money {
	return Money{value: value, cur: currency}
}

// ValidateCurrency returns an error if code is not an ISO 4217 currency known to the formatter.
func ValidateCurrency(code string) error {
	if money.GetCurrency(code) == nil {
		return fmt.Errorf("unknown currency %q", code)
	}
	return nil
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the localized representation of the value, e.g. "¥1,000".
// The value is rounded to the currency's minor unit.
func (m Money) String() string {
	cur := m.currency()
	f := cur.Formatter()
	rounded := m.value.Round(int32(cur.Fraction))
	minor := rounded.Shift(int32(cur.Fraction))
	if minor.Abs().GreaterThan(maxMinor) {
		return formatDecimal(f, rounded)
	}
	return f.Format(minor.IntPart())
}

// maxMinor is the largest amount of minor units the formatter can take.
var maxMinor = decimal.NewFromInt(math.MaxInt64)

// formatDecimal lays out d the way f.Format does, for values out of the int64 range.
func formatDecimal(f *money.Formatter, d decimal.Decimal) string {
	digits, fraction, _ := strings.Cut(d.Abs().StringFixed(int32(f.Fraction)), ".")
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteString(f.Thousand)
		}
		b.WriteRune(r)
	}
	if fraction != "" {
		b.WriteString(f.Decimal)
		b.WriteString(fraction)
	}
	s := strings.Replace(f.Template, "1", b.String(), 1)
	s = strings.Replace(s, "$", f.Grapheme, 1)
	if d.IsNegative() {
		s = "-" + s
	}
	return s
}

// Times returns m multiplied by quantity.
func (m Money) Times(quantity int) Money {
	return Money{value: m.value.Mul(decimal.NewFromInt(int64(quantity))), cur: m.cur}
}
