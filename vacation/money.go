package vacation

import (
	"strings"

	"github.com/shopspring/decimal"
)

// =============================================================================
// REVENUE PRORATION
// =============================================================================

// DaysPerMonth is the fixed proration divisor. The daily rate is always
// monthlyRevenue/30 regardless of the calendar month's actual length.
// This is carried-over policy, flagged to stakeholders as a simplification,
// not a bug; no month-length-aware variant exists.
const DaysPerMonth = 30

var daysPerMonthDec = decimal.NewFromInt(DaysPerMonth)

// ProportionalDeduction computes the revenue lost to a vacation of the
// given length: monthlyRevenue / 30 * days. Multiplication happens before
// the division so a non-terminating daily rate never truncates the result;
// 1000/30*3 is exactly 100.
func ProportionalDeduction(monthlyRevenue decimal.Decimal, days int) decimal.Decimal {
	return monthlyRevenue.Mul(decimal.NewFromInt(int64(days))).Div(daysPerMonthDec)
}

// MustParseDecimal parses a decimal, returning zero on failure.
func MustParseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// =============================================================================
// CURRENCY DISPLAY - pt-BR BRL
// =============================================================================

// FormatCurrency renders a value in the Brazilian display form,
// e.g. 1234.5 -> "R$ 1.234,50".
func FormatCurrency(v decimal.Decimal) string {
	neg := v.IsNegative()
	fixed := v.Abs().StringFixed(2) // "1234.50"

	intPart, fracPart, _ := strings.Cut(fixed, ".")

	// Insert thousands separators right-to-left.
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	out := "R$ " + b.String() + "," + fracPart
	if neg {
		return "-" + out
	}
	return out
}
