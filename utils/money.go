package utils

import "github.com/shopspring/decimal"

// MoneyPrecision is the number of decimal places used when displaying amounts
const MoneyPrecision int32 = 2

// FormatMoney renders amount with a leading currency symbol, e.g. "$15.00"
func FormatMoney(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(MoneyPrecision)
}

// ParseMoney parses a user-supplied amount such as "15", "15.5" or "$15.50"
func ParseMoney(s string) (decimal.Decimal, error) {
	if len(s) > 0 && s[0] == '$' {
		s = s[1:]
	}
	return decimal.NewFromString(s)
}
