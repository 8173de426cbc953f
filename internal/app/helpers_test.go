package app

import "github.com/shopspring/decimal"

func testDecimal(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
