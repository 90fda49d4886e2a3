package util

import "github.com/shopspring/decimal"

func DecimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}
