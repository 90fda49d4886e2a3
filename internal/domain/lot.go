package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Lot is an immutable slice of a position with a single cost basis. Every
// transformation produces a new value; Lots referenced by previously
// computed Gains are never touched again.
type Lot struct {
	// OpenTransaction started the tax holding-period clock.
	OpenTransaction Transaction
	// CreateTransaction placed the lot into its current pocket. Equals
	// OpenTransaction for an ordinary opening trade; differs after a
	// transfer, spinoff or exercise.
	CreateTransaction Transaction
	// Units is signed and nonzero; sign is long vs. short.
	Units decimal.Decimal
	// Price is the per-unit cost basis, never negative.
	Price decimal.Decimal
	// Currency is the ISO 4217 code Price is denominated in.
	Currency string
}

// Cost is units times price.
func (l Lot) Cost() decimal.Decimal {
	return l.Units.Mul(l.Price)
}

// OpenDate is the start of the holding period.
func (l Lot) OpenDate() time.Time {
	return l.OpenTransaction.Base().Date
}

// OpenID is the unique id of the opening transaction, or "" when the broker
// supplied none.
func (l Lot) OpenID() string {
	return l.OpenTransaction.Base().ID
}

// WithUnits returns a copy of the lot holding different units at the same
// price and currency.
func (l Lot) WithUnits(units decimal.Decimal) Lot {
	l.Units = units
	return l
}

// WithPrice returns a copy of the lot at a different per-unit price.
func (l Lot) WithPrice(price decimal.Decimal) Lot {
	l.Price = price
	return l
}

// SyntheticLot reconstructs a lot from a flat snapshot row, fabricating an
// opening trade so holding periods and sort order survive a reload.
func SyntheticLot(account, security string, openDate time.Time, openID string, units, cost decimal.Decimal, currency string) (Pocket, Lot, error) {
	if units.IsZero() {
		return Pocket{}, Lot{}, fmt.Errorf("snapshot lot %s/%s (open id %q) has zero units", account, security, openID)
	}
	open := Trade{
		TransactionBase: TransactionBase{
			ID:       openID,
			Date:     openDate,
			Account:  account,
			Security: security,
		},
		Units:    units,
		Cash:     cost.Neg(),
		Currency: currency,
	}
	lot := Lot{
		OpenTransaction:   open,
		CreateTransaction: open,
		Units:             units,
		Price:             cost.Div(units).Abs(),
		Currency:          currency,
	}
	return Pocket{Account: account, Security: security}, lot, nil
}
