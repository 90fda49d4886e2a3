package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Gain binds a realizing event to the lot it closed or wrote down. The lot
// is the closed (possibly fractional) copy, not whatever remains in the
// Portfolio afterwards.
type Gain struct {
	Lot         Lot
	Transaction Transaction
	// Price is the per-unit realization amount. Stored explicitly because
	// a return of capital carries an aggregate cash amount, not a share
	// price.
	Price decimal.Decimal
}

// Proceeds is lot units times the realization price.
func (g Gain) Proceeds() decimal.Decimal {
	return g.Lot.Units.Mul(g.Price)
}

// Cost is the basis given up: lot units times lot price.
func (g Gain) Cost() decimal.Decimal {
	return g.Lot.Cost()
}

// Date is the end of the holding period.
func (g Gain) Date() time.Time {
	return g.Transaction.Base().Date
}

// Currency is the currency the realization price is denominated in. Kinds
// that do not carry cash fall back to the lot's own currency.
func (g Gain) Currency() string {
	switch t := g.Transaction.(type) {
	case Trade:
		return t.Currency
	case ReturnOfCapital:
		return t.Currency
	case Exercise:
		return t.Currency
	}
	return g.Lot.Currency
}
