package inventory

import (
	"time"

	"capgains/internal/domain"

	"github.com/shopspring/decimal"
)

// Predicate is a pure test on a lot. A nil Predicate matches every lot.
type Predicate func(domain.Lot) bool

// OpenAsOf matches lots that were in their pocket on or before the given
// datetime.
func OpenAsOf(asOf time.Time) Predicate {
	return func(lot domain.Lot) bool {
		return !lot.CreateTransaction.Base().Date.After(asOf)
	}
}

// LongAsOf matches long lots that were in their pocket on or before the
// given datetime.
func LongAsOf(asOf time.Time) Predicate {
	open := OpenAsOf(asOf)
	return func(lot domain.Lot) bool {
		return lot.Units.IsPositive() && open(lot)
	}
}

// ClosableBy matches lots an incoming signed unit delta can close: already
// in the pocket when the transaction happened, and of the opposite sign.
func ClosableBy(txn domain.Transaction, units decimal.Decimal) Predicate {
	open := OpenAsOf(txn.Base().Date)
	return func(lot domain.Lot) bool {
		return open(lot) && lot.Units.IsPositive() != units.IsPositive()
	}
}
