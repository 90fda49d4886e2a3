package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the closed set of normalized transaction kinds the booking
// layer understands. Broker-format parsing happens upstream; by the time a
// value reaches this package it is immutable.
type Transaction interface {
	Base() TransactionBase
	transaction()
}

// TransactionBase carries the fields shared by every transaction kind.
type TransactionBase struct {
	// ID is the broker-assigned unique id. Used as the sort tiebreak;
	// empty ids sort first.
	ID   string
	Date time.Time
	// Settle is the settlement date. Zero means same-day settlement.
	Settle   time.Time
	Account  string
	Security string
	Memo     string
}

func (b TransactionBase) Base() TransactionBase { return b }

// SettleDate returns the settlement date, falling back to the trade date.
func (b TransactionBase) SettleDate() time.Time {
	if b.Settle.IsZero() {
		return b.Date
	}
	return b.Settle
}

// Trade is a purchase or sale. Units and Cash are signed: a buy has positive
// units and negative cash.
type Trade struct {
	TransactionBase
	Units    decimal.Decimal
	Cash     decimal.Decimal
	Currency string
}

func (Trade) transaction() {}

// ReturnOfCapital is a distribution that writes down cost basis across the
// long lots open on its date. Cash is the aggregate amount, not per share.
type ReturnOfCapital struct {
	TransactionBase
	Cash     decimal.Decimal
	Currency string
}

func (ReturnOfCapital) transaction() {}

// Split changes share count by Numerator/Denominator without changing cost.
// Units is the broker-reported unit delta, validated against the position.
type Split struct {
	TransactionBase
	Numerator   decimal.Decimal
	Denominator decimal.Decimal
	Units       decimal.Decimal
}

func (Split) transaction() {}

// Transfer moves units between pockets. Units is the quantity arriving in
// (Account, Security); FromUnits is the oppositely-signed quantity leaving
// (FromAccount, FromSecurity).
type Transfer struct {
	TransactionBase
	Units        decimal.Decimal
	FromAccount  string
	FromSecurity string
	FromUnits    decimal.Decimal
}

func (Transfer) transaction() {}

// Spinoff distributes Units of a new security for every Denominator units of
// FromSecurity, peeling off cost basis in proportion to fair market value.
// The FMV prices may be unknown, in which case the spun-off shares carry
// zero basis.
type Spinoff struct {
	TransactionBase
	Units             decimal.Decimal
	Numerator         decimal.Decimal
	Denominator       decimal.Decimal
	FromSecurity      string
	SecurityPrice     *decimal.Decimal
	FromSecurityPrice *decimal.Decimal
}

func (Spinoff) transaction() {}

// Exercise converts an option position (FromSecurity) into a position in the
// underlying (Security). Cash is the net exercise cost, folded into the
// basis of the option lots before they move.
type Exercise struct {
	TransactionBase
	Units        decimal.Decimal
	FromSecurity string
	FromUnits    decimal.Decimal
	Cash         decimal.Decimal
	Currency     string
}

func (Exercise) transaction() {}
