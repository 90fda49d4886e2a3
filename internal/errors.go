package capgains_errors

import (
	"fmt"
	"time"

	"capgains/internal/domain"
)

// ErrInconsistent reports a transaction whose structural preconditions do
// not hold against the current Portfolio state: a missing pocket, too few
// open units, or a unit delta outside tolerance. It is fatal for that one
// booking call; the Portfolio is left exactly as it was before the call.
type ErrInconsistent struct {
	Transaction domain.Transaction
	Message     string
}

func (e ErrInconsistent) Error() string {
	base := e.Transaction.Base()
	return fmt.Sprintf("transaction %q (%s %s/%s) inconsistent with portfolio: %s",
		base.ID, base.Date.Format("2006-01-02"), base.Account, base.Security, e.Message)
}

// ErrMissingRate reports that no historical spot rate exists for a currency
// pair on a date, in either direction. There is no default rate.
type ErrMissingRate struct {
	FromCurrency string
	ToCurrency   string
	Date         time.Time
}

func (e ErrMissingRate) Error() string {
	return fmt.Sprintf("no %s/%s rate for %s", e.FromCurrency, e.ToCurrency, e.Date.Format("2006-01-02"))
}
