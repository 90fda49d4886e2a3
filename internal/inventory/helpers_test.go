package inventory

import (
	"time"

	"capgains/internal/domain"

	"github.com/shopspring/decimal"
)

func dec(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func trade(id string, date time.Time, units, cash float64) domain.Trade {
	return domain.Trade{
		TransactionBase: domain.TransactionBase{
			ID:       id,
			Date:     date,
			Account:  "ACCT-1",
			Security: "XYZ",
		},
		Units:    dec(units),
		Cash:     dec(cash),
		Currency: "USD",
	}
}

// lotFrom opens a lot directly from a trade, bypassing booking.
func lotFrom(t domain.Trade, units, price float64) domain.Lot {
	return domain.Lot{
		OpenTransaction:   t,
		CreateTransaction: t,
		Units:             dec(units),
		Price:             dec(price),
		Currency:          "USD",
	}
}
