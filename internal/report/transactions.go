package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"capgains/internal/domain"
)

// LoadTransactions reads normalized transaction rows. One row per
// transaction; the `type` column selects the kind and decides which of the
// remaining columns are required. Broker-format parsing happens before
// anything reaches this file.
func LoadTransactions(r io.Reader) ([]domain.Transaction, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read transactions csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("transactions csv has no header row")
	}

	ordering, err := determineColumnOrder(records[0], []string{"type", "date", "account", "security"})
	if err != nil {
		return nil, err
	}

	out := []domain.Transaction{}
	for i, record := range records[1:] {
		txn, err := transactionFromRow(row{record: record, columns: ordering})
		if err != nil {
			return nil, fmt.Errorf("transactions csv row %d: %w", i+2, err)
		}
		out = append(out, txn)
	}
	return out, nil
}

func transactionFromRow(r row) (domain.Transaction, error) {
	date, err := r.date("date")
	if err != nil {
		return nil, err
	}
	settle, err := r.optDate("settle")
	if err != nil {
		return nil, err
	}
	base := domain.TransactionBase{
		ID:       r.get("id"),
		Date:     date,
		Settle:   settle,
		Account:  r.get("account"),
		Security: r.get("security"),
		Memo:     r.get("memo"),
	}

	kind := strings.ToLower(r.get("type"))
	switch kind {
	case "trade":
		units, err := r.dec("units")
		if err != nil {
			return nil, err
		}
		cash, err := r.dec("cash")
		if err != nil {
			return nil, err
		}
		return domain.Trade{TransactionBase: base, Units: units, Cash: cash, Currency: r.get("currency")}, nil

	case "returnofcapital":
		cash, err := r.dec("cash")
		if err != nil {
			return nil, err
		}
		return domain.ReturnOfCapital{TransactionBase: base, Cash: cash, Currency: r.get("currency")}, nil

	case "split":
		numerator, err := r.dec("numerator")
		if err != nil {
			return nil, err
		}
		denominator, err := r.dec("denominator")
		if err != nil {
			return nil, err
		}
		units, err := r.dec("units")
		if err != nil {
			return nil, err
		}
		return domain.Split{TransactionBase: base, Numerator: numerator, Denominator: denominator, Units: units}, nil

	case "transfer":
		units, err := r.dec("units")
		if err != nil {
			return nil, err
		}
		fromUnits, err := r.dec("fromunits")
		if err != nil {
			return nil, err
		}
		return domain.Transfer{
			TransactionBase: base,
			Units:           units,
			FromAccount:     r.get("fromaccount"),
			FromSecurity:    r.get("fromsecurity"),
			FromUnits:       fromUnits,
		}, nil

	case "spinoff":
		units, err := r.dec("units")
		if err != nil {
			return nil, err
		}
		numerator, err := r.dec("numerator")
		if err != nil {
			return nil, err
		}
		denominator, err := r.dec("denominator")
		if err != nil {
			return nil, err
		}
		securityPrice, err := r.optDec("securityprice")
		if err != nil {
			return nil, err
		}
		fromSecurityPrice, err := r.optDec("fromsecurityprice")
		if err != nil {
			return nil, err
		}
		return domain.Spinoff{
			TransactionBase:   base,
			Units:             units,
			Numerator:         numerator,
			Denominator:       denominator,
			FromSecurity:      r.get("fromsecurity"),
			SecurityPrice:     securityPrice,
			FromSecurityPrice: fromSecurityPrice,
		}, nil

	case "exercise":
		units, err := r.dec("units")
		if err != nil {
			return nil, err
		}
		fromUnits, err := r.dec("fromunits")
		if err != nil {
			return nil, err
		}
		cash, err := r.dec("cash")
		if err != nil {
			return nil, err
		}
		return domain.Exercise{
			TransactionBase: base,
			Units:           units,
			FromSecurity:    r.get("fromsecurity"),
			FromUnits:       fromUnits,
			Cash:            cash,
			Currency:        r.get("currency"),
		}, nil

	default:
		return nil, fmt.Errorf("unknown transaction type %q", r.get("type"))
	}
}
