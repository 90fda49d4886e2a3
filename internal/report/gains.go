package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"capgains/internal/currency"

	"github.com/shopspring/decimal"
)

var gainColumns = []string{"account", "security", "open_date", "gain_date", "units", "currency", "cost", "proceeds", "realized", "term"}

// WriteGains exports translated gains, one row each.
func WriteGains(w io.Writer, gains []currency.RealizedGain) error {
	out := csv.NewWriter(w)
	if err := out.Write(gainColumns); err != nil {
		return err
	}
	for _, g := range gains {
		term := "SHORT_TERM"
		if g.LongTerm {
			term = "LONG_TERM"
		}
		record := []string{
			g.Account,
			g.Security,
			g.OpenDate.Format(outDateLayout),
			g.GainDate.Format(outDateLayout),
			g.Units.StringFixed(exportPlaces),
			g.Currency,
			g.Cost.StringFixed(exportPlaces),
			g.Proceeds.StringFixed(exportPlaces),
			g.Realized().StringFixed(exportPlaces),
			term,
		}
		if err := out.Write(record); err != nil {
			return err
		}
	}
	out.Flush()
	return out.Error()
}

// FxRateRow is one parsed fx-rate csv row, bound for the rate table.
type FxRateRow struct {
	FromCurrency string
	ToCurrency   string
	Date         time.Time
	Rate         decimal.Decimal
}

// LoadRates reads fx-rate rows (from_currency, to_currency, date, rate)
// for bulk-loading into the rate table.
func LoadRates(r io.Reader) ([]FxRateRow, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read rates csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("rates csv has no header row")
	}
	ordering, err := determineColumnOrder(records[0], []string{"from_currency", "to_currency", "date", "rate"})
	if err != nil {
		return nil, err
	}

	out := make([]FxRateRow, 0, len(records)-1)
	for i, record := range records[1:] {
		r := row{record: record, columns: ordering}
		date, err := r.date("date")
		if err != nil {
			return nil, fmt.Errorf("rates csv row %d: %w", i+2, err)
		}
		rate, err := r.dec("rate")
		if err != nil {
			return nil, fmt.Errorf("rates csv row %d: %w", i+2, err)
		}
		out = append(out, FxRateRow{
			FromCurrency: r.get("from_currency"),
			ToCurrency:   r.get("to_currency"),
			Date:         date,
			Rate:         rate,
		})
	}
	return out, nil
}
