package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"capgains/internal/domain"

	"github.com/Rhymond/go-money"
)

var snapshotColumns = []string{"account", "security", "open_date", "open_id", "units", "cost", "currency"}

// WriteSnapshot flattens the portfolio into one csv row per lot, the shape
// LoadSnapshot reads back at the start of the next period.
func WriteSnapshot(w io.Writer, p *domain.Portfolio) error {
	out := csv.NewWriter(w)
	if err := out.Write(snapshotColumns); err != nil {
		return err
	}
	for _, pocket := range p.Pockets() {
		for _, lot := range p.Position(pocket) {
			record := []string{
				pocket.Account,
				pocket.Security,
				lot.OpenDate().Format(outDateLayout),
				lot.OpenID(),
				lot.Units.StringFixed(exportPlaces),
				lot.Cost().StringFixed(exportPlaces),
				lot.Currency,
			}
			if err := out.Write(record); err != nil {
				return err
			}
		}
	}
	out.Flush()
	return out.Error()
}

// LoadSnapshot reads a prior-period snapshot into a fresh Portfolio,
// reconstructing each lot with a synthetic opening trade.
func LoadSnapshot(r io.Reader) (*domain.Portfolio, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("snapshot csv has no header row")
	}

	ordering, err := determineColumnOrder(records[0], snapshotColumns)
	if err != nil {
		return nil, err
	}

	p := domain.NewPortfolio()
	for i, record := range records[1:] {
		r := row{record: record, columns: ordering}
		openDate, err := r.date("open_date")
		if err != nil {
			return nil, fmt.Errorf("snapshot csv row %d: %w", i+2, err)
		}
		units, err := r.dec("units")
		if err != nil {
			return nil, fmt.Errorf("snapshot csv row %d: %w", i+2, err)
		}
		cost, err := r.dec("cost")
		if err != nil {
			return nil, fmt.Errorf("snapshot csv row %d: %w", i+2, err)
		}
		code := r.get("currency")
		if money.GetCurrency(code) == nil {
			return nil, fmt.Errorf("snapshot csv row %d: unknown currency code %q", i+2, code)
		}

		pocket, lot, err := domain.SyntheticLot(r.get("account"), r.get("security"), openDate, r.get("open_id"), units, cost, code)
		if err != nil {
			return nil, fmt.Errorf("snapshot csv row %d: %w", i+2, err)
		}
		p.SetPosition(pocket, append(p.Position(pocket), lot))
	}
	return p, nil
}
