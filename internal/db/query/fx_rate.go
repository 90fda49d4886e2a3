package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	capgains_errors "capgains/internal"
	"capgains/internal/db/models/postgres/public/model"
	. "capgains/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/shopspring/decimal"
)

// GetRate returns the recorded spot rate for the pair on the given date.
// Absence comes back as ErrMissingRate so the translation layer can try the
// inverse pair.
func GetRate(ctx context.Context, tx *sql.Tx, fromCurrency, toCurrency string, asOf time.Time) (decimal.Decimal, error) {
	t := FxRate
	query := t.SELECT(t.AllColumns).WHERE(
		t.FromCurrency.EQ(postgres.String(fromCurrency)).
			AND(t.ToCurrency.EQ(postgres.String(toCurrency))).
			AND(t.Date.EQ(postgres.DateT(asOf))),
	).LIMIT(1)

	result := model.FxRate{}
	err := query.QueryContext(ctx, tx, &result)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return decimal.Zero, capgains_errors.ErrMissingRate{
				FromCurrency: fromCurrency,
				ToCurrency:   toCurrency,
				Date:         asOf,
			}
		}
		return decimal.Zero, fmt.Errorf("failed to get %s/%s rate from db: %w", fromCurrency, toCurrency, err)
	}
	return result.Rate, nil
}

func AddRates(ctx context.Context, tx *sql.Tx, rates []model.FxRate) ([]model.FxRate, error) {
	t := FxRate
	for i := range rates {
		rates[i].CreatedAt = time.Now().UTC()
	}
	stmt := t.INSERT(t.MutableColumns).
		MODELS(rates).
		RETURNING(t.AllColumns)

	result := []model.FxRate{}
	err := stmt.QueryContext(ctx, tx, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to add fx rates to db: %w", err)
	}

	return result, nil
}

// RateStore adapts a db transaction to the translation layer's RateSource.
type RateStore struct {
	Tx *sql.Tx
}

func (s RateStore) Rate(fromCurrency, toCurrency string, asOf time.Time) (decimal.Decimal, error) {
	return GetRate(context.Background(), s.Tx, fromCurrency, toCurrency, asOf)
}
