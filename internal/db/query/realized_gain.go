package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"capgains/internal/currency"
	"capgains/internal/db/models/postgres/public/model"
	. "capgains/internal/db/models/postgres/public/table"
)

func AddRealizedGains(ctx context.Context, tx *sql.Tx, gains []currency.RealizedGain) ([]model.RealizedGain, error) {
	if len(gains) == 0 {
		return nil, nil
	}
	now := time.Now().UTC()
	rows := make([]model.RealizedGain, len(gains))
	for i, g := range gains {
		term := model.TermType_ShortTerm
		if g.LongTerm {
			term = model.TermType_LongTerm
		}
		rows[i] = model.RealizedGain{
			Account:   g.Account,
			Security:  g.Security,
			OpenDate:  g.OpenDate,
			GainDate:  g.GainDate,
			Units:     g.Units,
			Currency:  g.Currency,
			Cost:      g.Cost,
			Proceeds:  g.Proceeds,
			Term:      term,
			CreatedAt: now,
		}
	}

	t := RealizedGain
	stmt := t.INSERT(t.MutableColumns).
		MODELS(rows).
		RETURNING(t.AllColumns)

	result := []model.RealizedGain{}
	err := stmt.QueryContext(ctx, tx, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to insert realized gains: %w", err)
	}

	return result, nil
}
