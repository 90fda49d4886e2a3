package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"capgains/internal/db/models/postgres/public/model"
	. "capgains/internal/db/models/postgres/public/table"
	"capgains/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/google/uuid"
)

// SaveSnapshot flattens the portfolio into one lot_snapshot row per lot,
// all sharing a fresh snapshot id, and returns that id. An empty portfolio
// produces an id with no rows.
func SaveSnapshot(ctx context.Context, tx *sql.Tx, p *domain.Portfolio) (uuid.UUID, []model.LotSnapshot, error) {
	snapshotID := uuid.New()
	now := time.Now().UTC()

	rows := []model.LotSnapshot{}
	for _, pocket := range p.Pockets() {
		for _, lot := range p.Position(pocket) {
			rows = append(rows, model.LotSnapshot{
				SnapshotID: snapshotID,
				Account:    pocket.Account,
				Security:   pocket.Security,
				OpenDate:   lot.OpenDate(),
				OpenID:     lot.OpenID(),
				Units:      lot.Units,
				Cost:       lot.Cost(),
				Currency:   lot.Currency,
				CreatedAt:  now,
			})
		}
	}
	if len(rows) == 0 {
		return snapshotID, nil, nil
	}

	t := LotSnapshot
	stmt := t.INSERT(t.MutableColumns).
		MODELS(rows).
		RETURNING(t.AllColumns)

	result := []model.LotSnapshot{}
	err := stmt.QueryContext(ctx, tx, &result)
	if err != nil {
		return uuid.Nil, nil, fmt.Errorf("failed to add lot snapshot to db: %w", err)
	}

	return snapshotID, result, nil
}

// GetSnapshot reloads a portfolio from its snapshot rows, reconstructing
// each lot with a synthetic opening trade so holding periods and sort order
// survive the round trip.
func GetSnapshot(ctx context.Context, tx *sql.Tx, snapshotID uuid.UUID) (*domain.Portfolio, error) {
	t := LotSnapshot
	query := t.SELECT(t.AllColumns).
		WHERE(t.SnapshotID.EQ(postgres.String(snapshotID.String()))).
		ORDER_BY(t.OpenDate.ASC(), t.OpenID.ASC())

	result := []model.LotSnapshot{}
	err := query.QueryContext(ctx, tx, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to get lot snapshot %s from db: %w", snapshotID, err)
	}

	p := domain.NewPortfolio()
	for _, row := range result {
		pocket, lot, err := domain.SyntheticLot(row.Account, row.Security, row.OpenDate, row.OpenID, row.Units, row.Cost, row.Currency)
		if err != nil {
			return nil, err
		}
		p.SetPosition(pocket, append(p.Position(pocket), lot))
	}
	return p, nil
}
