package main

import (
	"context"
	"flag"
	"os"

	"capgains/internal/db/models/postgres/public/model"
	db "capgains/internal/db/query"
	"capgains/internal/report"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// bulk-loads an fx-rate csv into the rate table

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	csvPath := flag.String("csv", "rates.csv", "fx rate csv to load")
	connStr := flag.String("database-url", "", "PostgreSQL connection string")
	flag.Parse()

	f, err := os.Open(*csvPath)
	e(err)
	rows, err := report.LoadRates(f)
	e(err)
	e(f.Close())

	rates := make([]model.FxRate, len(rows))
	for i, r := range rows {
		rates[i] = model.FxRate{
			FromCurrency: r.FromCurrency,
			ToCurrency:   r.ToCurrency,
			Date:         r.Date,
			Rate:         r.Rate,
		}
	}

	dbConn, err := db.New(*connStr)
	e(err)
	defer dbConn.Close()

	tx, err := dbConn.Begin()
	e(err)

	inserted, err := db.AddRates(context.Background(), tx, rates)
	if err != nil {
		tx.Rollback()
		log.Fatal().Err(err).Msg("failed to load rates")
	}
	e(tx.Commit())

	log.Info().Int("Rates", len(inserted)).Str("Csv", *csvPath).Msg("loaded fx rates")
}

func e(err error) {
	if err != nil {
		log.Fatal().Err(err).Msg("rates load failed")
	}
}
