package main

import (
	"context"
	"database/sql"
	"errors"
	"os"

	"capgains/internal/currency"
	db "capgains/internal/db/query"
	"capgains/internal/domain"
	"capgains/internal/inventory"
	"capgains/internal/report"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "capgains-replay",
	Short: "Replay a transaction ledger and export realized gains",
	Long: `Replays a normalized transaction csv against an optional prior-period
lot snapshot, translates the realized gains into the functional currency,
and writes the gains and the end-of-period snapshot as csv. With --persist
the snapshot and gains are also committed to the database.`,
	RunE: run,
}

func init() {
	_ = viper.BindEnv("functional_currency", "CAPGAINS_CURRENCY")
	rootCmd.Flags().String("currency", "USD", "Functional (reporting) currency")
	_ = viper.BindPFlag("functional_currency", rootCmd.Flags().Lookup("currency"))

	_ = viper.BindEnv("database.url", "CAPGAINS_DATABASE_URL")
	rootCmd.Flags().String("database-url", "", "PostgreSQL connection string for the fx rate table")
	_ = viper.BindPFlag("database.url", rootCmd.Flags().Lookup("database-url"))

	rootCmd.Flags().String("transactions", "transactions.csv", "Normalized transactions csv")
	_ = viper.BindPFlag("transactions", rootCmd.Flags().Lookup("transactions"))

	rootCmd.Flags().String("snapshot", "", "Prior-period lot snapshot csv")
	_ = viper.BindPFlag("snapshot", rootCmd.Flags().Lookup("snapshot"))

	rootCmd.Flags().String("sort", "fifo", "Lot closing order: fifo, lifo, maxgain or mingain")
	_ = viper.BindPFlag("sort", rootCmd.Flags().Lookup("sort"))

	rootCmd.Flags().String("gains-out", "gains.csv", "Realized gains csv to write")
	_ = viper.BindPFlag("gains_out", rootCmd.Flags().Lookup("gains-out"))

	rootCmd.Flags().String("snapshot-out", "snapshot.csv", "End-of-period snapshot csv to write")
	_ = viper.BindPFlag("snapshot_out", rootCmd.Flags().Lookup("snapshot-out"))

	rootCmd.Flags().Bool("persist", false, "Write the closing snapshot and realized gains to the database")
	_ = viper.BindPFlag("persist", rootCmd.Flags().Lookup("persist"))
}

func run(cmd *cobra.Command, args []string) error {
	sorter, err := inventory.ParseSorter(viper.GetString("sort"))
	if err != nil {
		return err
	}

	portfolio := domain.NewPortfolio()
	if path := viper.GetString("snapshot"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		portfolio, err = report.LoadSnapshot(f)
		f.Close()
		if err != nil {
			return err
		}
		log.Info().Str("Snapshot", path).Int("Pockets", len(portfolio.Pockets())).Msg("loaded prior-period snapshot")
	}

	f, err := os.Open(viper.GetString("transactions"))
	if err != nil {
		return err
	}
	txns, err := report.LoadTransactions(f)
	f.Close()
	if err != nil {
		return err
	}
	log.Info().Int("Transactions", len(txns)).Msg("loaded ledger")

	gains, err := inventory.Replay(portfolio, txns, sorter)
	if err != nil {
		return err
	}

	var source currency.RateSource = currency.MissingRates{}
	var tx *sql.Tx
	if dsn := viper.GetString("database.url"); dsn != "" {
		dbConn, err := db.New(dsn)
		if err != nil {
			return err
		}
		defer dbConn.Close()
		tx, err = dbConn.BeginTx(context.Background(), nil)
		if err != nil {
			return err
		}
		defer tx.Rollback()
		source = db.RateStore{Tx: tx}
	} else if viper.GetBool("persist") {
		return errors.New("--persist requires a database url")
	}

	translator, err := currency.NewTranslator(source, viper.GetString("functional_currency"))
	if err != nil {
		return err
	}
	translated, err := translator.TranslateGains(gains)
	if err != nil {
		return err
	}
	for _, g := range translated {
		log.Debug().Object("Gain", g).Msg("realized")
	}

	out, err := os.Create(viper.GetString("gains_out"))
	if err != nil {
		return err
	}
	if err := report.WriteGains(out, translated); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	snap, err := os.Create(viper.GetString("snapshot_out"))
	if err != nil {
		return err
	}
	if err := report.WriteSnapshot(snap, portfolio); err != nil {
		snap.Close()
		return err
	}
	if err := snap.Close(); err != nil {
		return err
	}

	if viper.GetBool("persist") {
		snapshotID, lots, err := db.SaveSnapshot(context.Background(), tx, portfolio)
		if err != nil {
			return err
		}
		if _, err := db.AddRealizedGains(context.Background(), tx, translated); err != nil {
			return err
		}
		if err := tx.Commit(); err != nil {
			return err
		}
		log.Info().Str("SnapshotID", snapshotID.String()).Int("Lots", len(lots)).Int("Gains", len(translated)).Msg("persisted to db")
	}

	log.Info().Int("Gains", len(translated)).Str("Out", viper.GetString("gains_out")).Msg("replay complete")
	return nil
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("replay failed")
	}
}
