package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/martinmanurung/cinecatalog/internal/platform/config"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.LoadConfig()
	if err != nil {
		zlog.Fatal().Err(err).Msg("Failed to load config")
	}

	flags := pflag.NewFlagSet("importer", pflag.ExitOnError)
	from := flags.String("from", cfg.Dataset.Path, "CSV catalog to read")
	to := flags.String("to", "movies.db", "SQLite database to write")
	table := flags.String("table", cfg.Dataset.Table, "destination table")
	replace := flags.Bool("replace", false, "drop the table before writing")
	_ = flags.Parse(os.Args[1:])

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	importer := NewImporter(*from, *to, *table, *replace, zlog.Logger)
	n, err := importer.Run(ctx)
	if err != nil {
		zlog.Fatal().Err(err).Str("from", *from).Str("to", *to).Msg("Import failed")
	}

	zlog.Info().
		Int("movies", n).
		Str("to", *to).
		Str("table", *table).
		Msg("Import finished")
}
