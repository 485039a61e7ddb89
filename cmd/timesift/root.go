package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/timesift/internal/config"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "timesift",
	Short: "Heuristic date/time extraction from noisy text",
	Long:  "Extracts a single date and a single time of day from noisy free-form text, one message at a time or from Parquet batches bulk-loaded into Postgres via the COPY protocol.",
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.DSN, "dsn", os.Getenv("TIMESIFT_DB_URL"), "Postgres connection string (or set TIMESIFT_DB_URL)")
	pf.StringVar(&cfg.LogFormat, "log-format", "text", "Log format: text or json")
	pf.StringVar(&cfg.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}
