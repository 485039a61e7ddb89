package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/timesift/internal/batch"
	"github.com/gyeh/timesift/internal/db"
	"github.com/gyeh/timesift/internal/exitcode"
	"github.com/gyeh/timesift/internal/logging"
)

var batchConfigPath string

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Extract dates and times from a Parquet file into the database",
	RunE:  runBatch,
}

func init() {
	f := batchCmd.Flags()
	f.StringVar(&cfg.FilePath, "file", "", "Path to Parquet file (required)")
	f.StringVar(&batchConfigPath, "config", "", "YAML config listing rewrite strategies to try")
	f.BoolVar(&cfg.Force, "force", false, "Re-run even if this file was already extracted")
	_ = batchCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)
	ctx := context.Background()

	if batchConfigPath != "" {
		if err := cfg.LoadFromFile(batchConfigPath); err != nil {
			log.Error().Err(err).Msg("config file invalid")
			os.Exit(exitcode.UsageError)
		}
	}
	if err := cfg.ValidateWithDSN(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	pool, err := db.NewPool(ctx, cfg.DSN)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		os.Exit(exitcode.DBConnError)
	}
	defer pool.Close()

	summary, err := batch.Run(ctx, pool, log, &cfg)
	if err != nil {
		if pe, ok := err.(*batch.PipelineError); ok {
			log.Error().Err(pe.Err).Str("phase", pe.Phase).Msg("batch failed")
			switch pe.Phase {
			case "preflight":
				os.Exit(exitcode.ValidationError)
			case "extract":
				os.Exit(exitcode.CopyError)
			default:
				os.Exit(exitcode.ExtractError)
			}
		}
		log.Error().Err(err).Msg("batch failed")
		os.Exit(exitcode.ExtractError)
	}

	fmt.Printf("Batch complete: %d rows read, %d dates, %d times, %d empty (%.1fs)\n",
		summary.RowsRead, summary.DatesFound, summary.TimesFound, summary.RowsEmpty,
		summary.DurationTotal.Seconds())
	return nil
}
