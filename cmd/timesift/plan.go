package main

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/timesift/internal/exitcode"
	"github.com/gyeh/timesift/internal/extract"
	"github.com/gyeh/timesift/internal/logging"
	"github.com/gyeh/timesift/internal/model"
	"github.com/gyeh/timesift/internal/parquetread"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Dry-run validation and extraction stats (no writes)",
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().StringVar(&cfg.FilePath, "file", "", "Path to Parquet file (required)")
	_ = planCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	sha, size, err := hashFile(cfg.FilePath)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash file")
		os.Exit(exitcode.ValidationError)
	}

	reader, err := parquetread.Open(cfg.FilePath)
	if err != nil {
		log.Error().Err(err).Msg("failed to open parquet file")
		os.Exit(exitcode.ValidationError)
	}
	defer reader.Close()

	if err := parquetread.ValidateSchema(reader.Schema()); err != nil {
		log.Error().Err(err).Msg("schema validation failed")
		os.Exit(exitcode.ValidationError)
	}

	numRows := reader.NumRows()

	// Sample rows to estimate hit rates. Selector diagnostics are noise
	// here, so they are dropped.
	sampleSize := int64(1000)
	if sampleSize > numRows {
		sampleSize = numRows
	}

	ex := extract.NewDefault(logging.Discard())
	var sampled, dates, times int64
	buf := make([]model.MessageRow, 256)

	for sampled < sampleSize {
		n, readErr := reader.Read(buf)
		for i := 0; i < n && sampled < sampleSize; i++ {
			sampled++
			if _, ok := ex.SingleDate(buf[i].Text); ok {
				dates++
			}
			if _, ok := ex.SingleTime(buf[i].Text); ok {
				times++
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			log.Error().Err(readErr).Msg("failed to read sample rows")
			os.Exit(exitcode.ValidationError)
		}
	}

	fmt.Println("=== timesift plan ===")
	fmt.Printf("File:       %s\n", cfg.FilePath)
	fmt.Printf("SHA-256:    %s\n", sha)
	fmt.Printf("Size:       %d bytes\n", size)
	fmt.Printf("Total rows: %d\n", numRows)
	fmt.Printf("Sampled:    %d rows\n", sampled)
	fmt.Println()
	if sampled > 0 {
		fmt.Printf("Dates found: %6d sampled → ~%d projected\n", dates, dates*numRows/sampled)
		fmt.Printf("Times found: %6d sampled → ~%d projected\n", times, times*numRows/sampled)
	}
	fmt.Println("Schema validation: OK")

	return nil
}

func hashFile(path string) (string, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", 0, err
	}
	defer f.Close()

	h := sha256.New()
	size, err := io.Copy(h, f)
	if err != nil {
		return "", 0, err
	}
	return hex.EncodeToString(h.Sum(nil)), size, nil
}
