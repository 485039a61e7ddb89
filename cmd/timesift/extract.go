package main

import (
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gyeh/timesift/internal/exitcode"
	"github.com/gyeh/timesift/internal/extract"
	"github.com/gyeh/timesift/internal/logging"
	"github.com/gyeh/timesift/internal/model"
	"github.com/gyeh/timesift/internal/normalize"
)

var (
	extractText     string
	extractStrategy string
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract a date and time from a single piece of text",
	RunE:  runExtract,
}

func init() {
	f := extractCmd.Flags()
	f.StringVar(&extractText, "text", "", "Text to extract from (defaults to stdin)")
	f.StringVar(&extractStrategy, "strategy", "", "Rewrite strategy to try first: "+strings.Join(normalize.StrategyNames(), ", "))
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)

	text := extractText
	if text == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Error().Err(err).Msg("failed to read stdin")
			os.Exit(exitcode.UsageError)
		}
		text = strings.TrimSpace(string(data))
	}
	if text == "" {
		log.Error().Msg("--text or stdin input is required")
		os.Exit(exitcode.UsageError)
	}

	var strat normalize.Strategy
	if extractStrategy != "" {
		s, ok := normalize.StrategyByName(extractStrategy)
		if !ok {
			log.Error().Str("strategy", extractStrategy).Msg("unknown strategy")
			os.Exit(exitcode.UsageError)
		}
		strat = s
	}

	ex := extract.NewDefault(log)
	date, tod := ex.Extract(text, strat)

	out := struct {
		Date *string          `json:"date"`
		Time *model.TimeOfDay `json:"time"`
	}{Date: date, Time: tod}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Error().Err(err).Msg("failed to write result")
		os.Exit(exitcode.ExtractError)
	}

	if date == nil && tod == nil {
		os.Exit(exitcode.PartialSuccess)
	}
	return nil
}
