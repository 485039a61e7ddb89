package batch

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gyeh/timesift/internal/config"
	"github.com/gyeh/timesift/internal/model"
)

// PipelineError wraps an error with the phase where it occurred.
type PipelineError struct {
	Phase string
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Phase, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// Run executes the full batch pipeline: preflight → extract/load → finalize.
func Run(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, cfg *config.Config) (*model.BatchSummary, error) {
	totalStart := time.Now()

	// Phase 1: Preflight
	log.Info().Str("file", cfg.FilePath).Msg("starting preflight")
	pf, err := Preflight(ctx, pool, log, cfg.FilePath, cfg.Force)
	if err != nil {
		return nil, &PipelineError{Phase: "preflight", Err: err}
	}

	if pf.AlreadyLoaded {
		log.Info().
			Str("batch_id", pf.BatchID.String()).
			Str("sha256", pf.FileSHA256).
			Msg("file already extracted, skipping (use --force to re-run)")
		return &model.BatchSummary{
			FilePath:      pf.FilePath,
			FileSHA256:    pf.FileSHA256,
			BatchID:       pf.BatchID.String(),
			DurationTotal: time.Since(totalStart),
		}, nil
	}

	// Phase 2: Extract and load
	log.Info().Msg("starting extraction")
	loadResult, err := Load(ctx, pool, log, pf, cfg.Strategies)
	if err != nil {
		_ = UpdateStatus(ctx, pool, pf.BatchID, "failed")
		return nil, &PipelineError{Phase: "extract", Err: err}
	}

	// Phase 3: Finalize
	if err := UpdateStatus(ctx, pool, pf.BatchID, "complete"); err != nil {
		return nil, &PipelineError{Phase: "finalize", Err: err}
	}

	summary := &model.BatchSummary{
		FilePath:      pf.FilePath,
		FileSHA256:    pf.FileSHA256,
		BatchID:       pf.BatchID.String(),
		RowsRead:      loadResult.RowsRead,
		DatesFound:    loadResult.DatesFound,
		TimesFound:    loadResult.TimesFound,
		RowsEmpty:     loadResult.RowsEmpty,
		DurationLoad:  loadResult.Duration,
		DurationTotal: time.Since(totalStart),
	}

	log.Info().
		Int64("rows_read", summary.RowsRead).
		Int64("dates_found", summary.DatesFound).
		Int64("times_found", summary.TimesFound).
		Int64("rows_empty", summary.RowsEmpty).
		Str("total_duration", summary.DurationTotal.String()).
		Msg("batch pipeline complete")

	return summary, nil
}
