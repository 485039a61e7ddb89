package batch

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gyeh/timesift/internal/db"
	"github.com/gyeh/timesift/internal/extract"
	"github.com/gyeh/timesift/internal/model"
	"github.com/gyeh/timesift/internal/normalize"
	"github.com/gyeh/timesift/internal/parquetread"
)

const readBatchSize = 1024

// LoadResult holds metrics from the extraction/load phase.
type LoadResult struct {
	RowsRead   int64
	RowsLoaded int64
	DatesFound int64
	TimesFound int64
	RowsEmpty  int64
	Duration   time.Duration
}

// rowExtractor runs the configured rewrite strategies over one message.
type rowExtractor struct {
	ex         *extract.Extractor
	strategies []normalize.Strategy
	batchID    uuid.UUID
}

func newRowExtractor(log zerolog.Logger, strategyNames []string, batchID uuid.UUID) (*rowExtractor, error) {
	strategies := make([]normalize.Strategy, 0, len(strategyNames))
	for _, name := range strategyNames {
		s, ok := normalize.StrategyByName(name)
		if !ok {
			return nil, fmt.Errorf("unknown strategy %q", name)
		}
		strategies = append(strategies, s)
	}
	return &rowExtractor{
		ex:         extract.NewDefault(log),
		strategies: strategies,
		batchID:    batchID,
	}, nil
}

// extractRow runs the selectors over the unmodified text first. The rewrite
// strategies are fallbacks for rows where that found nothing; the first
// strategy whose rewrite yields a date or a time wins and is recorded.
func (re *rowExtractor) extractRow(msg *model.MessageRow) *model.ExtractionRow {
	row := &model.ExtractionRow{
		BatchID:   re.batchID,
		MessageID: msg.MessageID,
		Strategy:  "none",
	}

	if re.fill(row, msg.Text) {
		return re.finish(row, msg)
	}

	for _, s := range re.strategies {
		if s.Name() == "none" {
			continue
		}
		rewritten := s.Transform(msg.Text)
		if rewritten == msg.Text {
			continue
		}
		if re.fill(row, rewritten) {
			row.Strategy = s.Name()
			return re.finish(row, msg)
		}
	}
	return re.finish(row, msg)
}

// fill runs both selectors over text and reports whether anything was found.
func (re *rowExtractor) fill(row *model.ExtractionRow, text string) bool {
	row.Date, row.Clock, row.Military, row.Meridiem, row.Timezone = nil, nil, nil, nil, nil
	if d, ok := re.ex.SingleDate(text); ok {
		row.Date = &d
	}
	if t, ok := re.ex.SingleTime(text); ok {
		row.SetTime(t)
	}
	return row.Date != nil || row.Military != nil
}

// finish falls back to the message's own timezone label when the text
// carried none.
func (re *rowExtractor) finish(row *model.ExtractionRow, msg *model.MessageRow) *model.ExtractionRow {
	if row.Timezone == nil && row.Military != nil &&
		msg.Timezone != nil && strings.TrimSpace(*msg.Timezone) != "" {
		tz := strings.TrimSpace(*msg.Timezone)
		row.Timezone = &tz
	}
	return row
}

// Load streams messages from the Parquet file, extracts a date and a time
// from each, and COPY-loads the results via a channel-backed CopyFromSource.
func Load(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, pf *PreflightResult, strategyNames []string) (*LoadResult, error) {
	start := time.Now()

	reader, err := parquetread.Open(pf.FilePath)
	if err != nil {
		return nil, fmt.Errorf("load open: %w", err)
	}
	defer reader.Close()

	re, err := newRowExtractor(log, strategyNames, pf.BatchID)
	if err != nil {
		return nil, fmt.Errorf("load strategies: %w", err)
	}

	ch := make(chan *model.ExtractionRow, readBatchSize)
	errCh := make(chan error, 1)

	var rowsRead, datesFound, timesFound, rowsEmpty atomic.Int64

	// Producer goroutine: read Parquet → extract → push to channel
	go func() {
		defer close(ch)
		buf := make([]model.MessageRow, readBatchSize)

		for {
			n, readErr := reader.Read(buf)
			for i := 0; i < n; i++ {
				rowsRead.Add(1)

				row := re.extractRow(&buf[i])
				if row.Date != nil {
					datesFound.Add(1)
				}
				if row.Military != nil {
					timesFound.Add(1)
				}
				if row.Date == nil && row.Military == nil {
					rowsEmpty.Add(1)
				}

				select {
				case ch <- row:
				case <-ctx.Done():
					errCh <- ctx.Err()
					return
				}
			}
			if readErr == io.EOF {
				break
			}
			if readErr != nil {
				errCh <- fmt.Errorf("read parquet at row %d: %w", rowsRead.Load(), readErr)
				return
			}
		}
		errCh <- nil
	}()

	// Consumer: COPY from channel into the results table
	source := db.NewChannelSource(ch)
	rowsLoaded, err := pool.CopyFrom(ctx,
		pgx.Identifier{"extract", "results"},
		model.ExtractionColumns(),
		source,
	)

	// Wait for producer to finish
	prodErr := <-errCh
	if prodErr != nil {
		return nil, fmt.Errorf("load producer: %w", prodErr)
	}
	if err != nil {
		return nil, fmt.Errorf("load copy: %w", err)
	}

	dur := time.Since(start)
	log.Info().
		Int64("rows_read", rowsRead.Load()).
		Int64("rows_loaded", rowsLoaded).
		Int64("dates_found", datesFound.Load()).
		Int64("times_found", timesFound.Load()).
		Int64("rows_empty", rowsEmpty.Load()).
		Str("duration", dur.String()).
		Float64("rows_per_sec", float64(rowsLoaded)/dur.Seconds()).
		Msg("extraction load complete")

	return &LoadResult{
		RowsRead:   rowsRead.Load(),
		RowsLoaded: rowsLoaded,
		DatesFound: datesFound.Load(),
		TimesFound: timesFound.Load(),
		RowsEmpty:  rowsEmpty.Load(),
		Duration:   dur,
	}, nil
}
