package batch

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gyeh/timesift/internal/parquetread"
	embedsql "github.com/gyeh/timesift/internal/sql"
)

// PreflightResult holds all context resolved during the preflight phase.
type PreflightResult struct {
	// FilePath is the original path passed to Preflight, stored as-is.
	FilePath string
	// FileSHA256 is the hex-encoded SHA-256 digest of the file.
	FileSHA256 string
	// FileSize is the file size in bytes from os.Stat.
	FileSize int64
	// BatchID is a freshly generated UUIDv4 identifying this run. Every
	// result row is tagged with it.
	BatchID uuid.UUID
	// NumRows is the total row count reported by the Parquet file metadata.
	NumRows int64
	// AlreadyLoaded is true when a completed batch for the same file digest
	// exists and force mode is off, signaling the pipeline can skip this file.
	AlreadyLoaded bool
}

// Preflight hashes the file, validates the Parquet schema, and registers the
// batch. With force set, earlier batches for the same file are deleted first.
func Preflight(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, filePath string, force bool) (*PreflightResult, error) {
	start := time.Now()

	sha, size, err := fileDigest(filePath)
	if err != nil {
		return nil, fmt.Errorf("preflight hash: %w", err)
	}

	reader, err := parquetread.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("preflight open: %w", err)
	}
	defer reader.Close()

	if err := parquetread.ValidateSchema(reader.Schema()); err != nil {
		return nil, fmt.Errorf("preflight validate: %w", err)
	}
	numRows := reader.NumRows()

	log.Info().
		Str("file", filepath.Base(filePath)).
		Str("sha256", sha).
		Int64("rows", numRows).
		Dur("duration", time.Since(start)).
		Msg("preflight complete")

	pf := &PreflightResult{
		FilePath:   filePath,
		FileSHA256: sha,
		FileSize:   size,
		BatchID:    uuid.New(),
		NumRows:    numRows,
	}

	var existing uuid.UUID
	err = pool.QueryRow(ctx, embedsql.BatchExists, sha).Scan(&existing)
	switch {
	case err == nil:
		if !force {
			pf.BatchID = existing
			pf.AlreadyLoaded = true
			return pf, nil
		}
		if _, err := pool.Exec(ctx, embedsql.DeleteBatchesForFile, sha); err != nil {
			return nil, fmt.Errorf("preflight delete earlier batches: %w", err)
		}
		log.Info().Str("sha256", sha).Msg("earlier batches deleted for re-run")
	case err == pgx.ErrNoRows:
		// first time for this file
	default:
		return nil, fmt.Errorf("preflight lookup batch: %w", err)
	}

	if _, err := pool.Exec(ctx, embedsql.RegisterBatch, pf.BatchID, filePath, sha); err != nil {
		return nil, fmt.Errorf("preflight register batch: %w", err)
	}
	return pf, nil
}

// UpdateStatus updates the batch status.
func UpdateStatus(ctx context.Context, pool *pgxpool.Pool, batchID uuid.UUID, status string) error {
	_, err := pool.Exec(ctx, embedsql.UpdateBatchStatus, batchID, status)
	return err
}

func fileDigest(path string) (string, int64, error) {
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
