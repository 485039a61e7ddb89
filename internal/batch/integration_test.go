package batch_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	embeddedpostgres "github.com/fergusstrange/embedded-postgres"
	"github.com/jackc/pgx/v5/pgxpool"
	goparquet "github.com/parquet-go/parquet-go"

	"github.com/gyeh/timesift/internal/batch"
	"github.com/gyeh/timesift/internal/config"
	"github.com/gyeh/timesift/internal/db"
	"github.com/gyeh/timesift/internal/logging"
	"github.com/gyeh/timesift/internal/model"
	"github.com/gyeh/timesift/internal/normalize"
)

const (
	testPort     = 15433
	testDB       = "timesifttest"
	testUser     = "postgres"
	testPassword = "postgres"
)

var (
	testDSN string
	pg      *embeddedpostgres.EmbeddedPostgres
)

func TestMain(m *testing.M) {
	testDSN = fmt.Sprintf("postgresql://%s:%s@localhost:%d/%s?sslmode=disable",
		testUser, testPassword, testPort, testDB)

	pg = embeddedpostgres.NewDatabase(
		embeddedpostgres.DefaultConfig().
			Port(uint32(testPort)).
			Database(testDB).
			Username(testUser).
			Password(testPassword).
			Version(embeddedpostgres.V16).
			StartTimeout(30 * time.Second),
	)

	if err := pg.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "SKIP: embedded postgres unavailable: %v\n", err)
		os.Exit(0)
	}

	code := m.Run()

	if err := pg.Stop(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to stop embedded postgres: %v\n", err)
	}

	os.Exit(code)
}

// setupDB creates a connection pool and applies migrations against a clean schema.
func setupDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	pool, err := pgxpool.New(ctx, testDSN)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}

	if _, err := pool.Exec(ctx, "DROP SCHEMA IF EXISTS extract CASCADE"); err != nil {
		t.Fatalf("drop schema: %v", err)
	}

	log := logging.Discard()
	if err := db.ApplyMigrations(ctx, pool, log); err != nil {
		pool.Close()
		t.Fatalf("migrations: %v", err)
	}

	t.Cleanup(func() { pool.Close() })
	return pool
}

func strptr(s string) *string { return &s }

// writeFixture writes a small message Parquet file and returns its path.
func writeFixture(t *testing.T) string {
	t.Helper()

	messages := []model.MessageRow{
		{MessageID: "m-0001", Text: "We will meet on 09/15/2024 at 3PM."},
		{MessageID: "m-0002", Text: "CHECK IN - 0930"},
		{MessageID: "m-0003", Text: "1704"},
		{MessageID: "m-0004", Text: "all good, thanks"},
		{MessageID: "m-0005", Text: "Lunch at 12:30 PM", Timezone: strptr("PST")},
	}

	path := filepath.Join(t.TempDir(), "messages.parquet")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create fixture: %v", err)
	}
	defer f.Close()

	writer := goparquet.NewGenericWriter[model.MessageRow](f)
	if _, err := writer.Write(messages); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close fixture writer: %v", err)
	}
	return path
}

func TestEndToEnd(t *testing.T) {
	pool := setupDB(t)
	ctx := context.Background()
	log := logging.Discard()

	cfg := &config.Config{
		DSN:        testDSN,
		FilePath:   writeFixture(t),
		LogFormat:  "text",
		Strategies: normalize.StrategyNames(),
	}

	summary, err := batch.Run(ctx, pool, log, cfg)
	if err != nil {
		t.Fatalf("batch.Run: %v", err)
	}

	t.Run("summary_metrics", func(t *testing.T) {
		if summary.RowsRead != 5 {
			t.Errorf("RowsRead: got %d, want 5", summary.RowsRead)
		}
		if summary.DatesFound != 4 {
			t.Errorf("DatesFound: got %d, want 4", summary.DatesFound)
		}
		if summary.TimesFound != 4 {
			t.Errorf("TimesFound: got %d, want 4", summary.TimesFound)
		}
		if summary.RowsEmpty != 1 {
			t.Errorf("RowsEmpty: got %d, want 1", summary.RowsEmpty)
		}
	})

	t.Run("result_rows", func(t *testing.T) {
		type result struct {
			date, clock, military, meridiem, tz *string
			strategy                            string
		}
		get := func(id string) result {
			var r result
			err := pool.QueryRow(ctx,
				`SELECT extracted_date, clock_time, military_time, meridiem, timezone, strategy
				 FROM extract.results WHERE message_id = $1`, id,
			).Scan(&r.date, &r.clock, &r.military, &r.meridiem, &r.tz, &r.strategy)
			if err != nil {
				t.Fatalf("query result %s: %v", id, err)
			}
			return r
		}

		r1 := get("m-0001")
		if r1.date == nil || *r1.date != "09/15/2024" {
			t.Errorf("m-0001 date: got %v, want 09/15/2024", r1.date)
		}
		if r1.military == nil || *r1.military != "15:00" {
			t.Errorf("m-0001 military: got %v, want 15:00", r1.military)
		}
		if r1.clock == nil || *r1.clock != "03:00" || r1.meridiem == nil || *r1.meridiem != "PM" {
			t.Errorf("m-0001 clock: got %v %v", r1.clock, r1.meridiem)
		}
		if r1.strategy != "none" {
			t.Errorf("m-0001 strategy: got %q, want none", r1.strategy)
		}

		r2 := get("m-0002")
		if r2.military == nil || *r2.military != "09:30" {
			t.Errorf("m-0002 military: got %v, want 09:30", r2.military)
		}
		if r2.strategy != "checkin" {
			t.Errorf("m-0002 strategy: got %q, want checkin", r2.strategy)
		}

		r3 := get("m-0003")
		if r3.military == nil || *r3.military != "17:04" {
			t.Errorf("m-0003 military: got %v, want 17:04", r3.military)
		}
		if r3.strategy != "compact" {
			t.Errorf("m-0003 strategy: got %q, want compact", r3.strategy)
		}

		r4 := get("m-0004")
		if r4.date != nil || r4.military != nil {
			t.Errorf("m-0004 should be empty, got date=%v military=%v", r4.date, r4.military)
		}

		r5 := get("m-0005")
		if r5.military == nil || *r5.military != "12:30" {
			t.Errorf("m-0005 military: got %v, want 12:30", r5.military)
		}
		if r5.tz == nil || *r5.tz != "PST" {
			t.Errorf("m-0005 timezone: got %v, want PST", r5.tz)
		}
	})

	t.Run("batch_status_complete", func(t *testing.T) {
		var status string
		err := pool.QueryRow(ctx,
			"SELECT status FROM extract.batches WHERE batch_id = $1", summary.BatchID,
		).Scan(&status)
		if err != nil {
			t.Fatalf("query batch status: %v", err)
		}
		if status != "complete" {
			t.Errorf("status: got %q, want complete", status)
		}
	})

	t.Run("rerun_skips_without_force", func(t *testing.T) {
		again, err := batch.Run(ctx, pool, log, cfg)
		if err != nil {
			t.Fatalf("second run: %v", err)
		}
		if again.RowsRead != 0 {
			t.Errorf("second run read %d rows, want 0", again.RowsRead)
		}
		if again.BatchID != summary.BatchID {
			t.Errorf("second run batch id %s, want the original %s", again.BatchID, summary.BatchID)
		}
	})

	t.Run("force_rerun_replaces_results", func(t *testing.T) {
		forced := *cfg
		forced.Force = true
		again, err := batch.Run(ctx, pool, log, &forced)
		if err != nil {
			t.Fatalf("forced run: %v", err)
		}
		if again.RowsRead != 5 {
			t.Errorf("forced run read %d rows, want 5", again.RowsRead)
		}

		var count int64
		if err := pool.QueryRow(ctx, "SELECT count(*) FROM extract.results").Scan(&count); err != nil {
			t.Fatalf("count results: %v", err)
		}
		if count != 5 {
			t.Errorf("results after forced rerun: got %d, want 5", count)
		}
	})
}

func TestNewPoolSessionParams(t *testing.T) {
	ctx := context.Background()
	pool, err := db.NewPool(ctx, testDSN)
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}
	defer pool.Close()

	var appName string
	if err := pool.QueryRow(ctx, "SHOW application_name").Scan(&appName); err != nil {
		t.Fatalf("show application_name: %v", err)
	}
	if appName != "timesift" {
		t.Errorf("application_name = %q, want timesift", appName)
	}

	var timeout string
	if err := pool.QueryRow(ctx, "SHOW statement_timeout").Scan(&timeout); err != nil {
		t.Fatalf("show statement_timeout: %v", err)
	}
	if timeout != "0" {
		t.Errorf("statement_timeout = %q, want 0", timeout)
	}
}
