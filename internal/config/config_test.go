package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromFile_Valid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	os.WriteFile(path, []byte("strategies:\n  - checkin\n  - compact\n"), 0644)

	var c Config
	if err := c.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if len(c.Strategies) != 2 {
		t.Fatalf("expected 2 strategies, got %d", len(c.Strategies))
	}
	if c.Strategies[0] != "checkin" || c.Strategies[1] != "compact" {
		t.Errorf("unexpected strategies: %v", c.Strategies)
	}
}

func TestLoadFromFile_UnknownStrategy(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	os.WriteFile(path, []byte("strategies:\n  - checkin\n  - bogus\n"), 0644)

	var c Config
	err := c.LoadFromFile(path)
	if err == nil {
		t.Fatal("expected error for unknown strategy")
	}
}

func TestLoadFromFile_EmptyDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	os.WriteFile(path, []byte("strategies: []\n"), 0644)

	var c Config
	if err := c.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if len(c.Strategies) != 4 {
		t.Errorf("expected 4 default strategies, got %d: %v", len(c.Strategies), c.Strategies)
	}
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	var c Config
	err := c.LoadFromFile("/nonexistent/config.yaml")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidateWithDSN(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "messages.parquet")
	os.WriteFile(path, []byte("x"), 0644)

	c := Config{FilePath: path}
	if err := c.ValidateWithDSN(); err == nil {
		t.Fatal("expected error for missing DSN")
	}
	c.DSN = "postgres://localhost/timesift"
	if err := c.ValidateWithDSN(); err != nil {
		t.Fatalf("ValidateWithDSN: %v", err)
	}
}
