package models

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_Missing(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() failed on missing file: %v", err)
	}

	if cfg.DatasetURL != DefaultDatasetURL {
		t.Errorf("DatasetURL = %q, want default", cfg.DatasetURL)
	}
	if cfg.NeutralFloor != DefaultNeutralFloor {
		t.Errorf("NeutralFloor = %d, want %d", cfg.NeutralFloor, DefaultNeutralFloor)
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "csv_path: out/flat.csv\nneutral_floor: 10000\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if cfg.CSVPath != "out/flat.csv" {
		t.Errorf("CSVPath = %q, want out/flat.csv", cfg.CSVPath)
	}
	if cfg.NeutralFloor != 10000 {
		t.Errorf("NeutralFloor = %d, want 10000", cfg.NeutralFloor)
	}
	// Untouched keys keep their defaults.
	if cfg.ZipPath != DefaultZipPath {
		t.Errorf("ZipPath = %q, want default", cfg.ZipPath)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("{not yaml"), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("LoadConfig() succeeded on invalid YAML, want error")
	}
}

func TestParseRow(t *testing.T) {
	row, err := ParseRow(Record{Year: "1880", Name: "Mary", Gender: "F", Count: "7065"})
	if err != nil {
		t.Fatalf("ParseRow() failed: %v", err)
	}
	if row.Year != 1880 || row.Count != 7065 {
		t.Errorf("row = %+v, want year 1880 count 7065", row)
	}

	if _, err := ParseRow(Record{Year: "188x", Count: "1"}); err == nil {
		t.Error("ParseRow() succeeded on bad year, want error")
	}
	if _, err := ParseRow(Record{Year: "1880", Count: "x"}); err == nil {
		t.Error("ParseRow() succeeded on bad count, want error")
	}
}
