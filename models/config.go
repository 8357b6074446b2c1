package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults for the pipeline; every value can be overridden by the
// config file and again by CLI flags.
const (
	DefaultDatasetURL   = "https://www.ssa.gov/oact/babynames/names.zip"
	DefaultIndexURL     = "https://www.ssa.gov/oact/babynames/limits.html"
	DefaultZipPath      = "names.zip"
	DefaultCSVPath      = "data.csv"
	DefaultNeutralFloor = 50000
	DefaultTrendingFrom = 2008
)

// Config holds the pipeline configuration loaded from config.yaml.
type Config struct {
	DatasetURL   string `yaml:"dataset_url"`
	IndexURL     string `yaml:"index_url"`
	ZipPath      string `yaml:"zip_path"`
	CSVPath      string `yaml:"csv_path"`
	DBPath       string `yaml:"db_path"`
	NeutralFloor int    `yaml:"neutral_floor"`
	TrendingFrom int    `yaml:"trending_from"`
}

// DefaultConfig returns a Config populated with the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		DatasetURL:   DefaultDatasetURL,
		IndexURL:     DefaultIndexURL,
		ZipPath:      DefaultZipPath,
		CSVPath:      DefaultCSVPath,
		NeutralFloor: DefaultNeutralFloor,
		TrendingFrom: DefaultTrendingFrom,
	}
}

// LoadConfig reads a YAML config file and merges it over the defaults.
// A missing file is not an error; the defaults are returned.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Re-fill anything the file left empty.
	if cfg.DatasetURL == "" {
		cfg.DatasetURL = DefaultDatasetURL
	}
	if cfg.IndexURL == "" {
		cfg.IndexURL = DefaultIndexURL
	}
	if cfg.ZipPath == "" {
		cfg.ZipPath = DefaultZipPath
	}
	if cfg.CSVPath == "" {
		cfg.CSVPath = DefaultCSVPath
	}
	if cfg.NeutralFloor == 0 {
		cfg.NeutralFloor = DefaultNeutralFloor
	}
	if cfg.TrendingFrom == 0 {
		cfg.TrendingFrom = DefaultTrendingFrom
	}

	return cfg, nil
}
