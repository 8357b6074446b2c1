package fetch

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/urfave/cli/v2"

	"namefreq/internal/common"
	"namefreq/models"
	"namefreq/pkg/fetcher"
	"namefreq/pkg/flatfile"
	"namefreq/pkg/namezip"
	"namefreq/pkg/normalizer"
)

// FetchAction downloads the dataset archive.
func FetchAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))

	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return err
	}

	url := cfg.DatasetURL
	if c.IsSet("url") {
		url = c.String("url")
	}
	zipPath := cfg.ZipPath
	if c.IsSet("zip") {
		zipPath = c.String("zip")
	}

	f := fetcher.NewFetcher()

	if c.Bool("discover") {
		discovered, err := f.DiscoverArchiveURL(cfg.IndexURL)
		if err != nil {
			return fmt.Errorf("failed to discover archive URL: %w", err)
		}
		logger.Info("Discovered archive URL", "url", discovered)
		url = discovered
	}

	var maxAge time.Duration
	if !c.Bool("force-fetch") {
		maxAge, err = time.ParseDuration(c.String("max-age"))
		if err != nil {
			return fmt.Errorf("invalid max-age duration: %w", err)
		}
	}

	logger.Info("Fetching archive", "url", url, "path", zipPath)
	downloaded, err := f.DownloadArchive(url, zipPath, maxAge)
	if err != nil {
		return err
	}

	if downloaded {
		fmt.Printf("Downloaded %s to %s\n", url, zipPath)
	} else {
		fmt.Printf("Archive %s is fresh, skipping download (use --force-fetch to override)\n", zipPath)
	}
	return nil
}

// BuildAction flattens the archive's yearly members into the flat CSV.
func BuildAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))

	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return err
	}

	zipPath := cfg.ZipPath
	if c.IsSet("zip") {
		zipPath = c.String("zip")
	}
	csvPath := cfg.CSVPath
	if c.IsSet("out") {
		csvPath = c.String("out")
	}

	memberCount, recordCount, err := build(logger, zipPath, csvPath)
	if err != nil {
		return err
	}

	fmt.Printf("Normalized %d members into %d records at %s\n", memberCount, recordCount, csvPath)
	return nil
}

// build runs the normalize pass: archive -> blocks -> records -> CSV.
// Returns the qualifying member count and the record count.
func build(logger *slog.Logger, zipPath, csvPath string) (int, int, error) {
	blocks, err := namezip.Open(zipPath)
	if err != nil {
		return 0, 0, err
	}
	logger.Info("Read archive", "path", zipPath, "members", len(blocks))

	records, err := normalizer.Normalize(blocks)
	if err != nil {
		return 0, 0, err
	}
	logger.Info("Normalized records", "count", len(records))

	if err := flatfile.Write(csvPath, records); err != nil {
		return 0, 0, err
	}
	return len(blocks), len(records), nil
}
