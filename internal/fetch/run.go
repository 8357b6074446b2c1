package fetch

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"namefreq/internal/common"
	dbcmd "namefreq/internal/db"
	"namefreq/models"
	"namefreq/pkg/fetcher"
)

// RunAction executes the whole pipeline: fetch, build, load. Each step
// runs to completion before the next starts; any failure aborts the
// run with no partial-progress recovery.
func RunAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))

	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return err
	}

	url := cfg.DatasetURL
	if c.IsSet("url") {
		url = c.String("url")
	}

	var maxAge time.Duration
	if !c.Bool("force-fetch") {
		maxAge, err = time.ParseDuration(c.String("max-age"))
		if err != nil {
			return fmt.Errorf("invalid max-age duration: %w", err)
		}
	}

	f := fetcher.NewFetcher()
	logger.Info("Fetching archive", "url", url, "path", cfg.ZipPath)
	if _, err := f.DownloadArchive(url, cfg.ZipPath, maxAge); err != nil {
		return err
	}

	memberCount, recordCount, err := build(logger, cfg.ZipPath, cfg.CSVPath)
	if err != nil {
		return err
	}
	logger.Info("Build complete", "members", memberCount, "records", recordCount)

	runID, count, err := dbcmd.Load(logger, cfg.DBPath, cfg.CSVPath, url, cfg.ZipPath)
	if err != nil {
		return err
	}

	fmt.Printf("Pipeline complete: %d members, %d records, run %d\n", memberCount, count, runID)
	return nil
}
