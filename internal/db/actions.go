package db

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v2"

	"namefreq/internal/common"
	"namefreq/models"
	"namefreq/pkg/db"
	"namefreq/pkg/flatfile"
)

// LoadAction loads the flat CSV into the SQLite store as a new run.
func LoadAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))

	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return err
	}

	csvPath := cfg.CSVPath
	if c.IsSet("csv") {
		csvPath = c.String("csv")
	}
	dbPath := cfg.DBPath
	if c.IsSet("db") {
		dbPath = c.String("db")
	}

	runID, count, err := Load(logger, dbPath, csvPath, cfg.DatasetURL, cfg.ZipPath)
	if err != nil {
		return err
	}

	fmt.Printf("Loaded %d records from %s as run %d\n", count, csvPath, runID)
	return nil
}

// Load reads the flat file and bulk-inserts its rows as one run.
// The run row is created up front and marked failed if the insert does
// not complete.
func Load(logger *slog.Logger, dbPath, csvPath, sourceURL, zipPath string) (int64, int, error) {
	rows, err := flatfile.Read(csvPath)
	if err != nil {
		return 0, 0, err
	}
	logger.Info("Read flat file", "path", csvPath, "rows", len(rows))

	database, err := db.Open(dbPath)
	if err != nil {
		return 0, 0, err
	}
	defer database.Close()

	runID, err := database.CreateRun(sourceURL, zipPath, csvPath)
	if err != nil {
		return 0, 0, err
	}

	if err := database.InsertRecords(runID, rows); err != nil {
		if failErr := database.FailRun(runID); failErr != nil {
			logger.Error("Failed to mark run failed", "run_id", runID, "error", failErr)
		}
		return 0, 0, err
	}

	// Member count derived from the distinct years loaded.
	years := make(map[int]struct{})
	for _, r := range rows {
		years[r.Year] = struct{}{}
	}

	if err := database.FinishRun(runID, len(years), len(rows)); err != nil {
		return 0, 0, err
	}

	logger.Info("Run complete", "run_id", runID, "records", len(rows))
	return runID, len(rows), nil
}

// RunsAction lists recorded pipeline runs.
func RunsAction(c *cli.Context) error {
	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return err
	}

	dbPath := cfg.DBPath
	if c.IsSet("db") {
		dbPath = c.String("db")
	}

	database, err := db.Open(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	runs, err := database.ListRuns(c.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Println("No runs found")
		return nil
	}

	fmt.Printf("%-6s %-20s %-8s %-10s %-10s %-30s\n",
		"ID", "Created", "Years", "Records", "Status", "Source")
	fmt.Println(strings.Repeat("-", 90))

	for _, r := range runs {
		fmt.Printf("%-6d %-20s %-8d %-10s %-10s %-30s\n",
			r.RunID,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			r.MemberCount,
			common.FormatCount(r.RecordCount),
			r.Status,
			r.SourceURL,
		)
	}

	fmt.Printf("\nTotal: %d runs\n", len(runs))
	return nil
}
