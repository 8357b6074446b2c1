package plot

import (
	"fmt"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"namefreq/internal/common"
	"namefreq/models"
	"namefreq/pkg/analytics"
	"namefreq/pkg/flatfile"
	"namefreq/pkg/plotter"
)

// growthTopN is how many name series the growth charts carry.
const growthTopN = 10

// PlotAction renders the requested charts from the flat file.
func PlotAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))

	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return err
	}

	csvPath := cfg.CSVPath
	if c.IsSet("csv") {
		csvPath = c.String("csv")
	}
	outDir := c.String("out-dir")

	rows, err := flatfile.Read(csvPath)
	if err != nil {
		return err
	}
	logger.Info("Read flat file", "path", csvPath, "rows", len(rows))

	chart := c.String("chart")
	rendered := []string{}

	if chart == "years" || chart == "all" {
		path := filepath.Join(outDir, "total_by_year.html")
		both := analytics.TotalsByYear(rows, "")
		male := analytics.TotalsByYear(rows, analytics.Male)
		female := analytics.TotalsByYear(rows, analytics.Female)
		if err := plotter.CountsByYear(both, male, female, path); err != nil {
			return err
		}
		rendered = append(rendered, path)
	}

	if chart == "growth" || chart == "all" {
		path := filepath.Join(outDir, "most_popular_growth.html")
		series, years := analytics.GrowthShares(rows, 0, growthTopN)
		if err := plotter.GrowthByYear("Top 10 Names Growth", series, years, path); err != nil {
			return err
		}
		rendered = append(rendered, path)
	}

	if chart == "trending" || chart == "all" {
		path := filepath.Join(outDir, "trending_names.html")
		series, years := analytics.GrowthShares(rows, cfg.TrendingFrom, growthTopN)
		title := fmt.Sprintf("Top 10 Trending Names (since %d)", cfg.TrendingFrom)
		if err := plotter.GrowthByYear(title, series, years, path); err != nil {
			return err
		}
		rendered = append(rendered, path)
	}

	if len(rendered) == 0 {
		return fmt.Errorf("unknown chart %q (want years, growth, trending or all)", chart)
	}

	for _, path := range rendered {
		fmt.Printf("Rendered %s\n", path)
	}
	return nil
}
