package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	dbcmd "namefreq/internal/db"
	"namefreq/internal/fetch"
	"namefreq/internal/plot"
	"namefreq/internal/stats"
)

func main() {
	app := &cli.App{
		Name:  "namefreq",
		Usage: "download, normalize and explore the yearly name-frequency dataset",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to the YAML config file",
				Value: "config.yaml",
			},
			&cli.BoolFlag{
				Name:  "quiet",
				Usage: "only log errors",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "fetch",
				Usage:  "download the dataset archive",
				Action: fetch.FetchAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "url", Usage: "archive URL (overrides config)"},
					&cli.StringFlag{Name: "zip", Usage: "where to save the archive"},
					&cli.StringFlag{Name: "max-age", Value: "24h", Usage: "skip download if the archive is newer than this"},
					&cli.BoolFlag{Name: "force-fetch", Usage: "download even if the archive is fresh"},
					&cli.BoolFlag{Name: "discover", Usage: "scrape the dataset index page for the archive link"},
				},
			},
			{
				Name:   "build",
				Usage:  "flatten the archive's yearly members into the flat CSV",
				Action: fetch.BuildAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "zip", Usage: "archive path (overrides config)"},
					&cli.StringFlag{Name: "out", Usage: "flat CSV output path"},
				},
			},
			{
				Name:   "load",
				Usage:  "load the flat CSV into the SQLite store",
				Action: dbcmd.LoadAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "csv", Usage: "flat CSV path (overrides config)"},
					&cli.StringFlag{Name: "db", Usage: "SQLite database path"},
				},
			},
			{
				Name:   "run",
				Usage:  "fetch, build and load in one pass",
				Action: fetch.RunAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "url", Usage: "archive URL (overrides config)"},
					&cli.StringFlag{Name: "max-age", Value: "24h", Usage: "skip download if the archive is newer than this"},
					&cli.BoolFlag{Name: "force-fetch", Usage: "download even if the archive is fresh"},
				},
			},
			{
				Name:  "stats",
				Usage: "aggregate insights over the flat file or the store",
				Subcommands: []*cli.Command{
					{
						Name:   "essentials",
						Usage:  "head/tail rows and unique-name counts",
						Action: stats.EssentialsAction,
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "csv", Usage: "flat CSV path (overrides config)"},
						},
					},
					{
						Name:   "years",
						Usage:  "yearly totals and their extremes",
						Action: stats.YearsAction,
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "csv", Usage: "flat CSV path (overrides config)"},
							&cli.StringFlag{Name: "db", Usage: "SQLite database path"},
							&cli.BoolFlag{Name: "from-db", Usage: "aggregate in SQLite instead of in memory"},
							&cli.BoolFlag{Name: "full", Usage: "include the full per-year totals"},
						},
					},
					{
						Name:   "top",
						Usage:  "highest-total names per gender",
						Action: stats.TopAction,
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "csv", Usage: "flat CSV path (overrides config)"},
							&cli.StringFlag{Name: "db", Usage: "SQLite database path"},
							&cli.BoolFlag{Name: "from-db", Usage: "aggregate in SQLite instead of in memory"},
							&cli.StringFlag{Name: "gender", Usage: "restrict to M or F"},
							&cli.IntFlag{Name: "top", Value: 10, Usage: "how many names to show"},
						},
					},
					{
						Name:   "neutral",
						Usage:  "names heavily used by both genders",
						Action: stats.NeutralAction,
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "csv", Usage: "flat CSV path (overrides config)"},
							&cli.StringFlag{Name: "db", Usage: "SQLite database path"},
							&cli.BoolFlag{Name: "from-db", Usage: "aggregate in SQLite instead of in memory"},
							&cli.IntFlag{Name: "floor", Usage: "minimum count required on each gender"},
							&cli.IntFlag{Name: "top", Value: 20, Usage: "how many names to show"},
						},
					},
				},
			},
			{
				Name:   "plot",
				Usage:  "render the insight charts as HTML",
				Action: plot.PlotAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "csv", Usage: "flat CSV path (overrides config)"},
					&cli.StringFlag{Name: "chart", Value: "all", Usage: "years, growth, trending or all"},
					&cli.StringFlag{Name: "out-dir", Value: ".", Usage: "directory for rendered charts"},
				},
			},
			{
				Name:   "runs",
				Usage:  "list recorded pipeline runs",
				Action: dbcmd.RunsAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "db", Usage: "SQLite database path"},
					&cli.IntFlag{Name: "limit", Value: 20, Usage: "how many runs to show"},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
