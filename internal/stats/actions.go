// Package stats implements the aggregate-insight commands.
package stats

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"namefreq/models"
	"namefreq/pkg/analytics"
	"namefreq/pkg/db"
	"namefreq/pkg/flatfile"
)

// headTailSize matches the original walkthrough's head()/tail() output.
const headTailSize = 5

// loadRows reads the flat file chosen by flags/config into typed rows.
func loadRows(c *cli.Context) ([]models.Row, *models.Config, error) {
	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return nil, nil, err
	}

	csvPath := cfg.CSVPath
	if c.IsSet("csv") {
		csvPath = c.String("csv")
	}

	rows, err := flatfile.Read(csvPath)
	if err != nil {
		return nil, nil, err
	}
	return rows, cfg, nil
}

// openStore opens the SQLite store chosen by flags/config.
func openStore(c *cli.Context, cfg *models.Config) (*db.DB, error) {
	dbPath := cfg.DBPath
	if c.IsSet("db") {
		dbPath = c.String("db")
	}
	return db.Open(dbPath)
}

func printYAML(v interface{}) error {
	out, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Print(string(out))
	return nil
}

// EssentialsAction prints head/tail rows and unique-name counts.
func EssentialsAction(c *cli.Context) error {
	rows, _, err := loadRows(c)
	if err != nil {
		return err
	}

	return printYAML(analytics.ComputeEssentials(rows, headTailSize))
}

type genderTotals struct {
	Extremes analytics.Extremes    `yaml:"extremes"`
	Totals   []analytics.YearTotal `yaml:"totals,omitempty"`
}

type yearsOutput struct {
	Both   genderTotals `yaml:"both"`
	Male   genderTotals `yaml:"male"`
	Female genderTotals `yaml:"female"`
}

// YearsAction prints yearly totals and their extremes for both genders
// combined and separately.
func YearsAction(c *cli.Context) error {
	full := c.Bool("full")

	var both, male, female []analytics.YearTotal
	if c.Bool("from-db") {
		cfg, err := models.LoadConfig(c.String("config"))
		if err != nil {
			return err
		}
		database, err := openStore(c, cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		if both, err = database.TotalsByYear(""); err != nil {
			return err
		}
		if male, err = database.TotalsByYear(analytics.Male); err != nil {
			return err
		}
		if female, err = database.TotalsByYear(analytics.Female); err != nil {
			return err
		}
	} else {
		rows, _, err := loadRows(c)
		if err != nil {
			return err
		}
		both = analytics.TotalsByYear(rows, "")
		male = analytics.TotalsByYear(rows, analytics.Male)
		female = analytics.TotalsByYear(rows, analytics.Female)
	}

	out := yearsOutput{
		Both:   genderTotals{Extremes: analytics.FindExtremes(both)},
		Male:   genderTotals{Extremes: analytics.FindExtremes(male)},
		Female: genderTotals{Extremes: analytics.FindExtremes(female)},
	}
	if full {
		out.Both.Totals = both
		out.Male.Totals = male
		out.Female.Totals = female
	}
	return printYAML(out)
}

type topOutput struct {
	Male   []analytics.NameTotal `yaml:"male,omitempty"`
	Female []analytics.NameTotal `yaml:"female,omitempty"`
}

// TopAction prints the highest-total names per gender.
func TopAction(c *cli.Context) error {
	n := c.Int("top")
	gender := c.String("gender")

	var out topOutput
	if c.Bool("from-db") {
		cfg, err := models.LoadConfig(c.String("config"))
		if err != nil {
			return err
		}
		database, err := openStore(c, cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		if gender == "" || gender == analytics.Male {
			if out.Male, err = database.TopNames(analytics.Male, n); err != nil {
				return err
			}
		}
		if gender == "" || gender == analytics.Female {
			if out.Female, err = database.TopNames(analytics.Female, n); err != nil {
				return err
			}
		}
	} else {
		rows, _, err := loadRows(c)
		if err != nil {
			return err
		}
		if gender == "" || gender == analytics.Male {
			out.Male = analytics.TopNames(rows, analytics.Male, n)
		}
		if gender == "" || gender == analytics.Female {
			out.Female = analytics.TopNames(rows, analytics.Female, n)
		}
	}

	return printYAML(out)
}

// NeutralAction prints names heavily used by both genders.
func NeutralAction(c *cli.Context) error {
	n := c.Int("top")

	var neutral []analytics.NeutralName
	if c.Bool("from-db") {
		cfg, err := models.LoadConfig(c.String("config"))
		if err != nil {
			return err
		}
		floor := cfg.NeutralFloor
		if c.IsSet("floor") {
			floor = c.Int("floor")
		}

		database, err := openStore(c, cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		if neutral, err = database.GenderNeutral(floor, n); err != nil {
			return err
		}
	} else {
		rows, cfg, err := loadRows(c)
		if err != nil {
			return err
		}
		floor := cfg.NeutralFloor
		if c.IsSet("floor") {
			floor = c.Int("floor")
		}
		neutral = analytics.GenderNeutral(rows, floor, n)
	}

	return printYAML(map[string][]analytics.NeutralName{"neutral": neutral})
}
