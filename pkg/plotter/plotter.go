// Package plotter renders the aggregate insights as HTML line charts.
package plotter

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"namefreq/pkg/analytics"
)

// CountsByYear plots the combined, male and female yearly totals as
// three series on one chart and writes it to path.
func CountsByYear(both, male, female []analytics.YearTotal, path string) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Records per Year"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Year"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Records Count"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	years := make([]int, len(both))
	for i, t := range both {
		years[i] = t.Year
	}

	line.SetXAxis(years).
		AddSeries("Both", totalSeries(both, years)).
		AddSeries("Male", totalSeries(male, years)).
		AddSeries("Female", totalSeries(female, years))

	return render(line, path)
}

// GrowthByYear plots per-name yearly percentage shares, one series per
// name, and writes it to path.
func GrowthByYear(title string, series []analytics.GrowthSeries, years []int, path string) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Year"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Percentage by Year"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	line.SetXAxis(years)
	for _, s := range series {
		data := make([]opts.LineData, len(years))
		for i, year := range years {
			data[i] = opts.LineData{Value: s.Shares[year]}
		}
		line.AddSeries(s.Name, data)
	}

	return render(line, path)
}

// totalSeries aligns yearly totals to the shared year axis, filling
// missing years with zero.
func totalSeries(totals []analytics.YearTotal, years []int) []opts.LineData {
	byYear := make(map[int]int, len(totals))
	for _, t := range totals {
		byYear[t.Year] = t.Count
	}

	data := make([]opts.LineData, len(years))
	for i, year := range years {
		data[i] = opts.LineData{Value: byYear[year]}
	}
	return data
}

func render(line *charts.Line, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()

	if err := line.Render(f); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
