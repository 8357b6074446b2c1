// Package analytics computes aggregate insights over typed rows read
// back from the flat file.
package analytics

import (
	"sort"

	"namefreq/models"
)

// Gender codes as they appear in the dataset.
const (
	Male   = "M"
	Female = "F"
)

// Essentials summarizes the table: first and last rows plus unique-name
// counts combined, per gender, and for names used by both genders.
type Essentials struct {
	Head          []models.Row `yaml:"head"`
	Tail          []models.Row `yaml:"tail"`
	UniqueNames   int          `yaml:"unique_names"`
	UniqueMale    int          `yaml:"unique_male"`
	UniqueFemale  int          `yaml:"unique_female"`
	UniqueNeutral int          `yaml:"unique_neutral"`
}

// ComputeEssentials derives the essentials summary. Head and tail hold
// up to n rows each, in table order.
func ComputeEssentials(rows []models.Row, n int) Essentials {
	e := Essentials{}

	if len(rows) <= n {
		e.Head = rows
		e.Tail = rows
	} else {
		e.Head = rows[:n]
		e.Tail = rows[len(rows)-n:]
	}

	all := make(map[string]struct{})
	male := make(map[string]struct{})
	female := make(map[string]struct{})
	for _, r := range rows {
		all[r.Name] = struct{}{}
		switch r.Gender {
		case Male:
			male[r.Name] = struct{}{}
		case Female:
			female[r.Name] = struct{}{}
		}
	}

	e.UniqueNames = len(all)
	e.UniqueMale = len(male)
	e.UniqueFemale = len(female)
	for name := range male {
		if _, ok := female[name]; ok {
			e.UniqueNeutral++
		}
	}

	return e
}

// YearTotal is the summed count of one year.
type YearTotal struct {
	Year  int `yaml:"year"`
	Count int `yaml:"count"`
}

// TotalsByYear sums counts per year, sorted by year ascending.
// gender filters to M or F; empty string combines both.
func TotalsByYear(rows []models.Row, gender string) []YearTotal {
	byYear := make(map[int]int)
	for _, r := range rows {
		if gender != "" && r.Gender != gender {
			continue
		}
		byYear[r.Year] += r.Count
	}

	totals := make([]YearTotal, 0, len(byYear))
	for year, count := range byYear {
		totals = append(totals, YearTotal{Year: year, Count: count})
	}
	sort.Slice(totals, func(i, j int) bool {
		return totals[i].Year < totals[j].Year
	})
	return totals
}

// Extremes holds the lowest and highest yearly totals.
type Extremes struct {
	MinYear  int `yaml:"min_year"`
	MinCount int `yaml:"min_count"`
	MaxYear  int `yaml:"max_year"`
	MaxCount int `yaml:"max_count"`
}

// FindExtremes scans yearly totals for their minimum and maximum.
func FindExtremes(totals []YearTotal) Extremes {
	var ex Extremes
	for i, t := range totals {
		if i == 0 || t.Count < ex.MinCount {
			ex.MinYear, ex.MinCount = t.Year, t.Count
		}
		if i == 0 || t.Count > ex.MaxCount {
			ex.MaxYear, ex.MaxCount = t.Year, t.Count
		}
	}
	return ex
}

// NameTotal is the summed count of one name.
type NameTotal struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

// TopNames sums counts grouped by name for one gender and returns the
// top n, descending by count. Ties break alphabetically so the order
// is stable.
func TopNames(rows []models.Row, gender string, n int) []NameTotal {
	byName := make(map[string]int)
	for _, r := range rows {
		if gender != "" && r.Gender != gender {
			continue
		}
		byName[r.Name] += r.Count
	}

	totals := make([]NameTotal, 0, len(byName))
	for name, count := range byName {
		totals = append(totals, NameTotal{Name: name, Count: count})
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Count != totals[j].Count {
			return totals[i].Count > totals[j].Count
		}
		return totals[i].Name < totals[j].Name
	})

	if len(totals) > n {
		totals = totals[:n]
	}
	return totals
}

// NeutralName is a name with substantial use on both genders.
type NeutralName struct {
	Name   string `yaml:"name"`
	Male   int    `yaml:"male"`
	Female int    `yaml:"female"`
}

// GenderNeutral returns up to n names whose summed counts reach floor
// on both genders, ordered by combined count descending.
func GenderNeutral(rows []models.Row, floor, n int) []NeutralName {
	male := make(map[string]int)
	female := make(map[string]int)
	for _, r := range rows {
		switch r.Gender {
		case Male:
			male[r.Name] += r.Count
		case Female:
			female[r.Name] += r.Count
		}
	}

	var neutral []NeutralName
	for name, m := range male {
		f, ok := female[name]
		if !ok {
			continue
		}
		if m >= floor && f >= floor {
			neutral = append(neutral, NeutralName{Name: name, Male: m, Female: f})
		}
	}
	sort.Slice(neutral, func(i, j int) bool {
		ci, cj := neutral[i].Male+neutral[i].Female, neutral[j].Male+neutral[j].Female
		if ci != cj {
			return ci > cj
		}
		return neutral[i].Name < neutral[j].Name
	})

	if len(neutral) > n {
		neutral = neutral[:n]
	}
	return neutral
}

// GrowthSeries tracks one name's share of each year's total, percent.
type GrowthSeries struct {
	Name   string
	Shares map[int]float64
}

// GrowthShares pivots the table into per-name yearly percentage shares
// (genders merged), ranks names by cumulative share, and returns the
// top n series along with the sorted year axis. fromYear > 0 drops all
// earlier rows before pivoting.
func GrowthShares(rows []models.Row, fromYear, n int) ([]GrowthSeries, []int) {
	pivot := make(map[string]map[int]int)
	yearTotals := make(map[int]int)
	for _, r := range rows {
		if fromYear > 0 && r.Year < fromYear {
			continue
		}
		if pivot[r.Name] == nil {
			pivot[r.Name] = make(map[int]int)
		}
		pivot[r.Name][r.Year] += r.Count
		yearTotals[r.Year] += r.Count
	}

	years := make([]int, 0, len(yearTotals))
	for year := range yearTotals {
		years = append(years, year)
	}
	sort.Ints(years)

	type ranked struct {
		series GrowthSeries
		total  float64
	}
	all := make([]ranked, 0, len(pivot))
	for name, counts := range pivot {
		shares := make(map[int]float64, len(years))
		var cumulative float64
		for _, year := range years {
			share := float64(counts[year]) / float64(yearTotals[year]) * 100
			shares[year] = share
			cumulative += share
		}
		all = append(all, ranked{
			series: GrowthSeries{Name: name, Shares: shares},
			total:  cumulative,
		})
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].total != all[j].total {
			return all[i].total > all[j].total
		}
		return all[i].series.Name < all[j].series.Name
	})

	if len(all) > n {
		all = all[:n]
	}
	top := make([]GrowthSeries, len(all))
	for i, r := range all {
		top[i] = r.series
	}
	return top, years
}
